package xsubnet

import "errors"

var (
	// ErrCapacityExceeded 表示请求的子网总容量超过母网络可容纳的地址数。
	ErrCapacityExceeded = errors.New("xsubnet: requested subnets exceed network capacity")

	// ErrInvalidSplitSize 表示无效的分配主机数（必须 ≥ 1）。
	ErrInvalidSplitSize = errors.New("xsubnet: invalid split size")

	// ErrSplitUnsupported 表示该地址族不支持 VLSM 分配（仅 IPv4）。
	ErrSplitUnsupported = errors.New("xsubnet: VLSM split only supports IPv4")
)
