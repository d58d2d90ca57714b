package xaddr

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IPv4/IPv6 地址字面量。
	ErrInvalidAddress = errors.New("xaddr: invalid IP address")

	// ErrPrefixOutOfRange 表示前缀长度超出 [0, 位宽] 范围或不是整数。
	ErrPrefixOutOfRange = errors.New("xaddr: prefix length out of range")

	// ErrInvalidMask 表示非连续的 IPv4 点分掩码。
	ErrInvalidMask = errors.New("xaddr: invalid dotted netmask")

	// ErrMissingArgument 表示未提供地址参数。
	ErrMissingArgument = errors.New("xaddr: missing address argument")

	// ErrFamilyMismatch 表示两个操作数的地址族不一致。
	ErrFamilyMismatch = errors.New("xaddr: address family mismatch")

	// ErrInvalidBigInt 表示 big.Int 值超出目标地址族的表示范围。
	ErrInvalidBigInt = errors.New("xaddr: big.Int value out of range for address family")
)
