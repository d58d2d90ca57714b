package xsubnet

import (
	"fmt"
	"math/bits"
	"net/netip"
	"sort"

	"go4.org/netipx"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
)

// Block 是 VLSM 分配的一个结果块。
type Block struct {
	// Requested 是请求的主机数。
	Requested int

	// Subnet 是分配到的子网，块大小为容纳 Requested+2 个地址的
	// 最小 2 的幂。
	Subnet Subnet
}

// SplitBySizes 在母网络内按请求的主机数分配子网（VLSM）。
// 仅支持 IPv4。每个请求分配容纳 N+2 个地址（网络+广播）的最小 2 的幂块；
// 按块大小从大到小连续分配，返回结果保持请求顺序。
// 总需求超过母网络容量时返回 [ErrCapacityExceeded]。
//
// 设计决策: 分配器基于 [*netipx.IPSet] 的 RemoveFreePrefix，而非手工
// 地址步进——它总是取出最低的对齐空闲块，配合从大到小的分配顺序，
// 结果与原工具的连续分配一致，且对齐约束由库保证。
func SplitBySizes(parent Subnet, sizes []int) ([]Block, error) {
	if parent.Prefix.Family() != xaddr.V4 {
		return nil, ErrSplitUnsupported
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no sizes given", ErrInvalidSplitSize)
	}

	type request struct {
		index     int
		size      int
		prefixLen int
		blockSize uint64
	}

	reqs := make([]request, len(sizes))
	var total uint64
	for i, size := range sizes {
		if size < 1 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSplitSize, size)
		}
		// 需要 size+2 个地址（网络 + 广播），向上取整到 2 的幂。
		power := bits.Len(uint(size+2) - 1)
		if power > 32 {
			return nil, fmt.Errorf("%w: %d hosts", ErrInvalidSplitSize, size)
		}
		reqs[i] = request{
			index:     i,
			size:      size,
			prefixLen: 32 - power,
			blockSize: 1 << power,
		}
		total += reqs[i].blockSize
	}

	capacity := uint64(1) << parent.Prefix.HostBits()
	if total > capacity {
		return nil, fmt.Errorf("%w: need %d addresses, network %s holds %d",
			ErrCapacityExceeded, total, parent.CIDR(), capacity)
	}

	// 从大到小分配以保证连续；同大小保持请求顺序。
	order := make([]request, len(reqs))
	copy(order, reqs)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].blockSize > order[j].blockSize
	})

	var b netipx.IPSetBuilder
	b.AddPrefix(netip.PrefixFrom(parent.Network.Addr(), parent.Prefix.Length()))
	free, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build free set: %w", err)
	}

	blocks := make([]Block, len(reqs))
	for _, r := range order {
		p, rest, ok := free.RemoveFreePrefix(uint8(r.prefixLen))
		if !ok {
			return nil, fmt.Errorf("%w: no free /%d block left in %s",
				ErrCapacityExceeded, r.prefixLen, parent.CIDR())
		}
		free = rest

		addr, err := xaddr.FromAddr(p.Addr())
		if err != nil {
			return nil, err
		}
		prefix, err := xaddr.NewPrefix(xaddr.V4, r.prefixLen)
		if err != nil {
			return nil, err
		}
		sub, err := Compute(addr, prefix)
		if err != nil {
			return nil, err
		}
		blocks[r.index] = Block{Requested: r.size, Subnet: sub}
	}
	return blocks, nil
}
