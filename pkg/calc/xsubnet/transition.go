package xsubnet

import (
	"math/big"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
)

// MaxTransitionSubnets 是子网枚举的输出上限，超出部分截断。
const MaxTransitionSubnets = 1000

// TransitionKind 表示第二前缀相对当前前缀的变换方向。
type TransitionKind uint8

const (
	// TransitionNone 表示前缀长度不变，无变换。
	TransitionNone TransitionKind = iota
	// TransitionSubnets 表示向更长前缀的子网划分。
	TransitionSubnets
	// TransitionSupernet 表示向更短前缀的超网合并。
	TransitionSupernet
)

// Transition 是第二前缀参数的计算结果。
type Transition struct {
	Kind TransitionKind

	// Subnets 是划分出的子网列表（Kind == TransitionSubnets），
	// 最多 [MaxTransitionSubnets] 个。
	Subnets []Subnet

	// Truncated 表示子网列表因超出上限被截断。
	Truncated bool

	// Supernet 是包含当前网络的超网（Kind == TransitionSupernet）。
	Supernet *Subnet
}

// TransitionTo 计算当前子网向 newLen 前缀的变换：
// 更长前缀枚举子网（上限 [MaxTransitionSubnets]），更短前缀计算超网，
// 等长返回 [TransitionNone]。newLen 越界返回 [xaddr.ErrPrefixOutOfRange]。
func TransitionTo(s Subnet, newLen int) (Transition, error) {
	f := s.Prefix.Family()
	newPrefix, err := xaddr.NewPrefix(f, newLen)
	if err != nil {
		return Transition{}, err
	}

	switch {
	case newLen == s.Prefix.Length():
		return Transition{Kind: TransitionNone}, nil

	case newLen < s.Prefix.Length():
		super, err := Compute(s.Network, newPrefix)
		if err != nil {
			return Transition{}, err
		}
		return Transition{Kind: TransitionSupernet, Supernet: &super}, nil

	default:
		subnets, truncated, err := enumerate(s, newPrefix)
		if err != nil {
			return Transition{}, err
		}
		return Transition{Kind: TransitionSubnets, Subnets: subnets, Truncated: truncated}, nil
	}
}

// enumerate 枚举 s 内所有 newPrefix 长度的子网，按地址升序。
// 使用 big.Int 步进，IPv6 的巨大子网数由上限截断兜底。
func enumerate(s Subnet, newPrefix xaddr.Prefix) ([]Subnet, bool, error) {
	f := s.Prefix.Family()

	count := new(big.Int).Lsh(big.NewInt(1), uint(newPrefix.Length()-s.Prefix.Length()))
	truncated := false
	if count.Cmp(big.NewInt(MaxTransitionSubnets)) > 0 {
		count = big.NewInt(MaxTransitionSubnets)
		truncated = true
	}

	step := new(big.Int).Lsh(big.NewInt(1), uint(newPrefix.HostBits()))
	cur := s.Network.BigInt()

	n := int(count.Int64())
	subnets := make([]Subnet, 0, n)
	for i := 0; i < n; i++ {
		addr, err := xaddr.FromBigInt(cur, f)
		if err != nil {
			return nil, false, err
		}
		child, err := Compute(addr, newPrefix)
		if err != nil {
			return nil, false, err
		}
		subnets = append(subnets, child)
		cur = new(big.Int).Add(cur, step)
	}
	return subnets, truncated, nil
}
