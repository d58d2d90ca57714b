package xsubnet

import (
	"math/big"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
)

// Subnet 是由 (地址, 前缀) 对一次性派生的子网信息。
// 计算完成后不再变更。
type Subnet struct {
	// Address 是输入地址（未清除主机位）。
	Address xaddr.Address

	// Prefix 是归一化后的前缀。
	Prefix xaddr.Prefix

	// Network 是网络地址（主机位全 0）。
	Network xaddr.Address

	// Broadcast 是广播地址（主机位全 1）。仅 IPv4；IPv6 为零值，
	// 报告前缀地址（= Network）代替。
	Broadcast xaddr.Address

	// HostMin 与 HostMax 是可用主机范围的边界。
	HostMin xaddr.Address
	HostMax xaddr.Address

	// HostCount 是可用主机数，精确表示（IPv6 需要 128 位算术）。
	HostCount *big.Int
}

// Compute 由地址与前缀派生子网信息。
// 地址与前缀的地址族不一致时返回 [xaddr.ErrFamilyMismatch]。
func Compute(addr xaddr.Address, p xaddr.Prefix) (Subnet, error) {
	if !addr.IsValid() || !p.IsValid() || addr.Family() != p.Family() {
		return Subnet{}, xaddr.ErrFamilyMismatch
	}

	mask := p.Mask()
	wildcard := p.Wildcard()
	network := addr.And(mask)

	s := Subnet{
		Address: addr,
		Prefix:  p,
		Network: network,
	}

	if addr.Family() == xaddr.V4 {
		s.Broadcast = network.Or(wildcard)
		switch p.Length() {
		case 32:
			// 单主机：无网络/广播之分。
			s.HostMin, s.HostMax = addr, addr
			s.HostCount = big.NewInt(1)
		case 31:
			// RFC 3021 点对点链路：不扣除网络/广播。
			s.HostMin, s.HostMax = network, s.Broadcast
			s.HostCount = big.NewInt(2)
		default:
			s.HostMin = network.Next()
			s.HostMax = s.Broadcast.Prev()
			s.HostCount = usableHosts(p.HostBits())
		}
		return s, nil
	}

	if p.Length() == 128 {
		s.HostMin, s.HostMax = addr, addr
		s.HostCount = big.NewInt(1)
		return s, nil
	}
	s.HostMin = network
	s.HostMax = network.Or(wildcard)
	s.HostCount = totalHosts(p.HostBits())
	return s, nil
}

// CIDR 返回 "网络地址/前缀长度" 形式。
func (s Subnet) CIDR() string {
	return s.Network.String() + s.Prefix.String()
}

// TotalAddresses 返回网络内的地址总数 2^(位宽−前缀长度)，
// 含网络与广播地址。
func (s Subnet) TotalAddresses() *big.Int {
	return totalHosts(s.Prefix.HostBits())
}

// totalHosts 返回 2^hostBits。
func totalHosts(hostBits int) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(hostBits))
}

// usableHosts 返回 2^hostBits − 2，负值钳制为 0。
func usableHosts(hostBits int) *big.Int {
	n := totalHosts(hostBits)
	n.Sub(n, big.NewInt(2))
	if n.Sign() < 0 {
		n.SetInt64(0)
	}
	return n
}
