package xaddr

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"net/netip"
)

// Address 是带地址族标签的不可变 IP 地址值。
// 零值为无效地址；通过 [ParseAddress]、[FromAddr]、[FromUint32] 或
// [FromBigInt] 构造的值满足不变量 0 ≤ value < 2^位宽。
type Address struct {
	addr netip.Addr
}

// FromAddr 从 [netip.Addr] 创建 Address。
// 拒绝无效地址、带 zone ID 的地址和 IPv4-mapped IPv6 地址，
// 保证地址族无歧义。
func FromAddr(addr netip.Addr) (Address, error) {
	if !addr.IsValid() {
		return Address{}, ErrInvalidAddress
	}
	if addr.Zone() != "" {
		return Address{}, fmt.Errorf("%w: zone ID is not supported: %s", ErrInvalidAddress, addr)
	}
	if addr.Is4In6() {
		return Address{}, fmt.Errorf("%w: IPv4-mapped IPv6 is not supported: %s", ErrInvalidAddress, addr)
	}
	return Address{addr: addr}, nil
}

// FromUint32 从 IPv4 的 uint32 表示创建 Address。
// 使用网络字节序（大端）。
func FromUint32(v uint32) Address {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return Address{addr: netip.AddrFrom4(b)}
}

// FromBigInt 从 [*big.Int] 创建 Address。
// 需指定目标地址族；负值或超出位宽的值返回 [ErrInvalidBigInt]。
func FromBigInt(v *big.Int, f Family) (Address, error) {
	if v == nil {
		return Address{}, ErrInvalidBigInt
	}
	switch f {
	case V4:
		if v.Sign() < 0 || v.BitLen() > 32 {
			return Address{}, ErrInvalidBigInt
		}
		var b [4]byte
		vBytes := v.Bytes()
		copy(b[4-len(vBytes):], vBytes)
		return Address{addr: netip.AddrFrom4(b)}, nil
	case V6:
		if v.Sign() < 0 || v.BitLen() > 128 {
			return Address{}, ErrInvalidBigInt
		}
		var b [16]byte
		vBytes := v.Bytes()
		copy(b[16-len(vBytes):], vBytes)
		return Address{addr: netip.AddrFrom16(b)}, nil
	default:
		return Address{}, fmt.Errorf("%w: unknown family %s", ErrInvalidBigInt, f)
	}
}

// IsValid 报告地址是否有效（非零值）。
func (a Address) IsValid() bool {
	return a.addr.IsValid()
}

// Family 返回地址的地址族。无效地址返回 [F0]。
func (a Address) Family() Family {
	switch {
	case a.addr.Is4():
		return V4
	case a.addr.IsValid():
		return V6
	default:
		return F0
	}
}

// Addr 返回底层的 [netip.Addr] 值。
func (a Address) Addr() netip.Addr {
	return a.addr
}

// String 返回地址的标准字符串表示（IPv6 使用 RFC 5952 压缩形式）。
// 无效地址返回 "invalid IP"（与 [netip.Addr.String] 行为一致）。
func (a Address) String() string {
	return a.addr.String()
}

// Uint32 返回 IPv4 地址的 uint32 表示（网络字节序）。
// 非 IPv4 地址返回 (0, false)。
func (a Address) Uint32() (uint32, bool) {
	if !a.addr.Is4() {
		return 0, false
	}
	b := a.addr.As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// BigInt 将地址转换为 [*big.Int]。
// 无效地址返回零值 big.Int。
func (a Address) BigInt() *big.Int {
	if !a.addr.IsValid() {
		return new(big.Int)
	}
	if a.addr.Is4() {
		b := a.addr.As4()
		return new(big.Int).SetBytes(b[:])
	}
	b := a.addr.As16()
	return new(big.Int).SetBytes(b[:])
}

// Bytes 返回地址的网络字节序字节表示：IPv4 为 4 字节，IPv6 为 16 字节。
// 无效地址返回 nil。
func (a Address) Bytes() []byte {
	switch {
	case a.addr.Is4():
		b := a.addr.As4()
		return b[:]
	case a.addr.IsValid():
		b := a.addr.As16()
		return b[:]
	default:
		return nil
	}
}

// And 返回两地址的按位与。
// 前置条件：两地址有效且同族；否则返回零值 Address。
func (a Address) And(b Address) Address {
	f := a.Family()
	if f == F0 || f != b.Family() {
		return Address{}
	}
	if f == V4 {
		x, y := a.addr.As4(), b.addr.As4()
		for i := range x {
			x[i] &= y[i]
		}
		return Address{addr: netip.AddrFrom4(x)}
	}
	x, y := a.addr.As16(), b.addr.As16()
	for i := range x {
		x[i] &= y[i]
	}
	return Address{addr: netip.AddrFrom16(x)}
}

// Or 返回两地址的按位或。
// 前置条件：两地址有效且同族；否则返回零值 Address。
func (a Address) Or(b Address) Address {
	f := a.Family()
	if f == F0 || f != b.Family() {
		return Address{}
	}
	if f == V4 {
		x, y := a.addr.As4(), b.addr.As4()
		for i := range x {
			x[i] |= y[i]
		}
		return Address{addr: netip.AddrFrom4(x)}
	}
	x, y := a.addr.As16(), b.addr.As16()
	for i := range x {
		x[i] |= y[i]
	}
	return Address{addr: netip.AddrFrom16(x)}
}

// Not 返回地址在本族位宽内的按位取反。
// 无效地址返回零值 Address。
func (a Address) Not() Address {
	switch a.Family() {
	case V4:
		x := a.addr.As4()
		for i := range x {
			x[i] = ^x[i]
		}
		return Address{addr: netip.AddrFrom4(x)}
	case V6:
		x := a.addr.As16()
		for i := range x {
			x[i] = ^x[i]
		}
		return Address{addr: netip.AddrFrom16(x)}
	default:
		return Address{}
	}
}

// Next 返回后继地址。位宽内溢出时返回零值 Address。
func (a Address) Next() Address {
	return Address{addr: a.addr.Next()}
}

// Prev 返回前驱地址。下溢时返回零值 Address。
func (a Address) Prev() Address {
	return Address{addr: a.addr.Prev()}
}

// Compare 按数值比较两地址，返回 -1、0 或 1。
// 语义与 [netip.Addr.Compare] 一致。
func (a Address) Compare(b Address) int {
	return a.addr.Compare(b.addr)
}
