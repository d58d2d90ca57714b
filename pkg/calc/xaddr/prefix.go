package xaddr

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// Prefix 是归一化后的网络前缀长度，带地址族标签。
// 不变量：0 ≤ Length ≤ Family.Bits()。零值无效。
type Prefix struct {
	family Family
	length int
	valid  bool
}

// NewPrefix 创建指定长度的前缀。
// 长度超出 [0, 位宽] 返回 [ErrPrefixOutOfRange]。
func NewPrefix(f Family, length int) (Prefix, error) {
	w := f.Bits()
	if w == 0 {
		return Prefix{}, fmt.Errorf("%w: unknown family", ErrPrefixOutOfRange)
	}
	if length < 0 || length > w {
		return Prefix{}, fmt.Errorf("%w: /%d (valid: 0-%d)", ErrPrefixOutOfRange, length, w)
	}
	return Prefix{family: f, length: length, valid: true}, nil
}

// FullPrefix 返回地址族的全宽前缀（/32 或 /128），即单主机语义。
func FullPrefix(f Family) Prefix {
	p, err := NewPrefix(f, f.Bits())
	if err != nil {
		return Prefix{}
	}
	return p
}

// ResolvePrefix 将原始前缀记号归一化为 [Prefix]。
// 接受三种输入：
//   - 空串：默认为该族全宽前缀（/32 或 /128）
//   - 整数前缀长度：范围 [0, 位宽]，越界或非整数返回 [ErrPrefixOutOfRange]
//   - 点分掩码（仅 IPv4）：必须为自最高位起连续的 1，
//     非连续掩码返回 [ErrInvalidMask]
func ResolvePrefix(f Family, raw string) (Prefix, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FullPrefix(f), nil
	}

	if strings.Contains(raw, ".") {
		if f != V4 {
			return Prefix{}, fmt.Errorf("%w: dotted mask notation only supports IPv4", ErrInvalidMask)
		}
		return resolveDottedMask(raw)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return Prefix{}, fmt.Errorf("%w: %q is not a prefix length", ErrPrefixOutOfRange, raw)
	}
	return NewPrefix(f, n)
}

// resolveDottedMask 将点分掩码字符串转换为等价前缀长度，含连续性校验。
func resolveDottedMask(raw string) (Prefix, error) {
	addr, err := netip.ParseAddr(raw)
	if err != nil || !addr.Is4() {
		return Prefix{}, fmt.Errorf("%w: %q", ErrInvalidMask, raw)
	}

	b := addr.As4()
	m := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])

	// 合法掩码为前缀全 1 后缀全 0：取反后必须是 2^k - 1 形式。
	inverted := ^m
	if inverted&(inverted+1) != 0 {
		return Prefix{}, fmt.Errorf("%w: non-contiguous mask %q", ErrInvalidMask, raw)
	}

	return NewPrefix(V4, bits.OnesCount32(m))
}

// IsValid 报告前缀是否有效。
func (p Prefix) IsValid() bool {
	return p.valid
}

// Family 返回前缀的地址族。
func (p Prefix) Family() Family {
	return p.family
}

// Length 返回前缀长度。
func (p Prefix) Length() int {
	return p.length
}

// Bits 返回地址族位宽。
func (p Prefix) Bits() int {
	return p.family.Bits()
}

// HostBits 返回主机位数（位宽 − 前缀长度）。
func (p Prefix) HostBits() int {
	return p.family.Bits() - p.length
}

// String 返回 "/长度" 形式。
func (p Prefix) String() string {
	return "/" + strconv.Itoa(p.length)
}

// Mask 返回掩码地址：最高 Length 位为 1，其余为 0。
// 无效前缀返回零值 Address。
func (p Prefix) Mask() Address {
	if !p.valid {
		return Address{}
	}
	switch p.family {
	case V4:
		var b [4]byte
		fillMask(b[:], p.length)
		return Address{addr: netip.AddrFrom4(b)}
	case V6:
		var b [16]byte
		fillMask(b[:], p.length)
		return Address{addr: netip.AddrFrom16(b)}
	default:
		return Address{}
	}
}

// Wildcard 返回反掩码地址：掩码在位宽内的按位取反，标记主机位。
// 无效前缀返回零值 Address。
func (p Prefix) Wildcard() Address {
	return p.Mask().Not()
}

// fillMask 将 b 的最高 length 位置 1。
func fillMask(b []byte, length int) {
	for i := range b {
		switch {
		case length >= 8:
			b[i] = 0xFF
			length -= 8
		case length > 0:
			b[i] = 0xFF << (8 - length)
			length = 0
		}
	}
}
