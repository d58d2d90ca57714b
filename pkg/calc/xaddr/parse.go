package xaddr

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseAddress 解析 "地址[/前缀]" 形式的输入。
// 返回解析出的地址与斜杠后的原始前缀记号（未归一化，可能为点分掩码）；
// 无内联前缀时记号为空串。前缀记号的归一化由 [ResolvePrefix] 完成。
//
// 输入会自动去除首尾空白字符。空输入返回 [ErrMissingArgument]。
//
// 设计决策: 前缀记号原样返回而不在此解析，因为记号的合法形式依赖
// 地址族（点分掩码仅 IPv4），且内联前缀与单独前缀参数的优先级
// 由调用方裁决（内联者优先，冲突不报错）。
func ParseAddress(input string) (Address, string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Address{}, "", ErrMissingArgument
	}

	addrPart := s
	prefixToken := ""
	if idx := strings.Index(s, "/"); idx >= 0 {
		addrPart = s[:idx]
		prefixToken = s[idx+1:]
		if prefixToken == "" || strings.Contains(prefixToken, "/") {
			return Address{}, "", fmt.Errorf("%w: malformed prefix in %q", ErrInvalidAddress, s)
		}
	}

	addr, err := netip.ParseAddr(addrPart)
	if err != nil {
		return Address{}, "", fmt.Errorf("%w: %q", ErrInvalidAddress, addrPart)
	}

	a, err := FromAddr(addr)
	if err != nil {
		return Address{}, "", err
	}
	return a, prefixToken, nil
}

// MustParseAddress 是 [ParseAddress] 的 panic 版本，丢弃内联前缀记号。
// 仅用于测试和常量初始化。
func MustParseAddress(input string) Address {
	a, _, err := ParseAddress(input)
	if err != nil {
		panic(err)
	}
	return a
}
