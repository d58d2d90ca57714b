package xclass

import "github.com/omeyang/ipcalc/pkg/calc/xaddr"

// Class 表示 IPv4 传统分类（A–E）。
type Class uint8

const (
	// ClassA: 首比特 0xxxxxxx（0–127）。
	ClassA Class = iota
	// ClassB: 10xxxxxx（128–191）。
	ClassB
	// ClassC: 110xxxxx（192–223）。
	ClassC
	// ClassD: 1110xxxx（224–239，多播）。
	ClassD
	// ClassE: 1111xxxx（240–255，保留）。
	ClassE
)

// String 返回分类字母。
func (c Class) String() string {
	switch c {
	case ClassA:
		return "A"
	case ClassB:
		return "B"
	case ClassC:
		return "C"
	case ClassD:
		return "D"
	case ClassE:
		return "E"
	default:
		return "?"
	}
}

// ClassOf 返回 IPv4 地址的传统分类，由首八位组的前导比特决定。
// 非 IPv4 地址返回 (0, false)。
func ClassOf(addr xaddr.Address) (Class, bool) {
	if addr.Family() != xaddr.V4 {
		return 0, false
	}
	first := addr.Bytes()[0]
	switch {
	case first&0x80 == 0:
		return ClassA, true
	case first&0xC0 == 0x80:
		return ClassB, true
	case first&0xE0 == 0xC0:
		return ClassC, true
	case first&0xF0 == 0xE0:
		return ClassD, true
	default:
		return ClassE, true
	}
}
