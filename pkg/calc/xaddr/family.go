package xaddr

// Family 表示 IP 地址族。
type Family uint8

const (
	// F0 表示无效或未知的地址族。
	F0 Family = 0
	// V4 表示 IPv4。
	V4 Family = 4
	// V6 表示 IPv6。
	V6 Family = 6
)

// String 返回地址族的字符串表示。
func (f Family) String() string {
	switch f {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Bits 返回地址族的位宽：IPv4 为 32，IPv6 为 128。
// 无效地址族返回 0。
func (f Family) Bits() int {
	switch f {
	case V4:
		return 32
	case V6:
		return 128
	default:
		return 0
	}
}

// GroupBits 返回二进制渲染时每组的位数：IPv4 为 8（点分八位组），
// IPv6 为 16（冒分十六位组）。无效地址族返回 0。
func (f Family) GroupBits() int {
	switch f {
	case V4:
		return 8
	case V6:
		return 16
	default:
		return 0
	}
}
