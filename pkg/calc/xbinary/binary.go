package xbinary

import (
	"strings"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
)

// Render 将地址渲染为分组二进制字符串。
// IPv4 为点分 8 位组（"11000000.10101000.…"），IPv6 为冒分 16 位组，
// 每组补零到全宽。splitAt 在 (0, 位宽) 内时，于该比特边界前插入
// 一个空格区分网络位与主机位；组分隔符写在空格之前
// （如 /24 → "…. 00000001"）。splitAt 越界时不插入标记。
// 无效地址返回空字符串。
func Render(addr xaddr.Address, splitAt int) string {
	f := addr.Family()
	width := f.Bits()
	if width == 0 {
		return ""
	}

	groupBits := f.GroupBits()
	sep := byte('.')
	if f == xaddr.V6 {
		sep = ':'
	}

	raw := addr.Bytes()
	var b strings.Builder
	// 位宽 + 分隔符 + 可能的空格
	b.Grow(width + width/groupBits + 1)

	for i := 0; i < width; i++ {
		if i > 0 && i%groupBits == 0 {
			b.WriteByte(sep)
		}
		if i == splitAt && splitAt > 0 {
			b.WriteByte(' ')
		}
		bit := (raw[i/8] >> (7 - i%8)) & 1
		b.WriteByte('0' + bit)
	}
	return b.String()
}

// RenderMask 渲染前缀的掩码二进制，空格标记置于前缀自身的边界。
func RenderMask(p xaddr.Prefix) string {
	return Render(p.Mask(), p.Length())
}
