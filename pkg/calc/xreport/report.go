package xreport

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
	"github.com/omeyang/ipcalc/pkg/calc/xbinary"
	"github.com/omeyang/ipcalc/pkg/calc/xclass"
	"github.com/omeyang/ipcalc/pkg/calc/xsubnet"
)

// 列宽沿用原工具：IPv4 值列 21 字符，IPv6 地址更长，值列 40 字符。
const (
	labelWidth   = 11
	v4ValueWidth = 21
	v6ValueWidth = 40
)

// Report 将子网计算结果写入 w。
type Report struct {
	w          io.Writer
	pal        palette
	showBinary bool
}

// New 创建报告渲染器。showBinary 为 false 时省略二进制列。
func New(w io.Writer, mode Mode, showBinary bool) *Report {
	return &Report{w: w, pal: mode.palette(), showBinary: showBinary}
}

// Render 按地址族渲染完整报告。
func (r *Report) Render(s xsubnet.Subnet) {
	if s.Prefix.Family() == xaddr.V4 {
		r.IPv4(s)
		return
	}
	r.IPv6(s)
}

// IPv4 渲染 IPv4 完整报告：地址块、"=>" 分隔行、网络块。
func (r *Report) IPv4(s xsubnet.Subnet) {
	split := s.Prefix.Length()
	r.line("Address", s.Address.String(), v4ValueWidth,
		xbinary.Render(s.Address, split), r.pal.binary)
	r.line("Netmask", s.Prefix.Mask().String()+" = "+strconv.Itoa(split), v4ValueWidth,
		xbinary.RenderMask(s.Prefix), r.pal.mask)
	r.line("Wildcard", s.Prefix.Wildcard().String(), v4ValueWidth,
		xbinary.Render(s.Prefix.Wildcard(), split), r.pal.binary)
	fmt.Fprintln(r.w, r.pal.wrap(r.pal.normal, "=>"))
	r.v4Network(s)
}

// v4Network 渲染网络块：Network/HostMin/HostMax/Broadcast/Hosts-Net。
// /31 省略 Broadcast 行，/32 仅保留 Network 与 Hosts/Net 行。
func (r *Report) v4Network(s xsubnet.Subnet) {
	split := s.Prefix.Length()
	r.line("Network", s.CIDR(), v4ValueWidth,
		xbinary.Render(s.Network, split), r.pal.binary)
	if split <= 31 {
		r.line("HostMin", s.HostMin.String(), v4ValueWidth,
			xbinary.Render(s.HostMin, split), r.pal.binary)
		r.line("HostMax", s.HostMax.String(), v4ValueWidth,
			xbinary.Render(s.HostMax, split), r.pal.binary)
	}
	if split <= 30 {
		r.line("Broadcast", s.Broadcast.String(), v4ValueWidth,
			xbinary.Render(s.Broadcast, split), r.pal.binary)
	}
	r.hostsLine(s.HostCount.String(), v4ValueWidth, v4Info(s))
	fmt.Fprintln(r.w)
}

// IPv6 渲染 IPv6 报告：无广播概念，报告前缀地址；
// 前缀短于 /128 时附主机范围与总数。
func (r *Report) IPv6(s xsubnet.Subnet) {
	split := s.Prefix.Length()
	r.line("Address", s.Address.String(), v6ValueWidth,
		xbinary.Render(s.Address, split), r.pal.binary)
	r.line("Netmask", strconv.Itoa(split), v6ValueWidth,
		xbinary.RenderMask(s.Prefix), r.pal.mask)
	fmt.Fprintln(r.w, r.pal.wrap(r.pal.normal, "=>"))
	r.line("Prefix", s.CIDR(), v6ValueWidth,
		xbinary.Render(s.Network, split), r.pal.binary)

	info, _ := xclass.TagOf(s.Network)
	if split < 128 {
		r.line("HostMin", s.HostMin.String(), v6ValueWidth,
			xbinary.Render(s.HostMin, split), r.pal.binary)
		r.line("HostMax", s.HostMax.String(), v6ValueWidth,
			xbinary.Render(s.HostMax, split), r.pal.binary)
		r.hostsLine(s.HostCount.String(), v6ValueWidth, info)
	} else if info != "" {
		fmt.Fprintln(r.w, r.pal.wrap(r.pal.class, info))
	}
	fmt.Fprintln(r.w)
}

// Transition 渲染第二前缀的变换结果。
func (r *Report) Transition(from xsubnet.Subnet, t xsubnet.Transition) {
	switch t.Kind {
	case xsubnet.TransitionSubnets:
		newLen := t.Subnets[0].Prefix.Length()
		fmt.Fprintf(r.w, "--- Subnets of %s transitioning to /%d ---\n\n", from.CIDR(), newLen)
		for i, sub := range t.Subnets {
			fmt.Fprintf(r.w, "%d.\n", i+1)
			r.networkBlock(sub)
		}
		if t.Truncated {
			fmt.Fprintf(r.w, "... stopped at %d subnets ...\n", xsubnet.MaxTransitionSubnets)
		}
	case xsubnet.TransitionSupernet:
		fmt.Fprintf(r.w, "--- Supernet of %s transitioning to /%d ---\n\n",
			from.CIDR(), t.Supernet.Prefix.Length())
		r.networkBlock(*t.Supernet)
	}
}

// Split 渲染 VLSM 分配结果，保持请求顺序。
func (r *Report) Split(parent xsubnet.Subnet, sizes []int, blocks []xsubnet.Block) {
	strs := make([]string, len(sizes))
	for i, n := range sizes {
		strs[i] = strconv.Itoa(n)
	}
	fmt.Fprintf(r.w, "Splitting %s into subnets for hosts: %s\n\n",
		parent.CIDR(), strings.Join(strs, ", "))

	for i, blk := range blocks {
		fmt.Fprintf(r.w, "%d. Requested size: %d hosts (requires block of %s)\n",
			i+1, blk.Requested, blk.Subnet.TotalAddresses())
		r.line("Netmask",
			blk.Subnet.Prefix.Mask().String()+" = "+strconv.Itoa(blk.Subnet.Prefix.Length()),
			v4ValueWidth, xbinary.RenderMask(blk.Subnet.Prefix), r.pal.mask)
		r.networkBlock(blk.Subnet)
	}
}

// networkBlock 按地址族渲染网络块（变换 / 分配列表的单项）。
func (r *Report) networkBlock(s xsubnet.Subnet) {
	if s.Prefix.Family() == xaddr.V4 {
		r.v4Network(s)
		return
	}
	r.IPv6(s)
}

// hostsLine 写 Hosts/Net 行：主机数加分类信息。
// 分类信息不是二进制列，--nobinary 下仍然输出。
func (r *Report) hostsLine(count string, valueWidth int, info string) {
	lbl := pad("Hosts/Net:", labelWidth)
	if info == "" {
		fmt.Fprintf(r.w, "%s %s\n",
			r.pal.wrap(r.pal.normal, lbl), r.pal.wrap(r.pal.value, count))
		return
	}
	fmt.Fprintf(r.w, "%s %s %s\n",
		r.pal.wrap(r.pal.normal, lbl),
		r.pal.wrap(r.pal.value, pad(count, valueWidth)),
		r.pal.wrap(r.pal.class, info))
}

// line 写一行定列宽输出：标签、值列，以及可选的二进制列。
// 填充在着色前完成，转义序列不计入列宽。
func (r *Report) line(label, value string, valueWidth int, binary, binaryColor string) {
	lbl := pad(label+":", labelWidth)
	if !r.showBinary || binary == "" {
		fmt.Fprintf(r.w, "%s %s\n",
			r.pal.wrap(r.pal.normal, lbl),
			r.pal.wrap(r.pal.value, value))
		return
	}
	fmt.Fprintf(r.w, "%s %s %s\n",
		r.pal.wrap(r.pal.normal, lbl),
		r.pal.wrap(r.pal.value, pad(value, valueWidth)),
		r.pal.wrapRaw(binaryColor, binary))
}

// v4Info 组合分类信息行："Class X[, PtP Link RFC 3021][, 特殊范围标签]"。
func v4Info(s xsubnet.Subnet) string {
	parts := make([]string, 0, 3)
	if c, ok := xclass.ClassOf(s.Network); ok {
		parts = append(parts, "Class "+c.String())
	}
	if s.Prefix.Length() == 31 {
		parts = append(parts, "PtP Link RFC 3021")
	}
	if tag, ok := xclass.TagOf(s.Network); ok {
		parts = append(parts, tag)
	}
	return strings.Join(parts, ", ")
}

// wrapRaw 与 wrap 相同，但空文本返回空串，避免悬空转义序列。
func (p palette) wrapRaw(color, text string) string {
	if text == "" {
		return ""
	}
	return p.wrap(color, text)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
