package xreport

// Mode 表示输出配色模式。
type Mode uint8

const (
	// ModePlain 输出纯文本，无任何转义序列。
	ModePlain Mode = iota
	// ModeColor 输出 ANSI 终端颜色。
	ModeColor
	// ModeHTML 输出内嵌 <font> 标签的 HTML 片段（置于 <pre> 中）。
	ModeHTML
)

// palette 是一套配色器：每段文本包裹为 open + text + close。
type palette struct {
	normal  string // 标签
	value   string // 地址/数值列
	binary  string // 二进制列
	mask    string // 掩码的二进制列
	class   string // 分类信息
	close   string
}

func (m Mode) palette() palette {
	switch m {
	case ModeColor:
		return palette{
			normal: "\033[m",
			value:  "\033[34m",
			binary: "\033[33m",
			mask:   "\033[31m",
			class:  "\033[35m",
			close:  "\033[m",
		}
	case ModeHTML:
		return palette{
			normal: `<font color="#000000">`,
			value:  `<font color="#0000ff">`,
			binary: `<font color="#909090">`,
			mask:   `<font color="#ff0000">`,
			class:  `<font color="#009900">`,
			close:  `</font>`,
		}
	default:
		return palette{}
	}
}

// wrap 用配色器的一种颜色包裹文本。纯文本模式原样返回。
func (p palette) wrap(color, text string) string {
	if color == "" {
		return text
	}
	return color + text + p.close
}

// HTMLHeader 与 HTMLFooter 是 HTML 模式的文档骨架，由调用方在
// 报告前后各输出一次。
const (
	HTMLHeader = "<!DOCTYPE HTML><html><head><title>ipcalc</title></head><body><pre>"
	HTMLFooter = "</pre></body></html>"
)
