package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
	"github.com/omeyang/ipcalc/pkg/calc/xclass"
	"github.com/omeyang/ipcalc/pkg/calc/xreport"
	"github.com/omeyang/ipcalc/pkg/calc/xsubnet"
)

// usageError 表示参数用法错误，run() 映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// runCalc 是计算管线的入口：解析参数、派生子网、渲染报告。
// 所有错误在计算前检出，出错时不输出部分报告。
func runCalc(cmd *cli.Command, out io.Writer) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return &usageError{msg: "缺少地址参数，用法: ipcalc ADDRESS[/PREFIX] [PREFIX|MASK] [PREFIX2]"}
	}

	addr, inlineTok, err := xaddr.ParseAddress(args[0])
	if err != nil {
		return err
	}

	prefixTok, transTok, err := mergeArgs(inlineTok, args[1:])
	if err != nil {
		return err
	}

	prefix, err := xaddr.ResolvePrefix(addr.Family(), prefixTok)
	if err != nil {
		return err
	}

	sub, err := xsubnet.Compute(addr, prefix)
	if err != nil {
		return err
	}

	if cmd.Bool("class") {
		c, ok := xclass.ClassOf(addr)
		if !ok {
			return fmt.Errorf("%w: --class 仅支持 IPv4 地址", xaddr.ErrInvalidAddress)
		}
		fmt.Fprintf(out, "Class: %s\n", c)
		return nil
	}

	mode := outputMode(cmd)
	rep := xreport.New(out, mode, !cmd.Bool("nobinary"))

	if mode == xreport.ModeHTML {
		fmt.Fprintln(out, xreport.HTMLHeader)
		defer fmt.Fprintln(out, xreport.HTMLFooter)
	}

	if sizes := cmd.StringSlice("split"); len(sizes) > 0 {
		return runSplit(rep, sub, sizes)
	}

	rep.Render(sub)

	// 第二前缀（仅 IPv4）：子网划分或超网合并。
	if transTok != "" && addr.Family() == xaddr.V4 {
		newLen, err := strconv.Atoi(transTok)
		if err != nil {
			return fmt.Errorf("%w: 第二前缀 %q 不是前缀长度", xaddr.ErrPrefixOutOfRange, transTok)
		}
		t, err := xsubnet.TransitionTo(sub, newLen)
		if err != nil {
			return err
		}
		rep.Transition(sub, t)
	}
	return nil
}

// runSplit 执行 VLSM 分配并渲染结果。
func runSplit(rep *xreport.Report, sub xsubnet.Subnet, rawSizes []string) error {
	sizes := make([]int, len(rawSizes))
	for i, s := range rawSizes {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: %q", xsubnet.ErrInvalidSplitSize, s)
		}
		sizes[i] = n
	}

	blocks, err := xsubnet.SplitBySizes(sub, sizes)
	if err != nil {
		return err
	}
	rep.Split(sub, sizes, blocks)
	return nil
}

// mergeArgs 合并内联前缀与单独参数。
// 内联前缀优先；此时单独参数被当作第二前缀（保留的原工具行为，
// 冲突不报错）。无内联时第一个单独参数是前缀，第二个是第二前缀。
func mergeArgs(inlineTok string, rest []string) (prefixTok, transTok string, err error) {
	if inlineTok != "" {
		if len(rest) > 1 {
			return "", "", &usageError{msg: fmt.Sprintf("多余的参数: %v", rest[1:])}
		}
		if len(rest) == 1 {
			transTok = rest[0]
		}
		return inlineTok, transTok, nil
	}

	if len(rest) > 2 {
		return "", "", &usageError{msg: fmt.Sprintf("多余的参数: %v", rest[2:])}
	}
	if len(rest) >= 1 {
		prefixTok = rest[0]
	}
	if len(rest) == 2 {
		transTok = rest[1]
	}
	return prefixTok, transTok, nil
}

// outputMode 决定配色模式：--html > --color > --nocolor > 终端检测。
func outputMode(cmd *cli.Command) xreport.Mode {
	switch {
	case cmd.Bool("html"):
		return xreport.ModeHTML
	case cmd.Bool("color"):
		return xreport.ModeColor
	case cmd.Bool("nocolor"):
		return xreport.ModePlain
	case isTerminal(os.Stdout):
		return xreport.ModeColor
	default:
		return xreport.ModePlain
	}
}

// isTerminal 报告 f 是否连接到终端。
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
