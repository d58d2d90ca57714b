// ipcalc 是 IPv4/IPv6 子网计算器命令行工具。
//
// 用法:
//
//	ipcalc [选项] ADDRESS[/PREFIX] [PREFIX|MASK] [PREFIX2]
//
// 由地址加前缀长度（或点分掩码）计算网络地址、广播地址 / 前缀地址、
// 可用主机范围与主机数，并给出传统分类与特殊用途范围标签，
// 地址与掩码同时以对齐的二进制形式展示。
//
// 选项:
//
//	-k, --color     强制输出 ANSI 颜色（默认仅在终端开启）
//	-n, --nocolor   关闭 ANSI 颜色
//	-H, --html      以 HTML 输出
//	-b, --nobinary  省略二进制列
//	    --class     仅打印 IPv4 地址的传统分类
//	-s, --split     按主机数做 VLSM 分配（可重复，如 -s 50 -s 20 -s 10）
//
// 参数:
//
//	前缀可内联（"192.168.1.1/24"）或作为单独参数给出（前缀长度或
//	IPv4 点分掩码）。两者同时出现时内联者优先，单独参数被当作
//	第二前缀（见下）——这不是错误，是保留的原工具行为。
//	第二前缀 PREFIX2（仅 IPv4）触发子网划分（更长前缀）或
//	超网合并（更短前缀）的列表输出。
//	前缀缺省时默认单主机前缀（/32 或 /128）。
//
// 退出码:
//
//	0: 计算成功
//	1: 地址/前缀/掩码错误（描述写入 stderr，不输出部分报告）
//	2: 参数错误（缺少地址、多余参数、未知选项等）
//
// 示例:
//
//	ipcalc 192.168.1.1/24
//	ipcalc 10.0.0.0 255.255.255.0
//	ipcalc 192.168.0.0/24 26
//	ipcalc -s 50 -s 20 -s 10 192.168.0.0/24
//	ipcalc fde6:36fc:c985::c2c1:c0ff:fe1d:cc7f/64
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用，输出写入 out。
func createApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "ipcalc",
		Usage:     "IPv4/IPv6 子网计算器",
		ArgsUsage: "ADDRESS[/PREFIX] [PREFIX|MASK] [PREFIX2]",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "color",
				Aliases: []string{"k"},
				Usage:   "强制输出 ANSI 颜色",
			},
			&cli.BoolFlag{
				Name:    "nocolor",
				Aliases: []string{"n"},
				Usage:   "关闭 ANSI 颜色",
			},
			&cli.BoolFlag{
				Name:    "html",
				Aliases: []string{"H"},
				Usage:   "以 HTML 输出",
			},
			&cli.BoolFlag{
				Name:    "nobinary",
				Aliases: []string{"b"},
				Usage:   "省略二进制列",
			},
			&cli.BoolFlag{
				Name:  "class",
				Usage: "仅打印 IPv4 地址的传统分类",
			},
			&cli.StringSliceFlag{
				Name:    "split",
				Aliases: []string{"s"},
				Usage:   "按主机数做 VLSM 分配（可重复）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return runCalc(cmd, out)
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string, out, errOut io.Writer) int {
	app := createApp(out)

	if err := app.Run(context.Background(), args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) || isCLIUsageError(err) {
			fmt.Fprintf(errOut, "参数错误: %v\n", err)
			return 2
		}
		fmt.Fprintf(errOut, "错误: %v\n", err)
		return 1
	}
	return 0
}

// isCLIUsageError 识别 urfave/cli 解析阶段产生的参数错误（未知选项等），
// 与本程序自身的 usageError 一并映射为退出码 2。
func isCLIUsageError(err error) bool {
	return strings.Contains(err.Error(), "flag provided but not defined")
}
