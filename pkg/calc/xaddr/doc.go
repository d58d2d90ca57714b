// Package xaddr 提供子网计算器的地址解析与前缀归一化。
//
// xaddr 基于 Go 标准库 [net/netip] 构建，定义计算管线的两个基础值类型：
//
//   - [Address]: 不可变的 IP 地址值，带地址族标签 [Family]，
//     提供 uint32（仅 IPv4）与 [*big.Int] 两种整数视图及按位运算
//   - [Prefix]: 归一化后的前缀长度，派生掩码与反掩码
//
// # 核心功能
//
//   - family.go: 地址族类型 [Family]（V4/V6）及位宽
//   - addr.go: [Address] 值类型、整数互转、按位运算、相邻地址
//   - parse.go: [ParseAddress] 解析 "地址[/前缀]" 输入
//   - prefix.go: [ResolvePrefix] 归一化前缀长度 / 点分掩码 / 缺省值
//
// # 解析规则
//
// [ParseAddress] 只接受族别无歧义的地址字面量：
//   - IPv4: 恰好四个 [0,255] 十进制段，拒绝前导零
//   - IPv6: 标准冒分十六进制，至多一个 "::"，展开后恰好 8 组
//   - 拒绝 IPv6 zone ID（如 "fe80::1%eth0"）与 IPv4-mapped IPv6 输入，
//     保证下游组件只需对 V4/V6 做双路分支
//
// [ResolvePrefix] 接受三种输入：
//   - 整数前缀长度，范围 [0, 位宽]，越界返回 [ErrPrefixOutOfRange]
//   - 点分掩码字符串（仅 IPv4），必须为自最高位起连续的 1，
//     非连续掩码（如 "255.0.255.0"）返回 [ErrInvalidMask]
//   - 缺省（空串）默认为该族全宽前缀（/32 或 /128），即单主机语义
//
// # 设计决策
//
//   - 直接使用 [netip.Addr] 值类型，零分配比较，解析后不可变
//   - 内联前缀与单独前缀参数冲突时内联者优先，不报错
//     （保留原工具行为，由调用方处理；见 cmd/ipcalc）
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
package xaddr
