// Package xsubnet 提供子网派生计算。
//
// 核心入口是 [Compute]：由 (地址, 前缀) 对派生网络地址、广播地址
// （仅 IPv4）、可用主机范围与主机数。主机数使用 [*big.Int] 精确表示，
// IPv6 的 2^(128-L) 不截断、不溢出。
//
// # 核心功能
//
//   - subnet.go: [Subnet] 值类型与 [Compute] 派生计算
//   - transition.go: [TransitionTo] 第二前缀的子网枚举 / 超网计算
//   - split.go: [SplitBySizes] 按主机数的 VLSM 分配（基于
//     [*netipx.IPSet] 的 RemoveFreePrefix）
//
// # 主机范围规则
//
// IPv4:
//   - /32: HostMin = HostMax = 输入地址，主机数 1（单主机）
//   - /31: HostMin = 网络地址, HostMax = 广播地址，主机数 2
//     （RFC 3021 点对点链路，不扣除网络/广播）
//   - 其余: [网络地址+1, 广播地址−1]，主机数 2^(32−L) − 2，负值钳制为 0
//
// IPv6:
//   - 无广播概念，报告前缀地址（即网络地址）
//   - /128: HostMin = HostMax = 输入地址，主机数 1
//   - 其余: [网络地址, 网络地址 OR 反掩码]，主机数精确为 2^(128−L)
//
// 所有派生值均为本族位宽内的合法地址；[Subnet] 计算后不再变更。
package xsubnet
