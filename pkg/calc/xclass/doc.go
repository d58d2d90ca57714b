// Package xclass 提供 IP 地址的分类查询。
//
// 两套相互独立的分类：
//
//   - [ClassOf]: IPv4 传统分类（A–E），由首八位组的前导比特决定，
//     仅 IPv4 有意义
//   - [TagOf]: 特殊用途范围标签（私网、环回、链路本地、多播等），
//     IPv4 与 IPv6 各有一张规则表
//
// # 规则表
//
// 特殊用途范围表是有序的 (前缀, 标签) 列表，按"最特殊者优先"的固定
// 顺序逐条求值，首个命中即为结果。成员判定为
// (地址 AND 掩码) == 网络地址，即 [netip.Prefix.Contains]。
//
// 设计决策: 规则表以内嵌 YAML（rules.yaml）表达并经 koanf 解码，
// 而非 Go 字面量——优先级顺序集中在一个数据文件里，可独立审计和
// 测试，新增范围不触碰求值逻辑。内嵌数据在构建期固定，加载失败
// 属于程序缺陷，首次使用时 panic。
//
// # 典型标签
//
//   - IPv4: "Private Internet"（10/8, 172.16/12, 192.168/16）、
//     "Loopback"、"Link-Local"、"Multicast"（优先于 D 类展示）、
//     "Shared Address Space"（100.64/10, CGNAT）、
//     "This Network"（0/8）、"Limited Broadcast"（255.255.255.255/32）
//   - IPv6: "Loopback"、"Unspecified"、"Unique Local"（fc00::/7）、
//     "Link-Local"（fe80::/10）、"Multicast"（ff00::/8）、
//     "Documentation"（2001:db8::/32）
package xclass
