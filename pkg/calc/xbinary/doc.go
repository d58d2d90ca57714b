// Package xbinary 提供地址与掩码的二进制渲染。
//
// [Render] 将地址转换为分组的二进制字符串：IPv4 为点分 8 位组，
// IPv6 为冒分 16 位组，均补零到全宽。splitAt 处插入一个空格，
// 在视觉上区分网络位与主机位——即使边界落在组内。
//
// 纯格式化函数，无状态。渲染掩码后数出前导 1 的个数即可还原
// 前缀长度（往返性质，见测试）。
package xbinary
