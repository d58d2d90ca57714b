// Package xreport 将计算结果渲染为定列宽的人类可读报告。
//
// 报告布局沿用经典 ipcalc 的输出：
//
//	Address:    192.168.1.1           11000000.10101000.00000001. 00000001
//	Netmask:    255.255.255.0 = 24    11111111.11111111.11111111. 00000000
//	Wildcard:   0.0.0.255             00000000.00000000.00000000. 11111111
//	=>
//	Network:    192.168.1.0/24        11000000.10101000.00000001. 00000000
//	HostMin:    192.168.1.1           11000000.10101000.00000001. 00000001
//	HostMax:    192.168.1.254         11000000.10101000.00000001. 11111110
//	Broadcast:  192.168.1.255         11000000.10101000.00000001. 11111111
//	Hosts/Net:  254                   Class C, Private Internet
//
// /31 不打印 Broadcast 行，/32 不打印 HostMin/HostMax/Broadcast 行，
// 但 Hosts/Net 仍分别报告 2 和 1。IPv6 无广播，报告 Prefix 行
// （即网络地址），前缀短于 /128 时附 HostMin/HostMax 与总主机数。
//
// 三种输出模式（[ModePlain]、[ModeColor]、[ModeHTML]）共用同一布局，
// 仅配色器不同；二进制列可整体关闭。输出写入调用方提供的
// [io.Writer]，包内无全局状态。
package xreport
