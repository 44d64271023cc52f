// Package xip6 提供 IPv6 地址与 CIDR 网络的解析、格式化、分类和划分运算。
//
// xip6 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 128 位掩码运算使用 [lukechampine.com/uint128]，地址数量使用 [math/big]
// （/0 网络包含 2^128 个地址，超出 128 位无符号整数范围）。
//
// # 核心类型
//
//   - [Address]: 单个 IPv6 地址，可携带 zone（如 "fe80::1%eth0"）
//   - [Network]: CIDR 网络（地址 + 前缀长度），构造时自动掩码到网络边界
//
// 两者都是不可变值类型，可直接用 == 比较、用作 map key，并发安全。
// [Address] 的相等性同时比较数值和 zone：fe80::1%eth0 与 fe80::1%eth1 不相等。
//
// # 快速示例
//
//	addr, _ := xip6.ParseAddress("2001:0db8:0000:0000:0000:0000:0000:0001")
//	fmt.Println(addr.Compressed())  // 2001:db8::1
//	fmt.Println(addr.Type())        // Global Unicast
//
//	n, _ := xip6.ParseNetwork("2001:db8::1/32")
//	fmt.Println(n)                  // 2001:db8::/32（主机位被清零）
//	subs, _ := n.Subnets(4)         // 16 个 /36
//
// # 地址分类
//
// [Address.Type] 按固定优先级返回第一个匹配的类型：
// Loopback → Link-Local → Unique Local (ULA) → Multicast → Global Unicast → Unspecified → Reserved。
// 该顺序是输出契约的一部分，不按"最具体前缀"重排。
// 分类只看地址数值的高位，与 zone 无关。
//
// # 子网枚举上限
//
// [Network.Subnets] 一次性返回切片，prefix delta 最大为 [MaxSubnetDelta]（1,048,576 个子网），
// 超出返回 [ErrNetworkTooLarge]。需要更大规模时使用惰性迭代的 [Network.SubnetSeq]，
// 其上限为 [MaxSeqDelta]（uint64 计数器）。[Network.Addresses] 拒绝短于 /64 的网络。
//
// # 错误处理
//
// 所有可失败函数返回 [*Error]，其 Kind 为预定义哨兵错误之一，支持 errors.Is 判断：
//
//	_, err := xip6.ParseNetwork("2001:db8::/200")
//	if errors.Is(err, xip6.ErrInvalidPrefix) {
//	    // 处理无效前缀
//	}
//
// 校验类函数（[ValidateAddress]、[ValidateNetwork]）不返回 error，
// 而是返回 (bool, 原因) 供上层直接展示。
package xip6
