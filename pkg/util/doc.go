// Package util 提供 IPv6 地址运算相关的子包。
//
// 子包列表：
//   - xip6: IPv6 地址与网络值类型，基于 net/netip + go4.org/netipx（解析、格式化、分类、子网划分、聚合）
//   - xip6gen: 地址生成（链路本地、ULA、前缀内随机、MAC 派生的 EUI-64）
//   - xmac: MAC 地址工具库，多格式解析与 EUI-64 接口标识派生
//   - xsubnet: 子网计算器，网络汇总信息与按部门分配
//
// 设计原则：
//   - 值类型不可变，可安全地跨 goroutine 共享
//   - 错误可通过 errors.Is 匹配哨兵错误，通过 errors.As 获取结构化上下文
//   - 不执行任何网络 I/O
package util
