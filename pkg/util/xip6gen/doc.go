// Package xip6gen 按 RFC 方案构造 IPv6 地址：链路本地 (fe80::/64)、
// 唯一本地 ULA (fd00::/8)、前缀内随机地址，以及由 MAC 派生的 EUI-64 地址。
//
// 可选分量以十六进制字符串传入，允许 ":" 和 "-" 分隔；传空字符串表示随机生成。
// 分量长度不符、奇数长度或含非十六进制字符时返回 [xip6.ErrInvalidAddress]。
//
//	g := xip6gen.New()
//	ll, _ := g.LinkLocal("")                            // fe80::xxxx:xxxx:xxxx:xxxx
//	ula, _ := g.UniqueLocal("0123456789", "abcd", "")   // fd01:2345:6789:abcd:...
//	a, _ := xip6gen.FromMAC("00:11:22:33:44:55")        // fe80::211:22ff:fe33:4455
//
// # 随机源
//
// 默认随机源为 [crypto/rand.Reader]，可被多个 goroutine 并发读取。
// 随机性只用于地址多样性，不承担安全职责。测试可通过 [WithRand] 注入固定输出，
// 使结果完全确定。随机源读取失败时返回包装后的错误，不会产出部分填充的地址。
package xip6gen
