// Package xmac 提供 48 位 MAC 地址（EUI-48）的解析与 EUI-64 接口标识派生。
//
// 解析宽松：去除全部 ":"、"-"、"." 分隔符后要求恰好 12 个十六进制字符，
// 因此 "00:11:22:33:44:55"、"00-11-22-33-44-55"、"0011.2233.4455"、
// "001122334455" 都得到同一个地址。
//
//	mac, _ := xmac.Parse("00:11:22:33:44:55")
//	fmt.Printf("%x\n", mac.EUI64()) // 021122fffe334455
//
// # EUI-64
//
// [Addr.EUI64] 按 RFC 4291 附录 A 构造修改版 EUI-64：
// 第 1 字节与 0x02 异或（翻转 U/L 位），并在第 3、4 字节之间插入 ff fe。
// [FromEUI64] 执行逆运算，用于从 SLAAC 地址还原 MAC。
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组：值语义、可比较、可用作 map key
//   - 全零 MAC 是合法输入（EUI-64 派生不排除它），用 [Addr.IsZero] 判断
package xmac
