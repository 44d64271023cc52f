package xip6

import (
	"encoding/hex"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Compressed 返回 RFC 5952 规范文本：小写十六进制、去除前导零、
// 最长（等长取最左）的连续零组替换为 "::"（单个零组不压缩），
// 存在 zone 时追加 "%zone"。零值返回空字符串。
func (a Address) Compressed() string {
	if !a.IsValid() {
		return ""
	}
	return a.addr.String()
}

// Exploded 返回完整展开形式：8 组 4 位小写十六进制，以 ":" 分隔，
// 存在 zone 时追加 "%zone"。零值返回空字符串。
func (a Address) Exploded() string {
	if !a.IsValid() {
		return ""
	}
	b := a.addr.As16()
	var sb strings.Builder
	sb.Grow(39 + 1 + len(a.Zone()))
	for i := 0; i < 16; i += 2 {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteByte(hexDigits[b[i]>>4])
		sb.WriteByte(hexDigits[b[i]&0x0f])
		sb.WriteByte(hexDigits[b[i+1]>>4])
		sb.WriteByte(hexDigits[b[i+1]&0x0f])
	}
	if z := a.Zone(); z != "" {
		sb.WriteByte('%')
		sb.WriteString(z)
	}
	return sb.String()
}

// Binary 返回 128 个 '0'/'1' 字符，最高位在前，不含 zone。
func (a Address) Binary() string {
	b := a.addr.As16()
	out := make([]byte, 0, 128)
	for _, octet := range b {
		for bit := 7; bit >= 0; bit-- {
			out = append(out, '0'+(octet>>uint(bit))&1)
		}
	}
	return string(out)
}

// Hex 返回 32 个小写十六进制字符，不含 zone。
func (a Address) Hex() string {
	b := a.addr.As16()
	return hex.EncodeToString(b[:])
}

// ReverseName 返回反向 DNS 名称：32 个半字节倒序，以 "." 连接，
// 后缀 ".ip6.arpa"。例如 2001:db8::1 →
// "1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa"。
func (a Address) ReverseName() string {
	b := a.addr.As16()
	out := make([]byte, 0, 64+len(".ip6.arpa"))
	for i := len(b) - 1; i >= 0; i-- {
		out = append(out, hexDigits[b[i]&0x0f], '.', hexDigits[b[i]>>4], '.')
	}
	out = append(out, "ip6.arpa"...)
	return string(out)
}
