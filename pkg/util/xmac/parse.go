package xmac

import (
	"fmt"
	"strings"
)

// Parse 解析 MAC 地址字符串。
//
// 去除首尾空白以及所有 ":"、"-"、"." 分隔符后，剩余部分必须恰好是
// 12 个十六进制字符（大小写不敏感）。分隔符位置不做校验。
func Parse(s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, ErrEmpty
	}
	digits := stripSeparators(s)
	if len(digits) != 12 {
		return Addr{}, fmt.Errorf("%w: expected 12 hex digits, got %d in %q", ErrInvalidLength, len(digits), s)
	}
	var a Addr
	for i := range 6 {
		b, err := parseHexByte(digits[i*2], digits[i*2+1])
		if err != nil {
			return Addr{}, fmt.Errorf("%w: invalid hex in %q", ErrInvalidFormat, s)
		}
		a.bytes[i] = b
	}
	return a, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return a
}

// stripSeparators 去除 MAC 常见分隔符。无分隔符时不分配内存。
func stripSeparators(s string) string {
	if !strings.ContainsAny(s, ":-.") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ':', '-', '.':
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// parseHexByte 解析两个十六进制字符为一个字节。
func parseHexByte(high, low byte) (byte, error) {
	h := hexValue(high)
	l := hexValue(low)
	if h < 0 || l < 0 {
		return 0, ErrInvalidFormat
	}
	return byte(h<<4 | l), nil
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
