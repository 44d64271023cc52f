package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xmac: empty input")

	// ErrInvalidFormat 表示输入包含非十六进制字符。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrInvalidLength 表示去除分隔符后不是 12 个十六进制字符。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrNotEUI64 表示接口标识不含 ff:fe 标记，无法还原 MAC。
	ErrNotEUI64 = errors.New("xmac: interface identifier is not EUI-64 derived")
)
