package xlog

import (
	"fmt"
	"log/slog"
	"time"
)

// 常用属性 key，保持各组件日志字段一致。
const (
	KeyError     = "error"
	KeyDuration  = "duration"
	KeyCount     = "count"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyNetwork   = "network"
	KeyAddress   = "address"
	KeyPrefixLen = "prefix_len"
)

// Err 创建错误属性。err 为 nil 时返回空属性（被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Count 创建计数属性
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Network 创建网络属性，值为 CIDR 文本。
func Network(n fmt.Stringer) slog.Attr {
	return slog.String(KeyNetwork, n.String())
}

// Address 创建地址属性
func Address(a fmt.Stringer) slog.Attr {
	return slog.String(KeyAddress, a.String())
}

// PrefixLen 创建前缀长度属性
func PrefixLen(bits int) slog.Attr {
	return slog.Int(KeyPrefixLen, bits)
}
