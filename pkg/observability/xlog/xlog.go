package xlog

import (
	"context"
	"log/slog"
)

// Logger 日志接口
//
// 方法签名只接受 slog.Attr，避免隐式 key-value 转换。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 返回带额外属性的派生 Logger，派生 logger 共享父级的级别。
	With(attrs ...slog.Attr) Logger

	// WithGroup 返回带分组的派生 Logger。
	WithGroup(name string) Logger
}

// Leveler 级别控制接口
type Leveler interface {
	// SetLevel 运行时调整级别
	SetLevel(level Level)

	// GetLevel 获取当前级别
	GetLevel() Level

	// Enabled 报告指定级别是否会输出
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 组合接口，[Builder.Build] 返回此类型。
type LoggerWithLevel interface {
	Logger
	Leveler
}
