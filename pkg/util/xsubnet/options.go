package xsubnet

import (
	"io"

	"github.com/omeyang/ip6kit/pkg/observability/xlog"
)

// Option 定义 Calculator 可选配置函数类型。
type Option func(*options)

type options struct {
	logger xlog.Logger
}

func defaultOptions() options {
	return options{
		logger: discardLogger(),
	}
}

// WithLogger 设置记录划分与分配决策的日志器，默认丢弃。传入 nil 将被忽略。
func WithLogger(logger xlog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func discardLogger() xlog.Logger {
	logger, _, err := xlog.New().SetOutput(io.Discard).SetLevel(xlog.LevelError + 4).Build()
	if err != nil {
		return xlog.Default()
	}
	return logger
}
