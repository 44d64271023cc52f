package xip6gen

import (
	"crypto/rand"
	"io"
)

// Option 定义 Generator 可选配置函数类型。
type Option func(*options)

type options struct {
	rand io.Reader
}

func defaultOptions() options {
	return options{
		rand: rand.Reader,
	}
}

// WithRand 设置随机字节源。默认使用 [crypto/rand.Reader]。
// 传入 nil 将被忽略。自定义随机源若被多个 goroutine 共享，需自行保证并发安全。
func WithRand(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}
