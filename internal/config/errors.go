package config

import "errors"

// 配置加载和校验相关错误。
var (
	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("config: unsupported config format")

	// ErrLoadFailed 表示配置文件读取失败。
	ErrLoadFailed = errors.New("config: failed to load config")

	// ErrParseFailed 表示配置内容解析失败。
	ErrParseFailed = errors.New("config: failed to parse config")

	// ErrUnmarshalFailed 表示配置反序列化失败。
	ErrUnmarshalFailed = errors.New("config: failed to unmarshal config")

	// ErrInvalidValue 表示配置项取值非法。
	ErrInvalidValue = errors.New("config: invalid value")
)
