package xlog

import "errors"

var (
	// ErrUnknownLevel 表示无法识别的级别名称。
	ErrUnknownLevel = errors.New("xlog: unknown level")

	// ErrUnknownFormat 表示输出格式不是 text 或 json。
	ErrUnknownFormat = errors.New("xlog: unknown format")

	// ErrEmptyFilename 表示轮转文件名为空。
	ErrEmptyFilename = errors.New("xlog: empty rotation filename")

	// ErrInvalidRotation 表示轮转参数越界。
	ErrInvalidRotation = errors.New("xlog: invalid rotation config")
)
