package xlog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// maxRotationSizeMB 单个日志文件大小上限（10 GB）
	maxRotationSizeMB = 10240
	// maxRotationBackups 备份文件数量上限
	maxRotationBackups = 1024
	// maxRotationAgeDays 备份保留天数上限
	maxRotationAgeDays = 3650
)

// Rotation 文件轮转配置，字段可直接从配置文件映射。
type Rotation struct {
	// MaxSizeMB 单个文件最大大小，超过后轮转，必须 > 0。
	MaxSizeMB int `koanf:"max_size_mb" json:"max_size_mb" yaml:"max_size_mb"`

	// MaxBackups 保留的备份数量，0 表示不限制。
	MaxBackups int `koanf:"max_backups" json:"max_backups" yaml:"max_backups"`

	// MaxAgeDays 备份保留天数，0 表示不按天数清理。
	MaxAgeDays int `koanf:"max_age_days" json:"max_age_days" yaml:"max_age_days"`

	// Compress 是否 gzip 压缩备份。
	Compress bool `koanf:"compress" json:"compress" yaml:"compress"`
}

// DefaultRotation 返回适合命令行工具的轮转配置：10MB、3 个备份、保留 7 天。
func DefaultRotation() Rotation {
	return Rotation{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7}
}

// Validate 检查轮转参数范围。
func (r Rotation) Validate() error {
	if r.MaxSizeMB <= 0 || r.MaxSizeMB > maxRotationSizeMB {
		return fmt.Errorf("%w: max size %dMB, want 1~%d", ErrInvalidRotation, r.MaxSizeMB, maxRotationSizeMB)
	}
	if r.MaxBackups < 0 || r.MaxBackups > maxRotationBackups {
		return fmt.Errorf("%w: max backups %d, want 0~%d", ErrInvalidRotation, r.MaxBackups, maxRotationBackups)
	}
	if r.MaxAgeDays < 0 || r.MaxAgeDays > maxRotationAgeDays {
		return fmt.Errorf("%w: max age %d days, want 0~%d", ErrInvalidRotation, r.MaxAgeDays, maxRotationAgeDays)
	}
	return nil
}

// newRotator 创建 lumberjack 写入器，必要时创建父目录。
func newRotator(filename string, r Rotation) (*lumberjack.Logger, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	clean := filepath.Clean(filename)
	if err := os.MkdirAll(filepath.Dir(clean), 0o750); err != nil {
		return nil, fmt.Errorf("xlog: create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   clean,
		MaxSize:    r.MaxSizeMB,
		MaxBackups: r.MaxBackups,
		MaxAge:     r.MaxAgeDays,
		Compress:   r.Compress,
	}, nil
}
