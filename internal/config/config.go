package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/ip6kit/pkg/observability/xlog"
	"github.com/omeyang/ip6kit/pkg/util/xip6"
	"github.com/omeyang/ip6kit/pkg/util/xip6gen"
	"github.com/omeyang/ip6kit/pkg/util/xsubnet"
)

// Format 配置文件格式。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// 输出格式。
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config 是 ip6ctl 的完整配置。
type Config struct {
	Output   Output   `koanf:"output"`
	Log      Log      `koanf:"log"`
	Generate Generate `koanf:"generate"`
	Plan     Plan     `koanf:"plan"`
}

// Output 控制结果渲染。
type Output struct {
	// Format 为 text、json 或 yaml。
	Format string `koanf:"format"`
}

// Log 控制诊断日志，日志始终与结果输出分离。
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File 为空时写 stderr，否则写入文件并按 Rotation 轮转。
	File     string        `koanf:"file"`
	Rotation xlog.Rotation `koanf:"rotation"`
}

// Generate 是 generate 命令的默认值。
type Generate struct {
	Prefix string `koanf:"prefix"`
	Count  int    `koanf:"count"`
}

// Plan 是 plan 命令的默认分配方案。
type Plan struct {
	Network     string         `koanf:"network"`
	Departments map[string]int `koanf:"departments"`
}

// Default 返回默认配置：文本输出，warn 级别日志写 stderr。
func Default() Config {
	return Config{
		Output: Output{Format: OutputText},
		Log: Log{
			Level:    "warn",
			Format:   "text",
			Rotation: xlog.DefaultRotation(),
		},
		Generate: Generate{
			Prefix: "2001:db8::/64",
			Count:  1,
		},
	}
}

// Load 从文件加载配置，path 为空时返回默认配置。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	format, err := detectFormat(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return LoadBytes(data, format)
}

// LoadBytes 从字节数据加载配置。空数据等价于默认配置。
func LoadBytes(data []byte, format Format) (Config, error) {
	parser, err := parserFor(format)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	// 设计决策: 解码到预填默认值的结构体，文件中缺省的字段保留默认值。
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 校验各配置项取值。
func (c Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: output.format %q, want text, json or yaml", ErrInvalidValue, c.Output.Format)
	}
	if _, err := xlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidValue, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q, want text or json", ErrInvalidValue, c.Log.Format)
	}
	if c.Log.File != "" {
		if err := c.Log.Rotation.Validate(); err != nil {
			return fmt.Errorf("%w: log.rotation: %w", ErrInvalidValue, err)
		}
	}
	if c.Generate.Count < 1 || c.Generate.Count > xip6gen.MaxCount {
		return fmt.Errorf("%w: generate.count %d, want 1~%d", ErrInvalidValue, c.Generate.Count, xip6gen.MaxCount)
	}
	if c.Generate.Prefix != "" {
		if ok, reason := xip6.ValidateNetwork(c.Generate.Prefix); !ok {
			return fmt.Errorf("%w: generate.prefix: %s", ErrInvalidValue, reason)
		}
	}
	if c.Plan.Network != "" {
		if ok, reason := xip6.ValidateNetwork(c.Plan.Network); !ok {
			return fmt.Errorf("%w: plan.network: %s", ErrInvalidValue, reason)
		}
	}
	for name, count := range c.Plan.Departments {
		if count < 0 {
			return fmt.Errorf("%w: plan.departments.%s is negative", ErrInvalidValue, name)
		}
		if count > xsubnet.MaxAllocation {
			return fmt.Errorf("%w: plan.departments.%s exceeds %d", ErrInvalidValue, name, xsubnet.MaxAllocation)
		}
	}
	return nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
