package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ip6kit/internal/config"
	"github.com/omeyang/ip6kit/pkg/observability/xlog"
	"github.com/omeyang/ip6kit/pkg/util/xip6gen"
	"github.com/omeyang/ip6kit/pkg/util/xsubnet"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示命令参数错误，对应退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// cliUsageMessages 是 urfave/cli 参数错误消息的特征片段。
var cliUsageMessages = []string{
	"flag provided but not defined",
	"flag needs an argument",
	"invalid value",
	"No help topic for",
	"Required flag",
}

func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, m := range cliUsageMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// session 保存一次命令执行的共享状态，由根命令的 Before 初始化。
type session struct {
	cfg     config.Config
	format  string
	logger  xlog.LoggerWithLevel
	cleanup func() error
	gen     *xip6gen.Generator
}

// calculatorOptions 返回带会话日志器的子网计算器选项。
func (s *session) calculatorOptions() []xsubnet.Option {
	return []xsubnet.Option{xsubnet.WithLogger(s.logger)}
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	s := &session{}
	return &cli.Command{
		Name:    "ip6ctl",
		Usage:   "IPv6 地址运算、子网计算与网络规划",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "输出格式 (text/json/yaml)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径 (.yaml/.yml/.json)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "诊断日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "诊断日志文件，未指定时写 stderr",
			},
		},
		Before:   s.setup,
		After:    s.teardown,
		Commands: createCommands(s),
		Authors: []any{
			"ip6kit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(errWriter(cmd), err)
			}
		},
	}
}

// 创建所有子命令。
func createCommands(s *session) []*cli.Command {
	return []*cli.Command{
		createCalcCommand(s),
		createValidateCommand(s),
		createGenerateCommand(s),
		createConvertCommand(s),
		createAnalyzeCommand(s),
		createAggregateCommand(s),
		createPlanCommand(s),
	}
}

// setup 加载配置、合并全局 flag 并创建日志器。
func (s *session) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if cmd.IsSet("format") {
		cfg.Output.Format = cmd.String("format")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	switch format {
	case config.OutputText, config.OutputJSON, config.OutputYAML:
	default:
		return ctx, usagef("unknown output format %q (want text, json or yaml)", cfg.Output.Format)
	}

	b := xlog.New().
		SetOutput(errWriter(cmd)).
		SetLevelString(cfg.Log.Level).
		SetFormat(cfg.Log.Format).
		SetAttrs(xlog.Component("ip6ctl"))
	if cfg.Log.File != "" {
		b = b.SetRotation(cfg.Log.File, cfg.Log.Rotation)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return ctx, usagef("logging: %v", err)
	}

	s.cfg = cfg
	s.format = format
	s.logger = logger
	s.cleanup = cleanup
	s.gen = xip6gen.New()
	return ctx, nil
}

func (s *session) teardown(_ context.Context, _ *cli.Command) error {
	if s.cleanup == nil {
		return nil
	}
	return s.cleanup()
}

// outWriter 返回结果输出目标。
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
