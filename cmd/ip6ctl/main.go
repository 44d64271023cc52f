// ip6ctl 是 IPv6 地址与子网运算的命令行工具。
//
// 用法:
//
//	ip6ctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-f, --format     输出格式 text/json/yaml (默认: 配置文件 output.format 或 text)
//	-c, --config     配置文件路径（.yaml/.yml/.json）
//	    --log-level  诊断日志级别 (默认: warn)
//	    --log-file   诊断日志文件，按配置轮转；未指定时写 stderr
//
// 命令:
//
//	calc <cidr>          子网信息、划分、超网、包含与重叠判断
//	validate <input...>  校验地址或网络
//	generate <类型>      生成地址（link-local/ula/random/from-mac）
//	convert <addr>       地址格式转换
//	analyze <addr>       地址分类分析
//	aggregate <cidr...>  合并为最小 CIDR 集合
//	plan                 按部门分配子网
//
// 退出码:
//
//	0: 命令执行成功
//	1: 操作失败或输入无效（validate 命令: 存在无效输入）
//	2: 参数错误（缺少参数、未知 flag、未知命令等）
//
// 示例:
//
//	ip6ctl calc --divide 4 2001:db8::/32
//	ip6ctl -f json analyze fe80::1%eth0
//	ip6ctl generate --count 3 random --prefix 2001:db8:1::/64
//	ip6ctl plan --network 2001:db8::/48 --dept eng=4 --dept ops=2
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := createApp().Run(ctx, os.Args); err != nil {
		return exitCode(err)
	}
	return 0
}

// exitCode 将命令错误映射为退出码，并向 stderr 输出需要展示的错误信息。
func exitCode(err error) int {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	// CLI 框架产生的参数错误（如未知 flag、未知命令）已由框架输出详情，此处仅设置退出码。
	if isCLIUsageError(err) {
		return 2
	}
	fmt.Fprintf(os.Stderr, "错误: %v\n", err)
	return 1
}
