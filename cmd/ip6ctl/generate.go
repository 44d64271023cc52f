package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ip6kit/pkg/observability/xlog"
	"github.com/omeyang/ip6kit/pkg/util/xip6"
	"github.com/omeyang/ip6kit/pkg/util/xip6gen"
)

func createGenerateCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "生成 IPv6 地址",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "生成数量（默认: 配置文件 generate.count 或 1）",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "link-local",
				Usage: "生成链路本地地址",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "interface-id", Aliases: []string{"i"}, Usage: "接口 ID（64 位十六进制）"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					id := cmd.String("interface-id")
					return cmdGenerate(ctx, s, cmd, "link-local", func() (xip6.Address, error) {
						return s.gen.LinkLocal(id)
					})
				},
			},
			{
				Name:  "ula",
				Usage: "生成唯一本地地址（ULA）",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "global-id", Aliases: []string{"g"}, Usage: "全局 ID（40 位十六进制）"},
					&cli.StringFlag{Name: "subnet-id", Aliases: []string{"s"}, Usage: "子网 ID（16 位十六进制）"},
					&cli.StringFlag{Name: "interface-id", Aliases: []string{"i"}, Usage: "接口 ID（64 位十六进制）"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					gid, sid, iid := cmd.String("global-id"), cmd.String("subnet-id"), cmd.String("interface-id")
					return cmdGenerate(ctx, s, cmd, "ula", func() (xip6.Address, error) {
						return s.gen.UniqueLocal(gid, sid, iid)
					})
				},
			},
			{
				Name:  "random",
				Usage: "在前缀内生成随机地址",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "prefix", Aliases: []string{"p"}, Usage: "前缀（默认: 配置文件 generate.prefix）"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return cmdGenerateRandom(ctx, s, cmd)
				},
			},
			{
				Name:      "from-mac",
				Usage:     "由 MAC 地址生成 EUI-64 链路本地地址",
				ArgsUsage: "<mac>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() != 1 {
						return usagef("from-mac requires exactly one MAC address")
					}
					mac := cmd.Args().First()
					return cmdGenerate(ctx, s, cmd, "from-mac", func() (xip6.Address, error) {
						return xip6gen.FromMAC(mac)
					})
				},
			},
		},
	}
}

// generateCount 返回生成数量，flag 优先于配置文件。
func generateCount(s *session, cmd *cli.Command) (int, error) {
	count := s.cfg.Generate.Count
	if cmd.IsSet("count") {
		count = cmd.Int("count")
	}
	if count < 1 || count > xip6gen.MaxCount {
		return 0, usagef("count %d out of range 1~%d", count, xip6gen.MaxCount)
	}
	return count, nil
}

func cmdGenerate(ctx context.Context, s *session, cmd *cli.Command, kind string, next func() (xip6.Address, error)) error {
	count, err := generateCount(s, cmd)
	if err != nil {
		return err
	}
	out := make([]string, 0, count)
	for range count {
		a, err := next()
		if err != nil {
			return err
		}
		out = append(out, a.String())
	}
	s.logger.Debug(ctx, "generated addresses",
		xlog.Operation("generate_"+kind), xlog.Count(int64(count)))
	return writeAddresses(cmd, s.format, out)
}

func cmdGenerateRandom(ctx context.Context, s *session, cmd *cli.Command) error {
	count, err := generateCount(s, cmd)
	if err != nil {
		return err
	}
	prefix := s.cfg.Generate.Prefix
	if cmd.IsSet("prefix") {
		prefix = cmd.String("prefix")
	}
	addrs, err := s.gen.RandomN(prefix, count)
	if err != nil {
		return err
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, a.String())
	}
	s.logger.Debug(ctx, "generated addresses",
		xlog.Operation("generate_random"), xlog.Count(int64(count)), slog.String("prefix", prefix))
	return writeAddresses(cmd, s.format, out)
}

func writeAddresses(cmd *cli.Command, format string, addrs []string) error {
	return render(outWriter(cmd), format, addrs, func(w io.Writer) {
		printLines(w, addrs)
	})
}
