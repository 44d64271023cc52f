package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ip6kit/pkg/observability/xlog"
	"github.com/omeyang/ip6kit/pkg/util/xsubnet"
)

// maxListedSubnets 是文本格式按前缀划分时列出的子网数上限。
const maxListedSubnets = 10

// calcResult 是 calc 命令的结构化输出，未请求的部分省略。
type calcResult struct {
	Info     *xsubnet.Info  `json:"info,omitempty" yaml:"info,omitempty"`
	Divided  []xsubnet.Info `json:"divided,omitempty" yaml:"divided,omitempty"`
	ByPrefix []xsubnet.Info `json:"by_prefix,omitempty" yaml:"by_prefix,omitempty"`
	Supernet *xsubnet.Info  `json:"supernet,omitempty" yaml:"supernet,omitempty"`
	Contains *membership    `json:"contains,omitempty" yaml:"contains,omitempty"`
	Overlaps *membership    `json:"overlaps,omitempty" yaml:"overlaps,omitempty"`
}

// membership 记录包含或重叠判断的结果。
type membership struct {
	Input  string `json:"input" yaml:"input"`
	Result bool   `json:"result" yaml:"result"`
}

func createCalcCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "calc",
		Usage:     "计算子网信息",
		ArgsUsage: "<cidr>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "info",
				Aliases: []string{"i"},
				Usage:   "显示网络信息（未指定其他操作时默认显示）",
			},
			&cli.IntFlag{
				Name:    "divide",
				Aliases: []string{"d"},
				Usage:   "划分为 N 个子网",
			},
			&cli.IntFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "按前缀长度划分",
			},
			&cli.IntFlag{
				Name:    "supernet",
				Aliases: []string{"s"},
				Usage:   "计算指定前缀长度的超网",
			},
			&cli.StringFlag{
				Name:  "contains",
				Usage: "判断地址是否在网络内",
			},
			&cli.StringFlag{
				Name:  "overlaps",
				Usage: "判断网络是否与之重叠",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return usagef("calc requires exactly one network in CIDR notation")
			}
			return cmdCalc(ctx, s, cmd, cmd.Args().First())
		},
	}
}

func cmdCalc(ctx context.Context, s *session, cmd *cli.Command, cidr string) error {
	calc, err := xsubnet.New(cidr, s.calculatorOptions()...)
	if err != nil {
		return err
	}
	s.logger.Debug(ctx, "calc", xlog.Operation("calc"), xlog.Network(calc.Network()))

	var res calcResult
	anyOp := false
	if cmd.IsSet("divide") {
		anyOp = true
		if res.Divided, err = calc.DivideInto(cmd.Int("divide")); err != nil {
			return err
		}
	}
	if cmd.IsSet("prefix") {
		anyOp = true
		if res.ByPrefix, err = calc.DivideByPrefix(cmd.Int("prefix")); err != nil {
			return err
		}
	}
	if cmd.IsSet("supernet") {
		anyOp = true
		sup, err := calc.Supernet(cmd.Int("supernet"))
		if err != nil {
			return err
		}
		res.Supernet = &sup
	}
	if cmd.IsSet("contains") {
		anyOp = true
		addr := cmd.String("contains")
		res.Contains = &membership{Input: addr, Result: calc.ContainsAddress(addr)}
	}
	if cmd.IsSet("overlaps") {
		anyOp = true
		other := cmd.String("overlaps")
		res.Overlaps = &membership{Input: other, Result: calc.OverlapsWith(other)}
	}
	if cmd.Bool("info") || !anyOp {
		info := calc.Info()
		res.Info = &info
	}

	return render(outWriter(cmd), s.format, res, func(w io.Writer) {
		writeCalcText(w, cidr, res)
	})
}

func writeCalcText(w io.Writer, cidr string, res calcResult) {
	if res.Info != nil {
		fmt.Fprintf(w, "Network: %s\n", res.Info.Network)
		fmt.Fprintf(w, "Network Address: %s\n", res.Info.NetworkAddress)
		fmt.Fprintf(w, "First Address: %s\n", res.Info.FirstAddress)
		fmt.Fprintf(w, "Last Address: %s\n", res.Info.LastAddress)
		fmt.Fprintf(w, "Prefix Length: /%d\n", res.Info.PrefixLength)
		fmt.Fprintf(w, "Number of Addresses: %s\n", res.Info.NumAddresses)
		fmt.Fprintf(w, "Netmask: %s\n", res.Info.Netmask)
	}
	if res.Divided != nil {
		fmt.Fprintf(w, "\nSubnets (%d):\n", len(res.Divided))
		for i, sub := range res.Divided {
			fmt.Fprintf(w, "  %d: %s (%s addresses)\n", i+1, sub.Network, sub.NumAddresses)
		}
	}
	if res.ByPrefix != nil {
		fmt.Fprintf(w, "\nCreated %d subnets with /%d:\n", len(res.ByPrefix), res.ByPrefix[0].PrefixLength)
		for _, sub := range res.ByPrefix[:min(len(res.ByPrefix), maxListedSubnets)] {
			fmt.Fprintf(w, "  %s\n", sub.Network)
		}
		if len(res.ByPrefix) > maxListedSubnets {
			fmt.Fprintf(w, "  ... and %d more\n", len(res.ByPrefix)-maxListedSubnets)
		}
	}
	if res.Supernet != nil {
		fmt.Fprintf(w, "\nSupernet: %s\n", res.Supernet.Network)
		fmt.Fprintf(w, "Network Address: %s\n", res.Supernet.NetworkAddress)
		fmt.Fprintf(w, "Prefix Length: /%d\n", res.Supernet.PrefixLength)
	}
	if res.Contains != nil {
		verb := "is not in"
		if res.Contains.Result {
			verb = "is in"
		}
		fmt.Fprintf(w, "%s %s %s\n", res.Contains.Input, verb, cidr)
	}
	if res.Overlaps != nil {
		verb := "does not overlap"
		if res.Overlaps.Result {
			verb = "overlaps"
		}
		fmt.Fprintf(w, "%s %s %s\n", res.Overlaps.Input, verb, cidr)
	}
}
