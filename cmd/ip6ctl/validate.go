package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ip6kit/pkg/observability/xlog"
	"github.com/omeyang/ip6kit/pkg/util/xip6"
)

// validation 是单个输入的校验结果。
type validation struct {
	Input  string `json:"input" yaml:"input"`
	Valid  bool   `json:"valid" yaml:"valid"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func createValidateCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "校验 IPv6 地址或网络",
		ArgsUsage: "<input...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "network",
				Aliases: []string{"n"},
				Usage:   "按 CIDR 网络校验",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "静默模式，仅通过退出码报告结果",
			},
			&cli.BoolFlag{
				Name:  "no-zone",
				Usage: "不允许 zone ID",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return usagef("validate requires at least one input")
			}
			return cmdValidate(ctx, s, cmd, cmd.Args().Slice())
		},
	}
}

func cmdValidate(ctx context.Context, s *session, cmd *cli.Command, inputs []string) error {
	asNetwork := cmd.Bool("network")
	allowZone := !cmd.Bool("no-zone")

	results := make([]validation, 0, len(inputs))
	invalid := 0
	for _, in := range inputs {
		var ok bool
		var reason string
		if asNetwork {
			ok, reason = xip6.ValidateNetwork(in)
		} else {
			ok, reason = xip6.ValidateAddress(in, allowZone)
		}
		if !ok {
			invalid++
		}
		results = append(results, validation{Input: in, Valid: ok, Reason: reason})
	}
	s.logger.Debug(ctx, "validated inputs",
		xlog.Operation("validate"), xlog.Count(int64(len(inputs))))

	if !cmd.Bool("quiet") {
		err := render(outWriter(cmd), s.format, results, func(w io.Writer) {
			for _, r := range results {
				if r.Valid {
					fmt.Fprintf(w, "✓ %s is valid\n", r.Input)
				} else {
					fmt.Fprintf(w, "✗ %s is invalid: %s\n", r.Input, r.Reason)
				}
			}
		})
		if err != nil {
			return err
		}
	}
	if invalid > 0 {
		return &exitError{code: 1}
	}
	return nil
}
