package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ip6kit/pkg/observability/xlog"
	"github.com/omeyang/ip6kit/pkg/util/xip6"
	"github.com/omeyang/ip6kit/pkg/util/xsubnet"
)

func createAggregateCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "aggregate",
		Usage:     "合并网络为最小 CIDR 集合",
		ArgsUsage: "<cidr...>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() == 0 {
				return usagef("aggregate requires at least one network")
			}
			return cmdAggregate(ctx, s, cmd, cmd.Args().Slice())
		},
	}
}

func cmdAggregate(ctx context.Context, s *session, cmd *cli.Command, texts []string) error {
	nets, err := xip6.ParseNetworks(texts)
	if err != nil {
		return err
	}
	merged, err := xip6.Aggregate(nets)
	if err != nil {
		return err
	}
	s.logger.Debug(ctx, "aggregated networks",
		xlog.Operation("aggregate"), xlog.Count(int64(len(merged))))

	out := make([]string, 0, len(merged))
	for _, n := range merged {
		out = append(out, n.String())
	}
	return render(outWriter(cmd), s.format, out, func(w io.Writer) {
		printLines(w, out)
	})
}

func createPlanCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "按部门分配子网",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "network",
				Aliases: []string{"n"},
				Usage:   "待分配的网络（默认: 配置文件 plan.network）",
			},
			&cli.StringSliceFlag{
				Name:    "dept",
				Aliases: []string{"d"},
				Usage:   "部门需求 name=count，可重复（默认: 配置文件 plan.departments）",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdPlan(ctx, s, cmd)
		},
	}
}

func cmdPlan(ctx context.Context, s *session, cmd *cli.Command) error {
	network := s.cfg.Plan.Network
	if cmd.IsSet("network") {
		network = cmd.String("network")
	}
	if network == "" {
		return usagef("plan requires --network or plan.network in the config file")
	}

	departments := s.cfg.Plan.Departments
	if cmd.IsSet("dept") {
		parsed, err := parseDepartments(cmd.StringSlice("dept"))
		if err != nil {
			return err
		}
		departments = parsed
	}
	if len(departments) == 0 {
		return usagef("plan requires at least one --dept or plan.departments in the config file")
	}

	plan, err := xsubnet.RecommendAllocation(network, departments, s.calculatorOptions()...)
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "allocation planned",
		xlog.Operation("plan"), slog.String(xlog.KeyNetwork, plan.Network.Network),
		xlog.PrefixLen(plan.SubnetPrefix), xlog.Count(int64(plan.Requested)))

	return render(outWriter(cmd), s.format, plan, func(w io.Writer) {
		fmt.Fprintf(w, "Network: %s\n", plan.Network.Network)
		fmt.Fprintf(w, "Subnet Prefix: /%d (%d of %d subnets allocated)\n",
			plan.SubnetPrefix, plan.Requested, plan.Available)
		for _, d := range plan.Departments {
			fmt.Fprintf(w, "\n%s (%d):\n", d.Name, len(d.Subnets))
			for _, sub := range d.Subnets {
				fmt.Fprintf(w, "  %s\n", sub.Network)
			}
		}
	})
}

// parseDepartments 解析 name=count 形式的部门需求，同名部门的需求累加。
// 单个部门的需求不得超过 [xsubnet.MaxAllocation]。
func parseDepartments(entries []string) (map[string]int, error) {
	out := make(map[string]int, len(entries))
	for _, entry := range entries {
		name, countText, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, usagef("department %q must be name=count", entry)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countText))
		if err != nil || count < 0 {
			return nil, usagef("department %q has invalid count %q", name, countText)
		}
		if count > xsubnet.MaxAllocation-out[name] {
			return nil, usagef("department %q requests more than %d subnets", name, xsubnet.MaxAllocation)
		}
		out[name] += count
	}
	return out, nil
}
