package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ip6kit/pkg/util/xip6"
	"github.com/omeyang/ip6kit/pkg/util/xip6gen"
)

// conversion 是 convert 命令的结构化输出，未请求的格式省略。
type conversion struct {
	Input      string `json:"input" yaml:"input"`
	Compressed string `json:"compressed,omitempty" yaml:"compressed,omitempty"`
	Expanded   string `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Reverse    string `json:"reverse_dns,omitempty" yaml:"reverse_dns,omitempty"`
	Binary     string `json:"binary,omitempty" yaml:"binary,omitempty"`
	Hex        string `json:"hex,omitempty" yaml:"hex,omitempty"`
	Type       string `json:"type,omitempty" yaml:"type,omitempty"`
}

func createConvertCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "转换 IPv6 地址格式",
		ArgsUsage: "<address>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "compress", Usage: "压缩形式"},
			&cli.BoolFlag{Name: "expand", Aliases: []string{"e"}, Usage: "展开形式"},
			&cli.BoolFlag{Name: "reverse", Aliases: []string{"r"}, Usage: "反向 DNS 名称"},
			&cli.BoolFlag{Name: "binary", Aliases: []string{"b"}, Usage: "二进制表示"},
			&cli.BoolFlag{Name: "hex", Aliases: []string{"x"}, Usage: "十六进制表示"},
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "显示全部格式"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return usagef("convert requires exactly one address")
			}
			return cmdConvert(s, cmd, cmd.Args().First())
		},
	}
}

func cmdConvert(s *session, cmd *cli.Command, text string) error {
	addr, err := xip6.ParseAddress(text)
	if err != nil {
		return err
	}

	all := cmd.Bool("all")
	res := conversion{Input: text}
	if all || cmd.Bool("compress") {
		if res.Compressed, err = xip6.Compress(text); err != nil {
			return err
		}
	}
	if all || cmd.Bool("expand") {
		if res.Expanded, err = xip6.Expand(text); err != nil {
			return err
		}
	}
	if all || cmd.Bool("reverse") {
		if res.Reverse, err = xip6gen.ReversePointer(text); err != nil {
			return err
		}
	}
	if all || cmd.Bool("binary") {
		res.Binary = addr.Binary()
	}
	if all || cmd.Bool("hex") {
		res.Hex = addr.Hex()
	}
	if all {
		res.Type = addr.Type().String()
	}
	if res == (conversion{Input: text}) {
		res.Compressed = addr.Compressed()
	}

	return render(outWriter(cmd), s.format, res, func(w io.Writer) {
		if all {
			fmt.Fprintf(w, "Compressed:  %s\n", res.Compressed)
			fmt.Fprintf(w, "Expanded:    %s\n", res.Expanded)
			fmt.Fprintf(w, "Binary:      %s\n", res.Binary)
			fmt.Fprintf(w, "Hexadecimal: %s\n", res.Hex)
			fmt.Fprintf(w, "Reverse DNS: %s\n", res.Reverse)
			fmt.Fprintf(w, "Type:        %s\n", res.Type)
			return
		}
		for _, v := range []string{res.Compressed, res.Expanded, res.Reverse, res.Binary, res.Hex} {
			if v != "" {
				fmt.Fprintln(w, v)
			}
		}
	})
}

// analysis 是 analyze 命令的结构化输出。
type analysis struct {
	Address             string `json:"address" yaml:"address"`
	Expanded            string `json:"expanded" yaml:"expanded"`
	xip6.Classification `yaml:",inline"`
	// MAC 仅当链路本地地址的接口 ID 由 EUI-64 派生时存在。
	MAC string `json:"eui64_mac,omitempty" yaml:"eui64_mac,omitempty"`
}

func createAnalyzeCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "分析 IPv6 地址",
		ArgsUsage: "<address>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return usagef("analyze requires exactly one address")
			}
			return cmdAnalyze(s, cmd, cmd.Args().First())
		},
	}
}

func cmdAnalyze(s *session, cmd *cli.Command, text string) error {
	addr, err := xip6.ParseAddress(text)
	if err != nil {
		return err
	}
	res := analysis{
		Address:        addr.Compressed(),
		Expanded:       addr.Exploded(),
		Classification: xip6.Classify(addr),
	}
	// 只有 fe80::/10 的接口 ID 按 EUI-64 由 MAC 派生，其他地址的 ff:fe 只是巧合。
	if addr.IsLinkLocal() {
		if mac, err := xip6gen.MACFromAddress(addr); err == nil {
			res.MAC = mac.String()
		}
	}

	return render(outWriter(cmd), s.format, res, func(w io.Writer) {
		fmt.Fprintf(w, "Address: %s\n", res.Address)
		fmt.Fprintf(w, "Type: %s\n", res.Type)
		fmt.Fprintf(w, "Expanded: %s\n", res.Expanded)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Properties:")
		property(w, "Loopback", res.IsLoopback)
		property(w, "Link-Local", res.IsLinkLocal)
		property(w, "Unique Local", res.IsUniqueLocal)
		property(w, "Multicast", res.IsMulticast)
		property(w, "Global", res.IsGlobalUnicast)
		property(w, "Unspecified", res.IsUnspecified)
		property(w, "Documentation", res.IsDocumentation)
		if res.MulticastScope != "" {
			property(w, "Scope", res.MulticastScope)
		}
		if res.Zone != "" {
			property(w, "Zone ID", res.Zone)
		}
		if res.MAC != "" {
			property(w, "EUI-64 MAC", res.MAC)
		}
	})
}

func property(w io.Writer, label string, v any) {
	fmt.Fprintf(w, "  %-15s%v\n", label+":", v)
}
