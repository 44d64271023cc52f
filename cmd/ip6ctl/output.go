package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/omeyang/ip6kit/internal/config"
)

// render 按输出格式写出结果。text 格式由调用方提供渲染函数，
// json/yaml 直接序列化 v，字段名取自结构体标签。
func render(w io.Writer, format string, v any, text func(w io.Writer)) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

// printLines 以文本格式逐行输出。
func printLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
