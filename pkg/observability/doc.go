// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，内置 lumberjack 文件轮转
//
// 设计原则：
//   - 日志与命令结果输出分离，默认写 stderr
//   - 支持运行时动态调整级别
package observability
