// Package xlog 是基于 [log/slog] 的结构化日志封装。
//
// 设计要点：
//   - 所有日志方法第一个参数是 context.Context，属性只接受 slog.Attr
//   - [Builder] 链式配置输出、级别、格式和文件轮转，Build 返回 cleanup 函数
//   - 文件轮转使用 [gopkg.in/natefinch/lumberjack.v2]，按大小切分
//   - 级别可在运行时通过 [Leveler] 调整，派生 logger 共享同一级别
//
// # 快速示例
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
//	logger.Info(ctx, "subnets divided",
//		xlog.Network(n), xlog.Count(int64(len(subs))))
//
// # 全局 Logger
//
// [Default] 懒初始化一个写 stderr 的 Info 级别 logger，适用于命令行工具等简单场景。
// 库代码应显式持有 [Logger]。
package xlog
