// Package xsubnet 在 [xip6] 之上提供子网计算器：网络信息汇总、
// 按数量或前缀长度划分、求父网络，以及按部门推荐子网分配方案。
//
//	calc, _ := xsubnet.New("2001:db8::/32")
//	subs, _ := calc.DivideInto(5)      // 前缀增长 ceil(log2 5)=3 位，返回前 5 个 /35
//	info := calc.Info()                // 可直接序列化为 JSON/YAML
//
// 所有错误都是 [*xip6.Error]，可用 errors.Is 匹配 [xip6.ErrDivision] 等哨兵错误。
package xsubnet
