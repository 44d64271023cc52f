package xsubnet

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/omeyang/ip6kit/pkg/observability/xlog"
	"github.com/omeyang/ip6kit/pkg/util/xip6"
)

// MaxAllocation 是单个分配方案的总子网数上限，与 [xip6.Network.Subnets] 的一次划分上限一致。
const MaxAllocation = 1 << xip6.MaxSubnetDelta

// Allocation 是按部门划分子网的方案。
type Allocation struct {
	Network      Info         `json:"network" yaml:"network"`
	SubnetPrefix int          `json:"subnet_prefix" yaml:"subnet_prefix"`
	Requested    int          `json:"requested" yaml:"requested"`
	Available    int          `json:"available" yaml:"available"`
	Departments  []Department `json:"departments" yaml:"departments"`
}

// Department 是单个部门分到的子网。
type Department struct {
	Name    string `json:"name" yaml:"name"`
	Subnets []Info `json:"subnets" yaml:"subnets"`
}

// Lookup 按名称查找部门分配结果。
func (a Allocation) Lookup(name string) (Department, bool) {
	for _, d := range a.Departments {
		if d.Name == name {
			return d, true
		}
	}
	return Department{}, false
}

// Allocate 为各部门分配子网。
//
// 所有部门共用一次划分：前缀增长 ceil(log2(总需求)) 位，
// 部门按名称字典序依次取连续的子网。需求数为负、总需求超过 [MaxAllocation]
// 或子网不足时返回 [xip6.ErrDivision]。
func (c *Calculator) Allocate(departments map[string]int) (Allocation, error) {
	total := 0
	for name, count := range departments {
		if count < 0 {
			return Allocation{}, divisionError(c.network, 0, "department %q requests %d subnets", name, count)
		}
		if count > MaxAllocation-total {
			return Allocation{}, divisionError(c.network, MaxAllocation,
				"department %q pushes total demand past %d subnets", name, MaxAllocation)
		}
		total += count
	}

	delta := bitsFor(total)
	if c.network.PrefixLen()+delta > xip6.MaxPrefixLen {
		return Allocation{}, divisionError(c.network, xip6.MaxPrefixLen-c.network.PrefixLen(),
			"cannot allocate %d subnets", total)
	}
	all, err := c.network.Subnets(delta)
	if err != nil {
		return Allocation{}, err
	}

	plan := Allocation{
		Network:      c.Info(),
		SubnetPrefix: c.network.PrefixLen() + delta,
		Requested:    total,
		Available:    len(all),
		Departments:  make([]Department, 0, len(departments)),
	}
	next := 0
	for _, name := range slices.Sorted(maps.Keys(departments)) {
		count := departments[name]
		if count > len(all)-next {
			return Allocation{}, divisionError(c.network, len(all), "not enough subnets for department %q", name)
		}
		plan.Departments = append(plan.Departments, Department{
			Name:    name,
			Subnets: infos(all[next : next+count]),
		})
		next += count
		c.logger.Debug(context.Background(), "department allocated",
			xlog.Operation("allocate"), slog.String("department", name), xlog.Count(int64(count)))
	}
	return plan, nil
}

// RecommendAllocation 解析 total 并调用 [Calculator.Allocate]。
func RecommendAllocation(total string, departments map[string]int, opts ...Option) (Allocation, error) {
	c, err := New(total, opts...)
	if err != nil {
		return Allocation{}, err
	}
	return c.Allocate(departments)
}
