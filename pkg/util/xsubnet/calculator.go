package xsubnet

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/omeyang/ip6kit/pkg/observability/xlog"
	"github.com/omeyang/ip6kit/pkg/util/xip6"
)

// Calculator 围绕单个网络执行子网运算。创建后不可变，并发安全。
type Calculator struct {
	network xip6.Network
	logger  xlog.Logger
}

// New 解析 CIDR 并创建计算器。
func New(cidr string, opts ...Option) (*Calculator, error) {
	n, err := xip6.ParseNetwork(cidr)
	if err != nil {
		return nil, err
	}
	return NewFromNetwork(n, opts...), nil
}

// NewFromNetwork 使用已解析的网络创建计算器。
func NewFromNetwork(n xip6.Network, opts ...Option) *Calculator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Calculator{
		network: n,
		logger:  o.logger.With(xlog.Component("xsubnet"), xlog.Network(n)),
	}
}

// Network 返回计算器的网络。
func (c *Calculator) Network() xip6.Network {
	return c.network
}

// Info 返回网络汇总信息。
func (c *Calculator) Info() Info {
	return InfoOf(c.network)
}

// DivideInto 将网络划分为至少 count 个等长子网，返回前 count 个。
// 前缀增长 ceil(log2(count)) 位；count < 1 或新前缀超过 /128 时返回 [xip6.ErrDivision]。
func (c *Calculator) DivideInto(count int) ([]Info, error) {
	if count < 1 {
		return nil, divisionError(c.network, 1, "subnet count %d must be at least 1", count)
	}
	delta := bitsFor(count)
	if c.network.PrefixLen()+delta > xip6.MaxPrefixLen {
		return nil, divisionError(c.network, xip6.MaxPrefixLen-c.network.PrefixLen(),
			"cannot divide into %d subnets without exceeding /128", count)
	}
	subs, err := c.network.Subnets(delta)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(context.Background(), "network divided",
		xlog.Operation("divide_into"), xlog.Count(int64(count)), xlog.PrefixLen(c.network.PrefixLen()+delta))
	return infos(subs[:count]), nil
}

// DivideByPrefix 按目标前缀长度划分，返回全部子网。
// prefixLen 必须大于当前前缀（否则 [xip6.ErrDivision]）且不超过 128（否则 [xip6.ErrInvalidPrefix]）。
func (c *Calculator) DivideByPrefix(prefixLen int) ([]Info, error) {
	current := c.network.PrefixLen()
	if prefixLen <= current {
		return nil, divisionError(c.network, current, "new prefix /%d must be longer than /%d", prefixLen, current)
	}
	if prefixLen > xip6.MaxPrefixLen {
		return nil, &xip6.Error{Kind: xip6.ErrInvalidPrefix, Input: fmt.Sprint(prefixLen), Limit: xip6.MaxPrefixLen}
	}
	subs, err := c.network.Subnets(prefixLen - current)
	if err != nil {
		return nil, err
	}
	c.logger.Debug(context.Background(), "network divided",
		xlog.Operation("divide_by_prefix"), xlog.Count(int64(len(subs))), xlog.PrefixLen(prefixLen))
	return infos(subs), nil
}

// Supernet 返回前缀长度为 prefixLen 的父网络。
// prefixLen 必须小于当前前缀（否则 [xip6.ErrDivision]）且非负（否则 [xip6.ErrInvalidPrefix]）。
func (c *Calculator) Supernet(prefixLen int) (Info, error) {
	current := c.network.PrefixLen()
	if prefixLen >= current {
		return Info{}, divisionError(c.network, current, "new prefix /%d must be shorter than /%d", prefixLen, current)
	}
	if prefixLen < 0 {
		return Info{}, &xip6.Error{Kind: xip6.ErrInvalidPrefix, Input: fmt.Sprint(prefixLen), Limit: 0}
	}
	sup, err := c.network.Supernet(current - prefixLen)
	if err != nil {
		return Info{}, err
	}
	return InfoOf(sup), nil
}

// ContainsAddress 报告地址是否在网络内。地址无法解析时返回 false。
func (c *Calculator) ContainsAddress(address string) bool {
	a, err := xip6.ParseAddress(address)
	if err != nil {
		return false
	}
	return c.network.Contains(a)
}

// OverlapsWith 报告另一个网络是否与本网络重叠。无法解析时返回 false。
func (c *Calculator) OverlapsWith(cidr string) bool {
	other, err := xip6.ParseNetwork(cidr)
	if err != nil {
		return false
	}
	return c.network.Overlaps(other)
}

// bitsFor 返回容纳 count 个子网所需的前缀增量 ceil(log2(count))，count <= 1 时为 0。
func bitsFor(count int) int {
	if count <= 1 {
		return 0
	}
	return bits.Len(uint(count - 1))
}

func divisionError(n xip6.Network, limit int, format string, args ...any) *xip6.Error {
	return &xip6.Error{Kind: xip6.ErrDivision, Input: n.String(), Limit: limit, Err: fmt.Errorf(format, args...)}
}
