package xip6

import (
	"net/netip"

	"go4.org/netipx"
)

// Aggregate 合并重叠和相邻的网络，返回覆盖同一地址集合的最少 CIDR 列表，按地址升序。
// 无效网络被忽略；空输入返回 nil。
//
// 内部使用 [netipx.IPSet]，保证结果是规范的最小覆盖。
func Aggregate(nets []Network) ([]Network, error) {
	if len(nets) == 0 {
		return nil, nil
	}
	var b netipx.IPSetBuilder
	for _, n := range nets {
		if n.IsValid() {
			b.AddPrefix(n.prefix)
		}
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, newError(ErrInvalidNetwork, "", noLimit, err)
	}
	return fromPrefixes(set.Prefixes()), nil
}

// RangeNetworks 将闭区间 [first, last] 拆分为最少的 CIDR 列表。
// zone 被忽略；first > last 时返回 [ErrInvalidNetwork]。
func RangeNetworks(first, last Address) ([]Network, error) {
	r := netipx.IPRangeFrom(first.addr.WithZone(""), last.addr.WithZone(""))
	if !r.IsValid() {
		return nil, newError(ErrInvalidNetwork, first.Compressed()+"-"+last.Compressed(), noLimit, nil)
	}
	return fromPrefixes(r.Prefixes()), nil
}

// ParseNetworks 批量解析 CIDR 文本，遇到第一个错误即返回。
func ParseNetworks(texts []string) ([]Network, error) {
	out := make([]Network, 0, len(texts))
	for _, s := range texts {
		n, err := ParseNetwork(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func fromPrefixes(prefixes []netip.Prefix) []Network {
	out := make([]Network, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, Network{prefix: p})
	}
	return out
}
