package xip6

import (
	"iter"
	"net/netip"

	"lukechampine.com/uint128"
)

const (
	// MaxSubnetDelta 是 [Network.Subnets] 支持的最大 prefix delta，
	// 对应一次性返回 2^20 = 1,048,576 个子网。
	MaxSubnetDelta = 20

	// MaxSeqDelta 是 [Network.SubnetSeq] 支持的最大 prefix delta，受 uint64 计数器限制。
	MaxSeqDelta = 63

	// MinEnumeratePrefix 是 [Network.Addresses] 允许逐个枚举的最短前缀。
	MinEnumeratePrefix = 64
)

// Subnets 将网络按 prefix delta 划分为 2^delta 个等长子网，按地址升序返回。
//
// 子网连续、互不重叠，并集恰为原网络。错误：
//   - delta < 0 或 prefixLen+delta > 128：[ErrDivision]
//   - delta > [MaxSubnetDelta]：[ErrNetworkTooLarge]，此时改用 [Network.SubnetSeq]
func (n Network) Subnets(delta int) ([]Network, error) {
	newBits, err := n.subnetBits(delta)
	if err != nil {
		return nil, err
	}
	if delta > MaxSubnetDelta {
		return nil, newError(ErrNetworkTooLarge, n.String(), MaxSubnetDelta, nil)
	}
	out := make([]Network, 0, 1<<uint(delta))
	for s := range n.subnetSeq(newBits, delta) {
		out = append(out, s)
	}
	return out, nil
}

// SubnetSeq 惰性迭代 [Network.Subnets] 的结果，delta 上限为 [MaxSeqDelta]。
func (n Network) SubnetSeq(delta int) (iter.Seq[Network], error) {
	newBits, err := n.subnetBits(delta)
	if err != nil {
		return nil, err
	}
	if delta > MaxSeqDelta {
		return nil, newError(ErrNetworkTooLarge, n.String(), MaxSeqDelta, nil)
	}
	return n.subnetSeq(newBits, delta), nil
}

func (n Network) subnetBits(delta int) (int, error) {
	if !n.IsValid() {
		return 0, newError(ErrInvalidNetwork, "", noLimit, nil)
	}
	if delta < 0 {
		return 0, newError(ErrDivision, n.String(), 0, errNegativeDelta)
	}
	newBits := n.PrefixLen() + delta
	if newBits > MaxPrefixLen {
		return 0, newError(ErrDivision, n.String(), MaxPrefixLen-n.PrefixLen(), errPrefixTooLong)
	}
	return newBits, nil
}

// subnetSeq 要求 delta <= MaxSeqDelta。
//
// 第 i 个子网的基址 = base | (i << (128-newBits))。base 在原前缀边界对齐，
// i < 2^delta 只落在原网络的主机位内，因此按位或等价于加法且不会溢出。
func (n Network) subnetSeq(newBits, delta int) iter.Seq[Network] {
	base := n.NetworkAddress().Uint128()
	shift := uint(MaxPrefixLen - newBits)
	count := uint64(1) << uint(delta)
	return func(yield func(Network) bool) {
		for i := uint64(0); i < count; i++ {
			v := base.Or(uint128.From64(i).Lsh(shift))
			sub := Network{prefix: netip.PrefixFrom(AddressFromUint128(v).addr, newBits)}
			if !yield(sub) {
				return
			}
		}
	}
}

// Addresses 惰性迭代网络中的每个地址（含网络地址和最后地址）。
// 前缀短于 [MinEnumeratePrefix] 时返回 [ErrNetworkTooLarge]。
func (n Network) Addresses() (iter.Seq[Address], error) {
	if !n.IsValid() {
		return nil, newError(ErrInvalidNetwork, "", noLimit, nil)
	}
	if n.PrefixLen() < MinEnumeratePrefix {
		return nil, newError(ErrNetworkTooLarge, n.String(), MinEnumeratePrefix, nil)
	}
	first := n.prefix.Addr()
	last := n.BroadcastAddress().addr
	return func(yield func(Address) bool) {
		for a := first; ; a = a.Next() {
			if !yield(Address{addr: a}) || a == last {
				return
			}
		}
	}, nil
}

// Supernet 返回前缀缩短 delta 位后的父网络。
// delta < 0 或 delta > prefixLen 时返回 [ErrDivision]。
func (n Network) Supernet(delta int) (Network, error) {
	if !n.IsValid() {
		return Network{}, newError(ErrInvalidNetwork, "", noLimit, nil)
	}
	if delta < 0 {
		return Network{}, newError(ErrDivision, n.String(), 0, errNegativeDelta)
	}
	if delta > n.PrefixLen() {
		return Network{}, newError(ErrDivision, n.String(), n.PrefixLen(), errPrefixTooShort)
	}
	return Network{prefix: netip.PrefixFrom(n.prefix.Addr(), n.PrefixLen()-delta).Masked()}, nil
}
