package xip6

import (
	"cmp"
	"fmt"
	"math/big"
	"net/netip"
	"strconv"
	"strings"

	"go4.org/netipx"
)

// Network 是一个 IPv6 CIDR 网络。
//
// 构造时网络地址总是被掩码到前缀边界（主机位清零），因此
// "2001:db8::1/32" 与 "2001:db8::/32" 得到相等的 Network。
// 零值无效。Network 可比较，可用作 map key。
type Network struct {
	prefix netip.Prefix // 已掩码，不含 zone
}

// ParseNetwork 解析 "address/prefix" 形式的 CIDR 文本。
//
// 错误分类：
//   - 缺少 "/" 或包含多个 "/"：[ErrInvalidNetwork]
//   - 前缀不是 0~128 的十进制数字（含符号、空格均不接受）：[ErrInvalidPrefix]
//   - 地址部分无效，或携带 zone：[ErrInvalidAddress]
func ParseNetwork(s string) (Network, error) {
	addrText, bitsText, ok := strings.Cut(s, "/")
	if !ok {
		return Network{}, newError(ErrInvalidNetwork, s, noLimit, errMissingSlash)
	}
	if strings.Contains(bitsText, "/") {
		return Network{}, newError(ErrInvalidNetwork, s, noLimit, errExtraSlash)
	}
	bits, err := parsePrefixLen(bitsText)
	if err != nil {
		return Network{}, newError(ErrInvalidPrefix, s, MaxPrefixLen, err)
	}
	if strings.Contains(addrText, "%") {
		return Network{}, newError(ErrInvalidAddress, s, noLimit, errZoneInNetwork)
	}
	addr, err := ParseAddress(addrText)
	if err != nil {
		return Network{}, err
	}
	return NetworkFrom(addr, bits)
}

// MustParseNetwork 同 [ParseNetwork]，失败时 panic。仅用于常量与测试。
func MustParseNetwork(s string) Network {
	n, err := ParseNetwork(s)
	if err != nil {
		panic(err)
	}
	return n
}

// NetworkFrom 由地址和前缀长度构造网络，地址的 zone 被忽略，主机位被清零。
func NetworkFrom(addr Address, prefixLen int) (Network, error) {
	if !addr.IsValid() {
		return Network{}, newError(ErrInvalidAddress, "", noLimit, errNotIPv6)
	}
	if prefixLen < 0 || prefixLen > MaxPrefixLen {
		return Network{}, newError(ErrInvalidPrefix, strconv.Itoa(prefixLen), MaxPrefixLen, nil)
	}
	p := netip.PrefixFrom(addr.addr.WithZone(""), prefixLen).Masked()
	return Network{prefix: p}, nil
}

// NetworkFromPrefix 将 [netip.Prefix] 转换为 Network。
// 非 IPv6 前缀返回 [ErrInvalidNetwork]。
func NetworkFromPrefix(p netip.Prefix) (Network, error) {
	if !p.IsValid() || !p.Addr().Is6() {
		return Network{}, newError(ErrInvalidNetwork, p.String(), noLimit, errNotIPv6)
	}
	return Network{prefix: p.Masked()}, nil
}

// parsePrefixLen 只接受纯十进制数字，拒绝 "+64"、" 64"、"-1" 等形式。
func parsePrefixLen(s string) (int, error) {
	if s == "" {
		return 0, errEmptyPrefix
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit character %q in prefix length", s[i])
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n > MaxPrefixLen {
		return 0, fmt.Errorf("prefix length %d out of range", n)
	}
	return n, nil
}

// IsValid 报告网络是否已初始化。
func (n Network) IsValid() bool {
	return n.prefix.IsValid()
}

// PrefixLen 返回前缀长度。零值返回 -1。
func (n Network) PrefixLen() int {
	return n.prefix.Bits()
}

// Prefix 返回底层 [netip.Prefix]。
func (n Network) Prefix() netip.Prefix {
	return n.prefix
}

// Range 返回网络覆盖的闭区间 [网络地址, 最后地址]。
func (n Network) Range() netipx.IPRange {
	return netipx.RangeOfPrefix(n.prefix)
}

// NetworkAddress 返回网络地址（主机位全 0），不含 zone。
func (n Network) NetworkAddress() Address {
	return Address{addr: n.prefix.Addr()}
}

// BroadcastAddress 返回网络中的最后一个地址（主机位全 1）。
// IPv6 没有广播概念，沿用该名称以对应 IPv4 工具习惯。
func (n Network) BroadcastAddress() Address {
	if !n.IsValid() {
		return Address{}
	}
	return Address{addr: netipx.PrefixLastIP(n.prefix)}
}

// Netmask 返回网络掩码，例如 /64 → ffff:ffff:ffff:ffff::。
func (n Network) Netmask() Address {
	if !n.IsValid() {
		return Address{}
	}
	return AddressFromUint128(prefixMask(n.PrefixLen()))
}

// Hostmask 返回主机掩码（网络掩码的按位取反），例如 /64 → ::ffff:ffff:ffff:ffff。
func (n Network) Hostmask() Address {
	if !n.IsValid() {
		return Address{}
	}
	return AddressFromUint128(hostMask(n.PrefixLen()))
}

// NumAddresses 返回网络包含的地址数 2^(128-prefixLen)。
// /0 的结果 2^128 超出 128 位整数范围，因此返回 [*big.Int]。零值返回 0。
func (n Network) NumAddresses() *big.Int {
	if !n.IsValid() {
		return new(big.Int)
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(MaxPrefixLen-n.PrefixLen()))
}

// Contains 报告 addr 是否位于网络内。addr 的 zone 不参与判断。
func (n Network) Contains(addr Address) bool {
	if !n.IsValid() || !addr.IsValid() {
		return false
	}
	return n.prefix.Contains(addr.addr.WithZone(""))
}

// ContainsNetwork 报告 other 是否完全位于 n 内。
func (n Network) ContainsNetwork(other Network) bool {
	if !n.IsValid() || !other.IsValid() {
		return false
	}
	return n.PrefixLen() <= other.PrefixLen() && n.prefix.Contains(other.prefix.Addr())
}

// Overlaps 报告两个网络的地址区间是否相交。该关系对称，网络总与自身重叠。
func (n Network) Overlaps(other Network) bool {
	if !n.IsValid() || !other.IsValid() {
		return false
	}
	return n.prefix.Overlaps(other.prefix)
}

// Compare 先按网络地址、再按前缀长度比较。
func (n Network) Compare(other Network) int {
	if c := n.prefix.Addr().Compare(other.prefix.Addr()); c != 0 {
		return c
	}
	return cmp.Compare(n.prefix.Bits(), other.prefix.Bits())
}

// String 返回 "address/prefix" 形式，地址为压缩形式。零值返回空字符串。
func (n Network) String() string {
	if !n.IsValid() {
		return ""
	}
	return n.prefix.String()
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。空文本解析为零值。
func (n *Network) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*n = Network{}
		return nil
	}
	parsed, err := ParseNetwork(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
