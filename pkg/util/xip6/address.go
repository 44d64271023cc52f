package xip6

import (
	"math/big"
	"net/netip"
	"strings"

	"lukechampine.com/uint128"
)

// Address 是一个 IPv6 地址，可携带 zone。
//
// 零值无效（IsValid 返回 false）。Address 可比较，
// 相等性同时比较 128 位数值和 zone。
type Address struct {
	addr netip.Addr // 始终是 IPv6（含 IPv4-mapped），或零值
}

// ParseAddress 解析 IPv6 地址文本，接受压缩（"::"）、展开、
// 嵌入 IPv4（"::ffff:192.0.2.1"）以及 "%zone" 后缀。
//
// 纯 IPv4 文本（如 "192.0.2.1"）返回 [ErrInvalidAddress]；
// "%" 后为空也返回 [ErrInvalidAddress]。
func ParseAddress(s string) (Address, error) {
	text, zone, hasZone := strings.Cut(s, "%")
	if hasZone && zone == "" {
		return Address{}, newError(ErrInvalidAddress, s, noLimit, errEmptyZone)
	}
	addr, err := netip.ParseAddr(text)
	if err != nil {
		return Address{}, newError(ErrInvalidAddress, s, noLimit, err)
	}
	if !addr.Is6() {
		return Address{}, newError(ErrInvalidAddress, s, noLimit, errNotIPv6)
	}
	if hasZone {
		addr = addr.WithZone(zone)
	}
	return Address{addr: addr}, nil
}

// MustParseAddress 同 [ParseAddress]，失败时 panic。仅用于常量与测试。
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AddressFrom16 从 16 字节大端表示创建地址。
func AddressFrom16(b [16]byte) Address {
	return Address{addr: netip.AddrFrom16(b)}
}

// AddressFromUint128 从 128 位整数创建地址。
func AddressFromUint128(v uint128.Uint128) Address {
	var b [16]byte
	v.PutBytesBE(b[:])
	return AddressFrom16(b)
}

// AddressFromAddr 将 [netip.Addr] 转换为 Address。
// IPv4 地址会被映射为 ::ffff:a.b.c.d；无效地址返回零值。
func AddressFromAddr(a netip.Addr) Address {
	switch {
	case !a.IsValid():
		return Address{}
	case a.Is4():
		return AddressFrom16(a.As16())
	default:
		return Address{addr: a}
	}
}

// AddressFromBigInt 从 [*big.Int] 创建地址。
// nil、负数或超过 128 位返回 [ErrOverflow]。
func AddressFromBigInt(v *big.Int) (Address, error) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		input := "<nil>"
		if v != nil {
			input = v.String()
		}
		return Address{}, newError(ErrOverflow, input, 128, nil)
	}
	var b [16]byte
	v.FillBytes(b[:])
	return AddressFrom16(b), nil
}

// IsValid 报告地址是否已初始化。
func (a Address) IsValid() bool {
	return a.addr.IsValid()
}

// Zone 返回 zone，没有时为空字符串。
func (a Address) Zone() string {
	return a.addr.Zone()
}

// WithZone 返回替换 zone 后的地址，zone 为空时移除 zone。
func (a Address) WithZone(zone string) Address {
	if !a.IsValid() {
		return a
	}
	return Address{addr: a.addr.WithZone(zone)}
}

// Addr 返回底层 [netip.Addr]，保留 zone。
func (a Address) Addr() netip.Addr {
	return a.addr
}

// As16 返回 16 字节大端表示，zone 被丢弃。
func (a Address) As16() [16]byte {
	return a.addr.As16()
}

// Uint128 返回地址的 128 位整数值，zone 被丢弃。
func (a Address) Uint128() uint128.Uint128 {
	b := a.addr.As16()
	return uint128.FromBytesBE(b[:])
}

// BigInt 返回地址的 [*big.Int] 值。无效地址返回 0。
func (a Address) BigInt() *big.Int {
	if !a.IsValid() {
		return new(big.Int)
	}
	b := a.addr.As16()
	return new(big.Int).SetBytes(b[:])
}

// Compare 按数值比较两个地址，数值相同时按 zone 字典序比较。
func (a Address) Compare(b Address) int {
	return a.addr.Compare(b.addr)
}

// Next 返回下一个地址，zone 保持不变。
// 当前地址为 ffff:...:ffff 时返回 [ErrOverflow]。
func (a Address) Next() (Address, error) {
	n := a.addr.Next()
	if !a.IsValid() || !n.IsValid() {
		return Address{}, newError(ErrOverflow, a.String(), noLimit, nil)
	}
	return Address{addr: n}, nil
}

// Prev 返回上一个地址，zone 保持不变。
// 当前地址为 :: 时返回 [ErrOverflow]。
func (a Address) Prev() (Address, error) {
	p := a.addr.Prev()
	if !a.IsValid() || !p.IsValid() {
		return Address{}, newError(ErrOverflow, a.String(), noLimit, nil)
	}
	return Address{addr: p}, nil
}

// String 等价于 [Address.Compressed]。
func (a Address) String() string {
	return a.Compressed()
}

// MarshalText 实现 [encoding.TextMarshaler]，输出压缩形式。
// 零值输出空文本。
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Compressed()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 空文本解析为零值。
func (a *Address) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Address{}
		return nil
	}
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
