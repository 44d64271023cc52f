package xip6

import (
	"strconv"

	"lukechampine.com/uint128"
)

// MaxPrefixLen 是 IPv6 前缀长度上限。
const MaxPrefixLen = 128

// hostMask 返回低 (128-bits) 位全为 1 的掩码。
// 移位 0 和 128 分别单独处理：bits=0 时全 1，bits=128 时全 0。
func hostMask(bits int) uint128.Uint128 {
	switch {
	case bits <= 0:
		return uint128.Max
	case bits >= MaxPrefixLen:
		return uint128.Zero
	default:
		return uint128.Max.Rsh(uint(bits))
	}
}

// prefixMask 返回高 bits 位全为 1 的掩码。
func prefixMask(bits int) uint128.Uint128 {
	return hostMask(bits).Xor(uint128.Max)
}

// Netmask 返回前缀长度对应的网络掩码地址，例如 64 → ffff:ffff:ffff:ffff::。
// 前缀长度不在 [0, 128] 时返回 [ErrInvalidPrefix]。
func Netmask(prefixLen int) (Address, error) {
	if prefixLen < 0 || prefixLen > MaxPrefixLen {
		return Address{}, newError(ErrInvalidPrefix, strconv.Itoa(prefixLen), MaxPrefixLen, nil)
	}
	return AddressFromUint128(prefixMask(prefixLen)), nil
}
