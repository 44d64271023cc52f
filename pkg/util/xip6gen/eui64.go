package xip6gen

import (
	"github.com/omeyang/ip6kit/pkg/util/xip6"
	"github.com/omeyang/ip6kit/pkg/util/xmac"
)

// FromMAC 由 MAC 地址构造 fe80::/64 链路本地地址，接口标识为修改版 EUI-64。
// MAC 可带 ":"、"-"、"." 分隔符，去除后必须是 12 个十六进制字符。
//
//	00:11:22:33:44:55 → fe80::211:22ff:fe33:4455
func FromMAC(mac string) (xip6.Address, error) {
	m, err := xmac.Parse(mac)
	if err != nil {
		return xip6.Address{}, &xip6.Error{Kind: xip6.ErrInvalidAddress, Input: mac, Limit: 12, Err: err}
	}
	return LinkLocalFromMAC(m), nil
}

// LinkLocalFromMAC 同 [FromMAC]，接受已解析的 MAC。
func LinkLocalFromMAC(m xmac.Addr) xip6.Address {
	var b [16]byte
	b[0], b[1] = 0xfe, 0x80
	iid := m.EUI64()
	copy(b[8:], iid[:])
	return xip6.AddressFrom16(b)
}

// MACFromAddress 从 EUI-64 派生的地址还原 MAC。
// 接口标识不含 ff:fe 标记时返回 [xmac.ErrNotEUI64]。
func MACFromAddress(a xip6.Address) (xmac.Addr, error) {
	b := a.As16()
	var iid [8]byte
	copy(iid[:], b[8:])
	return xmac.FromEUI64(iid)
}

// ReversePointer 返回地址的 ip6.arpa 反向解析名称，zone 被忽略。
func ReversePointer(address string) (string, error) {
	a, err := xip6.ParseAddress(address)
	if err != nil {
		return "", err
	}
	return a.ReverseName(), nil
}
