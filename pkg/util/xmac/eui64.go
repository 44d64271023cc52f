package xmac

import "encoding/binary"

// EUI64 返回修改版 EUI-64 接口标识：翻转 U/L 位，并在 OUI 与 NIC 之间插入 ff fe。
//
//	00:11:22:33:44:55 → 02 11 22 ff fe 33 44 55
func (a Addr) EUI64() [8]byte {
	b := a.bytes
	return [8]byte{b[0] ^ 0x02, b[1], b[2], 0xff, 0xfe, b[3], b[4], b[5]}
}

// InterfaceID 以大端 uint64 返回 [Addr.EUI64]。
func (a Addr) InterfaceID() uint64 {
	id := a.EUI64()
	return binary.BigEndian.Uint64(id[:])
}

// FromEUI64 从修改版 EUI-64 接口标识还原 MAC 地址。
// 第 4、5 字节不是 ff fe 时返回 [ErrNotEUI64]。
func FromEUI64(id [8]byte) (Addr, error) {
	if id[3] != 0xff || id[4] != 0xfe {
		return Addr{}, ErrNotEUI64
	}
	return Addr{bytes: [6]byte{id[0] ^ 0x02, id[1], id[2], id[5], id[6], id[7]}}, nil
}
