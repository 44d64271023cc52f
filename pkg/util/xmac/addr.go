package xmac

import "net"

// Addr 表示 48 位 MAC 地址。
//
// Addr 是不可变值类型，可直接比较（==）和用作 map key，并发安全。
type Addr struct {
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址，长度必须为 6 字节。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	if len(hw) != 6 {
		return Addr{}, ErrInvalidLength
	}
	var a Addr
	copy(a.bytes[:], hw)
	return a, nil
}

// Bytes 返回 MAC 地址的字节表示。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// HardwareAddr 返回 [net.HardwareAddr] 副本。
func (a Addr) HardwareAddr() net.HardwareAddr {
	b := a.bytes
	return net.HardwareAddr(b[:])
}

// IsZero 报告是否为 00:00:00:00:00:00。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// IsMulticast 报告第一字节最低位（I/G 位）是否为 1。
func (a Addr) IsMulticast() bool {
	return a.bytes[0]&0x01 == 0x01
}

// IsLocallyAdministered 报告第一字节次低位（U/L 位）是否为 1。
// 虚拟机、容器的网卡通常是本地管理地址。
func (a Addr) IsLocallyAdministered() bool {
	return a.bytes[0]&0x02 == 0x02
}

// OUI 返回前 3 字节的组织唯一标识符。
func (a Addr) OUI() [3]byte {
	return [3]byte{a.bytes[0], a.bytes[1], a.bytes[2]}
}

// String 返回小写冒号格式，如 "00:11:22:33:44:55"。
func (a Addr) String() string {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 0, 17)
	for i, b := range a.bytes {
		if i > 0 {
			buf = append(buf, ':')
		}
		buf = append(buf, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	return string(buf)
}

// MarshalText 实现 [encoding.TextMarshaler]，输出小写冒号格式。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，接受 [Parse] 支持的所有格式。
func (a *Addr) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
