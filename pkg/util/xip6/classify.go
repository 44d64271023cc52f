package xip6

import "encoding/binary"

// AddressType 是 [Address.Type] 的分类结果。
type AddressType uint8

// 地址类型。String 输出是对外契约（CLI 文本、JSON 字段），不可随意修改。
const (
	TypeInvalid AddressType = iota
	TypeLoopback
	TypeLinkLocal
	TypeUniqueLocal
	TypeMulticast
	TypeGlobalUnicast
	TypeUnspecified
	TypeReserved
)

var addressTypeNames = [...]string{
	TypeInvalid:       "Invalid",
	TypeLoopback:      "Loopback",
	TypeLinkLocal:     "Link-Local",
	TypeUniqueLocal:   "Unique Local (ULA)",
	TypeMulticast:     "Multicast",
	TypeGlobalUnicast: "Global Unicast",
	TypeUnspecified:   "Unspecified",
	TypeReserved:      "Reserved",
}

// String 返回类型的展示名称。
func (t AddressType) String() string {
	if int(t) < len(addressTypeNames) {
		return addressTypeNames[t]
	}
	return "Unknown"
}

// MarshalText 实现 [encoding.TextMarshaler]。
func (t AddressType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// high 返回地址的高 64 位。
func (a Address) high() uint64 {
	b := a.addr.As16()
	return binary.BigEndian.Uint64(b[:8])
}

// low 返回地址的低 64 位。
func (a Address) low() uint64 {
	b := a.addr.As16()
	return binary.BigEndian.Uint64(b[8:])
}

// IsLoopback 报告是否为 ::1。无效地址返回 false（下同）。
func (a Address) IsLoopback() bool {
	return a.IsValid() && a.high() == 0 && a.low() == 1
}

// IsLinkLocal 报告是否属于 fe80::/10（高 10 位为 1111111010）。
func (a Address) IsLinkLocal() bool {
	return a.IsValid() && a.high()>>54 == 0x3fa
}

// IsUniqueLocal 报告是否属于 fc00::/7（高 7 位为 1111110）。
func (a Address) IsUniqueLocal() bool {
	return a.IsValid() && a.high()>>57 == 0x7e
}

// IsMulticast 报告是否属于 ff00::/8。
func (a Address) IsMulticast() bool {
	return a.IsValid() && a.high()>>56 == 0xff
}

// IsGlobalUnicast 报告是否属于 2000::/3（高 3 位为 001）。
//
// 注意与 [netip.Addr.IsGlobalUnicast] 语义不同：后者是"排除法"，
// 这里只检查 2000::/3 前缀。
func (a Address) IsGlobalUnicast() bool {
	return a.IsValid() && a.high()>>61 == 0b001
}

// IsUnspecified 报告是否为 ::。
func (a Address) IsUnspecified() bool {
	return a.IsValid() && a.high() == 0 && a.low() == 0
}

// IsDocumentation 报告是否属于文档保留段 2001:db8::/32 (RFC 3849)。
func (a Address) IsDocumentation() bool {
	return a.IsValid() && a.high()>>32 == 0x20010db8
}

// IsBenchmark 报告是否属于基准测试段 2001:2::/48 (RFC 5180)。
func (a Address) IsBenchmark() bool {
	return a.IsValid() && a.high()>>16 == 0x200100020000
}

// IsIPv4Mapped 报告是否属于 ::ffff:0:0/96。
func (a Address) IsIPv4Mapped() bool {
	return a.IsValid() && a.addr.Is4In6()
}

// Type 按固定优先级返回地址类型：
// Loopback → Link-Local → Unique Local → Multicast → Global Unicast → Unspecified，
// 都不匹配时返回 [TypeReserved]。
//
// 设计决策: 优先级按首个匹配而非最长前缀，下游输出依赖这一顺序。
func (a Address) Type() AddressType {
	switch {
	case !a.IsValid():
		return TypeInvalid
	case a.IsLoopback():
		return TypeLoopback
	case a.IsLinkLocal():
		return TypeLinkLocal
	case a.IsUniqueLocal():
		return TypeUniqueLocal
	case a.IsMulticast():
		return TypeMulticast
	case a.IsGlobalUnicast():
		return TypeGlobalUnicast
	case a.IsUnspecified():
		return TypeUnspecified
	default:
		return TypeReserved
	}
}

// MulticastScope 返回多播地址的 scope 名称 (RFC 7346)。
// 非多播地址返回空字符串。
func (a Address) MulticastScope() string {
	if !a.IsMulticast() {
		return ""
	}
	b := a.addr.As16()
	switch b[1] & 0x0f {
	case 0x1:
		return "Interface-Local"
	case 0x2:
		return "Link-Local"
	case 0x3:
		return "Realm-Local"
	case 0x4:
		return "Admin-Local"
	case 0x5:
		return "Site-Local"
	case 0x8:
		return "Organization-Local"
	case 0xe:
		return "Global"
	case 0x0, 0xf:
		return "Reserved"
	default:
		return "Unassigned"
	}
}

// Classification 汇总地址的全部分类结果。
//
// 设计决策: 使用扁平的导出字段，调用方（CLI analyze、JSON 输出）可直接序列化。
type Classification struct {
	Type            AddressType `json:"type" yaml:"type"`
	IsLoopback      bool        `json:"is_loopback" yaml:"is_loopback"`
	IsLinkLocal     bool        `json:"is_link_local" yaml:"is_link_local"`
	IsUniqueLocal   bool        `json:"is_unique_local" yaml:"is_unique_local"`
	IsMulticast     bool        `json:"is_multicast" yaml:"is_multicast"`
	IsGlobalUnicast bool        `json:"is_global_unicast" yaml:"is_global_unicast"`
	IsUnspecified   bool        `json:"is_unspecified" yaml:"is_unspecified"`
	IsDocumentation bool        `json:"is_documentation" yaml:"is_documentation"`
	IsBenchmark     bool        `json:"is_benchmark" yaml:"is_benchmark"`
	IsIPv4Mapped    bool        `json:"is_ipv4_mapped" yaml:"is_ipv4_mapped"`
	MulticastScope  string      `json:"multicast_scope,omitempty" yaml:"multicast_scope,omitempty"`
	Zone            string      `json:"zone,omitempty" yaml:"zone,omitempty"`
}

// Classify 一次性计算地址的全部分类。无效地址返回 Type 为 [TypeInvalid] 的零值。
func Classify(a Address) Classification {
	if !a.IsValid() {
		return Classification{}
	}
	return Classification{
		Type:            a.Type(),
		IsLoopback:      a.IsLoopback(),
		IsLinkLocal:     a.IsLinkLocal(),
		IsUniqueLocal:   a.IsUniqueLocal(),
		IsMulticast:     a.IsMulticast(),
		IsGlobalUnicast: a.IsGlobalUnicast(),
		IsUnspecified:   a.IsUnspecified(),
		IsDocumentation: a.IsDocumentation(),
		IsBenchmark:     a.IsBenchmark(),
		IsIPv4Mapped:    a.IsIPv4Mapped(),
		MulticastScope:  a.MulticastScope(),
		Zone:            a.Zone(),
	}
}

// String 返回分类的类型名称。
func (c Classification) String() string {
	return c.Type.String()
}
