package xip6gen

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"lukechampine.com/uint128"

	"github.com/omeyang/ip6kit/pkg/util/xip6"
)

// 分量的字节长度。
const (
	InterfaceIDLen = 8
	GlobalIDLen    = 5
	SubnetIDLen    = 2

	// DefaultPrefixLen 是 [Generator.RandomInPrefix] 在前缀文本缺少 "/" 时使用的长度。
	DefaultPrefixLen = 64

	// MaxCount 是 [Generator.RandomN] 单次生成的地址数上限。
	MaxCount = 1 << 16
)

// ErrInvalidCount 表示批量生成的数量不在 [1, MaxCount] 内。
var ErrInvalidCount = errors.New("xip6gen: invalid count")

// Generator 构造 IPv6 地址。零值不可用，使用 [New] 创建。
// Generator 本身无可变状态，并发安全性取决于随机源。
type Generator struct {
	rand io.Reader
}

// New 创建 Generator。
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Generator{rand: o.rand}
}

// LinkLocal 生成 fe80::/64 链路本地地址，低 64 位为 interfaceID（16 个十六进制字符）。
// interfaceID 为空时随机生成。
func (g *Generator) LinkLocal(interfaceID string) (xip6.Address, error) {
	iid, err := g.component(interfaceID, InterfaceIDLen)
	if err != nil {
		return xip6.Address{}, err
	}
	var b [16]byte
	b[0], b[1] = 0xfe, 0x80
	copy(b[8:], iid)
	return xip6.AddressFrom16(b), nil
}

// UniqueLocal 生成 ULA 地址：fd + 5 字节 global ID + 2 字节 subnet ID + 8 字节 interface ID。
// 各分量分别为 10、4、16 个十六进制字符，为空时随机生成。
func (g *Generator) UniqueLocal(globalID, subnetID, interfaceID string) (xip6.Address, error) {
	gid, err := g.component(globalID, GlobalIDLen)
	if err != nil {
		return xip6.Address{}, err
	}
	sid, err := g.component(subnetID, SubnetIDLen)
	if err != nil {
		return xip6.Address{}, err
	}
	iid, err := g.component(interfaceID, InterfaceIDLen)
	if err != nil {
		return xip6.Address{}, err
	}
	var b [16]byte
	b[0] = 0xfd
	copy(b[1:6], gid)
	copy(b[6:8], sid)
	copy(b[8:], iid)
	return xip6.AddressFrom16(b), nil
}

// RandomInPrefix 在前缀内随机选取一个地址：网络位保持不变，主机位随机填充。
// 文本不含 "/" 时按 /64 处理；/0 时 128 位全部随机，/128 时返回网络地址本身。
func (g *Generator) RandomInPrefix(prefix string) (xip6.Address, error) {
	n, err := parsePrefix(prefix)
	if err != nil {
		return xip6.Address{}, err
	}
	return g.RandomInNetwork(n)
}

// RandomInNetwork 同 [Generator.RandomInPrefix]，接受已解析的网络。
// 零值网络返回 [xip6.ErrInvalidNetwork]。
func (g *Generator) RandomInNetwork(n xip6.Network) (xip6.Address, error) {
	if !n.IsValid() {
		return xip6.Address{}, &xip6.Error{Kind: xip6.ErrInvalidNetwork, Limit: -1}
	}
	var buf [16]byte
	if err := g.read(buf[:]); err != nil {
		return xip6.Address{}, err
	}
	host := n.Hostmask().Uint128()
	v := n.NetworkAddress().Uint128().Or(uint128.FromBytesBE(buf[:]).And(host))
	return xip6.AddressFromUint128(v), nil
}

// RandomN 在前缀内生成 count 个随机地址，count 必须在 [1, MaxCount] 内。
// 结果可能重复，前缀越长重复概率越高。
func (g *Generator) RandomN(prefix string, count int) ([]xip6.Address, error) {
	if count < 1 || count > MaxCount {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidCount, count, MaxCount)
	}
	n, err := parsePrefix(prefix)
	if err != nil {
		return nil, err
	}
	out := make([]xip6.Address, 0, count)
	for range count {
		a, err := g.RandomInNetwork(n)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func parsePrefix(prefix string) (xip6.Network, error) {
	if !strings.Contains(prefix, "/") {
		prefix = fmt.Sprintf("%s/%d", prefix, DefaultPrefixLen)
	}
	return xip6.ParseNetwork(prefix)
}

// component 解码十六进制分量，空字符串时读取 size 个随机字节。
func (g *Generator) component(s string, size int) ([]byte, error) {
	if s == "" {
		buf := make([]byte, size)
		if err := g.read(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
	return decodeComponent(s, size)
}

func (g *Generator) read(buf []byte) error {
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		return fmt.Errorf("xip6gen: read random source: %w", err)
	}
	return nil
}

var errComponentLength = errors.New("component has wrong length")

// decodeComponent 去除 ":" 和 "-" 后解码，长度必须恰好为 size 字节。
func decodeComponent(s string, size int) ([]byte, error) {
	digits := strings.NewReplacer(":", "", "-", "").Replace(s)
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, &xip6.Error{Kind: xip6.ErrInvalidAddress, Input: s, Limit: size * 2, Err: err}
	}
	if len(b) != size {
		return nil, &xip6.Error{Kind: xip6.ErrInvalidAddress, Input: s, Limit: size * 2, Err: errComponentLength}
	}
	return b, nil
}
