package xsubnet

import "github.com/omeyang/ip6kit/pkg/util/xip6"

// Info 是一个网络的汇总信息，字段名即输出契约。
type Info struct {
	Network        string `json:"network" yaml:"network"`
	NetworkAddress string `json:"network_address" yaml:"network_address"`
	FirstAddress   string `json:"first_address" yaml:"first_address"`
	LastAddress    string `json:"last_address" yaml:"last_address"`
	PrefixLength   int    `json:"prefix_length" yaml:"prefix_length"`
	// NumAddresses 是十进制字符串，/0 的 2^128 无法用数值类型无损表示。
	NumAddresses string `json:"num_addresses" yaml:"num_addresses"`
	// Netmask 使用展开形式。
	Netmask string `json:"netmask" yaml:"netmask"`
}

// InfoOf 汇总网络信息。
func InfoOf(n xip6.Network) Info {
	return Info{
		Network:        n.String(),
		NetworkAddress: n.NetworkAddress().Compressed(),
		FirstAddress:   n.NetworkAddress().Compressed(),
		LastAddress:    n.BroadcastAddress().Compressed(),
		PrefixLength:   n.PrefixLen(),
		NumAddresses:   n.NumAddresses().String(),
		Netmask:        n.Netmask().Exploded(),
	}
}

func infos(nets []xip6.Network) []Info {
	out := make([]Info, 0, len(nets))
	for _, n := range nets {
		out = append(out, InfoOf(n))
	}
	return out
}
