package xip6

import "strings"

// 校验失败原因。文本直接展示给用户。
const (
	ReasonEmptyAddress   = "address cannot be empty"
	ReasonZoneNotAllowed = "zone IDs are not allowed"
	ReasonEmptyNetwork   = "network cannot be empty"
	ReasonMissingPrefix  = "network must include prefix length (e.g., 2001:db8::/32)"
)

// ValidateAddress 校验地址文本，返回是否有效以及无效原因。
// allowZone 为 false 时拒绝带 "%zone" 的地址。
func ValidateAddress(s string, allowZone bool) (bool, string) {
	if s == "" {
		return false, ReasonEmptyAddress
	}
	if !allowZone && strings.Contains(s, "%") {
		return false, ReasonZoneNotAllowed
	}
	if _, err := ParseAddress(s); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// ValidateNetwork 校验 CIDR 文本，返回是否有效以及无效原因。
func ValidateNetwork(s string) (bool, string) {
	if s == "" {
		return false, ReasonEmptyNetwork
	}
	if !strings.Contains(s, "/") {
		return false, ReasonMissingPrefix
	}
	if _, err := ParseNetwork(s); err != nil {
		return false, err.Error()
	}
	return true, ""
}

// IsValidAddress 报告 s 是否为有效的 IPv6 地址（允许 zone）。
func IsValidAddress(s string) bool {
	ok, _ := ValidateAddress(s, true)
	return ok
}

// IsValidNetwork 报告 s 是否为有效的 IPv6 CIDR。
func IsValidNetwork(s string) bool {
	ok, _ := ValidateNetwork(s)
	return ok
}

// Compress 解析地址并返回压缩形式。
func Compress(s string) (string, error) {
	a, err := ParseAddress(s)
	if err != nil {
		return "", err
	}
	return a.Compressed(), nil
}

// Expand 解析地址并返回展开形式。
func Expand(s string) (string, error) {
	a, err := ParseAddress(s)
	if err != nil {
		return "", err
	}
	return a.Exploded(), nil
}
