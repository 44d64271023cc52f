package xip6

import (
	"errors"
	"strconv"
	"strings"
)

// 预定义错误类型，[Error.Kind] 总是其中之一。
var (
	// ErrInvalidAddress 表示地址字面量、zone 或生成器输入的十六进制分量无效。
	ErrInvalidAddress = errors.New("xip6: invalid IPv6 address")

	// ErrInvalidNetwork 表示 CIDR 字符串缺少（或多出）"/" 分隔符。
	ErrInvalidNetwork = errors.New("xip6: invalid IPv6 network")

	// ErrInvalidPrefix 表示前缀长度不是 0~128 的非负整数。
	ErrInvalidPrefix = errors.New("xip6: invalid prefix length")

	// ErrNetworkTooLarge 表示枚举请求的规模不切实际。
	ErrNetworkTooLarge = errors.New("xip6: network too large to enumerate")

	// ErrDivision 表示子网划分或聚合请求违反前缀长度约束。
	ErrDivision = errors.New("xip6: cannot divide network")

	// ErrOverflow 表示地址运算越过 :: 或 ffff:...:ffff。
	ErrOverflow = errors.New("xip6: address overflow")
)

// noLimit 表示 [Error.Limit] 不适用。
const noLimit = -1

// Error 是 xip6 返回的结构化错误。
//
// 只携带定位问题所需的数据，消息格式化交给调用方（CLI 等）。
// errors.Is 同时匹配 Kind 和底层 Err。
type Error struct {
	// Kind 是错误类型，取值为本包的哨兵错误之一。
	Kind error

	// Input 是出错的原始输入（地址、CIDR 或前缀文本）。
	Input string

	// Limit 是相关的数值边界（如最大前缀长度、最大 delta），不适用时为 -1。
	Limit int

	// Err 是底层原因，可能为 nil。
	Err error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	var b strings.Builder
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("xip6: error")
	}
	if e.Input != "" {
		b.WriteString(": ")
		b.WriteString(strconv.Quote(e.Input))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Limit != noLimit {
		b.WriteString(" (limit ")
		b.WriteString(strconv.Itoa(e.Limit))
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap 返回 Kind 与底层错误，供 errors.Is/As 遍历。
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(kind error, input string, limit int, cause error) *Error {
	return &Error{Kind: kind, Input: input, Limit: limit, Err: cause}
}

// 底层原因，仅用于拼接错误信息。
var (
	errEmptyZone      = errors.New("empty zone after '%'")
	errNotIPv6        = errors.New("not an IPv6 address")
	errMissingSlash   = errors.New("missing '/' prefix length separator")
	errExtraSlash     = errors.New("more than one '/' separator")
	errZoneInNetwork  = errors.New("zone is not allowed in a network")
	errEmptyPrefix    = errors.New("empty prefix length")
	errNegativeDelta  = errors.New("negative prefix delta")
	errPrefixTooLong  = errors.New("new prefix would exceed /128")
	errPrefixTooShort = errors.New("prefix delta exceeds current prefix length")
)
