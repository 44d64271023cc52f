package xip6

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		compressed string
		zone       string
	}{
		{name: "compressed", input: "2001:db8::1", compressed: "2001:db8::1"},
		{name: "full uppercase", input: "2001:0DB8:0000:0000:0000:0000:0000:0001", compressed: "2001:db8::1"},
		{name: "unspecified", input: "::", compressed: "::"},
		{name: "loopback", input: "::1", compressed: "::1"},
		{name: "trailing compression", input: "fe80::", compressed: "fe80::"},
		{name: "with zone", input: "fe80::1%eth0", compressed: "fe80::1%eth0", zone: "eth0"},
		{name: "numeric zone", input: "fe80::1%2", compressed: "fe80::1%2", zone: "2"},
		{name: "embedded ipv4", input: "::ffff:192.0.2.1", compressed: "::ffff:192.0.2.1"},
		{name: "max", input: "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", compressed: "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAddress(tt.input)
			require.NoError(t, err)
			assert.True(t, a.IsValid())
			assert.Equal(t, tt.compressed, a.Compressed())
			assert.Equal(t, tt.compressed, a.String())
			assert.Equal(t, tt.zone, a.Zone())
		})
	}
}

func TestParseAddress_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "double compression", input: "2001:db8::1::1"},
		{name: "ipv4 literal", input: "192.0.2.1"},
		{name: "empty zone", input: "fe80::1%"},
		{name: "non hex", input: "gggg::1"},
		{name: "too many groups", input: "1:2:3:4:5:6:7:8:9"},
		{name: "group too long", input: "12345::1"},
		{name: "zone only", input: "%eth0"},
		{name: "cidr", input: "2001:db8::/32"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAddress(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAddress)
			assert.False(t, a.IsValid())

			var xe *Error
			require.True(t, errors.As(err, &xe))
			assert.Equal(t, tt.input, xe.Input)
		})
	}
}

func TestMustParseAddress(t *testing.T) {
	assert.NotPanics(t, func() { MustParseAddress("::1") })
	assert.Panics(t, func() { MustParseAddress("not-an-address") })
}

func TestAddress_Exploded(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2001:db8::1", "2001:0db8:0000:0000:0000:0000:0000:0001"},
		{"::", "0000:0000:0000:0000:0000:0000:0000:0000"},
		{"fe80::1%eth0", "fe80:0000:0000:0000:0000:0000:0000:0001%eth0"},
		{"::ffff:192.0.2.1", "0000:0000:0000:0000:0000:ffff:c000:0201"},
		{"abcd:ef01:2345:6789:abcd:ef01:2345:6789", "abcd:ef01:2345:6789:abcd:ef01:2345:6789"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseAddress(tt.input).Exploded())
		})
	}
}

func TestAddress_CompressedRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "single zero group kept", input: "2001:db8:0:1:1:1:1:1", want: "2001:db8:0:1:1:1:1:1"},
		{name: "longest run wins", input: "2001:0:0:1:0:0:0:1", want: "2001:0:0:1::1"},
		{name: "leftmost on tie", input: "2001:db8:0:0:1:0:0:1", want: "2001:db8::1:0:0:1"},
		{name: "leading zeros dropped", input: "2001:0db8:0001:0000:0000:0000:0000:0001", want: "2001:db8:1::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseAddress(tt.input).Compressed())
		})
	}
}

func TestAddress_ZeroValue(t *testing.T) {
	var a Address
	assert.False(t, a.IsValid())
	assert.Empty(t, a.Compressed())
	assert.Empty(t, a.Exploded())
	assert.Equal(t, "0", a.BigInt().String())
	assert.Equal(t, a, a.WithZone("eth0"))
	assert.Equal(t, TypeInvalid, a.Type())
}

func TestAddress_BinaryHex(t *testing.T) {
	one := MustParseAddress("::1")
	bin := one.Binary()
	require.Len(t, bin, 128)
	assert.Equal(t, "1", bin[127:])
	assert.NotContains(t, bin[:127], "1")

	top := MustParseAddress("8000::")
	assert.Equal(t, byte('1'), top.Binary()[0])

	assert.Equal(t, "20010db8000000000000000000000001", MustParseAddress("2001:db8::1%eth0").Hex())
	assert.Equal(t, "00100000000000010000110110111000", MustParseAddress("2001:db8::").Binary()[:32])
}

func TestAddress_Uint128(t *testing.T) {
	assert.Equal(t, uint128.From64(1), MustParseAddress("::1").Uint128())
	assert.Equal(t, uint128.New(0, 1<<63), MustParseAddress("8000::").Uint128())
	assert.Equal(t, uint128.Max, MustParseAddress("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff").Uint128())

	for _, s := range []string{"::", "::1", "2001:db8::1", "fe80::abcd:1234"} {
		a := MustParseAddress(s)
		assert.Equal(t, a, AddressFromUint128(a.Uint128()), s)
	}
}

func TestAddress_BigInt(t *testing.T) {
	maxAddr := MustParseAddress("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	assert.Equal(t, 0, want.Cmp(maxAddr.BigInt()))

	back, err := AddressFromBigInt(maxAddr.BigInt())
	require.NoError(t, err)
	assert.Equal(t, maxAddr, back)

	_, err = AddressFromBigInt(nil)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = AddressFromBigInt(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = AddressFromBigInt(new(big.Int).Lsh(big.NewInt(1), 128))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAddressFromAddr(t *testing.T) {
	assert.Equal(t, "::ffff:192.0.2.1", AddressFromAddr(netip.MustParseAddr("192.0.2.1")).String())
	assert.Equal(t, "fe80::1%eth0", AddressFromAddr(netip.MustParseAddr("fe80::1%eth0")).String())
	assert.False(t, AddressFromAddr(netip.Addr{}).IsValid())
}

func TestAddress_ZoneEquality(t *testing.T) {
	a := MustParseAddress("fe80::1%eth0")
	b := MustParseAddress("fe80::1%eth1")
	c := MustParseAddress("fe80:0:0:0:0:0:0:1%eth0")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
	assert.True(t, a == c)
	assert.Equal(t, a.Uint128(), b.Uint128())

	seen := map[Address]int{a: 1, b: 2}
	assert.Equal(t, 1, seen[c])
	assert.Len(t, seen, 2)

	assert.Equal(t, "fe80::1", a.WithZone("").String())
	assert.Equal(t, b, a.WithZone("eth1"))
}

func TestAddress_Compare(t *testing.T) {
	a := MustParseAddress("2001:db8::1")
	b := MustParseAddress("2001:db8::2")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(MustParseAddress("2001:db8:0::1")))
	assert.Equal(t, -1, MustParseAddress("fe80::1%a").Compare(MustParseAddress("fe80::1%b")))
}

func TestAddress_NextPrev(t *testing.T) {
	next, err := MustParseAddress("fe80::ffff%eth0").Next()
	require.NoError(t, err)
	assert.Equal(t, "fe80::1:0%eth0", next.String())

	prev, err := MustParseAddress("2001:db8::").Prev()
	require.NoError(t, err)
	assert.Equal(t, "2001:db7:ffff:ffff:ffff:ffff:ffff:ffff", prev.String())

	_, err = MustParseAddress("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff").Next()
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = MustParseAddress("::").Prev()
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Address{}.Next()
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAddress_TextMarshal(t *testing.T) {
	type record struct {
		Addr Address `json:"addr"`
	}
	data, err := json.Marshal(record{Addr: MustParseAddress("2001:0db8::0001")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"addr":"2001:db8::1"}`, string(data))

	var got record
	require.NoError(t, json.Unmarshal([]byte(`{"addr":"fe80::1%eth0"}`), &got))
	assert.Equal(t, MustParseAddress("fe80::1%eth0"), got.Addr)

	require.NoError(t, json.Unmarshal([]byte(`{"addr":""}`), &got))
	assert.False(t, got.Addr.IsValid())

	err = json.Unmarshal([]byte(`{"addr":"1.2.3.4"}`), &got)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}
