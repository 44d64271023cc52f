package xip6gen

import (
	"errors"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ip6kit/pkg/util/xip6"
)

// fillReader 对每次读取返回同一字节，用于构造确定性结果。
type fillReader byte

func (r fillReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r)
	}
	return len(p), nil
}

func TestLinkLocal(t *testing.T) {
	g := New(WithRand(fillReader(0xab)))

	a, err := g.LinkLocal("")
	require.NoError(t, err)
	assert.Equal(t, "fe80::abab:abab:abab:abab", a.String())
	assert.True(t, a.IsLinkLocal())

	a, err = g.LinkLocal("0011:2233:4455:6677")
	require.NoError(t, err)
	assert.Equal(t, "fe80::11:2233:4455:6677", a.String())

	a, err = g.LinkLocal("00-11-22-33-44-55-66-77")
	require.NoError(t, err)
	assert.Equal(t, "fe80::11:2233:4455:6677", a.String())
}

func TestUniqueLocal(t *testing.T) {
	g := New(WithRand(fillReader(0xab)))

	a, err := g.UniqueLocal("", "", "")
	require.NoError(t, err)
	assert.Equal(t, "fdab:abab:abab:abab:abab:abab:abab:abab", a.String())
	assert.True(t, a.IsUniqueLocal())

	a, err = g.UniqueLocal("0123456789", "abcd", "0000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "fd01:2345:6789:abcd::1", a.String())

	a, err = g.UniqueLocal("01-23-45-67-89", "", "")
	require.NoError(t, err)
	assert.Equal(t, "fd01:2345:6789:abab:abab:abab:abab:abab", a.String())
}

func TestComponentErrors(t *testing.T) {
	g := New(WithRand(fillReader(0)))
	tests := []struct {
		name string
		run  func() error
	}{
		{name: "interface id too short", run: func() error { _, err := g.LinkLocal("00112233445566"); return err }},
		{name: "interface id odd length", run: func() error { _, err := g.LinkLocal("0011223344556677a"); return err }},
		{name: "interface id non hex", run: func() error { _, err := g.LinkLocal("zz11223344556677"); return err }},
		{name: "global id too long", run: func() error { _, err := g.UniqueLocal("0123456789ab", "", ""); return err }},
		{name: "subnet id too short", run: func() error { _, err := g.UniqueLocal("", "ab", ""); return err }},
		{name: "ula interface id", run: func() error { _, err := g.UniqueLocal("", "", "xyz"); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, xip6.ErrInvalidAddress)

			var xe *xip6.Error
			require.True(t, errors.As(err, &xe))
			assert.NotEmpty(t, xe.Input)
		})
	}
}

func TestRandomInPrefix(t *testing.T) {
	tests := []struct {
		name   string
		fill   byte
		prefix string
		want   string
	}{
		{name: "host bits all ones", fill: 0xff, prefix: "2001:db8::/64", want: "2001:db8::ffff:ffff:ffff:ffff"},
		{name: "default /64", fill: 0xff, prefix: "2001:db8::", want: "2001:db8::ffff:ffff:ffff:ffff"},
		{name: "whole space", fill: 0xab, prefix: "::/0", want: "abab:abab:abab:abab:abab:abab:abab:abab"},
		{name: "single address", fill: 0xff, prefix: "2001:db8::1/128", want: "2001:db8::1"},
		{name: "zero fill", fill: 0x00, prefix: "2001:db8:1::/48", want: "2001:db8:1::"},
		{name: "unaligned prefix", fill: 0xff, prefix: "2001:db8::/61", want: "2001:db8:0:7:ffff:ffff:ffff:ffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(WithRand(fillReader(tt.fill))).RandomInPrefix(tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestRandomInPrefix_Errors(t *testing.T) {
	g := New()
	_, err := g.RandomInPrefix("2001:db8::/200")
	assert.ErrorIs(t, err, xip6.ErrInvalidPrefix)
	_, err = g.RandomInPrefix("not-an-address")
	assert.ErrorIs(t, err, xip6.ErrInvalidAddress)
	_, err = g.RandomInPrefix("2001:db8::/32/48")
	assert.ErrorIs(t, err, xip6.ErrInvalidNetwork)
}

func TestRandomInNetwork_ZeroNetwork(t *testing.T) {
	a, err := New().RandomInNetwork(xip6.Network{})
	require.ErrorIs(t, err, xip6.ErrInvalidNetwork)
	assert.False(t, a.IsValid())
}

func TestRandomN(t *testing.T) {
	g := New()
	n := xip6.MustParseNetwork("2001:db8:abcd::/48")

	addrs, err := g.RandomN(n.String(), 50)
	require.NoError(t, err)
	require.Len(t, addrs, 50)
	for _, a := range addrs {
		assert.True(t, n.Contains(a), a.String())
	}

	_, err = g.RandomN("2001:db8::/64", 0)
	assert.ErrorIs(t, err, ErrInvalidCount)
	_, err = g.RandomN("2001:db8::/64", MaxCount+1)
	assert.ErrorIs(t, err, ErrInvalidCount)
	_, err = g.RandomN("bogus", 1)
	assert.ErrorIs(t, err, xip6.ErrInvalidAddress)
}

func TestRandomSourceFailure(t *testing.T) {
	boom := errors.New("boom")
	g := New(WithRand(iotest.ErrReader(boom)))

	a, err := g.LinkLocal("")
	assert.ErrorIs(t, err, boom)
	assert.False(t, a.IsValid())

	_, err = g.UniqueLocal("0123456789", "abcd", "")
	assert.ErrorIs(t, err, boom)

	_, err = g.RandomInPrefix("2001:db8::/64")
	assert.ErrorIs(t, err, boom)

	a, err = g.LinkLocal("0011223344556677")
	require.NoError(t, err, "fixed components never touch the random source")
	assert.Equal(t, "fe80::11:2233:4455:6677", a.String())
}

func TestWithRand_NilIgnored(t *testing.T) {
	g := New(WithRand(nil))
	a, err := g.LinkLocal("")
	require.NoError(t, err)
	assert.True(t, a.IsLinkLocal())
}

func TestGenerator_Concurrent(t *testing.T) {
	g := New()
	prefix := xip6.MustParseNetwork("fd00:1::/64")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				a, err := g.RandomInNetwork(prefix)
				if err != nil {
					errs <- err
					return
				}
				if !prefix.Contains(a) {
					errs <- errors.New(a.String() + " outside prefix")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
