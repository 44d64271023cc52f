package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ip6kit/pkg/util/xip6"
)

// runApp 以给定参数运行 CLI，返回标准输出内容。
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := createApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(context.Background(), append([]string{"ip6ctl"}, args...))
	return out.String(), err
}

func TestCreateCommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range createCommands(&session{}) {
		names[cmd.Name] = true
	}
	for _, name := range []string{"calc", "validate", "generate", "convert", "analyze", "aggregate", "plan"} {
		assert.True(t, names[name], "missing command %q", name)
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(&exitError{code: 1}))
	assert.Equal(t, 2, exitCode(&usageError{msg: "bad"}))
	assert.Equal(t, 2, exitCode(errors.New("flag provided but not defined: -z")))
	assert.Equal(t, 1, exitCode(xip6.ErrInvalidNetwork))
}

func TestUsageError(t *testing.T) {
	err := usagef("count %d", 3)
	assert.Equal(t, "count 3", err.Error())

	var target *usageError
	assert.True(t, errors.As(err, &target))
}

func TestCalc_Info(t *testing.T) {
	out, err := runApp(t, "calc", "2001:db8::/48")
	require.NoError(t, err)

	assert.Contains(t, out, "Network: 2001:db8::/48\n")
	assert.Contains(t, out, "Last Address: 2001:db8:0:ffff:ffff:ffff:ffff:ffff\n")
	assert.Contains(t, out, "Prefix Length: /48\n")
	assert.Contains(t, out, "Number of Addresses: 1208925819614629174706176\n")
	assert.Contains(t, out, "Netmask: ffff:ffff:ffff:0000:0000:0000:0000:0000\n")
}

func TestCalc_Operations(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant string
	}{
		{
			name:    "divide",
			args:    []string{"calc", "--divide", "4", "2001:db8::/32"},
			want:    []string{"Subnets (4):", "  1: 2001:db8::/34 (", "  4: 2001:db8:c000::/34 ("},
			notWant: "First Address",
		},
		{
			name: "prefix",
			args: []string{"calc", "--prefix", "40", "2001:db8::/32"},
			want: []string{"Created 256 subnets with /40:", "  2001:db8:900::/40", "  ... and 246 more"},
		},
		{
			name: "supernet to zero",
			args: []string{"calc", "--supernet", "0", "2001:db8::/48"},
			want: []string{"Supernet: ::/0", "Prefix Length: /0"},
		},
		{
			name: "contains",
			args: []string{"calc", "--contains", "2001:db8::1", "2001:db8::/32"},
			want: []string{"2001:db8::1 is in 2001:db8::/32"},
		},
		{
			name: "not contains",
			args: []string{"calc", "--contains", "2001:db9::1", "2001:db8::/32"},
			want: []string{"2001:db9::1 is not in 2001:db8::/32"},
		},
		{
			name: "overlaps",
			args: []string{"calc", "--overlaps", "2001::/16", "2001:db8::/32"},
			want: []string{"2001::/16 overlaps 2001:db8::/32"},
		},
		{
			name: "info with divide",
			args: []string{"calc", "--info", "--divide", "2", "2001:db8::/32"},
			want: []string{"Network: 2001:db8::/32", "Subnets (2):"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			if tt.notWant != "" {
				assert.NotContains(t, out, tt.notWant)
			}
		})
	}
}

func TestCalc_JSON(t *testing.T) {
	out, err := runApp(t, "-f", "json", "calc", "--divide", "2", "2001:db8::/32")
	require.NoError(t, err)

	var res calcResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Nil(t, res.Info)
	require.Len(t, res.Divided, 2)
	assert.Equal(t, "2001:db8:8000::/33", res.Divided[1].Network)
}

func TestCalc_Errors(t *testing.T) {
	_, err := runApp(t, "calc", "2001:db8::")
	require.ErrorIs(t, err, xip6.ErrInvalidNetwork)
	assert.Equal(t, 1, exitCode(err))

	_, err = runApp(t, "calc", "--divide", "0", "2001:db8::/32")
	require.ErrorIs(t, err, xip6.ErrDivision)

	_, err = runApp(t, "calc")
	var usageErr *usageError
	require.ErrorAs(t, err, &usageErr)
	assert.Equal(t, 2, exitCode(err))
}

func TestValidate(t *testing.T) {
	out, err := runApp(t, "validate", "2001:db8::1", "fe80::1%eth0")
	require.NoError(t, err)
	assert.Equal(t, "✓ 2001:db8::1 is valid\n✓ fe80::1%eth0 is valid\n", out)

	out, err = runApp(t, "validate", "2001:db8::1", "gibberish")
	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.code)
	assert.Contains(t, out, "✗ gibberish is invalid: ")

	out, err = runApp(t, "validate", "--no-zone", "fe80::1%eth0")
	require.Error(t, err)
	assert.Contains(t, out, "zone IDs are not allowed")

	out, err = runApp(t, "validate", "--quiet", "nope")
	require.Error(t, err)
	assert.Empty(t, out)

	out, err = runApp(t, "validate", "--network", "2001:db8::")
	require.Error(t, err)
	assert.Contains(t, out, "prefix length")

	_, err = runApp(t, "validate")
	assert.Equal(t, 2, exitCode(err))
}

func TestValidate_JSON(t *testing.T) {
	out, err := runApp(t, "-f", "json", "validate", "2001:db8::1", "")
	require.Error(t, err)

	var res []validation
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res, 2)
	assert.True(t, res[0].Valid)
	assert.False(t, res[1].Valid)
	assert.Equal(t, "address cannot be empty", res[1].Reason)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "link-local",
			args: []string{"generate", "--count", "2", "link-local", "--interface-id", "0000000000000001"},
			want: "fe80::1\nfe80::1\n",
		},
		{
			name: "ula",
			args: []string{"generate", "ula", "--global-id", "0102030405", "--subnet-id", "0001", "--interface-id", "0000000000000001"},
			want: "fd01:203:405:1::1\n",
		},
		{
			name: "from-mac",
			args: []string{"generate", "from-mac", "00:11:22:33:44:55"},
			want: "fe80::211:22ff:fe33:4455\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGenerate_Random(t *testing.T) {
	out, err := runApp(t, "generate", "--count", "5", "random", "--prefix", "2001:db8:1::/64")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 5)
	n := xip6.MustParseNetwork("2001:db8:1::/64")
	for _, l := range lines {
		assert.True(t, n.Contains(xip6.MustParseAddress(l)), l)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := runApp(t, "generate", "--count", "0", "link-local")
	assert.Equal(t, 2, exitCode(err))

	_, err = runApp(t, "generate", "from-mac", "00:11:22")
	require.ErrorIs(t, err, xip6.ErrInvalidAddress)

	_, err = runApp(t, "generate", "random", "--prefix", "2001:db8::/129")
	require.ErrorIs(t, err, xip6.ErrInvalidPrefix)
}

func TestConvert(t *testing.T) {
	out, err := runApp(t, "convert", "2001:0db8:0000:0000:0000:0000:0000:0001")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1\n", out)

	out, err = runApp(t, "convert", "--expand", "2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, "2001:0db8:0000:0000:0000:0000:0000:0001\n", out)

	out, err = runApp(t, "convert", "--hex", "::1")
	require.NoError(t, err)
	assert.Equal(t, "00000000000000000000000000000001\n", out)

	out, err = runApp(t, "convert", "--all", "2001:db8::1")
	require.NoError(t, err)
	assert.Contains(t, out, "Compressed:  2001:db8::1\n")
	assert.Contains(t, out, "Reverse DNS: 1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.8.b.d.0.1.0.0.2.ip6.arpa\n")
	assert.Contains(t, out, "Type:        Global Unicast\n")

	_, err = runApp(t, "convert", "10.0.0.1")
	require.ErrorIs(t, err, xip6.ErrInvalidAddress)
}

func TestAnalyze(t *testing.T) {
	out, err := runApp(t, "analyze", "fe80::211:22ff:fe33:4455%eth0")
	require.NoError(t, err)
	assert.Contains(t, out, "Type: Link-Local\n")
	assert.Contains(t, out, "Expanded: fe80:0000:0000:0000:0211:22ff:fe33:4455%eth0\n")
	assert.Contains(t, out, "  Link-Local:    true\n")
	assert.Contains(t, out, "  Zone ID:       eth0\n")
	assert.Contains(t, out, "  EUI-64 MAC:    00:11:22:33:44:55\n")

	out, err = runApp(t, "-f", "yaml", "analyze", "ff02::1")
	require.NoError(t, err)
	assert.Contains(t, out, "type: Multicast\n")
	assert.Contains(t, out, "multicast_scope: Link-Local\n")
	assert.NotContains(t, out, "eui64_mac")
}

func TestAnalyze_EUI64OnlyForLinkLocal(t *testing.T) {
	for _, addr := range []string{"2001:db8::211:22ff:fe33:4455", "ff02::211:22ff:fe33:4455"} {
		t.Run(addr, func(t *testing.T) {
			out, err := runApp(t, "analyze", addr)
			require.NoError(t, err)
			assert.NotContains(t, out, "EUI-64 MAC")
		})
	}
}

func TestAggregate(t *testing.T) {
	out, err := runApp(t, "aggregate", "2001:db8::/33", "2001:db8:8000::/33", "2001:db9::/48", "2001:db8:1::/48")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/32\n2001:db9::/48\n", out)

	_, err = runApp(t, "aggregate", "2001:db8::/33", "bad")
	require.ErrorIs(t, err, xip6.ErrInvalidNetwork)
}

func TestPlan(t *testing.T) {
	out, err := runApp(t, "plan", "--network", "2001:db8::/48", "--dept", "eng=3", "--dept", "ops=1")
	require.NoError(t, err)
	assert.Contains(t, out, "Network: 2001:db8::/48\n")
	assert.Contains(t, out, "Subnet Prefix: /50 (4 of 4 subnets allocated)\n")
	assert.Contains(t, out, "eng (3):\n  2001:db8::/50\n  2001:db8:0:4000::/50\n  2001:db8:0:8000::/50\n")
	assert.Contains(t, out, "ops (1):\n  2001:db8:0:c000::/50\n")
}

func TestPlan_FromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ip6ctl.yaml")
	cfg := "output:\n  format: json\nplan:\n  network: \"2001:db8::/48\"\n  departments:\n    web: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	out, err := runApp(t, "--config", path, "plan")
	require.NoError(t, err)
	assert.Contains(t, out, `"subnet_prefix": 49`)
	assert.Contains(t, out, `"name": "web"`)
}

func TestPlan_Errors(t *testing.T) {
	_, err := runApp(t, "plan", "--dept", "eng=1")
	assert.Equal(t, 2, exitCode(err))

	_, err = runApp(t, "plan", "--network", "2001:db8::/48")
	assert.Equal(t, 2, exitCode(err))

	_, err = runApp(t, "plan", "--network", "2001:db8::/127", "--dept", "a=3")
	require.ErrorIs(t, err, xip6.ErrDivision)

	_, err = runApp(t, "plan", "--network", "2001:db8::/48", "--dept", "a=1", "--dept", "b=9223372036854775807")
	assert.Equal(t, 2, exitCode(err))

	_, err = runApp(t, "plan", "--network", "2001:db8::/32", "--dept", "a=1048576", "--dept", "b=1")
	require.ErrorIs(t, err, xip6.ErrDivision)
	assert.Equal(t, 1, exitCode(err))
}

func TestParseDepartments(t *testing.T) {
	got, err := parseDepartments([]string{"eng=2", " ops = 1 ", "eng=1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"eng": 3, "ops": 1}, got)

	for _, bad := range []string{"eng", "=2", "eng=x", "eng=-1", "eng=9223372036854775807"} {
		_, err := parseDepartments([]string{bad})
		var usageErr *usageError
		assert.ErrorAs(t, err, &usageErr, bad)
	}

	_, err = parseDepartments([]string{"eng=1048576", "eng=1"})
	var usageErr *usageError
	assert.ErrorAs(t, err, &usageErr)
}

func TestGlobalFlags(t *testing.T) {
	_, err := runApp(t, "-f", "xml", "calc", "2001:db8::/32")
	assert.Equal(t, 2, exitCode(err))

	_, err = runApp(t, "--log-level", "loud", "calc", "2001:db8::/32")
	assert.Equal(t, 2, exitCode(err))

	logFile := filepath.Join(t.TempDir(), "logs", "ip6ctl.log")
	_, err = runApp(t, "--log-file", logFile, "--log-level", "debug", "calc", "--divide", "2", "2001:db8::/32")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "network divided")
}
