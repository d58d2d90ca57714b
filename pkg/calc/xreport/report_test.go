package xreport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
	"github.com/omeyang/ipcalc/pkg/calc/xsubnet"
)

// mustSubnet 由 "地址/前缀" 构造子网，供测试使用。
func mustSubnet(t *testing.T, input string) xsubnet.Subnet {
	t.Helper()
	addr, token, err := xaddr.ParseAddress(input)
	require.NoError(t, err)
	p, err := xaddr.ResolvePrefix(addr.Family(), token)
	require.NoError(t, err)
	s, err := xsubnet.Compute(addr, p)
	require.NoError(t, err)
	return s
}

func render(t *testing.T, input string, mode Mode, showBinary bool) string {
	t.Helper()
	var buf bytes.Buffer
	New(&buf, mode, showBinary).Render(mustSubnet(t, input))
	return buf.String()
}

func TestRenderIPv4Plain(t *testing.T) {
	want := `Address:    192.168.1.1           11000000.10101000.00000001. 00000001
Netmask:    255.255.255.0 = 24    11111111.11111111.11111111. 00000000
Wildcard:   0.0.0.255             00000000.00000000.00000000. 11111111
=>
Network:    192.168.1.0/24        11000000.10101000.00000001. 00000000
HostMin:    192.168.1.1           11000000.10101000.00000001. 00000001
HostMax:    192.168.1.254         11000000.10101000.00000001. 11111110
Broadcast:  192.168.1.255         11000000.10101000.00000001. 11111111
Hosts/Net:  254                   Class C, Private Internet

`
	assert.Equal(t, want, render(t, "192.168.1.1/24", ModePlain, true))
}

func TestRenderIPv4SingleHost(t *testing.T) {
	want := `Address:    8.8.8.8
Netmask:    255.255.255.255 = 32
Wildcard:   0.0.0.0
=>
Network:    8.8.8.8/32
Hosts/Net:  1                     Class A

`
	got := render(t, "8.8.8.8/32", ModePlain, false)
	assert.Equal(t, want, got)

	// /32 不报告主机范围与广播
	assert.NotContains(t, got, "HostMin")
	assert.NotContains(t, got, "HostMax")
	assert.NotContains(t, got, "Broadcast")
}

func TestRenderIPv4PtP(t *testing.T) {
	got := render(t, "10.0.0.5/31", ModePlain, false)

	assert.Contains(t, got, "Network:    10.0.0.4/31")
	assert.Contains(t, got, "HostMin:    10.0.0.4")
	assert.Contains(t, got, "HostMax:    10.0.0.5")
	assert.NotContains(t, got, "Broadcast")
	assert.Contains(t, got, "Class A, PtP Link RFC 3021, Private Internet")
}

func TestRenderIPv6Plain(t *testing.T) {
	want := `Address:    fde6:36fc:c985::c2c1:c0ff:fe1d:cc7f
Netmask:    64
=>
Prefix:     fde6:36fc:c985::/64
HostMin:    fde6:36fc:c985::
HostMax:    fde6:36fc:c985:0:ffff:ffff:ffff:ffff
Hosts/Net:  18446744073709551616                     Unique Local

`
	assert.Equal(t, want,
		render(t, "fde6:36fc:c985::c2c1:c0ff:fe1d:cc7f/64", ModePlain, false))
}

func TestRenderIPv6Binary(t *testing.T) {
	got := render(t, "2001:db8::/32", ModePlain, true)

	assert.Contains(t, got,
		"0010000000000001:0000110110111000: 0000000000000000")
	assert.Contains(t, got, "Documentation")
}

func TestRenderIPv6SingleHost(t *testing.T) {
	got := render(t, "::1/128", ModePlain, false)

	assert.Contains(t, got, "Prefix:     ::1/128")
	assert.NotContains(t, got, "HostMin")
	assert.NotContains(t, got, "Hosts/Net")
	assert.Contains(t, got, "Loopback")
}

func TestRenderNoBinaryKeepsClassInfo(t *testing.T) {
	got := render(t, "192.168.1.1/24", ModePlain, false)

	assert.NotContains(t, got, "11000000")
	assert.Contains(t, got, "Class C, Private Internet")
}

func TestRenderColor(t *testing.T) {
	got := render(t, "10.0.0.1/8", ModeColor, true)

	assert.Contains(t, got, "\033[34m")
	assert.Contains(t, got, "\033[33m")
	assert.Contains(t, got, "\033[31m")
	assert.Contains(t, got, "\033[35m")
}

func TestRenderHTML(t *testing.T) {
	got := render(t, "10.0.0.1/8", ModeHTML, true)

	assert.Contains(t, got, `<font color="#0000ff">`)
	assert.Contains(t, got, "</font>")
	assert.NotContains(t, got, "\033[")
}

func TestTransitionSubnets(t *testing.T) {
	s := mustSubnet(t, "192.168.0.0/24")
	tr, err := xsubnet.TransitionTo(s, 26)
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, ModePlain, false).Transition(s, tr)
	got := buf.String()

	assert.Contains(t, got, "--- Subnets of 192.168.0.0/24 transitioning to /26 ---")
	for _, cidr := range []string{
		"192.168.0.0/26", "192.168.0.64/26", "192.168.0.128/26", "192.168.0.192/26",
	} {
		assert.Contains(t, got, cidr)
	}
	assert.Equal(t, 4, strings.Count(got, "Network:"))
	assert.NotContains(t, got, "stopped at")
}

func TestTransitionTruncated(t *testing.T) {
	s := mustSubnet(t, "10.0.0.0/8")
	tr, err := xsubnet.TransitionTo(s, 24)
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, ModePlain, false).Transition(s, tr)

	assert.Contains(t, buf.String(), "... stopped at 1000 subnets ...")
}

func TestTransitionSupernet(t *testing.T) {
	s := mustSubnet(t, "192.168.5.0/24")
	tr, err := xsubnet.TransitionTo(s, 16)
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, ModePlain, false).Transition(s, tr)
	got := buf.String()

	assert.Contains(t, got, "--- Supernet of 192.168.5.0/24 transitioning to /16 ---")
	assert.Contains(t, got, "Network:    192.168.0.0/16")
}

func TestSplit(t *testing.T) {
	s := mustSubnet(t, "192.168.0.0/24")
	sizes := []int{50, 20, 10}
	blocks, err := xsubnet.SplitBySizes(s, sizes)
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, ModePlain, false).Split(s, sizes, blocks)
	got := buf.String()

	assert.Contains(t, got, "Splitting 192.168.0.0/24 into subnets for hosts: 50, 20, 10")
	assert.Contains(t, got, "1. Requested size: 50 hosts (requires block of 64)")
	assert.Contains(t, got, "2. Requested size: 20 hosts (requires block of 32)")
	assert.Contains(t, got, "3. Requested size: 10 hosts (requires block of 16)")
	assert.Contains(t, got, "Network:    192.168.0.0/26")
	assert.Contains(t, got, "Network:    192.168.0.64/27")
	assert.Contains(t, got, "Network:    192.168.0.96/28")
}
