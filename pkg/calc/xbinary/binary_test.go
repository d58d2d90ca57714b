package xbinary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipcalc/pkg/calc/xaddr"
)

func TestRenderIPv4(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		splitAt int
		want    string
	}{
		{
			name:    "address with /24 marker",
			input:   "192.168.1.1",
			splitAt: 24,
			want:    "11000000.10101000.00000001. 00000001",
		},
		{
			name:    "marker mid-octet",
			input:   "192.168.1.130",
			splitAt: 26,
			want:    "11000000.10101000.00000001.10 000010",
		},
		{
			name:    "no marker at 0",
			input:   "255.0.0.0",
			splitAt: 0,
			want:    "11111111.00000000.00000000.00000000",
		},
		{
			name:    "no marker at full width",
			input:   "10.0.0.1",
			splitAt: 32,
			want:    "00001010.00000000.00000000.00000001",
		},
		{
			name:    "marker at octet boundary keeps separator first",
			input:   "10.0.0.0",
			splitAt: 8,
			want:    "00001010. 00000000.00000000.00000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(xaddr.MustParseAddress(tt.input), tt.splitAt))
		})
	}
}

func TestRenderIPv6(t *testing.T) {
	got := Render(xaddr.MustParseAddress("2001:db8::1"), 32)
	assert.Equal(t,
		"0010000000000001:0000110110111000: "+
			"0000000000000000:0000000000000000:0000000000000000:"+
			"0000000000000000:0000000000000000:0000000000000001",
		got)

	// 8 组 × 16 位 + 7 个分隔符 + 1 个标记空格
	assert.Len(t, got, 128+7+1)
}

func TestRenderInvalid(t *testing.T) {
	assert.Equal(t, "", Render(xaddr.Address{}, 8))
}

func TestRenderMask(t *testing.T) {
	p, err := xaddr.NewPrefix(xaddr.V4, 24)
	require.NoError(t, err)
	assert.Equal(t, "11111111.11111111.11111111. 00000000", RenderMask(p))

	p, err = xaddr.NewPrefix(xaddr.V4, 26)
	require.NoError(t, err)
	assert.Equal(t, "11111111.11111111.11111111.11 000000", RenderMask(p))

	p, err = xaddr.NewPrefix(xaddr.V4, 0)
	require.NoError(t, err)
	assert.Equal(t, "00000000.00000000.00000000.00000000", RenderMask(p))
}

func TestRenderMaskLeadingOnes(t *testing.T) {
	// 掩码二进制去掉分隔符后，前导 1 的个数等于前缀长度
	for _, length := range []int{0, 1, 7, 8, 9, 16, 24, 31, 32} {
		p, err := xaddr.NewPrefix(xaddr.V4, length)
		require.NoError(t, err)

		bits := strings.NewReplacer(".", "", " ", "").Replace(RenderMask(p))
		require.Len(t, bits, 32)
		ones := 0
		for ones < len(bits) && bits[ones] == '1' {
			ones++
		}
		assert.Equal(t, length, ones, "prefix length %d", length)
		assert.NotContains(t, bits[ones:], "1")
	}
}
