package xsubnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBySizes(t *testing.T) {
	parent := mustSubnet(t, "192.168.0.0/24")

	blocks, err := SplitBySizes(parent, []int{50, 20, 10})
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	// 50 主机 → 需 52 地址 → /26（64）；20 → 22 → /27（32）；10 → 12 → /28（16）。
	// 从大到小连续分配，结果保持请求顺序。
	assert.Equal(t, 50, blocks[0].Requested)
	assert.Equal(t, "192.168.0.0/26", blocks[0].Subnet.CIDR())
	assert.Equal(t, "62", blocks[0].Subnet.HostCount.String())

	assert.Equal(t, 20, blocks[1].Requested)
	assert.Equal(t, "192.168.0.64/27", blocks[1].Subnet.CIDR())
	assert.Equal(t, "30", blocks[1].Subnet.HostCount.String())

	assert.Equal(t, 10, blocks[2].Requested)
	assert.Equal(t, "192.168.0.96/28", blocks[2].Subnet.CIDR())
	assert.Equal(t, "14", blocks[2].Subnet.HostCount.String())
}

func TestSplitBySizesRequestOrderPreserved(t *testing.T) {
	parent := mustSubnet(t, "10.0.0.0/24")

	// 小的请求在前：分配仍从大块开始，但返回顺序跟随请求
	blocks, err := SplitBySizes(parent, []int{10, 100})
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, 10, blocks[0].Requested)
	assert.Equal(t, "10.0.0.128/28", blocks[0].Subnet.CIDR())
	assert.Equal(t, 100, blocks[1].Requested)
	assert.Equal(t, "10.0.0.0/25", blocks[1].Subnet.CIDR())
}

func TestSplitBySizesExactPowerBoundary(t *testing.T) {
	parent := mustSubnet(t, "10.0.0.0/24")

	// 62 主机 → 64 地址 → /26；63 主机 → 65 地址 → /25
	blocks, err := SplitBySizes(parent, []int{62})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/26", blocks[0].Subnet.CIDR())

	blocks, err = SplitBySizes(parent, []int{63})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/25", blocks[0].Subnet.CIDR())
}

func TestSplitBySizesCapacityExceeded(t *testing.T) {
	parent := mustSubnet(t, "192.168.0.0/24")

	_, err := SplitBySizes(parent, []int{200, 100})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestSplitBySizesFillsExactly(t *testing.T) {
	parent := mustSubnet(t, "192.168.0.0/24")

	// 两个 /25 恰好填满 /24
	blocks, err := SplitBySizes(parent, []int{126, 126})
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0/25", blocks[0].Subnet.CIDR())
	assert.Equal(t, "192.168.0.128/25", blocks[1].Subnet.CIDR())

	// 再多一个就超容量
	_, err = SplitBySizes(parent, []int{126, 126, 1})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestSplitBySizesInvalid(t *testing.T) {
	parent := mustSubnet(t, "192.168.0.0/24")

	_, err := SplitBySizes(parent, nil)
	assert.ErrorIs(t, err, ErrInvalidSplitSize)

	_, err = SplitBySizes(parent, []int{0})
	assert.ErrorIs(t, err, ErrInvalidSplitSize)

	_, err = SplitBySizes(parent, []int{-5})
	assert.ErrorIs(t, err, ErrInvalidSplitSize)

	v6 := mustSubnet(t, "2001:db8::/64")
	_, err = SplitBySizes(v6, []int{10})
	assert.ErrorIs(t, err, ErrSplitUnsupported)
}
