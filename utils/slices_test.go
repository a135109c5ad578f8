package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSortedKeys(t *testing.T) {
	m := map[int]int{1: 1, 3: 3, 2: 2}
	require.Equal(t, []int{1, 2, 3}, GetSortedKeys(m))
	m = map[int]int{-1: 1, -3: 3, -2: 2}
	require.Equal(t, []int{-3, -2, -1}, GetSortedKeys(m))
}

func TestGetDistincts(t *testing.T) {
	actual := GetDistincts([]int{1, 2})
	expected := []int{1, 2}
	sort.Ints(expected)
	sort.Ints(actual)
	require.Equal(t, expected, actual)

	actual = GetDistincts([]int{1, 2, 3, 1, 2, 3})
	expected = []int{1, 2, 3}
	sort.Ints(expected)
	sort.Ints(actual)
	require.Equal(t, expected, actual)

	actual = GetDistincts([]int{-1, 1, 1, 1})
	expected = []int{-1, 1}
	sort.Ints(expected)
	sort.Ints(actual)
	require.Equal(t, expected, actual)
}

func TestBitReverse64(t *testing.T) {
	require.Equal(t, uint64(0), BitReverse64(0, 3))
	require.Equal(t, uint64(4), BitReverse64(1, 3))
	require.Equal(t, uint64(3), BitReverse64(6, 3))
	require.Equal(t, uint64(6), BitReverse64(3, 3))
	for i := uint64(0); i < 16; i++ {
		require.Equal(t, i, BitReverse64(BitReverse64(i, 4), 4))
	}
}
