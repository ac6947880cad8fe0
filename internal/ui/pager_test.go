package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 0, TotalPages(5, 0), "degenerate page size yields no pages")

	// Monotonic non-decreasing in length.
	prev := 0
	for length := range 100 {
		total := TotalPages(length, 7)
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}
}

func TestPageOf_ReconstructsList(t *testing.T) {
	list := make([]int, 23)
	for i := range list {
		list[i] = i
	}

	const pageSize = 5
	var rebuilt []int
	for page := range TotalPages(len(list), pageSize) {
		window := pageOf(list, page, pageSize)
		require.NotEmpty(t, window, "no page within range may be empty")
		require.LessOrEqual(t, len(window), pageSize)
		rebuilt = append(rebuilt, window...)
	}
	assert.Equal(t, list, rebuilt, "concatenating all pages must reproduce the list")
}

func TestPageOf_OutOfRange(t *testing.T) {
	list := []int{1, 2, 3}
	assert.Empty(t, pageOf(list, 1, 5))
	assert.Empty(t, pageOf(list, -1, 5))
	assert.Empty(t, pageOf([]int{}, 0, 5))
}
