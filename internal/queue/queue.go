// Package queue builds play-queue traversal orders over a playlist.
package queue

import "math/rand"

// Build returns the playback traversal order for a playlist of the given
// length: the identity order, or a uniformly random permutation when shuffle
// is on. Queue position is not preserved across rebuilds; callers reset their
// cursor to the first entry.
func Build(length int, shuffle bool) []int {
	if length < 0 {
		length = 0
	}
	order := make([]int, length)
	for i := range order {
		order[i] = i
	}
	if shuffle {
		rand.Shuffle(length, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}
