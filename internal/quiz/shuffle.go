package quiz

import "math/rand"

// shuffleCopy returns a Fisher-Yates shuffled copy of items. The input slice
// is never mutated; repeat shuffles of the same question therefore never see
// a previously permuted order.
func shuffleCopy[T any](rng *rand.Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
