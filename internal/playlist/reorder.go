package playlist

// Reorder returns a new list with the element at from moved to to.
// The input is never mutated, which keeps drag-over handling a pure
// computation over the previous order. Out-of-range from returns an
// unchanged copy; to is clamped.
func Reorder(list []string, from, to int) []string {
	result := make([]string, len(list))
	copy(result, list)

	if from < 0 || from >= len(result) {
		return result
	}
	if to < 0 {
		to = 0
	}
	if to >= len(result) {
		to = len(result) - 1
	}
	if from == to {
		return result
	}

	moved := result[from]
	result = append(result[:from], result[from+1:]...)
	result = append(result[:to], append([]string{moved}, result[to:]...)...)
	return result
}
