package utils

// Map projects each element of elems through f. The pipeline uses it to pull
// single-channel traces out of multi-channel sample rows.
func Map[T, U any](elems []T, f func(T) U) []U {
	result := make([]U, len(elems))
	for i, v := range elems {
		result[i] = f(v)
	}
	return result
}

// Filter returns the elements of elems that satisfy f, preserving order.
// Partitioning spike timestamps is two complementary Filter passes.
func Filter[T any](elems []T, f func(T) bool) []T {
	result := make([]T, 0, len(elems))
	for _, v := range elems {
		if f(v) {
			result = append(result, v)
		}
	}
	return result
}
