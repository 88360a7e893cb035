package util

// MapSlice applies a converter function to each element of a slice and
// returns a new slice of the converted values.
func MapSlice[T any, R any](items []T, converter func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, converter(item))
	}
	return result
}
