package vars

// FirstNonZero picks the first value that is not the zero of its type, for
// layering overrides over defaults.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
