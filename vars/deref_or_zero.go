package vars

// DerefOrZero reads through a possibly-nil pointer, as produced by optional
// command arguments.
func DerefOrZero[T any](ptr *T) (ret T) {
	if ptr == nil {
		return
	}
	return *ptr
}
