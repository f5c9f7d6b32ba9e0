package configs

import (
	"errors"
)

// First reads the nearest definition of path, or the zero value when no
// file defines it. Any other failure is a misconfiguration and panics.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
