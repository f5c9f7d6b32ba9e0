package vars

import "strings"

// StrToBool reads the usual boolean spellings. Anything unrecognized is
// false.
func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y":
		return true
	}
	return false
}
