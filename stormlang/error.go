package stormlang

import "fmt"

// StructureError reports unbalanced loop markers. The whole parse is
// rejected; no partial program is produced.
type StructureError struct {
	Pos Pos
	Msg string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Pos)
}
