package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one logical activity, e.g. a debugger session. It rides
// in the context and is attached to every record by Handler.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
