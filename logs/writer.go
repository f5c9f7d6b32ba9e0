package logs

import (
	"io"
	"os"
)

// Writer is the sink of the local text handler. Tests fork this to capture
// log output; the default keeps stdout clean for program output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
