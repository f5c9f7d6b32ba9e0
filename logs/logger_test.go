package logs

import (
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	var sb strings.Builder
	dscope.New(
		new(Module),
	).Fork(func() Writer {
		return &sb
	}).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
		if !strings.Contains(sb.String(), "hello=world!") {
			t.Fatalf("got %q", sb.String())
		}
		// default level filters debug records
		logger.Debug("invisible")
		if strings.Contains(sb.String(), "invisible") {
			t.Fatalf("got %q", sb.String())
		}
	})
}
