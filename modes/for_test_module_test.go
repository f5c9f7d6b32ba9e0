package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/storm-lang/storm/logs"
)

func TestForTest(t *testing.T) {
	dscope.New(
		new(logs.Module),
		ForTest(t),
	).Fork(func(tt *testing.T) logs.Writer {
		// route log output through the test log
		return tt.Output()
	}).Call(func(
		mode Mode,
		logger logs.Logger,
		tt *testing.T,
	) {
		if mode != ModeDevelopment {
			t.Fatal()
		}
		if tt != t {
			t.Fatal()
		}
		logger.Info("captured by test log")
	})
}
