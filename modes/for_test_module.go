package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest swaps the process defaults for test-friendly ones and makes
// the running *testing.T injectable, so package scopes can fork their own
// writers and fixtures off it.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
