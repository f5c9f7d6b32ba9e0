package configs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeCue(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.cue")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `
tapeSize: 30000
pointerPolicy: "clamp"
`),
	}, Schema)

	var size int
	if err := loader.AssignFirst("tapeSize", &size); err != nil {
		t.Fatal(err)
	}
	if size != 30000 {
		t.Fatalf("got %d", size)
	}

	var str string
	err := loader.AssignFirst("eofBehavior", &str)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderFirstWins(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `tapeSize: 100`),
		writeCue(t, `
tapeSize: 200
pointerPolicy: "wrap"
`),
	}, Schema)

	if n := First[int](loader, "tapeSize"); n != 100 {
		t.Fatalf("got %d", n)
	}
	// value only present in the second file
	if str := First[string](loader, "pointerPolicy"); str != "wrap" {
		t.Fatalf("got %q", str)
	}

	var sizes []int
	for n := range All[int](loader, "tapeSize") {
		sizes = append(sizes, n)
	}
	if str := fmt.Sprintf("%v", sizes); str != "[100 200]" {
		t.Fatalf("got %s", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		writeCue(t, `noSuchOption: true`),
	}, Schema)
	var b bool
	err := loader.AssignFirst("noSuchOption", &b)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}
