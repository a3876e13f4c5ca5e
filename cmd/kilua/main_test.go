package main

import (
	"os"
	"testing"
)

// TestRunFailsFastWithoutATerminal exercises the fatal-init path (spec
// §7 "stdin not a tty"): go test's stdin is not a terminal, so run must
// fail immediately rather than block.
func TestRunFailsFastWithoutATerminal(t *testing.T) {
	if err := run(nil); err == nil {
		t.Fatalf("want an error when stdin is not a terminal")
	}
}

func TestVersionFlagPrintsAndReturns(t *testing.T) {
	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	*versionFlag = true
	defer func() { *versionFlag = false }()
	main()

	w.Close()
	buf := make([]byte, 64)
	n, _ := r.Read(buf)
	if n == 0 {
		t.Fatalf("want version output, got none")
	}
}
