package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kylelemons/kilua-go/script/minilang"
)

func TestDiscoverLoadsBothCandidates(t *testing.T) {
	home := t.TempDir()
	cwd := t.TempDir()
	t.Setenv("HOME", home)

	restore := chdir(t, cwd)
	defer restore()

	writeScript(t, filepath.Join(home, "kilua.lua"), `function on_idle() end`)
	writeScript(t, filepath.Join(cwd, "kilua.lua"), `function on_key(c) end`)

	rt := minilang.New()
	n, err := Discover(rt, "kilua.lua")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if n != 2 {
		t.Fatalf("want 2 loaded, got %d", n)
	}
}

func TestDiscoverJoinsBothFailures(t *testing.T) {
	home := t.TempDir()
	cwd := t.TempDir()
	t.Setenv("HOME", home)
	restore := chdir(t, cwd)
	defer restore()

	rt := minilang.New()
	n, err := Discover(rt, "missing.lua")
	if n != 0 {
		t.Fatalf("want 0 loaded, got %d", n)
	}
	if err == nil {
		t.Fatalf("want a joined error when both candidates are missing")
	}
	msg := err.Error()
	if !strings.Contains(msg, home) || !strings.Contains(msg, cwd) {
		t.Fatalf("want error to mention both candidate paths, got %q", msg)
	}
}

func TestDiscoverOneOfTwo(t *testing.T) {
	home := t.TempDir()
	cwd := t.TempDir()
	t.Setenv("HOME", home)
	restore := chdir(t, cwd)
	defer restore()

	writeScript(t, filepath.Join(home, "kilua.lua"), `function on_idle() end`)

	rt := minilang.New()
	n, err := Discover(rt, "kilua.lua")
	if n != 1 {
		t.Fatalf("want 1 loaded, got %d (err=%v)", n, err)
	}
	if err == nil {
		t.Fatalf("want the missing cwd candidate's error still reported")
	}
}

func writeScript(t *testing.T, path, src string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	return func() { os.Chdir(old) }
}
