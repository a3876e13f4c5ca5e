package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateBufferOpensFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("hello\nworld"), 0644); err != nil {
		t.Fatal(err)
	}

	e := New()
	i, err := e.CreateBuffer(path)
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if i != 1 || e.Current != 1 {
		t.Fatalf("want index/current 1, got i=%d current=%d", i, e.Current)
	}
	if got := string(e.Files[1].Rows[0].Chars); got != "hello" {
		t.Fatalf("want row0 %q, got %q", "hello", got)
	}
}

func TestKillBufferEscalatesToExitOnLast(t *testing.T) {
	e := New()
	e.KillBuffer()
	if !e.Quit() {
		t.Fatalf("want killing the last buffer to escalate to Exit")
	}
}

func TestKillBufferRemovesCurrentWhenMoreThanOne(t *testing.T) {
	e := New()
	e.CreateBuffer("")
	if e.BufferCount() != 2 {
		t.Fatalf("want 2 buffers, got %d", e.BufferCount())
	}
	e.KillBuffer()
	if e.BufferCount() != 1 {
		t.Fatalf("want 1 buffer after kill, got %d", e.BufferCount())
	}
	if e.Quit() {
		t.Fatalf("want no exit when another buffer remains")
	}
}

func TestChooseBufferStepsOneAtATimeBothDirections(t *testing.T) {
	e := New()
	e.CreateBuffer("") // index 1, current
	e.CreateBuffer("") // index 2, current
	if e.Current != 2 {
		t.Fatalf("want current 2, got %d", e.Current)
	}

	// Per the decided Open Question, ARROW_UP decrements by one rather
	// than resetting to 0.
	e.ChooseBuffer(false)
	if e.Current != 1 {
		t.Fatalf("want current 1 after one backward choose, got %d", e.Current)
	}
	e.ChooseBuffer(false)
	if e.Current != 0 {
		t.Fatalf("want current 0 after two backward choose, got %d", e.Current)
	}
	e.ChooseBuffer(true)
	if e.Current != 1 {
		t.Fatalf("want current 1 after one forward choose, got %d", e.Current)
	}
}

func TestSelectBufferRejectsOutOfRange(t *testing.T) {
	e := New()
	if e.SelectBuffer(5) {
		t.Fatalf("want SelectBuffer to reject an out-of-range index")
	}
	if !e.SelectBuffer(0) {
		t.Fatalf("want SelectBuffer(0) to succeed")
	}
}
