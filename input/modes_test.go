package input

import (
	"testing"

	"github.com/kylelemons/kilua-go/buffer"
)

func TestPromptAcceptsQuery(t *testing.T) {
	r := &timeoutReader{data: []byte("foo\r")}
	var draws []string
	q, ok := Prompt(r, func(s string) { draws = append(draws, s) })
	if !ok || q != "foo" {
		t.Fatalf("want accepted %q, got %q ok=%v", "foo", q, ok)
	}
	if len(draws) == 0 || draws[len(draws)-1] != "foo" {
		t.Fatalf("want last draw to be %q, got %v", "foo", draws)
	}
}

func TestPromptCancel(t *testing.T) {
	r := &timeoutReader{data: []byte("foo\x1b")}
	_, ok := Prompt(r, func(string) {})
	if ok {
		t.Fatal("ESC should cancel the prompt")
	}
}

func TestPromptBackspace(t *testing.T) {
	r := &timeoutReader{data: []byte("fop\x7fo\r")} // "fop", backspace, "o" -> "foo"
	q, ok := Prompt(r, func(string) {})
	if !ok || q != "foo" {
		t.Fatalf("want %q, got %q ok=%v", "foo", q, ok)
	}
}

func TestIncrementalFindMovesCursorToMatch(t *testing.T) {
	b := buffer.New()
	b.Rows = nil
	b.AppendRow([]byte("bar"))
	b.AppendRow([]byte("foobar"))
	b.AppendRow([]byte("foo"))

	r := &timeoutReader{data: []byte("foo\r")}
	IncrementalFind(r, b, func(string) {})

	x, y := b.FilePos()
	if y != 1 || x != 0 {
		t.Fatalf("want match at row 1 col 0, got (%d,%d)", x, y)
	}
}

func TestIncrementalFindEscRestoresCursor(t *testing.T) {
	b := buffer.New()
	b.Rows = nil
	b.AppendRow([]byte("bar"))
	b.AppendRow([]byte("foobar"))
	origX, origY := b.FilePos()

	r := &timeoutReader{data: []byte("foo\x1b")}
	IncrementalFind(r, b, func(string) {})

	x, y := b.FilePos()
	if x != origX || y != origY {
		t.Fatalf("ESC should restore cursor, want (%d,%d) got (%d,%d)", origX, origY, x, y)
	}
}
