package buffer

import (
	"testing"

	"github.com/kylelemons/kilua-go/hl"
)

// TestS4IncrementalFind: find "foo" in [bar, foobar, foo]: first match row
// 1 col 0; ARROW_DOWN -> row 2 col 0; ARROW_DOWN wraps -> row 1 col 0.
func TestS4IncrementalFind(t *testing.T) {
	b := New()
	b.Rows = nil
	b.AppendRow([]byte("bar"))
	b.AppendRow([]byte("foobar"))
	b.AppendRow([]byte("foo"))

	fs := NewFindState()
	if !b.StepFind(fs, "foo", false) {
		t.Fatal("expected a match")
	}
	if fs.LastMatchRow != 1 || b.Cy+b.RowOff != 1 || b.Cx+b.ColOff != 0 {
		t.Fatalf("want row 1 col 0, got row %d col %d", b.Cy+b.RowOff, b.Cx+b.ColOff)
	}

	if !b.StepFind(fs, "foo", false) {
		t.Fatal("expected a second match")
	}
	if fs.LastMatchRow != 2 {
		t.Fatalf("want row 2, got row %d", fs.LastMatchRow)
	}

	if !b.StepFind(fs, "foo", false) {
		t.Fatal("expected wraparound match")
	}
	if fs.LastMatchRow != 1 {
		t.Fatalf("want wraparound to row 1, got row %d", fs.LastMatchRow)
	}
}

func TestSearchWrapsAndReturnsLength(t *testing.T) {
	b := New()
	b.Rows = nil
	b.AppendRow([]byte("needle here"))
	b.Cx, b.Cy = 5, 0

	n := b.Search("needle")
	if n != len("needle") {
		t.Fatalf("want match length %d, got %d", len("needle"), n)
	}
	x, y := b.filePos()
	if x != 0 || y != 0 {
		t.Fatalf("want wrap to (0,0), got (%d,%d)", x, y)
	}
}

func TestSearchNotFound(t *testing.T) {
	b := New()
	b.Rows = nil
	b.AppendRow([]byte("abc"))
	if n := b.Search("zzz"); n != 0 {
		t.Fatalf("want 0 for no match, got %d", n)
	}
}

func TestCancelFindRestoresHighlightAndCursor(t *testing.T) {
	b := New()
	b.Rows = nil
	b.AppendRow([]byte("foo bar"))
	b.Syntax = nil
	b.Rows[0].UpdateRender(b.TabSize)

	origX, origY := b.filePos()
	fs := NewFindState()
	b.StepFind(fs, "bar", false)
	b.CancelFind(fs, origX, origY)

	x, y := b.filePos()
	if x != origX || y != origY {
		t.Fatalf("cancel should restore original cursor, got (%d,%d) want (%d,%d)", x, y, origX, origY)
	}
	for i, tag := range b.Rows[0].HL {
		if hl.Tag(tag) != hl.Normal {
			t.Fatalf("cancel should restore the highlight, byte %d is %v", i, hl.Tag(tag))
		}
	}
}
