// Package buffer implements the multi-row in-memory text buffer (the
// spec's "FileState"): rows, cursor/viewport/mark state, dirty tracking,
// and the row-editing and cursor-motion primitives the scripting bridge is
// built on top of.
package buffer

import (
	"github.com/kylelemons/kilua-go/hl"
	"github.com/kylelemons/kilua-go/row"
)

// Buffer is one open file (or virtual buffer, e.g. "*Messages*").
type Buffer struct {
	Rows []*row.Row

	Cx, Cy         int
	RowOff, ColOff int
	MarkX, MarkY   int

	Dirty int

	Filename string
	Syntax   *hl.Config
	TabSize  int

	History UndoStack

	// ScreenRows/ScreenCols mirror the Editor's geometry; they are set
	// via SetScreen so that cursor motion and paging can be exercised in
	// tests without a real terminal (spec Design Notes).
	ScreenRows, ScreenCols int
}

// New creates an empty buffer with no filename (a scratch buffer unless
// the caller later sets one starting with '*').
func New() *Buffer {
	return &Buffer{
		MarkX: -1, MarkY: -1,
		TabSize:    row.DefaultTabSize,
		ScreenRows: 24, ScreenCols: 80,
		History: NewUndoStack(),
	}
}

// SetScreen sets the viewport geometry used by cursor motion and paging.
func (b *Buffer) SetScreen(rows, cols int) {
	b.ScreenRows, b.ScreenCols = rows, cols
}

// IsVirtual reports whether this buffer's name marks it as never-dirty
// (spec §3: "a leading * marks a virtual buffer").
func (b *Buffer) IsVirtual() bool {
	return len(b.Filename) > 0 && b.Filename[0] == '*'
}

// IsModified reports whether the buffer has unsaved changes; virtual
// buffers are never considered modified.
func (b *Buffer) IsModified() bool {
	return b.Dirty > 0 && !b.IsVirtual()
}

func (b *Buffer) markDirty() {
	if !b.IsVirtual() {
		b.Dirty++
	}
}

// rehighlight recomputes Render/HL for rows[at] and propagates an
// open-comment state change forward.
func (b *Buffer) rehighlight(at int) {
	if at < 0 || at >= len(b.Rows) {
		return
	}
	b.Rows[at].UpdateRender(b.TabSize)
	hl.PropagateAll(b.Rows, at, b.Syntax)
}

// renumber fixes Index fields for rows starting at position from.
func (b *Buffer) renumber(from int) {
	for i := from; i < len(b.Rows); i++ {
		b.Rows[i].Index = i
	}
}

// InsertRow inserts a new row with the given raw content at position at,
// shifting rows at and after it to the right and renumbering them (spec
// §3 Row lifecycle).
func (b *Buffer) InsertRow(at int, chars []byte) {
	if at < 0 || at > len(b.Rows) {
		return
	}
	r := row.New(at, chars)
	b.Rows = append(b.Rows, nil)
	copy(b.Rows[at+1:], b.Rows[at:])
	b.Rows[at] = r
	b.renumber(at)
	b.rehighlight(at)
	b.markDirty()
}

// AppendRow appends a new row at the end of the buffer.
func (b *Buffer) AppendRow(chars []byte) {
	b.InsertRow(len(b.Rows), chars)
}

// DeleteRow removes the row at position at, shifting later rows left and
// renumbering them.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.Rows) {
		return
	}
	b.Rows = append(b.Rows[:at], b.Rows[at+1:]...)
	b.renumber(at)
	if at < len(b.Rows) {
		b.rehighlight(at)
	}
	b.markDirty()
}

// filePos returns the cursor position in buffer (document) coordinates.
func (b *Buffer) filePos() (x, y int) {
	return b.ColOff + b.Cx, b.RowOff + b.Cy
}

// FilePos exposes filePos for callers outside the package (e.g. the
// input package's mini-modes, which need to save/restore it around a
// prompt).
func (b *Buffer) FilePos() (x, y int) {
	return b.filePos()
}

// CurrentRow returns the row the cursor is on, or nil if the cursor is
// past the last row.
func (b *Buffer) CurrentRow() *row.Row {
	_, y := b.filePos()
	if y < 0 || y >= len(b.Rows) {
		return nil
	}
	return b.Rows[y]
}

// RowsToString concatenates every row's raw content with '\n' separators
// (spec §4.5 rows_to_string), with no trailing separator.
func (b *Buffer) RowsToString() []byte {
	var out []byte
	for i, r := range b.Rows {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, r.Chars...)
	}
	return out
}
