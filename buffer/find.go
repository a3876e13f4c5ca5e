package buffer

import (
	"bytes"

	"github.com/kylelemons/kilua-go/hl"
)

// Search scans forward from one past the cursor, wrapping around the
// buffer, in row-then-column order, for pattern as a plain substring of
// each row's Render. It returns the length of the match (0 if none) and
// warps the cursor to it without touching the undo stack (spec §4.7
// "Non-interactive search"; §4.8 "Find warps cursor without pushing — this
// is a known limitation").
func (b *Buffer) Search(pattern string) int {
	total := len(b.Rows)
	if pattern == "" || total == 0 {
		return 0
	}

	x, y := b.filePos()
	needle := []byte(pattern)

	for step := 0; step <= total; step++ {
		row := (y + step) % total
		from := 0
		if step == 0 {
			from = x + 1
		}
		r := b.Rows[row]
		if from > len(r.Render) {
			continue
		}
		idx := bytes.Index(r.Render[from:], needle)
		if idx < 0 {
			continue
		}
		col := from + idx
		b.warpTo(col, row)
		return len(needle)
	}
	return 0
}

// FindState tracks the incremental-search mini-mode's last match and the
// highlight it temporarily overlays (spec §4.7 "Incremental find").
type FindState struct {
	LastMatchRow int // -1 if no match yet
	SavedHLRow   int
	SavedHL      []byte
	lastQuery    string // query of the previous step
}

// NewFindState starts a fresh incremental search session.
func NewFindState() *FindState {
	return &FindState{LastMatchRow: -1, SavedHLRow: -1}
}

// restoreHL un-does the previous match's MATCH highlight overlay.
func (b *Buffer) restoreHL(fs *FindState) {
	if fs.SavedHLRow < 0 || fs.SavedHLRow >= len(b.Rows) {
		fs.SavedHLRow, fs.SavedHL = -1, nil
		return
	}
	if fs.SavedHL != nil {
		copy(b.Rows[fs.SavedHLRow].HL, fs.SavedHL)
	}
	fs.SavedHLRow = -1
	fs.SavedHL = nil
}

// StepFind advances the incremental search by one query update: restart
// scanning from fs.LastMatchRow (or the cursor, if this is the first
// update), overlay the match with the MATCH tag, and remember the bytes it
// overwrote so the next step (or a cancel) can restore them. When query is
// the same as in the previous step, the row of the last match is skipped,
// so the step moves on to the next (or, backward, the previous) match.
func (b *Buffer) StepFind(fs *FindState, query string, backward bool) bool {
	b.restoreHL(fs)
	first := 0
	if fs.LastMatchRow >= 0 && query == fs.lastQuery {
		first = 1
	}
	fs.lastQuery = query
	if query == "" {
		return false
	}

	total := len(b.Rows)
	if total == 0 {
		return false
	}

	row := fs.LastMatchRow
	if row < 0 {
		_, row = b.filePos()
	}

	dir := 1
	if backward {
		dir = -1
	}

	needle := []byte(query)
	for step := first; step <= total; step++ {
		r := ((row+step*dir)%total + total) % total
		idx := bytes.Index(b.Rows[r].Render, needle)
		if idx < 0 {
			continue
		}
		fs.LastMatchRow = r
		fs.SavedHLRow = r
		fs.SavedHL = append([]byte(nil), b.Rows[r].HL...)
		for i := idx; i < idx+len(needle) && i < len(b.Rows[r].HL); i++ {
			b.Rows[r].HL[i] = byte(hl.Match)
		}
		b.warpTo(idx, r)
		return true
	}
	return false
}

// CancelFind restores whatever highlight the in-progress search overlaid
// and resets the cursor to where the search began.
func (b *Buffer) CancelFind(fs *FindState, origX, origY int) {
	b.restoreHL(fs)
	b.warpTo(origX, origY)
}
