package buffer

// HasMark reports whether the mark is set (spec §3: unset is (-1,-1)).
func (b *Buffer) HasMark() bool {
	return b.MarkX != -1 || b.MarkY != -1
}

// SetMark anchors the selection at the given buffer-coordinate position.
func (b *Buffer) SetMark(x, y int) {
	b.MarkX, b.MarkY = x, y
}

// ClearMark unsets the mark.
func (b *Buffer) ClearMark() {
	b.MarkX, b.MarkY = -1, -1
}

func pointLess(y1, x1, y2, x2 int) bool {
	return y1 < y2 || (y1 == y2 && x1 < x2)
}

// spanBytes returns the document-order bytes in the half-open interval
// [(loX,loY), (hiX,hiY)), joining rows with '\n' exactly as RowsToString
// does.
func (b *Buffer) spanBytes(loX, loY, hiX, hiY int) []byte {
	var out []byte
	for y := loY; y <= hiY && y < len(b.Rows); y++ {
		r := b.Rows[y]
		lo, hi := 0, r.Size()
		if y == loY {
			lo = loX
		}
		if y == hiY {
			hi = hiX
		}
		if lo < 0 {
			lo = 0
		}
		if hi > r.Size() {
			hi = r.Size()
		}
		if lo > hi {
			lo = hi
		}
		out = append(out, r.Chars[lo:hi]...)
		if y < hiY {
			out = append(out, '\n')
		}
	}
	return out
}

func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// GetSelection returns the bytes between the mark and the cursor. The
// reading direction runs from the cursor to the mark: if the cursor
// precedes the mark in document order the result is the forward
// (ascending) span; otherwise it is that span reversed (spec §4.7,
// testable property 6: get_selection(mark=A,cursor=B) ==
// reverse(get_selection(mark=B,cursor=A))).
func (b *Buffer) GetSelection() []byte {
	if !b.HasMark() {
		return nil
	}
	cx, cy := b.filePos()
	mx, my := b.MarkX, b.MarkY
	if cx == mx && cy == my {
		return nil
	}

	var loX, loY, hiX, hiY int
	if pointLess(cy, cx, my, mx) {
		loX, loY, hiX, hiY = cx, cy, mx, my
	} else {
		loX, loY, hiX, hiY = mx, my, cx, cy
	}
	span := b.spanBytes(loX, loY, hiX, hiY)

	if pointLess(my, mx, cy, cx) {
		// mark precedes cursor in document order: cursor-to-mark
		// reading runs backward.
		return reversed(span)
	}
	return span
}

// CutSelection deletes exactly the bytes GetSelection would return,
// leaves the cursor at the earlier end, and clears the mark (spec §4.7,
// testable property 7).
func (b *Buffer) CutSelection() []byte {
	sel := b.GetSelection()
	if sel == nil {
		return nil
	}
	cx, cy := b.filePos()
	mx, my := b.MarkX, b.MarkY

	var loX, loY, hiX, hiY int
	if pointLess(cy, cx, my, mx) {
		loX, loY, hiX, hiY = cx, cy, mx, my
	} else {
		loX, loY, hiX, hiY = mx, my, cx, cy
	}

	b.deleteSpan(loX, loY, hiX, hiY)
	b.warpTo(loX, loY)
	b.ClearMark()
	return sel
}

// deleteSpan removes the half-open document span [(loX,loY),(hiX,hiY)).
func (b *Buffer) deleteSpan(loX, loY, hiX, hiY int) {
	if loY == hiY {
		r := b.Rows[loY]
		hi := hiX
		if hi > r.Size() {
			hi = r.Size()
		}
		r.Chars = append(r.Chars[:loX], r.Chars[hi:]...)
		b.rehighlight(loY)
		b.markDirty()
		return
	}

	first := b.Rows[loY]
	last := b.Rows[hiY]
	hi := hiX
	if hi > last.Size() {
		hi = last.Size()
	}
	merged := append(append([]byte(nil), first.Chars[:loX]...), last.Chars[hi:]...)
	first.Chars = merged
	for y := hiY; y > loY; y-- {
		b.DeleteRow(y)
	}
	b.rehighlight(loY)
	b.markDirty()
}

// WarpTo exposes warpTo for callers outside the package (the scripting
// bridge's `point` setter, spec §4.9).
func (b *Buffer) WarpTo(x, y int) {
	b.warpTo(x, y)
}

// warpTo moves the cursor/viewport so that the cursor sits on buffer
// position (x,y), used by undo and cut_selection to relocate without
// walking cell-by-cell (spec §4.8's "warps cursor to (x,y)").
func (b *Buffer) warpTo(x, y int) {
	if y < 0 {
		y = 0
	}
	if y >= len(b.Rows) {
		y = len(b.Rows) - 1
	}
	if y < 0 {
		y = 0
	}

	if y < b.ScreenRows {
		b.Cy, b.RowOff = y, 0
	} else {
		b.Cy, b.RowOff = b.ScreenRows-1, y-(b.ScreenRows-1)
	}

	if x < b.ScreenCols {
		b.Cx, b.ColOff = x, 0
	} else {
		b.Cx, b.ColOff = b.ScreenCols-1, x-(b.ScreenCols-1)
	}
	b.clampColumn()
}
