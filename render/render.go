// Package render composes the current buffer and editor state into a
// single VT100 escape-sequence stream and writes it in one call, the way
// kylelemons-goat/term's Region.Draw accumulates a line buffer before a
// single SetCursor+echo pair, generalized to the editor's full-screen
// refresh (spec §4.3).
package render

import (
	"bytes"
	"fmt"

	"github.com/kylelemons/kilua-go/buffer"
	"github.com/kylelemons/kilua-go/hl"
)

// color maps a highlight tag to its ANSI SGR parameter (spec §4.3 color
// table). Tags with no explicit entry fall back to 37 (default white).
var color = map[hl.Tag]int{
	hl.Comment:   36,
	hl.MLComment: 36,
	hl.Keyword1:  33,
	hl.Keyword2:  32,
	hl.String:    35,
	hl.Number:    31,
	hl.Match:     34,
	hl.Selection: 30,
}

func colorFor(tag hl.Tag) int {
	if c, ok := color[tag]; ok {
		return c
	}
	return 37
}

// Info carries the editor-level fields the frame composition needs
// (spec §4.3 step 3: "File i/N: name"); it is supplied by the caller
// (the editor package) so render has no dependency on it and no import
// cycle results.
type Info struct {
	FileIndex int // 1-based
	FileCount int
	// StatusMessage is the line 2 text, already gated by the editor for
	// the 5-second freshness window (spec §3 "displayed only while
	// fresh").
	StatusMessage string
	// Welcome, when non-nil, is written for a buffer with no rows: its
	// lines follow the '~' marker of consecutive screen rows starting a
	// third of the way down, left-aligned rather than centered, whatever
	// the buffer's name (spec §7 "welcome-screen banner", supplemented
	// from kilua.c's welcome_msg table).
	Welcome []string
}

// isPrint reports whether b is an ASCII printable byte (spec's
// byte-oriented non-goal: high bytes are opaque and rendered as '?').
func isPrint(b byte) bool {
	return b >= 32 && b < 127
}

// inSelection reports whether (row, col) in document coordinates lies
// within the inclusive span between the cursor and the mark, following
// kilua.c's editorRefreshScreen mark-overlay logic (spec §4.3 step 2).
func inSelection(buf *buffer.Buffer, row, col int) bool {
	if buf.MarkX < 0 || buf.MarkY < 0 {
		return false
	}
	mx, my := buf.MarkX, buf.MarkY
	cx, cy := buf.FilePos()

	cursorAhead := cy > my || (cx > mx && cy == my)
	if cursorAhead {
		switch {
		case cy == my:
			return row == cy && col >= mx && col <= cx
		case row == my:
			return col >= mx
		case row == cy:
			return col <= cx
		default:
			return row > my && row < cy
		}
	}

	switch {
	case cy == my:
		return row == cy && col <= mx && col >= cx
	case row == my:
		return col <= mx
	case row == cy:
		return col > cx
	default:
		return row > cy && row < my
	}
}

// Frame writes one full-screen refresh for buf to w (spec §4.3, steps
// 1-6). It never partially writes: the whole escape stream is built in
// an in-memory buffer first, then written once.
func Frame(w interface{ Write([]byte) (int, error) }, buf *buffer.Buffer, info Info) error {
	var ab bytes.Buffer

	ab.WriteString("\x1b[?25l") // hide cursor
	ab.WriteString("\x1b[H")    // home

	drawn := 0
	for y := 0; y < buf.ScreenRows; y++ {
		filerow := buf.RowOff + y
		if filerow >= len(buf.Rows) {
			if len(buf.Rows) == 0 && y == buf.ScreenRows/3+drawn && drawn < len(info.Welcome) {
				ab.WriteString("\x1b[2K~ ")
				ab.WriteString(info.Welcome[drawn])
				drawn++
			} else {
				ab.WriteString("\x1b[2K~\r\n")
			}
			continue
		}

		r := buf.Rows[filerow]
		n := r.RSize() - buf.ColOff
		if n > 0 {
			if n > buf.ScreenCols {
				n = buf.ScreenCols
			}
			current := -1 // -1 means "no color active"
			for j := 0; j < n; j++ {
				col := buf.ColOff + j
				tag := hl.Tag(r.HL[col])
				if inSelection(buf, filerow, col) {
					tag = hl.Selection
				}
				c := r.Render[col]

				switch {
				case tag == hl.Normal && isPrint(c):
					if current != -1 {
						ab.WriteString("\x1b[39m")
						current = -1
					}
					ab.WriteByte(c)
				case tag == hl.Normal:
					ab.WriteString("\x1b[41m?\x1b[49m")
					current = -1
				case tag == hl.Selection:
					ab.WriteString("\x1b[47m")
					if isPrint(c) {
						ab.WriteByte(c)
					} else {
						ab.WriteByte('?')
					}
					ab.WriteString("\x1b[49m")
				default:
					sc := colorFor(tag)
					if sc != current {
						fmt.Fprintf(&ab, "\x1b[%dm", sc)
						current = sc
					}
					if isPrint(c) {
						ab.WriteByte(c)
					} else {
						ab.WriteString("\x1b[41m?\x1b[49m")
						current = -1
					}
				}
			}
		}
		ab.WriteString("\x1b[39m\x1b[0K\r\n")
	}

	writeStatusLine1(&ab, buf, info)
	writeStatusLine2(&ab, buf.ScreenCols, info.StatusMessage)

	vx := visualColumn(buf)
	fmt.Fprintf(&ab, "\x1b[%d;%dH", buf.Cy+1, vx+1)

	ab.WriteString("\x1b[?25h") // show cursor

	_, err := w.Write(ab.Bytes())
	return err
}

func writeStatusLine1(ab *bytes.Buffer, buf *buffer.Buffer, info Info) {
	ab.WriteString("\x1b[0K\x1b[7m")

	name := buf.Filename
	if name == "" {
		name = "<NONE>"
	}
	modified := ""
	if buf.IsModified() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("File %d/%d: %s%s", info.FileIndex, info.FileCount, name, modified)
	right := fmt.Sprintf("Col:%d Row:%d/%d", buf.ColOff+buf.Cx+1, buf.RowOff+buf.Cy+1, len(buf.Rows))

	if len(left) > buf.ScreenCols {
		left = left[:buf.ScreenCols]
	}
	ab.WriteString(left)

	n := len(left)
	for n < buf.ScreenCols {
		if buf.ScreenCols-n == len(right) {
			ab.WriteString(right)
			break
		}
		ab.WriteByte(' ')
		n++
	}
	ab.WriteString("\x1b[0m\r\n")
}

func writeStatusLine2(ab *bytes.Buffer, cols int, msg string) {
	ab.WriteString("\x1b[0K")
	if msg == "" {
		return
	}
	if len(msg) > cols {
		ab.WriteString(msg[len(msg)-cols:])
		return
	}
	ab.WriteString(msg)
	for i := len(msg); i < cols; i++ {
		ab.WriteByte(' ')
	}
}

// visualColumn expands TABs between coloff and cx+coloff into the
// on-screen column the cursor should be drawn at (spec §4.3 step 5).
func visualColumn(buf *buffer.Buffer) int {
	row := buf.CurrentRow()
	if row == nil {
		return buf.Cx
	}
	return row.CxToRx(buf.ColOff+buf.Cx, buf.TabSize) - buf.ColOff
}
