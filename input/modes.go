package input

import (
	"io"

	"github.com/kylelemons/kilua-go/buffer"
)

// MaxPromptLen bounds a Prompt query (spec §4.7 "Maximum query length
// 256").
const MaxPromptLen = 256

// Draw is invoked after every query edit so the caller can redraw the
// status line with "<prompt><query>" (spec §4.7 "displays <prompt><query>").
type Draw func(query string)

// Prompt reads a line at the bottom of the screen: printable bytes
// append, DEL/CTRL_H/Backspace pop the last byte, ESC cancels, ENTER
// accepts. It returns the final query and whether the user accepted it.
func Prompt(r io.Reader, draw Draw) (string, bool) {
	query := make([]byte, 0, 64)
	draw(string(query))

	for {
		key, err := ReadKey(r)
		if err != nil {
			return "", false
		}

		switch key {
		case Enter:
			return string(query), true
		case Esc:
			return "", false
		case DelKey, Backspace, CtrlH:
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
		default:
			if key >= 32 && key < 127 && len(query) < MaxPromptLen {
				query = append(query, byte(key))
			}
		}
		draw(string(query))
	}
}

// IncrementalFind drives the find-as-you-type mini-mode over buf: each
// query edit restarts the search from the last match (or the cursor, on
// the first edit), ARROW_DOWN/RIGHT advances to the next match and
// ARROW_UP/LEFT to the previous, ESC restores the cursor that was active
// when the mode started (spec §4.7 "Incremental find").
func IncrementalFind(r io.Reader, buf *buffer.Buffer, draw Draw) {
	origX, origY := buf.FilePos()
	fs := buffer.NewFindState()
	query := make([]byte, 0, 64)
	draw(string(query))

	for {
		key, err := ReadKey(r)
		if err != nil {
			buf.CancelFind(fs, origX, origY)
			return
		}

		switch key {
		case Enter, Esc:
			if key == Esc {
				buf.CancelFind(fs, origX, origY)
			} else {
				// Leave the cursor at the last match; only clear the
				// MATCH highlight overlay.
				x, y := buf.FilePos()
				buf.CancelFind(fs, x, y)
			}
			return
		case DelKey, Backspace, CtrlH:
			if len(query) > 0 {
				query = query[:len(query)-1]
			}
			buf.StepFind(fs, string(query), false)
		case ArrowDown, ArrowRight:
			buf.StepFind(fs, string(query), false)
		case ArrowUp, ArrowLeft:
			buf.StepFind(fs, string(query), true)
		default:
			if key >= 32 && key < 127 && len(query) < MaxPromptLen {
				query = append(query, byte(key))
				buf.StepFind(fs, string(query), false)
			}
		}
		draw(string(query))
	}
}
