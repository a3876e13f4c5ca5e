// Package editor ties together buffer, termctl, input, render and script
// into the running program: it holds every open buffer, the terminal and
// scripting handles, and drives the main loop (spec §5).
package editor

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/kylelemons/kilua-go/buffer"
	"github.com/kylelemons/kilua-go/script"
)

// statusTimeout is how long a status message stays on the second status
// line before it is considered stale (spec §3 "displayed only while
// fresh").
const statusTimeout = 5 * time.Second

// Editor is the process-global editor state (spec §3 "Editor"). It is not
// safe for concurrent use; the main loop and the scripting callbacks it
// invokes are the only mutators, all on one goroutine (spec §5).
type Editor struct {
	Files   []*buffer.Buffer
	Current int

	ScreenRows, ScreenCols int

	statusMsg     string
	statusMsgTime time.Time

	Script script.Runtime

	Stdin  io.Reader
	Stdout io.Writer

	// Debug, when non-nil, receives crash/debug traces (mirrors kilo/
	// kilua's #ifdef DEBUG file log); nil by default.
	Debug *log.Logger

	quit bool
}

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithScreen sets the terminal geometry (spec Design Notes: "drive it with
// a virtual terminal (a byte sink + geometry)").
func WithScreen(rows, cols int) Option {
	return func(e *Editor) { e.ScreenRows, e.ScreenCols = rows, cols }
}

// WithIO binds the streams the main loop reads keys from and writes
// frames to. Defaults to no I/O, which is fine for tests that drive
// ReadKey/dispatch directly.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(e *Editor) { e.Stdin, e.Stdout = r, w }
}

// WithScript installs the scripting runtime and wires every host
// operation from spec §4.9 onto it.
func WithScript(rt script.Runtime) Option {
	return func(e *Editor) {
		e.Script = rt
	}
}

// WithDebugLog installs a debug-trace logger (spec: "opened only when
// KILUA_DEBUG_LOG is set", decided by the caller, e.g. cmd/kilua).
func WithDebugLog(l *log.Logger) Option {
	return func(e *Editor) { e.Debug = l }
}

// New constructs an Editor with at least one scratch buffer, applies
// opts, and wires the scripting bridge if a runtime was supplied.
func New(opts ...Option) *Editor {
	e := &Editor{
		ScreenRows: 24,
		ScreenCols: 80,
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.Files) == 0 {
		e.Files = append(e.Files, e.newScratchBuffer())
	}
	if e.Script != nil {
		e.WireScripting(e.Script)
	}
	return e
}

func (e *Editor) newScratchBuffer() *buffer.Buffer {
	b := buffer.New()
	b.SetScreen(e.ScreenRows, e.ScreenCols)
	return b
}

// Current buffer accessor; every operation below acts on it.
func (e *Editor) current() *buffer.Buffer {
	return e.Files[e.Current]
}

// SetStatus sets the second status line's text and freshness timestamp
// (spec §3, §7 status-message policy).
func (e *Editor) SetStatus(format string, args ...interface{}) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusMsgTime = time.Now()
}

// Status returns the status message if it is still within the freshness
// window, or "" otherwise.
func (e *Editor) Status() string {
	if e.statusMsg == "" {
		return ""
	}
	if time.Since(e.statusMsgTime) > statusTimeout {
		return ""
	}
	return e.statusMsg
}

// Quit reports whether the main loop should stop (set by the `exit`
// scripting operation or a last-buffer kill, spec §7 "Last-buffer kill:
// escalates to process exit").
func (e *Editor) Quit() bool { return e.quit }

// Exit requests the main loop stop after the current iteration.
func (e *Editor) Exit() { e.quit = true }

func (e *Editor) logf(format string, args ...interface{}) {
	if e.Debug != nil {
		e.Debug.Printf(format, args...)
	}
}
