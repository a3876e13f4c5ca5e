// Package termctl installs and restores raw terminal mode and reports
// terminal geometry. It replaces kylelemons-goat/termios's cgo-based
// tcgetattr/tcsetattr wrapper with golang.org/x/sys/unix ioctls, so the
// editor builds without a C toolchain.
package termctl

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Term controls one terminal file descriptor's raw-mode lifecycle.
// A Term is not safe for concurrent Enable/Disable calls; the editor owns
// exactly one, for stdin (spec §4.2 "Shared resources").
type Term struct {
	fd       int
	original *unix.Termios
	once     sync.Once
}

// New binds a Term to fd without touching its mode. Use Enable to switch
// to raw mode.
func New(fd int) *Term {
	return &Term{fd: fd}
}

// IsTerminal reports whether fd refers to a terminal device.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// Enable saves the terminal's current mode and switches it to raw mode:
// clears BRKINT|ICRNL|INPCK|ISTRIP|IXON on input, OPOST on output, sets
// CS8 on control, clears ECHO|ICANON|IEXTEN|ISIG on local, and sets
// VMIN=0/VTIME=1 so reads block for at most 100ms (spec §4.4 "Entering raw
// mode"). It fails if fd is not a terminal.
func (t *Term) Enable() error {
	if !IsTerminal(t.fd) {
		return fmt.Errorf("termctl: fd %d is not a terminal", t.fd)
	}

	orig, err := getTermios(t.fd)
	if err != nil {
		return fmt.Errorf("termctl: get mode: %w", err)
	}
	t.original = orig

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := setTermios(t.fd, &raw); err != nil {
		return fmt.Errorf("termctl: set raw mode: %w", err)
	}
	return nil
}

// Disable restores the mode captured by Enable. It is idempotent: calling
// it without a prior successful Enable, or more than once, is a no-op
// (spec §4.2 "restored unconditionally at process exit (idempotent)").
func (t *Term) Disable() error {
	if t.original == nil {
		return nil
	}
	var err error
	t.once.Do(func() {
		err = setTermios(t.fd, t.original)
	})
	return err
}

// GetSize reports the terminal's dimensions in character cells.
func GetSize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("termctl: get size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// StdinFd is the descriptor the editor reads keys from and puts into raw
// mode; it is a var, not a const, so tests can point it elsewhere.
var StdinFd = int(os.Stdin.Fd())
