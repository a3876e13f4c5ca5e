// Package input decodes raw terminal bytes into keys and drives the
// prompt/incremental-find/selection mini-modes. Its escape decoder
// generalizes kylelemons-goat/term's lineesc state machine (originally
// built for line-editing history recall) to the editor's full VT100
// key table (spec §4.4).
package input

import "io"

// Key is either a plain byte (0-255) or one of the symbolic codes below,
// which start at 1000 to stay out of the byte range (spec §4.4 "Symbolic
// keys occupy code points ≥1000").
type Key int

const (
	ArrowLeft Key = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	DelKey
	HomeKey
	EndKey
	PageUp
	PageDown
)

// Literal control bytes the editor treats specially (spec §4.4).
const (
	CtrlH     = 8
	Tab       = 9
	Enter     = 13
	Esc       = 27
	Backspace = 127
)

// Ctrl returns the control-key byte for an upper- or lower-case letter.
func Ctrl(c byte) byte {
	return c & 0x1f
}

// reader is the minimal surface ReadKey needs: a single-byte blocking (or
// timing-out) read, matching the VMIN=0/VTIME=1 raw-mode contract where a
// read returning (0, nil) or (0, io.EOF) means "no byte within the poll
// window".
type reader interface {
	Read(p []byte) (int, error)
}

func readByte(r reader) (byte, bool, error) {
	var b [1]byte
	for {
		n, err := r.Read(b[:])
		if n == 1 {
			return b[0], true, nil
		}
		if err != nil && err != io.EOF {
			return 0, false, err
		}
		if err == io.EOF || n == 0 {
			return 0, false, nil
		}
	}
}

// ReadKey blocks until one key is decoded from r. A lone ESC with no
// follow-up byte within the next poll window is returned as Esc (spec
// §4.4 "A lone ESC (no follow-up within VTIME) returns ESC").
func ReadKey(r io.Reader) (Key, error) {
	var c byte
	for {
		var ok bool
		var err error
		c, ok, err = readByte(r)
		if err != nil {
			return 0, err
		}
		if ok {
			break
		}
	}
	if c != Esc {
		return Key(c), nil
	}

	first, ok, err := readByte(r)
	if err != nil {
		return 0, err
	}
	if !ok {
		return Key(Esc), nil
	}

	switch first {
	case '[':
		return readCSI(r)
	case 'O':
		second, ok, err := readByte(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			return Key(Esc), nil
		}
		switch second {
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
		return Key(Esc), nil
	}
	return Key(Esc), nil
}

// readCSI decodes the remainder of an ESC [ sequence: either a single
// letter (A/B/C/D/H/F) or a digit followed by '~' (spec §4.4).
func readCSI(r io.Reader) (Key, error) {
	second, ok, err := readByte(r)
	if err != nil {
		return 0, err
	}
	if !ok {
		return Key(Esc), nil
	}

	switch second {
	case 'A':
		return ArrowUp, nil
	case 'B':
		return ArrowDown, nil
	case 'C':
		return ArrowRight, nil
	case 'D':
		return ArrowLeft, nil
	case 'H':
		return HomeKey, nil
	case 'F':
		return EndKey, nil
	}

	if second >= '0' && second <= '9' {
		third, ok, err := readByte(r)
		if err != nil {
			return 0, err
		}
		if !ok {
			return Key(Esc), nil
		}
		if third != '~' {
			return Key(Esc), nil
		}
		switch second {
		case '3':
			return DelKey, nil
		case '5':
			return PageUp, nil
		case '6':
			return PageDown, nil
		}
	}
	return Key(Esc), nil
}
