package input

import (
	"io"
	"testing"
)

// timeoutReader simulates a raw-mode fd with VMIN=0/VTIME=1: each call to
// Read either returns the next chunk or, once exhausted, returns (0, nil)
// to model a poll timeout with no data available.
type timeoutReader struct {
	data []byte
}

func (r *timeoutReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, nil
	}
	n := copy(p, r.data[:1])
	r.data = r.data[1:]
	return n, nil
}

func TestReadKeyLiteralByte(t *testing.T) {
	r := &timeoutReader{data: []byte("a")}
	k, err := ReadKey(r)
	if err != nil || k != Key('a') {
		t.Fatalf("want 'a', got %v err=%v", k, err)
	}
}

func TestReadKeyArrows(t *testing.T) {
	cases := map[string]Key{
		"\x1b[A": ArrowUp,
		"\x1b[B": ArrowDown,
		"\x1b[C": ArrowRight,
		"\x1b[D": ArrowLeft,
		"\x1b[H": HomeKey,
		"\x1b[F": EndKey,
		"\x1bOH": HomeKey,
		"\x1bOF": EndKey,
	}
	for seq, want := range cases {
		r := &timeoutReader{data: []byte(seq)}
		got, err := ReadKey(r)
		if err != nil || got != want {
			t.Fatalf("%q: want %v, got %v err=%v", seq, want, got, err)
		}
	}
}

func TestReadKeyTildeForms(t *testing.T) {
	cases := map[string]Key{
		"\x1b[3~": DelKey,
		"\x1b[5~": PageUp,
		"\x1b[6~": PageDown,
	}
	for seq, want := range cases {
		r := &timeoutReader{data: []byte(seq)}
		got, err := ReadKey(r)
		if err != nil || got != want {
			t.Fatalf("%q: want %v, got %v err=%v", seq, want, got, err)
		}
	}
}

func TestReadKeyLoneEscTimesOut(t *testing.T) {
	r := &timeoutReader{data: []byte{Esc}}
	k, err := ReadKey(r)
	if err != nil || k != Key(Esc) {
		t.Fatalf("want lone ESC, got %v err=%v", k, err)
	}
}

func TestReadKeyPropagatesError(t *testing.T) {
	er := errReader{}
	if _, err := ReadKey(er); err != io.ErrClosedPipe {
		t.Fatalf("want propagated error, got %v", err)
	}
}

type errReader struct{}

func (errReader) Read(p []byte) (int, error) { return 0, io.ErrClosedPipe }
