package buffer

import (
	"bytes"
	"fmt"
	"os"
)

// Open loads path into a freshly reset buffer (spec §6 "On-disk format").
// A missing file is not an error: it becomes a new empty buffer bound to
// that filename (spec §7 "File open with ENOENT").
func Open(path string) (*Buffer, error) {
	b := New()
	b.Filename = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			b.AppendRow(nil)
			b.Dirty = 0
			return b, nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		b.AppendRow(line)
	}
	if len(b.Rows) == 0 {
		b.AppendRow(nil)
	}
	b.Dirty = 0
	return b, nil
}

// Save truncates and rewrites the buffer's file in a single write, rows
// joined by '\n', creating it with mode 0644 if absent (spec §6). On
// success Dirty is reset to 0 and the undo history is cleared (spec §4.8
// "Save clears the stack"); on failure Dirty is left untouched and the
// error is returned for the caller to turn into a status message (spec
// §7 "Can't save! I/O error: <errno>").
func (b *Buffer) Save() error {
	if b.Filename == "" || b.IsVirtual() {
		return fmt.Errorf("no filename set")
	}

	data := b.RowsToString()
	if err := os.WriteFile(b.Filename, data, 0644); err != nil {
		return fmt.Errorf("save %s: %w", b.Filename, err)
	}

	b.Dirty = 0
	b.History.Clear()
	return nil
}
