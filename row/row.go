// Copyright 2013 Google, Inc.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package row holds a single editable line of text and its rendered form.
package row

// Row is one line of a buffer: the raw bytes the user typed (Chars), the
// tab-expanded bytes actually painted to the screen (Render), and a
// parallel highlight tag per rendered byte (HL).
type Row struct {
	Index int

	Chars []byte
	Render []byte
	HL []byte

	// HLOpenComment is true when this row ends inside an unclosed
	// multi-line comment; it propagates the tokenizer's state to the
	// next row.
	HLOpenComment bool
}

// New creates a Row at the given index with the given raw content.
func New(index int, chars []byte) *Row {
	r := &Row{Index: index, Chars: append([]byte(nil), chars...)}
	return r
}

// DefaultTabSize is used when a buffer does not otherwise specify one.
const DefaultTabSize = 8

// UpdateRender recomputes Render from Chars, expanding TABs to the next
// tabSize-aligned column (spec §4.1). HL is resized to match but its
// contents are left to the caller (the syntax highlighter repaints it).
func (r *Row) UpdateRender(tabSize int) {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}

	out := make([]byte, 0, len(r.Chars))
	col := 0
	for _, b := range r.Chars {
		if b == '\t' {
			out = append(out, ' ')
			col++
			for col%tabSize != 0 {
				out = append(out, ' ')
				col++
			}
			continue
		}
		out = append(out, b)
		col++
	}
	r.Render = out

	if len(r.HL) != len(r.Render) {
		hl := make([]byte, len(r.Render))
		copy(hl, r.HL)
		r.HL = hl
	}
}

// RSize is the length of the rendered form.
func (r *Row) RSize() int { return len(r.Render) }

// Size is the length of the raw content.
func (r *Row) Size() int { return len(r.Chars) }

// CxToRx converts a cursor column in Chars-space to the equivalent column
// in Render-space, expanding TABs the same way UpdateRender does.
func (r *Row) CxToRx(cx, tabSize int) int {
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}
	rx := 0
	for i := 0; i < cx && i < len(r.Chars); i++ {
		if r.Chars[i] == '\t' {
			rx += (tabSize - 1) - (rx % tabSize)
		}
		rx++
	}
	return rx
}
