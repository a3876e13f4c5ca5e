// Package hl implements the per-row incremental syntax highlighter.
//
// It is a pure function over a Row in the context of its buffer: it reads
// the previous row's HLOpenComment flag and writes the current row's HL
// array and HLOpenComment flag. Callers are responsible for propagating the
// change to subsequent rows when HLOpenComment differs from its previous
// value (see Highlight's changed return).
package hl

import "github.com/kylelemons/kilua-go/row"

// Tag classifies a single rendered byte for coloring.
type Tag byte

const (
	Normal Tag = iota
	Nonprint
	Comment
	MLComment
	Keyword1
	Keyword2
	String
	Number
	Match
	Selection
)

// Flags toggle optional highlight categories.
type Flags uint8

const (
	HighlightStrings Flags = 1 << iota
	HighlightNumbers
)

// Config is the per-buffer syntax description (spec's SyntaxConfig).
//
// A trailing '|' on a keyword marks it as a secondary (Keyword2) keyword;
// the pipe itself is not part of the matched text.
type Config struct {
	Name string

	Keywords []string

	SingleComment  string
	MLCommentOpen  string
	MLCommentClose string

	Flags Flags

	// BitExactSeparators reproduces the source's quirk of painting a
	// keyword's trailing separator byte Keyword1; the byte keeps that tag
	// unless a later rule repaints it (REDESIGN FLAGS: kept only for
	// bit-exact compatibility). Default false: separators are left Normal.
	BitExactSeparators bool
}

func isSeparator(b byte) bool {
	if b == 0 {
		return true
	}
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	case ':', '{', '}', ',', '.', '(', ')', '+', '-', '/', '*', '=', '~',
		'%', '[', ']', ';', '<', '>', '|', '&':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isPrint(b byte) bool {
	// Locale-agnostic ASCII printable range; high-bit bytes are opaque
	// per spec's byte-oriented non-goal and are treated as non-printing
	// here so they surface via the NONPRINT glyph in the renderer.
	return b >= 32 && b < 127
}

func keywordAndTag(kw string) (text string, tag Tag) {
	if n := len(kw); n > 0 && kw[n-1] == '|' {
		return kw[:n-1], Keyword2
	}
	return kw, Keyword1
}

func hasPrefixAt(s []byte, at int, prefix string) bool {
	if prefix == "" {
		return false
	}
	if at+len(prefix) > len(s) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if s[at+i] != prefix[i] {
			return false
		}
	}
	return true
}

// Highlight recomputes cur.HL from cur.Render, given the syntax Config and
// whether the previous row (false if cur is the first row) ends inside an
// open multi-line comment. It reports whether cur.HLOpenComment changed, so
// the caller can decide whether to re-highlight the following row.
func Highlight(prevOpenComment bool, cur *row.Row, cfg *Config) (changed bool) {
	n := len(cur.Render)
	if len(cur.HL) != n {
		cur.HL = make([]byte, n)
	}
	for i := range cur.HL {
		cur.HL[i] = byte(Normal)
	}

	if cfg == nil {
		prevHLOpen := cur.HLOpenComment
		cur.HLOpenComment = false
		if n == 0 {
			cur.HLOpenComment = prevOpenComment
		}
		return cur.HLOpenComment != prevHLOpen
	}

	prevSep := true
	var inString byte
	inComment := prevOpenComment
	var prevTag Tag = Normal

	render := cur.Render
	i := 0
	for i < n {
		b := render[i]

		if inComment {
			cur.HL[i] = byte(MLComment)
			if cfg.MLCommentClose != "" && hasPrefixAt(render, i, cfg.MLCommentClose) {
				for j := 0; j < len(cfg.MLCommentClose); j++ {
					cur.HL[i+j] = byte(MLComment)
				}
				i += len(cfg.MLCommentClose)
				inComment = false
				prevSep = true
				prevTag = MLComment
				continue
			}
			prevTag = MLComment
			i++
			continue
		}

		if cfg.MLCommentOpen != "" && hasPrefixAt(render, i, cfg.MLCommentOpen) {
			for j := 0; j < len(cfg.MLCommentOpen); j++ {
				cur.HL[i+j] = byte(MLComment)
			}
			i += len(cfg.MLCommentOpen)
			inComment = true
			prevSep = false
			prevTag = MLComment
			continue
		}

		if prevSep && cfg.SingleComment != "" && hasPrefixAt(render, i, cfg.SingleComment) {
			for j := i; j < n; j++ {
				cur.HL[j] = byte(Comment)
			}
			break
		}

		if inString != 0 {
			if cfg.Flags&HighlightStrings != 0 {
				cur.HL[i] = byte(String)
			}
			if b == '\\' && i+1 < n {
				if cfg.Flags&HighlightStrings != 0 {
					cur.HL[i+1] = byte(String)
				}
				i += 2
				prevTag = String
				continue
			}
			if b == inString {
				inString = 0
			}
			prevSep = false
			prevTag = String
			i++
			continue
		}

		if b == '"' || b == '\'' {
			inString = b
			if cfg.Flags&HighlightStrings != 0 {
				cur.HL[i] = byte(String)
			}
			prevSep = false
			prevTag = String
			i++
			continue
		}

		if !isPrint(b) {
			cur.HL[i] = byte(Nonprint)
			prevSep = false
			prevTag = Nonprint
			i++
			continue
		}

		if cfg.Flags&HighlightNumbers != 0 &&
			((isDigit(b) && (prevSep || prevTag == Number)) ||
				(b == '.' && prevTag == Number)) {
			cur.HL[i] = byte(Number)
			prevSep = false
			prevTag = Number
			i++
			continue
		}

		if prevSep {
			matched := false
			for _, kw := range cfg.Keywords {
				text, tag := keywordAndTag(kw)
				if !hasPrefixAt(render, i, text) {
					continue
				}
				end := i + len(text)
				if end < n && !isSeparator(render[end]) {
					continue
				}
				for j := i; j < end; j++ {
					cur.HL[j] = byte(tag)
				}
				if cfg.BitExactSeparators && end < n {
					cur.HL[end] = byte(Keyword1)
				}
				i = end
				prevSep = false
				prevTag = tag
				matched = true
				break
			}
			if matched {
				continue
			}
		}

		prevTag = Normal
		prevSep = isSeparator(b)
		i++
	}

	// An empty row chains the open-comment state from its predecessor
	// (spec §4.2 "rowHasOpenComment" rule).
	prevHLOpen := cur.HLOpenComment
	if n == 0 {
		cur.HLOpenComment = prevOpenComment
	} else {
		// inComment is still true here only when the close delimiter
		// was never found while scanning the row.
		cur.HLOpenComment = inComment
	}
	return cur.HLOpenComment != prevHLOpen
}

// PropagateAll re-highlights rows starting at index i as long as each row's
// HLOpenComment flag changes as a result, matching spec §4.2's recursive
// propagation rule. rows[i-1] (if any) must already be up to date.
func PropagateAll(rows []*row.Row, i int, cfg *Config) {
	for i < len(rows) {
		prevOpen := false
		if i > 0 {
			prevOpen = rows[i-1].HLOpenComment
		}
		changed := Highlight(prevOpen, rows[i], cfg)
		if !changed {
			return
		}
		i++
	}
}
