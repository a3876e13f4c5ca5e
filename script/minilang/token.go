// Package minilang is a small, tree-walking scripting language used to
// drive the editor's key bindings and commands (spec §4.9). It exists
// because no scripting-engine library (gopher-lua, otto, tengo, goja,
// yaegi, anko, ...) appears anywhere in the retrieved example corpus;
// see DESIGN.md for the justification of building this on the standard
// library's text/scanner instead of an ecosystem dependency.
package minilang

import (
	"fmt"
	"strings"
	"text/scanner"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString
	tokKeyword
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  scanner.Position
}

var keywords = map[string]bool{
	"function": true, "end": true, "if": true, "then": true, "else": true,
	"elseif": true, "while": true, "do": true, "local": true, "return": true,
	"true": true, "false": true, "nil": true, "and": true, "or": true, "not": true,
}

// lexer wraps text/scanner to produce minilang tokens, folding Lua-style
// two-character operators (==, ~=, <=, >=, ..) that scanner.Scanner does
// not know about on its own.
type lexer struct {
	sc  scanner.Scanner
	buf []token
}

func newLexer(src string) *lexer {
	l := &lexer{}
	l.sc.Init(strings.NewReader(src))
	l.sc.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanComments | scanner.SkipComments
	l.sc.Error = func(*scanner.Scanner, string) {}
	return l
}

func (l *lexer) peek() token {
	if len(l.buf) == 0 {
		l.buf = append(l.buf, l.scan())
	}
	return l.buf[0]
}

func (l *lexer) next() token {
	if len(l.buf) != 0 {
		t := l.buf[0]
		l.buf = l.buf[1:]
		return t
	}
	return l.scan()
}

func (l *lexer) scan() token {
	pos := l.sc.Pos()
	r := l.sc.Scan()
	switch r {
	case scanner.EOF:
		return token{kind: tokEOF, pos: pos}
	case scanner.Ident:
		text := l.sc.TokenText()
		if keywords[text] {
			return token{kind: tokKeyword, text: text, pos: pos}
		}
		return token{kind: tokIdent, text: text, pos: pos}
	case scanner.Int, scanner.Float:
		var f float64
		fmt.Sscanf(l.sc.TokenText(), "%g", &f)
		return token{kind: tokNumber, num: f, pos: pos}
	case scanner.String:
		text := l.sc.TokenText()
		return token{kind: tokString, text: unquote(text), pos: pos}
	default:
		ch := string(r)
		switch r {
		case '=', '~', '<', '>':
			if l.sc.Peek() == '=' {
				l.sc.Next()
				return token{kind: tokPunct, text: ch + "=", pos: pos}
			}
		case '.':
			if l.sc.Peek() == '.' {
				l.sc.Next()
				return token{kind: tokPunct, text: "..", pos: pos}
			}
		}
		return token{kind: tokPunct, text: ch, pos: pos}
	}
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		out := make([]byte, 0, len(s))
		for i := 1; i < len(s)-1; i++ {
			if s[i] == '\\' && i+1 < len(s)-1 {
				i++
				switch s[i] {
				case 'n':
					out = append(out, '\n')
				case 't':
					out = append(out, '\t')
				default:
					out = append(out, s[i])
				}
				continue
			}
			out = append(out, s[i])
		}
		return string(out)
	}
	return s
}
