package hl

// C is the highlight-database entry ported from kilo.c/kilua.c's sole
// HLDB row.
var C = &Config{
	Name: "c",
	Keywords: []string{
		"switch", "if", "while", "for", "break", "continue", "return", "else",
		"struct", "union", "typedef", "static", "enum", "class", "case",
		"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
		"void|",
	},
	SingleComment:  "//",
	MLCommentOpen:  "/*",
	MLCommentClose: "*/",
	Flags:          HighlightStrings | HighlightNumbers,
}

// Go is a syntax config for Go source, supplemented from original_source's
// HLDB shape (spec.md names C as the only shipped language; an editor whose
// own extension scripts are plain text still benefits from highlighting Go
// sources when its config is authored in Go-like syntax).
var Go = &Config{
	Name: "go",
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var",
		"bool|", "byte|", "complex64|", "complex128|", "error|", "float32|",
		"float64|", "int|", "int8|", "int16|", "int32|", "int64|", "rune|",
		"string|", "uint|", "uint8|", "uint16|", "uint32|", "uint64|",
		"uintptr|", "nil|", "true|", "false|", "iota|",
	},
	SingleComment:  "//",
	MLCommentOpen:  "/*",
	MLCommentClose: "*/",
	Flags:          HighlightStrings | HighlightNumbers,
}

// ByName resolves a builtin config by its short name, for
// set_syntax_keywords-style scripting configuration; ok is false for
// unrecognized or empty names (which should clear syntax highlighting).
func ByName(name string) (cfg *Config, ok bool) {
	switch name {
	case "c":
		return C, true
	case "go":
		return Go, true
	default:
		return nil, false
	}
}
