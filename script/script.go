// Package script defines the contract between the editor core and an
// embedded scripting runtime (spec §4.9): a fixed table of host-callable
// operations the runtime invokes into the core, and a fixed set of
// callbacks the core invokes into the runtime. No scripting-engine
// library (gopher-lua, otto, tengo, goja, yaegi, anko, ...) appears
// anywhere in the retrieved example corpus, so this contract and its
// concrete minilang implementation are built on the standard library
// alone; see DESIGN.md.
package script

import "fmt"

// Kind tags the dynamic type carried by a Value.
type Kind int

const (
	Nil Kind = iota
	Bool
	Number
	String
)

// Value is the scalar the core and the runtime exchange at every
// boundary crossing (spec §4.9 "simple scalars ... never borrowed
// references to core data").
type Value struct {
	Kind Kind
	Num  float64
	Str  string
	Bln  bool
}

func NilValue() Value              { return Value{Kind: Nil} }
func BoolValue(b bool) Value       { return Value{Kind: Bool, Bln: b} }
func NumberValue(n float64) Value  { return Value{Kind: Number, Num: n} }
func StringValue(s string) Value   { return Value{Kind: String, Str: s} }

// IsNil reports whether v carries no value, the wire form of a Go nil
// result (e.g. `selection` returning "nothing selected").
func (v Value) IsNil() bool { return v.Kind == Nil }

func (v Value) String() string {
	switch v.Kind {
	case Nil:
		return "nil"
	case Bool:
		return fmt.Sprintf("%t", v.Bln)
	case Number:
		return fmt.Sprintf("%g", v.Num)
	case String:
		return v.Str
	}
	return "<invalid>"
}

// HostFunc is a core operation exposed to the runtime: it receives the
// call's arguments and returns a result or an error.
type HostFunc func(args []Value) (Value, error)

// Runtime is a scripting engine embedded in the editor. Register binds a
// host-callable operation under name; Invoke calls a script-defined
// function (a callback from §4.9, or `eval`'s ad hoc source) and reports
// whether it was found.
type Runtime interface {
	// Register exposes a host operation under name (spec §4.9's table).
	Register(name string, fn HostFunc)
	// Invoke calls the named script function with args. ok is false when
	// no such function is defined — the editor logs a status message and
	// continues rather than failing (spec §4.9 "absent callbacks log a
	// status message but do not fail").
	Invoke(name string, args ...Value) (result Value, ok bool, err error)
	// Eval compiles and runs src as a top-level script (the `eval`
	// operation: "prompt then eval as script source").
	Eval(src string) error
	// Close tears down the runtime (spec §4.2 "the script runtime handle
	// is owned by the editor and torn down at exit").
	Close() error
}
