package minilang

import (
	"fmt"

	"github.com/kylelemons/kilua-go/script"
)

type value = script.Value

func vnil() value          { return script.NilValue() }
func vbool(b bool) value   { return script.BoolValue(b) }
func vnum(n float64) value { return script.NumberValue(n) }
func vstr(s string) value  { return script.StringValue(s) }

func truthy(v value) bool {
	switch v.Kind {
	case script.Nil:
		return false
	case script.Bool:
		return v.Bln
	default:
		return true
	}
}

// env is a lexical scope: function calls get a fresh env chained to the
// global one (minilang has no closures over enclosing function locals,
// only globals).
type env struct {
	vars   map[string]value
	parent *env
}

func newEnv(parent *env) *env {
	return &env{vars: map[string]value{}, parent: parent}
}

func (e *env) get(name string) (value, bool) {
	for s := e; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return vnil(), false
}

// set assigns to the nearest enclosing scope already defining name, or
// creates it in the global (outermost) scope otherwise, matching the
// host operations' expectation that a bare "name = expr" at top level
// defines a global the way on_key et al. look it up by name.
func (e *env) set(name string, v value) {
	for s := e; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return
		}
	}
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.vars[name] = v
}

func (e *env) define(name string, v value) {
	e.vars[name] = v
}

// controlFlow signals a return unwinding from a block.
type controlFlow struct {
	isReturn bool
	val      value
}

type interp struct {
	global    *env
	funcs     map[string]funcDecl
	hostFuncs map[string]script.HostFunc
}

func newInterp() *interp {
	return &interp{
		global:    newEnv(nil),
		funcs:     map[string]funcDecl{},
		hostFuncs: map[string]script.HostFunc{},
	}
}

func (ip *interp) run(prog []stmt) error {
	for _, s := range prog {
		if fd, ok := s.(funcDecl); ok {
			ip.funcs[fd.name] = fd
			continue
		}
		if _, err := ip.execStmt(s, ip.global); err != nil {
			return err
		}
	}
	return nil
}

func (ip *interp) execBlock(body []stmt, e *env) (*controlFlow, error) {
	for _, s := range body {
		if cf, err := ip.execStmt(s, e); err != nil || cf != nil {
			return cf, err
		}
	}
	return nil, nil
}

func (ip *interp) execStmt(s stmt, e *env) (*controlFlow, error) {
	switch n := s.(type) {
	case funcDecl:
		ip.funcs[n.name] = n
		return nil, nil
	case exprStmt:
		_, err := ip.eval(n.x, e)
		return nil, err
	case localStmt:
		v, err := ip.eval(n.val, e)
		if err != nil {
			return nil, err
		}
		e.define(n.name, v)
		return nil, nil
	case assignStmt:
		v, err := ip.eval(n.val, e)
		if err != nil {
			return nil, err
		}
		e.set(n.name, v)
		return nil, nil
	case ifStmt:
		cond, err := ip.eval(n.cond, e)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return ip.execBlock(n.then, newEnv(e))
		}
		return ip.execBlock(n.els, newEnv(e))
	case whileStmt:
		for {
			cond, err := ip.eval(n.cond, e)
			if err != nil {
				return nil, err
			}
			if !truthy(cond) {
				return nil, nil
			}
			cf, err := ip.execBlock(n.body, newEnv(e))
			if err != nil || cf != nil {
				return cf, err
			}
		}
	case returnStmt:
		v, err := ip.eval(n.val, e)
		if err != nil {
			return nil, err
		}
		return &controlFlow{isReturn: true, val: v}, nil
	}
	return nil, fmt.Errorf("minilang: unhandled statement %T", s)
}

func (ip *interp) eval(x expr, e *env) (value, error) {
	switch n := x.(type) {
	case numberLit:
		return vnum(n.v), nil
	case stringLit:
		return vstr(n.v), nil
	case boolLit:
		return vbool(n.v), nil
	case nilLit:
		return vnil(), nil
	case ident:
		if v, ok := e.get(n.name); ok {
			return v, nil
		}
		return vnil(), nil
	case unary:
		v, err := ip.eval(n.x, e)
		if err != nil {
			return vnil(), err
		}
		switch n.op {
		case "not":
			return vbool(!truthy(v)), nil
		case "-":
			return vnum(-v.Num), nil
		}
	case binary:
		return ip.evalBinary(n, e)
	case call:
		return ip.evalCall(n, e)
	}
	return vnil(), fmt.Errorf("minilang: unhandled expression %T", x)
}

func (ip *interp) evalBinary(n binary, e *env) (value, error) {
	if n.op == "and" {
		l, err := ip.eval(n.l, e)
		if err != nil || !truthy(l) {
			return l, err
		}
		return ip.eval(n.r, e)
	}
	if n.op == "or" {
		l, err := ip.eval(n.l, e)
		if err != nil || truthy(l) {
			return l, err
		}
		return ip.eval(n.r, e)
	}

	l, err := ip.eval(n.l, e)
	if err != nil {
		return vnil(), err
	}
	r, err := ip.eval(n.r, e)
	if err != nil {
		return vnil(), err
	}

	switch n.op {
	case "..":
		return vstr(l.String() + r.String()), nil
	case "+":
		return vnum(l.Num + r.Num), nil
	case "-":
		return vnum(l.Num - r.Num), nil
	case "*":
		return vnum(l.Num * r.Num), nil
	case "/":
		return vnum(l.Num / r.Num), nil
	case "==":
		return vbool(valuesEqual(l, r)), nil
	case "~=":
		return vbool(!valuesEqual(l, r)), nil
	case "<":
		return vbool(compare(l, r) < 0), nil
	case ">":
		return vbool(compare(l, r) > 0), nil
	case "<=":
		return vbool(compare(l, r) <= 0), nil
	case ">=":
		return vbool(compare(l, r) >= 0), nil
	}
	return vnil(), fmt.Errorf("minilang: unknown operator %q", n.op)
}

func valuesEqual(l, r value) bool {
	if l.Kind != r.Kind {
		return false
	}
	switch l.Kind {
	case script.Nil:
		return true
	case script.Bool:
		return l.Bln == r.Bln
	case script.Number:
		return l.Num == r.Num
	case script.String:
		return l.Str == r.Str
	}
	return false
}

func compare(l, r value) int {
	if l.Kind == script.Number && r.Kind == script.Number {
		switch {
		case l.Num < r.Num:
			return -1
		case l.Num > r.Num:
			return 1
		default:
			return 0
		}
	}
	ls, rs := l.String(), r.String()
	switch {
	case ls < rs:
		return -1
	case ls > rs:
		return 1
	default:
		return 0
	}
}

func (ip *interp) evalCall(n call, e *env) (value, error) {
	args := make([]value, len(n.args))
	for i, a := range n.args {
		v, err := ip.eval(a, e)
		if err != nil {
			return vnil(), err
		}
		args[i] = v
	}

	if hf, ok := ip.hostFuncs[n.name]; ok {
		return hf(args)
	}

	fd, ok := ip.funcs[n.name]
	if !ok {
		return vnil(), fmt.Errorf("minilang: call to undefined function %q", n.name)
	}
	callEnv := newEnv(ip.global)
	for i, p := range fd.params {
		if i < len(args) {
			callEnv.define(p, args[i])
		} else {
			callEnv.define(p, vnil())
		}
	}
	cf, err := ip.execBlock(fd.body, callEnv)
	if err != nil {
		return vnil(), err
	}
	if cf != nil && cf.isReturn {
		return cf.val, nil
	}
	return vnil(), nil
}
