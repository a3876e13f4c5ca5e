package minilang

import (
	"testing"

	"github.com/kylelemons/kilua-go/script"
)

func TestArithmeticAndReturn(t *testing.T) {
	rt := New()
	if err := rt.Load(`
function add(a, b)
  return a + b
end
`); err != nil {
		t.Fatalf("load: %v", err)
	}
	v, ok, err := rt.Invoke("add", script.NumberValue(2), script.NumberValue(3))
	if err != nil || !ok {
		t.Fatalf("invoke: ok=%v err=%v", ok, err)
	}
	if v.Num != 5 {
		t.Fatalf("want 5, got %v", v.Num)
	}
}

func TestIfElse(t *testing.T) {
	rt := New()
	if err := rt.Load(`
function classify(n)
  if n < 0 then
    return "negative"
  else
    return "nonnegative"
  end
end
`); err != nil {
		t.Fatalf("load: %v", err)
	}
	v, _, err := rt.Invoke("classify", script.NumberValue(-1))
	if err != nil || v.Str != "negative" {
		t.Fatalf("want negative, got %q err=%v", v.Str, err)
	}
	v, _, err = rt.Invoke("classify", script.NumberValue(1))
	if err != nil || v.Str != "nonnegative" {
		t.Fatalf("want nonnegative, got %q err=%v", v.Str, err)
	}
}

func TestWhileLoop(t *testing.T) {
	rt := New()
	if err := rt.Load(`
function sum(n)
  local total = 0
  local i = 1
  while i <= n do
    total = total + i
    i = i + 1
  end
  return total
end
`); err != nil {
		t.Fatalf("load: %v", err)
	}
	v, _, err := rt.Invoke("sum", script.NumberValue(5))
	if err != nil || v.Num != 15 {
		t.Fatalf("want 15, got %v err=%v", v.Num, err)
	}
}

func TestHostCallRegisterAndInvoke(t *testing.T) {
	rt := New()
	var gotArg string
	rt.Register("status", func(args []script.Value) (script.Value, error) {
		gotArg = args[0].Str
		return script.NilValue(), nil
	})
	if err := rt.Load(`
function on_key(c)
  if c == "q" then
    status("quit requested")
  end
end
`); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok, err := rt.Invoke("on_key", script.StringValue("q")); !ok || err != nil {
		t.Fatalf("invoke: ok=%v err=%v", ok, err)
	}
	if gotArg != "quit requested" {
		t.Fatalf("want host status() called with %q, got %q", "quit requested", gotArg)
	}
}

func TestInvokeUndefinedCallbackIsNotAnError(t *testing.T) {
	rt := New()
	_, ok, err := rt.Invoke("on_idle")
	if ok || err != nil {
		t.Fatalf("want ok=false err=nil for an undefined callback, got ok=%v err=%v", ok, err)
	}
}

func TestStringConcat(t *testing.T) {
	rt := New()
	if err := rt.Load(`
function greet(name)
  return "hello, " .. name
end
`); err != nil {
		t.Fatalf("load: %v", err)
	}
	v, _, err := rt.Invoke("greet", script.StringValue("world"))
	if err != nil || v.Str != "hello, world" {
		t.Fatalf("want %q, got %q err=%v", "hello, world", v.Str, err)
	}
}

func TestAndOrNot(t *testing.T) {
	rt := New()
	if err := rt.Load(`
function check(a, b)
  return (a and b) or (not a)
end
`); err != nil {
		t.Fatalf("load: %v", err)
	}
	v, _, _ := rt.Invoke("check", script.BoolValue(false), script.BoolValue(false))
	if !v.Bln {
		t.Fatalf("want true, got %v", v)
	}
}
