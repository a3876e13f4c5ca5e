package minilang

import (
	"fmt"

	"github.com/kylelemons/kilua-go/script"
)

// Runtime is the concrete script.Runtime backed by the minilang
// interpreter. A zero value is not usable; construct with New.
type Runtime struct {
	ip *interp
}

var _ script.Runtime = (*Runtime)(nil)

// New returns a Runtime with no script loaded; call Eval (or Load) to
// install function definitions before invoking callbacks.
func New() *Runtime {
	return &Runtime{ip: newInterp()}
}

// Register exposes a host operation under name (script.Runtime).
func (rt *Runtime) Register(name string, fn script.HostFunc) {
	rt.ip.hostFuncs[name] = fn
}

// Load parses and runs src as the script's top-level program: function
// declarations are registered, and any top-level statements (rare, but
// legal — e.g. a config script setting globals) execute immediately.
func (rt *Runtime) Load(src string) error {
	prog, err := parse(src)
	if err != nil {
		return err
	}
	return rt.ip.run(prog)
}

// Eval implements script.Runtime's `eval` operation: compile and run src
// as ad hoc script source (spec §4.9 "prompt then eval as script source").
func (rt *Runtime) Eval(src string) error {
	return rt.Load(src)
}

// Invoke calls the named script-defined function (spec §4.9's callbacks:
// on_key, on_loaded, on_saved, on_idle). ok is false when no function by
// that name was defined.
func (rt *Runtime) Invoke(name string, args ...script.Value) (script.Value, bool, error) {
	fd, ok := rt.ip.funcs[name]
	if !ok {
		return script.NilValue(), false, nil
	}

	callEnv := newEnv(rt.ip.global)
	for i, p := range fd.params {
		if i < len(args) {
			callEnv.define(p, args[i])
		} else {
			callEnv.define(p, script.NilValue())
		}
	}
	cf, err := rt.ip.execBlock(fd.body, callEnv)
	if err != nil {
		return script.NilValue(), true, fmt.Errorf("minilang: %s: %w", name, err)
	}
	if cf != nil && cf.isReturn {
		return cf.val, true, nil
	}
	return script.NilValue(), true, nil
}

// Close releases the runtime. minilang holds no external resources, so
// this is a no-op.
func (rt *Runtime) Close() error { return nil }
