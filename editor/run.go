package editor

import (
	"context"
	"time"

	"github.com/kylelemons/kilua-go/input"
	"github.com/kylelemons/kilua-go/render"
	"github.com/kylelemons/kilua-go/script"
)

// idleTimeout bounds the main loop's wait for input (spec §5 "wait up to
// 1s for input on stdin").
const idleTimeout = time.Second

// Run drives the main loop until ctx is cancelled or a script callback
// calls Exit: refresh_screen, wait up to 1s for input, decode+dispatch
// on_key, or on_idle on timeout (spec §5).
func (e *Editor) Run(ctx context.Context) error {
	keys := make(chan input.Key)
	errs := make(chan error, 1)
	go func() {
		for {
			k, err := input.ReadKey(e.Stdin)
			if err != nil {
				errs <- err
				return
			}
			keys <- k
		}
	}()

	for !e.quit {
		if err := e.refresh(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			return err
		case k := <-keys:
			e.dispatchKey(k)
		case <-time.After(idleTimeout):
			e.onIdle()
		}
	}
	return nil
}

func (e *Editor) refresh() error {
	if e.Stdout == nil {
		return nil
	}
	buf := e.current()
	info := render.Info{
		FileIndex:     e.Current + 1,
		FileCount:     len(e.Files),
		StatusMessage: e.Status(),
		Welcome:       welcomeMessage,
	}
	return render.Frame(e.Stdout, buf, info)
}

// welcomeMessage supplements the distilled spec with kilua.c's welcome
// banner, written on the screen of a buffer that has no rows (see
// render.Info.Welcome).
var welcomeMessage = []string{
	"kilua -- a scriptable text editor",
}

// keyToString renders a decoded key the way the source's
// editorProcessKeypress does: a one-byte C char, which truncates a
// symbolic key's code the same way an implicit int-to-char conversion
// would (spec §4.9 on_key(char), §9 "matches source semantics").
func keyToString(k input.Key) string {
	return string([]byte{byte(k)})
}

func (e *Editor) dispatchKey(k input.Key) {
	if e.Script == nil {
		return
	}
	_, ok, err := e.Script.Invoke("on_key", script.StringValue(keyToString(k)))
	if err != nil {
		e.SetStatus("script error: %s", err)
		e.logf("on_key: %s", err)
		return
	}
	if !ok {
		e.SetStatus("Failed to find function on_key")
	}
}

// onIdle invokes the on_idle callback if one is defined; unlike on_key,
// its absence is not worth a status message since it fires every second.
func (e *Editor) onIdle() {
	if e.Script == nil {
		return
	}
	if _, _, err := e.Script.Invoke("on_idle"); err != nil {
		e.SetStatus("script error: %s", err)
		e.logf("on_idle: %s", err)
	}
}
