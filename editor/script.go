package editor

import (
	"github.com/kylelemons/kilua-go/buffer"
	"github.com/kylelemons/kilua-go/hl"
	"github.com/kylelemons/kilua-go/input"
	"github.com/kylelemons/kilua-go/script"
)

// WireScripting registers every host-callable operation from spec §4.9 on
// rt. It may be called again (e.g. after replacing the runtime) since
// Register simply overwrites any previous binding of the same name.
func (e *Editor) WireScripting(rt script.Runtime) {
	e.Script = rt

	rt.Register("at", e.hostAt)
	rt.Register("dirty", e.hostDirty)
	rt.Register("get_line", e.hostGetLine)

	rt.Register("up", e.hostMove(buffer.Up))
	rt.Register("down", e.hostMove(buffer.Down))
	rt.Register("left", e.hostMove(buffer.Left))
	rt.Register("right", e.hostMove(buffer.Right))
	rt.Register("sol", e.hostMove(buffer.Home))
	rt.Register("eol", e.hostMove(buffer.End))
	rt.Register("page_up", e.hostMove(buffer.PageUp))
	rt.Register("page_down", e.hostMove(buffer.PageDown))

	rt.Register("insert", e.hostInsert)
	rt.Register("delete", e.hostDelete)
	rt.Register("kill", e.hostKill)
	rt.Register("key", e.hostKey)

	rt.Register("mark", e.hostMark)
	rt.Register("point", e.hostPoint)
	rt.Register("selection", e.hostSelection)
	rt.Register("cut_selection", e.hostCutSelection)

	rt.Register("find", e.hostFind)
	rt.Register("search", e.hostSearch)

	rt.Register("open", e.hostOpen)
	rt.Register("save", e.hostSave)
	rt.Register("prompt", e.hostPrompt)
	rt.Register("eval", e.hostEval)
	rt.Register("exit", e.hostExit)
	rt.Register("status", e.hostStatus)

	rt.Register("set_syntax_keywords", e.hostSetSyntaxKeywords)
	rt.Register("set_syntax_comments", e.hostSetSyntaxComments)
	rt.Register("syntax_highlight_numbers", e.hostSyntaxHighlightNumbers)
	rt.Register("syntax_highlight_strings", e.hostSyntaxHighlightStrings)
	rt.Register("tabsize", e.hostTabSize)

	rt.Register("buffers", e.hostBuffers)
	rt.Register("choose_buffer", e.hostChooseBuffer)
	rt.Register("create_buffer", e.hostCreateBuffer)
	rt.Register("current_buffer", e.hostCurrentBuffer)
	rt.Register("kill_buffer", e.hostKillBuffer)
	rt.Register("next_buffer", e.hostNextBuffer)
	rt.Register("prev_buffer", e.hostPrevBuffer)
	rt.Register("select_buffer", e.hostSelectBuffer)

	rt.Register("undo", e.hostUndo)
}

func nilResult() (script.Value, error) { return script.NilValue(), nil }

func (e *Editor) hostAt(args []script.Value) (script.Value, error) {
	buf := e.current()
	r := buf.CurrentRow()
	x, _ := buf.FilePos()
	if r == nil || x < 0 || x >= r.Size() {
		return script.StringValue(""), nil
	}
	return script.StringValue(string(r.Chars[x : x+1])), nil
}

func (e *Editor) hostDirty(args []script.Value) (script.Value, error) {
	return script.BoolValue(e.current().IsModified()), nil
}

func (e *Editor) hostGetLine(args []script.Value) (script.Value, error) {
	buf := e.current()
	r := buf.CurrentRow()
	if r == nil {
		return script.StringValue(""), nil
	}
	x, _ := buf.FilePos()
	if x < 0 || x > r.Size() {
		return script.StringValue(""), nil
	}
	return script.StringValue(string(r.Chars[x:])), nil
}

// hostMove returns a HostFunc that applies one cursor motion to the
// current buffer (spec §4.9 "up/down/left/right/sol/eol/page_up/page_down").
func (e *Editor) hostMove(dir buffer.Direction) script.HostFunc {
	return func(args []script.Value) (script.Value, error) {
		e.current().MoveCursor(dir)
		return nilResult()
	}
}

func (e *Editor) hostInsert(args []script.Value) (script.Value, error) {
	if len(args) == 0 {
		return nilResult()
	}
	buf := e.current()
	for _, b := range []byte(args[0].Str) {
		buf.InsertChar(b)
	}
	return nilResult()
}

func (e *Editor) hostDelete(args []script.Value) (script.Value, error) {
	e.current().DeleteChar()
	return nilResult()
}

func (e *Editor) hostKill(args []script.Value) (script.Value, error) {
	e.current().KillRow()
	return nilResult()
}

func (e *Editor) hostKey(args []script.Value) (script.Value, error) {
	k, err := input.ReadKey(e.Stdin)
	if err != nil {
		return script.StringValue(""), err
	}
	return script.StringValue(keyToString(k)), nil
}

// hostMark sets the mark: called with two numeric args it sets it to
// (x,y); called with fewer it sets it at the cursor. There is no form that
// reads the mark without setting it. The result is a single Value, so only
// the mark's column is returned, not its row, the same shape `point` below
// returns.
func (e *Editor) hostMark(args []script.Value) (script.Value, error) {
	buf := e.current()
	if len(args) >= 2 {
		buf.SetMark(int(args[0].Num), int(args[1].Num))
	} else {
		x, y := buf.FilePos()
		buf.SetMark(x, y)
	}
	return script.NumberValue(float64(buf.MarkX)), nil
}

// hostPoint implements get/set of the cursor position. The setter is
// 1-based per spec §4.9 ("point (x,y) → (x,y) ... 1-based in setter").
func (e *Editor) hostPoint(args []script.Value) (script.Value, error) {
	buf := e.current()
	if len(args) >= 2 {
		x := int(args[0].Num) - 1
		y := int(args[1].Num) - 1
		buf.WarpTo(x, y)
	}
	x, _ := buf.FilePos()
	return script.NumberValue(float64(x)), nil
}

func (e *Editor) hostSelection(args []script.Value) (script.Value, error) {
	sel := e.current().GetSelection()
	if sel == nil {
		return script.NilValue(), nil
	}
	return script.StringValue(string(sel)), nil
}

func (e *Editor) hostCutSelection(args []script.Value) (script.Value, error) {
	sel := e.current().CutSelection()
	if sel == nil {
		return script.NilValue(), nil
	}
	return script.StringValue(string(sel)), nil
}

// hostFind enters the incremental-find mini-mode (spec §4.7, §4.9
// "find () — enter incremental find"), redrawing the status line after
// every query edit.
func (e *Editor) hostFind(args []script.Value) (script.Value, error) {
	buf := e.current()
	input.IncrementalFind(e.Stdin, buf, func(query string) {
		e.SetStatus("Search: %s", query)
		_ = e.refresh()
	})
	return nilResult()
}

func (e *Editor) hostSearch(args []script.Value) (script.Value, error) {
	if len(args) == 0 {
		return script.NumberValue(0), nil
	}
	n := e.current().Search(args[0].Str)
	if n == 0 {
		e.SetStatus("No match found")
	}
	return script.NumberValue(float64(n)), nil
}

// hostOpen loads path into a new buffer, or prompts for one if path is
// absent (spec §4.9 "open (path?) — load file; prompts if absent").
func (e *Editor) hostOpen(args []script.Value) (script.Value, error) {
	path := ""
	if len(args) > 0 {
		path = args[0].Str
	}
	if path == "" {
		q, ok := e.prompt("Open file: ")
		if !ok {
			return nilResult()
		}
		path = q
	}
	_, err := e.CreateBuffer(path)
	ok := err == nil
	e.invokeCallback("on_loaded", script.StringValue(path))
	if err != nil {
		return script.BoolValue(false), nil
	}
	return script.BoolValue(ok), nil
}

// hostSave truncates and rewrites the current buffer, or the named path
// if one is given (spec §4.9 "save (path?)").
func (e *Editor) hostSave(args []script.Value) (script.Value, error) {
	buf := e.current()
	if len(args) > 0 && args[0].Str != "" {
		buf.Filename = args[0].Str
	}
	err := buf.Save()
	if err != nil {
		e.SetStatus("Can't save! I/O error: %s", err)
		return script.BoolValue(false), nil
	}
	e.invokeCallback("on_saved", script.StringValue(buf.Filename))
	return script.BoolValue(true), nil
}

func (e *Editor) prompt(prefix string) (string, bool) {
	return input.Prompt(e.Stdin, func(query string) {
		e.SetStatus("%s%s", prefix, query)
		_ = e.refresh()
	})
}

func (e *Editor) hostPrompt(args []script.Value) (script.Value, error) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0].Str
	}
	q, ok := e.prompt(prefix)
	if !ok {
		return script.NilValue(), nil
	}
	return script.StringValue(q), nil
}

// hostEval prompts for script source and evaluates it in place (spec
// §4.9 "eval () — prompt then eval as script source").
func (e *Editor) hostEval(args []script.Value) (script.Value, error) {
	src, ok := e.prompt("Eval: ")
	if !ok {
		return nilResult()
	}
	if err := e.Script.Eval(src); err != nil {
		e.SetStatus("script error: %s", err)
	}
	return nilResult()
}

func (e *Editor) hostExit(args []script.Value) (script.Value, error) {
	e.Exit()
	return nilResult()
}

func (e *Editor) hostStatus(args []script.Value) (script.Value, error) {
	if len(args) > 0 {
		e.SetStatus("%s", args[0].Str)
	}
	return nilResult()
}

func (e *Editor) hostSetSyntaxKeywords(args []script.Value) (script.Value, error) {
	cfg := e.syntax()
	var kws []string
	for _, a := range args {
		kws = append(kws, a.Str)
	}
	cfg.Keywords = kws
	e.rehighlightAll()
	return nilResult()
}

func (e *Editor) hostSetSyntaxComments(args []script.Value) (script.Value, error) {
	cfg := e.syntax()
	if len(args) > 0 {
		cfg.SingleComment = args[0].Str
	}
	if len(args) > 1 {
		cfg.MLCommentOpen = args[1].Str
	}
	if len(args) > 2 {
		cfg.MLCommentClose = args[2].Str
	}
	e.rehighlightAll()
	return nilResult()
}

func (e *Editor) hostSyntaxHighlightNumbers(args []script.Value) (script.Value, error) {
	e.setFlag(hl.HighlightNumbers, len(args) == 0 || args[0].Bln)
	return nilResult()
}

func (e *Editor) hostSyntaxHighlightStrings(args []script.Value) (script.Value, error) {
	e.setFlag(hl.HighlightStrings, len(args) == 0 || args[0].Bln)
	return nilResult()
}

func (e *Editor) setFlag(f hl.Flags, on bool) {
	cfg := e.syntax()
	if on {
		cfg.Flags |= f
	} else {
		cfg.Flags &^= f
	}
	e.rehighlightAll()
}

func (e *Editor) hostTabSize(args []script.Value) (script.Value, error) {
	buf := e.current()
	if len(args) > 0 {
		buf.TabSize = int(args[0].Num)
		e.rehighlightAll()
	}
	return script.NumberValue(float64(buf.TabSize)), nil
}

// syntax lazily attaches a Config to the current buffer so the setter
// operations above always have one to mutate.
func (e *Editor) syntax() *hl.Config {
	buf := e.current()
	if buf.Syntax == nil {
		buf.Syntax = &hl.Config{}
	}
	return buf.Syntax
}

func (e *Editor) rehighlightAll() {
	buf := e.current()
	for i := range buf.Rows {
		buf.Rows[i].UpdateRender(buf.TabSize)
	}
	hl.PropagateAll(buf.Rows, 0, buf.Syntax)
}

func (e *Editor) hostBuffers(args []script.Value) (script.Value, error) {
	return script.NumberValue(float64(e.BufferCount())), nil
}

func (e *Editor) hostChooseBuffer(args []script.Value) (script.Value, error) {
	forward := true
	if len(args) > 0 {
		forward = args[0].Str == keyToString(input.ArrowDown) ||
			args[0].Str == keyToString(input.ArrowRight)
	}
	e.ChooseBuffer(forward)
	return nilResult()
}

func (e *Editor) hostCreateBuffer(args []script.Value) (script.Value, error) {
	path := ""
	if len(args) > 0 {
		path = args[0].Str
	}
	i, err := e.CreateBuffer(path)
	if err != nil {
		return script.NumberValue(-1), nil
	}
	return script.NumberValue(float64(i)), nil
}

func (e *Editor) hostCurrentBuffer(args []script.Value) (script.Value, error) {
	return script.NumberValue(float64(e.Current)), nil
}

func (e *Editor) hostKillBuffer(args []script.Value) (script.Value, error) {
	e.KillBuffer()
	return nilResult()
}

func (e *Editor) hostNextBuffer(args []script.Value) (script.Value, error) {
	e.NextBuffer()
	return nilResult()
}

func (e *Editor) hostPrevBuffer(args []script.Value) (script.Value, error) {
	e.PrevBuffer()
	return nilResult()
}

func (e *Editor) hostSelectBuffer(args []script.Value) (script.Value, error) {
	if len(args) == 0 {
		return script.BoolValue(false), nil
	}
	return script.BoolValue(e.SelectBuffer(int(args[0].Num))), nil
}

func (e *Editor) hostUndo(args []script.Value) (script.Value, error) {
	return script.BoolValue(e.current().Undo()), nil
}

// invokeCallback invokes an optional callback, logging a status message
// if it is missing (spec §7 "Missing callback: ... produce a status
// message (Failed to find function X) and return without effect"), but
// never treating its absence as an error.
func (e *Editor) invokeCallback(name string, args ...script.Value) {
	if e.Script == nil {
		return
	}
	_, ok, err := e.Script.Invoke(name, args...)
	if err != nil {
		e.SetStatus("script error: %s", err)
		return
	}
	if !ok {
		e.SetStatus("Failed to find function %s", name)
	}
}
