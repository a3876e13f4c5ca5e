//go:build !kilua_undo

package buffer

// noopUndoStack is used when the editor is built without -tags kilua_undo;
// it records nothing, so Buffer.Undo always reports false.
type noopUndoStack struct{}

// NewUndoStack returns the no-op stack used in the default build.
func NewUndoStack() UndoStack { return noopUndoStack{} }

func (noopUndoStack) Push(UndoAction)       {}
func (noopUndoStack) Pop() (UndoAction, bool) { return UndoAction{}, false }
func (noopUndoStack) Clear()                {}
func (noopUndoStack) Len() int               { return 0 }
