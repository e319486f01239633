//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package buffer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mini-editor/mini/clipboard"
	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/highlight"
	"github.com/mini-editor/mini/shell"
	"github.com/mini-editor/mini/statemachine"
	"github.com/mini-editor/mini/types"
)

// A TextBuffer edits one document, optionally bound to a file.
type TextBuffer struct {
	Base

	path string
	hist *document.History
	hl   *highlight.Highlighter

	viewSM *statemachine.StateMachine[Action]

	pending pendingInsert

	child     *shell.Command
	vt        *shell.Performer
	childName string
}

// pendingInsert accumulates one burst of insert-mode typing so a
// single undo reverts all of it.
type pendingInsert struct {
	active bool
	start  types.Cursor
	text   []rune
}

// NewText creates an empty text buffer, opened in write mode so
// typing starts immediately.
func NewText(clip clipboard.Clipboard) *TextBuffer {
	t := &TextBuffer{
		Base: NewBase(document.New(nil), clip, true),
		hist: document.NewHistory(),
	}
	t.viewSM = statemachine.New(t.viewMap())
	t.Mode = ModeWrite
	t.pending = pendingInsert{active: true, start: t.Doc.Cur}
	return t
}

// OpenText loads a file into a new text buffer.
func OpenText(path string, clip clipboard.Clipboard) (*TextBuffer, error) {
	doc, err := document.Read(path)
	if err != nil {
		return nil, err
	}
	t := &TextBuffer{
		Base: NewBase(doc, clip, true),
		path: path,
		hist: document.NewHistory(),
		hl:   highlight.New(path, []byte(doc.String())),
	}
	t.viewSM = statemachine.New(t.viewMap())
	return t, nil
}

// ForceOpenText binds a new empty buffer to a possibly nonexistent
// path.
func ForceOpenText(path string, clip clipboard.Clipboard) *TextBuffer {
	if t, err := OpenText(path, clip); err == nil {
		return t
	}
	t := NewText(clip)
	t.path = path
	t.hl = highlight.New(path, nil)
	t.Mode = ModeView
	t.pending = pendingInsert{}
	return t
}

func (t *TextBuffer) Kind() string { return "text" }

func (t *TextBuffer) Name() string {
	if t.path == "" {
		return "untitled"
	}
	return filepath.Base(t.path)
}

// CanQuit refuses while there are unsaved changes.
func (t *TextBuffer) CanQuit() error {
	if t.Doc.Edited {
		return errors.New("unsaved changes (qq to discard)")
	}
	return nil
}

func (t *TextBuffer) viewMap() statemachine.CommandMap[Action] {
	m := t.BaseViewMap()
	m[types.Char('i')] = statemachine.Simple(act(ActEnterWrite))
	m[types.Char('a')] = statemachine.Simple(act(ActAppend))
	m[types.Char('I')] = statemachine.Simple(act(ActWriteLineStart))
	m[types.Char('A')] = statemachine.Simple(act(ActWriteLineEnd))
	m[types.Char('o')] = statemachine.Simple(act(ActOpenBelow))
	m[types.Char('O')] = statemachine.Simple(act(ActOpenAbove))
	m[types.Char('x')] = statemachine.Simple(act(ActDeleteChar))
	m[types.Char('p')] = statemachine.Simple(act(ActPaste))
	m[types.Char('u')] = statemachine.Simple(act(ActUndo))
	m[types.Char('U')] = statemachine.Simple(act(ActRedo))
	m[types.Char('r')] = statemachine.Prefix(replaceCharHandler)
	m[types.Char('y')] = statemachine.Operator(operatorHandler('y', ActYank, ActYankLine))
	m[types.Char('d')] = statemachine.Operator(operatorHandler('d', ActDelete, ActDeleteLine))
	m[types.Char('c')] = statemachine.Operator(operatorHandler('c', ActChange, ActChangeLine))
	return m
}

func replaceCharHandler(key types.Key) (statemachine.Command[Action], bool) {
	if key.Kind != types.KeyChar {
		return statemachine.Command[Action]{}, false
	}
	return statemachine.Simple(Action{Kind: ActReplaceChar, Ch: key.Ch}), true
}

// operatorHandler builds the second-key handler of a y/d/c operator:
// a repeated operator key targets the whole line, a motion key
// targets its range.
func operatorHandler(repeat rune, kind, lineKind int) statemachine.Handler[Action] {
	return func(key types.Key) (statemachine.Command[Action], bool) {
		if key.Kind == types.KeyChar && key.Ch == repeat {
			return statemachine.Simple(act(lineKind)), true
		}
		if m, ok := motionForKey(key); ok {
			return statemachine.Simple(Action{Kind: kind, Motion: m}), true
		}
		return statemachine.Command[Action]{}, false
	}
}

// Tick implements Buffer.
func (t *TextBuffer) Tick(input types.Input) Result {
	t.ClearTick(input)
	switch t.Mode {
	case ModeCommand:
		return t.CommandTick(input, t.applyCommand)
	case ModeWrite:
		return t.writeTick(input)
	case ModeShell:
		return t.shellTick(input)
	}

	res := t.viewSM.Tick(input)
	if res.Kind != statemachine.ResultAction {
		return Ok()
	}
	if r, handled := t.Perform(res.Action); handled {
		return r
	}
	return t.perform(res.Action)
}

// Render implements Buffer. During a shell run the child's parsed
// output is shown in place of the document.
func (t *TextBuffer) Render(disp *display.Display) {
	doc := t.Doc
	if t.Mode == ModeShell {
		doc = document.New(t.vt.Lines())
		y := len(doc.Lines) - 1
		doc.Cur = types.NewCursor(doc.LineCount(y), y)
		t.View.Track(doc)
	}

	t.View.Render(doc, disp, t.Style(t.hl.Spans(doc.Lines, t.View.ScrollY, t.View.ScrollY+t.View.H)))
	t.RenderChrome(disp, t.Name(), t.modeLabel(), t.position())

	if t.Mode != ModeCommand {
		style := types.CursorSteadyBlock
		if t.Mode == ModeWrite {
			style = types.CursorBlinkingBar
		}
		t.View.RenderCursor(doc, disp, style)
	}
	if t.Mode == ModeShell {
		t.View.Track(t.Doc)
	}
	t.Rendered()
}

func (t *TextBuffer) modeLabel() string {
	switch t.Mode {
	case ModeWrite:
		return "-- write --"
	case ModeShell:
		return fmt.Sprintf("! %s  (ctrl-q cancels)", t.childName)
	case ModeCommand:
		return ""
	}
	if t.Doc.Edited {
		return "[+]"
	}
	return ""
}

func (t *TextBuffer) position() string {
	return fmt.Sprintf("%d:%d", t.Doc.Cur.Y+1, t.Doc.Cur.X+1)
}

// save writes the document to path (default: the bound file).
func (t *TextBuffer) save(path string) Result {
	if path == "" {
		path = t.path
	}
	if path == "" {
		return Errorf("no file name")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return Errorf("write: %v", err)
	}
	defer f.Close()
	if err := t.Doc.WriteTo(f); err != nil {
		return Errorf("write: %v", err)
	}
	if t.path == "" {
		t.path = path
		t.hl = highlight.New(path, []byte(t.Doc.String()))
	}
	return Info(fmt.Sprintf("wrote %s (%d lines)", path, len(t.Doc.Lines)))
}
