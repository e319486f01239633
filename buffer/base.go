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
	"strconv"

	"github.com/mini-editor/mini/clipboard"
	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/motion"
	"github.com/mini-editor/mini/statemachine"
	"github.com/mini-editor/mini/types"
	"github.com/mini-editor/mini/viewport"
)

// Buffer modes. View and Command are generic; the rest belong to the
// text buffer.
const (
	ModeView = iota
	ModeCommand
	ModeWrite
	ModeShell
)

// Base is the behavior shared by every non-scroll buffer: a document,
// a command-line mini-document, a viewport, selections, the motion
// repeat, and the clipboard handle. Concrete buffers embed it.
type Base struct {
	Doc     *document.Document
	CmdDoc  *document.Document
	View    *viewport.Viewport
	cmdView *viewport.Viewport

	Mode   int
	Repeat string

	Sels      []document.Selection
	Primary   int
	selecting bool

	Clip clipboard.Clipboard

	Matches  []document.Selection
	MatchIdx int

	history []string
	histIdx int

	Message string
	IsError bool

	W, H     int
	rerender bool
}

// NewBase creates the shared state. Gutter enables line numbers.
func NewBase(doc *document.Document, clip clipboard.Clipboard, gutter bool) Base {
	view := viewport.New(0, 0, 80, 22)
	view.Gutter = gutter
	b := Base{
		Doc:     doc,
		CmdDoc:  document.New(nil),
		View:    view,
		cmdView: viewport.New(0, 0, 80, 1),
		Clip:    clip,
		W:       80,
		H:       24,
	}
	b.View.Track(doc)
	return b
}

// MarkRender flags the buffer for the next render pass.
func (b *Base) MarkRender() { b.rerender = true }

// NeedRender implements part of the Buffer interface.
func (b *Base) NeedRender() bool { return b.rerender }

// SetMessage shows msg on the message bar.
func (b *Base) SetMessage(msg string) {
	b.Message = msg
	b.IsError = false
	b.rerender = true
}

// SetError shows msg as an error.
func (b *Base) SetError(msg string) {
	b.Message = msg
	b.IsError = true
	b.rerender = true
}

// CanQuit is the default always-allowed answer.
func (b *Base) CanQuit() error { return nil }

// Resize recomputes the layout. The bottom two rows hold the status
// bar and the message/command line.
func (b *Base) Resize(w, h int) {
	b.W, b.H = w, h
	b.View.Resize(b.Doc, w, h-2)
	b.cmdView.Resize(b.CmdDoc, w, 1)
	b.rerender = true
}

// Count consumes the motion repeat and returns it as a count.
func (b *Base) Count() int {
	n, err := strconv.Atoi(b.Repeat)
	b.Repeat = ""
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// BaseViewMap returns the generic view-mode bindings. Concrete
// buffers extend a copy with their own.
func (b *Base) BaseViewMap() statemachine.CommandMap[Action] {
	m := statemachine.CommandMap[Action]{
		types.Key{Kind: types.KeyArrowLeft}:  statemachine.Simple(act(ActMoveLeft)),
		types.Key{Kind: types.KeyArrowRight}: statemachine.Simple(act(ActMoveRight)),
		types.Key{Kind: types.KeyArrowUp}:    statemachine.Simple(act(ActMoveUp)),
		types.Key{Kind: types.KeyArrowDown}:  statemachine.Simple(act(ActMoveDown)),
		types.Key{Kind: types.KeyEsc}:        statemachine.Simple(act(ActEscape)),
		types.Char('h'):                      statemachine.Simple(act(ActMoveLeft)),
		types.Char('l'):                      statemachine.Simple(act(ActMoveRight)),
		types.Char('k'):                      statemachine.Simple(act(ActMoveUp)),
		types.Char('j'):                      statemachine.Simple(act(ActMoveDown)),
		types.Char('w'):                      statemachine.Simple(act(ActNextWord)),
		types.Char('b'):                      statemachine.Simple(act(ActPrevWord)),
		types.Char('W'):                      statemachine.Simple(act(ActNextWhitespace)),
		types.Char('B'):                      statemachine.Simple(act(ActPrevWhitespace)),
		types.Char('}'):                      statemachine.Simple(act(ActNextEmptyLine)),
		types.Char('{'):                      statemachine.Simple(act(ActPrevEmptyLine)),
		types.Char('J'):                      statemachine.Simple(act(ActHalfPageDown)),
		types.Char('K'):                      statemachine.Simple(act(ActHalfPageUp)),
		types.Char('$'):                      statemachine.Simple(act(ActLineEnd)),
		types.Char('g'):                      statemachine.Simple(act(ActFileStart)),
		types.Char('G'):                      statemachine.Simple(act(ActFileEnd)),
		types.Char('.'):                      statemachine.Simple(act(ActMatchBracket)),
		types.Char('v'):                      statemachine.Simple(act(ActSelect)),
		types.Char('V'):                      statemachine.Simple(act(ActSelectLine)),
		types.Char(' '):                      statemachine.Simple(act(ActEnterCommand)),
		types.Char('n'):                      statemachine.Simple(act(ActNextMatch)),
		types.Char('N'):                      statemachine.Simple(act(ActPrevMatch)),
	}
	for ch := '0'; ch <= '9'; ch++ {
		m[types.Char(ch)] = statemachine.Simple(Action{Kind: ActDigit, Ch: ch})
	}
	return m
}

// Perform executes a generic action. The second return is false when
// the action belongs to the concrete buffer.
func (b *Base) Perform(a Action) (Result, bool) {
	doc, view := b.Doc, b.View
	switch a.Kind {
	case ActMoveLeft:
		motion.Left(doc, view, b.Count())
	case ActMoveRight:
		motion.Right(doc, view, b.Count())
	case ActMoveUp:
		motion.Up(doc, view, b.Count())
	case ActMoveDown:
		motion.Down(doc, view, b.Count())
	case ActNextWord:
		motion.NextWord(doc, view, b.Count())
	case ActPrevWord:
		motion.PrevWord(doc, view, b.Count())
	case ActNextWhitespace:
		motion.NextWhitespace(doc, view, b.Count())
	case ActPrevWhitespace:
		motion.PrevWhitespace(doc, view, b.Count())
	case ActNextEmptyLine:
		motion.NextEmptyLine(doc, view, b.Count())
	case ActPrevEmptyLine:
		motion.PrevEmptyLine(doc, view, b.Count())
	case ActHalfPageDown:
		motion.HalfPageDown(doc, view, b.Count())
	case ActHalfPageUp:
		motion.HalfPageUp(doc, view, b.Count())
	case ActLineEnd:
		motion.EndOfLine(doc, view)
	case ActFileStart:
		motion.BeginningOfFile(doc, view)
	case ActFileEnd:
		motion.EndOfFile(doc, view)
	case ActMatchBracket:
		motion.MatchingOpposite(doc, view)
	case ActDigit:
		if a.Ch == '0' && b.Repeat == "" {
			motion.BeginningOfLine(doc, view)
		} else {
			b.Repeat += string(a.Ch)
			return Ok(), true // digits accumulate without the reset below
		}
	case ActSelect:
		b.toggleSelection(document.SelectNormal)
	case ActSelectLine:
		b.toggleSelection(document.SelectLine)
	case ActEscape:
		b.Sels = nil
		b.Matches = nil
		b.selecting = false
		b.Repeat = ""
	case ActEnterCommand:
		b.Mode = ModeCommand
		b.CmdDoc.Clear()
		b.histIdx = len(b.history)
	case ActNextMatch:
		b.cycleMatch(1)
	case ActPrevMatch:
		b.cycleMatch(-1)
	default:
		return Ok(), false
	}
	b.Repeat = ""
	b.extendSelection()
	return Ok(), true
}

func (b *Base) toggleSelection(kind int) {
	if b.selecting {
		b.selecting = false
		return
	}
	b.Sels = append(b.Sels, document.NewSelection(b.Doc.Cur, kind))
	b.Primary = len(b.Sels) - 1
	b.selecting = true
}

// extendSelection keeps the active selection's head on the cursor.
func (b *Base) extendSelection() {
	if b.selecting && b.Primary < len(b.Sels) {
		b.Sels[b.Primary].Head = b.Doc.Cur
	}
}

// CommandTick drives the command-line mini-editor. On Enter the
// finished command is handed to apply.
func (b *Base) CommandTick(input types.Input, apply func(line string) Result) Result {
	if input.Timeout {
		return Ok()
	}
	key := input.Key
	doc, view := b.CmdDoc, b.cmdView

	switch key.Kind {
	case types.KeyEnter:
		line := doc.Lines[0]
		b.Mode = ModeView
		doc.Clear()
		if line != "" {
			b.history = append(b.history, line)
		}
		return apply(line)
	case types.KeyEsc:
		b.Mode = ModeView
		doc.Clear()
	case types.KeyBackspace:
		if doc.Cur.X > 0 {
			doc.Cur.Left(1)
			doc.DeleteChar()
		}
	case types.KeyArrowLeft:
		motion.Left(doc, view, 1)
	case types.KeyArrowRight:
		motion.Right(doc, view, 1)
	case types.KeyAltArrowLeft:
		motion.PrevWord(doc, view, 1)
	case types.KeyAltArrowRight:
		motion.NextWord(doc, view, 1)
	case types.KeyArrowUp:
		b.recallHistory(-1)
	case types.KeyArrowDown:
		b.recallHistory(1)
	case types.KeyTab:
		doc.WriteStr("    ")
		doc.Cur.Right(4, doc.LineCount(0))
	case types.KeyChar:
		doc.WriteChar(key.Ch)
		doc.Cur.Right(1, doc.LineCount(0))
	}
	return Ok()
}

// recallHistory walks the command history; stepping past the newest
// entry restores an empty line.
func (b *Base) recallHistory(delta int) {
	idx := b.histIdx + delta
	if idx < 0 || idx > len(b.history) {
		return
	}
	b.histIdx = idx
	line := ""
	if idx < len(b.history) {
		line = b.history[idx]
	}
	b.CmdDoc.SetContents([]string{line})
	b.CmdDoc.Cur = types.NewCursor(b.CmdDoc.LineCount(0), 0)
}

// PrefillCommand enters command mode with line already typed.
func (b *Base) PrefillCommand(line string) {
	b.Mode = ModeCommand
	b.CmdDoc.SetContents([]string{line})
	b.CmdDoc.Cur = types.NewCursor(b.CmdDoc.LineCount(0), 0)
	b.histIdx = len(b.history)
}

// RenderChrome draws the status bar and the message/command line
// into the bottom two display rows.
func (b *Base) RenderChrome(disp *display.Display, name, mode, right string) {
	bar := viewport.New(0, 0, b.W, b.H)
	left := " " + name
	if mode != "" {
		left += "  " + mode
	}
	if b.Repeat != "" {
		left += "  " + b.Repeat
	}
	bar.RenderBar(disp, b.H-2, left, right+" ", colBarFg, colBarBg)

	switch {
	case b.Mode == ModeCommand:
		line := "> " + b.CmdDoc.Lines[0]
		bar.RenderBar(disp, b.H-1, line, "", colFg, colBg)
		disp.SetCursor(len([]rune("> "))+b.CmdDoc.Cur.X, b.H-1, types.CursorSteadyBar)
	case b.Message != "":
		fg, bg := colFg, colBg
		if b.IsError {
			fg, bg = colErrorFg, colErrorBg
		}
		bar.RenderBar(disp, b.H-1, " "+b.Message, "", fg, bg)
	default:
		bar.RenderBar(disp, b.H-1, "", "", colFg, colBg)
	}
}

// ClearTick resets per-tick transient state before handling a key.
func (b *Base) ClearTick(input types.Input) {
	if !input.Timeout {
		b.Message = ""
		b.IsError = false
		b.rerender = true
	}
}

// Rendered clears the render flag after a render pass.
func (b *Base) Rendered() { b.rerender = false }

// Style assembles the render style with the current overlays.
func (b *Base) Style(spans map[int][]viewport.Span) viewport.Style {
	sels := b.Sels
	if len(b.Matches) > 0 {
		sels = append(append([]document.Selection{}, sels...), b.Matches[b.MatchIdx])
	}
	return viewport.Style{
		Fg:           colFg,
		Bg:           colBg,
		GutterFg:     colGutter,
		CursorLineBg: colCursor,
		SelectionBg:  colSelection,
		SpaceFg:      colSpace,
		Selections:   sels,
		Spans:        spans,
	}
}
