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
	"strings"

	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/motion"
	"github.com/mini-editor/mini/types"
)

// perform executes the text-specific view-mode actions.
func (t *TextBuffer) perform(a Action) Result {
	doc, view := t.Doc, t.View
	count := t.Count()

	switch a.Kind {
	case ActEnterWrite:
		t.enterWrite()
	case ActAppend:
		motion.Right(doc, view, 1)
		t.enterWrite()
	case ActWriteLineStart:
		motion.BeginningOfLine(doc, view)
		t.enterWrite()
	case ActWriteLineEnd:
		motion.EndOfLine(doc, view)
		t.enterWrite()

	case ActOpenBelow:
		y := doc.Cur.Y
		pos := types.NewCursor(doc.LineCount(y), y)
		t.record(document.Change{Kind: document.Insert, Pos: pos, Data: "\n"})
		doc.WriteStrAt(pos.X, pos.Y, "\n")
		motion.MoveTo(doc, view, types.NewCursor(0, y+1))
		t.enterWrite()
	case ActOpenAbove:
		y := doc.Cur.Y
		t.record(document.Change{Kind: document.Insert, Pos: types.NewCursor(0, y), Data: "\n"})
		doc.WriteStrAt(0, y, "\n")
		motion.MoveTo(doc, view, types.NewCursor(0, y))
		t.enterWrite()

	case ActDeleteChar:
		for i := 0; i < count; i++ {
			pos := doc.Cur
			ch, ok := doc.DeleteChar()
			if !ok {
				break
			}
			t.record(document.Change{Kind: document.Delete, Pos: pos, Data: string(ch)})
		}
		doc.Cur.ClampX(doc.LineCount(doc.Cur.Y))
		view.Track(doc)

	case ActReplaceChar:
		pos := doc.Cur
		old, ok := doc.DeleteChar()
		if !ok {
			break
		}
		doc.WriteChar(a.Ch)
		t.record(document.Change{Kind: document.Replace, Events: []document.ReplaceEvent{
			{Pos: pos, DeleteData: string(old), InsertData: string(a.Ch)},
		}})

	case ActPaste:
		text, err := t.Clip.Get()
		if err != nil {
			return Errorf("clipboard: %v", err)
		}
		if text == "" {
			break
		}
		pos := doc.Cur
		t.record(document.Change{Kind: document.Insert, Pos: pos, Data: text})
		doc.WriteStrAt(pos.X, pos.Y, text)
		motion.MoveTo(doc, view, motion.EndPos(pos, text))

	case ActUndo:
		return t.undo()
	case ActRedo:
		return t.redo()

	case ActYankLine:
		if err := t.Clip.Set(t.YankText()); err != nil {
			return Errorf("clipboard: %v", err)
		}
	case ActDeleteLine:
		return t.deleteLines(count, false)
	case ActChangeLine:
		return t.deleteLines(count, true)

	case ActYank, ActDelete, ActChange:
		return t.operate(a.Kind, a.Motion, count)
	}
	return Ok()
}

func (t *TextBuffer) enterWrite() {
	t.Mode = ModeWrite
	t.pending = pendingInsert{active: true, start: t.Doc.Cur}
}

// record appends a change, first flushing any insert burst so history
// order matches edit order.
func (t *TextBuffer) record(change document.Change) {
	t.flushPending()
	t.hist.AddChange(change)
}

// flushPending commits the accumulated insert burst as one change.
func (t *TextBuffer) flushPending() {
	if t.pending.active && len(t.pending.text) > 0 {
		t.hist.AddChange(document.Change{
			Kind: document.Insert,
			Pos:  t.pending.start,
			Data: string(t.pending.text),
		})
	}
	t.pending = pendingInsert{active: t.Mode == ModeWrite, start: t.Doc.Cur}
}

// deleteLines removes whole lines into the clipboard; change also
// enters write mode on the emptied first line.
func (t *TextBuffer) deleteLines(count int, change bool) Result {
	doc, view := t.Doc, t.View
	y := doc.Cur.Y

	last := y + count
	if last > len(doc.Lines) {
		last = len(doc.Lines)
	}

	if change {
		// The swept lines collapse into one empty line to type on.
		data := strings.Join(doc.Lines[y:last], "\n")
		if data != "" {
			pos := types.NewCursor(0, y)
			t.record(document.Change{Kind: document.Delete, Pos: pos, Data: data})
			doc.RemoveRange(pos, motion.EndPos(pos, data))
		}
		motion.MoveTo(doc, view, types.NewCursor(0, y))
		t.enterWrite()
		return Ok()
	}

	clipText := strings.Join(doc.Lines[y:last], "\n") + "\n"

	// The removed text must match the document exactly so undo can
	// restore it: deleting through the end takes the previous line's
	// newline instead of a trailing one, and deleting the whole
	// document has no newline to take at all.
	pos := types.NewCursor(0, y)
	data := clipText
	if last == len(doc.Lines) {
		data = strings.TrimSuffix(data, "\n")
		if y > 0 {
			pos = types.NewCursor(doc.LineCount(y-1), y-1)
			data = "\n" + data
		}
	}
	t.record(document.Change{Kind: document.Delete, Pos: pos, Data: data})
	t.Doc.RemoveRange(pos, motion.EndPos(pos, data))

	if err := t.Clip.Set(clipText); err != nil {
		return Errorf("clipboard: %v", err)
	}
	motion.MoveTo(doc, view, types.NewCursor(0, pos.Y))
	return Ok()
}

// operate runs a y/d/c operator over the range swept by a motion.
func (t *TextBuffer) operate(kind, motionKind, count int) Result {
	doc, view := t.Doc, t.View
	start := doc.Cur
	t.applyMotion(motionKind, count)
	end := doc.Cur

	lo, hi := start.Min(end), start.Max(end)
	text := doc.Range(lo, hi)
	if text == "" {
		motion.MoveTo(doc, view, lo)
		return Ok()
	}

	if kind == ActYank {
		motion.MoveTo(doc, view, start)
		if err := t.Clip.Set(text); err != nil {
			return Errorf("clipboard: %v", err)
		}
		return Ok()
	}

	t.record(document.Change{Kind: document.Delete, Pos: lo, Data: text})
	doc.RemoveRange(lo, hi)
	motion.MoveTo(doc, view, lo)
	if err := t.Clip.Set(text); err != nil {
		return Errorf("clipboard: %v", err)
	}
	if kind == ActChange {
		t.enterWrite()
	}
	return Ok()
}

func (t *TextBuffer) applyMotion(kind, count int) {
	doc, view := t.Doc, t.View
	switch kind {
	case MotionLeft:
		motion.Left(doc, view, count)
	case MotionRight:
		motion.Right(doc, view, count)
	case MotionUp:
		motion.Up(doc, view, count)
	case MotionDown:
		motion.Down(doc, view, count)
	case MotionWord:
		motion.NextWord(doc, view, count)
	case MotionBackWord:
		motion.PrevWord(doc, view, count)
	case MotionLineStart:
		motion.BeginningOfLine(doc, view)
	case MotionLineEnd:
		motion.EndOfLine(doc, view)
	case MotionFileStart:
		motion.BeginningOfFile(doc, view)
	case MotionFileEnd:
		motion.EndOfFile(doc, view)
	case MotionNextWhitespace:
		motion.NextWhitespace(doc, view, count)
	case MotionPrevWhitespace:
		motion.PrevWhitespace(doc, view, count)
	}
}

// writeTick handles insert mode.
func (t *TextBuffer) writeTick(input types.Input) Result {
	if input.Timeout {
		return Ok()
	}
	doc, view := t.Doc, t.View
	key := input.Key

	switch key.Kind {
	case types.KeyEsc:
		t.flushPending()
		t.pending = pendingInsert{}
		t.Mode = ModeView
	case types.KeyEnter:
		t.insert("\n")
		motion.MoveTo(doc, view, types.NewCursor(0, doc.Cur.Y+1))
	case types.KeyTab:
		t.insert("    ")
		doc.Cur.Right(4, doc.LineCount(doc.Cur.Y))
		view.Track(doc)
	case types.KeyBackspace:
		t.backspace()
	case types.KeyChar:
		t.insert(string(key.Ch))
		doc.Cur.Right(1, doc.LineCount(doc.Cur.Y))
		view.Track(doc)
	case types.KeyArrowLeft:
		t.flushPending()
		motion.Left(doc, view, 1)
		t.pending.start = doc.Cur
	case types.KeyArrowRight:
		t.flushPending()
		motion.Right(doc, view, 1)
		t.pending.start = doc.Cur
	case types.KeyArrowUp:
		t.flushPending()
		motion.Up(doc, view, 1)
		t.pending.start = doc.Cur
	case types.KeyArrowDown:
		t.flushPending()
		motion.Down(doc, view, 1)
		t.pending.start = doc.Cur
	}
	return Ok()
}

func (t *TextBuffer) insert(s string) {
	t.Doc.WriteStr(s)
	t.pending.text = append(t.pending.text, []rune(s)...)
}

// backspace trims the insert burst when possible so the whole burst
// still undoes as one change; edits past the burst start record their
// own delete.
func (t *TextBuffer) backspace() {
	doc, view := t.Doc, t.View
	if doc.Cur.X == 0 && doc.Cur.Y == 0 {
		return
	}

	var pos types.Cursor
	var data string
	if doc.Cur.X > 0 {
		pos = types.NewCursor(doc.Cur.X-1, doc.Cur.Y)
		ch, ok := doc.DeleteCharAt(pos.X, pos.Y)
		if !ok {
			return
		}
		data = string(ch)
	} else {
		pos = types.NewCursor(doc.LineCount(doc.Cur.Y-1), doc.Cur.Y-1)
		doc.RemoveRange(pos, types.NewCursor(0, doc.Cur.Y))
		data = "\n"
	}

	if t.pending.active && len(t.pending.text) > 0 && !pos.Less(t.pending.start) {
		t.pending.text = t.pending.text[:len(t.pending.text)-1]
	} else {
		t.record(document.Change{Kind: document.Delete, Pos: pos, Data: data})
		t.pending.start = pos
	}
	motion.MoveTo(doc, view, pos)
}
