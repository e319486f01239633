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
	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/motion"
)

// undo reverts the most recent change and moves it to the redo stack.
func (t *TextBuffer) undo() Result {
	t.flushPending()
	change, ok := t.hist.Undo()
	if !ok {
		return Info("nothing to undo")
	}

	doc, view := t.Doc, t.View
	switch change.Kind {
	case document.Insert:
		doc.RemoveRange(change.Pos, motion.EndPos(change.Pos, change.Data))
		motion.MoveTo(doc, view, change.Pos)
	case document.Delete:
		doc.WriteStrAt(change.Pos.X, change.Pos.Y, change.Data)
		motion.MoveTo(doc, view, change.Pos)
	case document.Replace:
		// Replay in reverse: event positions were recorded against
		// the rewritten text, so text left of each position is still
		// untouched when its turn comes.
		for i := len(change.Events) - 1; i >= 0; i-- {
			ev := change.Events[i]
			doc.RemoveRange(ev.Pos, motion.EndPos(ev.Pos, ev.InsertData))
			doc.WriteStrAt(ev.Pos.X, ev.Pos.Y, ev.DeleteData)
		}
		if len(change.Events) > 0 {
			motion.MoveTo(doc, view, change.Events[0].Pos)
		}
	}

	t.hist.PushRedo(change)
	return Ok()
}

// redo reapplies the most recently undone change.
func (t *TextBuffer) redo() Result {
	t.flushPending()
	change, ok := t.hist.Redo()
	if !ok {
		return Info("nothing to redo")
	}

	doc, view := t.Doc, t.View
	switch change.Kind {
	case document.Insert:
		doc.WriteStrAt(change.Pos.X, change.Pos.Y, change.Data)
		motion.MoveTo(doc, view, motion.EndPos(change.Pos, change.Data))
	case document.Delete:
		doc.RemoveRange(change.Pos, motion.EndPos(change.Pos, change.Data))
		motion.MoveTo(doc, view, change.Pos)
	case document.Replace:
		// Forward replay: text left of each recorded position is
		// already rewritten, so the positions hold.
		for _, ev := range change.Events {
			doc.RemoveRange(ev.Pos, motion.EndPos(ev.Pos, ev.DeleteData))
			doc.WriteStrAt(ev.Pos.X, ev.Pos.Y, ev.InsertData)
		}
		if len(change.Events) > 0 {
			motion.MoveTo(doc, view, change.Events[len(change.Events)-1].Pos)
		}
	}

	t.hist.PushUndo(change)
	return Ok()
}
