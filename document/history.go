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

package document

import "github.com/mini-editor/mini/types"

// Change kinds.
const (
	Insert = iota
	Delete
	Replace
)

// A ReplaceEvent is one replacement inside a compound Replace change.
// Pos is the position of the replacement in the post-rewrite text.
type ReplaceEvent struct {
	Pos        types.Cursor
	DeleteData string
	InsertData string
}

// A Change is a reversible document edit. Insert and Delete use Pos
// and Data; Replace uses Events.
type Change struct {
	Kind   int
	Pos    types.Cursor
	Data   string
	Events []ReplaceEvent
}

// A History holds the undo and redo stacks of a document.
type History struct {
	undo []Change
	redo []Change
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// AddChange records a new change and clears the redo stack.
func (h *History) AddChange(change Change) {
	h.undo = append(h.undo, change)
	h.redo = h.redo[:0]
}

// PopChange discards the most recent change.
func (h *History) PopChange() {
	if len(h.undo) > 0 {
		h.undo = h.undo[:len(h.undo)-1]
	}
}

// Undo pops the last change for undoing.
func (h *History) Undo() (Change, bool) {
	if len(h.undo) == 0 {
		return Change{}, false
	}
	change := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return change, true
}

// Redo pops the last undone change for redoing.
func (h *History) Redo() (Change, bool) {
	if len(h.redo) == 0 {
		return Change{}, false
	}
	change := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return change, true
}

// PushUndo pushes a change back on the undo stack.
func (h *History) PushUndo(change Change) {
	h.undo = append(h.undo, change)
}

// PushRedo pushes a change on the redo stack.
func (h *History) PushRedo(change Change) {
	h.redo = append(h.redo, change)
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Len reports the number of undoable changes.
func (h *History) Len() int {
	return len(h.undo)
}
