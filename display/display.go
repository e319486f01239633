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

// Package display implements a differential cell buffer. Draw calls
// mutate an in-memory grid; Flush pushes only the cells that changed
// since the previous flush out to a Target.
package display

import "github.com/mini-editor/mini/types"

// A Target receives flushed cells. The terminal screen implements it;
// tests use a recording fake.
type Target interface {
	SetCell(x, y int, cell types.Cell)
	SetCursor(x, y int, style int)
	Show()
}

// A Display is a w×h grid of cells with change tracking.
type Display struct {
	w, h        int
	cells       []types.Cell
	prev        []types.Cell
	full        bool
	cursorX     int
	cursorY     int
	cursorStyle int
}

// New creates a display of the given size. The first flush is always
// a full redraw.
func New(w, h int) *Display {
	d := &Display{}
	d.Resize(w, h)
	return d
}

// Size returns the display dimensions.
func (d *Display) Size() (int, int) {
	return d.w, d.h
}

// Resize replaces the grid and forces a full redraw on the next flush.
func (d *Display) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	d.w, d.h = w, h
	d.cells = make([]types.Cell, w*h)
	d.prev = make([]types.Cell, w*h)
	for i := range d.cells {
		d.cells[i] = types.Cell{Ch: ' '}
	}
	d.full = true
}

// Set places a cell. Out-of-bounds positions are dropped.
func (d *Display) Set(x, y int, cell types.Cell) {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return
	}
	d.cells[y*d.w+x] = cell
}

// Get returns the cell at (x, y).
func (d *Display) Get(x, y int) types.Cell {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		return types.Cell{Ch: ' '}
	}
	return d.cells[y*d.w+x]
}

// SetCursor records the hardware cursor position and style for the
// next flush.
func (d *Display) SetCursor(x, y int, style int) {
	d.cursorX, d.cursorY, d.cursorStyle = x, y, style
}

// Flush writes every changed cell to the target, then the cursor, and
// asks the target to show the result. Placeholder cells mark the
// trailing columns of wide characters and are never written. A flush
// with no pending draws writes nothing, so flushing is idempotent.
func (d *Display) Flush(t Target) {
	for i, cell := range d.cells {
		if !d.full && cell == d.prev[i] {
			continue
		}
		if cell.Ch == types.Placeholder {
			d.prev[i] = cell
			continue
		}
		t.SetCell(i%d.w, i/d.w, cell)
		d.prev[i] = cell
	}
	d.full = false
	t.SetCursor(d.cursorX, d.cursorY, d.cursorStyle)
	t.Show()
}
