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

package display

import (
	"testing"

	"github.com/mini-editor/mini/types"
)

// fakeTarget records what a flush writes.
type fakeTarget struct {
	cells map[[2]int]types.Cell
	sets  int
	shows int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{cells: make(map[[2]int]types.Cell)}
}

func (f *fakeTarget) SetCell(x, y int, cell types.Cell) {
	f.cells[[2]int{x, y}] = cell
	f.sets++
}

func (f *fakeTarget) SetCursor(x, y int, style int) {}

func (f *fakeTarget) Show() { f.shows++ }

func TestFirstFlushIsFull(t *testing.T) {
	d := New(4, 2)
	target := newFakeTarget()
	d.Flush(target)
	if target.sets != 8 {
		t.Errorf("first flush wrote %d cells, want 8", target.sets)
	}
}

func TestFlushIsIdempotent(t *testing.T) {
	d := New(4, 2)
	target := newFakeTarget()
	d.Set(1, 1, types.Cell{Ch: 'x'})
	d.Flush(target)

	target.sets = 0
	d.Flush(target)
	if target.sets != 0 {
		t.Errorf("second flush with no changes wrote %d cells, want 0", target.sets)
	}
	if target.shows != 2 {
		t.Errorf("Show called %d times, want 2", target.shows)
	}
}

func TestFlushWritesOnlyDirtyCells(t *testing.T) {
	d := New(4, 2)
	target := newFakeTarget()
	d.Flush(target)

	target.sets = 0
	d.Set(2, 0, types.Cell{Ch: 'a'})
	d.Set(3, 1, types.Cell{Ch: 'b'})
	d.Set(0, 0, types.Cell{Ch: ' '}) // unchanged
	d.Flush(target)
	if target.sets != 2 {
		t.Errorf("flush wrote %d cells, want 2", target.sets)
	}
	if target.cells[[2]int{2, 0}].Ch != 'a' {
		t.Error("cell (2,0) not written")
	}
}

func TestPlaceholderNeverFlushed(t *testing.T) {
	d := New(4, 1)
	target := newFakeTarget()
	d.Flush(target)

	target.sets = 0
	d.Set(1, 0, types.Cell{Ch: '日'})
	d.Set(2, 0, types.Cell{Ch: types.Placeholder})
	d.Flush(target)
	if target.sets != 1 {
		t.Errorf("flush wrote %d cells, want 1 (placeholder skipped)", target.sets)
	}
}

func TestResizeForcesFullRedraw(t *testing.T) {
	d := New(2, 2)
	target := newFakeTarget()
	d.Flush(target)

	d.Resize(3, 2)
	target.sets = 0
	d.Flush(target)
	if target.sets != 6 {
		t.Errorf("post-resize flush wrote %d cells, want 6", target.sets)
	}
}

func TestOutOfBoundsSetDropped(t *testing.T) {
	d := New(2, 2)
	d.Set(5, 5, types.Cell{Ch: 'x'})
	d.Set(-1, 0, types.Cell{Ch: 'x'})
	if d.Get(5, 5).Ch != ' ' {
		t.Error("out-of-bounds get should return a blank")
	}
}
