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

package viewport

import (
	"strings"
	"testing"

	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/types"
)

func manyLines(n int) *document.Document {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat("x", 10)
	}
	return document.New(lines)
}

func checkInvariant(t *testing.T, doc *document.Document, v *Viewport) {
	t.Helper()
	if doc.Cur.X != v.ScrollX+v.Cur.X || doc.Cur.Y != v.ScrollY+v.Cur.Y {
		t.Errorf("doc (%d,%d) != scroll (%d,%d) + visible (%d,%d)",
			doc.Cur.X, doc.Cur.Y, v.ScrollX, v.ScrollY, v.Cur.X, v.Cur.Y)
	}
	if v.Cur.Y < 0 || v.Cur.Y >= v.H {
		t.Errorf("visible y %d out of [0,%d)", v.Cur.Y, v.H)
	}
	if v.Cur.X < 0 || v.Cur.X >= v.BuffW() {
		t.Errorf("visible x %d out of [0,%d)", v.Cur.X, v.BuffW())
	}
}

func TestTrackKeepsCursorVisible(t *testing.T) {
	doc := manyLines(100)
	v := New(0, 0, 20, 10)

	for _, y := range []int{0, 9, 10, 50, 99, 0} {
		doc.Cur = types.NewCursor(0, y)
		v.Track(doc)
		checkInvariant(t, doc, v)
	}
}

func TestTrackScrollsHorizontally(t *testing.T) {
	doc := document.New([]string{strings.Repeat("a", 200)})
	v := New(0, 0, 20, 5)

	doc.Cur = types.NewCursor(150, 0)
	v.Track(doc)
	checkInvariant(t, doc, v)

	doc.Cur = types.NewCursor(3, 0)
	v.Track(doc)
	checkInvariant(t, doc, v)
	if v.ScrollX != 3 {
		t.Errorf("scroll x = %d, want 3", v.ScrollX)
	}
}

func TestResizeClampsScroll(t *testing.T) {
	doc := manyLines(50)
	v := New(0, 0, 40, 20)
	doc.Cur = types.NewCursor(0, 45)
	v.Track(doc)

	v.Resize(doc, 40, 5)
	checkInvariant(t, doc, v)
}

func TestGutterWidth(t *testing.T) {
	v := New(0, 0, 40, 10)
	v.Gutter = true

	doc := manyLines(9)
	v.Track(doc)
	if got := v.W - v.BuffW(); got != 5 {
		t.Errorf("9 lines: gutter %d, want 5", got)
	}

	doc = manyLines(1000)
	v.Track(doc)
	if got := v.W - v.BuffW(); got != 8 {
		t.Errorf("1000 lines: gutter %d, want 8", got)
	}
}

func basicStyle() Style {
	return Style{
		Fg:           types.RGB(255, 255, 255),
		Bg:           types.RGB(0, 0, 0),
		GutterFg:     types.RGB(100, 100, 100),
		CursorLineBg: types.RGB(30, 30, 30),
		SelectionBg:  types.RGB(0, 0, 200),
		SpaceFg:      types.RGB(60, 60, 60),
	}
}

func row(d *display.Display, y, w int) string {
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(d.Get(x, y).Ch)
	}
	return b.String()
}

func TestRenderLineNumbers(t *testing.T) {
	doc := document.New([]string{"aa", "bb", "cc"})
	doc.Cur = types.NewCursor(0, 1)
	v := New(0, 0, 12, 3)
	v.Gutter = true
	v.Track(doc)

	d := display.New(12, 3)
	v.Render(doc, d, basicStyle())

	// Cursor row shows its absolute number, neighbors their distance.
	if got := row(d, 0, 12); !strings.HasPrefix(strings.TrimLeft(got, " "), "1 ") {
		t.Errorf("row 0 gutter: %q should lead with relative 1", got)
	}
	if got := row(d, 1, 12); !strings.HasPrefix(strings.TrimLeft(got, " "), "2 ") {
		t.Errorf("row 1 gutter: %q should lead with absolute 2", got)
	}
}

func TestRenderSelectionOverlay(t *testing.T) {
	doc := document.New([]string{"abcdef"})
	sel := document.NewSelection(types.NewCursor(1, 0), document.SelectNormal)
	sel.Head = types.NewCursor(4, 0)

	st := basicStyle()
	st.Selections = []document.Selection{sel}

	v := New(0, 0, 10, 2)
	v.Track(doc)
	d := display.New(10, 2)
	v.Render(doc, d, st)

	if d.Get(0, 0).Bg == st.SelectionBg {
		t.Error("cell 0 should not be selected")
	}
	for x := 1; x < 4; x++ {
		if d.Get(x, 0).Bg != st.SelectionBg {
			t.Errorf("cell %d should carry the selection background", x)
		}
	}
	if d.Get(4, 0).Bg == st.SelectionBg {
		t.Error("selection end is exclusive")
	}
}

func TestRenderWideRunePlaceholder(t *testing.T) {
	doc := document.New([]string{"日x"})
	v := New(0, 0, 10, 1)
	v.Track(doc)
	d := display.New(10, 1)
	v.Render(doc, d, basicStyle())

	if d.Get(0, 0).Ch != '日' {
		t.Fatalf("cell 0: got %q", d.Get(0, 0).Ch)
	}
	if d.Get(1, 0).Ch != types.Placeholder {
		t.Errorf("cell 1: got %q, want placeholder", d.Get(1, 0).Ch)
	}
	if d.Get(2, 0).Ch != 'x' {
		t.Errorf("cell 2: got %q, want x", d.Get(2, 0).Ch)
	}
}

func TestRenderInterdotSpaces(t *testing.T) {
	doc := document.New([]string{"a b"})
	v := New(0, 0, 6, 1)
	v.Track(doc)
	d := display.New(6, 1)
	v.Render(doc, d, basicStyle())

	if d.Get(1, 0).Ch != '·' {
		t.Errorf("space cell: got %q, want interdot", d.Get(1, 0).Ch)
	}
}
