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

// Package viewport renders a window over a document into a display,
// with an optional line-number gutter, cursor-row highlighting, and
// selection overlays.
package viewport

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/types"
)

// A Span colors a character range [Start, End) on one document line.
type Span struct {
	Start, End int
	Fg         types.Color
}

// A Style carries the colors and overlays for one render pass.
type Style struct {
	Fg           types.Color
	Bg           types.Color
	GutterFg     types.Color
	CursorLineBg types.Color
	SelectionBg  types.Color
	SpaceFg      types.Color
	Selections   []document.Selection
	Spans        map[int][]Span
}

// A Viewport is a scrolling window over a document. The document
// cursor always equals scroll plus the visible cursor.
type Viewport struct {
	X, Y int // placement inside the display
	W, H int

	ScrollX, ScrollY int
	Cur              types.Cursor // visible, relative to the buffer area

	Gutter  bool
	gutterW int
}

// New creates a viewport of the given size at a display offset.
func New(x, y, w, h int) *Viewport {
	return &Viewport{X: x, Y: y, W: w, H: h}
}

// BuffW returns the width of the text area, excluding the gutter.
func (v *Viewport) BuffW() int {
	w := v.W - v.gutterW
	if w < 1 {
		w = 1
	}
	return w
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Track adjusts the scroll origin so the document cursor is visible
// and rederives the visible cursor from it.
func (v *Viewport) Track(doc *document.Document) {
	if v.Gutter {
		v.gutterW = digits(len(doc.Lines)) + 4
	} else {
		v.gutterW = 0
	}

	if doc.Cur.Y < v.ScrollY {
		v.ScrollY = doc.Cur.Y
	}
	if doc.Cur.Y >= v.ScrollY+v.H {
		v.ScrollY = doc.Cur.Y - v.H + 1
	}
	if doc.Cur.X < v.ScrollX {
		v.ScrollX = doc.Cur.X
	}
	if doc.Cur.X >= v.ScrollX+v.BuffW() {
		v.ScrollX = doc.Cur.X - v.BuffW() + 1
	}

	v.Cur = types.NewCursor(doc.Cur.X-v.ScrollX, doc.Cur.Y-v.ScrollY)
}

// Resize updates the dimensions and re-clamps the scroll so the
// cursor stays inside the new bounds.
func (v *Viewport) Resize(doc *document.Document, w, h int) {
	v.W, v.H = w, h
	if v.H < 1 {
		v.H = 1
	}
	v.Track(doc)
}

// Render draws the visible slice of the document into the display.
func (v *Viewport) Render(doc *document.Document, disp *display.Display, st Style) {
	for row := 0; row < v.H; row++ {
		y := v.ScrollY + row
		bg := st.Bg
		if y == doc.Cur.Y {
			bg = st.CursorLineBg
		}

		if y >= len(doc.Lines) {
			v.blankRow(disp, row, st.Bg)
			continue
		}

		col := v.renderGutter(doc, disp, row, y, st, bg)
		col = v.renderLine(doc, disp, row, y, col, st, bg)

		// Stretch the row background to the right edge.
		for ; col < v.W; col++ {
			disp.Set(v.X+col, v.Y+row, types.Cell{Ch: ' ', Fg: st.Fg, Bg: bg})
		}
	}
}

func (v *Viewport) blankRow(disp *display.Display, row int, bg types.Color) {
	for col := 0; col < v.W; col++ {
		disp.Set(v.X+col, v.Y+row, types.Cell{Ch: ' ', Bg: bg})
	}
}

// renderGutter draws the line number for row and returns the first
// text column. The cursor row shows its absolute number; other rows
// show their distance from it.
func (v *Viewport) renderGutter(doc *document.Document, disp *display.Display, row, y int, st Style, bg types.Color) int {
	if !v.Gutter {
		return 0
	}
	n := y + 1
	if y != doc.Cur.Y {
		n = y - doc.Cur.Y
		if n < 0 {
			n = -n
		}
	}
	label := fmt.Sprintf("%*d   ", v.gutterW-3, n)
	col := 0
	for _, ch := range label {
		if col >= v.gutterW {
			break
		}
		disp.Set(v.X+col, v.Y+row, types.Cell{Ch: ch, Fg: st.GutterFg, Bg: bg})
		col++
	}
	for ; col < v.gutterW; col++ {
		disp.Set(v.X+col, v.Y+row, types.Cell{Ch: ' ', Fg: st.GutterFg, Bg: bg})
	}
	return col
}

func (v *Viewport) renderLine(doc *document.Document, disp *display.Display, row, y, col int, st Style, bg types.Color) int {
	runes := []rune(doc.Lines[y])
	limit := v.W

	for x := v.ScrollX; x < len(runes) && col < limit; x++ {
		ch := runes[x]
		cell := types.Cell{Ch: ch, Fg: v.spanFg(st, y, x), Bg: bg}
		if ch == ' ' {
			// Interdot so runs of spaces stay countable.
			cell.Ch = '·'
			cell.Fg = st.SpaceFg
		}
		if v.selected(doc, st, x, y) {
			cell.Bg = st.SelectionBg
		}
		disp.Set(v.X+col, v.Y+row, cell)
		col++
		for w := runewidth.RuneWidth(ch); w > 1 && col < limit; w-- {
			disp.Set(v.X+col, v.Y+row, types.Cell{Ch: types.Placeholder, Bg: cell.Bg})
			col++
		}
	}

	// A selected line end renders a visible newline marker.
	if col < limit && v.selected(doc, st, len(runes), y) && y+1 < len(doc.Lines) {
		disp.Set(v.X+col, v.Y+row, types.Cell{Ch: '⏎', Fg: st.SpaceFg, Bg: st.SelectionBg})
		col++
	}
	return col
}

func (v *Viewport) spanFg(st Style, y, x int) types.Color {
	for _, span := range st.Spans[y] {
		if x >= span.Start && x < span.End {
			return span.Fg
		}
	}
	return st.Fg
}

func (v *Viewport) selected(doc *document.Document, st Style, x, y int) bool {
	cur := types.NewCursor(x, y)
	for _, sel := range st.Selections {
		if sel.Contains(doc, cur) {
			return true
		}
	}
	return false
}

// RenderCursor positions the hardware cursor over the document
// cursor, accounting for wide characters left of it.
func (v *Viewport) RenderCursor(doc *document.Document, disp *display.Display, style int) {
	runes := []rune(doc.Lines[doc.Cur.Y])
	col := v.gutterW
	for x := v.ScrollX; x < doc.Cur.X && x < len(runes); x++ {
		col += runewidth.RuneWidth(runes[x])
	}
	disp.SetCursor(v.X+col, v.Y+v.Cur.Y, style)
}

// RenderBar draws a one-line status bar across the full viewport
// width, left text flush left and right text flush right.
func (v *Viewport) RenderBar(disp *display.Display, row int, left, right string, fg, bg types.Color) {
	cells := make([]types.Cell, v.W)
	for i := range cells {
		cells[i] = types.Cell{Ch: ' ', Fg: fg, Bg: bg}
	}
	col := 0
	for _, ch := range left {
		if col >= v.W {
			break
		}
		cells[col] = types.Cell{Ch: ch, Fg: fg, Bg: bg}
		col += runewidth.RuneWidth(ch)
	}
	rw := runewidth.StringWidth(right)
	col = v.W - rw
	for _, ch := range right {
		if col >= 0 && col < v.W {
			cells[col] = types.Cell{Ch: ch, Fg: fg, Bg: bg}
		}
		col += runewidth.RuneWidth(ch)
	}
	for i, cell := range cells {
		disp.Set(v.X+i, v.Y+row, cell)
	}
}
