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

// Package types holds the small value types shared by every part of
// the editor: cursors, keys, cells, and cursor styles.
package types

// Kinds of keys delivered by the terminal.
const (
	KeyChar = iota
	KeyCtrl
	KeyAlt
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyAltArrowLeft
	KeyAltArrowRight
	KeyBackspace
	KeyEsc
	KeyTab
	KeyEnter
)

// A Key is a single decoded keypress. Ch is meaningful for the Char,
// Ctrl, and Alt kinds only.
type Key struct {
	Kind int
	Ch   rune
}

// Char builds a plain character key.
func Char(ch rune) Key { return Key{Kind: KeyChar, Ch: ch} }

// Ctrl builds a control-modified key.
func Ctrl(ch rune) Key { return Key{Kind: KeyCtrl, Ch: ch} }

// Alt builds an alt-modified key.
func Alt(ch rune) Key { return Key{Kind: KeyAlt, Ch: ch} }

// An Input is either a key or a timeout marker delivered to a state
// machine when the poll deadline fires without input.
type Input struct {
	Key     Key
	Timeout bool
}

// KeyInput wraps a key as an input.
func KeyInput(key Key) Input { return Input{Key: key} }

// TimeoutInput is the synthetic tick input.
func TimeoutInput() Input { return Input{Timeout: true} }

// Cursor styles supported by the terminal collaborator.
const (
	CursorSteadyBlock = iota
	CursorSteadyBar
	CursorBlinkingBar
	CursorHidden
)

// A Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Placeholder marks a cell covered by the trailing half of a wide
// character. The display never emits it.
const Placeholder = '￿'

// A Cell is a single terminal cell. Cells compare structurally.
type Cell struct {
	Ch rune
	Fg Color
	Bg Color
}

// NewCell builds a cell.
func NewCell(ch rune, fg, bg Color) Cell { return Cell{Ch: ch, Fg: fg, Bg: bg} }

// A Cursor is a position in character coordinates. TargetX preserves
// the intended column across vertical motion over short lines.
type Cursor struct {
	X, Y    int
	TargetX int
}

// NewCursor builds a cursor with its target column at X.
func NewCursor(x, y int) Cursor { return Cursor{X: x, Y: y, TargetX: x} }

// Less orders cursors lexicographically by (Y, X).
func (c Cursor) Less(other Cursor) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// Equal compares positions, ignoring the target column.
func (c Cursor) Equal(other Cursor) bool {
	return c.X == other.X && c.Y == other.Y
}

// Min returns the lesser of two cursors.
func (c Cursor) Min(other Cursor) Cursor {
	if other.Less(c) {
		return other
	}
	return c
}

// Max returns the greater of two cursors.
func (c Cursor) Max(other Cursor) Cursor {
	if c.Less(other) {
		return other
	}
	return c
}

// Left moves the cursor left, saturating at zero.
func (c *Cursor) Left(n int) {
	c.X -= n
	if c.X < 0 {
		c.X = 0
	}
	c.TargetX = c.X
}

// Right moves the cursor right, clamped by bound.
func (c *Cursor) Right(n, bound int) {
	c.X += n
	if c.X > bound {
		c.X = bound
	}
	c.TargetX = c.X
}

// Up moves the cursor up, saturating at zero. The target column is
// kept so a later long line can restore the intended position.
func (c *Cursor) Up(n int) {
	c.Y -= n
	if c.Y < 0 {
		c.Y = 0
	}
}

// Down moves the cursor down, clamped by bound.
func (c *Cursor) Down(n, bound int) {
	c.Y += n
	if c.Y > bound {
		c.Y = bound
	}
}

// ClampX clamps the visible column into [0, bound] without touching
// the target column.
func (c *Cursor) ClampX(bound int) {
	if c.X > bound {
		c.X = bound
	}
	if c.X < 0 {
		c.X = 0
	}
}
