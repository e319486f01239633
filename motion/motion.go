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

// Package motion implements cursor movement primitives. Every
// primitive mutates the document cursor and keeps the viewport scroll
// tracking it; the two are always passed as a matching pair.
package motion

import (
	"strings"
	"unicode"

	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/types"
	"github.com/mini-editor/mini/viewport"
)

// Left moves the cursor n characters to the left, stopping at the
// line start.
func Left(doc *document.Document, view *viewport.Viewport, n int) {
	doc.Cur.Left(n)
	view.Track(doc)
}

// Right moves the cursor n characters to the right, stopping at the
// line end.
func Right(doc *document.Document, view *viewport.Viewport, n int) {
	doc.Cur.Right(n, doc.LineCount(doc.Cur.Y))
	view.Track(doc)
}

// Up moves the cursor n lines up. The target column is restored as
// far as the new line permits.
func Up(doc *document.Document, view *viewport.Viewport, n int) {
	doc.Cur.Up(n)
	restoreTargetX(doc)
	view.Track(doc)
}

// Down moves the cursor n lines down.
func Down(doc *document.Document, view *viewport.Viewport, n int) {
	doc.Cur.Down(n, len(doc.Lines)-1)
	restoreTargetX(doc)
	view.Track(doc)
}

// HalfPageUp moves up by half the viewport height.
func HalfPageUp(doc *document.Document, view *viewport.Viewport, n int) {
	Up(doc, view, n*view.H/2)
}

// HalfPageDown moves down by half the viewport height.
func HalfPageDown(doc *document.Document, view *viewport.Viewport, n int) {
	Down(doc, view, n*view.H/2)
}

func restoreTargetX(doc *document.Document) {
	x := doc.Cur.TargetX
	if bound := doc.LineCount(doc.Cur.Y); x > bound {
		x = bound
	}
	doc.Cur.X = x
}

func lineRunes(doc *document.Document, y int) []rune {
	return []rune(doc.Lines[y])
}

// Character classes for word motion. Words are maximal runs of
// alphanumeric characters; punctuation runs form their own tokens.
const (
	classSpace = iota
	classWord
	classPunct
)

func classOf(ch rune) int {
	switch {
	case unicode.IsSpace(ch):
		return classSpace
	case unicode.IsLetter(ch) || unicode.IsDigit(ch):
		return classWord
	default:
		return classPunct
	}
}

// NextWord jumps to the start of the n-th next word token, crossing
// line boundaries.
func NextWord(doc *document.Document, view *viewport.Viewport, n int) {
	for i := 0; i < n; i++ {
		nextWordOnce(doc)
	}
	doc.Cur.TargetX = doc.Cur.X
	view.Track(doc)
}

func nextWordOnce(doc *document.Document) {
	x, y := doc.Cur.X, doc.Cur.Y
	line := lineRunes(doc, y)

	// Step over the rest of the token under the cursor.
	if x < len(line) && classOf(line[x]) != classSpace {
		class := classOf(line[x])
		for x < len(line) && classOf(line[x]) == class {
			x++
		}
	}

	// Skip whitespace, wrapping to following lines.
	for {
		for x < len(line) && classOf(line[x]) == classSpace {
			x++
		}
		if x < len(line) {
			doc.Cur.X, doc.Cur.Y = x, y
			return
		}
		if y+1 >= len(doc.Lines) {
			// No further token: stop at the end of the last line.
			doc.Cur.X, doc.Cur.Y = len(line), y
			return
		}
		y++
		x = 0
		line = lineRunes(doc, y)
	}
}

// PrevWord jumps to the start of the n-th previous word token.
func PrevWord(doc *document.Document, view *viewport.Viewport, n int) {
	for i := 0; i < n; i++ {
		prevWordOnce(doc)
	}
	doc.Cur.TargetX = doc.Cur.X
	view.Track(doc)
}

func prevWordOnce(doc *document.Document) {
	x, y := doc.Cur.X, doc.Cur.Y
	line := lineRunes(doc, y)

	// Step back once, wrapping to the end of the previous line.
	step := func() bool {
		if x > 0 {
			x--
			return true
		}
		if y == 0 {
			return false
		}
		y--
		line = lineRunes(doc, y)
		x = len(line)
		return true
	}

	if !step() {
		return
	}

	// Skip whitespace backwards.
	for x >= len(line) || classOf(line[x]) == classSpace {
		if !step() {
			doc.Cur.X, doc.Cur.Y = 0, 0
			return
		}
	}

	// Walk to the start of the token.
	class := classOf(line[x])
	for x > 0 && classOf(line[x-1]) == class {
		x--
	}
	doc.Cur.X, doc.Cur.Y = x, y
}

// NextWhitespace jumps to the next whitespace character.
func NextWhitespace(doc *document.Document, view *viewport.Viewport, n int) {
	for i := 0; i < n; i++ {
		x, y := doc.Cur.X, doc.Cur.Y
		line := lineRunes(doc, y)
		x++
		for {
			if x < len(line) && classOf(line[x]) == classSpace {
				doc.Cur.X, doc.Cur.Y = x, y
				break
			}
			if x >= len(line) {
				if y+1 >= len(doc.Lines) {
					break
				}
				y++
				x = 0
				line = lineRunes(doc, y)
				continue
			}
			x++
		}
	}
	doc.Cur.TargetX = doc.Cur.X
	view.Track(doc)
}

// PrevWhitespace jumps to the previous whitespace character.
func PrevWhitespace(doc *document.Document, view *viewport.Viewport, n int) {
	for i := 0; i < n; i++ {
		x, y := doc.Cur.X, doc.Cur.Y
		line := lineRunes(doc, y)
		for {
			x--
			if x < 0 {
				if y == 0 {
					break
				}
				y--
				line = lineRunes(doc, y)
				x = len(line)
				continue
			}
			if x < len(line) && classOf(line[x]) == classSpace {
				doc.Cur.X, doc.Cur.Y = x, y
				break
			}
		}
	}
	doc.Cur.TargetX = doc.Cur.X
	view.Track(doc)
}

// NextEmptyLine jumps to the next empty line.
func NextEmptyLine(doc *document.Document, view *viewport.Viewport, n int) {
	for i := 0; i < n; i++ {
		for y := doc.Cur.Y + 1; y < len(doc.Lines); y++ {
			if len(doc.Lines[y]) == 0 {
				doc.Cur.X, doc.Cur.Y = 0, y
				break
			}
		}
	}
	doc.Cur.TargetX = doc.Cur.X
	view.Track(doc)
}

// PrevEmptyLine jumps to the previous empty line.
func PrevEmptyLine(doc *document.Document, view *viewport.Viewport, n int) {
	for i := 0; i < n; i++ {
		for y := doc.Cur.Y - 1; y >= 0; y-- {
			if len(doc.Lines[y]) == 0 {
				doc.Cur.X, doc.Cur.Y = 0, y
				break
			}
		}
	}
	doc.Cur.TargetX = doc.Cur.X
	view.Track(doc)
}

// BeginningOfLine jumps to column zero.
func BeginningOfLine(doc *document.Document, view *viewport.Viewport) {
	Left(doc, view, doc.Cur.X)
}

// EndOfLine jumps past the last character of the line.
func EndOfLine(doc *document.Document, view *viewport.Viewport) {
	Right(doc, view, doc.LineCount(doc.Cur.Y)-doc.Cur.X)
}

// BeginningOfFile jumps to (0, 0).
func BeginningOfFile(doc *document.Document, view *viewport.Viewport) {
	doc.Cur = types.NewCursor(0, 0)
	view.Track(doc)
}

// EndOfFile jumps past the last character of the last line.
func EndOfFile(doc *document.Document, view *viewport.Viewport) {
	y := len(doc.Lines) - 1
	doc.Cur = types.NewCursor(doc.LineCount(y), y)
	view.Track(doc)
}

// MoveTo places the cursor at pos, clamped into the document, keeping
// the viewport in step.
func MoveTo(doc *document.Document, view *viewport.Viewport, pos types.Cursor) {
	if pos.Y >= len(doc.Lines) {
		pos.Y = len(doc.Lines) - 1
	}
	if pos.Y < 0 {
		pos.Y = 0
	}
	if bound := doc.LineCount(pos.Y); pos.X > bound {
		pos.X = bound
	}
	if pos.X < 0 {
		pos.X = 0
	}
	doc.Cur = types.NewCursor(pos.X, pos.Y)
	view.Track(doc)
}

// MatchingOpposite jumps to the bracket matching the one under the
// cursor, if any.
func MatchingOpposite(doc *document.Document, view *viewport.Viewport) {
	pos, ok := findMatchingBracket(doc)
	if !ok {
		return
	}
	MoveTo(doc, view, pos)
}

func findMatchingBracket(doc *document.Document) (types.Cursor, bool) {
	cur := doc.Cur
	line := lineRunes(doc, cur.Y)
	if cur.X >= len(line) {
		return types.Cursor{}, false
	}

	var opening, closing rune
	forward := true
	switch line[cur.X] {
	case '(', ')':
		opening, closing = '(', ')'
		forward = line[cur.X] == '('
	case '[', ']':
		opening, closing = '[', ']'
		forward = line[cur.X] == '['
	case '{', '}':
		opening, closing = '{', '}'
		forward = line[cur.X] == '{'
	case '<', '>':
		opening, closing = '<', '>'
		forward = line[cur.X] == '<'
	default:
		return types.Cursor{}, false
	}

	depth := 1
	if forward {
		for y := cur.Y; y < len(doc.Lines); y++ {
			runes := lineRunes(doc, y)
			start := 0
			if y == cur.Y {
				start = cur.X + 1
			}
			for x := start; x < len(runes); x++ {
				switch runes[x] {
				case opening:
					depth++
				case closing:
					depth--
				}
				if depth == 0 {
					return types.NewCursor(x, y), true
				}
			}
		}
	} else {
		for y := cur.Y; y >= 0; y-- {
			runes := lineRunes(doc, y)
			start := len(runes) - 1
			if y == cur.Y {
				start = cur.X - 1
			}
			for x := start; x >= 0; x-- {
				switch runes[x] {
				case closing:
					depth++
				case opening:
					depth--
				}
				if depth == 0 {
					return types.NewCursor(x, y), true
				}
			}
		}
	}
	return types.Cursor{}, false
}

// EndPos computes the cursor resulting from inserting text at start.
func EndPos(start types.Cursor, text string) types.Cursor {
	breaks := strings.Count(text, "\n")
	if breaks == 0 {
		return types.NewCursor(start.X+len([]rune(text)), start.Y)
	}
	tail := text[strings.LastIndexByte(text, '\n')+1:]
	return types.NewCursor(len([]rune(tail)), start.Y+breaks)
}
