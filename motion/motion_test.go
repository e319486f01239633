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

package motion

import (
	"testing"

	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/types"
	"github.com/mini-editor/mini/viewport"
)

func setup(text string) (*document.Document, *viewport.Viewport) {
	doc := document.FromString(text)
	view := viewport.New(0, 0, 80, 22)
	view.Track(doc)
	return doc, view
}

func TestWordMotion(t *testing.T) {
	doc, view := setup("one  two\nthree")

	NextWord(doc, view, 1)
	if !doc.Cur.Equal(types.NewCursor(5, 0)) {
		t.Fatalf("w: got (%d,%d), want (5,0)", doc.Cur.X, doc.Cur.Y)
	}
	NextWord(doc, view, 1)
	if !doc.Cur.Equal(types.NewCursor(0, 1)) {
		t.Fatalf("ww: got (%d,%d), want (0,1)", doc.Cur.X, doc.Cur.Y)
	}
	PrevWord(doc, view, 1)
	if !doc.Cur.Equal(types.NewCursor(5, 0)) {
		t.Fatalf("b: got (%d,%d), want (5,0)", doc.Cur.X, doc.Cur.Y)
	}
}

func TestNextWordStopsAtEndOfFile(t *testing.T) {
	doc, view := setup("last")
	NextWord(doc, view, 3)
	if !doc.Cur.Equal(types.NewCursor(4, 0)) {
		t.Errorf("got (%d,%d), want (4,0)", doc.Cur.X, doc.Cur.Y)
	}
}

func TestMatchingBracket(t *testing.T) {
	doc, view := setup("fn f() { return (1+2); }")
	MoveTo(doc, view, types.NewCursor(7, 0))

	MatchingOpposite(doc, view)
	if !doc.Cur.Equal(types.NewCursor(23, 0)) {
		t.Fatalf("forward: got (%d,%d), want (23,0)", doc.Cur.X, doc.Cur.Y)
	}
	MatchingOpposite(doc, view)
	if !doc.Cur.Equal(types.NewCursor(7, 0)) {
		t.Fatalf("backward: got (%d,%d), want (7,0)", doc.Cur.X, doc.Cur.Y)
	}
}

func TestMatchingBracketTracksDepth(t *testing.T) {
	doc, view := setup("{ a { b } c }")
	MatchingOpposite(doc, view)
	if !doc.Cur.Equal(types.NewCursor(12, 0)) {
		t.Errorf("got (%d,%d), want (12,0)", doc.Cur.X, doc.Cur.Y)
	}
}

func TestTargetXAcrossShortLine(t *testing.T) {
	doc, view := setup("a long line\nab\nanother long")
	MoveTo(doc, view, types.NewCursor(8, 0))

	Down(doc, view, 1)
	if doc.Cur.X != 2 {
		t.Fatalf("short line: got x=%d, want 2", doc.Cur.X)
	}
	Down(doc, view, 1)
	if doc.Cur.X != 8 {
		t.Errorf("restored: got x=%d, want 8", doc.Cur.X)
	}
}

func TestEndPosMatchesWriteStr(t *testing.T) {
	for _, text := range []string{"abc", "a\nbc", "\n", "x\ny\nz", ""} {
		doc, _ := setup("prefix")
		start := types.NewCursor(3, 0)
		doc.WriteStrAt(start.X, start.Y, text)

		got := EndPos(start, text)
		// The insertion cursor lands where the inserted text ends.
		want := start
		for _, ch := range text {
			if ch == '\n' {
				want = types.NewCursor(0, want.Y+1)
			} else {
				want = types.NewCursor(want.X+1, want.Y)
			}
		}
		if !got.Equal(want) {
			t.Errorf("EndPos(%q): got (%d,%d), want (%d,%d)", text, got.X, got.Y, want.X, want.Y)
		}
	}
}

func TestEmptyLineJumps(t *testing.T) {
	doc, view := setup("a\n\nb\n\nc")
	NextEmptyLine(doc, view, 1)
	if doc.Cur.Y != 1 {
		t.Fatalf("next: got y=%d, want 1", doc.Cur.Y)
	}
	NextEmptyLine(doc, view, 1)
	if doc.Cur.Y != 3 {
		t.Fatalf("next again: got y=%d, want 3", doc.Cur.Y)
	}
	PrevEmptyLine(doc, view, 1)
	if doc.Cur.Y != 1 {
		t.Errorf("prev: got y=%d, want 1", doc.Cur.Y)
	}
}
