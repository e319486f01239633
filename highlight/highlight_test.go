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

package highlight

import "testing"

func TestGoFileGetsSpans(t *testing.T) {
	lines := []string{"package main", "", "func main() {}"}
	h := New("main.go", []byte("package main\n"))
	if h == nil {
		t.Fatal("no highlighter for a .go file")
	}
	spans := h.Spans(lines, 0, len(lines))
	if len(spans[0]) == 0 {
		t.Error("no spans for the package clause")
	}
	for _, s := range spans[0] {
		if s.End <= s.Start {
			t.Errorf("empty span [%d,%d)", s.Start, s.End)
		}
	}
}

func TestNilHighlighterIsSafe(t *testing.T) {
	var h *Highlighter
	if spans := h.Spans([]string{"x"}, 0, 1); spans != nil {
		t.Errorf("nil highlighter returned spans: %v", spans)
	}
}

func TestSpansOnlyForVisibleWindow(t *testing.T) {
	lines := []string{"package main", "", "var x = 1", "var y = 2"}
	h := New("main.go", []byte("package main\n"))
	if h == nil {
		t.Fatal("no highlighter for a .go file")
	}
	spans := h.Spans(lines, 2, 3)
	if len(spans[2]) == 0 {
		t.Error("no spans inside the window")
	}
	if len(spans[0]) != 0 || len(spans[3]) != 0 {
		t.Error("spans leaked outside the window")
	}
}
