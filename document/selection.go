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

// Selection kinds.
const (
	SelectNormal = iota
	SelectLine
)

// A Selection is a range over a document anchored at Start with a
// movable Head. Line selections span whole lines regardless of the x
// coordinates.
type Selection struct {
	Start types.Cursor
	Head  types.Cursor
	Kind  int
}

// NewSelection anchors a selection at cur.
func NewSelection(cur types.Cursor, kind int) Selection {
	return Selection{Start: cur, Head: cur, Kind: kind}
}

// Range returns the effective (start, end) pair of the selection. For
// line selections the range spans from column zero of the first line
// to the full length of the last.
func (s Selection) Range(doc *Document) (types.Cursor, types.Cursor) {
	start := s.Start.Min(s.Head)
	end := s.Start.Max(s.Head)

	if s.Kind == SelectLine {
		start = types.NewCursor(0, start.Y)
		end = types.NewCursor(doc.LineCount(end.Y), end.Y)
	}
	return start, end
}

// Contains reports whether a position falls inside the selection.
// Normal selections are half-open [start, end); line selections are
// inclusive on the y axis.
func (s Selection) Contains(doc *Document, cur types.Cursor) bool {
	start, end := s.Range(doc)
	if s.Kind == SelectLine {
		return cur.Y >= start.Y && cur.Y <= end.Y
	}
	return !cur.Less(start) && cur.Less(end)
}

// Less orders selections by start position. Line selections compare
// with their effective column-zero start so two line selections on the
// same row are equal.
func (s Selection) Less(other Selection) bool {
	a := s.Start.Min(s.Head)
	b := other.Start.Min(other.Head)
	if s.Kind == SelectLine {
		a = types.NewCursor(0, a.Y)
	}
	if other.Kind == SelectLine {
		b = types.NewCursor(0, b.Y)
	}
	return a.Less(b)
}
