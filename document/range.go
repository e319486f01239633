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

import (
	"strings"

	"github.com/mini-editor/mini/types"
)

// Range extracts the text in [start, end) with newline separators
// between lines. Out-of-order arguments are swapped.
func (d *Document) Range(start, end types.Cursor) string {
	if end.Less(start) {
		start, end = end, start
	}
	if start.Y >= len(d.Lines) {
		return ""
	}
	if end.Y >= len(d.Lines) {
		end = types.NewCursor(d.LineCount(len(d.Lines)-1), len(d.Lines)-1)
	}

	if start.Y == end.Y {
		line := d.Lines[start.Y]
		return line[byteIndex(line, start.X):byteIndex(line, end.X)]
	}

	var b strings.Builder
	first := d.Lines[start.Y]
	b.WriteString(first[byteIndex(first, start.X):])
	for y := start.Y + 1; y < end.Y; y++ {
		b.WriteByte('\n')
		b.WriteString(d.Lines[y])
	}
	last := d.Lines[end.Y]
	b.WriteByte('\n')
	b.WriteString(last[:byteIndex(last, end.X)])
	return b.String()
}

// RemoveRange deletes the text in [start, end). For a multi-line range
// the tail of the end line is joined onto the truncated start line and
// the lines between drop.
func (d *Document) RemoveRange(start, end types.Cursor) {
	if end.Less(start) {
		start, end = end, start
	}
	if start.Y >= len(d.Lines) {
		return
	}
	if end.Y >= len(d.Lines) {
		end = types.NewCursor(d.LineCount(len(d.Lines)-1), len(d.Lines)-1)
	}

	if start.Y == end.Y {
		line := d.Lines[start.Y]
		d.Lines[start.Y] = line[:byteIndex(line, start.X)] + line[byteIndex(line, end.X):]
		d.Edited = true
		return
	}

	first := d.Lines[start.Y]
	last := d.Lines[end.Y]
	d.Lines[start.Y] = first[:byteIndex(first, start.X)] + last[byteIndex(last, end.X):]
	d.Lines = append(d.Lines[:start.Y+1], d.Lines[end.Y+1:]...)
	d.Edited = true
}
