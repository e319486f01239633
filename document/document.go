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

// Package document implements the line-oriented editable text model,
// its reversible change history, and selections over it.
package document

import (
	"bufio"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mini-editor/mini/types"
)

// A Document is an ordered sequence of lines plus a primary cursor.
// The line slice is never empty; an empty document holds one empty
// line. All offsets are in characters, not bytes.
type Document struct {
	Lines  []string
	Cur    types.Cursor
	Edited bool
}

// New creates a document from a set of lines. A nil or empty content
// slice yields a single empty line.
func New(content []string) *Document {
	doc := &Document{Lines: []string{""}}
	if len(content) > 0 {
		doc.Lines = append(doc.Lines[:0], content...)
	}
	return doc
}

// FromString creates a document by splitting a string on newlines.
func FromString(content string) *Document {
	if content == "" {
		return New(nil)
	}
	return New(strings.Split(content, "\n"))
}

// Read loads a document from a file.
func Read(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return New(lines), nil
}

// byteIndex converts a character offset on a line to a byte offset.
func byteIndex(line string, x int) int {
	for i := range line {
		if x == 0 {
			return i
		}
		x--
	}
	return len(line)
}

// LineCount returns the number of characters on line y.
func (d *Document) LineCount(y int) int {
	if y < 0 || y >= len(d.Lines) {
		return 0
	}
	return utf8.RuneCountInString(d.Lines[y])
}

// SetContents replaces the document contents and resets the cursor.
func (d *Document) SetContents(content []string) {
	d.Lines = d.Lines[:0]
	if len(content) == 0 {
		d.Lines = append(d.Lines, "")
	} else {
		d.Lines = append(d.Lines, content...)
	}
	d.Cur = types.NewCursor(0, 0)
	d.Edited = false
}

// Clear resets the document to a single empty line.
func (d *Document) Clear() {
	d.SetContents(nil)
}

// InsertLine inserts a line at the cursor row.
func (d *Document) InsertLine(line string) {
	d.InsertLineAt(d.Cur.Y, line)
}

// InsertLineAt inserts a line at row y.
func (d *Document) InsertLineAt(y int, line string) {
	d.Lines = append(d.Lines, "")
	copy(d.Lines[y+1:], d.Lines[y:])
	d.Lines[y] = line
	d.Edited = true
}

// RemoveLine pops the line at the cursor row.
func (d *Document) RemoveLine() string {
	return d.RemoveLineAt(d.Cur.Y)
}

// RemoveLineAt pops the line at row y. The document never becomes
// empty; removing the last line leaves one empty line behind.
func (d *Document) RemoveLineAt(y int) string {
	line := d.Lines[y]
	d.Lines = append(d.Lines[:y], d.Lines[y+1:]...)
	if len(d.Lines) == 0 {
		d.Lines = append(d.Lines, "")
	}
	d.Edited = true
	return line
}

// WriteChar inserts a character at the cursor.
func (d *Document) WriteChar(ch rune) {
	d.WriteCharAt(d.Cur.X, d.Cur.Y, ch)
}

// WriteCharAt inserts a character at (x, y).
func (d *Document) WriteCharAt(x, y int, ch rune) {
	line := d.Lines[y]
	idx := byteIndex(line, x)
	d.Lines[y] = line[:idx] + string(ch) + line[idx:]
	d.Edited = true
}

// DeleteChar removes the character under the cursor and returns it.
func (d *Document) DeleteChar() (rune, bool) {
	return d.DeleteCharAt(d.Cur.X, d.Cur.Y)
}

// DeleteCharAt removes the character at (x, y). Past-end positions
// are a no-op.
func (d *Document) DeleteCharAt(x, y int) (rune, bool) {
	if y < 0 || y >= len(d.Lines) || x < 0 || x >= d.LineCount(y) {
		return 0, false
	}
	line := d.Lines[y]
	idx := byteIndex(line, x)
	ch, size := utf8.DecodeRuneInString(line[idx:])
	d.Lines[y] = line[:idx] + line[idx+size:]
	d.Edited = true
	return ch, true
}

// WriteStr inserts a string at the cursor. The string may contain
// newlines which split the current line at the insertion point.
func (d *Document) WriteStr(s string) {
	d.WriteStrAt(d.Cur.X, d.Cur.Y, s)
}

// WriteStrAt inserts a string at (x, y), splitting on newlines.
func (d *Document) WriteStrAt(x, y int, s string) {
	line := d.Lines[y]
	idx := byteIndex(line, x)
	head, tail := line[:idx], line[idx:]

	parts := strings.Split(s, "\n")
	if len(parts) == 1 {
		d.Lines[y] = head + s + tail
		d.Edited = true
		return
	}

	d.Lines[y] = head + parts[0]
	rest := make([]string, len(parts)-1)
	copy(rest, parts[1:])
	rest[len(rest)-1] += tail

	d.Lines = append(d.Lines, rest...)
	copy(d.Lines[y+1+len(rest):], d.Lines[y+1:])
	copy(d.Lines[y+1:], rest)
	d.Edited = true
}

// WriteTo writes the document to a file, one trailing newline per
// line, and truncates any stale bytes beyond the new size. Clears the
// edited flag on success.
func (d *Document) WriteTo(f *os.File) error {
	var size int64
	for _, line := range d.Lines {
		size += int64(len(line)) + 1
	}
	if err := f.Truncate(size); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	for _, line := range d.Lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	d.Edited = false
	return nil
}

// String joins the lines with newlines.
func (d *Document) String() string {
	return strings.Join(d.Lines, "\n")
}
