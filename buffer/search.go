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

package buffer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/motion"
	"github.com/mini-editor/mini/types"
)

// parseSlashed extracts the pattern from a `/pattern/` argument.
func parseSlashed(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if len(arg) < 2 || arg[0] != '/' || arg[len(arg)-1] != '/' {
		return "", fmt.Errorf("expected /pattern/, got %q", arg)
	}
	return arg[1 : len(arg)-1], nil
}

// cursorAt converts a byte offset in the \n-joined document text to a
// cursor position.
func cursorAt(text string, off int) types.Cursor {
	x, y := 0, 0
	for _, ch := range text[:off] {
		if ch == '\n' {
			y++
			x = 0
		} else {
			x++
		}
	}
	return types.NewCursor(x, y)
}

// byteOffsetOf is the inverse of cursorAt.
func byteOffsetOf(text string, cur types.Cursor) int {
	x, y := 0, 0
	for i, ch := range text {
		if y == cur.Y && x == cur.X {
			return i
		}
		if ch == '\n' {
			y++
			x = 0
		} else {
			x++
		}
	}
	return len(text)
}

// regions returns the byte ranges search and replace operate over:
// the union of the current selections, or the whole document. The
// ranges come back sorted and merged, so callers may assume ascending
// non-overlapping spans regardless of selection order.
func (b *Base) regions(text string) [][2]int {
	if len(b.Sels) == 0 {
		return [][2]int{{0, len(text)}}
	}
	out := make([][2]int, 0, len(b.Sels))
	for _, sel := range b.Sels {
		start, end := sel.Range(b.Doc)
		out = append(out, [2]int{byteOffsetOf(text, start), byteOffsetOf(text, end)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	merged := out[:1]
	for _, r := range out[1:] {
		last := &merged[len(merged)-1]
		if r[0] <= last[1] {
			if r[1] > last[1] {
				last[1] = r[1]
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Search compiles a `/pattern/` argument, collects all matches over
// the selections or the whole document, and selects the match nearest
// at or after the cursor.
func (b *Base) Search(arg string) Result {
	pattern, err := parseSlashed(arg)
	if err != nil {
		return Errorf("%v", err)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Errorf("bad pattern: %v", err)
	}

	text := b.Doc.String()
	var matches []document.Selection
	for _, region := range b.regions(text) {
		for _, m := range re.FindAllStringIndex(text[region[0]:region[1]], -1) {
			sel := document.NewSelection(cursorAt(text, region[0]+m[0]), document.SelectNormal)
			sel.Head = cursorAt(text, region[0]+m[1])
			matches = append(matches, sel)
		}
	}
	if len(matches) == 0 {
		return Info("no match")
	}

	b.Matches = matches
	b.MatchIdx = 0
	for i, m := range matches {
		if !m.Start.Less(b.Doc.Cur) {
			b.MatchIdx = i
			break
		}
	}
	b.Sels = nil
	b.selecting = false
	motion.MoveTo(b.Doc, b.View, b.Matches[b.MatchIdx].Start)
	return Info(fmt.Sprintf("%d matches", len(matches)))
}

// cycleMatch advances the current match by delta, wrapping.
func (b *Base) cycleMatch(delta int) {
	if len(b.Matches) == 0 {
		return
	}
	b.MatchIdx = (b.MatchIdx + delta + len(b.Matches)) % len(b.Matches)
	motion.MoveTo(b.Doc, b.View, b.Matches[b.MatchIdx].Start)
}

// YankText returns what a plain yank copies: the selected text, or
// the current line. Line yanks always carry their newline, even for
// empty lines.
func (b *Base) YankText() string {
	if len(b.Sels) > 0 {
		parts := make([]string, 0, len(b.Sels))
		for _, sel := range b.Sels {
			start, end := sel.Range(b.Doc)
			text := b.Doc.Range(start, end)
			if sel.Kind == document.SelectLine {
				text += "\n"
			}
			parts = append(parts, text)
		}
		return strings.Join(parts, "\n")
	}
	return b.Doc.Lines[b.Doc.Cur.Y] + "\n"
}

// SharedCommand dispatches the commands every buffer understands.
// The second return is false when the command belongs to the concrete
// buffer.
func (b *Base) SharedCommand(line string) (Result, bool) {
	cmd, args := splitCommand(line)
	switch cmd {
	case "":
		return Ok(), true
	case "q":
		return Quit(), true
	case "qq":
		return Result{Kind: ResultForceQuit}, true
	case "?":
		return Result{Kind: ResultNew, Name: "info", Text: HelpText}, true
	case "j":
		return b.jumpTo(args), true
	case "s":
		return b.Search(args), true
	case "cb":
		var idx int
		if _, err := fmt.Sscanf(args, "%d", &idx); err != nil {
			return Errorf("cb: bad index %q", args), true
		}
		return Result{Kind: ResultChange, Index: idx}, true
	case "nb":
		if args != "text" && args != "files" {
			return Errorf("nb: unknown kind %q", args), true
		}
		return Result{Kind: ResultNew, Name: args}, true
	case "lb":
		return Result{Kind: ResultList}, true
	case "log":
		return Result{Kind: ResultLog}, true
	}
	return Ok(), false
}

// jumpTo handles `j <line[:col]>`, 1-based.
func (b *Base) jumpTo(args string) Result {
	line, col := 0, 1
	if _, err := fmt.Sscanf(args, "%d:%d", &line, &col); err != nil {
		if _, err := fmt.Sscanf(args, "%d", &line); err != nil {
			return Errorf("j: bad position %q", args)
		}
	}
	motion.MoveTo(b.Doc, b.View, types.NewCursor(col-1, line-1))
	return Ok()
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, args, found := strings.Cut(line, " ")
	if !found {
		return line, ""
	}
	return cmd, strings.TrimSpace(args)
}

// HelpText is the embedded `?` / --help blob.
const HelpText = `mini

view mode
  h j k l / arrows   move        w b        words
  W B                whitespace  { }        empty lines
  J K                half page   0 $        line start / end
  g G                file start / end       .   matching bracket
  v V                select / line select   Esc clear
  y d c + motion     yank / delete / change
  yy dd cc           whole line  r<ch>      replace char
  i a I A o O        enter write mode       x   delete char
  u U                undo / redo            p   paste
  n N                next / previous match
  Space              command mode

commands
  q qq               quit / force quit
  w [path]  wq       write / write and quit
  o <path>  oo       open / force open
  j <line[:col]>     jump
  s /re/             search      r /re/repl/  replace
  ! <cmd>            run shell command
  cb <i> nb <kind>   switch / new buffer    lb  list buffers
  mk rm rm!          files buffer           log write log`
