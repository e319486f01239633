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
	"strings"

	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/motion"
)

// applyCommand dispatches a finished command line.
func (t *TextBuffer) applyCommand(line string) Result {
	if res, handled := t.SharedCommand(line); handled {
		return res
	}
	cmd, args := splitCommand(line)
	switch cmd {
	case "w":
		return t.save(args)
	case "wq":
		res := t.save(args)
		if res.Kind == ResultError {
			return res
		}
		return Quit()
	case "o":
		next, err := OpenText(args, t.Clip)
		if err != nil {
			return Errorf("open: %v", err)
		}
		return Init(next)
	case "oo":
		return Init(ForceOpenText(args, t.Clip))
	case "r":
		return t.replaceAll(args)
	case "!":
		return t.startShell(args)
	}
	return Info(fmt.Sprintf("unknown command %q", cmd))
}

// parseReplace splits a `/pattern/replacement/` argument.
func parseReplace(arg string) (string, string, error) {
	arg = strings.TrimSpace(arg)
	if len(arg) < 3 || arg[0] != '/' || arg[len(arg)-1] != '/' {
		return "", "", fmt.Errorf("expected /pattern/replacement/, got %q", arg)
	}
	body := arg[1 : len(arg)-1]
	pattern, repl, found := strings.Cut(body, "/")
	if !found {
		return "", "", fmt.Errorf("expected /pattern/replacement/, got %q", arg)
	}
	return pattern, repl, nil
}

// replaceAll rewrites every match in the selected region (or whole
// document) and records the rewrites as one compound change, so a
// single undo reverts them all. Replacement templates may use $1-style
// back-references.
func (t *TextBuffer) replaceAll(args string) Result {
	pattern, template, err := parseReplace(args)
	if err != nil {
		return Errorf("%v", err)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Errorf("bad pattern: %v", err)
	}

	doc := t.Doc
	text := doc.String()

	var spans [][]int
	for _, region := range t.regions(text) {
		for _, m := range re.FindAllStringSubmatchIndex(text[region[0]:region[1]], -1) {
			span := make([]int, len(m))
			for i, off := range m {
				if off >= 0 {
					off += region[0]
				}
				span[i] = off
			}
			spans = append(spans, span)
		}
	}
	if len(spans) == 0 {
		return Info("no match")
	}

	// Build the rewritten text; event positions index into it.
	var out strings.Builder
	var newOffs []int
	last := 0
	for _, m := range spans {
		out.WriteString(text[last:m[0]])
		newOffs = append(newOffs, out.Len())
		out.Write(re.Expand(nil, []byte(template), []byte(text), m))
		last = m[1]
	}
	out.WriteString(text[last:])
	rewritten := out.String()

	events := make([]document.ReplaceEvent, len(spans))
	for i, m := range spans {
		events[i] = document.ReplaceEvent{
			Pos:        cursorAt(rewritten, newOffs[i]),
			DeleteData: text[m[0]:m[1]],
			InsertData: string(re.Expand(nil, []byte(template), []byte(text), m)),
		}
	}

	cur := doc.Cur
	doc.SetContents(strings.Split(rewritten, "\n"))
	doc.Edited = true
	t.record(document.Change{Kind: document.Replace, Events: events})
	t.Sels = nil
	t.Matches = nil
	motion.MoveTo(doc, t.View, cur)
	return Info(fmt.Sprintf("%d replacements", len(events)))
}
