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
	"strings"

	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/motion"
	"github.com/mini-editor/mini/shell"
	"github.com/mini-editor/mini/types"
)

// startShell launches `! <cmd>` on a pty and enters the intercepting
// shell sub-mode.
func (t *TextBuffer) startShell(cmdline string) Result {
	if cmdline == "" {
		return Errorf("!: missing command")
	}
	child, err := shell.Run(cmdline, t.View.BuffW(), t.View.H)
	if err != nil {
		return Errorf("!: %v", err)
	}
	t.child = child
	t.childName = cmdline
	t.vt = shell.NewPerformer()
	t.Mode = ModeShell
	return Ok()
}

// shellTick drains child output without blocking and forwards keys
// to the child. Ctrl-Q cancels; EOF ends the sub-mode and appends the
// output to the document.
func (t *TextBuffer) shellTick(input types.Input) Result {
drain:
	for {
		select {
		case ev, ok := <-t.child.Events:
			if !ok || ev.Kind == shell.EOF {
				return t.finishShell()
			}
			t.vt.Advance(ev.Data)
			t.MarkRender()
		default:
			break drain
		}
	}

	if input.Timeout {
		return Ok()
	}
	key := input.Key
	if key.Kind == types.KeyCtrl && key.Ch == 'q' {
		t.child.Kill()
		// Pick up whatever the reader already queued.
		for ev := range t.child.Events {
			if ev.Kind == shell.Data {
				t.vt.Advance(ev.Data)
			}
		}
		return t.finishShell()
	}
	if err := t.child.Write(key); err != nil {
		t.SetError("shell: " + err.Error())
	}
	return Ok()
}

// finishShell appends the parsed output below the cursor line and
// returns to view mode.
func (t *TextBuffer) finishShell() Result {
	t.child.Kill()
	t.child = nil
	t.Mode = ModeView
	t.MarkRender()

	lines := t.vt.Lines()
	t.vt = nil
	if len(lines) == 0 {
		return Info("! " + t.childName + ": no output")
	}

	doc := t.Doc
	pos := types.NewCursor(doc.LineCount(doc.Cur.Y), doc.Cur.Y)
	data := "\n" + strings.Join(lines, "\n")
	t.record(document.Change{Kind: document.Insert, Pos: pos, Data: data})
	doc.WriteStrAt(pos.X, pos.Y, data)
	motion.MoveTo(doc, t.View, types.NewCursor(0, pos.Y+1))
	return Ok()
}
