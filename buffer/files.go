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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mini-editor/mini/clipboard"
	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/statemachine"
	"github.com/mini-editor/mini/types"
)

// A FilesBuffer lists a directory and navigates the tree.
type FilesBuffer struct {
	Base

	dir    string
	viewSM *statemachine.StateMachine[Action]
}

// NewFiles opens a listing of dir.
func NewFiles(dir string, clip clipboard.Clipboard) (*FilesBuffer, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	f := &FilesBuffer{
		Base: NewBase(document.New(nil), clip, false),
		dir:  abs,
	}
	f.viewSM = statemachine.New(f.viewMap())
	if err := f.refresh(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FilesBuffer) Kind() string { return "files" }
func (f *FilesBuffer) Name() string { return f.dir }

func (f *FilesBuffer) viewMap() statemachine.CommandMap[Action] {
	m := f.BaseViewMap()
	m[types.Key{Kind: types.KeyEnter}] = statemachine.Simple(act(ActSelectEntry))
	m[types.Char('R')] = statemachine.Simple(act(ActRefresh))
	m[types.Char('d')] = statemachine.Simple(act(ActPrefillRemove))
	m[types.Char('D')] = statemachine.Simple(act(ActPrefillRemoveForce))
	m[types.Char('y')] = statemachine.Simple(act(ActYank))
	return m
}

// refresh rereads the directory. Entries are sorted by name; dirs are
// annotated with a slash, symlinks with their target.
func (f *FilesBuffer) refresh() error {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	lines := []string{".."}
	for _, entry := range entries {
		line := entry.Name()
		switch {
		case entry.IsDir():
			line += "/"
		case entry.Type()&os.ModeSymlink != 0:
			if target, err := os.Readlink(filepath.Join(f.dir, entry.Name())); err == nil {
				line += " -> " + target
			}
		}
		lines = append(lines, line)
	}

	cur := f.Doc.Cur
	f.Doc.SetContents(lines)
	if cur.Y < len(lines) {
		f.Doc.Cur = types.NewCursor(0, cur.Y)
	}
	f.View.Track(f.Doc)
	return nil
}

// entry returns the bare name on the cursor line, annotations
// stripped.
func (f *FilesBuffer) entry() string {
	line := f.Doc.Lines[f.Doc.Cur.Y]
	if name, _, found := strings.Cut(line, " -> "); found {
		return name
	}
	return strings.TrimSuffix(line, "/")
}

// Tick implements Buffer.
func (f *FilesBuffer) Tick(input types.Input) Result {
	f.ClearTick(input)
	if f.Mode == ModeCommand {
		return f.CommandTick(input, f.applyCommand)
	}

	res := f.viewSM.Tick(input)
	if res.Kind != statemachine.ResultAction {
		return Ok()
	}
	if r, handled := f.Perform(res.Action); handled {
		return r
	}

	switch res.Action.Kind {
	case ActSelectEntry:
		return f.selectEntry()
	case ActRefresh:
		if err := f.refresh(); err != nil {
			return Errorf("refresh: %v", err)
		}
	case ActPrefillRemove:
		f.PrefillCommand("rm " + f.entry())
	case ActPrefillRemoveForce:
		f.PrefillCommand("rm! " + f.entry())
	case ActYank:
		if err := f.Clip.Set(f.YankText()); err != nil {
			return Errorf("clipboard: %v", err)
		}
	}
	return Ok()
}

// selectEntry pops, descends, or opens the entry on the cursor line.
func (f *FilesBuffer) selectEntry() Result {
	name := f.entry()
	if name == ".." {
		f.dir = filepath.Dir(f.dir)
		if err := f.refresh(); err != nil {
			return Errorf("%v", err)
		}
		return Ok()
	}

	path := filepath.Join(f.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return Errorf("%v", err)
	}
	if info.IsDir() {
		f.dir = path
		if err := f.refresh(); err != nil {
			return Errorf("%v", err)
		}
		return Ok()
	}

	next, err := OpenText(path, f.Clip)
	if err != nil {
		return Errorf("open: %v", err)
	}
	return Init(next)
}

func (f *FilesBuffer) applyCommand(line string) Result {
	if res, handled := f.SharedCommand(line); handled {
		return res
	}
	cmd, args := splitCommand(line)
	switch cmd {
	case "mk":
		return f.make(args)
	case "rm":
		return f.remove(args, false)
	case "rm!":
		return f.remove(args, true)
	}
	return Info(fmt.Sprintf("unknown command %q", cmd))
}

// make creates a file, or a directory when the path ends in a slash.
func (f *FilesBuffer) make(args string) Result {
	if args == "" {
		return Errorf("mk: missing path")
	}
	path := filepath.Join(f.dir, args)
	if strings.HasSuffix(args, "/") {
		if err := os.MkdirAll(path, 0755); err != nil {
			return Errorf("mk: %v", err)
		}
	} else {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err != nil {
			return Errorf("mk: %v", err)
		}
		file.Close()
	}
	if err := f.refresh(); err != nil {
		return Errorf("%v", err)
	}
	return Info("created " + args)
}

// remove deletes an entry; the forced form recurses into directories.
func (f *FilesBuffer) remove(args string, force bool) Result {
	name := args
	if name == "" {
		name = f.entry()
	}
	if name == ".." || name == "" {
		return Errorf("rm: nothing selected")
	}
	path := filepath.Join(f.dir, name)

	if force {
		info, err := os.Stat(path)
		if err != nil {
			return Errorf("rm!: %v", err)
		}
		if !info.IsDir() {
			return Errorf("rm!: %s is not a directory", name)
		}
		if err := os.RemoveAll(path); err != nil {
			return Errorf("rm!: %v", err)
		}
	} else if err := os.Remove(path); err != nil {
		return Errorf("rm: %v", err)
	}

	if err := f.refresh(); err != nil {
		return Errorf("%v", err)
	}
	return Info("removed " + name)
}

// Render implements Buffer.
func (f *FilesBuffer) Render(disp *display.Display) {
	f.View.Render(f.Doc, disp, f.Style(nil))
	f.RenderChrome(disp, f.dir, "", fmt.Sprintf("%d entries", len(f.Doc.Lines)-1))
	if f.Mode != ModeCommand {
		f.View.RenderCursor(f.Doc, disp, types.CursorSteadyBlock)
	}
	f.Rendered()
}
