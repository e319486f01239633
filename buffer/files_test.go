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
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mini-editor/mini/clipboard"
	"github.com/mini-editor/mini/types"
)

func testDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestFilesListing(t *testing.T) {
	dir := testDir(t)
	f, err := NewFiles(dir, &clipboard.Memory{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"..", "a.txt", "b.txt", "sub/"}
	if !reflect.DeepEqual(f.Doc.Lines, want) {
		t.Errorf("listing %q, want %q", f.Doc.Lines, want)
	}
}

func TestFilesDescendAndPop(t *testing.T) {
	dir := testDir(t)
	f, err := NewFiles(dir, &clipboard.Memory{})
	if err != nil {
		t.Fatal(err)
	}

	feed(f, "jjj") // sub/
	press(f, types.KeyEnter)
	if f.dir != filepath.Join(dir, "sub") {
		t.Fatalf("descend: dir %q", f.dir)
	}

	// ".." is the first line after a refresh.
	press(f, types.KeyEnter)
	if f.dir != dir {
		t.Errorf("pop: dir %q, want %q", f.dir, dir)
	}
}

func TestFilesOpenReplacesSelf(t *testing.T) {
	dir := testDir(t)
	f, err := NewFiles(dir, &clipboard.Memory{})
	if err != nil {
		t.Fatal(err)
	}

	feed(f, "jj") // b.txt
	res := press(f, types.KeyEnter)
	if res.Kind != ResultInit {
		t.Fatalf("got result %d, want Init", res.Kind)
	}
	tb, ok := res.Buffer.(*TextBuffer)
	if !ok {
		t.Fatal("replacement is not a text buffer")
	}
	if tb.Doc.String() != "hello" {
		t.Errorf("opened %q", tb.Doc.String())
	}
}

func TestFilesMkAndRm(t *testing.T) {
	dir := testDir(t)
	f, err := NewFiles(dir, &clipboard.Memory{})
	if err != nil {
		t.Fatal(err)
	}

	f.applyCommand("mk c.txt")
	if _, err := os.Stat(filepath.Join(dir, "c.txt")); err != nil {
		t.Errorf("mk file: %v", err)
	}
	f.applyCommand("mk d/")
	if info, err := os.Stat(filepath.Join(dir, "d")); err != nil || !info.IsDir() {
		t.Errorf("mk dir: %v", err)
	}

	f.applyCommand("rm c.txt")
	if _, err := os.Stat(filepath.Join(dir, "c.txt")); !os.IsNotExist(err) {
		t.Errorf("rm: file still present")
	}

	// Plain rm refuses a non-empty directory; rm! recurses.
	if err := os.WriteFile(filepath.Join(dir, "d", "x"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if res := f.applyCommand("rm d"); res.Kind != ResultError {
		t.Error("rm on a non-empty directory should fail")
	}
	if res := f.applyCommand("rm! d"); res.Kind == ResultError {
		t.Errorf("rm! failed: %s", res.Text)
	}
	if _, err := os.Stat(filepath.Join(dir, "d")); !os.IsNotExist(err) {
		t.Error("rm!: directory still present")
	}
}

func TestFilesRemovePrefill(t *testing.T) {
	dir := testDir(t)
	f, err := NewFiles(dir, &clipboard.Memory{})
	if err != nil {
		t.Fatal(err)
	}
	feed(f, "jd") // a.txt
	if f.Mode != ModeCommand || f.CmdDoc.Lines[0] != "rm a.txt" {
		t.Errorf("prefill: mode %d, cmd %q", f.Mode, f.CmdDoc.Lines[0])
	}
}

func TestInfoBufferDismiss(t *testing.T) {
	b := NewInfo("info", "line one\nline two", &clipboard.Memory{})

	if res := feed(b, "J"); res.Kind != ResultOk {
		t.Errorf("J should scroll, got %d", res.Kind)
	}
	if res := feed(b, "Y"); res.Kind != ResultOk && res.Kind != ResultInfo {
		t.Errorf("Y should copy, got %d", res.Kind)
	}
	if got, _ := b.Clip.Get(); got != "line one\nline two" {
		t.Errorf("clipboard %q", got)
	}
	if res := feed(b, "x"); res.Kind != ResultQuit {
		t.Errorf("any other key should dismiss, got %d", res.Kind)
	}
}

func TestManagerQuitGuard(t *testing.T) {
	tb := viewText("x")
	feed(tb, "x") // make it dirty
	m := NewManager(t.TempDir(), &clipboard.Memory{}, tb)

	feed(tb, " q")
	if alive := m.Tick(types.KeyInput(types.Key{Kind: types.KeyEnter})); !alive {
		t.Fatal("quit with unsaved changes should be suppressed")
	}
	if tb.Message == "" || !tb.IsError {
		t.Error("suppressed quit should surface an error message")
	}

	feed(tb, " qq")
	if alive := m.Tick(types.KeyInput(types.Key{Kind: types.KeyEnter})); alive {
		t.Error("force quit should close the last buffer")
	}
}

func TestManagerInfoBufferFlow(t *testing.T) {
	tb := viewText("x")
	m := NewManager(t.TempDir(), &clipboard.Memory{}, tb)

	feed(tb, " ?")
	m.Tick(types.KeyInput(types.Key{Kind: types.KeyEnter}))
	if m.Active().Kind() != "info" {
		t.Fatalf("? should open an info buffer, active is %s", m.Active().Kind())
	}

	// Dismissing returns to the previous buffer.
	m.Tick(types.KeyInput(types.Char('x')))
	if m.Active() != Buffer(tb) {
		t.Errorf("dismiss should reactivate the text buffer, active is %s", m.Active().Kind())
	}
}

func TestManagerLog(t *testing.T) {
	dir := t.TempDir()
	tb := viewText("x")
	m := NewManager(dir, &clipboard.Memory{}, tb)

	m.deliverInfo("first message")
	feed(tb, " log")
	m.Tick(types.KeyInput(types.Key{Kind: types.KeyEnter}))

	data, err := os.ReadFile(filepath.Join(dir, "mini.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
