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

package shell

import (
	"reflect"
	"testing"
)

func TestStripPlainLines(t *testing.T) {
	got := Strip([]byte("one\ntwo\nthree"))
	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCarriageReturnOverwrites(t *testing.T) {
	got := Strip([]byte("progress 10%\rprogress 99%\n"))
	want := []string{"progress 99%"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestShortOverwriteKeepsTail(t *testing.T) {
	got := Strip([]byte("abcdef\rXY\n"))
	want := []string{"XYcdef"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCSISequencesDropped(t *testing.T) {
	got := Strip([]byte("\x1b[31mred\x1b[0m plain\n"))
	want := []string{"red plain"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOSCTitleDropped(t *testing.T) {
	got := Strip([]byte("\x1b]0;window title\x07visible\n"))
	want := []string{"visible"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOSCStringTerminator(t *testing.T) {
	got := Strip([]byte("\x1b]0;title\x1b\\ok\n"))
	want := []string{"ok"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	// The two-byte terminator may straddle a chunk boundary.
	p := NewPerformer()
	p.Advance([]byte("\x1b]0;title\x1b"))
	p.Advance([]byte("\\ok\n"))
	if got := p.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("chunked: got %q, want %q", got, want)
	}
}

func TestTabExpansion(t *testing.T) {
	got := Strip([]byte("a\tb\n"))
	want := []string{"a       b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestChunkBoundaryInsideEscape(t *testing.T) {
	p := NewPerformer()
	p.Advance([]byte("ok\x1b["))
	p.Advance([]byte("32mgreen\n"))
	want := []string{"okgreen"}
	if got := p.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestChunkBoundaryInsideUTF8(t *testing.T) {
	data := []byte("héllo\n")
	p := NewPerformer()
	p.Advance(data[:2]) // splits the é sequence
	p.Advance(data[2:])
	want := []string{"héllo"}
	if got := p.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestUnfinishedLineIncluded(t *testing.T) {
	got := Strip([]byte("no newline"))
	want := []string{"no newline"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
