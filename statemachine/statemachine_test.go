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

package statemachine

import (
	"testing"
	"time"

	"github.com/mini-editor/mini/types"
)

const (
	actMove = iota
	actYankLine
	actYankWord
	actReplace
)

func testMap() CommandMap[int] {
	return CommandMap[int]{
		types.Char('h'): Simple(actMove),
		types.Char('y'): Operator(func(key types.Key) (Command[int], bool) {
			switch key.Ch {
			case 'y':
				return Simple(actYankLine), true
			case 'w':
				return Simple(actYankWord), true
			}
			return Command[int]{}, false
		}),
		types.Char('r'): Prefix(func(key types.Key) (Command[int], bool) {
			if key.Kind != types.KeyChar {
				return Command[int]{}, false
			}
			return Simple(actReplace), true
		}),
	}
}

// clock is a controllable time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time       { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func machine() (*StateMachine[int], *clock) {
	m := New(testMap())
	c := &clock{t: time.Unix(0, 0)}
	m.now = c.now
	return m, c
}

func key(ch rune) types.Input { return types.KeyInput(types.Char(ch)) }

func TestSimpleAction(t *testing.T) {
	m, _ := machine()
	res := m.Tick(key('h'))
	if res.Kind != ResultAction || res.Action != actMove {
		t.Errorf("got %+v, want move action", res)
	}
}

func TestUnmappedKeyIsInvalid(t *testing.T) {
	m, _ := machine()
	if res := m.Tick(key('z')); res.Kind != ResultInvalid {
		t.Errorf("got %+v, want invalid", res)
	}
	if m.Pending() {
		t.Error("invalid input should leave the machine in normal state")
	}
}

func TestOperatorSequence(t *testing.T) {
	m, _ := machine()
	if res := m.Tick(key('y')); res.Kind != ResultIncomplete {
		t.Fatalf("y: got %+v, want incomplete", res)
	}
	if res := m.Tick(key('w')); res.Kind != ResultAction || res.Action != actYankWord {
		t.Errorf("yw: got %+v, want yank-word", res)
	}
}

// Operator sequences persist across arbitrary pauses; only prefixes
// expire.
func TestOperatorDoesNotTimeOut(t *testing.T) {
	m, c := machine()
	m.Tick(key('y'))
	c.advance(5 * time.Second)
	for i := 0; i < 3; i++ {
		if res := m.Tick(types.TimeoutInput()); res.Kind != ResultIncomplete {
			t.Fatalf("timeout tick %d: got %+v, want incomplete", i, res)
		}
	}
	if res := m.Tick(key('y')); res.Kind != ResultAction || res.Action != actYankLine {
		t.Errorf("yy after pause: got %+v, want yank-line", res)
	}
}

func TestPrefixWithinTimeout(t *testing.T) {
	m, c := machine()
	m.Tick(key('r'))
	c.advance(Timeout / 2)
	if res := m.Tick(key('x')); res.Kind != ResultAction || res.Action != actReplace {
		t.Errorf("rx: got %+v, want replace", res)
	}
}

func TestPrefixExpiresOnTimeoutTick(t *testing.T) {
	m, c := machine()
	m.Tick(key('r'))
	c.advance(Timeout + time.Millisecond)
	if res := m.Tick(types.TimeoutInput()); res.Kind != ResultInvalid {
		t.Fatalf("got %+v, want invalid", res)
	}
	if m.Pending() {
		t.Error("expired prefix should reset the machine")
	}
}

// A key arriving after the deadline is not swallowed: it starts a
// fresh sequence.
func TestPrefixReentryAfterTimeout(t *testing.T) {
	m, c := machine()
	m.Tick(key('r'))
	c.advance(Timeout + time.Millisecond)
	if res := m.Tick(key('h')); res.Kind != ResultAction || res.Action != actMove {
		t.Errorf("got %+v, want move action from re-entry", res)
	}
}

func TestInvalidOperatorFollowupResets(t *testing.T) {
	m, _ := machine()
	m.Tick(key('y'))
	if res := m.Tick(key('q')); res.Kind != ResultInvalid {
		t.Fatalf("yq: got %+v, want invalid", res)
	}
	if res := m.Tick(key('h')); res.Kind != ResultAction {
		t.Errorf("after invalid: got %+v, want action", res)
	}
}
