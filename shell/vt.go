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

import "unicode/utf8"

// Parser states.
const (
	vtGround = iota
	vtEscape
	vtCSI
	vtOSC
)

// A Performer folds a raw pty byte stream into plain text lines.
// Carriage returns rewind the column so progress-bar style output
// overwrites in place; ANSI escape sequences are recognized and
// dropped.
type Performer struct {
	lines []string
	cur   []rune
	col   int

	state   int
	pending []byte
}

// NewPerformer creates an empty performer.
func NewPerformer() *Performer {
	return &Performer{}
}

// Advance feeds one chunk of child output.
func (p *Performer) Advance(data []byte) {
	p.pending = append(p.pending, data...)
	for len(p.pending) > 0 {
		b := p.pending[0]
		switch p.state {
		case vtEscape:
			p.pending = p.pending[1:]
			switch b {
			case '[':
				p.state = vtCSI
			case ']':
				p.state = vtOSC
			default:
				p.state = vtGround
			}
		case vtCSI:
			p.pending = p.pending[1:]
			if b >= 0x40 && b <= 0x7e {
				p.state = vtGround
			}
		case vtOSC:
			if b == 0x1b && len(p.pending) == 1 {
				// ESC may begin an ST terminator; wait for the next chunk.
				return
			}
			p.pending = p.pending[1:]
			if b == 0x07 {
				p.state = vtGround
			} else if b == 0x1b && len(p.pending) > 0 && p.pending[0] == '\\' {
				p.pending = p.pending[1:]
				p.state = vtGround
			}
		default:
			if !p.ground() {
				return
			}
		}
	}
}

// ground consumes one ground-state rune; false means an incomplete
// UTF-8 sequence is buffered for the next chunk.
func (p *Performer) ground() bool {
	b := p.pending[0]
	switch b {
	case 0x1b:
		p.pending = p.pending[1:]
		p.state = vtEscape
		return true
	case '\n':
		p.pending = p.pending[1:]
		p.lines = append(p.lines, string(p.cur))
		p.cur = p.cur[:0]
		p.col = 0
		return true
	case '\r':
		p.pending = p.pending[1:]
		p.col = 0
		return true
	case '\b':
		p.pending = p.pending[1:]
		if p.col > 0 {
			p.col--
		}
		return true
	case '\t':
		p.pending = p.pending[1:]
		p.put(' ')
		for p.col%8 != 0 {
			p.put(' ')
		}
		return true
	}

	if b < 0x20 {
		p.pending = p.pending[1:]
		return true
	}

	ch, size := utf8.DecodeRune(p.pending)
	if ch == utf8.RuneError && !utf8.FullRune(p.pending) {
		return false
	}
	p.pending = p.pending[size:]
	p.put(ch)
	return true
}

func (p *Performer) put(ch rune) {
	for p.col >= len(p.cur) {
		p.cur = append(p.cur, ' ')
	}
	p.cur[p.col] = ch
	p.col++
}

// Lines returns everything parsed so far, including the unfinished
// final line when non-empty.
func (p *Performer) Lines() []string {
	out := make([]string, len(p.lines), len(p.lines)+1)
	copy(out, p.lines)
	if len(p.cur) > 0 {
		out = append(out, string(p.cur))
	}
	return out
}

// Strip runs data through a fresh performer and returns plain lines.
func Strip(data []byte) []string {
	p := NewPerformer()
	p.Advance(data)
	return p.Lines()
}
