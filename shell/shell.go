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

// Package shell runs a child command on a pseudo-terminal and streams
// its output to the main loop through a channel. A background reader
// goroutine owns the read side; the main thread drains the channel
// without blocking during its tick.
package shell

import (
	"os"
	"os/exec"

	"github.com/creack/pty"

	"github.com/mini-editor/mini/types"
)

// Event kinds.
const (
	Data = iota
	EOF
)

// An Event is one chunk of child output, or the end of it.
type Event struct {
	Kind int
	Data []byte
}

// A Command is a running child process on a pty.
type Command struct {
	cmd    *exec.Cmd
	tty    *os.File
	Events chan Event
}

// Run starts command under /bin/sh on a pty sized to the buffer area.
func Run(command string, w, h int) (*Command, error) {
	cmd := exec.Command("/bin/sh", "-c", command)
	tty, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(h),
		Cols: uint16(w),
	})
	if err != nil {
		return nil, err
	}

	c := &Command{cmd: cmd, tty: tty, Events: make(chan Event, 64)}
	go c.read()
	return c, nil
}

func (c *Command) read() {
	buf := make([]byte, 4096)
	for {
		n, err := c.tty.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			c.Events <- Event{Kind: Data, Data: data}
		}
		if err != nil {
			// A pty read error is the normal end-of-output signal.
			c.Events <- Event{Kind: EOF}
			close(c.Events)
			return
		}
	}
}

// Write forwards a key to the child's stdin, encoding specials the
// way a terminal would.
func (c *Command) Write(key types.Key) error {
	var data []byte
	switch key.Kind {
	case types.KeyChar:
		data = []byte(string(key.Ch))
	case types.KeyCtrl:
		data = []byte{byte(key.Ch-'a') + 1}
	case types.KeyEnter:
		data = []byte{'\r'}
	case types.KeyBackspace:
		data = []byte{0x7f}
	case types.KeyTab:
		data = []byte{'\t'}
	case types.KeyEsc:
		data = []byte{0x1b}
	case types.KeyArrowUp:
		data = []byte("\x1b[A")
	case types.KeyArrowDown:
		data = []byte("\x1b[B")
	case types.KeyArrowRight:
		data = []byte("\x1b[C")
	case types.KeyArrowLeft:
		data = []byte("\x1b[D")
	default:
		return nil
	}
	_, err := c.tty.Write(data)
	return err
}

// Kill terminates the child and releases the pty. Safe to call after
// the child has already exited.
func (c *Command) Kill() {
	if c.cmd.Process != nil {
		c.cmd.Process.Kill()
	}
	c.tty.Close()
	c.cmd.Wait()
}
