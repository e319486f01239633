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
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mini-editor/mini/clipboard"
	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/types"
)

// The Manager multiplexes buffers: it routes ticks to the active one
// and interprets the results. Buffers never see the manager; all
// effects travel through Result values.
type Manager struct {
	buffers  []Buffer
	active   int
	previous int

	dir  string
	clip clipboard.Clipboard

	messages []string
	force    bool
	w, h     int
}

// NewManager starts with one buffer. dir is the launch directory,
// used for the log file.
func NewManager(dir string, clip clipboard.Clipboard, first Buffer) *Manager {
	return &Manager{
		buffers: []Buffer{first},
		dir:     dir,
		clip:    clip,
		w:       80,
		h:       24,
	}
}

// Active returns the buffer receiving input.
func (m *Manager) Active() Buffer { return m.buffers[m.active] }

// Tick feeds one input to the active buffer and applies the returned
// command. It reports false when the last buffer closed.
func (m *Manager) Tick(input types.Input) bool {
	res := m.Active().Tick(input)

	switch res.Kind {
	case ResultQuit:
		if err := m.Active().CanQuit(); err != nil {
			m.deliverError(err.Error())
			break
		}
		m.closeActive()
	case ResultForceQuit:
		m.closeActive()
	case ResultChange:
		if res.Index < 0 || res.Index >= len(m.buffers) {
			m.deliverError(fmt.Sprintf("no buffer %d", res.Index))
			break
		}
		m.activate(res.Index)
	case ResultNew:
		m.newBuffer(res.Name, res.Text)
	case ResultInit:
		res.Buffer.Resize(m.w, m.h)
		m.buffers[m.active] = res.Buffer
		m.force = true
	case ResultInfo:
		m.deliverInfo(res.Text)
	case ResultError:
		m.deliverError(res.Text)
	case ResultList:
		m.listBuffers()
	case ResultLog:
		m.writeLog()
	}

	return len(m.buffers) > 0
}

func (m *Manager) activate(idx int) {
	m.previous = m.active
	m.active = idx
	m.force = true
}

func (m *Manager) closeActive() {
	closed := m.active
	m.buffers = append(m.buffers[:closed], m.buffers[closed+1:]...)
	if len(m.buffers) == 0 {
		return
	}
	next := m.previous
	if next > closed {
		next--
	}
	if next >= len(m.buffers) || next < 0 {
		next = len(m.buffers) - 1
	}
	m.active = next
	m.previous = next
	m.force = true
}

func (m *Manager) newBuffer(kind, text string) {
	var next Buffer
	switch kind {
	case "text":
		next = NewText(m.clip)
	case "files":
		files, err := NewFiles(m.dir, m.clip)
		if err != nil {
			m.deliverError(err.Error())
			return
		}
		next = files
	case "info":
		next = NewInfo("info", text, m.clip)
	default:
		m.deliverError("unknown buffer kind " + kind)
		return
	}
	next.Resize(m.w, m.h)
	m.buffers = append(m.buffers, next)
	m.activate(len(m.buffers) - 1)
}

func (m *Manager) listBuffers() {
	var b strings.Builder
	for i, buf := range m.buffers {
		marker := "   "
		if i == m.active {
			marker = "[*]"
		}
		fmt.Fprintf(&b, "%s %d  %-5s  %s\n", marker, i, buf.Kind(), buf.Name())
	}
	m.newBuffer("info", strings.TrimRight(b.String(), "\n"))
}

func (m *Manager) deliverInfo(msg string) {
	m.appendLog(msg)
	m.Active().SetMessage(msg)
}

func (m *Manager) deliverError(msg string) {
	m.appendLog("error: " + msg)
	m.Active().SetError(msg)
}

func (m *Manager) appendLog(msg string) {
	m.messages = append(m.messages, time.Now().Format("15:04:05 ")+msg)
}

// writeLog appends the accumulated message log to mini.log in the
// launch directory.
func (m *Manager) writeLog() {
	path := filepath.Join(m.dir, "mini.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		m.deliverError("log: " + err.Error())
		return
	}
	defer f.Close()

	logger := log.New(f, "", 0)
	for _, msg := range m.messages {
		logger.Println(msg)
	}
	m.messages = m.messages[:0]
	m.deliverInfo("wrote " + path)
}

// Resize propagates to every buffer, not only the active one.
func (m *Manager) Resize(w, h int) {
	m.w, m.h = w, h
	for _, buf := range m.buffers {
		buf.Resize(w, h)
	}
	m.force = true
}

// Render draws the active buffer when something changed.
func (m *Manager) Render(disp *display.Display) bool {
	if len(m.buffers) == 0 {
		return false
	}
	if !m.force && !m.Active().NeedRender() {
		return false
	}
	m.force = false
	m.Active().Render(disp)
	return true
}
