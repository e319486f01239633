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

// Package buffer implements the editable surfaces of the editor (text,
// file listing, message view), the shared base behavior they compose,
// and the manager that multiplexes them.
package buffer

import (
	"fmt"

	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/types"
)

// A Buffer is one editable surface owned by the manager.
type Buffer interface {
	// Tick feeds one input through the buffer's state machine and
	// returns a command for the manager.
	Tick(input types.Input) Result

	// Render draws the buffer into the display.
	Render(disp *display.Display)

	// Resize tells the buffer its new display size.
	Resize(w, h int)

	// SetMessage shows a transient message on the buffer.
	SetMessage(msg string)

	// SetError shows a transient error message.
	SetError(msg string)

	// CanQuit returns nil when the buffer may close, or the reason
	// it should not.
	CanQuit() error

	// NeedRender reports whether the buffer changed since the last
	// render.
	NeedRender() bool

	// Kind is the buffer type name ("text", "files", "info").
	Kind() string

	// Name labels the buffer in listings and the status bar.
	Name() string
}

// Result kinds, interpreted by the manager.
const (
	ResultOk = iota
	ResultQuit
	ResultForceQuit
	ResultChange
	ResultNew
	ResultInit
	ResultInfo
	ResultError
	ResultList
	ResultLog
)

// A Result is the command a buffer returns from its tick. Buffers
// never hold a manager reference; all inter-buffer effects travel
// through these values.
type Result struct {
	Kind   int
	Index  int    // Change
	Name   string // New (buffer kind)
	Text   string // Info, Error, New (message or info body)
	Buffer Buffer // Init
}

// Ok continues the loop.
func Ok() Result { return Result{Kind: ResultOk} }

// Quit asks the manager to close the active buffer.
func Quit() Result { return Result{Kind: ResultQuit} }

// Info delivers an informational message.
func Info(msg string) Result { return Result{Kind: ResultInfo, Text: msg} }

// Errorf delivers a formatted error message.
func Errorf(format string, args ...any) Result {
	return Result{Kind: ResultError, Text: fmt.Sprintf(format, args...)}
}

// Init replaces the active buffer in place.
func Init(b Buffer) Result { return Result{Kind: ResultInit, Buffer: b} }
