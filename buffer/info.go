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

	"github.com/mini-editor/mini/clipboard"
	"github.com/mini-editor/mini/display"
	"github.com/mini-editor/mini/document"
	"github.com/mini-editor/mini/motion"
	"github.com/mini-editor/mini/types"
)

// An InfoBuffer shows one read-only multi-line message (help, buffer
// listings, the log). J/K scroll, Y copies the whole message, any
// other key closes it.
type InfoBuffer struct {
	Base
	title string
}

// NewInfo wraps a message in a buffer.
func NewInfo(title, text string, clip clipboard.Clipboard) *InfoBuffer {
	doc := document.New(strings.Split(text, "\n"))
	return &InfoBuffer{
		Base:  NewBase(doc, clip, false),
		title: title,
	}
}

func (b *InfoBuffer) Kind() string { return "info" }
func (b *InfoBuffer) Name() string { return b.title }

// Tick implements Buffer.
func (b *InfoBuffer) Tick(input types.Input) Result {
	b.ClearTick(input)
	if input.Timeout {
		return Ok()
	}

	key := input.Key
	if key.Kind == types.KeyChar {
		switch key.Ch {
		case 'J':
			motion.HalfPageDown(b.Doc, b.View, 1)
			return Ok()
		case 'K':
			motion.HalfPageUp(b.Doc, b.View, 1)
			return Ok()
		case 'Y':
			if err := b.Clip.Set(b.Doc.String()); err != nil {
				return Errorf("clipboard: %v", err)
			}
			return Info("copied")
		}
	}
	return Quit()
}

// Render implements Buffer.
func (b *InfoBuffer) Render(disp *display.Display) {
	b.View.Render(b.Doc, disp, b.Style(nil))
	b.RenderChrome(disp, b.title, "J/K scroll · Y copy · any key closes", "")
	disp.SetCursor(0, 0, types.CursorHidden)
	b.Rendered()
}
