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

// Package screen owns the terminal: raw mode, the event loop feed,
// and the flush target the display writes into.
package screen

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mini-editor/mini/types"
)

// PollTimeout bounds each wait for a key. When it elapses, the main
// loop delivers a synthetic timeout so pending prefix sequences can
// expire without a keypress.
const PollTimeout = 750 * time.Millisecond

// A Screen is the live terminal.
type Screen struct {
	tc     tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	// Resize is signalled with the new size after the terminal
	// changes dimensions.
	Resize chan struct{}
}

// New opens the terminal in raw mode on the alternate screen.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.HideCursor()

	s := &Screen{
		tc:     tc,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
		Resize: make(chan struct{}, 1),
	}
	go tc.ChannelEvents(s.events, s.quit)
	return s, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	close(s.quit)
	s.tc.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

// Poll waits for the next key, or returns a timeout input when none
// arrives within PollTimeout. Resize events are signalled on the
// Resize channel and the wait continues.
func (s *Screen) Poll() types.Input {
	deadline := time.After(PollTimeout)
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return types.TimeoutInput()
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if key, ok := decodeKey(ev); ok {
					return types.KeyInput(key)
				}
			case *tcell.EventResize:
				s.tc.Sync()
				select {
				case s.Resize <- struct{}{}:
				default:
				}
			}
		case <-deadline:
			return types.TimeoutInput()
		}
	}
}

func decodeKey(ev *tcell.EventKey) (types.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return types.Alt(ev.Rune()), true
		}
		return types.Char(ev.Rune()), true
	case tcell.KeyEnter:
		return types.Key{Kind: types.KeyEnter}, true
	case tcell.KeyTab:
		return types.Key{Kind: types.KeyTab}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return types.Key{Kind: types.KeyBackspace}, true
	case tcell.KeyEsc:
		return types.Key{Kind: types.KeyEsc}, true
	case tcell.KeyLeft:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return types.Key{Kind: types.KeyAltArrowLeft}, true
		}
		return types.Key{Kind: types.KeyArrowLeft}, true
	case tcell.KeyRight:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return types.Key{Kind: types.KeyAltArrowRight}, true
		}
		return types.Key{Kind: types.KeyArrowRight}, true
	case tcell.KeyUp:
		return types.Key{Kind: types.KeyArrowUp}, true
	case tcell.KeyDown:
		return types.Key{Kind: types.KeyArrowDown}, true
	}

	// Control keys arrive as their own key codes; map a-z back.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return types.Ctrl(rune('a' + k - tcell.KeyCtrlA)), true
	}
	return types.Key{}, false
}

// SetCell implements display.Target.
func (s *Screen) SetCell(x, y int, cell types.Cell) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(cell.Fg.R), int32(cell.Fg.G), int32(cell.Fg.B))).
		Background(tcell.NewRGBColor(int32(cell.Bg.R), int32(cell.Bg.G), int32(cell.Bg.B)))
	s.tc.SetContent(x, y, cell.Ch, nil, style)
}

// SetCursor implements display.Target.
func (s *Screen) SetCursor(x, y int, style int) {
	switch style {
	case types.CursorHidden:
		s.tc.HideCursor()
		return
	case types.CursorSteadyBar:
		s.tc.SetCursorStyle(tcell.CursorStyleSteadyBar)
	case types.CursorBlinkingBar:
		s.tc.SetCursorStyle(tcell.CursorStyleBlinkingBar)
	default:
		s.tc.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
	s.tc.ShowCursor(x, y)
}

// Show implements display.Target.
func (s *Screen) Show() {
	s.tc.Show()
}
