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

import "github.com/mini-editor/mini/types"

// Action kinds. The low block is generic and handled by Base; the
// rest belong to the concrete buffers.
const (
	ActNone = iota

	// Generic, handled by Base.
	ActMoveLeft
	ActMoveRight
	ActMoveUp
	ActMoveDown
	ActNextWord
	ActPrevWord
	ActNextWhitespace
	ActPrevWhitespace
	ActNextEmptyLine
	ActPrevEmptyLine
	ActHalfPageDown
	ActHalfPageUp
	ActLineEnd
	ActFileStart
	ActFileEnd
	ActMatchBracket
	ActDigit
	ActSelect
	ActSelectLine
	ActEscape
	ActEnterCommand
	ActNextMatch
	ActPrevMatch

	// Text buffer.
	ActEnterWrite
	ActAppend
	ActWriteLineStart
	ActWriteLineEnd
	ActOpenBelow
	ActOpenAbove
	ActDeleteChar
	ActReplaceChar
	ActPaste
	ActUndo
	ActRedo
	ActYank
	ActDelete
	ActChange
	ActYankLine
	ActDeleteLine
	ActChangeLine

	// Files buffer.
	ActSelectEntry
	ActRefresh
	ActPrefillRemove
	ActPrefillRemoveForce
)

// Motion kinds carried by operator actions.
const (
	MotionNone = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionWord
	MotionBackWord
	MotionLineStart
	MotionLineEnd
	MotionFileStart
	MotionFileEnd
	MotionNextWhitespace
	MotionPrevWhitespace
)

// An Action is one classified key sequence. Ch carries the argument
// of character-parameterized actions; Motion the target of operator
// actions.
type Action struct {
	Kind   int
	Ch     rune
	Motion int
}

// act is shorthand for a bare action.
func act(kind int) Action { return Action{Kind: kind} }

// motionForKey maps a motion key to its kind for operator sequences.
func motionForKey(key types.Key) (int, bool) {
	switch key.Kind {
	case types.KeyArrowLeft:
		return MotionLeft, true
	case types.KeyArrowRight:
		return MotionRight, true
	case types.KeyArrowUp:
		return MotionUp, true
	case types.KeyArrowDown:
		return MotionDown, true
	case types.KeyChar:
		switch key.Ch {
		case 'h':
			return MotionLeft, true
		case 'l':
			return MotionRight, true
		case 'k':
			return MotionUp, true
		case 'j':
			return MotionDown, true
		case 'w':
			return MotionWord, true
		case 'b':
			return MotionBackWord, true
		case '0':
			return MotionLineStart, true
		case '$':
			return MotionLineEnd, true
		case 'g':
			return MotionFileStart, true
		case 'G':
			return MotionFileEnd, true
		case 'W':
			return MotionNextWhitespace, true
		case 'B':
			return MotionPrevWhitespace, true
		}
	}
	return MotionNone, false
}
