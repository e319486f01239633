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

// The fixed color theme.
var (
	colFg        = types.RGB(0xd8, 0xd8, 0xd8)
	colBg        = types.RGB(0x12, 0x12, 0x18)
	colGutter    = types.RGB(0x60, 0x60, 0x70)
	colCursor    = types.RGB(0x20, 0x20, 0x2c)
	colSelection = types.RGB(0x28, 0x40, 0x60)
	colSpace     = types.RGB(0x34, 0x34, 0x40)
	colBarFg     = types.RGB(0x12, 0x12, 0x18)
	colBarBg     = types.RGB(0x88, 0xa8, 0xc8)
	colErrorBg   = types.RGB(0x80, 0x30, 0x30)
	colErrorFg   = types.RGB(0xf0, 0xd0, 0xd0)
)
