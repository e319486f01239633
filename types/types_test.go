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

package types

import "testing"

func TestCursorOrder(t *testing.T) {
	a := NewCursor(5, 1)
	b := NewCursor(0, 2)
	if !a.Less(b) {
		t.Error("(5,1) should order before (0,2)")
	}
	if b.Less(a) {
		t.Error("(0,2) should not order before (5,1)")
	}
	if !a.Min(b).Equal(a) || !a.Max(b).Equal(b) {
		t.Error("min/max disagree with Less")
	}
}

func TestCursorSaturation(t *testing.T) {
	c := NewCursor(1, 1)
	c.Left(5)
	if c.X != 0 {
		t.Errorf("left should saturate at 0, got %d", c.X)
	}
	c.Right(100, 7)
	if c.X != 7 {
		t.Errorf("right should clamp at bound, got %d", c.X)
	}
	c.Up(5)
	if c.Y != 0 {
		t.Errorf("up should saturate at 0, got %d", c.Y)
	}
	c.Down(100, 3)
	if c.Y != 3 {
		t.Errorf("down should clamp at bound, got %d", c.Y)
	}
}

func TestTargetXSurvivesVerticalMotion(t *testing.T) {
	c := NewCursor(9, 0)
	c.Up(1)
	c.ClampX(3)
	if c.X != 3 || c.TargetX != 9 {
		t.Errorf("got x=%d target=%d, want x=3 target=9", c.X, c.TargetX)
	}
}
