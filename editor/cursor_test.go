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
package editor

import (
	"testing"

	"pgregory.net/rapid"

	ted "github.com/timburks/ted/types"
)

func TestCursorStopsAtEdges(t *testing.T) {
	b := NewBuffer("abc", "de")
	c := Cursor{}
	if moved := c.Up(b); moved != c {
		t.Errorf("Up from the first row moved to %+v", moved)
	}
	if moved := c.Left(b); moved != c {
		t.Errorf("Left from the first column moved to %+v", moved)
	}
	c = Cursor{Row: 1, Col: 2}
	if moved := c.Down(b); moved != (Cursor{Row: 1, Col: 1}) {
		t.Errorf("Down from the last row moved to %+v", moved)
	}
	if moved := c.Right(b); moved != c {
		t.Errorf("Right from the end of the row moved to %+v", moved)
	}
}

func TestCursorRightAllowsAppending(t *testing.T) {
	b := NewBuffer("ab")
	c := Cursor{}.Right(b).Right(b).Right(b)
	if c != (Cursor{Row: 0, Col: 2}) {
		t.Errorf("Unexpected cursor after moving right: %+v", c)
	}
}

// Vertical moves land on an existing character while Right may stop one
// past the end. Both bounds are intentional.
func TestCursorVerticalBound(t *testing.T) {
	b := NewBuffer("abcd", "ab", "")
	c := Cursor{Row: 0, Col: 4}
	if c = c.Down(b); c != (Cursor{Row: 1, Col: 1}) {
		t.Errorf("Unexpected cursor after moving down: %+v", c)
	}
	if c = c.Right(b); c != (Cursor{Row: 1, Col: 2}) {
		t.Errorf("Unexpected cursor after moving right: %+v", c)
	}
	if c = c.Down(b); c != (Cursor{Row: 2, Col: 0}) {
		t.Errorf("Unexpected cursor after moving onto an empty row: %+v", c)
	}
}

func TestCursorDownUpClampsColumn(t *testing.T) {
	b := NewBuffer("x", "yy", "zzz")
	c := Cursor{}
	c = c.Down(b)
	c = c.Down(b)
	c = c.Up(b)
	if c.Row != 1 || c.Col > 1 {
		t.Errorf("Unexpected cursor: %+v", c)
	}
}

func TestCursorMove(t *testing.T) {
	b := NewBuffer("abc", "def")
	c := Cursor{Row: 0, Col: 1}
	for direction, expected := range map[int]Cursor{
		ted.MoveUp:    {Row: 0, Col: 1},
		ted.MoveDown:  {Row: 1, Col: 1},
		ted.MoveLeft:  {Row: 0, Col: 0},
		ted.MoveRight: {Row: 0, Col: 2},
	} {
		if moved := c.Move(direction, b); moved != expected {
			t.Errorf("Move(%d) went to %+v, expected %+v", direction, moved, expected)
		}
	}
}

func TestCursorStaysInBuffer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := NewBuffer(lines().Draw(t, "lines")...)
		row := rapid.IntRange(0, b.LineCount()-1).Draw(t, "row")
		c := Cursor{Row: row, Col: rapid.IntRange(0, b.LineLength(row)).Draw(t, "col")}
		moves := rapid.SliceOf(rapid.IntRange(ted.MoveUp, ted.MoveLeft)).Draw(t, "moves")
		for _, direction := range moves {
			c = c.Move(direction, b)
			if c.Row < 0 || c.Row >= b.LineCount() {
				t.Fatalf("Row out of range: %+v", c)
			}
			switch direction {
			case ted.MoveRight:
				if c.Col > b.LineLength(c.Row) {
					t.Fatalf("Right moved past the end of the row: %+v", c)
				}
			case ted.MoveUp, ted.MoveDown:
				limit := b.LineLength(c.Row) - 1
				if limit < 0 {
					limit = 0
				}
				if c.Col > limit {
					t.Fatalf("Vertical move left the cursor past the last character: %+v", c)
				}
			}
			if c.Col < 0 {
				t.Fatalf("Column out of range: %+v", c)
			}
		}
	})
}
