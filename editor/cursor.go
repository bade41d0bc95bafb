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
	ted "github.com/timburks/ted/types"
)

// A Cursor is a position in a Buffer. Movements return a new Cursor
// clamped against the buffer they are given.
type Cursor struct {
	Row int
	Col int
}

func clipToRange(v, min, max int) int {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

// Vertical moves land on an existing character of the new row,
// or column 0 when the row is empty.
func (c Cursor) vertical(row int, b Buffer) Cursor {
	row = clipToRange(row, 0, b.LineCount()-1)
	return Cursor{Row: row, Col: clipToRange(c.Col, 0, b.LineLength(row)-1)}
}

func (c Cursor) Up(b Buffer) Cursor {
	return c.vertical(c.Row-1, b)
}

func (c Cursor) Down(b Buffer) Cursor {
	return c.vertical(c.Row+1, b)
}

func (c Cursor) Left(b Buffer) Cursor {
	return Cursor{Row: c.Row, Col: clipToRange(c.Col-1, 0, c.Col)}
}

// Right may move one past the last character, where the next insert appends.
func (c Cursor) Right(b Buffer) Cursor {
	return Cursor{Row: c.Row, Col: clipToRange(c.Col+1, 0, b.LineLength(c.Row))}
}

func (c Cursor) Move(direction int, b Buffer) Cursor {
	switch direction {
	case ted.MoveUp:
		return c.Up(b)
	case ted.MoveDown:
		return c.Down(b)
	case ted.MoveLeft:
		return c.Left(b)
	case ted.MoveRight:
		return c.Right(b)
	}
	return c
}
