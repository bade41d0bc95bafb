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
	"fmt"
	"io"
	"strings"
)

// A Buffer holds the lines of the document being edited.
//
// Buffers are values: Insert, Delete and SplitLine return a new Buffer and
// leave the receiver untouched, so earlier buffers can be kept for undo.
type Buffer struct {
	rows []Row
}

// NewBuffer creates a buffer containing the given lines.
// A buffer always has at least one row.
func NewBuffer(lines ...string) Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b := Buffer{rows: make([]Row, 0, len(lines))}
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	return b
}

// LoadBytes splits file contents into lines on line feeds.
// A single trailing newline ends the last line rather than starting a new one.
func LoadBytes(bytes []byte) Buffer {
	s := strings.TrimSuffix(string(bytes), "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return NewBuffer(lines...)
}

func (b Buffer) LineCount() int {
	return len(b.rows)
}

// LineLength returns the number of characters in row, or 0 if there is no such row.
func (b Buffer) LineLength(row int) int {
	if row < 0 || row >= len(b.rows) {
		return 0
	}
	return b.rows[row].Length()
}

func (b Buffer) Line(row int) string {
	if row < 0 || row >= len(b.rows) {
		return ""
	}
	return b.rows[row].DisplayText()
}

func (b Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.DisplayText()
	}
	return lines
}

// Text returns the buffer contents with rows joined by newlines.
func (b Buffer) Text() string {
	return strings.Join(b.Lines(), "\n")
}

func (b Buffer) Equal(other Buffer) bool {
	if len(b.rows) != len(other.rows) {
		return false
	}
	for i := range b.rows {
		if b.rows[i].DisplayText() != other.rows[i].DisplayText() {
			return false
		}
	}
	return true
}

// replaceRows returns a copy of b with rows[row] replaced by the given rows.
// The Row values themselves are shared.
func (b Buffer) replaceRows(row int, with ...Row) Buffer {
	rows := make([]Row, 0, len(b.rows)-1+len(with))
	rows = append(rows, b.rows[0:row]...)
	rows = append(rows, with...)
	rows = append(rows, b.rows[row+1:]...)
	return Buffer{rows: rows}
}

// Insert returns a buffer with c inserted into row before col.
// Rows outside the buffer are ignored. col may be anywhere from 0 to the
// length of the row; anything else is a programming error.
func (b Buffer) Insert(c rune, row, col int) Buffer {
	if row < 0 || row >= len(b.rows) {
		return b
	}
	if col < 0 || col > b.rows[row].Length() {
		panic(fmt.Sprintf("editor: insert at column %d of row %d with length %d", col, row, b.rows[row].Length()))
	}
	return b.replaceRows(row, b.rows[row].InsertChar(col, c))
}

// Delete returns a buffer without the character at (row, col).
// Positions that don't address an existing character are ignored.
func (b Buffer) Delete(row, col int) Buffer {
	if row < 0 || row >= len(b.rows) {
		return b
	}
	if col < 0 || col >= b.rows[row].Length() {
		return b
	}
	return b.replaceRows(row, b.rows[row].DeleteChar(col))
}

// SplitLine returns a buffer where the text of row from col onward
// has been moved to a new row below it.
func (b Buffer) SplitLine(row, col int) Buffer {
	if row < 0 || row >= len(b.rows) {
		panic(fmt.Sprintf("editor: split of row %d in buffer with %d rows", row, len(b.rows)))
	}
	if col < 0 || col > b.rows[row].Length() {
		panic(fmt.Sprintf("editor: split at column %d of row %d with length %d", col, row, b.rows[row].Length()))
	}
	before, after := b.rows[row].Split(col)
	return b.replaceRows(row, before, after)
}

// Render writes each row followed by a carriage return and line feed;
// raw terminals don't translate a bare line feed.
func (b Buffer) Render(w io.Writer) error {
	for _, row := range b.rows {
		if _, err := io.WriteString(w, row.DisplayText()+"\r\n"); err != nil {
			return err
		}
	}
	return nil
}
