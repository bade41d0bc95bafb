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

// A Row is one line of text. Rows are never modified after they are
// created; edits build new rows so that older buffers can keep sharing them.
type Row struct {
	text []rune
}

func NewRow(text string) Row {
	return Row{text: []rune(text)}
}

func (r Row) DisplayText() string {
	return string(r.text)
}

func (r Row) Length() int {
	return len(r.text)
}

// returns a new row with c inserted before col
func (r Row) InsertChar(col int, c rune) Row {
	line := make([]rune, 0, len(r.text)+1)
	line = append(line, r.text[0:col]...)
	line = append(line, c)
	line = append(line, r.text[col:]...)
	return Row{text: line}
}

// returns a new row without the character at col
func (r Row) DeleteChar(col int) Row {
	line := make([]rune, 0, len(r.text)-1)
	line = append(line, r.text[0:col]...)
	line = append(line, r.text[col+1:]...)
	return Row{text: line}
}

// splits row at col, returning the text before and after it.
func (r Row) Split(col int) (Row, Row) {
	before := make([]rune, col)
	copy(before, r.text[0:col])
	after := make([]rune, len(r.text)-col)
	copy(after, r.text[col:])
	return Row{text: before}, Row{text: after}
}
