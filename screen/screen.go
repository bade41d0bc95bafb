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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/timburks/ted/editor"
	ted "github.com/timburks/ted/types"
)

// The Screen draws the state of an Editor with termbox.
type Screen struct {
	rows, cols int // screen size
	offsetRow  int // first buffer row on screen
	offsetCell int // first display cell on screen, counted in cells not runes
}

// NewScreen opens the terminal and puts it into raw mode.
// Close must be called to restore it.
func NewScreen() (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &Screen{}, nil
}

func (s *Screen) Close() error {
	termbox.Close()
	return nil
}

// cellColumn returns the display cell where the character at col starts.
func cellColumn(text []rune, col int) int {
	if col > len(text) {
		col = len(text)
	}
	return runewidth.StringWidth(string(text[0:col]))
}

// scroll keeps a cursor of the given width inside the visible part of the buffer.
func (s *Screen) scroll(row, cell, width int) {
	if row < s.offsetRow {
		s.offsetRow = row
	}
	if s.rows > 0 && row-s.offsetRow >= s.rows {
		s.offsetRow = row - s.rows + 1
	}
	if cell < s.offsetCell {
		s.offsetCell = cell
	}
	if s.cols > 0 && cell+width-s.offsetCell > s.cols {
		s.offsetCell = cell + width - s.cols
	}
}

// place scrolls to the cursor and returns its screen position.
func (s *Screen) place(e *editor.Editor) (int, int) {
	text := []rune(e.Buffer.Line(e.Cursor.Row))
	cell := cellColumn(text, e.Cursor.Col)
	width := 1
	if e.Cursor.Col < len(text) {
		if w := runewidth.RuneWidth(text[e.Cursor.Col]); w > 1 {
			width = w
		}
	}
	s.scroll(e.Cursor.Row, cell, width)
	return cell - s.offsetCell, e.Cursor.Row - s.offsetRow
}

// Render redraws the whole screen.
func (s *Screen) Render(e *editor.Editor) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	s.cols, s.rows = termbox.Size()
	cursorX, cursorY := s.place(e)

	for i := 0; i < s.rows; i++ {
		row := i + s.offsetRow
		if row >= e.Buffer.LineCount() {
			break
		}
		cell := 0
		for _, c := range e.Buffer.Line(row) {
			w := runewidth.RuneWidth(c)
			x := cell - s.offsetCell
			if x >= s.cols {
				break
			}
			if x >= 0 && x+w <= s.cols {
				termbox.SetCell(x, i, c, termbox.ColorDefault, termbox.ColorDefault)
			}
			cell += w
		}
	}
	termbox.SetCursor(cursorX, cursorY)
	return termbox.Flush()
}

// GetNextEvent blocks until the next input event.
func (s *Screen) GetNextEvent() (*ted.Event, error) {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventError:
		return nil, event.Err
	case termbox.EventResize:
		return &ted.Event{Type: ted.EventResize}, nil
	case termbox.EventKey:
		return &ted.Event{
			Type: ted.EventKey,
			Key:  key(event.Key),
			Ch:   event.Ch,
		}, nil
	}
	return &ted.Event{Type: ted.EventNone}, nil
}

func key(k termbox.Key) ted.Key {
	switch k {
	case 0:
		return 0
	case termbox.KeyArrowDown:
		return ted.KeyArrowDown
	case termbox.KeyArrowLeft:
		return ted.KeyArrowLeft
	case termbox.KeyArrowRight:
		return ted.KeyArrowRight
	case termbox.KeyArrowUp:
		return ted.KeyArrowUp
	case termbox.KeyHome:
		return ted.KeyHome
	case termbox.KeyEnd:
		return ted.KeyEnd
	case termbox.KeyPgup:
		return ted.KeyPgup
	case termbox.KeyPgdn:
		return ted.KeyPgdn
	case termbox.KeyBackspace2:
		return ted.KeyBackspace2
	}
	// control keys, enter, escape and space have the same values in both
	if k <= termbox.KeySpace {
		return ted.Key(k)
	}
	return ted.KeyUnsupported
}
