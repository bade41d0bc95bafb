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
package ansi

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/timburks/ted/editor"
	ted "github.com/timburks/ted/types"
)

// A Terminal draws an Editor with VT100 escape sequences and decodes
// keystrokes from the raw bytes a terminal sends.
type Terminal struct {
	in    *bufio.Reader
	out   *bufio.Writer
	fd    int
	state *term.State // saved cooked mode, nil if raw mode was never entered
}

// NewTerminal creates a terminal over arbitrary streams without changing any
// terminal modes.
func NewTerminal(r io.Reader, w io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(r),
		out: bufio.NewWriter(w),
		fd:  -1,
	}
}

// Open puts standard input into raw mode. Close must be called to restore it.
func Open() (*Terminal, error) {
	t := NewTerminal(os.Stdin, os.Stdout)
	t.fd = int(os.Stdin.Fd())
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	t.state = state
	return t, nil
}

// Close clears the screen and returns the terminal to its previous mode.
func (t *Terminal) Close() error {
	ClearScreen(t.out)
	MoveCursor(t.out, 0, 0)
	err := t.out.Flush()
	if t.state != nil {
		if rerr := term.Restore(t.fd, t.state); rerr != nil {
			return fmt.Errorf("restoring terminal: %w", rerr)
		}
		t.state = nil
	}
	return err
}

func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[2J")
	return err
}

// MoveCursor positions the cursor at a 0-based column and row.
func MoveCursor(w io.Writer, col, row int) error {
	_, err := fmt.Fprintf(w, "\x1b[%d;%dH", row+1, col+1)
	return err
}

// Render redraws the whole screen.
func (t *Terminal) Render(e *editor.Editor) error {
	if err := ClearScreen(t.out); err != nil {
		return err
	}
	if err := MoveCursor(t.out, 0, 0); err != nil {
		return err
	}
	if err := e.Buffer.Render(t.out); err != nil {
		return err
	}
	if err := MoveCursor(t.out, e.Cursor.Col, e.Cursor.Row); err != nil {
		return err
	}
	return t.out.Flush()
}

// GetNextEvent blocks until a complete keystroke has been read.
func (t *Terminal) GetNextEvent() (*ted.Event, error) {
	b, err := t.in.ReadByte()
	if err != nil {
		return nil, err
	}
	switch {
	case b == 0x1b:
		key, err := t.readEscape()
		if err != nil {
			return nil, err
		}
		return keyEvent(key), nil
	case b == '\r' || b == '\n':
		return keyEvent(ted.KeyEnter), nil
	case b == 0x7f:
		return keyEvent(ted.KeyBackspace2), nil
	case b == ' ':
		return keyEvent(ted.KeySpace), nil
	case b < 0x20:
		return keyEvent(ted.Key(b)), nil
	}
	t.in.UnreadByte()
	ch, _, err := t.in.ReadRune()
	if err != nil {
		return nil, err
	}
	return &ted.Event{Type: ted.EventKey, Ch: ch}, nil
}

func keyEvent(key ted.Key) *ted.Event {
	return &ted.Event{Type: ted.EventKey, Key: key}
}

// An escape starts a sequence when it is followed by '[' or 'O'; anything
// else, or the end of input, means the escape key was pressed by itself.
// Sequences may arrive split across reads, so their bytes are read until
// the final byte even if that blocks.
func (t *Terminal) readEscape() (ted.Key, error) {
	b, err := t.in.ReadByte()
	if err == io.EOF {
		return ted.KeyEsc, nil
	} else if err != nil {
		return 0, err
	}
	if b != '[' && b != 'O' {
		t.in.UnreadByte()
		return ted.KeyEsc, nil
	}
	param := 0
	for {
		b, err = t.in.ReadByte()
		if err != nil {
			return 0, err
		}
		switch {
		case b >= '0' && b <= '9':
			param = param*10 + int(b-'0')
			continue
		case b == ';':
			// modifiers are ignored
			param = 0
			continue
		case b < 0x40 || b > 0x7e:
			// other parameter and intermediate bytes
			continue
		case b == 'A':
			return ted.KeyArrowUp, nil
		case b == 'B':
			return ted.KeyArrowDown, nil
		case b == 'C':
			return ted.KeyArrowRight, nil
		case b == 'D':
			return ted.KeyArrowLeft, nil
		case b == 'H':
			return ted.KeyHome, nil
		case b == 'F':
			return ted.KeyEnd, nil
		case b == '~':
			switch param {
			case 1, 7:
				return ted.KeyHome, nil
			case 4, 8:
				return ted.KeyEnd, nil
			case 5:
				return ted.KeyPgup, nil
			case 6:
				return ted.KeyPgdn, nil
			}
		}
		return ted.KeyUnsupported, nil
	}
}
