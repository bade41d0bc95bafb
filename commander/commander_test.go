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
package commander

import (
	"testing"

	"github.com/timburks/ted/editor"
	ted "github.com/timburks/ted/types"
)

func setup(cursor editor.Cursor, lines ...string) (*Commander, *editor.Editor) {
	e := editor.NewEditor(0)
	e.Buffer = editor.NewBuffer(lines...)
	e.Cursor = cursor
	return NewCommander(e, ted.KeyCtrlQ, ted.KeyCtrlZ), e
}

func press(c *Commander, keys ...ted.Key) {
	for _, key := range keys {
		c.ProcessEvent(&ted.Event{Type: ted.EventKey, Key: key})
	}
}

func typeText(c *Commander, text string) {
	for _, ch := range text {
		c.ProcessEvent(&ted.Event{Type: ted.EventKey, Ch: ch})
	}
}

func final(t *testing.T, e *editor.Editor, cursor editor.Cursor, lines ...string) {
	t.Helper()
	if !e.Buffer.Equal(editor.NewBuffer(lines...)) {
		t.Errorf("Unexpected lines: %q, expected %q", e.Buffer.Lines(), lines)
	}
	if e.Cursor != cursor {
		t.Errorf("Unexpected cursor: %+v, expected %+v", e.Cursor, cursor)
	}
}

func TestQuit(t *testing.T) {
	c, _ := setup(editor.Cursor{}, "abc")
	if !c.IsRunning() {
		t.Fatalf("New commander is not running")
	}
	press(c, ted.KeyCtrlQ)
	if c.IsRunning() {
		t.Errorf("Commander still running after quit")
	}
}

func TestNewlineAndUndo(t *testing.T) {
	c, e := setup(editor.Cursor{Row: 0, Col: 3}, "abc", "def")
	press(c, ted.KeyEnter)
	final(t, e, editor.Cursor{Row: 1, Col: 0}, "abc", "", "def")
	press(c, ted.KeyCtrlZ)
	final(t, e, editor.Cursor{Row: 0, Col: 3}, "abc", "def")
}

func TestBackspace(t *testing.T) {
	c, e := setup(editor.Cursor{Row: 0, Col: 2}, "ab")
	press(c, ted.KeyBackspace2)
	final(t, e, editor.Cursor{Row: 0, Col: 1}, "a")
	press(c, ted.KeyBackspace)
	final(t, e, editor.Cursor{Row: 0, Col: 0}, "")
	undo := e.UndoCount()
	press(c, ted.KeyBackspace2)
	final(t, e, editor.Cursor{Row: 0, Col: 0}, "")
	if e.UndoCount() != undo {
		t.Errorf("Backspace at the start of a row was saved for undo")
	}
}

func TestBackspaceDoesNotJoinRows(t *testing.T) {
	c, e := setup(editor.Cursor{Row: 1, Col: 0}, "ab", "cd")
	press(c, ted.KeyBackspace2)
	final(t, e, editor.Cursor{Row: 1, Col: 0}, "ab", "cd")
}

func TestArrows(t *testing.T) {
	c, e := setup(editor.Cursor{}, "x", "yy", "zzz")
	press(c, ted.KeyArrowDown, ted.KeyArrowDown, ted.KeyArrowUp)
	if e.Cursor.Row != 1 || e.Cursor.Col > 1 {
		t.Errorf("Unexpected cursor: %+v", e.Cursor)
	}
	press(c, ted.KeyArrowRight, ted.KeyArrowRight, ted.KeyArrowRight)
	final(t, e, editor.Cursor{Row: 1, Col: 2}, "x", "yy", "zzz")
	press(c, ted.KeyArrowLeft)
	final(t, e, editor.Cursor{Row: 1, Col: 1}, "x", "yy", "zzz")
	if e.UndoCount() != 0 {
		t.Errorf("Cursor movement was saved for undo")
	}
}

func TestTyping(t *testing.T) {
	c, e := setup(editor.Cursor{Row: 0, Col: 4}, "THE ADDRESS")
	typeText(c, "BIG")
	press(c, ted.KeySpace)
	final(t, e, editor.Cursor{Row: 0, Col: 8}, "THE BIG ADDRESS")
	if e.UndoCount() != 4 {
		t.Errorf("Unexpected undo count: %d", e.UndoCount())
	}
	for i := 0; i < 4; i++ {
		press(c, ted.KeyCtrlZ)
	}
	final(t, e, editor.Cursor{Row: 0, Col: 4}, "THE ADDRESS")
	press(c, ted.KeyCtrlZ)
	final(t, e, editor.Cursor{Row: 0, Col: 4}, "THE ADDRESS")
}

func TestUnboundKeysDoNothing(t *testing.T) {
	c, e := setup(editor.Cursor{Row: 0, Col: 1}, "abc")
	c.SetDebug(true)
	press(c, ted.KeyTab, ted.KeyEsc, ted.KeyCtrlA, ted.KeyPgdn)
	c.ProcessEvent(&ted.Event{Type: ted.EventResize})
	final(t, e, editor.Cursor{Row: 0, Col: 1}, "abc")
	if !c.IsRunning() || e.UndoCount() != 0 {
		t.Errorf("Unbound keys changed the editor")
	}
}

func TestRemappedKeys(t *testing.T) {
	e := editor.NewEditor(0)
	c := NewCommander(e, ted.KeyCtrlX, ted.KeyCtrlU)
	typeText(c, "a")
	press(c, ted.KeyCtrlZ, ted.KeyCtrlQ)
	final(t, e, editor.Cursor{Row: 0, Col: 1}, "a")
	if !c.IsRunning() {
		t.Errorf("Ctrl-Q quit after being unbound")
	}
	press(c, ted.KeyCtrlU)
	final(t, e, editor.Cursor{}, "")
	press(c, ted.KeyCtrlX)
	if c.IsRunning() {
		t.Errorf("Commander still running after quit")
	}
}
