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
	"os"
)

// An Operation is an edit that changes the buffer.
// Apply must not modify the buffer it is given.
type Operation interface {
	Apply(b Buffer, c Cursor) (Buffer, Cursor)
}

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Buffer   Buffer   // current contents
	Cursor   Cursor   // cursor position
	FileName string   // file the buffer was loaded from
	history  *History // snapshots to undo
}

// NewEditor creates an editor with a single empty line.
// historyLimit bounds the number of undoable edits; 0 means no bound.
func NewEditor(historyLimit int) *Editor {
	return &Editor{
		Buffer:  NewBuffer(),
		history: NewHistory(historyLimit),
	}
}

func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	e.Buffer = LoadBytes(b)
	e.Cursor = Cursor{}
	e.FileName = path
	return nil
}

func (e *Editor) SaveSnapshot() {
	e.history.Save(e.Buffer, e.Cursor)
}

// RestoreSnapshot returns to the state before the last edit.
// With nothing to undo it does nothing.
func (e *Editor) RestoreSnapshot() {
	if b, c, ok := e.history.Restore(); ok {
		e.Buffer = b
		e.Cursor = c
	}
}

func (e *Editor) UndoCount() int {
	return e.history.Len()
}

// Perform saves a snapshot and then applies op.
func (e *Editor) Perform(op Operation) {
	e.SaveSnapshot()
	e.Buffer, e.Cursor = op.Apply(e.Buffer, e.Cursor)
}

// cursor movement isn't saved for undo
func (e *Editor) MoveCursor(direction int) {
	e.Cursor = e.Cursor.Move(direction, e.Buffer)
}
