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
	"log"

	"github.com/timburks/ted/editor"
	"github.com/timburks/ted/operations"
	ted "github.com/timburks/ted/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  *editor.Editor
	running bool
	debug   bool     // debug mode logs keys that have no command
	quitKey ted.Key // ends the session
	undoKey ted.Key // restores the last snapshot
}

func NewCommander(e *editor.Editor, quitKey, undoKey ted.Key) *Commander {
	return &Commander{
		editor:  e,
		running: true,
		quitKey: quitKey,
		undoKey: undoKey,
	}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) ProcessEvent(event *ted.Event) {
	switch event.Type {
	case ted.EventKey:
		c.ProcessKey(event)
	}
}

func (c *Commander) ProcessKey(event *ted.Event) {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case c.quitKey:
			c.running = false
		case c.undoKey:
			e.RestoreSnapshot()
		//
		// cursor movement isn't saved
		//
		case ted.KeyArrowUp:
			e.MoveCursor(ted.MoveUp)
		case ted.KeyArrowDown:
			e.MoveCursor(ted.MoveDown)
		case ted.KeyArrowLeft:
			e.MoveCursor(ted.MoveLeft)
		case ted.KeyArrowRight:
			e.MoveCursor(ted.MoveRight)
		//
		// edits are performed as operations
		//
		case ted.KeyEnter:
			e.Perform(&operations.SplitLine{})
		case ted.KeyBackspace, ted.KeyBackspace2:
			if e.Cursor.Col > 0 {
				e.Perform(&operations.DeleteCharacter{})
			}
		case ted.KeySpace:
			e.Perform(&operations.InsertCharacter{Character: ' '})
		default:
			c.unhandled(event)
		}
		return
	}
	if ch != 0 {
		e.Perform(&operations.InsertCharacter{Character: ch})
		return
	}
	c.unhandled(event)
}

func (c *Commander) unhandled(event *ted.Event) {
	if c.debug {
		log.Printf("Key pressed: %+v", *event)
	}
}
