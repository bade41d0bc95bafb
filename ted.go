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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/timburks/ted/ansi"
	"github.com/timburks/ted/commander"
	"github.com/timburks/ted/config"
	"github.com/timburks/ted/editor"
	"github.com/timburks/ted/screen"
	ted "github.com/timburks/ted/types"
)

// A display shows the editor and reads keystrokes.
type display interface {
	Render(e *editor.Editor) error
	GetNextEvent() (*ted.Event, error)
	Close() error
}

func openDisplay(name string) (display, error) {
	switch name {
	case config.DisplayANSI:
		t, err := ansi.Open()
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		s, err := screen.NewScreen()
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// run owns the display for the whole session and closes it on every exit path.
func run(open func() (display, error), e *editor.Editor, c *commander.Commander) error {
	d, err := open()
	if err != nil {
		return err
	}
	defer d.Close()

	for c.IsRunning() {
		if err := d.Render(e); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
		event, err := d.GetNextEvent()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		c.ProcessEvent(event)
	}
	return nil
}

func main() {

	var filename, script string
	configPath := config.DefaultPath()

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // run a script instead of opening the terminal
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Fatal("No file specified for --eval option")
			}
		case "--config":
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				log.Fatal("No file specified for --config option")
			}
		default:
			filename = argi
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if filename == "" {
		filename = cfg.File
	}

	// The editor holds the text, the cursor and the undo history.
	e := editor.NewEditor(cfg.HistoryLimit)
	if err := e.ReadFile(filename); err != nil {
		log.Fatal(err)
	}

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, cfg.QuitKey(), cfg.UndoKey())
	c.SetDebug(cfg.Debug)

	if script != "" {
		// Run a script and print the resulting text.
		if _, err := c.ParseEvalFile(script); err != nil {
			log.Fatal(err)
		}
		fmt.Println(e.Buffer.Text())
		return
	}

	// Log to a file; the terminal belongs to the display.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatal(err)
	}
	log.SetOutput(f)
	log.Printf("editing %s", filename)

	err = run(func() (display, error) { return openDisplay(cfg.Display) }, e, c)
	f.Close()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
