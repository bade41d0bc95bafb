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
	"errors"
	"testing"

	"github.com/timburks/ted/commander"
	"github.com/timburks/ted/editor"
	ted "github.com/timburks/ted/types"
)

// fakeDisplay replays events and records how it was used.
type fakeDisplay struct {
	events    []ted.Event
	renderErr error
	inputErr  error
	renders   int
	closed    int
}

func (d *fakeDisplay) Render(e *editor.Editor) error {
	d.renders++
	return d.renderErr
}

func (d *fakeDisplay) GetNextEvent() (*ted.Event, error) {
	if len(d.events) == 0 {
		return nil, d.inputErr
	}
	event := d.events[0]
	d.events = d.events[1:]
	return &event, nil
}

func (d *fakeDisplay) Close() error {
	d.closed++
	return nil
}

func session(d *fakeDisplay) (*editor.Editor, error) {
	e := editor.NewEditor(0)
	c := commander.NewCommander(e, ted.KeyCtrlQ, ted.KeyCtrlZ)
	err := run(func() (display, error) { return d, nil }, e, c)
	return e, err
}

func TestRunClosesDisplayOnQuit(t *testing.T) {
	d := &fakeDisplay{events: []ted.Event{
		{Type: ted.EventKey, Ch: 'h'},
		{Type: ted.EventKey, Ch: 'i'},
		{Type: ted.EventKey, Key: ted.KeyCtrlQ},
	}}
	e, err := session(d)
	if err != nil {
		t.Errorf("Unexpected error: %+v", err)
	}
	if d.closed != 1 {
		t.Errorf("Display closed %d times", d.closed)
	}
	if d.renders != 3 {
		t.Errorf("Unexpected render count: %d", d.renders)
	}
	if text := e.Buffer.Text(); text != "hi" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestRunClosesDisplayWhenRenderFails(t *testing.T) {
	failure := errors.New("write failed")
	d := &fakeDisplay{renderErr: failure}
	_, err := session(d)
	if !errors.Is(err, failure) {
		t.Errorf("Unexpected error: %+v", err)
	}
	if d.closed != 1 {
		t.Errorf("Display closed %d times", d.closed)
	}
}

func TestRunClosesDisplayWhenInputFails(t *testing.T) {
	failure := errors.New("read failed")
	d := &fakeDisplay{
		events:   []ted.Event{{Type: ted.EventKey, Ch: 'x'}},
		inputErr: failure,
	}
	e, err := session(d)
	if !errors.Is(err, failure) {
		t.Errorf("Unexpected error: %+v", err)
	}
	if d.closed != 1 {
		t.Errorf("Display closed %d times", d.closed)
	}
	if text := e.Buffer.Text(); text != "x" {
		t.Errorf("Unexpected text: %q", text)
	}
}

func TestRunReportsOpenFailure(t *testing.T) {
	failure := errors.New("no terminal")
	e := editor.NewEditor(0)
	c := commander.NewCommander(e, ted.KeyCtrlQ, ted.KeyCtrlZ)
	err := run(func() (display, error) { return nil, failure }, e, c)
	if !errors.Is(err, failure) {
		t.Errorf("Unexpected error: %+v", err)
	}
}
