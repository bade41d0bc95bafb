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
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	ted "github.com/timburks/ted/types"
)

// Displays
const (
	DisplayTermbox = "termbox"
	DisplayANSI    = "ansi"
)

// Keys names the keys bound to editor commands, like "ctrl-q".
type Keys struct {
	Quit string `toml:"quit"`
	Undo string `toml:"undo"`
}

// Config holds the settings read from the configuration file.
type Config struct {
	File         string `toml:"file"`          // file to edit when none is named
	Display      string `toml:"display"`       // "termbox" or "ansi"
	LogFile      string `toml:"log_file"`      // where log output goes
	Debug        bool   `toml:"debug"`         // log keys that have no binding
	HistoryLimit int    `toml:"history_limit"` // undo depth, 0 for no limit
	Keys         Keys   `toml:"keys"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		File:    "test.txt",
		Display: DisplayTermbox,
		LogFile: filepath.Join(os.Getenv("HOME"), ".tedlog"),
		Keys: Keys{
			Quit: "ctrl-q",
			Undo: "ctrl-z",
		},
	}
}

// DefaultPath is the configuration file read when none is given.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".ted.toml")
}

// Load reads the configuration at path over the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := Parse(data, c); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML data into c and validates the result.
func Parse(data []byte, c *Config) error {
	if err := toml.Unmarshal(data, c); err != nil {
		return err
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	switch c.Display {
	case DisplayTermbox, DisplayANSI:
	default:
		return fmt.Errorf("unknown display %q", c.Display)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative: %d", c.HistoryLimit)
	}
	quit, err := bindableKey(c.Keys.Quit)
	if err != nil {
		return fmt.Errorf("keys.quit: %w", err)
	}
	undo, err := bindableKey(c.Keys.Undo)
	if err != nil {
		return fmt.Errorf("keys.undo: %w", err)
	}
	if quit == undo {
		return fmt.Errorf("keys.quit and keys.undo are both %q", c.Keys.Quit)
	}
	return nil
}

// Keys with fixed meanings can't be rebound. Ctrl-M, Ctrl-H and Ctrl-I
// arrive as Enter, Backspace and Tab.
var reservedKeys = map[ted.Key]string{
	ted.KeyEnter:     "enter",
	ted.KeyBackspace: "backspace",
	ted.KeyTab:       "tab",
	ted.KeyEsc:       "escape",
}

func bindableKey(name string) (ted.Key, error) {
	k, err := ParseKey(name)
	if err != nil {
		return 0, err
	}
	if reserved, ok := reservedKeys[k]; ok {
		return 0, fmt.Errorf("%q is the %s key", name, reserved)
	}
	return k, nil
}

// QuitKey and UndoKey return the bound keys. They assume c has been validated.
func (c *Config) QuitKey() ted.Key {
	k, _ := ParseKey(c.Keys.Quit)
	return k
}

func (c *Config) UndoKey() ted.Key {
	k, _ := ParseKey(c.Keys.Undo)
	return k
}

// ParseKey converts names like "ctrl-q" or "esc" into keys.
func ParseKey(name string) (ted.Key, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if letter, ok := strings.CutPrefix(s, "ctrl-"); ok {
		if len(letter) == 1 {
			if k, ok := ted.CtrlKey(rune(letter[0])); ok {
				return k, nil
			}
		}
		return 0, fmt.Errorf("unsupported key %q", name)
	}
	switch s {
	case "esc", "escape":
		return ted.KeyEsc, nil
	case "tab":
		return ted.KeyTab, nil
	}
	return 0, fmt.Errorf("unsupported key %q", name)
}
