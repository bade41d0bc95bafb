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
package types

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventNone   = 2
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Key uint16

// Control keys share their values with the bytes a raw terminal sends.
const (
	KeyCtrlA      Key = 0x01
	KeyCtrlB      Key = 0x02
	KeyCtrlC      Key = 0x03
	KeyCtrlD      Key = 0x04
	KeyCtrlE      Key = 0x05
	KeyCtrlF      Key = 0x06
	KeyCtrlG      Key = 0x07
	KeyBackspace  Key = 0x08
	KeyTab        Key = 0x09
	KeyCtrlJ      Key = 0x0A
	KeyCtrlK      Key = 0x0B
	KeyCtrlL      Key = 0x0C
	KeyEnter      Key = 0x0D
	KeyCtrlN      Key = 0x0E
	KeyCtrlO      Key = 0x0F
	KeyCtrlP      Key = 0x10
	KeyCtrlQ      Key = 0x11
	KeyCtrlR      Key = 0x12
	KeyCtrlS      Key = 0x13
	KeyCtrlT      Key = 0x14
	KeyCtrlU      Key = 0x15
	KeyCtrlV      Key = 0x16
	KeyCtrlW      Key = 0x17
	KeyCtrlX      Key = 0x18
	KeyCtrlY      Key = 0x19
	KeyCtrlZ      Key = 0x1A
	KeyEsc        Key = 0x1B
	KeySpace      Key = 0x20
	KeyBackspace2 Key = 0x7F

	KeyArrowUp Key = 0xFFFF - iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyUnsupported
)

// CtrlKey returns the control key produced by holding Ctrl with a letter.
// The second result is false when c is not an ASCII letter.
func CtrlKey(c rune) (Key, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return Key(c-'a') + KeyCtrlA, true
	case c >= 'A' && c <= 'Z':
		return Key(c-'A') + KeyCtrlA, true
	}
	return 0, false
}

// An Event is a single decoded input from a terminal.
// Key events carry either a Key or a printable character in Ch.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}
