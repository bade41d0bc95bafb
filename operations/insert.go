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
package operations

import (
	"github.com/timburks/ted/editor"
)

// InsertCharacter inserts a character at the cursor and moves past it.
type InsertCharacter struct {
	Character rune
}

func (op *InsertCharacter) Apply(b editor.Buffer, c editor.Cursor) (editor.Buffer, editor.Cursor) {
	b = b.Insert(op.Character, c.Row, c.Col)
	return b, c.Right(b)
}
