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

// DeleteCharacter deletes the character before the cursor, as backspace does.
// At the start of a row there is nothing to delete and the row is not
// joined with the one above it.
type DeleteCharacter struct{}

func (op *DeleteCharacter) Apply(b editor.Buffer, c editor.Cursor) (editor.Buffer, editor.Cursor) {
	if c.Col == 0 {
		return b, c
	}
	b = b.Delete(c.Row, c.Col-1)
	return b, c.Left(b)
}
