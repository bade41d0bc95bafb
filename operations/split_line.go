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

// SplitLine breaks the row at the cursor and moves to the start of the new row.
type SplitLine struct{}

func (op *SplitLine) Apply(b editor.Buffer, c editor.Cursor) (editor.Buffer, editor.Cursor) {
	b = b.SplitLine(c.Row, c.Col)
	return b, editor.Cursor{Row: c.Row + 1, Col: 0}
}
