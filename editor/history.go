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

type snapshot struct {
	buffer Buffer
	cursor Cursor
}

// History is a stack of buffer and cursor snapshots used for undo.
// There is no redo; restoring a snapshot discards it.
type History struct {
	snapshots []snapshot
	limit     int // maximum number of snapshots kept, 0 for no limit
}

func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

func (h *History) Len() int {
	return len(h.snapshots)
}

// Save pushes a snapshot, dropping the oldest one when the history is full.
// Buffers are immutable, so keeping the value is enough to preserve it.
func (h *History) Save(b Buffer, c Cursor) {
	h.snapshots = append(h.snapshots, snapshot{buffer: b, cursor: c})
	if h.limit > 0 && len(h.snapshots) > h.limit {
		h.snapshots = h.snapshots[len(h.snapshots)-h.limit:]
	}
}

// Restore pops the most recent snapshot. It returns false if there was none.
func (h *History) Restore() (Buffer, Cursor, bool) {
	if len(h.snapshots) == 0 {
		return Buffer{}, Cursor{}, false
	}
	last := len(h.snapshots) - 1
	s := h.snapshots[last]
	h.snapshots[last] = snapshot{}
	h.snapshots = h.snapshots[0:last]
	return s.buffer, s.cursor, true
}
