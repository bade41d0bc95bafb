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

// Package editor implements the core text editing functions of ted.
// A Buffer holds the document as immutable rows, a Cursor moves within it,
// and the Editor keeps a History of earlier buffers for undo. Edits reach
// the editor as operations so that each one is preceded by a snapshot.
package editor
