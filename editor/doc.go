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

// Package editor implements the text engine of ued.
// The whole document lives in one byte slice allocated by the host, so the
// engine never grows its memory after creation. Only the rows that are on
// screen are indexed: the engine keeps the offset of the first byte of each
// visible row and patches those offsets as text is inserted and deleted.
// Every operation either applies completely or leaves the state untouched;
// operations at the edges of the document are silent no-ops.
package editor
