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

// Package screen displays an editor on a terminal.
//
// Two drivers are provided: TermboxScreen, built on termbox-go, and
// ANSIScreen, which puts the terminal in raw mode and speaks ANSI escape
// sequences directly. Both redraw only what the editor's draw mode asks for
// and show the commander's message line below the text rows.
package screen
