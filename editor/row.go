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

// CharWidth returns the number of screen columns ch takes when drawn at column col.
func CharWidth(ch byte, col, tabWidth int) int {
	switch {
	case ch == tab:
		return tabWidth - col%tabWidth
	case ch < ' ':
		return 0
	}
	return 1
}

// CharWidth returns the width of ch at column col using the engine's tab width.
func (e *Engine) CharWidth(ch byte, col int) int {
	return CharWidth(ch, col, e.tabWidth)
}

// columnOf returns the screen column of offset on the cursor row.
func (e *Engine) columnOf(offset int) int {
	col := 0
	for i := e.lines[e.row]; i < offset; i++ {
		col += e.CharWidth(e.text[i], col)
	}
	return col
}

// seekColumn finds the last offset on the cursor row whose column does not pass goal.
func (e *Engine) seekColumn(goal int) (offset, col int) {
	offset = e.lines[e.row]
	for offset < e.length && e.text[offset] != lf {
		w := e.CharWidth(e.text[offset], col)
		if col+w > goal {
			break
		}
		col += w
		offset++
	}
	return offset, col
}
