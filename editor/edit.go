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

import (
	ued "github.com/timburks/ued/types"
)

// InsertChar inserts ch at the cursor and moves past it.
// A line feed splits the line as InsertNewline does.
func (e *Engine) InsertChar(ch byte) error {
	if ch == lf {
		return e.InsertNewline()
	}
	e.goal = noGoal
	if !e.insert(1) {
		return ErrBufferFull
	}
	e.text[e.cursor] = ch
	e.cursor++
	e.col += e.CharWidth(ch, e.col)
	e.requestDraw(ued.DrawLine)
	return nil
}

// InsertNewline splits the line at the cursor; the cursor moves to the start of the new line.
func (e *Engine) InsertNewline() error {
	e.goal = noGoal
	if !e.insert(1) {
		return ErrBufferFull
	}
	e.requestDraw(ued.DrawBelow)
	e.text[e.cursor] = lf
	e.cursor++
	e.col = 0
	e.row++
	if e.row >= e.rows {
		e.row -= e.scrollDown(e.halfPage())
	} else {
		e.insertLine(e.row)
	}
	e.lines[e.row] = e.cursor
	return nil
}

// DeleteForward removes the character at the cursor, joining lines when it is a line feed.
func (e *Engine) DeleteForward() {
	e.goal = noGoal
	if e.cursor >= e.length {
		return
	}
	ch := e.text[e.cursor]
	if !e.delete(1) {
		return
	}
	e.requestDraw(ued.DrawLine)
	if ch != lf || e.row == e.rows-1 {
		return
	}
	e.requestDraw(ued.DrawBelow)
	e.deleteLine(e.row + 1)
	e.lines[e.rows-1] = e.nextLine(e.lines[e.rows-2])
}

// DeleteBackward removes the character before the cursor.
func (e *Engine) DeleteBackward() {
	e.goal = noGoal
	if e.cursor == 0 {
		return
	}
	ch := e.text[e.cursor-1]
	if ch == lf && e.row == 0 {
		e.row += e.scrollUp(e.halfPage())
	}
	e.cursor--
	if !e.delete(1) {
		return
	}
	e.requestDraw(ued.DrawLine)
	if ch == lf {
		e.row--
		e.updateLines(e.row, e.rows-e.row, e.lines[e.row])
		e.requestDraw(ued.DrawBelow)
	}
	e.col = e.columnOf(e.cursor)
}

// KillToEndOfLine removes the rest of the line, or the line feed when the cursor is on it.
func (e *Engine) KillToEndOfLine() {
	e.goal = noGoal
	if e.cursor >= e.length {
		return
	}
	if e.text[e.cursor] == lf {
		e.DeleteForward()
		return
	}
	e.delete(e.lineEnd(e.cursor) - e.cursor)
	e.requestDraw(ued.DrawLine)
}
