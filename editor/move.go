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

// Moves that leave the view scroll it by half a page.

func (e *Engine) MoveLeft() {
	e.goal = noGoal
	if e.cursor == 0 {
		return
	}
	e.cursor--
	if e.text[e.cursor] == lf {
		if e.row == 0 {
			e.row += e.scrollUp(e.halfPage())
		}
		e.row--
	}
	e.col = e.columnOf(e.cursor)
}

func (e *Engine) MoveRight() {
	e.goal = noGoal
	if e.cursor >= e.length {
		return
	}
	ch := e.text[e.cursor]
	e.cursor++
	if ch == lf {
		if e.row == e.rows-1 {
			e.row -= e.scrollDown(e.halfPage())
		}
		e.row++
		e.col = 0
	} else {
		e.col += e.CharWidth(ch, e.col)
	}
}

// MoveUp goes to the previous line, as close to the goal column as it allows.
func (e *Engine) MoveUp() {
	if e.lines[e.row] == 0 {
		return
	}
	if e.goal == noGoal {
		e.goal = e.col
	}
	if e.row == 0 {
		e.row += e.scrollUp(e.halfPage())
	}
	e.row--
	e.cursor, e.col = e.seekColumn(e.goal)
}

// MoveDown goes to the next line, as close to the goal column as it allows.
func (e *Engine) MoveDown() {
	if e.nextLine(e.lines[e.row]) == noLine {
		return
	}
	if e.goal == noGoal {
		e.goal = e.col
	}
	if e.row == e.rows-1 {
		e.row -= e.scrollDown(e.halfPage())
	}
	e.row++
	e.cursor, e.col = e.seekColumn(e.goal)
}

func (e *Engine) MoveToStartOfLine() {
	e.goal = noGoal
	e.cursor = e.lineHead(e.cursor)
	e.col = 0
}

func (e *Engine) MoveToEndOfLine() {
	e.goal = noGoal
	e.cursor = e.lineEnd(e.cursor)
	e.col = e.columnOf(e.cursor)
}

func (e *Engine) MoveToStartOfDocument() {
	e.updateLines(0, e.rows, 0)
	e.cursor = 0
	e.row = 0
	e.col = 0
	e.goal = noGoal
	e.requestDraw(ued.DrawFull)
}

// MoveToEndOfDocument shows the last line on the bottom row and puts the cursor at its end.
func (e *Engine) MoveToEndOfDocument() {
	e.moveBottom(e.lineHead(e.length))
	e.MoveToEndOfLine()
}
