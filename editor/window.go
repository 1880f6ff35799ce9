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

// The line cache holds the start offset of each visible row. Offsets grow
// strictly from row to row and once a row is noLine every row below it is too.
// Scans stop at the tracked length, where the terminator byte also sits.

// nextLine returns the start of the line after the one containing offset,
// or noLine if there is none.
func (e *Engine) nextLine(offset int) int {
	if offset == noLine {
		return noLine
	}
	offset = e.lineEnd(offset) + 1
	if offset > e.length {
		return noLine
	}
	return offset
}

// prevLine returns the start of the line before the one starting at offset.
func (e *Engine) prevLine(offset int) int {
	if offset == 0 {
		return 0
	}
	return e.lineHead(offset - 1)
}

// lineHead returns the start of the line containing offset.
func (e *Engine) lineHead(offset int) int {
	for offset > 0 && e.text[offset-1] != lf {
		offset--
	}
	return offset
}

// lineEnd returns the offset of the line feed ending the line, or the document length.
func (e *Engine) lineEnd(offset int) int {
	for offset < e.length && e.text[offset] != lf {
		offset++
	}
	return offset
}

// setupLines fills the cache from row start down, beginning with the line containing offset.
func (e *Engine) setupLines(start, offset int) {
	if start >= e.rows {
		return
	}
	e.updateLines(start, e.rows-start, e.lineHead(offset))
}

// updateLines fills count rows from row start with consecutive lines beginning at offset.
func (e *Engine) updateLines(start, count, offset int) {
	for i := start; i < start+count; i++ {
		if offset == noLine || offset > e.length {
			e.lines[i] = noLine
			offset = noLine
			continue
		}
		e.lines[i] = offset
		offset = e.nextLine(offset)
	}
}

// insertLine opens an empty slot at row line, dropping the last row.
func (e *Engine) insertLine(line int) {
	copy(e.lines[line+1:e.rows], e.lines[line:e.rows-1])
}

// deleteLine removes the slot at row line, leaving the last slot for the caller.
func (e *Engine) deleteLine(line int) {
	copy(e.lines[line:e.rows-1], e.lines[line+1:e.rows])
}

func (e *Engine) halfPage() int {
	if e.rows < 2 {
		return 1
	}
	return e.rows / 2
}

// pageContext is the number of rows kept on screen by PageUp and PageDown.
func (e *Engine) pageContext() int {
	if e.rows-1 < ScrollContextRows {
		return e.rows - 1
	}
	return ScrollContextRows
}

// scrollUp brings up to delta earlier lines into view and returns how many it found.
func (e *Engine) scrollUp(delta int) int {
	offset := e.lines[0]
	found := 0
	for found < delta && offset > 0 {
		offset = e.prevLine(offset)
		found++
	}
	if found == 0 {
		return 0
	}
	copy(e.lines[found:e.rows], e.lines[0:e.rows-found])
	e.updateLines(0, found, offset)
	e.requestDraw(ued.DrawFull)
	return found
}

// scrollDown drops delta rows off the top of the view and fills the bottom.
func (e *Engine) scrollDown(delta int) int {
	if delta <= 0 {
		return 0
	}
	if delta > e.rows {
		delta = e.rows
	}
	bottom := e.lines[e.rows-1]
	copy(e.lines[0:e.rows-delta], e.lines[delta:e.rows])
	e.updateLines(e.rows-delta, delta, e.nextLine(bottom))
	e.requestDraw(ued.DrawFull)
	return delta
}

// moveBottom rebuilds the view so the line starting at offset is on the last row,
// or as low as the start of the document allows, and puts the cursor on it.
func (e *Engine) moveBottom(offset int) {
	top := offset
	for i := 0; i < e.rows-1; i++ {
		top = e.prevLine(top)
	}
	e.updateLines(0, e.rows, top)
	e.row = 0
	for i := e.rows - 1; i > 0; i-- {
		if e.lines[i] == offset {
			e.row = i
			break
		}
	}
	e.cursor = offset
	e.col = 0
	e.goal = noGoal
	e.requestDraw(ued.DrawFull)
}

// PageUp shows the lines above the view, keeping the top rows visible at the bottom.
func (e *Engine) PageUp() {
	var offset int
	if context := e.pageContext(); context == 0 {
		offset = e.prevLine(e.lines[0])
	} else {
		row := context - 1
		if e.row < row {
			row = e.row
		}
		offset = e.lines[row]
	}
	if offset == noLine {
		return
	}
	e.moveBottom(offset)
}

// PageDown shows the lines below the view, keeping the bottom rows visible at the top.
func (e *Engine) PageDown() {
	var offset int
	if row := e.rows - e.pageContext(); row < e.rows {
		offset = e.lines[row]
	} else {
		offset = e.nextLine(e.lines[e.rows-1])
	}
	if offset == noLine {
		return
	}
	e.setupLines(0, offset)
	e.cursor = offset
	e.row = 0
	e.col = 0
	e.goal = noGoal
	e.requestDraw(ued.DrawFull)
}
