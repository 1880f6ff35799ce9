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

package screen

import (
	ued "github.com/timburks/ued/types"
)

// rowCells returns the characters shown on a row, at most cols wide.
// Tabs are expanded to spaces and other control bytes are not shown.
func rowCells(e ued.Editor, row, cols int) []byte {
	line := e.Line(row)
	cells := make([]byte, 0, cols)
	col := 0
	for _, ch := range line {
		if col >= cols {
			break
		}
		w := e.CharWidth(ch, col)
		switch {
		case ch == '\t':
			for i := 0; i < w && col+i < cols; i++ {
				cells = append(cells, ' ')
			}
		case ch >= ' ':
			cells = append(cells, ch)
		}
		col += w
	}
	return cells
}

// rowsToDraw returns the rows a draw mode covers.
// Everything below the cursor row is redrawn with the whole view.
func rowsToDraw(e ued.Editor, m ued.DrawMode) (first, last int) {
	switch m {
	case ued.DrawFull, ued.DrawBelow:
		return 0, e.GetRows() - 1
	case ued.DrawLine:
		row := e.GetCursor().Row
		return row, row
	default:
		return 0, -1
	}
}

// cursorCell returns the screen position of the cursor; it stays in the last column when the line is wider.
func cursorCell(e ued.Editor, cols int) (col, row int) {
	cursor := e.GetCursor()
	col = cursor.Col
	if col > cols-1 {
		col = cols - 1
	}
	if col < 0 {
		col = 0
	}
	return col, cursor.Row
}

// fitCols limits the configured text width to the terminal width.
func fitCols(cols, terminalCols int) int {
	if terminalCols > 0 && cols > terminalCols {
		cols = terminalCols
	}
	if cols < 1 {
		cols = 1
	}
	return cols
}
