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
	"errors"
	"fmt"
	"strings"

	ued "github.com/timburks/ued/types"
)

const (
	MaxRows           = 25 // upper bound on visible rows
	ScrollContextRows = 2  // rows kept visible when paging
	DefaultTabWidth   = 4
	MaxTabWidth       = 8

	// One byte holds the terminator, one is kept free for the insert path.
	reservedBytes = 2

	noLine = -1 // line cache slot past the end of the document
	noGoal = -1 // no column remembered for vertical movement
)

const (
	tab = '\t'
	lf  = '\n'
	eof = 0
)

var (
	ErrBufferFull      = errors.New("buffer full")
	ErrStorageTooSmall = errors.New("storage too small")
	ErrTabWidth        = errors.New("tab width must be between 1 and 8")
)

// The Engine edits one document held in a fixed-size byte buffer supplied by the host.
// It keeps the start offset of every visible row so that screens can render
// without scanning the whole document.
type Engine struct {
	text     []byte       // storage supplied by the host
	max      int          // usable capacity
	length   int          // bytes of document in text
	cursor   int          // byte offset of the cursor
	row      int          // screen row of the cursor
	col      int          // screen column of the cursor, tabs expanded
	goal     int          // column kept across consecutive vertical moves
	lines    [MaxRows]int // start offset of each visible row
	rows     int          // number of visible rows
	tabWidth int          // tab stop width
	modified bool         // set by every successful change
	draw     ued.DrawMode // region to repaint since the last ConsumeDrawMode
}

// NewEngine creates an engine over storage showing the given number of rows.
// Two bytes of storage are reserved; rows above MaxRows are clamped.
func NewEngine(storage []byte, rows int) (*Engine, error) {
	if len(storage) <= reservedBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrStorageTooSmall, len(storage))
	}
	if rows < 1 {
		return nil, fmt.Errorf("row count must be positive, got %d", rows)
	}
	if rows > MaxRows {
		rows = MaxRows
	}
	e := &Engine{
		text:     storage,
		max:      len(storage) - reservedBytes,
		rows:     rows,
		tabWidth: DefaultTabWidth,
	}
	e.Start()
	return e, nil
}

// SetTabWidth changes the tab stop width. Columns already computed are not revisited.
func (e *Engine) SetTabWidth(width int) error {
	if width < 1 || width > MaxTabWidth {
		return ErrTabWidth
	}
	e.tabWidth = width
	return nil
}

func (e *Engine) GetTabWidth() int {
	return e.tabWidth
}

// Start empties the document and resets the cursor and line cache.
func (e *Engine) Start() {
	e.length = 0
	e.lines[0] = 0
	for i := 1; i < MaxRows; i++ {
		e.lines[i] = noLine
	}
	e.cursor = 0
	e.row = 0
	e.col = 0
	e.goal = noGoal
	e.setEOF()
	e.modified = false
	e.draw = ued.DrawNone
}

// Feed appends data to the document, dropping control bytes other than tab and line feed.
// It returns ErrBufferFull when the buffer fills up; the bytes appended before that remain.
func (e *Engine) Feed(data []byte) error {
	var err error
	for _, ch := range data {
		if !(ch == tab || ch == lf || ch >= ' ') {
			continue
		}
		if e.length >= e.max {
			err = ErrBufferFull
			break
		}
		e.text[e.length] = ch
		e.length++
	}
	e.setEOF()
	return err
}

// Finish builds the line cache from the top of the document.
func (e *Engine) Finish() {
	e.setupLines(0, 0)
	e.requestDraw(ued.DrawFull)
}

func (e *Engine) GetRows() int {
	return e.rows
}

func (e *Engine) GetCursor() ued.Point {
	return ued.Point{Row: e.row, Col: e.col}
}

// GetOffset returns the byte offset of the cursor.
func (e *Engine) GetOffset() int {
	return e.cursor
}

func (e *Engine) Len() int {
	return e.length
}

// Capacity returns the number of usable bytes.
func (e *Engine) Capacity() int {
	return e.max
}

func (e *Engine) IsModified() bool {
	return e.modified
}

// ClearModified is called by hosts after the document has been saved.
func (e *Engine) ClearModified() {
	e.modified = false
}

// LineStart returns the offset of the first byte shown on a row,
// or false if the row is past the end of the document.
// Rows outside 0..GetRows()-1 panic.
func (e *Engine) LineStart(row int) (int, bool) {
	offset := e.lines[:e.rows][row]
	if offset == noLine {
		return 0, false
	}
	return offset, true
}

// Line returns the text shown on a row without its line feed, or nil past the end of the document.
// The slice aliases the document and is only valid until the next change.
func (e *Engine) Line(row int) []byte {
	start, ok := e.LineStart(row)
	if !ok {
		return nil
	}
	end := e.lineEnd(start)
	return e.text[start:end:end]
}

func (e *Engine) RequestRedraw() {
	e.requestDraw(ued.DrawFull)
}

// ConsumeDrawMode returns the pending draw mode and resets it.
func (e *Engine) ConsumeDrawMode() ued.DrawMode {
	m := e.draw
	e.draw = ued.DrawNone
	return m
}

func (e *Engine) requestDraw(m ued.DrawMode) {
	if m > e.draw {
		e.draw = m
	}
}

// Status describes the buffer and cursor state on one line.
func (e *Engine) Status() string {
	return fmt.Sprintf("max=%d length=%d col=%d row=%d cursor=%d",
		e.max, e.length, e.col, e.row, e.cursor)
}

// DumpLines lists the line cache with the first bytes of each row.
func (e *Engine) DumpLines() string {
	var b strings.Builder
	for i := 0; i < e.rows; i++ {
		offset := e.lines[i]
		preview := ""
		if offset != noLine {
			end := offset + 2
			if end > e.length {
				end = e.length
			}
			preview = string(e.text[offset:end])
		}
		fmt.Fprintf(&b, "%2d %d (%q)\n", i, offset, preview)
	}
	return b.String()
}
