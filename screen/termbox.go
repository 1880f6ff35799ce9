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
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	ued "github.com/timburks/ued/types"
)

// TermboxScreen draws with termbox-go.
type TermboxScreen struct {
	cols    int    // text area width
	message string // message line as last drawn
}

// NewTermboxScreen opens the terminal. Text rows are at most cols wide.
func NewTermboxScreen(cols int) (*TermboxScreen, error) {
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputAlt)
	termbox.SetOutputMode(termbox.OutputNormal)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s := &TermboxScreen{}
	w, _ := termbox.Size()
	s.cols = fitCols(cols, w)
	return s, nil
}

func (s *TermboxScreen) Close() {
	termbox.Close()
}

func (s *TermboxScreen) GetSize() ued.Size {
	var size ued.Size
	size.Cols, size.Rows = termbox.Size()
	return size
}

func (s *TermboxScreen) Render(e ued.Editor, c ued.Commander) {
	m := e.ConsumeDrawMode()
	first, last := rowsToDraw(e, m)
	for row := first; row <= last; row++ {
		s.drawRow(row, rowCells(e, row, s.cols))
	}
	if message := c.GetMessageBarText(s.cols); message != s.message || m >= ued.DrawBelow {
		s.drawMessage(e.GetRows(), message)
	}
	termbox.SetCursor(cursorCell(e, s.cols))
	termbox.Flush()
}

func (s *TermboxScreen) drawRow(row int, cells []byte) {
	for x := 0; x < s.cols; x++ {
		ch := ' '
		if x < len(cells) {
			ch = rune(cells[x])
		}
		termbox.SetCell(x, row, ch, termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (s *TermboxScreen) drawMessage(row int, message string) {
	s.message = message
	x := 0
	for _, ch := range message {
		termbox.SetCell(x, row, ch, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
	for ; x < s.cols; x++ {
		termbox.SetCell(x, row, ' ', termbox.ColorDefault, termbox.ColorDefault)
	}
}

func (s *TermboxScreen) GetNextEvent() *ued.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return translate(event)
}

func translate(event termbox.Event) *ued.Event {
	switch event.Type {
	case termbox.EventKey:
		e := &ued.Event{Type: ued.EventKey, Alt: event.Mod&termbox.ModAlt != 0}
		if event.Key == 0 {
			e.Ch = event.Ch
		} else {
			e.Key = key(event.Key)
		}
		return e
	case termbox.EventResize:
		return &ued.Event{Type: ued.EventResize}
	case termbox.EventError:
		return &ued.Event{Type: ued.EventError, Err: event.Err}
	default:
		return &ued.Event{Type: ued.EventNone}
	}
}

func key(k termbox.Key) ued.Key {
	if k == termbox.KeySpace {
		return ued.KeySpace
	}
	if k < termbox.KeySpace || k == termbox.KeyBackspace2 {
		return ued.ControlKey(byte(k))
	}
	switch k {
	case termbox.KeyArrowDown:
		return ued.KeyArrowDown
	case termbox.KeyArrowLeft:
		return ued.KeyArrowLeft
	case termbox.KeyArrowRight:
		return ued.KeyArrowRight
	case termbox.KeyArrowUp:
		return ued.KeyArrowUp
	case termbox.KeyHome:
		return ued.KeyHome
	case termbox.KeyEnd:
		return ued.KeyEnd
	case termbox.KeyPgup:
		return ued.KeyPgup
	case termbox.KeyPgdn:
		return ued.KeyPgdn
	case termbox.KeyInsert:
		return ued.KeyInsert
	case termbox.KeyDelete:
		return ued.KeyDelete
	case termbox.KeyF1:
		return ued.KeyF1
	case termbox.KeyF2:
		return ued.KeyF2
	case termbox.KeyF3:
		return ued.KeyF3
	case termbox.KeyF4:
		return ued.KeyF4
	case termbox.KeyF5:
		return ued.KeyF5
	case termbox.KeyF6:
		return ued.KeyF6
	case termbox.KeyF7:
		return ued.KeyF7
	case termbox.KeyF8:
		return ued.KeyF8
	case termbox.KeyF9:
		return ued.KeyF9
	case termbox.KeyF10:
		return ued.KeyF10
	default:
		return ued.KeyUnsupported
	}
}
