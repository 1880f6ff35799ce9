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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	ued "github.com/timburks/ued/types"
)

// ANSIScreen drives a terminal in raw mode with ANSI escape sequences.
type ANSIScreen struct {
	in      *decoder
	out     *bufio.Writer
	fd      int         // terminal file descriptor, or -1
	state   *term.State // terminal state to restore on Close
	size    ued.Size    // terminal size
	cols    int         // text area width
	message string      // message line as last drawn
	rows    int         // text rows as last drawn
}

// NewANSIScreen puts the controlling terminal in raw mode. Text rows are at most cols wide.
func NewANSIScreen(cols int) (*ANSIScreen, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("standard input is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		term.Restore(fd, state)
		return nil, fmt.Errorf("reading terminal size: %w", err)
	}
	s := newANSIScreen(os.Stdin, os.Stdout, ued.Size{Rows: h, Cols: w}, cols)
	s.fd = fd
	s.state = state
	return s, nil
}

func newANSIScreen(in io.Reader, out io.Writer, size ued.Size, cols int) *ANSIScreen {
	s := &ANSIScreen{
		in:   newDecoder(in),
		out:  bufio.NewWriter(out),
		fd:   -1,
		size: size,
		cols: fitCols(cols, size.Cols),
	}
	s.out.WriteString("\x1b[2J")
	return s
}

func (s *ANSIScreen) Close() {
	s.move(s.rows+1, 0)
	s.out.WriteString("\x1b[0J")
	s.out.Flush()
	if s.state != nil {
		term.Restore(s.fd, s.state)
	}
}

func (s *ANSIScreen) GetSize() ued.Size {
	return s.size
}

func (s *ANSIScreen) Render(e ued.Editor, c ued.Commander) {
	s.rows = e.GetRows()
	m := e.ConsumeDrawMode()
	first, last := rowsToDraw(e, m)
	for row := first; row <= last; row++ {
		s.move(row, 0)
		s.out.Write(rowCells(e, row, s.cols))
		s.out.WriteString("\x1b[0K")
	}
	if message := c.GetMessageBarText(s.cols); message != s.message || m >= ued.DrawBelow {
		s.message = message
		s.move(s.rows, 0)
		s.out.WriteString(message)
		s.out.WriteString("\x1b[0K")
	}
	col, row := cursorCell(e, s.cols)
	s.move(row, col)
	s.out.Flush()
}

// move positions the terminal cursor; rows and columns count from zero.
func (s *ANSIScreen) move(row, col int) {
	fmt.Fprintf(s.out, "\x1b[%d;%dH", row+1, col+1)
}

func (s *ANSIScreen) GetNextEvent() *ued.Event {
	return s.in.next()
}
