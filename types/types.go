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
package types

// Commander modes
const (
	ModeEdit   = 0
	ModePrefix = 1 // waiting for the key after C-x
	ModeLisp   = 2
	ModeQuit   = 9999
)

// A DrawMode tells a screen how much of the text area must be repainted.
// Larger values cover everything the smaller ones do.
type DrawMode int

const (
	DrawNone  DrawMode = iota
	DrawLine           // the cursor row only
	DrawBelow          // the cursor row and every row below it
	DrawFull           // every row
)

func (m DrawMode) String() string {
	switch m {
	case DrawNone:
		return "none"
	case DrawLine:
		return "line"
	case DrawBelow:
		return "below"
	case DrawFull:
		return "full"
	default:
		return "unknown"
	}
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Editor is the editing engine as seen by operations, the commander and screens.
type Editor interface {
	// import
	Start()
	Feed(data []byte) error
	Finish()

	// editing
	InsertChar(ch byte) error
	InsertNewline() error
	DeleteForward()
	DeleteBackward()
	KillToEndOfLine()

	// cursor movement
	MoveLeft()
	MoveRight()
	MoveUp()
	MoveDown()
	MoveToStartOfLine()
	MoveToEndOfLine()
	MoveToStartOfDocument()
	MoveToEndOfDocument()
	PageUp()
	PageDown()

	// display
	RequestRedraw()
	ConsumeDrawMode() DrawMode
	GetRows() int
	GetCursor() Point
	LineStart(row int) (int, bool)
	Line(row int) []byte
	CharWidth(ch byte, col int) int

	// state
	GetOffset() int
	Len() int
	IsModified() bool
	Bytes() []byte
	Status() string
	DumpLines() string
}

// Operation is a single logical action of the editor, repeated multiplier times.
type Operation interface {
	Perform(e Editor, multiplier int) error
}

// Commander is the part of the command handler that screens display.
type Commander interface {
	GetMode() int
	GetMessage() string
	GetLispText() string
	GetMessageBarText(width int) string
}

// Screen draws an editor and its message line and delivers input events.
type Screen interface {
	Render(e Editor, c Commander)
	GetNextEvent() *Event
	GetSize() Size
	Close()
}
