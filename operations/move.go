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
package operations

import (
	"fmt"

	ued "github.com/timburks/ued/types"
)

// Move moves the cursor one character or line at a time.
type Move struct {
	operation
	Direction int
}

func (op *Move) Perform(e ued.Editor, multiplier int) error {
	var step func()
	switch op.Direction {
	case MoveUp:
		step = e.MoveUp
	case MoveDown:
		step = e.MoveDown
	case MoveRight:
		step = e.MoveRight
	case MoveLeft:
		step = e.MoveLeft
	default:
		return fmt.Errorf("invalid move direction %d", op.Direction)
	}
	for i := op.count(multiplier); i > 0; i-- {
		step()
	}
	return nil
}

// Jump moves the cursor to the start or end of the line or document.
// Repeating a jump changes nothing, so the multiplier is ignored.
type Jump struct {
	Target int
}

func (op *Jump) Perform(e ued.Editor, multiplier int) error {
	switch op.Target {
	case JumpToStartOfLine:
		e.MoveToStartOfLine()
	case JumpToEndOfLine:
		e.MoveToEndOfLine()
	case JumpToStartOfDocument:
		e.MoveToStartOfDocument()
	case JumpToEndOfDocument:
		e.MoveToEndOfDocument()
	default:
		return fmt.Errorf("invalid jump target %d", op.Target)
	}
	return nil
}

// Page scrolls by a screenful, keeping a little context.
type Page struct {
	operation
	Direction int
}

func (op *Page) Perform(e ued.Editor, multiplier int) error {
	var step func()
	switch op.Direction {
	case MoveUp:
		step = e.PageUp
	case MoveDown:
		step = e.PageDown
	default:
		return fmt.Errorf("invalid page direction %d", op.Direction)
	}
	for i := op.count(multiplier); i > 0; i-- {
		step()
	}
	return nil
}

// Redraw asks the screen to repaint every row.
type Redraw struct{}

func (op *Redraw) Perform(e ued.Editor, multiplier int) error {
	e.RequestRedraw()
	return nil
}
