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
	ued "github.com/timburks/ued/types"
)

// DeleteCharacter deletes the character at the cursor.
type DeleteCharacter struct {
	operation
}

func (op *DeleteCharacter) Perform(e ued.Editor, multiplier int) error {
	for i := op.count(multiplier); i > 0; i-- {
		e.DeleteForward()
	}
	return nil
}

// Backspace deletes the character before the cursor.
type Backspace struct {
	operation
}

func (op *Backspace) Perform(e ued.Editor, multiplier int) error {
	for i := op.count(multiplier); i > 0; i-- {
		e.DeleteBackward()
	}
	return nil
}

// KillLine deletes to the end of the line, or joins the next line when already there.
type KillLine struct {
	operation
}

func (op *KillLine) Perform(e ued.Editor, multiplier int) error {
	for i := op.count(multiplier); i > 0; i-- {
		e.KillToEndOfLine()
	}
	return nil
}
