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

// InsertCharacter inserts a character at the cursor.
type InsertCharacter struct {
	operation
	Character byte
}

func (op *InsertCharacter) Perform(e ued.Editor, multiplier int) error {
	for i := op.count(multiplier); i > 0; i-- {
		if err := e.InsertChar(op.Character); err != nil {
			return err
		}
	}
	return nil
}

// InsertNewline splits the line at the cursor.
type InsertNewline struct {
	operation
}

func (op *InsertNewline) Perform(e ued.Editor, multiplier int) error {
	for i := op.count(multiplier); i > 0; i-- {
		if err := e.InsertNewline(); err != nil {
			return err
		}
	}
	return nil
}

// InsertText types a string at the cursor.
// Line feeds split lines; control characters other than tab are skipped.
type InsertText struct {
	operation
	Text string
}

func (op *InsertText) Perform(e ued.Editor, multiplier int) error {
	for i := op.count(multiplier); i > 0; i-- {
		for j := 0; j < len(op.Text); j++ {
			var err error
			switch ch := op.Text[j]; {
			case ch == '\n':
				err = e.InsertNewline()
			case ch == '\t' || ch >= ' ':
				err = e.InsertChar(ch)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
