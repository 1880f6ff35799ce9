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
	"sort"

	ued "github.com/timburks/ued/types"
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Jump targets
const (
	JumpToStartOfLine     = 0
	JumpToEndOfLine       = 1
	JumpToStartOfDocument = 2
	JumpToEndOfDocument   = 3
)

type operation struct {
	Multiplier int
}

// count returns how many times to perform the operation.
// A multiplier set on the operation itself takes precedence.
func (op *operation) count(multiplier int) int {
	if op.Multiplier > 0 {
		return op.Multiplier
	}
	if multiplier < 1 {
		return 1
	}
	return multiplier
}

var named = map[string]func() ued.Operation{
	"move-left":       func() ued.Operation { return &Move{Direction: MoveLeft} },
	"move-right":      func() ued.Operation { return &Move{Direction: MoveRight} },
	"move-up":         func() ued.Operation { return &Move{Direction: MoveUp} },
	"move-down":       func() ued.Operation { return &Move{Direction: MoveDown} },
	"line-start":      func() ued.Operation { return &Jump{Target: JumpToStartOfLine} },
	"line-end":        func() ued.Operation { return &Jump{Target: JumpToEndOfLine} },
	"document-start":  func() ued.Operation { return &Jump{Target: JumpToStartOfDocument} },
	"document-end":    func() ued.Operation { return &Jump{Target: JumpToEndOfDocument} },
	"page-up":         func() ued.Operation { return &Page{Direction: MoveUp} },
	"page-down":       func() ued.Operation { return &Page{Direction: MoveDown} },
	"insert-tab":      func() ued.Operation { return &InsertCharacter{Character: '\t'} },
	"insert-newline":  func() ued.Operation { return &InsertNewline{} },
	"delete-char":     func() ued.Operation { return &DeleteCharacter{} },
	"delete-backward": func() ued.Operation { return &Backspace{} },
	"kill-line":       func() ued.Operation { return &KillLine{} },
	"redraw":          func() ued.Operation { return &Redraw{} },
}

// Named returns a new operation for a name such as "move-left" or "kill-line".
func Named(name string) (ued.Operation, error) {
	create, ok := named[name]
	if !ok {
		return nil, fmt.Errorf("no operation named %q", name)
	}
	return create(), nil
}

// Names lists the operations available through Named.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
