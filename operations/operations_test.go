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
	"errors"
	"testing"

	"github.com/timburks/ued/editor"
	ued "github.com/timburks/ued/types"
)

func newEngine(t *testing.T, size int, text string) *editor.Engine {
	t.Helper()
	e, err := editor.NewEngine(make([]byte, size), 5)
	if err != nil {
		t.Fatalf("NewEngine failed: %+v", err)
	}
	e.Start()
	if err := e.Feed([]byte(text)); err != nil {
		t.Fatalf("Feed failed: %+v", err)
	}
	e.Finish()
	return e
}

func perform(t *testing.T, e ued.Editor, op ued.Operation, multiplier int) {
	t.Helper()
	if err := op.Perform(e, multiplier); err != nil {
		t.Fatalf("Perform failed: %+v", err)
	}
}

func TestMove(t *testing.T) {
	e := newEngine(t, 64, "abcdef\nghijkl\nmnop")
	perform(t, e, &Move{Direction: MoveRight}, 3)
	if e.GetOffset() != 3 {
		t.Errorf("Unexpected offset after moving right: %d", e.GetOffset())
	}
	perform(t, e, &Move{Direction: MoveDown}, 2)
	if e.GetOffset() != 17 || e.GetCursor() != (ued.Point{Row: 2, Col: 3}) {
		t.Errorf("Unexpected position after moving down: %s", e.Status())
	}
	perform(t, e, &Move{Direction: MoveUp}, 0)
	if e.GetCursor().Row != 1 {
		t.Errorf("A zero multiplier should move once: %s", e.Status())
	}
	perform(t, e, &Move{operation: operation{Multiplier: 2}, Direction: MoveLeft}, 10)
	if e.GetOffset() != 8 {
		t.Errorf("The operation multiplier should win: %s", e.Status())
	}
	if err := (&Move{Direction: 7}).Perform(e, 1); err == nil {
		t.Errorf("Expected an error for an invalid direction")
	}
}

func TestJump(t *testing.T) {
	e := newEngine(t, 64, "abc\ndef")
	perform(t, e, &Jump{Target: JumpToEndOfLine}, 1)
	if e.GetOffset() != 3 {
		t.Errorf("Unexpected offset at end of line: %d", e.GetOffset())
	}
	perform(t, e, &Jump{Target: JumpToStartOfLine}, 1)
	if e.GetOffset() != 0 {
		t.Errorf("Unexpected offset at start of line: %d", e.GetOffset())
	}
	perform(t, e, &Jump{Target: JumpToEndOfDocument}, 5)
	if e.GetOffset() != 7 {
		t.Errorf("Unexpected offset at end of document: %d", e.GetOffset())
	}
	perform(t, e, &Jump{Target: JumpToStartOfDocument}, 1)
	if e.GetOffset() != 0 {
		t.Errorf("Unexpected offset at start of document: %d", e.GetOffset())
	}
	if err := (&Jump{Target: -1}).Perform(e, 1); err == nil {
		t.Errorf("Expected an error for an invalid target")
	}
}

func TestPage(t *testing.T) {
	e := newEngine(t, 256, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n10\n11")
	perform(t, e, &Page{Direction: MoveDown}, 1)
	// five rows keep two rows of context
	if string(e.Line(0)) != "3" {
		t.Errorf("Unexpected top row after page down: %q", e.Line(0))
	}
	perform(t, e, &Page{Direction: MoveUp}, 1)
	if string(e.Line(0)) != "0" {
		t.Errorf("Unexpected top row after page up: %q", e.Line(0))
	}
	if err := (&Page{Direction: MoveLeft}).Perform(e, 1); err == nil {
		t.Errorf("Expected an error for a sideways page")
	}
}

func TestInsert(t *testing.T) {
	e := newEngine(t, 64, "")
	perform(t, e, &InsertCharacter{Character: 'x'}, 3)
	perform(t, e, &InsertNewline{}, 1)
	perform(t, e, &InsertText{Text: "a\tb\nc\x01"}, 2)
	if got := string(e.Bytes()); got != "xxx\na\tb\nca\tb\nc" {
		t.Errorf("Unexpected document: %q", got)
	}
	if !e.IsModified() {
		t.Errorf("Insertions should mark the document modified")
	}
}

// Six bytes of storage hold three characters; a fourth insert would meet the reserved bytes.
func TestInsertBufferFull(t *testing.T) {
	e := newEngine(t, 6, "")
	err := (&InsertText{Text: "abcdef"}).Perform(e, 1)
	if !errors.Is(err, editor.ErrBufferFull) {
		t.Errorf("Expected ErrBufferFull, got %+v", err)
	}
	if got := string(e.Bytes()); got != "abc" {
		t.Errorf("Unexpected document: %q", got)
	}
	if err := (&InsertCharacter{Character: 'z'}).Perform(e, 1); !errors.Is(err, editor.ErrBufferFull) {
		t.Errorf("Expected ErrBufferFull, got %+v", err)
	}
	if err := (&InsertNewline{}).Perform(e, 1); !errors.Is(err, editor.ErrBufferFull) {
		t.Errorf("Expected ErrBufferFull, got %+v", err)
	}
}

func TestDelete(t *testing.T) {
	e := newEngine(t, 64, "hello world\nnext line")
	perform(t, e, &DeleteCharacter{}, 6)
	if got := string(e.Bytes()); got != "world\nnext line" {
		t.Errorf("Unexpected document after delete: %q", got)
	}
	perform(t, e, &KillLine{}, 2)
	if got := string(e.Bytes()); got != "next line" {
		t.Errorf("Unexpected document after kill: %q", got)
	}
	perform(t, e, &Jump{Target: JumpToEndOfLine}, 1)
	perform(t, e, &Backspace{}, 5)
	if got := string(e.Bytes()); got != "next" {
		t.Errorf("Unexpected document after backspace: %q", got)
	}
}

func TestRedraw(t *testing.T) {
	e := newEngine(t, 16, "a")
	e.ConsumeDrawMode()
	perform(t, e, &Redraw{}, 1)
	if m := e.ConsumeDrawMode(); m != ued.DrawFull {
		t.Errorf("Unexpected draw mode after redraw: %s", m)
	}
}

func TestNamed(t *testing.T) {
	for _, name := range Names() {
		op, err := Named(name)
		if err != nil || op == nil {
			t.Errorf("Named(%q) failed: %+v", name, err)
		}
	}
	if _, err := Named("self-destruct"); err == nil {
		t.Errorf("Expected an error for an unknown name")
	}
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names are not sorted: %v", names)
			break
		}
	}
	e := newEngine(t, 64, "ab\ncd")
	op, _ := Named("move-down")
	perform(t, e, op, 1)
	op, _ = Named("line-end")
	perform(t, e, op, 1)
	if e.GetOffset() != 5 {
		t.Errorf("Named operations moved to %d", e.GetOffset())
	}
}
