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

package commander

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/steelseries/golisp"

	"github.com/timburks/ued/editor"
	ued "github.com/timburks/ued/types"
)

func setup(t *testing.T, size int, text string) (*Commander, *editor.Engine) {
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
	return NewCommander(e), e
}

func keyEvent(key ued.Key) *ued.Event {
	return &ued.Event{Type: ued.EventKey, Key: key}
}

func charEvent(ch rune) *ued.Event {
	return &ued.Event{Type: ued.EventKey, Ch: ch}
}

func altEvent(ch rune) *ued.Event {
	return &ued.Event{Type: ued.EventKey, Ch: ch, Alt: true}
}

func send(t *testing.T, c *Commander, events ...*ued.Event) {
	t.Helper()
	for _, event := range events {
		if err := c.ProcessEvent(event); err != nil {
			t.Fatalf("ProcessEvent(%+v) failed: %+v", event, err)
		}
	}
}

func typeText(t *testing.T, c *Commander, text string) {
	t.Helper()
	for _, ch := range text {
		send(t, c, charEvent(ch))
	}
}

func TestTyping(t *testing.T) {
	c, e := setup(t, 64, "")
	typeText(t, c, "ab")
	send(t, c, keyEvent(ued.KeySpace), keyEvent(ued.KeyTab), keyEvent(ued.KeyEnter))
	typeText(t, c, "cd")
	send(t, c, keyEvent(ued.KeyCtrlJ), charEvent(0x01), charEvent('é'))
	if got := string(e.Bytes()); got != "ab \t\ncd\n" {
		t.Errorf("Unexpected document: %q", got)
	}
	send(t, c, keyEvent(ued.KeyBackspace2), keyEvent(ued.KeyBackspace))
	if got := string(e.Bytes()); got != "ab \t\nc" {
		t.Errorf("Unexpected document after backspaces: %q", got)
	}
}

func TestKeyBindings(t *testing.T) {
	c, e := setup(t, 256, "alpha\nbeta\ngamma\ndelta")
	tests := []struct {
		event  *ued.Event
		offset int
	}{
		{keyEvent(ued.KeyCtrlE), 5},
		{keyEvent(ued.KeyCtrlA), 0},
		{keyEvent(ued.KeyCtrlF), 1},
		{keyEvent(ued.KeyArrowRight), 2},
		{keyEvent(ued.KeyCtrlN), 8},
		{keyEvent(ued.KeyArrowDown), 13},
		{keyEvent(ued.KeyCtrlP), 8},
		{keyEvent(ued.KeyArrowUp), 2},
		{keyEvent(ued.KeyCtrlB), 1},
		{keyEvent(ued.KeyArrowLeft), 0},
		{keyEvent(ued.KeyEnd), 5},
		{keyEvent(ued.KeyHome), 0},
		{altEvent('>'), 22},
		{altEvent('<'), 0},
		{keyEvent(ued.KeyShiftEnd), 22},
		{keyEvent(ued.KeyShiftHome), 0},
	}
	for i, test := range tests {
		send(t, c, test.event)
		if e.GetOffset() != test.offset {
			t.Errorf("Step %d (%+v): offset %d, expected %d", i, test.event, e.GetOffset(), test.offset)
		}
	}
}

func TestDeleteKeys(t *testing.T) {
	c, e := setup(t, 64, "one two\nthree")
	send(t, c, keyEvent(ued.KeyCtrlD), keyEvent(ued.KeyDelete))
	if got := string(e.Bytes()); got != "e two\nthree" {
		t.Errorf("Unexpected document after deletes: %q", got)
	}
	send(t, c, keyEvent(ued.KeyCtrlK), keyEvent(ued.KeyCtrlK))
	if got := string(e.Bytes()); got != "three" {
		t.Errorf("Unexpected document after kills: %q", got)
	}
}

func TestPaging(t *testing.T) {
	c, e := setup(t, 256, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	send(t, c, keyEvent(ued.KeyCtrlV))
	if string(e.Line(0)) != "3" {
		t.Errorf("Unexpected top row after C-v: %q", e.Line(0))
	}
	send(t, c, altEvent('v'))
	if string(e.Line(0)) != "0" {
		t.Errorf("Unexpected top row after M-v: %q", e.Line(0))
	}
	send(t, c, keyEvent(ued.KeyPgdn), keyEvent(ued.KeyPgup))
	if string(e.Line(0)) != "0" {
		t.Errorf("Unexpected top row after PgDn PgUp: %q", e.Line(0))
	}
}

func TestRedrawAndStatus(t *testing.T) {
	c, e := setup(t, 16, "abc")
	e.ConsumeDrawMode()
	send(t, c, keyEvent(ued.KeyCtrlG))
	if m := e.ConsumeDrawMode(); m != ued.DrawFull {
		t.Errorf("C-g should request a full redraw, got %s", m)
	}
	send(t, c, keyEvent(ued.KeyCtrlQ))
	if c.GetMessage() != e.Status() {
		t.Errorf("C-q should show the status, got %q", c.GetMessage())
	}
	send(t, c, keyEvent(ued.KeyArrowRight))
	if c.GetMessage() != "" {
		t.Errorf("The next key should clear the message, got %q", c.GetMessage())
	}
	send(t, c, &ued.Event{Type: ued.EventResize})
	if m := e.ConsumeDrawMode(); m != ued.DrawFull {
		t.Errorf("A resize should request a full redraw, got %s", m)
	}
}

func TestQuitKeys(t *testing.T) {
	c, _ := setup(t, 16, "")
	send(t, c, keyEvent(ued.KeyEsc))
	if c.IsRunning() || c.ShouldSave() {
		t.Errorf("ESC should quit without saving")
	}

	c, _ = setup(t, 16, "")
	send(t, c, keyEvent(ued.KeyCtrlX))
	if c.GetMode() != ued.ModePrefix || c.GetMessage() != "C-x- " {
		t.Errorf("C-x should start a prefix: mode %s message %q", c.GetModeName(), c.GetMessage())
	}
	send(t, c, keyEvent(ued.KeyCtrlC))
	if c.IsRunning() || c.ShouldSave() {
		t.Errorf("C-x C-c should quit without saving")
	}

	c, _ = setup(t, 16, "")
	send(t, c, keyEvent(ued.KeyCtrlX), keyEvent(ued.KeyCtrlS))
	if c.IsRunning() || !c.ShouldSave() {
		t.Errorf("C-x C-s should save and quit")
	}
}

func TestPrefixCancel(t *testing.T) {
	c, e := setup(t, 16, "")
	send(t, c, keyEvent(ued.KeyCtrlX), charEvent('a'))
	if !c.IsRunning() || c.GetMode() != ued.ModeEdit || c.GetMessage() != "" {
		t.Errorf("Another key should cancel the prefix: mode %s message %q", c.GetModeName(), c.GetMessage())
	}
	if e.Len() != 0 {
		t.Errorf("The cancelling key should not be inserted")
	}
}

func TestBufferFull(t *testing.T) {
	c, e := setup(t, 6, "")
	typeText(t, c, "abcd")
	if got := string(e.Bytes()); got != "abc" {
		t.Errorf("Unexpected document: %q", got)
	}
	if c.GetMessage() != "buffer full" {
		t.Errorf("Expected a buffer full message, got %q", c.GetMessage())
	}
}

func TestMessageBarText(t *testing.T) {
	c, _ := setup(t, 16, "")
	c.SetMessage("*** Insufficient memory! ***")
	if got := c.GetMessageBarText(13); got != "*** Insuffici" {
		t.Errorf("Unexpected truncation: %q", got)
	}
	c.SetMessage("日本語")
	if got := c.GetMessageBarText(5); got != "日本" {
		t.Errorf("Wide characters should be cut by cell width: %q", got)
	}
	send(t, c, altEvent(':'))
	typeText(t, c, "(status")
	if got := c.GetMessageBarText(40); got != "Eval: (status" {
		t.Errorf("Unexpected lisp line: %q", got)
	}
}

func TestLispLine(t *testing.T) {
	c, e := setup(t, 64, "abc\ndef")
	send(t, c, altEvent(':'))
	if c.GetMode() != ued.ModeLisp {
		t.Fatalf("M-: should open the lisp line, mode %s", c.GetModeName())
	}
	typeText(t, c, "(move-down")
	send(t, c, keyEvent(ued.KeySpace))
	typeText(t, c, "1x")
	send(t, c, keyEvent(ued.KeyBackspace2))
	typeText(t, c, ")")
	if c.GetLispText() != "(move-down 1)" {
		t.Errorf("Unexpected lisp text: %q", c.GetLispText())
	}
	send(t, c, keyEvent(ued.KeyEnter))
	if c.GetMode() != ued.ModeEdit {
		t.Errorf("Enter should leave the lisp line, mode %s", c.GetModeName())
	}
	if e.GetOffset() != 4 || c.GetMessage() != "4" {
		t.Errorf("Unexpected result: offset %d message %q", e.GetOffset(), c.GetMessage())
	}

	send(t, c, altEvent(':'))
	typeText(t, c, "(insert-string 7)")
	send(t, c, keyEvent(ued.KeyEnter))
	if !strings.Contains(c.GetMessage(), "insert-string requires a string") {
		t.Errorf("Expected an error message, got %q", c.GetMessage())
	}

	send(t, c, altEvent(':'))
	typeText(t, c, "(kill-line)")
	send(t, c, keyEvent(ued.KeyEsc))
	if c.GetMode() != ued.ModeEdit || e.Len() != 7 {
		t.Errorf("ESC should cancel the lisp line: mode %s length %d", c.GetModeName(), e.Len())
	}
}

func TestEval(t *testing.T) {
	c, e := setup(t, 64, "")
	value, err := c.Eval(`(insert-string "hello")
(insert-char 10)
(insert-char 9)
(insert-char 10)
(document-start)
(move-right 2)
(delete-char 2)
(buffer-length)`)
	if err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if got := string(e.Bytes()); got != "heo\n\t\n" {
		t.Errorf("Unexpected document: %q", got)
	}
	if s := golisp.String(value); s != "6" {
		t.Errorf("Unexpected value: %s", s)
	}
	if _, err := c.Eval("(move-down 1 2)"); err == nil {
		t.Errorf("Expected an error for two arguments")
	}
	if _, err := c.Eval("(insert-char 300)"); err == nil {
		t.Errorf("Expected an error for a character out of range")
	}
	if active != nil {
		t.Errorf("Eval should restore the active commander")
	}
}

func TestEvalQueries(t *testing.T) {
	c, e := setup(t, 64, "xyz")
	tests := []struct {
		script string
		value  string
	}{
		{"(cursor-offset)", "0"},
		{"(line-end)", "3"},
		{"(buffer-length)", "3"},
		{"(modified?)", "#f"},
		{"(insert-char 65)", "4"},
		{"(modified?)", "#t"},
		{"MAX-ROWS", "25"},
	}
	for _, test := range tests {
		value, err := c.Eval(test.script)
		if err != nil {
			t.Errorf("Eval(%q) failed: %+v", test.script, err)
			continue
		}
		if s := golisp.String(value); s != test.value {
			t.Errorf("Eval(%q) = %s, expected %s", test.script, s, test.value)
		}
	}
	value, err := c.Eval("(status)")
	if err != nil || !strings.Contains(golisp.String(value), e.Status()) {
		t.Errorf("Unexpected status: %s %+v", golisp.String(value), err)
	}
}

func TestInputError(t *testing.T) {
	c, _ := setup(t, 16, "")
	if err := c.ProcessEvent(&ued.Event{Type: ued.EventError, Err: io.EOF}); !errors.Is(err, io.EOF) {
		t.Errorf("Expected the input error, got %+v", err)
	}
	if c.IsRunning() {
		t.Errorf("An input error should stop the commander")
	}
}

func TestInsertCharRejectsControlBytes(t *testing.T) {
	c, e := setup(t, 64, "ab")
	for _, script := range []string{"(insert-char 0)", "(insert-char 1)", "(insert-char 13)", "(insert-char 27)"} {
		if _, err := c.Eval(script); err == nil {
			t.Errorf("Expected an error for %s", script)
		}
	}
	if e.IsModified() || string(e.Bytes()) != "ab" {
		t.Errorf("Control bytes reached the document: %q", e.Bytes())
	}
	if _, err := c.Eval("(insert-char 9) (insert-char 10) (insert-char 32)"); err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if got := string(e.Bytes()); got != "\t\n ab" {
		t.Errorf("Unexpected document: %q", got)
	}
	// what is saved loads back unchanged
	reloaded, _ := setup(t, 64, string(e.Bytes()))
	if got := string(reloaded.editor.Bytes()); got != string(e.Bytes()) {
		t.Errorf("Document changed by a reload: %q", got)
	}
}
