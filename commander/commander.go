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
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/ued/editor"
	"github.com/timburks/ued/operations"
	ued "github.com/timburks/ued/types"
)

const (
	prefixMessage = "C-x- "
	fullMessage   = "buffer full"
	lispPrompt    = "Eval: "
)

// The Commander converts user input into operations on the editor.
type Commander struct {
	editor   ued.Editor
	mode     int    // editor mode
	debug    bool   // debug mode logs every event
	lispText string // lisp command as it is being typed
	message  string // status message
	save     bool   // the document should be written before exiting
}

// keys bound to named operations in edit mode
var editKeys = map[ued.Key]string{
	ued.KeyArrowLeft:  "move-left",
	ued.KeyCtrlB:      "move-left",
	ued.KeyArrowRight: "move-right",
	ued.KeyCtrlF:      "move-right",
	ued.KeyArrowUp:    "move-up",
	ued.KeyCtrlP:      "move-up",
	ued.KeyArrowDown:  "move-down",
	ued.KeyCtrlN:      "move-down",
	ued.KeyHome:       "line-start",
	ued.KeyCtrlA:      "line-start",
	ued.KeyEnd:        "line-end",
	ued.KeyCtrlE:      "line-end",
	ued.KeyShiftHome:  "document-start",
	ued.KeyShiftEnd:   "document-end",
	ued.KeyPgup:       "page-up",
	ued.KeyPgdn:       "page-down",
	ued.KeyCtrlV:      "page-down",
	ued.KeyEnter:      "insert-newline",
	ued.KeyCtrlJ:      "insert-newline",
	ued.KeyTab:        "insert-tab",
	ued.KeyDelete:     "delete-char",
	ued.KeyCtrlD:      "delete-char",
	ued.KeyBackspace:  "delete-backward",
	ued.KeyBackspace2: "delete-backward",
	ued.KeyCtrlK:      "kill-line",
	ued.KeyCtrlG:      "redraw",
}

// ESC-prefixed characters bound to named operations
var metaKeys = map[rune]string{
	'<': "document-start",
	'>': "document-end",
	'v': "page-up",
	'V': "page-up",
}

func NewCommander(e ued.Editor) *Commander {
	return &Commander{editor: e, mode: ued.ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) GetModeName() string {
	switch c.mode {
	case ued.ModeEdit:
		return "edit"
	case ued.ModePrefix:
		return "prefix"
	case ued.ModeLisp:
		return "lisp"
	case ued.ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) IsRunning() bool {
	return c.mode != ued.ModeQuit
}

// ShouldSave reports whether the user asked to save on the way out.
func (c *Commander) ShouldSave() bool {
	return c.save
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

// GetMessageBarText returns the message line, cut to fit width cells.
func (c *Commander) GetMessageBarText(width int) string {
	var line string
	switch c.mode {
	case ued.ModeLisp:
		line = lispPrompt + c.lispText
	default:
		line = c.message
	}
	if width < 0 {
		width = 0
	}
	return runewidth.Truncate(line, width, "")
}

func (c *Commander) ProcessEvent(event *ued.Event) error {
	if c.debug {
		log.Printf("event=%+v mode=%s", event, c.GetModeName())
	}
	switch event.Type {
	case ued.EventKey:
		return c.processKey(event)
	case ued.EventResize:
		c.editor.RequestRedraw()
		return nil
	case ued.EventError:
		// input can't be read any further
		c.mode = ued.ModeQuit
		return fmt.Errorf("reading input: %w", event.Err)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *ued.Event) error {
	switch c.mode {
	case ued.ModeEdit:
		return c.processKeyEditMode(event)
	case ued.ModePrefix:
		return c.processKeyPrefixMode(event)
	case ued.ModeLisp:
		return c.processKeyLispMode(event)
	}
	return nil
}

func (c *Commander) processKeyEditMode(event *ued.Event) error {
	key := event.Key
	ch := event.Ch
	c.message = ""

	if event.Alt {
		if key == 0 && ch == ':' {
			c.mode = ued.ModeLisp
			c.lispText = ""
			return nil
		}
		if name, ok := metaKeys[ch]; ok && key == 0 {
			return c.perform(name)
		}
		return nil
	}

	switch key {
	case 0:
		if ch >= ' ' && ch < 0x7f {
			return c.performOperation(&operations.InsertCharacter{Character: byte(ch)})
		}
		return nil
	case ued.KeySpace:
		return c.performOperation(&operations.InsertCharacter{Character: ' '})
	case ued.KeyEsc:
		c.mode = ued.ModeQuit
		return nil
	case ued.KeyCtrlX:
		c.mode = ued.ModePrefix
		c.message = prefixMessage
		return nil
	case ued.KeyCtrlQ:
		c.message = c.editor.Status()
		log.Printf("%s\n%s", c.message, c.editor.DumpLines())
		return nil
	}
	if name, ok := editKeys[key]; ok {
		return c.perform(name)
	}
	return nil
}

func (c *Commander) processKeyPrefixMode(event *ued.Event) error {
	c.message = ""
	c.mode = ued.ModeEdit
	switch event.Key {
	case ued.KeyCtrlC:
		c.mode = ued.ModeQuit
	case ued.KeyCtrlS:
		c.save = true
		c.mode = ued.ModeQuit
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *ued.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case ued.KeyEsc:
			c.mode = ued.ModeEdit
		case ued.KeyEnter, ued.KeyCtrlJ:
			c.mode = ued.ModeEdit
			c.message = c.ParseEval(c.lispText)
		case ued.KeyBackspace, ued.KeyBackspace2:
			if len(c.lispText) > 0 {
				c.lispText = c.lispText[0 : len(c.lispText)-1]
			}
		case ued.KeySpace:
			c.lispText += " "
		}
		return nil
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

// perform runs the operation bound to name once.
func (c *Commander) perform(name string) error {
	op, err := operations.Named(name)
	if err != nil {
		return err
	}
	return c.performOperation(op)
}

func (c *Commander) performOperation(op ued.Operation) error {
	err := op.Perform(c.editor, 1)
	if errors.Is(err, editor.ErrBufferFull) {
		// a full buffer is reported to the user, not to the host
		c.message = fullMessage
		return nil
	}
	if err != nil {
		return fmt.Errorf("performing %T: %w", op, err)
	}
	return nil
}
