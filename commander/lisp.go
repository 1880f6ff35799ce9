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

	"github.com/steelseries/golisp"

	"github.com/timburks/ued/editor"
	"github.com/timburks/ued/operations"
	ued "github.com/timburks/ued/types"
)

// golisp primitives are global, so they act on the commander that is evaluating.
var active *Commander

var errNoEditor = errors.New("no editor is active")

func init() {
	for _, name := range operations.Names() {
		golisp.MakePrimitiveFunction(name, "*", operationImpl(name))
	}
	golisp.MakePrimitiveFunction("insert-string", "1", InsertStringImpl)
	golisp.MakePrimitiveFunction("insert-char", "1", InsertCharImpl)
	golisp.MakePrimitiveFunction("status", "0", StatusImpl)
	golisp.MakePrimitiveFunction("modified?", "0", ModifiedImpl)
	golisp.MakePrimitiveFunction("buffer-length", "0", BufferLengthImpl)
	golisp.MakePrimitiveFunction("cursor-offset", "0", CursorOffsetImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", BufferTextImpl)
	golisp.MakePrimitiveFunction("message", "1", MessageImpl)
	golisp.Global.BindTo(golisp.SymbolWithName("MAX-ROWS"), golisp.IntegerWithValue(int64(editor.MaxRows)))
}

func activeEditor() (ued.Editor, error) {
	if active == nil {
		return nil, errNoEditor
	}
	return active.editor, nil
}

// operationImpl makes a primitive that performs a named operation,
// taking an optional integer multiplier: (move-down 3).
func operationImpl(name string) func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e, err := activeEditor()
		if err != nil {
			return nil, err
		}
		multiplier := 1
		if golisp.Length(args) > 1 {
			return nil, fmt.Errorf("%s takes at most one argument", name)
		}
		if golisp.Length(args) == 1 {
			val := golisp.Car(args)
			if !golisp.IntegerP(val) {
				return nil, fmt.Errorf("%s requires an integer argument", name)
			}
			multiplier = int(golisp.IntegerValue(val))
		}
		op, err := operations.Named(name)
		if err != nil {
			return nil, err
		}
		if err := op.Perform(e, multiplier); err != nil {
			return nil, err
		}
		return golisp.IntegerWithValue(int64(e.GetOffset())), nil
	}
}

func InsertStringImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert-string requires a string argument")
	}
	if err := (&operations.InsertText{Text: golisp.StringValue(val)}).Perform(e, 1); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.GetOffset())), nil
}

func InsertCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("insert-char requires an integer argument")
	}
	n := golisp.IntegerValue(val)
	if n < 0 || n > 0xff {
		return nil, fmt.Errorf("insert-char: %d is not a byte", n)
	}
	if n != '\t' && n != '\n' && n < ' ' {
		return nil, fmt.Errorf("insert-char: control character %d can't be inserted", n)
	}
	if err := (&operations.InsertCharacter{Character: byte(n)}).Perform(e, 1); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.GetOffset())), nil
}

func StatusImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(e.Status()), nil
}

func ModifiedImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(e.IsModified()), nil
}

func BufferLengthImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.Len())), nil
}

func CursorOffsetImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.GetOffset())), nil
}

func BufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e, err := activeEditor()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(string(e.Bytes())), nil
}

func MessageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if active == nil {
		return nil, errNoEditor
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("message requires a string argument")
	}
	active.message = golisp.StringValue(val)
	return val, nil
}

func (c *Commander) activate() func() {
	previous := active
	active = c
	return func() { active = previous }
}

// Eval evaluates a script against the commander's editor.
// Several expressions may be given; the value of the last one is returned.
func (c *Commander) Eval(script string) (*golisp.Data, error) {
	defer c.activate()()
	return golisp.ParseAndEvalAll(script)
}

// ParseEval evaluates a lisp command and describes the result for the message line.
func (c *Commander) ParseEval(command string) string {
	defer c.activate()()
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return golisp.String(value)
}
