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

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/steelseries/golisp"

	"github.com/timburks/ued/commander"
	"github.com/timburks/ued/config"
	"github.com/timburks/ued/editor"
	"github.com/timburks/ued/screen"
	ued "github.com/timburks/ued/types"
)

const (
	logName            = ".uedlog"
	insufficientMemory = "*** Insufficient memory! ***"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Output(1, err.Error())
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg := config.Defaults()
	if err := cfg.LoadFile(config.DefaultPath()); err != nil {
		return err
	}
	if err := cfg.ParseArgs(args); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Script != "" {
		// Run a script and exit.
		return runScript(cfg, os.Stdout)
	}

	// Open a log file.
	if home, err := os.UserHomeDir(); err == nil {
		f, err := os.OpenFile(filepath.Join(home, logName), os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			return err
		}
		log.SetOutput(f)
		defer f.Close()
	}

	// Create a screen to manage display.
	s, err := openScreen(cfg)
	if err != nil {
		return err
	}
	e, message, err := newEditor(cfg, s.GetSize().Rows)
	if err != nil {
		s.Close()
		return err
	}

	// The commander converts user inputs into operations on the editor.
	c := commander.NewCommander(e)
	c.SetDebug(cfg.Debug)
	c.SetMessage(message)

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
	s.Close()

	if c.ShouldSave() {
		return save(e, cfg.FileName)
	}
	return nil
}

func openScreen(cfg *config.Config) (ued.Screen, error) {
	if cfg.Driver == config.DriverANSI {
		s, err := screen.NewANSIScreen(cfg.Cols)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := screen.NewTermboxScreen(cfg.Cols)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// newEditor creates the editor and loads the document named in cfg.
// A document too large for the buffer is loaded in part; the returned message says so.
func newEditor(cfg *config.Config, terminalRows int) (*editor.Engine, string, error) {
	e, err := editor.NewEngine(make([]byte, cfg.BufferSize), cfg.FitRows(terminalRows))
	if err != nil {
		return nil, "", err
	}
	if err := e.SetTabWidth(cfg.TabWidth); err != nil {
		return nil, "", err
	}
	if cfg.FileName == "" {
		e.Finish()
		return e, "", nil
	}
	err = load(e, cfg.FileName)
	if errors.Is(err, editor.ErrBufferFull) {
		log.Printf("%s: loaded %d bytes, %v", cfg.FileName, e.Len(), err)
		return e, insufficientMemory, nil
	}
	if err != nil {
		return nil, "", err
	}
	log.Printf("%s: loaded %d bytes", cfg.FileName, e.Len())
	return e, "", nil
}

// load reads a file into the editor. A file that doesn't exist yet starts an empty document.
func load(e *editor.Engine, filename string) error {
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		e.Start()
		e.Finish()
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()
	if err := e.Import(f); err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	return nil
}

// save writes the document if it has changed since it was loaded or saved.
func save(e *editor.Engine, filename string) error {
	if !e.IsModified() {
		return nil
	}
	if filename == "" {
		return errors.New("no file name to save to")
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	n, err := e.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	e.ClearModified()
	log.Printf("%s: saved %d bytes", filename, n)
	return nil
}

// runScript evaluates a lisp file against the document, prints the result and saves any changes.
func runScript(cfg *config.Config, out io.Writer) error {
	script, err := os.ReadFile(cfg.Script)
	if err != nil {
		return err
	}
	e, message, err := newEditor(cfg, 0)
	if err != nil {
		return err
	}
	if message != "" {
		return fmt.Errorf("%s: %w", cfg.FileName, editor.ErrBufferFull)
	}
	c := commander.NewCommander(e)
	value, err := c.Eval(string(script))
	if err != nil {
		return fmt.Errorf("evaluating %s: %w", cfg.Script, err)
	}
	fmt.Fprintln(out, golisp.String(value))
	return save(e, cfg.FileName)
}
