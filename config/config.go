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

// Package config collects ued's settings from defaults, a TOML file and the command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Drivers
const (
	DriverTermbox = "termbox"
	DriverANSI    = "ansi"
)

// Limits on the settings.
const (
	MinBufferSize = 3
	MaxBufferSize = 65534
	MaxRows       = 25
	MaxCols       = 255
	MaxTabWidth   = 8
)

// FileName is the name of the settings file in the home directory.
const FileName = ".uedrc"

var ErrInvalid = errors.New("invalid setting")

type Config struct {
	BufferSize int    `toml:"buffer_size"` // storage size in bytes, including two reserved bytes
	Rows       int    `toml:"rows"`        // text rows; zero fits the terminal
	Cols       int    `toml:"cols"`        // text columns
	TabWidth   int    `toml:"tab_width"`
	Driver     string `toml:"driver"`
	Debug      bool   `toml:"debug"` // log every input event

	Script   string `toml:"-"` // lisp file to evaluate instead of editing interactively
	FileName string `toml:"-"` // document to edit
}

func Defaults() *Config {
	return &Config{
		BufferSize: 1024,
		Rows:       10,
		Cols:       40,
		TabWidth:   4,
		Driver:     DriverTermbox,
	}
}

// DefaultPath returns the location of the settings file, or "" when there is no home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// LoadFile overlays the settings in a TOML file. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// ParseArgs overlays command line arguments, not including the program name.
func (c *Config) ParseArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--size", "--rows", "--cols", "--tab":
			i++
			if i >= len(args) {
				return fmt.Errorf("no value specified for %s option", arg)
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("%s: %w", arg, ErrInvalid)
			}
			switch arg {
			case "--size":
				c.BufferSize = n
			case "--rows":
				c.Rows = n
			case "--cols":
				c.Cols = n
			case "--tab":
				c.TabWidth = n
			}
		case "--ansi":
			c.Driver = DriverANSI
		case "--termbox":
			c.Driver = DriverTermbox
		case "--debug":
			c.Debug = true
		case "--eval": // eval program
			i++
			if i >= len(args) {
				return errors.New("no script specified for --eval option")
			}
			c.Script = args[i]
		default:
			if c.FileName != "" {
				return fmt.Errorf("only one file can be edited, got %s and %s", c.FileName, arg)
			}
			c.FileName = arg
		}
	}
	return nil
}

// Validate checks every setting against its limits.
func (c *Config) Validate() error {
	if c.BufferSize < MinBufferSize || c.BufferSize > MaxBufferSize {
		return fmt.Errorf("buffer size %d is outside %d..%d: %w", c.BufferSize, MinBufferSize, MaxBufferSize, ErrInvalid)
	}
	if c.Rows < 0 || c.Rows > MaxRows {
		return fmt.Errorf("rows %d is outside 1..%d: %w", c.Rows, MaxRows, ErrInvalid)
	}
	if c.Cols < 1 || c.Cols > MaxCols {
		return fmt.Errorf("cols %d is outside 1..%d: %w", c.Cols, MaxCols, ErrInvalid)
	}
	if c.TabWidth < 1 || c.TabWidth > MaxTabWidth {
		return fmt.Errorf("tab width %d is outside 1..%d: %w", c.TabWidth, MaxTabWidth, ErrInvalid)
	}
	if c.Driver != DriverTermbox && c.Driver != DriverANSI {
		return fmt.Errorf("driver %q: %w", c.Driver, ErrInvalid)
	}
	return nil
}

// FitRows returns the number of text rows for a terminal with the given height,
// leaving one row for the message line.
func (c *Config) FitRows(terminalRows int) int {
	rows := c.Rows
	if rows == 0 {
		rows = terminalRows - 1
	}
	if rows > MaxRows {
		rows = MaxRows
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}
