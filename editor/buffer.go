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

package editor

import (
	"io"
)

// size of the reads used by Import
const importChunk = 64

// Import replaces the document with everything read from r.
// On ErrBufferFull the document holds what fit; the line cache is built in every case.
func (e *Engine) Import(r io.Reader) error {
	e.Start()
	defer e.Finish()
	buf := make([]byte, importChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if ferr := e.Feed(buf[:n]); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// WriteTo writes the document, without terminator, to w.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(e.text[:e.length])
	return int64(n), err
}

// Bytes returns a copy of the document.
func (e *Engine) Bytes() []byte {
	b := make([]byte, e.length)
	copy(b, e.text[:e.length])
	return b
}

func (e *Engine) setEOF() {
	e.text[e.length] = eof
}

// insert opens a gap of added bytes at the cursor.
// The cursor and the cursor row's cache slot are left for the caller.
func (e *Engine) insert(added int) bool {
	if added <= 0 || e.length+added >= e.max {
		return false
	}
	e.modified = true
	e.goal = noGoal
	copy(e.text[e.cursor+added:e.length+added], e.text[e.cursor:e.length])
	e.length += added
	e.setEOF()
	e.shiftLinesBelow(added)
	return true
}

// delete removes up to removed bytes at the cursor.
func (e *Engine) delete(removed int) bool {
	if e.cursor >= e.length || removed <= 0 {
		return false
	}
	if removed > e.length-e.cursor {
		removed = e.length - e.cursor
	}
	e.modified = true
	e.goal = noGoal
	copy(e.text[e.cursor:], e.text[e.cursor+removed:e.length])
	e.length -= removed
	e.setEOF()
	e.shiftLinesBelow(-removed)
	return true
}

// shiftLinesBelow moves the cached starts of the rows after the cursor row by delta.
func (e *Engine) shiftLinesBelow(delta int) {
	for i := e.row + 1; i < e.rows; i++ {
		if e.lines[i] != noLine {
			e.lines[i] += delta
		}
	}
}
