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

package screen

import (
	"bufio"
	"io"

	ued "github.com/timburks/ued/types"
)

const esc = 0x1b

// A decoder turns terminal input bytes into events.
// ESC followed by another character is reported as that character with Alt set;
// ESC ESC is the escape key itself.
type decoder struct {
	r *bufio.Reader
}

func newDecoder(r io.Reader) *decoder {
	return &decoder{r: bufio.NewReader(r)}
}

func (d *decoder) next() *ued.Event {
	ch, _, err := d.r.ReadRune()
	if err != nil {
		return &ued.Event{Type: ued.EventError, Err: err}
	}
	if ch != esc {
		return plain(ch)
	}
	b, err := d.r.ReadByte()
	if err != nil {
		return &ued.Event{Type: ued.EventError, Err: err}
	}
	switch b {
	case esc:
		return keyEvent(ued.KeyEsc)
	case '[':
		return d.csi()
	case 'O':
		return d.ss3()
	}
	if err := d.r.UnreadByte(); err != nil {
		return &ued.Event{Type: ued.EventError, Err: err}
	}
	ch, _, err = d.r.ReadRune()
	if err != nil {
		return &ued.Event{Type: ued.EventError, Err: err}
	}
	event := plain(ch)
	event.Alt = true
	return event
}

func plain(ch rune) *ued.Event {
	switch {
	case ch == ' ':
		return keyEvent(ued.KeySpace)
	case ch < ' ' || ch == 0x7f:
		return keyEvent(ued.ControlKey(byte(ch)))
	default:
		return &ued.Event{Type: ued.EventKey, Ch: ch}
	}
}

func keyEvent(k ued.Key) *ued.Event {
	return &ued.Event{Type: ued.EventKey, Key: k}
}

// csi decodes the rest of ESC [ params final.
func (d *decoder) csi() *ued.Event {
	var params []int
	param, digits := 0, false
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return &ued.Event{Type: ued.EventError, Err: err}
		}
		switch {
		case b >= '0' && b <= '9':
			param = param*10 + int(b-'0')
			digits = true
			continue
		case b == ';':
			params = append(params, param)
			param, digits = 0, false
			continue
		}
		if digits || len(params) > 0 {
			params = append(params, param)
		}
		return keyEvent(csiKey(b, params))
	}
}

func csiKey(final byte, params []int) ued.Key {
	shifted := len(params) > 1 && params[1] == 2
	switch final {
	case 'A':
		return ued.KeyArrowUp
	case 'B':
		return ued.KeyArrowDown
	case 'C':
		return ued.KeyArrowRight
	case 'D':
		return ued.KeyArrowLeft
	case 'H':
		if shifted {
			return ued.KeyShiftHome
		}
		return ued.KeyHome
	case 'F':
		if shifted {
			return ued.KeyShiftEnd
		}
		return ued.KeyEnd
	case '~':
		if len(params) == 0 {
			return ued.KeyUnsupported
		}
		return tildeKey(params[0], shifted)
	}
	return ued.KeyUnsupported
}

func tildeKey(n int, shifted bool) ued.Key {
	switch {
	case n == 1 || n == 7:
		if shifted {
			return ued.KeyShiftHome
		}
		return ued.KeyHome
	case n == 4 || n == 8:
		if shifted {
			return ued.KeyShiftEnd
		}
		return ued.KeyEnd
	case n == 2:
		return ued.KeyInsert
	case n == 3:
		return ued.KeyDelete
	case n == 5:
		return ued.KeyPgup
	case n == 6:
		return ued.KeyPgdn
	case n >= 11 && n <= 15:
		return ued.KeyF1 + ued.Key(n-11)
	case n >= 17 && n <= 21:
		return ued.KeyF6 + ued.Key(n-17)
	}
	return ued.KeyUnsupported
}

// ss3 decodes the key after ESC O.
func (d *decoder) ss3() *ued.Event {
	b, err := d.r.ReadByte()
	if err != nil {
		return &ued.Event{Type: ued.EventError, Err: err}
	}
	switch {
	case b >= 'P' && b <= 'S':
		return keyEvent(ued.KeyF1 + ued.Key(b-'P'))
	case b == 'H':
		return keyEvent(ued.KeyHome)
	case b == 'F':
		return keyEvent(ued.KeyEnd)
	case b >= 'A' && b <= 'D':
		return keyEvent(csiKey(b, nil))
	}
	return keyEvent(ued.KeyUnsupported)
}
