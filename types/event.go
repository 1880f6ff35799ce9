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
package types

// Event types
const (
	EventKey = iota
	EventResize
	EventError
	EventNone
)

// An Event is a decoded unit of terminal input.
// Printable characters arrive in Ch with Key set to zero.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Alt  bool // the key was prefixed by ESC or pressed with Alt
	Err  error
}

type Key int

const (
	KeyUnsupported Key = iota + 1
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyShiftHome
	KeyShiftEnd
	KeyPgup
	KeyPgdn
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyBackspace2
	KeyTab
	KeyEnter
	KeyEsc
	KeySpace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
)

// ControlKey returns the key for a control byte (0x01-0x1f, 0x7f), or KeyUnsupported.
// Tab, line feed, carriage return, backspace and escape map to their named keys.
func ControlKey(b byte) Key {
	switch b {
	case 0x08:
		return KeyBackspace
	case 0x09:
		return KeyTab
	case 0x0a:
		return KeyCtrlJ
	case 0x0d:
		return KeyEnter
	case 0x1b:
		return KeyEsc
	case 0x7f:
		return KeyBackspace2
	}
	if b >= 0x01 && b <= 0x1a {
		return controlLetters[b-1]
	}
	return KeyUnsupported
}

var controlLetters = [26]Key{
	KeyCtrlA, KeyCtrlB, KeyCtrlC, KeyCtrlD, KeyCtrlE, KeyCtrlF, KeyCtrlG,
	KeyBackspace, KeyTab, KeyCtrlJ, KeyCtrlK, KeyCtrlL, KeyEnter, KeyCtrlN,
	KeyCtrlO, KeyCtrlP, KeyCtrlQ, KeyCtrlR, KeyCtrlS, KeyCtrlT, KeyCtrlU,
	KeyCtrlV, KeyCtrlW, KeyCtrlX, KeyCtrlY, KeyCtrlZ,
}
