package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Key = sdl.Keycode
type Scancode = sdl.Scancode
type ModifierKey = sdl.Keymod

const (
	KeyUnknown   = sdl.K_UNKNOWN
	KeyEnter     = sdl.K_RETURN
	KeyKPEnter   = sdl.K_KP_ENTER
	KeyBackspace = sdl.K_BACKSPACE
	KeyDelete    = sdl.K_DELETE
	KeyHome      = sdl.K_HOME
	KeyEnd       = sdl.K_END
	KeyLeft      = sdl.K_LEFT
	KeyRight     = sdl.K_RIGHT
	KeyF12       = sdl.K_F12

	ScancodeReturn = sdl.SCANCODE_RETURN
)

// ModAlt matches either alt key.
var ModAlt = ModifierKey(sdl.KMOD_ALT)

var KeyToStringLUT = map[sdl.Keycode]string{
	sdl.K_RETURN:    "RETURN",
	sdl.K_ESCAPE:    "ESCAPE",
	sdl.K_BACKSPACE: "BACKSPACE",
	sdl.K_TAB:       "TAB",
	sdl.K_SPACE:     "SPACE",
	sdl.K_COMMA:     "COMMA",
	sdl.K_MINUS:     "MINUS",
	sdl.K_PERIOD:    "PERIOD",
	sdl.K_SLASH:     "SLASH",
	sdl.K_0:         "0",
	sdl.K_1:         "1",
	sdl.K_2:         "2",
	sdl.K_3:         "3",
	sdl.K_4:         "4",
	sdl.K_5:         "5",
	sdl.K_6:         "6",
	sdl.K_7:         "7",
	sdl.K_8:         "8",
	sdl.K_9:         "9",
	sdl.K_EQUALS:    "EQUALS",
	sdl.K_a:         "a",
	sdl.K_b:         "b",
	sdl.K_c:         "c",
	sdl.K_d:         "d",
	sdl.K_e:         "e",
	sdl.K_f:         "f",
	sdl.K_g:         "g",
	sdl.K_h:         "h",
	sdl.K_i:         "i",
	sdl.K_j:         "j",
	sdl.K_k:         "k",
	sdl.K_l:         "l",
	sdl.K_m:         "m",
	sdl.K_n:         "n",
	sdl.K_o:         "o",
	sdl.K_p:         "p",
	sdl.K_q:         "q",
	sdl.K_r:         "r",
	sdl.K_s:         "s",
	sdl.K_t:         "t",
	sdl.K_u:         "u",
	sdl.K_v:         "v",
	sdl.K_w:         "w",
	sdl.K_x:         "x",
	sdl.K_y:         "y",
	sdl.K_z:         "z",
	sdl.K_F1:        "F1",
	sdl.K_F2:        "F2",
	sdl.K_F3:        "F3",
	sdl.K_F4:        "F4",
	sdl.K_F5:        "F5",
	sdl.K_F6:        "F6",
	sdl.K_F7:        "F7",
	sdl.K_F8:        "F8",
	sdl.K_F9:        "F9",
	sdl.K_F10:       "F10",
	sdl.K_F11:       "F11",
	sdl.K_F12:       "F12",
	sdl.K_INSERT:    "INSERT",
	sdl.K_HOME:      "HOME",
	sdl.K_PAGEUP:    "PAGEUP",
	sdl.K_DELETE:    "DELETE",
	sdl.K_END:       "END",
	sdl.K_PAGEDOWN:  "PAGEDOWN",
	sdl.K_RIGHT:     "RIGHT",
	sdl.K_LEFT:      "LEFT",
	sdl.K_DOWN:      "DOWN",
	sdl.K_UP:        "UP",
	sdl.K_KP_ENTER:  "KP_ENTER",
	sdl.K_KP_PLUS:   "KP_PLUS",
	sdl.K_KP_MINUS:  "KP_MINUS",
	sdl.K_LSHIFT:    "LSHIFT",
	sdl.K_RSHIFT:    "RSHIFT",
	sdl.K_LCTRL:     "LCTRL",
	sdl.K_RCTRL:     "RCTRL",
	sdl.K_LALT:      "LALT",
	sdl.K_RALT:      "RALT",
}

var StringToKeyLUT = map[string]sdl.Keycode{}

func init() {
	for k, v := range KeyToStringLUT {
		StringToKeyLUT[v] = k
	}
}

func StringToKey(s string) sdl.Keycode {
	if key, ok := StringToKeyLUT[s]; ok {
		return key
	}
	return sdl.K_UNKNOWN
}

func KeyToString(k sdl.Keycode) string {
	if s, ok := KeyToStringLUT[k]; ok {
		return s
	}
	return ""
}

func KeyToScancode(k Key) Scancode {
	return sdl.GetScancodeFromKey(k)
}

func legacyKeycode(k Key) int {
	keycode := byte(k)
	if keycode >= 'a' && keycode <= 'z' {
		keycode -= 'a' - 'A'
	}
	return int(keycode)
}
