package main

import (
	_ "embed" // Support for go:embed resources
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

//go:embed resources/main.lua
var defaultScript string

// Data handlers
func luaRegister(l *lua.LState, name string, f func(*lua.LState) int) {
	l.Register(name, f)
}
func nilArg(l *lua.LState, argi int) bool {
	lv := l.Get(argi)
	return lua.LVIsFalse(lv) && lv != lua.LFalse
}
func strArg(l *lua.LState, argi int) string {
	if !lua.LVCanConvToString(l.Get(argi)) {
		l.RaiseError("\nArgument %v is not a string: %v\n", argi, l.Get(argi))
	}
	return l.ToString(argi)
}
func numArg(l *lua.LState, argi int) float64 {
	num, ok := l.Get(argi).(lua.LNumber)
	if !ok {
		l.RaiseError("\nArgument %v is not a number: %v\n", argi, l.Get(argi))
	}
	return float64(num)
}
func intArg(l *lua.LState, argi int) int {
	return int(numArg(l, argi))
}

// scriptHost drives the frame from Lua. The script defines update(), called
// once per frame, and may define onShortcut(name).
type scriptHost struct {
	l   *lua.LState
	sys *System
	// Error from a platform call that aborted the running chunk. Kept so that
	// fatal video errors reach the caller with their type intact.
	err error
}

func newScriptHost(s *System) *scriptHost {
	h := &scriptHost{l: lua.NewState(), sys: s}
	h.register()
	s.SetShortcutHandler(h.onShortcut)
	return h
}

// load runs the script file, or the built-in script when path is empty.
func (h *scriptHost) load(path string) error {
	if path == "" {
		return h.l.DoString(defaultScript)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("script not found: %v", err)
	}
	return h.l.DoFile(path)
}

func (h *scriptHost) call(name string, args ...lua.LValue) error {
	fn, ok := h.l.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return nil
	}
	h.err = nil
	err := h.l.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	if h.err != nil {
		return h.err
	}
	return err
}

func (h *scriptHost) update() error {
	return h.call("update")
}

func (h *scriptHost) onShortcut(cmd ShortcutCommand) {
	if err := h.call("onShortcut", lua.LString(cmd.String())); err != nil {
		h.sys.fail(err)
	}
}

func (h *scriptHost) Close() {
	h.l.Close()
}

// raise aborts the running chunk with err.
func (h *scriptHost) raise(l *lua.LState, err error) {
	h.err = err
	l.RaiseError("%v", err)
}

func (h *scriptHost) register() {
	l, s := h.l, h.sys
	luaRegister(l, "screenWidth", func(l *lua.LState) int {
		l.Push(lua.LNumber(s.fb.Width()))
		return 1
	})
	luaRegister(l, "screenHeight", func(l *lua.LState) int {
		l.Push(lua.LNumber(s.fb.Height()))
		return 1
	})
	luaRegister(l, "setPixel", func(l *lua.LState) int {
		x, y := intArg(l, 1), intArg(l, 2)
		s.fillRect(x, y, 1, 1, byte(intArg(l, 3)))
		return 0
	})
	luaRegister(l, "fillRect", func(l *lua.LState) int {
		s.fillRect(intArg(l, 1), intArg(l, 2), intArg(l, 3), intArg(l, 4), byte(intArg(l, 5)))
		return 0
	})
	luaRegister(l, "clearScreen", func(l *lua.LState) int {
		s.fillRect(0, 0, s.fb.Width(), s.fb.Height(), byte(intArg(l, 1)))
		return 0
	})
	luaRegister(l, "setPalette", func(l *lua.LState) int {
		i := intArg(l, 1)
		if i < 0 || i >= paletteSize {
			l.RaiseError("\nPalette index %v out of range\n", i)
		}
		colors := make([]byte, paletteSize*4)
		copy(colors[i*4:], []byte{byte(intArg(l, 4)), byte(intArg(l, 3)), byte(intArg(l, 2)), 0})
		if err := s.fb.UpdatePalette(colors, i, 1); err != nil {
			h.raise(l, err)
		}
		return 0
	})
	luaRegister(l, "cursorState", func(l *lua.LState) int {
		c := s.input.Cursor
		tbl := l.NewTable()
		tbl.RawSetString("x", lua.LNumber(c.X))
		tbl.RawSetString("y", lua.LNumber(c.Y))
		tbl.RawSetString("left", lua.LNumber(c.Left))
		tbl.RawSetString("middle", lua.LNumber(c.Middle))
		tbl.RawSetString("right", lua.LNumber(c.Right))
		tbl.RawSetString("any", lua.LNumber(c.Any))
		tbl.RawSetString("wheel", lua.LNumber(c.Wheel))
		tbl.RawSetString("old", lua.LNumber(c.Old))
		l.Push(tbl)
		return 1
	})
	luaRegister(l, "dequeueMouseInput", func(l *lua.LState) int {
		mi, ok := s.input.DequeueMouseInput()
		if !ok {
			l.Push(lua.LNil)
			return 1
		}
		l.Push(lua.LNumber(mi.X))
		l.Push(lua.LNumber(mi.Y))
		l.Push(lua.LNumber(mi.State))
		return 3
	})
	luaRegister(l, "lastKey", func(l *lua.LState) int {
		l.Push(lua.LNumber(s.input.LastKey))
		return 1
	})
	luaRegister(l, "keyName", func(l *lua.LState) int {
		l.Push(lua.LString(KeyToString(Key(intArg(l, 1)))))
		return 1
	})
	luaRegister(l, "keycode", func(l *lua.LState) int {
		l.Push(lua.LNumber(s.ScancodeToKeycode(Scancode(intArg(l, 1)))))
		return 1
	})
	luaRegister(l, "keyDown", func(l *lua.LState) int {
		k := StringToKey(strArg(l, 1))
		l.Push(lua.LBool(k != KeyUnknown && s.input.KeyDown(KeyToScancode(k))))
		return 1
	})
	luaRegister(l, "startTextInput", func(l *lua.LState) int {
		maxLength := 32
		if !nilArg(l, 1) {
			maxLength = intArg(l, 1)
		}
		if maxLength < 0 {
			l.RaiseError("\nText input length %v is negative\n", maxLength)
		}
		s.StartTextInput(make([]byte, maxLength+1))
		return 0
	})
	luaRegister(l, "stopTextInput", func(*lua.LState) int {
		s.StopTextInput()
		return 0
	})
	luaRegister(l, "textInput", func(l *lua.LState) int {
		l.Push(lua.LString(s.text.String()))
		l.Push(lua.LNumber(s.text.Cursor()))
		return 2
	})
	luaRegister(l, "setFullscreenMode", func(l *lua.LState) int {
		mode := FullscreenMode(intArg(l, 1))
		if err := s.SetFullscreenMode(mode); err != nil {
			h.raise(l, err)
		}
		s.cfg.SetValueUpdate("General.FullscreenMode", int(mode))
		if err := s.cfg.Persist(); err != nil {
			s.errLog.Printf("Failed to save config: %v", err)
		}
		return 0
	})
	luaRegister(l, "resolutions", func(l *lua.LState) int {
		tbl := l.NewTable()
		for _, r := range s.catalog.Resolutions() {
			e := l.NewTable()
			e.RawSetString("width", lua.LNumber(r.Width))
			e.RawSetString("height", lua.LNumber(r.Height))
			tbl.Append(e)
		}
		l.Push(tbl)
		return 1
	})
	luaRegister(l, "closestResolution", func(l *lua.LState) int {
		r := s.catalog.Closest(intArg(l, 1), intArg(l, 2))
		l.Push(lua.LNumber(r.Width))
		l.Push(lua.LNumber(r.Height))
		return 2
	})
	luaRegister(l, "setCursor", func(l *lua.LState) int {
		s.SetCursor(CursorID(intArg(l, 1)))
		return 0
	})
	luaRegister(l, "takeScreenshot", func(l *lua.LState) int {
		path, err := s.TakeScreenshot()
		if err != nil {
			s.errLog.Printf("Screenshot failed: %v", err)
			l.Push(lua.LNil)
			return 1
		}
		l.Push(lua.LString(path))
		return 1
	})
	luaRegister(l, "quit", func(*lua.LState) int {
		s.closeflag = true
		return 0
	})
}

// fillRect paints a clipped rectangle of the framebuffer and marks it dirty.
func (s *System) fillRect(x, y, w, h int, index byte) {
	x0, y0 := Max(x, 0), Max(y, 0)
	x1, y1 := Min(x+w, s.fb.Width()), Min(y+h, s.fb.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}
	buf, pitch := s.fb.Buffer(), s.fb.Pitch()
	for row := y0; row < y1; row++ {
		line := buf[row*pitch+x0 : row*pitch+x1]
		for i := range line {
			line[i] = index
		}
	}
	s.layout.SetDirtyRect(x0, y0, x1-x0, y1-y0)
}
