package main

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// TextInput edits a NUL terminated byte buffer owned by the caller, the way
// the engine's text boxes expect. The buffer is written in place.
type TextInput struct {
	buf       []byte
	length    int
	maxLength int
	cursor    int
}

// Start attaches buf. One byte is kept free for the terminating NUL.
func (t *TextInput) Start(buf []byte) {
	t.buf = buf
	t.maxLength = len(buf) - 1
	if t.maxLength < 0 {
		t.maxLength = 0
	}
	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		n = len(buf)
	}
	t.cursor = n
	t.length = n
}

func (t *TextInput) Stop() {
	t.buf = nil
}

func (t *TextInput) Active() bool { return t.buf != nil }
func (t *TextInput) Len() int     { return t.length }
func (t *TextInput) Cursor() int  { return t.cursor }

// String returns the text up to the current length.
func (t *TextInput) String() string {
	if t.buf == nil {
		return ""
	}
	return string(t.buf[:t.length])
}

// handleKey applies an editing key. It reports whether the key was one.
func (t *TextInput) handleKey(sym Key) bool {
	switch sym {
	case KeyBackspace:
		if t.buf != nil && t.length > 0 && t.cursor > 0 {
			copy(t.buf[t.cursor-1:], t.buf[t.cursor:t.length])
			t.buf[t.length-1] = 0
			t.cursor--
			t.length--
		}
	case KeyEnd:
		t.cursor = t.length
	case KeyHome:
		t.cursor = 0
	case KeyDelete:
		if t.buf != nil && t.length > 0 && t.cursor != t.length {
			copy(t.buf[t.cursor:], t.buf[t.cursor+1:t.length])
			t.buf[t.length-1] = 0
			t.length--
		}
	case KeyLeft:
		if t.buf != nil && t.cursor > 0 {
			t.cursor--
		}
	case KeyRight:
		if t.buf != nil && t.cursor < t.length {
			t.cursor++
		}
	default:
		return false
	}
	return true
}

// insert places one character from a UTF-8 text event at the cursor.
func (t *TextInput) insert(text string) {
	if t.buf == nil || t.length >= t.maxLength || text == "" {
		return
	}
	c, ok := singleByte(text)
	if !ok {
		return
	}
	if t.length > t.cursor {
		copy(t.buf[t.cursor+1:t.length+1], t.buf[t.cursor:t.length])
	}
	t.buf[t.cursor] = c
	t.length++
	t.cursor++
}

// singleByte encodes the first rune of s in the engine's Latin-1 character
// set. Only one and two byte UTF-8 sequences can be represented.
func singleByte(s string) (byte, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	return charmap.ISO8859_1.EncodeRune(r)
}
