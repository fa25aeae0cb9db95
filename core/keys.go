package core

import "strings"

// NamedKey identifies keys without a printable character, plus the three
// printable keys (Enter, Tab, Space) that terminals report by name.
type NamedKey int

const (
	KeyNone NamedKey = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEnter
	KeyEscape
	KeyTab
	KeySpace
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
	KeyF11
	KeyF12
)

var namedKeyNames = map[NamedKey]string{
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeyTab:       "tab",
	KeySpace:     "space",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
}

var namedKeysByName = func() map[string]NamedKey {
	m := make(map[string]NamedKey, len(namedKeyNames))
	for k, name := range namedKeyNames {
		m[name] = k
	}
	m["esc"] = KeyEscape
	m["pgup"] = KeyPageUp
	m["pgdown"] = KeyPageDown
	m["del"] = KeyDelete
	return m
}()

func (k NamedKey) String() string {
	if name, ok := namedKeyNames[k]; ok {
		return name
	}
	return "none"
}

// Key is either a printable character (Named == KeyNone) or a named key
// (Rune == 0). The zero Key is invalid.
type Key struct {
	Rune  rune
	Named NamedKey
}

// CharKey returns a printable-character key.
func CharKey(ch rune) Key {
	return Key{Rune: ch}
}

// NamedKeyOf returns a named key.
func NamedKeyOf(k NamedKey) Key {
	return Key{Named: k}
}

func (k Key) String() string {
	if k.Named != KeyNone {
		return k.Named.String()
	}
	return string(k.Rune)
}

// Modifiers is the set of modifier keys held during a key event.
type Modifiers struct {
	Shift   bool
	Control bool
	Alt     bool
	Super   bool
}

// None reports whether no modifier is held.
func (m Modifiers) None() bool {
	return m == Modifiers{}
}

func (m Modifiers) String() string {
	var parts []string
	if m.Control {
		parts = append(parts, "ctrl")
	}
	if m.Alt {
		parts = append(parts, "alt")
	}
	if m.Shift {
		parts = append(parts, "shift")
	}
	if m.Super {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "+")
}

// KeyEvent is one key press with its modifiers.
type KeyEvent struct {
	Key       Key
	Modifiers Modifiers
}

func (e KeyEvent) String() string {
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + e.Key.String()
	}
	return e.Key.String()
}
