package core

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Shortcut pairs a key with its modifiers. It is comparable and used as a
// map key; character shortcuts are stored lowercased so ctrl+Z and ctrl+z
// resolve the same binding.
type Shortcut struct {
	Key       Key
	Modifiers Modifiers
}

func (s Shortcut) normalize() Shortcut {
	if s.Key.Rune != 0 {
		s.Key.Rune = unicode.ToLower(s.Key.Rune)
	}
	return s
}

func (s Shortcut) String() string {
	if mods := s.Modifiers.String(); mods != "" {
		return mods + "+" + s.Key.String()
	}
	return s.Key.String()
}

// ParseShortcut parses the textual "ctrl+shift+z" form. The final segment
// is the key: either a single character or a named key such as "enter" or
// "f3".
func ParseShortcut(s string) (Shortcut, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "+")
	if len(parts) == 0 || parts[len(parts)-1] == "" {
		return Shortcut{}, fmt.Errorf("empty shortcut %q", s)
	}

	var sc Shortcut
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl", "control":
			sc.Modifiers.Control = true
		case "shift":
			sc.Modifiers.Shift = true
		case "alt":
			sc.Modifiers.Alt = true
		case "super", "cmd", "meta":
			sc.Modifiers.Super = true
		default:
			return Shortcut{}, fmt.Errorf("unknown modifier %q in shortcut %q", mod, s)
		}
	}

	keyPart := parts[len(parts)-1]
	if named, ok := namedKeysByName[keyPart]; ok {
		sc.Key = NamedKeyOf(named)
		return sc, nil
	}
	if utf8.RuneCountInString(keyPart) != 1 {
		return Shortcut{}, fmt.Errorf("unknown key %q in shortcut %q", keyPart, s)
	}
	ch, _ := utf8.DecodeRuneInString(keyPart)
	sc.Key = CharKey(ch)
	return sc, nil
}

// ShortcutTable maps shortcuts to commands. The zero value is unusable;
// start from NewShortcutTable or DefaultShortcuts.
type ShortcutTable struct {
	bindings map[Shortcut]Command
}

// NewShortcutTable returns an empty table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{bindings: make(map[Shortcut]Command)}
}

// DefaultShortcuts returns the standard editing bindings.
func DefaultShortcuts() *ShortcutTable {
	t := NewShortcutTable()

	bind := func(spec string, cmd Command) {
		sc, err := ParseShortcut(spec)
		if err != nil {
			panic(err) // static table, a bad entry is a programming error
		}
		t.Bind(sc, cmd)
	}

	// Movement.
	bind("up", MoveCursor{CursorUp})
	bind("down", MoveCursor{CursorDown})
	bind("left", MoveCursor{CursorLeft})
	bind("right", MoveCursor{CursorRight})
	bind("ctrl+left", MoveCursor{CursorWordLeft})
	bind("ctrl+right", MoveCursor{CursorWordRight})
	bind("home", MoveCursor{CursorLineStart})
	bind("end", MoveCursor{CursorLineEnd})
	bind("ctrl+home", MoveCursor{CursorDocumentStart})
	bind("ctrl+end", MoveCursor{CursorDocumentEnd})
	bind("pageup", MoveCursor{CursorPageUp})
	bind("pagedown", MoveCursor{CursorPageDown})

	// Selection-extending movement.
	bind("shift+up", MoveCursorSelect{CursorUp})
	bind("shift+down", MoveCursorSelect{CursorDown})
	bind("shift+left", MoveCursorSelect{CursorLeft})
	bind("shift+right", MoveCursorSelect{CursorRight})
	bind("ctrl+shift+left", MoveCursorSelect{CursorWordLeft})
	bind("ctrl+shift+right", MoveCursorSelect{CursorWordRight})
	bind("shift+home", MoveCursorSelect{CursorLineStart})
	bind("shift+end", MoveCursorSelect{CursorLineEnd})
	bind("ctrl+shift+home", MoveCursorSelect{CursorDocumentStart})
	bind("ctrl+shift+end", MoveCursorSelect{CursorDocumentEnd})

	// Deletion.
	bind("backspace", DeleteCharBackward{})
	bind("delete", DeleteChar{})
	bind("ctrl+backspace", DeleteWordBackward{})
	bind("ctrl+delete", DeleteWordForward{})
	bind("ctrl+k", DeleteLine{})

	// Selection.
	bind("ctrl+a", SelectAll{})
	bind("ctrl+l", SelectLine{Line: -1}) // -1 means the cursor's line
	bind("escape", ClearSelection{})

	// History.
	bind("ctrl+z", Undo{})
	bind("ctrl+y", Redo{})
	bind("ctrl+shift+z", Redo{})

	// Clipboard.
	bind("ctrl+x", Cut{})
	bind("ctrl+c", Copy{})
	bind("ctrl+v", Paste{})

	// Search.
	bind("ctrl+f", Find{})
	bind("f3", FindNext{})
	bind("shift+f3", FindPrevious{})
	bind("ctrl+h", ReplaceAll{})

	return t
}

// Bind maps a shortcut to a command, replacing any existing binding.
func (t *ShortcutTable) Bind(sc Shortcut, cmd Command) {
	t.bindings[sc.normalize()] = cmd
}

// Unbind removes a binding if present.
func (t *ShortcutTable) Unbind(sc Shortcut) {
	delete(t.bindings, sc.normalize())
}

// Lookup returns the command bound to a shortcut.
func (t *ShortcutTable) Lookup(sc Shortcut) (Command, bool) {
	cmd, ok := t.bindings[sc.normalize()]
	return cmd, ok
}

// Bindings returns a copy of the table's contents.
func (t *ShortcutTable) Bindings() map[Shortcut]Command {
	out := make(map[Shortcut]Command, len(t.bindings))
	for sc, cmd := range t.bindings {
		out[sc] = cmd
	}
	return out
}

// Translate maps a key event to a command. Bound shortcuts win; an
// unbound printable character with no modifiers (or shift only) becomes
// an insertion, as do unmodified Enter, Tab, and Space. Anything else
// produces no command.
func (t *ShortcutTable) Translate(ev KeyEvent) (Command, bool) {
	sc := Shortcut{Key: ev.Key, Modifiers: ev.Modifiers}
	if cmd, ok := t.Lookup(sc); ok {
		return cmd, true
	}

	if ev.Key.Rune != 0 {
		mods := ev.Modifiers
		mods.Shift = false
		if mods.None() {
			return InsertChar{Char: ev.Key.Rune}, true
		}
		return nil, false
	}

	if ev.Modifiers.None() {
		switch ev.Key.Named {
		case KeyEnter:
			return InsertChar{Char: '\n'}, true
		case KeyTab:
			return InsertChar{Char: '\t'}, true
		case KeySpace:
			return InsertChar{Char: ' '}, true
		}
	}
	return nil, false
}
