package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShortcut(t *testing.T) {
	sc, err := ParseShortcut("ctrl+z")
	require.NoError(t, err)
	assert.Equal(t, Shortcut{Key: CharKey('z'), Modifiers: Modifiers{Control: true}}, sc)

	sc, err = ParseShortcut("ctrl+shift+Z")
	require.NoError(t, err)
	assert.True(t, sc.Modifiers.Control)
	assert.True(t, sc.Modifiers.Shift)
	assert.Equal(t, CharKey('z'), sc.Key, "keys are lowercased")

	sc, err = ParseShortcut("shift+f3")
	require.NoError(t, err)
	assert.Equal(t, NamedKeyOf(KeyF3), sc.Key)

	sc, err = ParseShortcut("escape")
	require.NoError(t, err)
	assert.Equal(t, NamedKeyOf(KeyEscape), sc.Key)
	assert.True(t, sc.Modifiers.None())

	_, err = ParseShortcut("ctrl+")
	assert.Error(t, err)
	_, err = ParseShortcut("hyper+x")
	assert.Error(t, err)
	_, err = ParseShortcut("ctrl+whatever")
	assert.Error(t, err)
}

func TestShortcutStringRoundTrip(t *testing.T) {
	for _, spec := range []string{"ctrl+z", "ctrl+shift+z", "shift+f3", "backspace", "ctrl+shift+end"} {
		sc, err := ParseShortcut(spec)
		require.NoError(t, err)
		back, err := ParseShortcut(sc.String())
		require.NoError(t, err)
		assert.Equal(t, sc, back, "spec %q", spec)
	}
}

func TestShortcutTableBindLookupUnbind(t *testing.T) {
	tbl := NewShortcutTable()
	sc := Shortcut{Key: CharKey('d'), Modifiers: Modifiers{Control: true}}

	_, ok := tbl.Lookup(sc)
	assert.False(t, ok)

	tbl.Bind(sc, DeleteLine{})
	cmd, ok := tbl.Lookup(sc)
	require.True(t, ok)
	assert.Equal(t, DeleteLine{}, cmd)

	// Lookup is case-insensitive for character keys.
	upper := Shortcut{Key: CharKey('D'), Modifiers: Modifiers{Control: true}}
	_, ok = tbl.Lookup(upper)
	assert.True(t, ok)

	tbl.Unbind(sc)
	_, ok = tbl.Lookup(sc)
	assert.False(t, ok)
}

func TestDefaultShortcuts(t *testing.T) {
	tbl := DefaultShortcuts()

	cases := []struct {
		spec string
		want Command
	}{
		{"up", MoveCursor{CursorUp}},
		{"ctrl+right", MoveCursor{CursorWordRight}},
		{"shift+down", MoveCursorSelect{CursorDown}},
		{"ctrl+shift+left", MoveCursorSelect{CursorWordLeft}},
		{"ctrl+home", MoveCursor{CursorDocumentStart}},
		{"backspace", DeleteCharBackward{}},
		{"ctrl+backspace", DeleteWordBackward{}},
		{"ctrl+k", DeleteLine{}},
		{"ctrl+a", SelectAll{}},
		{"escape", ClearSelection{}},
		{"ctrl+z", Undo{}},
		{"ctrl+y", Redo{}},
		{"ctrl+shift+z", Redo{}},
		{"ctrl+x", Cut{}},
		{"ctrl+v", Paste{}},
		{"f3", FindNext{}},
		{"shift+f3", FindPrevious{}},
	}
	for _, tc := range cases {
		sc, err := ParseShortcut(tc.spec)
		require.NoError(t, err, tc.spec)
		cmd, ok := tbl.Lookup(sc)
		require.True(t, ok, tc.spec)
		assert.Equal(t, tc.want, cmd, tc.spec)
	}
}

func TestTranslateBoundShortcut(t *testing.T) {
	tbl := DefaultShortcuts()

	cmd, ok := tbl.Translate(KeyEvent{
		Key:       CharKey('z'),
		Modifiers: Modifiers{Control: true},
	})
	require.True(t, ok)
	assert.Equal(t, Undo{}, cmd)
}

func TestTranslatePlainCharacterInserts(t *testing.T) {
	tbl := DefaultShortcuts()

	cmd, ok := tbl.Translate(KeyEvent{Key: CharKey('a')})
	require.True(t, ok)
	assert.Equal(t, InsertChar{Char: 'a'}, cmd)

	// Shift-only still inserts; the rune already carries the case.
	cmd, ok = tbl.Translate(KeyEvent{Key: CharKey('A'), Modifiers: Modifiers{Shift: true}})
	require.True(t, ok)
	assert.Equal(t, InsertChar{Char: 'A'}, cmd)

	// A modified character with no binding produces nothing.
	_, ok = tbl.Translate(KeyEvent{Key: CharKey('q'), Modifiers: Modifiers{Alt: true}})
	assert.False(t, ok)
}

func TestTranslateNamedInsertKeys(t *testing.T) {
	tbl := DefaultShortcuts()

	cmd, ok := tbl.Translate(KeyEvent{Key: NamedKeyOf(KeyEnter)})
	require.True(t, ok)
	assert.Equal(t, InsertChar{Char: '\n'}, cmd)

	cmd, ok = tbl.Translate(KeyEvent{Key: NamedKeyOf(KeyTab)})
	require.True(t, ok)
	assert.Equal(t, InsertChar{Char: '\t'}, cmd)

	cmd, ok = tbl.Translate(KeyEvent{Key: NamedKeyOf(KeySpace)})
	require.True(t, ok)
	assert.Equal(t, InsertChar{Char: ' '}, cmd)

	_, ok = tbl.Translate(KeyEvent{Key: NamedKeyOf(KeyEnter), Modifiers: Modifiers{Control: true}})
	assert.False(t, ok, "modified enter has no default meaning")

	_, ok = tbl.Translate(KeyEvent{Key: NamedKeyOf(KeyF9)})
	assert.False(t, ok)
}

func TestTranslateCaseInsensitiveBinding(t *testing.T) {
	tbl := DefaultShortcuts()

	// Terminals report ctrl+shift+z with an uppercase rune.
	cmd, ok := tbl.Translate(KeyEvent{
		Key:       CharKey('Z'),
		Modifiers: Modifiers{Control: true, Shift: true},
	})
	require.True(t, ok)
	assert.Equal(t, Redo{}, cmd)
}
