package bubble_adapter

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	editor "github.com/nrjais/icedit/core"
)

func TestConvertBubbleKey(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want editor.KeyEvent
	}{
		{
			name: "plain rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}},
			want: editor.KeyEvent{Key: editor.CharKey('a')},
		},
		{
			name: "alt rune",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true},
			want: editor.KeyEvent{Key: editor.CharKey('x'), Modifiers: editor.Modifiers{Alt: true}},
		},
		{
			name: "ctrl letter",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlZ},
			want: editor.KeyEvent{Key: editor.CharKey('z'), Modifiers: editor.Modifiers{Control: true}},
		},
		{
			name: "arrow",
			msg:  tea.KeyMsg{Type: tea.KeyUp},
			want: editor.KeyEvent{Key: editor.NamedKeyOf(editor.KeyUp)},
		},
		{
			name: "shift arrow",
			msg:  tea.KeyMsg{Type: tea.KeyShiftRight},
			want: editor.KeyEvent{Key: editor.NamedKeyOf(editor.KeyRight), Modifiers: editor.Modifiers{Shift: true}},
		},
		{
			name: "ctrl shift arrow",
			msg:  tea.KeyMsg{Type: tea.KeyCtrlShiftLeft},
			want: editor.KeyEvent{Key: editor.NamedKeyOf(editor.KeyLeft), Modifiers: editor.Modifiers{Control: true, Shift: true}},
		},
		{
			name: "enter stays named",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			want: editor.KeyEvent{Key: editor.NamedKeyOf(editor.KeyEnter)},
		},
		{
			name: "function key",
			msg:  tea.KeyMsg{Type: tea.KeyF3},
			want: editor.KeyEvent{Key: editor.NamedKeyOf(editor.KeyF3)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := convertBubbleKey(tc.msg)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConvertedKeysReachEditorCommands(t *testing.T) {
	table := editor.DefaultShortcuts()

	ev, ok := convertBubbleKey(tea.KeyMsg{Type: tea.KeyCtrlZ})
	require.True(t, ok)
	cmd, ok := table.Translate(ev)
	require.True(t, ok)
	assert.Equal(t, editor.Undo{}, cmd)

	ev, ok = convertBubbleKey(tea.KeyMsg{Type: tea.KeyShiftDown})
	require.True(t, ok)
	cmd, ok = table.Translate(ev)
	require.True(t, ok)
	assert.Equal(t, editor.MoveCursorSelect{Movement: editor.CursorDown}, cmd)

	ev, ok = convertBubbleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	require.True(t, ok)
	cmd, ok = table.Translate(ev)
	require.True(t, ok)
	assert.Equal(t, editor.InsertChar{Char: 'h'}, cmd)
}
