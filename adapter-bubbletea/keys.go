package bubble_adapter

import (
	tea "github.com/charmbracelet/bubbletea"

	editor "github.com/nrjais/icedit/core"
)

var namedKeyTypes = map[tea.KeyType]editor.KeyEvent{
	tea.KeyEnter:     {Key: editor.NamedKeyOf(editor.KeyEnter)},
	tea.KeySpace:     {Key: editor.NamedKeyOf(editor.KeySpace)},
	tea.KeyEsc:       {Key: editor.NamedKeyOf(editor.KeyEscape)},
	tea.KeyBackspace: {Key: editor.NamedKeyOf(editor.KeyBackspace)},
	tea.KeyDelete:    {Key: editor.NamedKeyOf(editor.KeyDelete)},
	tea.KeyInsert:    {Key: editor.NamedKeyOf(editor.KeyInsert)},
	tea.KeyTab:       {Key: editor.NamedKeyOf(editor.KeyTab)},
	tea.KeyUp:        {Key: editor.NamedKeyOf(editor.KeyUp)},
	tea.KeyDown:      {Key: editor.NamedKeyOf(editor.KeyDown)},
	tea.KeyLeft:      {Key: editor.NamedKeyOf(editor.KeyLeft)},
	tea.KeyRight:     {Key: editor.NamedKeyOf(editor.KeyRight)},
	tea.KeyHome:      {Key: editor.NamedKeyOf(editor.KeyHome)},
	tea.KeyEnd:       {Key: editor.NamedKeyOf(editor.KeyEnd)},
	tea.KeyPgUp:      {Key: editor.NamedKeyOf(editor.KeyPageUp)},
	tea.KeyPgDown:    {Key: editor.NamedKeyOf(editor.KeyPageDown)},

	tea.KeyShiftUp:    {Key: editor.NamedKeyOf(editor.KeyUp), Modifiers: editor.Modifiers{Shift: true}},
	tea.KeyShiftDown:  {Key: editor.NamedKeyOf(editor.KeyDown), Modifiers: editor.Modifiers{Shift: true}},
	tea.KeyShiftLeft:  {Key: editor.NamedKeyOf(editor.KeyLeft), Modifiers: editor.Modifiers{Shift: true}},
	tea.KeyShiftRight: {Key: editor.NamedKeyOf(editor.KeyRight), Modifiers: editor.Modifiers{Shift: true}},
	tea.KeyShiftHome:  {Key: editor.NamedKeyOf(editor.KeyHome), Modifiers: editor.Modifiers{Shift: true}},
	tea.KeyShiftEnd:   {Key: editor.NamedKeyOf(editor.KeyEnd), Modifiers: editor.Modifiers{Shift: true}},

	tea.KeyCtrlUp:    {Key: editor.NamedKeyOf(editor.KeyUp), Modifiers: editor.Modifiers{Control: true}},
	tea.KeyCtrlDown:  {Key: editor.NamedKeyOf(editor.KeyDown), Modifiers: editor.Modifiers{Control: true}},
	tea.KeyCtrlLeft:  {Key: editor.NamedKeyOf(editor.KeyLeft), Modifiers: editor.Modifiers{Control: true}},
	tea.KeyCtrlRight: {Key: editor.NamedKeyOf(editor.KeyRight), Modifiers: editor.Modifiers{Control: true}},
	tea.KeyCtrlHome:  {Key: editor.NamedKeyOf(editor.KeyHome), Modifiers: editor.Modifiers{Control: true}},
	tea.KeyCtrlEnd:   {Key: editor.NamedKeyOf(editor.KeyEnd), Modifiers: editor.Modifiers{Control: true}},

	tea.KeyCtrlShiftUp:    {Key: editor.NamedKeyOf(editor.KeyUp), Modifiers: editor.Modifiers{Control: true, Shift: true}},
	tea.KeyCtrlShiftDown:  {Key: editor.NamedKeyOf(editor.KeyDown), Modifiers: editor.Modifiers{Control: true, Shift: true}},
	tea.KeyCtrlShiftLeft:  {Key: editor.NamedKeyOf(editor.KeyLeft), Modifiers: editor.Modifiers{Control: true, Shift: true}},
	tea.KeyCtrlShiftRight: {Key: editor.NamedKeyOf(editor.KeyRight), Modifiers: editor.Modifiers{Control: true, Shift: true}},
	tea.KeyCtrlShiftHome:  {Key: editor.NamedKeyOf(editor.KeyHome), Modifiers: editor.Modifiers{Control: true, Shift: true}},
	tea.KeyCtrlShiftEnd:   {Key: editor.NamedKeyOf(editor.KeyEnd), Modifiers: editor.Modifiers{Control: true, Shift: true}},

	tea.KeyF1:  {Key: editor.NamedKeyOf(editor.KeyF1)},
	tea.KeyF2:  {Key: editor.NamedKeyOf(editor.KeyF2)},
	tea.KeyF3:  {Key: editor.NamedKeyOf(editor.KeyF3)},
	tea.KeyF4:  {Key: editor.NamedKeyOf(editor.KeyF4)},
	tea.KeyF5:  {Key: editor.NamedKeyOf(editor.KeyF5)},
	tea.KeyF6:  {Key: editor.NamedKeyOf(editor.KeyF6)},
	tea.KeyF7:  {Key: editor.NamedKeyOf(editor.KeyF7)},
	tea.KeyF8:  {Key: editor.NamedKeyOf(editor.KeyF8)},
	tea.KeyF9:  {Key: editor.NamedKeyOf(editor.KeyF9)},
	tea.KeyF10: {Key: editor.NamedKeyOf(editor.KeyF10)},
	tea.KeyF11: {Key: editor.NamedKeyOf(editor.KeyF11)},
	tea.KeyF12: {Key: editor.NamedKeyOf(editor.KeyF12)},
}

// convertBubbleKey maps a Bubble Tea key message to an editor key event.
// Control-letter chords arrive as dedicated key types in the ASCII
// control range and are folded back to ctrl+<letter>.
func convertBubbleKey(msg tea.KeyMsg) (editor.KeyEvent, bool) {
	if ev, ok := namedKeyTypes[msg.Type]; ok {
		if msg.Alt {
			ev.Modifiers.Alt = true
		}
		return ev, true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return editor.KeyEvent{
			Key:       editor.CharKey(msg.Runes[0]),
			Modifiers: editor.Modifiers{Alt: msg.Alt},
		}, true
	}

	// Ctrl+A..Ctrl+Z, minus the types handled above (tab, enter).
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return editor.KeyEvent{
			Key:       editor.CharKey('a' + rune(msg.Type-tea.KeyCtrlA)),
			Modifiers: editor.Modifiers{Control: true, Alt: msg.Alt},
		}, true
	}

	return editor.KeyEvent{}, false
}
