package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(e *Editor, text string) {
	for _, ch := range text {
		e.Dispatch(InsertChar{Char: ch})
	}
}

func TestEditorBasicEditing(t *testing.T) {
	e := New()

	typeString(e, "Hello")
	assert.Equal(t, "Hello", e.Buffer().Text())
	assert.Equal(t, Position{Line: 0, Column: 5}, e.CursorPosition())

	e.Dispatch(InsertChar{Char: '\n'})
	typeString(e, "World")
	assert.Equal(t, "Hello\nWorld", e.Buffer().Text())
	assert.Equal(t, Position{Line: 1, Column: 5}, e.CursorPosition())

	resp := e.Dispatch(DeleteCharBackward{})
	assert.Equal(t, TextChanged{}, resp)
	assert.Equal(t, "Hello\nWorl", e.Buffer().Text())
}

func TestEditorInsertTextAdvancesCursor(t *testing.T) {
	e := WithText("ab")
	e.Dispatch(MoveCursorTo{Pos: Position{Line: 0, Column: 1}})

	resp := e.Dispatch(InsertText{Text: "123\n45"})
	assert.Equal(t, TextChanged{}, resp)
	assert.Equal(t, "a123\n45b", e.Buffer().Text())
	assert.Equal(t, Position{Line: 1, Column: 2}, e.CursorPosition())
}

func TestEditorDeleteEdgesAreNoOps(t *testing.T) {
	e := New()

	assert.Equal(t, Success{}, e.Dispatch(DeleteChar{}))
	assert.Equal(t, Success{}, e.Dispatch(DeleteCharBackward{}))
	assert.Equal(t, Success{}, e.Dispatch(DeleteWordForward{}))
	assert.Equal(t, Success{}, e.Dispatch(DeleteWordBackward{}))
	assert.Equal(t, Success{}, e.Dispatch(DeleteSelection{}))
	assert.Equal(t, Success{}, e.Dispatch(Undo{}))
	assert.Equal(t, Success{}, e.Dispatch(Redo{}))
}

func TestEditorMovementResponses(t *testing.T) {
	e := WithText("one two")

	resp := e.Dispatch(MoveCursor{Movement: CursorWordRight})
	assert.Equal(t, CursorMoved{Pos: Position{Line: 0, Column: 4}}, resp)

	resp = e.Dispatch(MoveCursor{Movement: CursorLineEnd})
	assert.Equal(t, CursorMoved{Pos: Position{Line: 0, Column: 7}}, resp)
}

func TestEditorMoveCursorToValidates(t *testing.T) {
	e := WithText("short")

	resp := e.Dispatch(MoveCursorTo{Pos: Position{Line: -1, Column: 0}})
	errResp, ok := resp.(Error)
	require.True(t, ok)
	assert.Contains(t, errResp.Message, "invalid position")

	resp = e.Dispatch(MoveCursorTo{Pos: Position{Line: 7, Column: 42}})
	assert.Equal(t, CursorMoved{Pos: Position{Line: 0, Column: 5}}, resp,
		"out-of-range positions clamp instead of failing")
}

func TestEditorSelectionViaShiftMovement(t *testing.T) {
	e := WithText("hello world")

	resp := e.Dispatch(MoveCursorSelect{Movement: CursorWordRight})
	sc, ok := resp.(SelectionChanged)
	require.True(t, ok)
	require.NotNil(t, sc.Selection)
	assert.Equal(t, "hello ", sc.Selection.Text(e.Buffer().Rope()))

	// Extending keeps the original anchor.
	resp = e.Dispatch(MoveCursorSelect{Movement: CursorWordRight})
	sc = resp.(SelectionChanged)
	assert.Equal(t, "hello world", sc.Selection.Text(e.Buffer().Rope()))

	// Shrinking works the same way.
	resp = e.Dispatch(MoveCursorSelect{Movement: CursorLeft})
	sc = resp.(SelectionChanged)
	assert.Equal(t, "hello worl", sc.Selection.Text(e.Buffer().Rope()))
}

func TestEditorPlainMovementClearsSelection(t *testing.T) {
	e := WithText("hello")
	e.Dispatch(SelectAll{})
	require.NotNil(t, e.Selection())

	resp := e.Dispatch(MoveCursor{Movement: CursorLeft})
	assert.Equal(t, SelectionChanged{}, resp, "clearing is reported, not the move")
	assert.Nil(t, e.Selection())
}

func TestEditorInsertReplacesSelection(t *testing.T) {
	e := WithText("hello world")
	e.Dispatch(SetSelection{Start: Position{Line: 0, Column: 0}, End: Position{Line: 0, Column: 5}})

	e.Dispatch(InsertChar{Char: 'H'})
	assert.Equal(t, "H world", e.Buffer().Text())
	assert.Equal(t, Position{Line: 0, Column: 1}, e.CursorPosition())
	assert.Nil(t, e.Selection())
}

func TestEditorDeleteCharClosesOverSelection(t *testing.T) {
	e := WithText("hello world")
	e.Dispatch(SetSelection{Start: Position{Line: 0, Column: 5}, End: Position{Line: 0, Column: 11}})

	resp := e.Dispatch(DeleteChar{})
	assert.Equal(t, TextChanged{}, resp)
	assert.Equal(t, "hello", e.Buffer().Text(),
		"a single-char delete with a selection removes only the selection")
}

func TestEditorSelectLineAndWord(t *testing.T) {
	e := WithText("one\ntwo two\nthree")
	e.Dispatch(MoveCursorTo{Pos: Position{Line: 1, Column: 5}})

	resp := e.Dispatch(SelectWord{})
	sc, ok := resp.(SelectionChanged)
	require.True(t, ok)
	assert.Equal(t, "two", sc.Selection.Text(e.Buffer().Rope()))

	resp = e.Dispatch(SelectLine{Line: -1})
	sc = resp.(SelectionChanged)
	assert.Equal(t, "two two\n", sc.Selection.Text(e.Buffer().Rope()))

	assert.Equal(t, Success{}, e.Dispatch(SelectLine{Line: 99}),
		"selecting a missing line is a no-op")
}

func TestEditorClearSelection(t *testing.T) {
	e := WithText("abc")
	assert.Equal(t, Success{}, e.Dispatch(ClearSelection{}), "nothing to clear")

	e.Dispatch(SelectAll{})
	assert.Equal(t, SelectionChanged{}, e.Dispatch(ClearSelection{}))
	assert.Nil(t, e.Selection())
}

func TestEditorUndoRedoScenario(t *testing.T) {
	e := New()
	typeString(e, "abc")

	resp := e.Dispatch(Undo{})
	assert.Equal(t, TextChanged{}, resp)
	assert.Equal(t, "ab", e.Buffer().Text())
	assert.Equal(t, Position{Line: 0, Column: 2}, e.CursorPosition())

	e.Dispatch(Undo{})
	e.Dispatch(Undo{})
	assert.Equal(t, "", e.Buffer().Text())
	assert.Equal(t, Position{}, e.CursorPosition())
	assert.Equal(t, Success{}, e.Dispatch(Undo{}))

	e.Dispatch(Redo{})
	e.Dispatch(Redo{})
	e.Dispatch(Redo{})
	assert.Equal(t, "abc", e.Buffer().Text())
	assert.Equal(t, Success{}, e.Dispatch(Redo{}))
}

func TestEditorUndoLeavesSelectionAlone(t *testing.T) {
	e := WithText("hello world")
	typeString(e, "x")
	e.Dispatch(SetSelection{Start: Position{}, End: Position{Line: 0, Column: 3}})

	e.Dispatch(Undo{})
	require.NotNil(t, e.Selection(), "undo restores text and cursor, not the selection")
	assert.Equal(t, Position{Line: 0, Column: 3}, e.Selection().End)
}

func TestEditorEditClearsRedo(t *testing.T) {
	e := New()
	typeString(e, "ab")
	e.Dispatch(Undo{})
	typeString(e, "c")

	assert.Equal(t, Success{}, e.Dispatch(Redo{}))
	assert.Equal(t, "ac", e.Buffer().Text())
}

func TestEditorCutCopyPaste(t *testing.T) {
	e := WithText("hello world")

	e.Dispatch(SetSelection{Start: Position{}, End: Position{Line: 0, Column: 5}})
	assert.Equal(t, Success{}, e.Dispatch(Copy{}))

	e.Dispatch(MoveCursor{Movement: CursorDocumentEnd})
	e.Dispatch(Paste{})
	assert.Equal(t, "hello worldhello", e.Buffer().Text())

	e.Dispatch(SetSelection{Start: Position{}, End: Position{Line: 0, Column: 6}})
	resp := e.Dispatch(Cut{})
	assert.Equal(t, TextChanged{}, resp)
	assert.Equal(t, "worldhello", e.Buffer().Text())

	e.Dispatch(MoveCursor{Movement: CursorDocumentStart})
	e.Dispatch(Paste{})
	assert.Equal(t, "hello worldhello", e.Buffer().Text())
}

func TestEditorCutCopyWithoutSelection(t *testing.T) {
	e := WithText("text")
	assert.Equal(t, Success{}, e.Dispatch(Cut{}))
	assert.Equal(t, Success{}, e.Dispatch(Copy{}))
	assert.Equal(t, Success{}, e.Dispatch(Paste{}), "empty clipboard pastes nothing")
	assert.Equal(t, "text", e.Buffer().Text())
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) Write(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func (f *fakeClipboard) Read() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestEditorClipboardBridge(t *testing.T) {
	e := WithText("bridged text")
	cb := &fakeClipboard{}
	e.SetClipboard(cb)

	e.Dispatch(SetSelection{Start: Position{}, End: Position{Line: 0, Column: 7}})
	e.Dispatch(Copy{})
	assert.Equal(t, "bridged", cb.text)

	cb.text = "external"
	e.Dispatch(MoveCursor{Movement: CursorDocumentEnd})
	e.Dispatch(Paste{})
	assert.Equal(t, "bridged textexternal", e.Buffer().Text(),
		"the bridge wins over the internal clipboard")

	// A failing bridge falls back to the internal clipboard.
	cb.err = errors.New("unavailable")
	e.Dispatch(SetSelection{Start: Position{}, End: Position{Line: 0, Column: 7}})
	e.Dispatch(Cut{})
	e.Dispatch(Paste{})
	assert.Equal(t, "bridged textexternal", e.Buffer().Text())
}

func TestEditorFindAndNavigate(t *testing.T) {
	e := WithText("cat\ndog cat\ncatalog")

	resp := e.Dispatch(Find{Pattern: "cat"})
	sr, ok := resp.(SearchResults)
	require.True(t, ok)
	require.Len(t, sr.Matches, 3)

	resp = e.Dispatch(FindNext{})
	assert.Equal(t, CursorMoved{Pos: Position{Line: 1, Column: 4}}, resp,
		"the match at the cursor itself is skipped")

	resp = e.Dispatch(FindNext{})
	assert.Equal(t, CursorMoved{Pos: Position{Line: 2, Column: 0}}, resp)

	resp = e.Dispatch(FindNext{})
	assert.Equal(t, CursorMoved{Pos: Position{Line: 0, Column: 0}}, resp, "wraps around")

	resp = e.Dispatch(FindPrevious{})
	assert.Equal(t, CursorMoved{Pos: Position{Line: 2, Column: 0}}, resp, "wraps backward")

	assert.Equal(t, SearchResults{}, e.Dispatch(Find{Pattern: ""}))
	assert.Equal(t, Success{}, e.Dispatch(FindNext{}))
}

func TestEditorReplaceAtCursor(t *testing.T) {
	e := WithText("foo bar foo")

	assert.Equal(t, Success{}, e.Dispatch(Replace{Pattern: "bar", Replacement: "x"}),
		"cursor is not on a match")

	e.Dispatch(MoveCursorTo{Pos: Position{Line: 0, Column: 4}})
	resp := e.Dispatch(Replace{Pattern: "bar", Replacement: "baz"})
	assert.Equal(t, TextChanged{}, resp)
	assert.Equal(t, "foo baz foo", e.Buffer().Text())
	assert.Equal(t, Position{Line: 0, Column: 7}, e.CursorPosition())

	e.Dispatch(Undo{})
	assert.Equal(t, "foo bar foo", e.Buffer().Text(), "a replace undoes in one step")
}

func TestEditorReplaceAll(t *testing.T) {
	e := WithText("a b a b a")

	resp := e.Dispatch(ReplaceAll{Pattern: "a", Replacement: "ccc"})
	assert.Equal(t, TextChanged{}, resp)
	assert.Equal(t, "ccc b ccc b ccc", e.Buffer().Text())

	assert.Equal(t, Success{}, e.Dispatch(ReplaceAll{Pattern: "zz", Replacement: "y"}))
}

func TestEditorDeleteLineMovesCursorToLineStart(t *testing.T) {
	e := WithText("one\ntwo\nthree")
	e.Dispatch(MoveCursorTo{Pos: Position{Line: 1, Column: 2}})

	resp := e.Dispatch(DeleteLine{})
	assert.Equal(t, TextChanged{}, resp)
	assert.Equal(t, "one\nthree", e.Buffer().Text())
	assert.Equal(t, Position{Line: 1, Column: 0}, e.CursorPosition())
}

func TestEditorCursorClampedAfterUndo(t *testing.T) {
	e := New()
	typeString(e, "hello")
	e.Dispatch(Undo{})
	e.Dispatch(Undo{})

	assert.Equal(t, "hel", e.Buffer().Text())
	assert.Equal(t, Position{Line: 0, Column: 3}, e.CursorPosition())
}

func TestEditorEvents(t *testing.T) {
	e := New()
	e.Dispatch(InsertChar{Char: 'a'})

	var sawText, sawCursor bool
	for range 2 {
		select {
		case ev := <-e.Events():
			switch ev.(type) {
			case TextChangedEvent:
				sawText = true
			case CursorMovedEvent:
				sawCursor = true
			}
		default:
			t.Fatal("expected buffered events")
		}
	}
	assert.True(t, sawText)
	assert.True(t, sawCursor)
}

func TestEditorCustomCommand(t *testing.T) {
	e := New()
	assert.Equal(t, Success{}, e.Dispatch(Custom{Name: "noop"}))
}

func TestEditorScroll(t *testing.T) {
	text := ""
	for range 100 {
		text += "line\n"
	}
	e := WithText(text)

	assert.Equal(t, Success{}, e.Dispatch(Scroll{DY: 250}))
	_, y := e.Viewport().ScrollOffset()
	assert.Equal(t, 250.0, y)

	e.Dispatch(Scroll{DY: -9999})
	_, y = e.Viewport().ScrollOffset()
	assert.Equal(t, 0.0, y)

	e.Dispatch(ScrollToLine{Line: 99})
	first, last := e.Viewport().VisibleLines()
	assert.LessOrEqual(t, first, 99)
	assert.GreaterOrEqual(t, last, 99)
}
