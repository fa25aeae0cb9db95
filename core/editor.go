package core

import (
	"strconv"
	"strings"
)

// Clipboard bridges the editor to a system clipboard. Implementations
// live with the host; the editor keeps an internal fallback string so it
// works without one.
type Clipboard interface {
	Write(text string) error
	Read() (string, error)
}

// Editor ties a buffer, a cursor, and an optional selection together
// behind a single Dispatch entry point. It is not safe for concurrent
// use; the owning goroutine feeds commands in and drains Events.
type Editor struct {
	buffer   *Buffer
	cursor   *Cursor
	viewport *Viewport

	selection *Selection
	anchor    Position // selection end opposite the cursor

	clipboard string
	bridge    Clipboard

	lastPattern string

	events chan Event
}

// New returns an editor over an empty document.
func New() *Editor {
	return WithText("")
}

// WithText returns an editor over the given document.
func WithText(text string) *Editor {
	return &Editor{
		buffer:   NewBufferFromString(text),
		cursor:   NewCursor(),
		viewport: NewViewport(),
		events:   make(chan Event, eventBufferSize),
	}
}

// SetClipboard installs a system clipboard bridge. Pass nil to fall back
// to the internal clipboard.
func (e *Editor) SetClipboard(c Clipboard) {
	e.bridge = c
}

// Buffer exposes the underlying buffer.
func (e *Editor) Buffer() *Buffer {
	return e.buffer
}

// CursorPosition returns the cursor's current position.
func (e *Editor) CursorPosition() Position {
	return e.cursor.Position()
}

// Selection returns the active selection, or nil.
func (e *Editor) Selection() *Selection {
	return e.selection
}

// Viewport exposes the editor's scroll geometry.
func (e *Editor) Viewport() *Viewport {
	return e.viewport
}

// clampCursor pulls the cursor back inside the document after the text
// shrinks under it.
func (e *Editor) clampCursor() {
	r := e.buffer.Rope()
	pos := e.cursor.Position()
	clamped := PositionFromOffset(r, pos.ToOffset(r))
	if clamped != pos {
		e.cursor.SetPosition(clamped)
	}
}

// hasSelection reports whether a non-empty selection is active.
func (e *Editor) hasSelection() bool {
	return e.selection != nil && !e.selection.IsEmpty()
}

func (e *Editor) clearSelection() bool {
	if e.selection == nil {
		return false
	}
	e.selection = nil
	e.emit(SelectionChangedEvent{})
	return true
}

func (e *Editor) setSelection(sel Selection) {
	s := sel
	e.selection = &s
	e.emit(SelectionChangedEvent{Selection: &s})
}

// deleteActiveSelection removes the selected text and parks the cursor at
// its start. Returns false when no non-empty selection is active.
func (e *Editor) deleteActiveSelection() bool {
	if !e.hasSelection() {
		return false
	}
	sel := *e.selection
	e.buffer.DeleteSelection(sel, e.cursor.Position())
	e.cursor.SetPosition(sel.Start)
	e.clearSelection()
	e.clampCursor()
	return true
}

func (e *Editor) textChanged() Response {
	e.emit(TextChangedEvent{})
	e.emit(CursorMovedEvent{Pos: e.cursor.Position()})
	return TextChanged{}
}

// Dispatch handles one command and returns its result. The switch is
// exhaustive over the Command variants; an unknown value can only come
// from inside this package and answers Success.
func (e *Editor) Dispatch(cmd Command) Response {
	switch c := cmd.(type) {
	case InsertChar:
		return e.insert(string(c.Char))
	case InsertText:
		return e.insert(c.Text)

	case DeleteChar:
		if e.deleteActiveSelection() {
			return e.textChanged()
		}
		if !e.buffer.DeleteChar(e.cursor.Position(), e.cursor.Position()) {
			return Success{}
		}
		return e.textChanged()

	case DeleteCharBackward:
		if e.deleteActiveSelection() {
			return e.textChanged()
		}
		pos, ok := e.buffer.DeleteCharBackward(e.cursor.Position(), e.cursor.Position())
		if !ok {
			return Success{}
		}
		e.cursor.SetPosition(pos)
		return e.textChanged()

	case DeleteWordForward:
		if !e.buffer.DeleteWordForward(e.cursor.Position(), e.cursor.Position()) {
			return Success{}
		}
		e.clampCursor()
		return e.textChanged()

	case DeleteWordBackward:
		pos, ok := e.buffer.DeleteWordBackward(e.cursor.Position(), e.cursor.Position())
		if !ok {
			return Success{}
		}
		e.cursor.SetPosition(pos)
		return e.textChanged()

	case DeleteToLineStart:
		pos := e.cursor.Position()
		if !e.buffer.DeleteToLineStart(pos, pos) {
			return Success{}
		}
		e.cursor.SetPosition(Position{Line: pos.Line})
		return e.textChanged()

	case DeleteToLineEnd:
		if !e.buffer.DeleteToLineEnd(e.cursor.Position(), e.cursor.Position()) {
			return Success{}
		}
		return e.textChanged()

	case DeleteLine:
		if !e.buffer.DeleteLine(e.cursor.Position().Line, e.cursor.Position()) {
			return Success{}
		}
		e.clampCursor()
		e.cursor.MoveToLineStart()
		return e.textChanged()

	case DeleteSelection:
		if !e.deleteActiveSelection() {
			return Success{}
		}
		return e.textChanged()

	case MoveCursor:
		cleared := e.clearSelection()
		e.move(c.Movement)
		e.emit(CursorMovedEvent{Pos: e.cursor.Position()})
		if cleared {
			return SelectionChanged{}
		}
		return CursorMoved{Pos: e.cursor.Position()}

	case MoveCursorSelect:
		anchor := e.cursor.Position()
		if e.selection != nil {
			anchor = e.anchor
		}
		e.move(c.Movement)
		e.anchor = anchor
		sel := NewSelection(anchor, e.cursor.Position())
		e.setSelection(sel)
		e.emit(CursorMovedEvent{Pos: e.cursor.Position()})
		return SelectionChanged{Selection: e.selection}

	case MoveCursorTo:
		if err := c.Pos.Validate(); err != nil {
			e.emit(ErrorEvent{Message: err.Error()})
			return Error{Message: err.Error()}
		}
		e.clearSelection()
		r := e.buffer.Rope()
		e.cursor.SetPosition(PositionFromOffset(r, c.Pos.ToOffset(r)))
		e.emit(CursorMovedEvent{Pos: e.cursor.Position()})
		return CursorMoved{Pos: e.cursor.Position()}

	case StartSelection:
		e.anchor = e.cursor.Position()
		e.setSelection(Selection{Start: e.anchor, End: e.anchor})
		return SelectionChanged{Selection: e.selection}

	case EndSelection:
		return Success{}

	case SetSelection:
		if err := c.Start.Validate(); err != nil {
			return Error{Message: err.Error()}
		}
		if err := c.End.Validate(); err != nil {
			return Error{Message: err.Error()}
		}
		r := e.buffer.Rope()
		start := PositionFromOffset(r, c.Start.ToOffset(r))
		end := PositionFromOffset(r, c.End.ToOffset(r))
		sel := NewSelection(start, end)
		e.anchor = sel.Start
		e.setSelection(sel)
		return SelectionChanged{Selection: e.selection}

	case SelectAll:
		sel := DocumentSelection(e.buffer.Rope())
		e.anchor = sel.Start
		e.cursor.SetPosition(sel.End)
		e.setSelection(sel)
		return SelectionChanged{Selection: e.selection}

	case SelectLine:
		line := c.Line
		if line < 0 {
			line = e.cursor.Position().Line
		}
		sel, ok := LineSelection(e.buffer.Rope(), line)
		if !ok {
			return Success{}
		}
		e.anchor = sel.Start
		e.setSelection(sel)
		return SelectionChanged{Selection: e.selection}

	case SelectWord:
		sel, ok := WordAt(e.buffer.Rope(), e.cursor.Position())
		if !ok {
			return Success{}
		}
		e.anchor = sel.Start
		e.setSelection(sel)
		return SelectionChanged{Selection: e.selection}

	case ClearSelection:
		if e.clearSelection() {
			return SelectionChanged{}
		}
		return Success{}

	case Undo:
		pos, ok := e.buffer.Undo(e.cursor.Position())
		if !ok {
			return Success{}
		}
		e.cursor.SetPosition(pos)
		e.clampCursor()
		return e.textChanged()

	case Redo:
		pos, ok := e.buffer.Redo(e.cursor.Position())
		if !ok {
			return Success{}
		}
		e.cursor.SetPosition(pos)
		e.clampCursor()
		return e.textChanged()

	case Cut:
		if !e.hasSelection() {
			return Success{}
		}
		e.writeClipboard(e.selection.Text(e.buffer.Rope()))
		e.deleteActiveSelection()
		return e.textChanged()

	case Copy:
		if !e.hasSelection() {
			return Success{}
		}
		e.writeClipboard(e.selection.Text(e.buffer.Rope()))
		return Success{}

	case Paste:
		text := e.readClipboard()
		if text == "" {
			return Success{}
		}
		return e.insert(text)

	case Find:
		e.lastPattern = c.Pattern
		return SearchResults{Matches: e.buffer.Find(c.Pattern)}

	case FindNext:
		return e.findAdvance(true)

	case FindPrevious:
		return e.findAdvance(false)

	case Replace:
		return e.replaceAtCursor(c.Pattern, c.Replacement)

	case ReplaceAll:
		count := e.buffer.ReplaceAll(c.Pattern, c.Replacement, e.cursor.Position())
		if count == 0 {
			return Success{}
		}
		e.clampCursor()
		e.clearSelection()
		e.emit(StatusEvent{Message: replaceStatus(count)})
		return e.textChanged()

	case Scroll:
		e.viewport.ScrollBy(c.DX, c.DY, e.buffer.LineCount())
		return Success{}

	case ScrollToLine:
		e.viewport.ScrollToLine(c.Line, e.buffer.LineCount())
		return Success{}

	case Custom:
		return Success{}
	}
	return Success{}
}

// insert closes over any active selection, inserts at the cursor, and
// advances the cursor past the inserted text.
func (e *Editor) insert(text string) Response {
	if text == "" {
		return Success{}
	}
	e.deleteActiveSelection()
	pos := e.cursor.Position()
	e.buffer.InsertText(pos, text, pos)
	r := e.buffer.Rope()
	e.cursor.SetPosition(PositionFromOffset(r, pos.ToOffset(r)+len(text)))
	return e.textChanged()
}

func (e *Editor) move(m CursorMovement) {
	r := e.buffer.Rope()
	switch m {
	case CursorUp:
		e.cursor.MoveUp(r)
	case CursorDown:
		e.cursor.MoveDown(r)
	case CursorLeft:
		e.cursor.MoveLeft(r)
	case CursorRight:
		e.cursor.MoveRight(r)
	case CursorWordLeft:
		e.cursor.MoveWordLeft(r)
	case CursorWordRight:
		e.cursor.MoveWordRight(r)
	case CursorLineStart:
		e.cursor.MoveToLineStart()
	case CursorLineEnd:
		e.cursor.MoveToLineEnd(r)
	case CursorDocumentStart:
		e.cursor.MoveToDocumentStart()
	case CursorDocumentEnd:
		e.cursor.MoveToDocumentEnd(r)
	case CursorPageUp:
		e.cursor.MovePageUp(r)
	case CursorPageDown:
		e.cursor.MovePageDown(r)
	}
}

func (e *Editor) writeClipboard(text string) {
	e.clipboard = text
	if e.bridge != nil {
		if err := e.bridge.Write(text); err != nil {
			e.emit(ErrorEvent{Message: "clipboard write: " + err.Error()})
		}
	}
}

func (e *Editor) readClipboard() string {
	if e.bridge != nil {
		if text, err := e.bridge.Read(); err == nil {
			return text
		}
	}
	return e.clipboard
}

// findAdvance moves the cursor to the adjacent match of the last Find
// pattern, wrapping around the document.
func (e *Editor) findAdvance(forward bool) Response {
	matches := e.buffer.Find(e.lastPattern)
	if len(matches) == 0 {
		return Success{}
	}

	cur := e.cursor.Position()
	var target Position
	found := false
	if forward {
		for _, m := range matches {
			if cur.Before(m) {
				target, found = m, true
				break
			}
		}
		if !found {
			target = matches[0]
		}
	} else {
		for i := len(matches) - 1; i >= 0; i-- {
			if matches[i].Before(cur) {
				target, found = matches[i], true
				break
			}
		}
		if !found {
			target = matches[len(matches)-1]
		}
	}

	e.cursor.SetPosition(target)
	e.emit(CursorMovedEvent{Pos: target})
	return CursorMoved{Pos: target}
}

// replaceAtCursor replaces the pattern occurrence starting at the cursor,
// when there is one, and leaves the cursor after the replacement.
func (e *Editor) replaceAtCursor(pattern, replacement string) Response {
	if pattern == "" {
		return Success{}
	}
	r := e.buffer.Rope()
	offset := e.cursor.Position().ToOffset(r)
	if !strings.HasPrefix(r.Slice(offset, r.Len()), pattern) {
		return Success{}
	}

	pos := e.cursor.Position()
	end := PositionFromOffset(r, offset+len(pattern))
	e.buffer.DeleteRange(pos, end, pos)
	if replacement != "" {
		e.buffer.InsertText(pos, replacement, pos)
		// Collapse the replace into one undo step.
		e.buffer.undoStack = e.buffer.undoStack[:len(e.buffer.undoStack)-1]
	}
	r = e.buffer.Rope()
	e.cursor.SetPosition(PositionFromOffset(r, pos.ToOffset(r)+len(replacement)))
	e.clearSelection()
	return e.textChanged()
}

func replaceStatus(count int) string {
	if count == 1 {
		return "replaced 1 occurrence"
	}
	return "replaced " + strconv.Itoa(count) + " occurrences"
}
