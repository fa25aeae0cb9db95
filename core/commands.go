package core

// CursorMovement enumerates the directions MoveCursor and
// MoveCursorSelect understand.
type CursorMovement int

const (
	CursorUp CursorMovement = iota
	CursorDown
	CursorLeft
	CursorRight
	CursorWordLeft
	CursorWordRight
	CursorLineStart
	CursorLineEnd
	CursorDocumentStart
	CursorDocumentEnd
	CursorPageUp
	CursorPageDown
)

// Command is the closed set of editor inputs. Concrete variants carry the
// unexported marker so the set cannot grow outside this package, which
// keeps Dispatch's type switch exhaustive.
type Command interface {
	isCommand()
}

type (
	// InsertChar inserts one character at the cursor.
	InsertChar struct{ Char rune }
	// InsertText inserts a string at the cursor.
	InsertText struct{ Text string }
	// DeleteChar deletes the character at the cursor, or the selection
	// when one is active.
	DeleteChar struct{}
	// DeleteCharBackward deletes the character before the cursor, or the
	// selection when one is active.
	DeleteCharBackward struct{}
	// DeleteWordForward deletes from the cursor through the next word
	// boundary.
	DeleteWordForward struct{}
	// DeleteWordBackward deletes from the previous word start through the
	// cursor.
	DeleteWordBackward struct{}
	// DeleteToLineStart deletes from the line start through the cursor.
	DeleteToLineStart struct{}
	// DeleteToLineEnd deletes from the cursor through the line content end.
	DeleteToLineEnd struct{}
	// DeleteLine deletes the cursor's line including its terminator.
	DeleteLine struct{}
	// DeleteSelection deletes the active selection, if any.
	DeleteSelection struct{}

	// MoveCursor moves the cursor, clearing any selection.
	MoveCursor struct{ Movement CursorMovement }
	// MoveCursorSelect moves the cursor while extending (or starting) a
	// selection anchored at the pre-move position.
	MoveCursorSelect struct{ Movement CursorMovement }
	// MoveCursorTo places the cursor at an explicit position, clearing any
	// selection. A position with negative coordinates is an error.
	MoveCursorTo struct{ Pos Position }

	// StartSelection anchors a selection at the cursor.
	StartSelection struct{}
	// EndSelection drops the selection anchor, keeping the selection.
	EndSelection struct{}
	// SetSelection replaces the selection with an explicit range.
	SetSelection struct{ Start, End Position }
	// SelectAll selects the whole document.
	SelectAll struct{}
	// SelectLine selects one whole line.
	SelectLine struct{ Line int }
	// SelectWord selects the word under the cursor.
	SelectWord struct{}
	// ClearSelection drops any selection.
	ClearSelection struct{}

	// Undo reverts the most recent edit.
	Undo struct{}
	// Redo reapplies the most recently undone edit.
	Redo struct{}

	// Cut copies the selection to the clipboard and deletes it.
	Cut struct{}
	// Copy copies the selection to the clipboard.
	Copy struct{}
	// Paste inserts the clipboard contents at the cursor.
	Paste struct{}

	// Find collects every match of a pattern.
	Find struct{ Pattern string }
	// FindNext moves the cursor to the next match of the last pattern.
	FindNext struct{}
	// FindPrevious moves the cursor to the previous match of the last
	// pattern.
	FindPrevious struct{}
	// Replace replaces the match at the cursor, if the cursor sits on one.
	Replace struct{ Pattern, Replacement string }
	// ReplaceAll replaces every match of a pattern.
	ReplaceAll struct{ Pattern, Replacement string }

	// Scroll shifts the viewport by a pixel delta.
	Scroll struct{ DX, DY float64 }
	// ScrollToLine brings a line into view.
	ScrollToLine struct{ Line int }

	// Custom carries an application-defined command. The editor itself
	// answers Success; hosts intercept it before dispatch.
	Custom struct {
		Name string
		Args []string
	}
)

func (InsertChar) isCommand()         {}
func (InsertText) isCommand()         {}
func (DeleteChar) isCommand()         {}
func (DeleteCharBackward) isCommand() {}
func (DeleteWordForward) isCommand()  {}
func (DeleteWordBackward) isCommand() {}
func (DeleteToLineStart) isCommand()  {}
func (DeleteToLineEnd) isCommand()    {}
func (DeleteLine) isCommand()         {}
func (DeleteSelection) isCommand()    {}
func (MoveCursor) isCommand()         {}
func (MoveCursorSelect) isCommand()   {}
func (MoveCursorTo) isCommand()       {}
func (StartSelection) isCommand()     {}
func (EndSelection) isCommand()       {}
func (SetSelection) isCommand()       {}
func (SelectAll) isCommand()          {}
func (SelectLine) isCommand()         {}
func (SelectWord) isCommand()         {}
func (ClearSelection) isCommand()     {}
func (Undo) isCommand()               {}
func (Redo) isCommand()               {}
func (Cut) isCommand()                {}
func (Copy) isCommand()               {}
func (Paste) isCommand()              {}
func (Find) isCommand()               {}
func (FindNext) isCommand()           {}
func (FindPrevious) isCommand()       {}
func (Replace) isCommand()            {}
func (ReplaceAll) isCommand()         {}
func (Scroll) isCommand()             {}
func (ScrollToLine) isCommand()       {}
func (Custom) isCommand()             {}

// Response is the closed set of dispatch results.
type Response interface {
	isResponse()
}

type (
	// Success means the command was handled and nothing observable
	// changed.
	Success struct{}
	// Error carries a failure message.
	Error struct{ Message string }
	// TextChanged means the document text changed.
	TextChanged struct{}
	// CursorMoved carries the cursor's new position.
	CursorMoved struct{ Pos Position }
	// SelectionChanged carries the new selection; nil means it was
	// cleared.
	SelectionChanged struct{ Selection *Selection }
	// SearchResults carries every match position for a Find.
	SearchResults struct{ Matches []Position }
)

func (Success) isResponse()          {}
func (Error) isResponse()            {}
func (TextChanged) isResponse()      {}
func (CursorMoved) isResponse()      {}
func (SelectionChanged) isResponse() {}
func (SearchResults) isResponse()    {}
