package core

import (
	"unicode/utf8"

	"github.com/nrjais/icedit/rope"
)

// TabWidth is the tab stop width used for visual column arithmetic.
const TabWidth = 4

// pageStep is how many lines a page movement covers, stopping early at the
// document edges.
const pageStep = 20

// Cursor is a position plus a remembered visual column. The visual column
// is only kept across consecutive vertical moves so that moving up or down
// through lines with different tab layouts preserves the user's horizontal
// intent; any horizontal, word, or explicit movement clears it.
type Cursor struct {
	pos              Position
	desiredVisualCol int // -1 when unset
}

// NewCursor returns a cursor at the document start.
func NewCursor() *Cursor {
	return &Cursor{desiredVisualCol: -1}
}

// Position returns the cursor's current position.
func (c *Cursor) Position() Position {
	return c.pos
}

// SetPosition moves the cursor explicitly and forgets the desired visual
// column.
func (c *Cursor) SetPosition(pos Position) {
	c.pos = pos
	c.desiredVisualCol = -1
}

// lineContentLen returns the character count of a line's content,
// excluding its terminator.
func lineContentLen(r rope.Rope, line int) int {
	return utf8.RuneCountInString(r.LineText(line))
}

// visualColumn converts a character column to a visual column, expanding
// tabs to the next tab stop.
func visualColumn(line string, column int) int {
	visual := 0
	idx := 0
	for _, ch := range line {
		if idx >= column {
			break
		}
		if ch == '\t' {
			visual = (visual/TabWidth + 1) * TabWidth
		} else {
			visual++
		}
		idx++
	}
	return visual
}

// columnForVisual converts a visual column back to a character column on
// the given line. A visual column landing inside a tab's span places the
// cursor after the tab.
func columnForVisual(line string, visual int) int {
	current := 0
	idx := 0
	for _, ch := range line {
		if ch == '\t' {
			nextStop := (current/TabWidth + 1) * TabWidth
			if visual <= current {
				break
			}
			if visual < nextStop {
				idx++
				break
			}
			current = nextStop
		} else {
			if visual <= current {
				break
			}
			current++
		}
		idx++
	}
	return idx
}

// MoveUp moves one line up, converting the desired visual column into a
// character column on the destination line. Returns false at the first
// line.
func (c *Cursor) MoveUp(r rope.Rope) bool {
	if c.pos.Line == 0 {
		return false
	}

	desired := c.desiredVisualCol
	if desired < 0 {
		desired = visualColumn(r.LineText(c.pos.Line), c.pos.Column)
	}

	c.pos.Line--
	line := r.LineText(c.pos.Line)
	c.pos.Column = columnForVisual(line, desired)
	if max := utf8.RuneCountInString(line); c.pos.Column > max {
		c.pos.Column = max
	}
	c.desiredVisualCol = desired
	return true
}

// MoveDown is the mirror of MoveUp. Returns false at the last line.
func (c *Cursor) MoveDown(r rope.Rope) bool {
	if c.pos.Line >= r.LineCount()-1 {
		return false
	}

	desired := c.desiredVisualCol
	if desired < 0 {
		desired = visualColumn(r.LineText(c.pos.Line), c.pos.Column)
	}

	c.pos.Line++
	line := r.LineText(c.pos.Line)
	c.pos.Column = columnForVisual(line, desired)
	if max := utf8.RuneCountInString(line); c.pos.Column > max {
		c.pos.Column = max
	}
	c.desiredVisualCol = desired
	return true
}

// MoveLeft moves one character left, wrapping to the end of the previous
// line. Returns false at the document start.
func (c *Cursor) MoveLeft(r rope.Rope) bool {
	switch {
	case c.pos.Column > 0:
		c.pos.Column--
	case c.pos.Line > 0:
		c.pos.Line--
		c.pos.Column = lineContentLen(r, c.pos.Line)
	default:
		return false
	}
	c.desiredVisualCol = -1
	return true
}

// MoveRight moves one character right, wrapping to the start of the next
// line. Returns false at the document end.
func (c *Cursor) MoveRight(r rope.Rope) bool {
	switch {
	case c.pos.Column < lineContentLen(r, c.pos.Line):
		c.pos.Column++
	case c.pos.Line < r.LineCount()-1:
		c.pos.Line++
		c.pos.Column = 0
	default:
		return false
	}
	c.desiredVisualCol = -1
	return true
}

// MoveToLineStart moves to column 0 of the current line.
func (c *Cursor) MoveToLineStart() {
	c.pos.Column = 0
	c.desiredVisualCol = -1
}

// MoveToLineEnd moves past the last character of the current line's
// content, excluding the terminator.
func (c *Cursor) MoveToLineEnd(r rope.Rope) {
	c.pos.Column = lineContentLen(r, c.pos.Line)
	c.desiredVisualCol = -1
}

// MoveToDocumentStart moves to (0, 0).
func (c *Cursor) MoveToDocumentStart() {
	c.pos = Position{}
	c.desiredVisualCol = -1
}

// MoveToDocumentEnd moves to the content end of the last line.
func (c *Cursor) MoveToDocumentEnd(r rope.Rope) {
	c.pos.Line = r.LineCount() - 1
	c.pos.Column = lineContentLen(r, c.pos.Line)
	c.desiredVisualCol = -1
}

// MovePageUp moves up by a fixed number of lines, stopping at the first
// line. Returns true if the cursor moved at all.
func (c *Cursor) MovePageUp(r rope.Rope) bool {
	moved := false
	for range pageStep {
		if !c.MoveUp(r) {
			break
		}
		moved = true
	}
	return moved
}

// MovePageDown is the mirror of MovePageUp.
func (c *Cursor) MovePageDown(r rope.Rope) bool {
	moved := false
	for range pageStep {
		if !c.MoveDown(r) {
			break
		}
		moved = true
	}
	return moved
}

// MoveWordLeft skips the boundary run before the cursor, then the word
// run, landing at the word's start. Returns false at the document start.
func (c *Cursor) MoveWordLeft(r rope.Rope) bool {
	offset := c.pos.ToOffset(r)
	if offset == 0 {
		return false
	}

	head := r.Slice(0, offset)
	i := len(head)
	for i > 0 {
		ch, size := utf8.DecodeLastRuneInString(head[:i])
		if !IsWordBoundary(ch) {
			break
		}
		i -= size
	}
	for i > 0 {
		ch, size := utf8.DecodeLastRuneInString(head[:i])
		if IsWordBoundary(ch) {
			break
		}
		i -= size
	}

	c.pos = PositionFromOffset(r, i)
	c.desiredVisualCol = -1
	return true
}

// MoveWordRight skips the word run at the cursor, then the following
// boundary run, landing at the next word's start or the document end.
// Returns false when already at the document end.
func (c *Cursor) MoveWordRight(r rope.Rope) bool {
	offset := c.pos.ToOffset(r)
	if offset >= r.Len() {
		return false
	}

	tail := r.Slice(offset, r.Len())
	i := 0
	for i < len(tail) {
		ch, size := utf8.DecodeRuneInString(tail[i:])
		if IsWordBoundary(ch) {
			break
		}
		i += size
	}
	for i < len(tail) {
		ch, size := utf8.DecodeRuneInString(tail[i:])
		if !IsWordBoundary(ch) {
			break
		}
		i += size
	}

	c.pos = PositionFromOffset(r, offset+i)
	c.desiredVisualCol = -1
	return true
}
