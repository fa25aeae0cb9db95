package core

import (
	"fmt"
	"unicode/utf8"

	"github.com/nrjais/icedit/rope"
)

// Position is a (line, column) coordinate into a document. Column counts
// characters (runes) from the line start, not bytes and not visual cells.
// A Position is not inherently valid; it must be resolved against a rope,
// and resolution clamps the line to the last line and the column to the
// line's length.
type Position struct {
	Line   int
	Column int
}

// Validate reports the one unclampable case: negative coordinates.
func (p Position) Validate() error {
	if p.Line < 0 || p.Column < 0 {
		return fmt.Errorf("%w: line %d, column %d", ErrInvalidPosition, p.Line, p.Column)
	}
	return nil
}

// Before reports whether p comes before other in document order
// (line-major, then column).
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Column < other.Column)
}

// After reports whether p comes after other in document order.
func (p Position) After(other Position) bool {
	return other.Before(p)
}

// ToOffset resolves the position to a byte offset in the rope. The line is
// clamped to the last line and the column to the line's character count,
// so the result is always a valid offset.
func (p Position) ToOffset(r rope.Rope) int {
	line := p.Line
	if line < 0 {
		line = 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}

	start := r.LineStartOffset(line)
	text := r.LineText(line)

	col := p.Column
	if col < 0 {
		col = 0
	}
	for i := range text {
		if col == 0 {
			return start + i
		}
		col--
	}
	return start + len(text)
}

// PositionFromOffset converts a byte offset back into a position. The
// offset is clamped to the document length; the column is the character
// distance from the owning line's start, so the round trip with ToOffset
// holds for multibyte text.
func PositionFromOffset(r rope.Rope, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > r.Len() {
		offset = r.Len()
	}

	line := r.LineForOffset(offset)
	start := r.LineStartOffset(line)
	return Position{
		Line:   line,
		Column: utf8.RuneCountInString(r.Slice(start, offset)),
	}
}
