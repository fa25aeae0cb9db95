package core

import (
	"unicode/utf8"

	"github.com/nrjais/icedit/rope"
)

// Selection is a normalized range of text: Start never comes after End.
// Both ends are inclusive of Start and exclusive of End when converted to
// byte offsets.
type Selection struct {
	Start Position
	End   Position
}

// NewSelection builds a selection from two positions in either order.
func NewSelection(a, b Position) Selection {
	if b.Before(a) {
		a, b = b, a
	}
	return Selection{Start: a, End: b}
}

// IsEmpty reports whether the selection covers no text.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Contains reports whether pos falls inside the selection. Both ends are
// included; an empty selection contains nothing.
func (s Selection) Contains(pos Position) bool {
	if s.IsEmpty() || pos.Before(s.Start) {
		return false
	}
	return pos.Before(s.End) || pos == s.End
}

// ExtendTo returns the selection grown or shrunk so that one end is pos.
// The end nearer to pos moves; the result is normalized.
func (s Selection) ExtendTo(pos Position) Selection {
	if pos.Before(s.Start) {
		return Selection{Start: pos, End: s.End}
	}
	return NewSelection(s.Start, pos)
}

// ToByteRange resolves both ends against the rope, clamped to valid
// offsets.
func (s Selection) ToByteRange(r rope.Rope) (start, end int) {
	return s.Start.ToOffset(r), s.End.ToOffset(r)
}

// Text returns the selected text.
func (s Selection) Text(r rope.Rope) string {
	start, end := s.ToByteRange(r)
	return r.Slice(start, end)
}

// LineSelection selects a whole line including its terminator. The last
// line has no terminator, so its selection ends at the content end. The
// second return is false when the line does not exist.
func LineSelection(r rope.Rope, line int) (Selection, bool) {
	if line < 0 || line >= r.LineCount() {
		return Selection{}, false
	}
	start := Position{Line: line}
	if line < r.LineCount()-1 {
		return Selection{Start: start, End: Position{Line: line + 1}}, true
	}
	end := Position{Line: line, Column: utf8.RuneCountInString(r.LineText(line))}
	return Selection{Start: start, End: end}, true
}

// WordAt returns the word run surrounding pos, or false when pos sits on
// a boundary character or past the line content.
func WordAt(r rope.Rope, pos Position) (Selection, bool) {
	offset := pos.ToOffset(r)
	text := r.String()

	if offset >= len(text) {
		return Selection{}, false
	}
	ch, _ := utf8.DecodeRuneInString(text[offset:])
	if IsWordBoundary(ch) {
		return Selection{}, false
	}

	start := offset
	for start > 0 {
		prev, size := utf8.DecodeLastRuneInString(text[:start])
		if IsWordBoundary(prev) {
			break
		}
		start -= size
	}
	end := offset
	for end < len(text) {
		next, size := utf8.DecodeRuneInString(text[end:])
		if IsWordBoundary(next) {
			break
		}
		end += size
	}

	return Selection{
		Start: PositionFromOffset(r, start),
		End:   PositionFromOffset(r, end),
	}, true
}

// DocumentSelection returns a selection spanning the entire document.
func DocumentSelection(r rope.Rope) Selection {
	last := r.LineCount() - 1
	return Selection{
		End: Position{Line: last, Column: utf8.RuneCountInString(r.LineText(last))},
	}
}
