package core

import (
	"strings"
	"unicode/utf8"

	"github.com/nrjais/icedit/rope"
)

// defaultMaxUndoLevels bounds the undo history; older snapshots are
// evicted first.
const defaultMaxUndoLevels = 100

// bufferState is one undo snapshot. The rope is immutable, so snapshots
// share structure with the live document and stay cheap.
type bufferState struct {
	text   rope.Rope
	cursor Position
}

// Buffer holds the document text and its undo and redo history. Every
// mutating operation that changes text pushes exactly one snapshot and
// clears the redo stack; operations that leave the text unchanged push
// nothing.
type Buffer struct {
	text     rope.Rope
	modified bool

	undoStack []bufferState
	redoStack []bufferState
	maxUndo   int
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return NewBufferFromString("")
}

// NewBufferFromString returns a buffer holding the given text, unmodified
// and with empty history.
func NewBufferFromString(text string) *Buffer {
	return &Buffer{
		text:    rope.FromString(text),
		maxUndo: defaultMaxUndoLevels,
	}
}

// SetMaxUndoLevels changes the undo bound, discarding the oldest
// snapshots if the history already exceeds it. Values below 1 are
// ignored.
func (b *Buffer) SetMaxUndoLevels(n int) {
	if n < 1 {
		return
	}
	b.maxUndo = n
	if excess := len(b.undoStack) - n; excess > 0 {
		b.undoStack = b.undoStack[excess:]
	}
}

// Rope returns the current document rope. The rope is immutable, so the
// caller may hold it across further edits.
func (b *Buffer) Rope() rope.Rope {
	return b.text
}

// Text returns the full document text.
func (b *Buffer) Text() string {
	return b.text.String()
}

// LineText returns a line's content without its terminator.
func (b *Buffer) LineText(line int) string {
	return b.text.LineText(line)
}

// LineCount returns the number of lines; an empty document has one.
func (b *Buffer) LineCount() int {
	return b.text.LineCount()
}

// CharCount returns the number of characters in the document.
func (b *Buffer) CharCount() int {
	return utf8.RuneCountInString(b.text.String())
}

// IsModified reports whether the buffer changed since creation. Undo does
// not reset the flag; it tracks edits, not equality with the original.
func (b *Buffer) IsModified() bool {
	return b.modified
}

// snapshot records the pre-edit state and invalidates redo.
func (b *Buffer) snapshot(cursor Position) {
	b.undoStack = append(b.undoStack, bufferState{text: b.text, cursor: cursor})
	if len(b.undoStack) > b.maxUndo {
		b.undoStack = b.undoStack[1:]
	}
	b.redoStack = nil
}

// InsertChar inserts one character at pos.
func (b *Buffer) InsertChar(pos Position, ch rune, cursor Position) {
	b.InsertText(pos, string(ch), cursor)
}

// InsertText inserts text at pos. Inserting the empty string is a no-op
// and records nothing.
func (b *Buffer) InsertText(pos Position, text string, cursor Position) {
	if text == "" {
		return
	}
	b.snapshot(cursor)
	b.text = b.text.Insert(pos.ToOffset(b.text), text)
	b.modified = true
}

// DeleteRange removes the bytes between two positions. Returns false when
// the range is empty and nothing changed.
func (b *Buffer) DeleteRange(start, end Position, cursor Position) bool {
	from, to := start.ToOffset(b.text), end.ToOffset(b.text)
	if from > to {
		from, to = to, from
	}
	if from == to {
		return false
	}
	b.snapshot(cursor)
	b.text = b.text.Delete(from, to)
	b.modified = true
	return true
}

// DeleteChar removes the character at pos, joining lines when pos sits at
// a line end. Returns false at the document end.
func (b *Buffer) DeleteChar(pos Position, cursor Position) bool {
	offset := pos.ToOffset(b.text)
	if offset >= b.text.Len() {
		return false
	}
	_, size := utf8.DecodeRuneInString(b.text.Slice(offset, b.text.Len()))
	b.snapshot(cursor)
	b.text = b.text.Delete(offset, offset+size)
	b.modified = true
	return true
}

// DeleteCharBackward removes the character before pos, joining lines when
// pos sits at a line start. Returns the new position and whether anything
// was deleted.
func (b *Buffer) DeleteCharBackward(pos Position, cursor Position) (Position, bool) {
	offset := pos.ToOffset(b.text)
	if offset == 0 {
		return pos, false
	}
	_, size := utf8.DecodeLastRuneInString(b.text.Slice(0, offset))
	b.snapshot(cursor)
	b.text = b.text.Delete(offset-size, offset)
	b.modified = true
	return PositionFromOffset(b.text, offset-size), true
}

// DeleteLine removes a whole line including its terminator. Deleting the
// only line clears it. Returns false when the line does not exist.
func (b *Buffer) DeleteLine(line int, cursor Position) bool {
	if line < 0 || line >= b.text.LineCount() {
		return false
	}
	start := b.text.LineStartOffset(line)
	end := b.text.LineEndOffset(line)
	if line < b.text.LineCount()-1 {
		end++ // take the terminator too
	} else if line > 0 {
		start-- // last line: take the preceding terminator instead
	}
	if start == end {
		return false
	}
	b.snapshot(cursor)
	b.text = b.text.Delete(start, end)
	b.modified = true
	return true
}

// DeleteSelection removes the selected text. Returns false for an empty
// selection.
func (b *Buffer) DeleteSelection(sel Selection, cursor Position) bool {
	return b.DeleteRange(sel.Start, sel.End, cursor)
}

// DeleteWordForward removes from pos through the end of the word run at
// pos and the boundary run after it. Returns false at the document end.
func (b *Buffer) DeleteWordForward(pos Position, cursor Position) bool {
	offset := pos.ToOffset(b.text)
	if offset >= b.text.Len() {
		return false
	}

	tail := b.text.Slice(offset, b.text.Len())
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
		if ch == '\n' {
			break
		}
		i += size
	}
	if i == 0 {
		// Cursor sits on a newline; delete just that.
		_, i = utf8.DecodeRuneInString(tail)
	}

	b.snapshot(cursor)
	b.text = b.text.Delete(offset, offset+i)
	b.modified = true
	return true
}

// DeleteWordBackward removes from the start of the word run before pos
// through pos, skipping the boundary run first. Returns the new position
// and whether anything was deleted.
func (b *Buffer) DeleteWordBackward(pos Position, cursor Position) (Position, bool) {
	offset := pos.ToOffset(b.text)
	if offset == 0 {
		return pos, false
	}

	head := b.text.Slice(0, offset)
	i := len(head)
	for i > 0 {
		ch, size := utf8.DecodeLastRuneInString(head[:i])
		if !IsWordBoundary(ch) || ch == '\n' {
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
	if i == offset {
		// Cursor sits right after a newline; delete just that.
		_, size := utf8.DecodeLastRuneInString(head)
		i = offset - size
	}

	b.snapshot(cursor)
	b.text = b.text.Delete(i, offset)
	b.modified = true
	return PositionFromOffset(b.text, i), true
}

// DeleteToLineEnd removes from pos through the end of the line's content.
// Returns false when pos already sits at or past the content end.
func (b *Buffer) DeleteToLineEnd(pos Position, cursor Position) bool {
	end := Position{Line: pos.Line, Column: utf8.RuneCountInString(b.text.LineText(pos.Line))}
	return b.DeleteRange(pos, end, cursor)
}

// DeleteToLineStart removes from the start of the line through pos.
// Returns false when pos already sits at column 0.
func (b *Buffer) DeleteToLineStart(pos Position, cursor Position) bool {
	return b.DeleteRange(Position{Line: pos.Line}, pos, cursor)
}

// Undo restores the most recent snapshot and returns the cursor position
// recorded with it. The undone state moves to the redo stack. Returns
// false when the history is empty.
func (b *Buffer) Undo(cursor Position) (Position, bool) {
	if len(b.undoStack) == 0 {
		return cursor, false
	}
	top := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.redoStack = append(b.redoStack, bufferState{text: b.text, cursor: cursor})
	b.text = top.text
	return top.cursor, true
}

// Redo reapplies the most recently undone state. Returns false when there
// is nothing to redo.
func (b *Buffer) Redo(cursor Position) (Position, bool) {
	if len(b.redoStack) == 0 {
		return cursor, false
	}
	top := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	b.undoStack = append(b.undoStack, bufferState{text: b.text, cursor: cursor})
	b.text = top.text
	return top.cursor, true
}

// CanUndo reports whether the undo history is non-empty.
func (b *Buffer) CanUndo() bool {
	return len(b.undoStack) > 0
}

// CanRedo reports whether the redo history is non-empty.
func (b *Buffer) CanRedo() bool {
	return len(b.redoStack) > 0
}

// Find returns the positions of every occurrence of pattern. An empty
// pattern matches nothing. The scan runs over the whole document, so a
// pattern containing a newline matches across lines.
func (b *Buffer) Find(pattern string) []Position {
	if pattern == "" {
		return nil
	}
	text := b.text.String()
	var matches []Position
	from := 0
	for {
		idx := strings.Index(text[from:], pattern)
		if idx < 0 {
			break
		}
		offset := from + idx
		matches = append(matches, PositionFromOffset(b.text, offset))
		from = offset + len(pattern)
	}
	return matches
}

// ReplaceAll replaces every occurrence of pattern and returns the number
// of replacements. A zero-count or empty-pattern call changes nothing and
// records no snapshot.
func (b *Buffer) ReplaceAll(pattern, replacement string, cursor Position) int {
	if pattern == "" {
		return 0
	}
	text := b.text.String()
	count := strings.Count(text, pattern)
	if count == 0 {
		return 0
	}
	b.snapshot(cursor)
	b.text = rope.FromString(strings.ReplaceAll(text, pattern, replacement))
	b.modified = true
	return count
}
