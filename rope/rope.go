// Package rope implements an immutable rope for UTF-8 text.
//
// Operations return new Rope values and never modify the receiver, so a
// Rope can be retained as a cheap snapshot: edits share structure with the
// snapshot instead of copying the document. Every node caches the byte
// length and newline count of its subtree, which makes offset and line
// lookups logarithmic in the document size.
package rope

import "strings"

// Rope is an immutable text sequence. The zero value is an empty rope.
type Rope struct {
	root *node
}

// New returns an empty rope.
func New() Rope {
	return Rope{}
}

// FromString builds a rope from s, chunking the text into leaves.
func FromString(s string) Rope {
	if len(s) == 0 {
		return Rope{}
	}
	var leaves []*node
	for len(s) > maxLeafBytes {
		cut := maxLeafBytes
		// Keep multi-byte sequences intact across leaf boundaries.
		for cut > 0 && s[cut]&0xC0 == 0x80 {
			cut--
		}
		if cut == 0 {
			// A full chunk of continuation bytes is not valid UTF-8;
			// split it anyway rather than loop forever.
			cut = maxLeafBytes
		}
		leaves = append(leaves, newLeaf(s[:cut]))
		s = s[cut:]
	}
	leaves = append(leaves, newLeaf(s))
	return Rope{root: buildBalanced(leaves)}
}

// Len returns the total byte length.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.bytes
}

// IsEmpty reports whether the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// LineCount returns the number of lines (newlines + 1). An empty rope has
// one (empty) line.
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.newlines + 1
}

// String returns the full text. Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(r.root.bytes)
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the byte range [start, end), clamped to the
// rope's bounds.
func (r Rope) Slice(start, end int) string {
	if r.root == nil {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end > r.root.bytes {
		end = r.root.bytes
	}
	if start >= end {
		return ""
	}
	var sb strings.Builder
	sb.Grow(end - start)
	r.root.appendRange(&sb, start, end)
	return sb.String()
}

// ByteAt returns the byte at offset, or 0 and false when out of range.
func (r Rope) ByteAt(offset int) (byte, bool) {
	if r.root == nil || offset < 0 || offset >= r.root.bytes {
		return 0, false
	}
	return r.root.byteAt(offset), true
}

// Insert returns a new rope with text inserted at the byte offset. The
// offset is clamped to [0, Len()].
func (r Rope) Insert(offset int, text string) Rope {
	if len(text) == 0 {
		return r
	}
	if r.root == nil {
		return FromString(text)
	}
	if offset < 0 {
		offset = 0
	}
	if offset > r.root.bytes {
		offset = r.root.bytes
	}
	left, right := r.root.split(offset)
	return Rope{root: concat(concat(left, FromString(text).root), right)}
}

// Delete returns a new rope with the byte range [start, end) removed.
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil || start >= end {
		return r
	}
	if start < 0 {
		start = 0
	}
	if end > r.root.bytes {
		end = r.root.bytes
	}
	if start == 0 && end == r.root.bytes {
		return Rope{}
	}
	left, rest := r.root.split(start)
	_, right := rest.split(end - start)
	return Rope{root: concat(left, right)}
}

// Split divides the rope at offset into [0, offset) and [offset, Len()).
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil {
		return Rope{}, Rope{}
	}
	left, right := r.root.split(offset)
	return Rope{root: left}, Rope{root: right}
}

// Concat joins two ropes.
func (r Rope) Concat(other Rope) Rope {
	return Rope{root: concat(r.root, other.root)}
}

// LineStartOffset returns the byte offset where the given 0-indexed line
// begins. Lines past the end resolve to Len().
func (r Rope) LineStartOffset(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line > r.root.newlines {
		return r.root.bytes
	}
	return r.root.newlineOffset(line-1) + 1
}

// LineEndOffset returns the byte offset of the end of the line's content,
// excluding its newline. The last line ends at Len().
func (r Rope) LineEndOffset(line int) int {
	if r.root == nil {
		return 0
	}
	if line >= r.root.newlines {
		return r.root.bytes
	}
	return r.root.newlineOffset(line)
}

// LineText returns the text of the line without its newline.
func (r Rope) LineText(line int) string {
	return r.Slice(r.LineStartOffset(line), r.LineEndOffset(line))
}

// LineForOffset returns the 0-indexed line containing the byte offset.
func (r Rope) LineForOffset(offset int) int {
	if r.root == nil {
		return 0
	}
	if offset > r.root.bytes {
		offset = r.root.bytes
	}
	return r.root.newlinesBefore(offset)
}
