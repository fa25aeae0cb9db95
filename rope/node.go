package rope

import "strings"

const (
	// maxLeafBytes is the largest text chunk a single leaf holds before
	// FromString or a concat splits it.
	maxLeafBytes = 512

	// mergeLeafBytes is the threshold under which two adjacent leaves are
	// merged into one during concatenation.
	mergeLeafBytes = maxLeafBytes / 2
)

// node is a node in the rope tree. Leaves carry text; internal nodes carry
// two children. Every node caches the byte length and newline count of its
// subtree so offset and line lookups never touch the text itself.
type node struct {
	left, right *node // nil for leaves
	text        string
	bytes       int
	newlines    int
	height      int // 1 for leaves
}

func newLeaf(text string) *node {
	return &node{
		text:     text,
		bytes:    len(text),
		newlines: strings.Count(text, "\n"),
		height:   1,
	}
}

func newInternal(left, right *node) *node {
	h := left.height
	if right.height > h {
		h = right.height
	}
	return &node{
		left:     left,
		right:    right,
		bytes:    left.bytes + right.bytes,
		newlines: left.newlines + right.newlines,
		height:   h + 1,
	}
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// appendTo writes the subtree's text to the builder in order.
func (n *node) appendTo(sb *strings.Builder) {
	if n.isLeaf() {
		sb.WriteString(n.text)
		return
	}
	n.left.appendTo(sb)
	n.right.appendTo(sb)
}

// appendRange writes the text in the byte range [start, end) to the builder.
// Bounds must already be clamped to the subtree.
func (n *node) appendRange(sb *strings.Builder, start, end int) {
	if start >= end {
		return
	}
	if n.isLeaf() {
		sb.WriteString(n.text[start:end])
		return
	}
	if start < n.left.bytes {
		leftEnd := end
		if leftEnd > n.left.bytes {
			leftEnd = n.left.bytes
		}
		n.left.appendRange(sb, start, leftEnd)
	}
	if end > n.left.bytes {
		rightStart := start - n.left.bytes
		if rightStart < 0 {
			rightStart = 0
		}
		n.right.appendRange(sb, rightStart, end-n.left.bytes)
	}
}

// byteAt returns the byte at offset. Offset must be within the subtree.
func (n *node) byteAt(offset int) byte {
	for !n.isLeaf() {
		if offset < n.left.bytes {
			n = n.left
		} else {
			offset -= n.left.bytes
			n = n.right
		}
	}
	return n.text[offset]
}

// split divides the subtree at offset into two trees: [0, offset) and
// [offset, end). Either side may be nil when empty.
func (n *node) split(offset int) (*node, *node) {
	if offset <= 0 {
		return nil, n
	}
	if offset >= n.bytes {
		return n, nil
	}
	if n.isLeaf() {
		return newLeaf(n.text[:offset]), newLeaf(n.text[offset:])
	}
	if offset < n.left.bytes {
		l, r := n.left.split(offset)
		return l, concat(r, n.right)
	}
	if offset > n.left.bytes {
		l, r := n.right.split(offset - n.left.bytes)
		return concat(n.left, l), r
	}
	return n.left, n.right
}

// concat joins two subtrees, merging small adjacent leaves and keeping the
// tree roughly balanced.
func concat(left, right *node) *node {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.isLeaf() && right.isLeaf() && left.bytes+right.bytes <= mergeLeafBytes {
		return newLeaf(left.text + right.text)
	}
	joined := newInternal(left, right)
	if needsRebalance(joined) {
		return rebalance(joined)
	}
	return joined
}

// needsRebalance reports whether the tree has degenerated enough that a
// rebuild pays off: height well above log2 of the leaf count.
func needsRebalance(n *node) bool {
	leaves := n.bytes/maxLeafBytes + 1
	limit := 2
	for m := 1; m < leaves; m *= 2 {
		limit++
	}
	return n.height > 2*limit
}

// rebalance rebuilds the subtree bottom-up from its leaves.
func rebalance(n *node) *node {
	var leaves []*node
	collectLeaves(n, &leaves)
	return buildBalanced(leaves)
}

func collectLeaves(n *node, out *[]*node) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		*out = append(*out, n)
		return
	}
	collectLeaves(n.left, out)
	collectLeaves(n.right, out)
}

func buildBalanced(leaves []*node) *node {
	switch len(leaves) {
	case 0:
		return nil
	case 1:
		return leaves[0]
	}
	mid := len(leaves) / 2
	return newInternal(buildBalanced(leaves[:mid]), buildBalanced(leaves[mid:]))
}

// newlineOffset returns the byte offset of the k-th newline (0-indexed) in
// the subtree. k must be < n.newlines.
func (n *node) newlineOffset(k int) int {
	offset := 0
	for !n.isLeaf() {
		if k < n.left.newlines {
			n = n.left
		} else {
			k -= n.left.newlines
			offset += n.left.bytes
			n = n.right
		}
	}
	idx := 0
	for {
		rel := strings.IndexByte(n.text[idx:], '\n')
		if k == 0 {
			return offset + idx + rel
		}
		idx += rel + 1
		k--
	}
}

// newlinesBefore counts the newlines in the byte range [0, offset).
func (n *node) newlinesBefore(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= n.bytes {
		return n.newlines
	}
	if n.isLeaf() {
		return strings.Count(n.text[:offset], "\n")
	}
	if offset <= n.left.bytes {
		return n.left.newlinesBefore(offset)
	}
	return n.left.newlines + n.right.newlinesBefore(offset-n.left.bytes)
}
