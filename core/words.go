package core

import (
	"unicode"
	"unicode/utf8"
)

// IsWordBoundary reports whether ch terminates a word for word-wise
// navigation, deletion, and selection. Whitespace always does. A fixed set
// of punctuation does. Underscore and hyphen never do, so snake_case and
// kebab-case read as single words.
func IsWordBoundary(ch rune) bool {
	if unicode.IsSpace(ch) {
		return true
	}

	switch ch {
	case '.', ',', ';', ':', '!', '?', '"', '\'', '(', ')', '[', ']', '{', '}',
		'<', '>', '|', '\\', '/', '@', '#', '$', '%', '^', '&', '*', '+', '=', '~', '`':
		return true
	case '_', '-':
		return false
	}

	// Any remaining ASCII punctuation breaks words; letters, digits and
	// non-ASCII characters do not.
	return ch < utf8.RuneSelf && unicode.IsPunct(ch)
}
