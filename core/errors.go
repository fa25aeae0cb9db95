package core

import "errors"

// ErrInvalidPosition is the only hard error the core surfaces: a position
// with a negative line or column cannot be clamped to the document. Every
// other edge condition (deleting at the document edge, undo on an empty
// stack, selecting a missing line, searching for an empty pattern) is a
// successful no-op so callers never need per-keystroke error handling.
var ErrInvalidPosition = errors.New("invalid position")
