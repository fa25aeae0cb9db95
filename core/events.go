package core

import "log"

// eventBufferSize bounds the event channel. Events are advisory; when a
// consumer falls this far behind, new events are dropped rather than
// blocking dispatch.
const eventBufferSize = 100

// Event is a notification the editor publishes after handling a command.
// Consumers range over Events(); producers never block.
type Event interface {
	isEvent()
}

type (
	// TextChangedEvent fires after any edit to the document.
	TextChangedEvent struct{}
	// CursorMovedEvent fires when the cursor position changes.
	CursorMovedEvent struct{ Pos Position }
	// SelectionChangedEvent fires when the selection changes; a nil
	// Selection means it was cleared.
	SelectionChangedEvent struct{ Selection *Selection }
	// StatusEvent carries a human-readable status line, e.g. a replace
	// count.
	StatusEvent struct{ Message string }
	// ErrorEvent fires when a command fails.
	ErrorEvent struct{ Message string }
)

func (TextChangedEvent) isEvent()      {}
func (CursorMovedEvent) isEvent()      {}
func (SelectionChangedEvent) isEvent() {}
func (StatusEvent) isEvent()           {}
func (ErrorEvent) isEvent()            {}

// Events returns the editor's event channel.
func (e *Editor) Events() <-chan Event {
	return e.events
}

// emit publishes an event without blocking. A full channel drops the
// event and logs it once per drop.
func (e *Editor) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
		log.Printf("editor: event channel full, dropping %T", ev)
	}
}
