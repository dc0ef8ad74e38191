package chapter

import (
	"github.com/google/uuid"

	"github.com/abhisek/roscourse/internal/progress"
)

// advanceMsg fires when the delay after completing a section elapses.
type advanceMsg struct {
	View   uuid.UUID
	Ticket progress.Ticket
}

// statusExpiredMsg hides the copy status line.
type statusExpiredMsg struct {
	View   uuid.UUID
	Ticket progress.Ticket
}

// gotoSectionMsg is sent by the table of contents.
type gotoSectionMsg struct {
	View  uuid.UUID
	Index int
}
