// Package events implements the event-scheduling domain: creating, listing,
// editing, and deleting events. Only the organizer of an event may mutate or
// delete it; every authenticated user may read every event.
package events

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Organizer is the snapshot of the user who created an event, captured at
// creation time. It is a copy, not a live reference: renaming or deleting
// the underlying user does not change past events.
type Organizer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Event represents a scheduled event.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Organizer   Organizer `json:"organizer"`
	Attendees   []string  `json:"attendees"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewEventID mints a ULID for a new event.
func NewEventID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// validEventID reports whether the given string parses as a ULID. Callers
// treat a malformed id exactly like a missing event.
func validEventID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
