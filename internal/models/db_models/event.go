package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	BaseModel
	Name        string    `gorm:"uniqueIndex;size:200;not null"`
	Description string    `gorm:"type:text"`
	Date        time.Time `gorm:"type:date"`
	Time        string    `gorm:"size:10"`
	Location    string    `gorm:"size:200"`
}

// EventRegistration links a student or external participant to an
// event. The pair is unique; registration is idempotent.
type EventRegistration struct {
	BaseModel
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_event_user"`
	UserEmail string    `gorm:"size:100;not null;uniqueIndex:uq_event_user"`
}

// Volunteer links a student to an event they help run, separate from
// registering as a participant. Snapshots the student name.
type Volunteer struct {
	BaseModel
	EventID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_event_volunteer"`
	StudentEmail string    `gorm:"size:100;not null;uniqueIndex:uq_event_volunteer"`
	StudentName  string    `gorm:"size:100;not null"`
}

type EventOrganiser struct {
	BaseModel
	EventID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_event_organiser"`
	OrganiserEmail string    `gorm:"size:100;not null;uniqueIndex:uq_event_organiser"`
	OrganiserName  string    `gorm:"size:100;not null"`
}

// Winner records the outcome of an event: at most one row per event,
// written once and never overwritten.
type Winner struct {
	BaseModel
	EventID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	EventName        string    `gorm:"size:200;not null"`
	ParticipantName  string    `gorm:"size:100"`
	ParticipantEmail string    `gorm:"size:100"`
}
