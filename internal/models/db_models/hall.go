package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Hall struct {
	BaseModel
	Name     string `gorm:"uniqueIndex;size:100;not null"`
	Location string `gorm:"size:200"`
	Vacancy  int    `gorm:"not null;default:50"`
	Price    int    `gorm:"not null;default:200"`
}

// Accommodation is one hall booking per external participant. Hall
// name and price are snapshotted at booking time.
type Accommodation struct {
	BaseModel
	ParticipantName  string    `gorm:"size:100;not null"`
	ParticipantEmail string    `gorm:"uniqueIndex;size:100;not null"`
	HallID           uuid.UUID `gorm:"type:uuid;not null"`
	HallName         string    `gorm:"size:100;not null"`
	Price            int       `gorm:"not null"`
	BookingDate      time.Time `gorm:"type:date"`
}
