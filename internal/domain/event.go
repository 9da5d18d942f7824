package entity

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	NameEN             string    `db:"name_en" json:"name_en,omitempty"`
	EventDate          time.Time `db:"event_date" json:"event_date"`
	Province           string    `db:"province" json:"province,omitempty"`
	Venue              string    `db:"venue" json:"venue,omitempty"`
	AvailableDistances []string  `db:"available_distances" json:"available_distances,omitempty"` // JSONB, advisory suggestion set
	IsActive           bool      `db:"is_active" json:"is_active"`
	IsVerified         bool      `db:"is_verified" json:"is_verified"`
	CreatedBy          uuid.UUID `db:"created_by" json:"created_by"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

type CreateEventInput struct {
	Name               string   `json:"name" binding:"required"`
	NameEN             string   `json:"name_en"`
	EventDate          string   `json:"event_date" binding:"required"` // YYYY-MM-DD
	Province           string   `json:"province" binding:"required"`
	Venue              string   `json:"venue"`
	AvailableDistances []string `json:"available_distances"`
}
