package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	entity "bibtrade/internal/domain"

	"github.com/google/uuid"
)

type EventRepository interface {
	CreateEvent(event *entity.Event) error
	GetEventByID(eventID uuid.UUID) (*entity.Event, error)
	GetUpcomingEvents() ([]entity.Event, error)
}

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `id, name, name_en, event_date, province, venue, available_distances, is_active, is_verified, created_by, created_at`

func scanEvent(row interface{ Scan(...interface{}) error }, ev *entity.Event) error {
	var distances []byte
	err := row.Scan(
		&ev.ID, &ev.Name, &ev.NameEN, &ev.EventDate, &ev.Province, &ev.Venue,
		&distances, &ev.IsActive, &ev.IsVerified, &ev.CreatedBy, &ev.CreatedAt,
	)
	if err != nil {
		return err
	}
	if len(distances) > 0 {
		if err := json.Unmarshal(distances, &ev.AvailableDistances); err != nil {
			return fmt.Errorf("failed to decode available_distances: %w", err)
		}
	}
	return nil
}

func (r *eventRepository) CreateEvent(event *entity.Event) error {
	distances, err := json.Marshal(event.AvailableDistances)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO events (id, name, name_en, event_date, province, venue, available_distances, is_active, is_verified, created_by, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NOW())
	`
	_, err = r.db.Exec(query,
		event.ID, event.Name, event.NameEN, event.EventDate, event.Province,
		event.Venue, distances, event.IsActive, event.IsVerified, event.CreatedBy,
	)
	return err
}

func (r *eventRepository) GetEventByID(eventID uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	err := scanEvent(r.db.QueryRow(query, eventID), &event)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetUpcomingEvents lists active events whose date has not passed, soonest
// first. Past events are filtered out, never deleted.
func (r *eventRepository) GetUpcomingEvents() ([]entity.Event, error) {
	var events []entity.Event
	query := `
		SELECT ` + eventColumns + ` FROM events
		WHERE is_active = TRUE AND event_date >= CURRENT_DATE
		ORDER BY event_date ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event entity.Event
		if err := scanEvent(rows, &event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
