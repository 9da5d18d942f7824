package service

import (
	"errors"
	"time"

	entity "bibtrade/internal/domain"
	repo "bibtrade/internal/repository/postgresql"

	"github.com/google/uuid"
)

var ErrInvalidEventDate = errors.New("event date must be in YYYY-MM-DD format")

type EventService struct {
	eventRepo   repo.EventRepository
	listingRepo repo.ListingRepository
}

func NewEventService(eventRepo repo.EventRepository, listingRepo repo.ListingRepository) *EventService {
	return &EventService{eventRepo: eventRepo, listingRepo: listingRepo}
}

// CreateEvent stores a user-submitted event. New events start active and
// unverified; verification is an administrative correction.
func (s *EventService) CreateEvent(userID uuid.UUID, input entity.CreateEventInput) (*entity.Event, error) {
	date, err := time.Parse("2006-01-02", input.EventDate)
	if err != nil {
		return nil, ErrInvalidEventDate
	}

	event := &entity.Event{
		ID:                 uuid.New(),
		Name:               input.Name,
		NameEN:             input.NameEN,
		EventDate:          date,
		Province:           input.Province,
		Venue:              input.Venue,
		AvailableDistances: input.AvailableDistances,
		IsActive:           true,
		IsVerified:         false,
		CreatedBy:          userID,
	}

	if err := s.eventRepo.CreateEvent(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetUpcomingEvents() ([]entity.Event, error) {
	return s.eventRepo.GetUpcomingEvents()
}

// GetEventDetail returns an event together with its open listings.
func (s *EventService) GetEventDetail(eventID uuid.UUID) (*entity.Event, []entity.Listing, error) {
	event, err := s.eventRepo.GetEventByID(eventID)
	if err != nil {
		return nil, nil, err
	}
	if event == nil {
		return nil, nil, ErrEventNotFound
	}

	listings, err := s.listingRepo.GetListingsByEventID(eventID)
	if err != nil {
		return nil, nil, err
	}
	return event, listings, nil
}
