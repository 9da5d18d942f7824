package service

import (
	"database/sql"
	"errors"
	"log"

	entity "bibtrade/internal/domain"
	mongorepo "bibtrade/internal/repository/mongodb"
	repo "bibtrade/internal/repository/postgresql"

	"github.com/google/uuid"
)

var (
	ErrInvalidListingType = errors.New("type must be sell or buy")
	ErrInvalidPriceMode   = errors.New("price mode must be open or hidden")
	ErrInvalidAskingPrice = errors.New("asking price must be a positive amount")
	ErrInvalidMinPrice    = errors.New("minimum price must be positive and not exceed the asking price")
	ErrInvalidMaxPrice    = errors.New("maximum price must be a positive amount")
	ErrDistanceRequired   = errors.New("distance is required")
	ErrEventNotFound      = errors.New("event not found")
	ErrTooManyImages      = errors.New("a listing can carry at most 3 images")
)

type ListingService struct {
	listingRepo repo.ListingRepository
	eventRepo   repo.EventRepository
	offerRepo   repo.OfferRepository
	statsRepo   repo.StatsRepository
	logRepo     mongorepo.LogRepository
}

func NewListingService(listingRepo repo.ListingRepository, eventRepo repo.EventRepository, offerRepo repo.OfferRepository, statsRepo repo.StatsRepository, logRepo mongorepo.LogRepository) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		eventRepo:   eventRepo,
		offerRepo:   offerRepo,
		statsRepo:   statsRepo,
		logRepo:     logRepo,
	}
}

// CreateListing validates and stores a new sell or buy posting. Hidden-price
// sell listings may carry a floor (min price) no higher than the asking
// price; hidden buy listings may carry a ceiling. Distances are free text;
// the event's list is only a suggestion set.
func (s *ListingService) CreateListing(userID uuid.UUID, input entity.CreateListingInput, bibImageURL string, extraImageURLs []string) (*entity.Listing, error) {
	if input.Type != entity.ListingTypeSell && input.Type != entity.ListingTypeBuy {
		return nil, ErrInvalidListingType
	}
	if input.PriceMode != entity.PriceModeOpen && input.PriceMode != entity.PriceModeHidden {
		return nil, ErrInvalidPriceMode
	}
	if input.AskingPrice <= 0 {
		return nil, ErrInvalidAskingPrice
	}
	if input.Distance == "" {
		return nil, ErrDistanceRequired
	}
	if len(extraImageURLs) > 2 {
		return nil, ErrTooManyImages
	}

	eventID, err := uuid.Parse(input.EventIDStr)
	if err != nil {
		return nil, ErrEventNotFound
	}
	event, err := s.eventRepo.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	listing := &entity.Listing{
		ID:                    uuid.New(),
		UserID:                userID,
		EventID:               eventID,
		Type:                  input.Type,
		Distance:              input.Distance,
		IncludesBib:           input.IncludesBib,
		BibGender:             input.BibGender,
		IncludesShirt:         input.IncludesShirt,
		ShirtSize:             input.ShirtSize,
		IncludesFinisherShirt: input.IncludesFinisherShirt,
		FinisherShirtSize:     input.FinisherShirtSize,
		IncludesMedal:         input.IncludesMedal,
		IncludesOther:         input.IncludesOther,
		PriceMode:             input.PriceMode,
		AskingPrice:           input.AskingPrice,
		MeetupLocation:        input.MeetupLocation,
		Note:                  input.Note,
		BibImageURL:           bibImageURL,
		ExtraImageURLs:        extraImageURLs,
		Status:                entity.ListingStatusWaiting,
	}

	if input.PriceMode == entity.PriceModeHidden {
		switch input.Type {
		case entity.ListingTypeSell:
			if input.MinPrice != 0 {
				if input.MinPrice < 0 || input.MinPrice > input.AskingPrice {
					return nil, ErrInvalidMinPrice
				}
				listing.MinPrice = sql.NullInt64{Int64: int64(input.MinPrice), Valid: true}
			}
		case entity.ListingTypeBuy:
			if input.MaxPrice != 0 {
				if input.MaxPrice < 0 {
					return nil, ErrInvalidMaxPrice
				}
				listing.MaxPrice = sql.NullInt64{Int64: int64(input.MaxPrice), Valid: true}
			}
		}
	}

	if err := s.listingRepo.CreateListing(listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (s *ListingService) GetListing(listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}

func (s *ListingService) SearchListings(filter entity.ListingFilter) ([]entity.Listing, error) {
	return s.listingRepo.SearchListings(filter)
}

func (s *ListingService) GetMyListings(userID uuid.UUID) ([]entity.Listing, error) {
	return s.listingRepo.GetListingsByUserID(userID)
}

// CancelListing lets the owner close a listing from waiting or matching. Any
// pending offers are withdrawn and the owner's cancelled-deal counter is
// incremented.
func (s *ListingService) CancelListing(userID, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.UserID != userID {
		return nil, ErrNotOwner
	}
	if !entity.CanListingTransition(listing.Status, entity.ListingStatusCancelled) {
		return nil, ErrListingState
	}

	moved, err := s.listingRepo.TransitionListingStatus(listing.ID, listing.Status, entity.ListingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrListingState
	}

	// Snapshot the pending offers before withdrawing them so their buyers
	// can be told the listing is gone.
	offers, err := s.offerRepo.GetOffersByListingID(listing.ID)
	if err != nil {
		return nil, err
	}
	if err := s.offerRepo.WithdrawPendingOffers(listing.ID); err != nil {
		return nil, err
	}

	oldStatus := listing.Status
	listing.Status = entity.ListingStatusCancelled

	if err := s.statsRepo.IncrementCancelled(userID); err != nil {
		log.Printf("Warning: failed to update stats for user %s: %v", userID.String(), err)
	}

	saveHistory(s.logRepo, listing.ID, "listing", oldStatus, listing.Status, userID)
	for _, offer := range offers {
		if offer.Status != entity.OfferStatusPending {
			continue
		}
		saveNotification(s.logRepo, offer.BuyerID, "Listing cancelled",
			"The listing you made an offer on was cancelled and your offer was withdrawn.", "listing", listing.ID)
	}

	return listing, nil
}
