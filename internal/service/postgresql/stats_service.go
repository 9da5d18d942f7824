package service

import (
	"errors"

	entity "bibtrade/internal/domain"
	repo "bibtrade/internal/repository/postgresql"
	"bibtrade/internal/reputation"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrDealNotCompleted = errors.New("only a completed deal can be rated")
	ErrAlreadyRated     = errors.New("you already rated this deal")
)

type StatsService struct {
	statsRepo   repo.StatsRepository
	userRepo    repo.UserRepository
	listingRepo repo.ListingRepository
	offerRepo   repo.OfferRepository
}

func NewStatsService(statsRepo repo.StatsRepository, userRepo repo.UserRepository, listingRepo repo.ListingRepository, offerRepo repo.OfferRepository) *StatsService {
	return &StatsService{
		statsRepo:   statsRepo,
		userRepo:    userRepo,
		listingRepo: listingRepo,
		offerRepo:   offerRepo,
	}
}

// GetProfile builds the public reputation view of a user. A user without a
// stats row is reported exactly like one with all-zero counters.
func (s *StatsService) GetProfile(userID uuid.UUID) (*entity.ProfileResp, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stats, err := s.statsRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	score := reputation.Score(stats)
	resp := &entity.ProfileResp{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Score:       score,
		Tier:        reputation.Tier(score),
	}

	if stats != nil {
		resp.CompletedDeals = stats.CompletedDeals
		resp.CancelledDeals = stats.CancelledDeals
		resp.RatingCount = stats.RatingCount
	}
	if avg, ok := reputation.AverageRating(stats); ok {
		resp.AverageRating = &avg
	}

	return resp, nil
}

// RateDeal records the rater's 1-5 score of the counterparty on a completed
// listing. Only the seller or the matched buyer may rate, the ratee is always
// the other side, and each side rates a deal at most once.
func (s *StatsService) RateDeal(raterID, listingID uuid.UUID, rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	listing, err := s.listingRepo.GetListingByID(listingID)
	if err != nil {
		return err
	}
	if listing == nil {
		return ErrListingNotFound
	}
	if listing.Status != entity.ListingStatusCompleted {
		return ErrDealNotCompleted
	}

	accepted, err := s.offerRepo.GetAcceptedOffer(listingID)
	if err != nil {
		return err
	}
	if accepted == nil {
		return ErrOfferNotFound
	}

	var rateeID uuid.UUID
	switch raterID {
	case listing.UserID:
		rateeID = accepted.BuyerID
	case accepted.BuyerID:
		rateeID = listing.UserID
	default:
		return ErrNotParticipant
	}

	err = s.statsRepo.CreateRating(&entity.Rating{
		ID:        uuid.New(),
		ListingID: listingID,
		RaterID:   raterID,
		RateeID:   rateeID,
		Rating:    rating,
	})
	if errors.Is(err, repo.ErrDuplicateRating) {
		return ErrAlreadyRated
	}
	return err
}
