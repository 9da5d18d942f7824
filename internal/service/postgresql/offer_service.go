package service

import (
	"errors"
	"fmt"
	"log"

	entity "bibtrade/internal/domain"
	"bibtrade/internal/negotiation"
	mongorepo "bibtrade/internal/repository/mongodb"
	repo "bibtrade/internal/repository/postgresql"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrListingClosed   = errors.New("listing is no longer open for offers")
	ErrListingState    = errors.New("listing is not in a state that allows this action")
	ErrOfferState      = errors.New("offer is not in pending status")
	ErrNotOwner        = errors.New("you are not the owner of this listing")
	ErrNotBuyer        = errors.New("you are not the buyer of this offer")
	ErrOwnListing      = errors.New("you cannot make an offer on your own listing")
	ErrDuplicateOffer  = errors.New("you already made an offer on this listing")
	ErrInvalidPrice    = errors.New("max price must be a positive amount")
	ErrNotHiddenPrice  = errors.New("listing does not use hidden pricing")
	ErrNotParticipant  = errors.New("only the seller or the matched buyer can confirm the deal")
)

// OfferService drives the offer lifecycle and the listing state machine
// around it: submit, accept (with cascade reject), reject, withdraw and deal
// finalization.
type OfferService struct {
	offerRepo   repo.OfferRepository
	listingRepo repo.ListingRepository
	statsRepo   repo.StatsRepository
	logRepo     mongorepo.LogRepository
}

func NewOfferService(offerRepo repo.OfferRepository, listingRepo repo.ListingRepository, statsRepo repo.StatsRepository, logRepo mongorepo.LogRepository) *OfferService {
	return &OfferService{
		offerRepo:   offerRepo,
		listingRepo: listingRepo,
		statsRepo:   statsRepo,
		logRepo:     logRepo,
	}
}

func (s *OfferService) openListingFor(listingID, buyerID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if listing.Status != entity.ListingStatusWaiting {
		return nil, ErrListingClosed
	}
	if listing.UserID == buyerID {
		return nil, ErrOwnListing
	}
	return listing, nil
}

// QuoteHiddenPrice runs the negotiation for a hidden-price listing without
// persisting anything. Only the outcome leaves the server; the seller's floor
// stays hidden whether or not the prices overlap.
func (s *OfferService) QuoteHiddenPrice(listingID, buyerID uuid.UUID, maxPrice int) (negotiation.Outcome, error) {
	listing, err := s.openListingFor(listingID, buyerID)
	if err != nil {
		return negotiation.Outcome{}, err
	}
	if listing.PriceMode != entity.PriceModeHidden {
		return negotiation.Outcome{}, ErrNotHiddenPrice
	}

	out, err := negotiation.Evaluate(negotiation.FloorFor(listing), maxPrice)
	if errors.Is(err, negotiation.ErrInvalidInput) {
		return negotiation.Outcome{}, ErrInvalidPrice
	}
	return out, err
}

// SubmitOffer records a buyer's offer against a listing. Open-price listings
// take the asking price as-is; hidden-price listings go through the
// negotiation first and create no offer when the prices do not overlap. The
// returned outcome carries the price either way.
func (s *OfferService) SubmitOffer(listingID, buyerID uuid.UUID, input entity.SubmitOfferInput) (*entity.Offer, negotiation.Outcome, error) {
	listing, err := s.openListingFor(listingID, buyerID)
	if err != nil {
		return nil, negotiation.Outcome{}, err
	}

	exists, err := s.offerRepo.HasPendingOffer(listingID, buyerID)
	if err != nil {
		return nil, negotiation.Outcome{}, err
	}
	if exists {
		return nil, negotiation.Outcome{}, ErrDuplicateOffer
	}

	var out negotiation.Outcome
	switch listing.PriceMode {
	case entity.PriceModeHidden:
		out, err = negotiation.Evaluate(negotiation.FloorFor(listing), input.MaxPrice)
		if errors.Is(err, negotiation.ErrInvalidInput) {
			return nil, negotiation.Outcome{}, ErrInvalidPrice
		}
		if err != nil {
			return nil, negotiation.Outcome{}, err
		}
		if !out.Matched {
			return nil, out, nil
		}
	default:
		out = negotiation.Outcome{Matched: true, Price: listing.AskingPrice}
	}

	offer := &entity.Offer{
		ID:         uuid.New(),
		ListingID:  listing.ID,
		BuyerID:    buyerID,
		SellerID:   listing.UserID,
		OfferPrice: out.Price,
		Message:    input.Message,
		Status:     entity.OfferStatusPending,
	}

	// The partial unique index backs this up against a concurrent submit
	// racing past the HasPendingOffer check.
	if err := s.offerRepo.CreateOffer(offer); err != nil {
		if errors.Is(err, repo.ErrDuplicatePending) {
			return nil, negotiation.Outcome{}, ErrDuplicateOffer
		}
		return nil, negotiation.Outcome{}, err
	}

	saveNotification(s.logRepo, listing.UserID, "New offer received",
		fmt.Sprintf("A buyer offered ฿%d on your listing.", offer.OfferPrice), "offer", offer.ID)

	return offer, out, nil
}

// AcceptOffer moves one pending offer to accepted, rejects every competing
// pending offer on the same listing and moves the listing to matching.
func (s *OfferService) AcceptOffer(userID, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := s.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	if offer.SellerID != userID {
		return nil, ErrNotOwner
	}
	if !entity.CanOfferTransition(offer.Status, entity.OfferStatusAccepted) {
		return nil, ErrOfferState
	}

	listing, err := s.listingRepo.GetListingByID(offer.ListingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if !entity.CanListingTransition(listing.Status, entity.ListingStatusMatching) {
		return nil, ErrListingState
	}

	// The conditional listing transition is the mutual exclusion point:
	// of two accepts racing on the same listing, only one can move it out
	// of waiting. The loser's reads were stale.
	moved, err := s.listingRepo.TransitionListingStatus(listing.ID, entity.ListingStatusWaiting, entity.ListingStatusMatching)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrListingState
	}

	decided, err := s.offerRepo.TransitionOfferStatus(offer.ID, entity.OfferStatusPending, entity.OfferStatusAccepted)
	if err != nil {
		return nil, err
	}
	if !decided {
		// The buyer withdrew between our read and the listing
		// transition. Reopen the listing and report the stale offer.
		if _, err := s.listingRepo.TransitionListingStatus(listing.ID, entity.ListingStatusMatching, entity.ListingStatusWaiting); err != nil {
			log.Printf("Warning: failed to reopen listing %s after stale accept of offer %s: %v",
				listing.ID.String(), offer.ID.String(), err)
		}
		return nil, ErrOfferState
	}

	if err := s.offerRepo.RejectCompetingOffers(listing.ID, offer.ID); err != nil {
		return nil, err
	}

	oldStatus := offer.Status
	offer.Status = entity.OfferStatusAccepted

	saveHistory(s.logRepo, offer.ID, "offer", oldStatus, offer.Status, userID)
	saveHistory(s.logRepo, listing.ID, "listing", entity.ListingStatusWaiting, entity.ListingStatusMatching, userID)
	saveNotification(s.logRepo, offer.BuyerID, "Offer accepted",
		fmt.Sprintf("The seller accepted your offer of ฿%d.", offer.OfferPrice), "offer", offer.ID)

	return offer, nil
}

func (s *OfferService) RejectOffer(userID, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := s.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	if offer.SellerID != userID {
		return nil, ErrNotOwner
	}
	if !entity.CanOfferTransition(offer.Status, entity.OfferStatusRejected) {
		return nil, ErrOfferState
	}

	decided, err := s.offerRepo.TransitionOfferStatus(offer.ID, entity.OfferStatusPending, entity.OfferStatusRejected)
	if err != nil {
		return nil, err
	}
	if !decided {
		return nil, ErrOfferState
	}

	oldStatus := offer.Status
	offer.Status = entity.OfferStatusRejected

	saveHistory(s.logRepo, offer.ID, "offer", oldStatus, offer.Status, userID)
	saveNotification(s.logRepo, offer.BuyerID, "Offer rejected", "The seller rejected your offer.", "offer", offer.ID)

	return offer, nil
}

func (s *OfferService) WithdrawOffer(userID, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := s.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	if offer.BuyerID != userID {
		return nil, ErrNotBuyer
	}
	if !entity.CanOfferTransition(offer.Status, entity.OfferStatusWithdrawn) {
		return nil, ErrOfferState
	}

	decided, err := s.offerRepo.TransitionOfferStatus(offer.ID, entity.OfferStatusPending, entity.OfferStatusWithdrawn)
	if err != nil {
		return nil, err
	}
	if !decided {
		return nil, ErrOfferState
	}

	oldStatus := offer.Status
	offer.Status = entity.OfferStatusWithdrawn

	saveHistory(s.logRepo, offer.ID, "offer", oldStatus, offer.Status, userID)

	return offer, nil
}

// FinalizeDeal confirms a matched listing as completed and credits both
// parties' completed-deal counters.
func (s *OfferService) FinalizeDeal(userID, listingID uuid.UUID) (*entity.Listing, error) {
	listing, err := s.listingRepo.GetListingByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	if !entity.CanListingTransition(listing.Status, entity.ListingStatusCompleted) {
		return nil, ErrListingState
	}

	accepted, err := s.offerRepo.GetAcceptedOffer(listingID)
	if err != nil {
		return nil, err
	}
	if accepted == nil {
		return nil, ErrOfferNotFound
	}
	if userID != listing.UserID && userID != accepted.BuyerID {
		return nil, ErrNotParticipant
	}

	moved, err := s.listingRepo.TransitionListingStatus(listing.ID, entity.ListingStatusMatching, entity.ListingStatusCompleted)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, ErrListingState
	}

	oldStatus := listing.Status
	listing.Status = entity.ListingStatusCompleted

	if err := s.statsRepo.IncrementCompleted(listing.UserID); err != nil {
		log.Printf("Warning: failed to update seller stats for listing %s: %v", listing.ID.String(), err)
	}
	if err := s.statsRepo.IncrementCompleted(accepted.BuyerID); err != nil {
		log.Printf("Warning: failed to update buyer stats for listing %s: %v", listing.ID.String(), err)
	}

	saveHistory(s.logRepo, listing.ID, "listing", oldStatus, listing.Status, userID)
	saveNotification(s.logRepo, listing.UserID, "Deal completed", "Your listing was completed.", "listing", listing.ID)
	saveNotification(s.logRepo, accepted.BuyerID, "Deal completed", "Your deal was completed.", "listing", listing.ID)

	return listing, nil
}

func (s *OfferService) GetMyOffers(buyerID uuid.UUID) ([]entity.Offer, error) {
	return s.offerRepo.GetOffersByBuyerID(buyerID)
}

// GetOffersForListing lists the offers on a listing; only its owner may see
// them.
func (s *OfferService) GetOffersForListing(userID, listingID uuid.UUID) ([]entity.Offer, error) {
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
	return s.offerRepo.GetOffersByListingID(listingID)
}
