package service

import (
	entity "bibtrade/internal/domain"
	repo "bibtrade/internal/repository/postgresql"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests.

type fakeOfferRepo struct {
	offers map[uuid.UUID]*entity.Offer
}

func newFakeOfferRepo() *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[uuid.UUID]*entity.Offer)}
}

func (r *fakeOfferRepo) CreateOffer(offer *entity.Offer) error {
	for _, o := range r.offers {
		if o.ListingID == offer.ListingID && o.BuyerID == offer.BuyerID && o.Status == entity.OfferStatusPending {
			return repo.ErrDuplicatePending
		}
	}
	cp := *offer
	r.offers[offer.ID] = &cp
	return nil
}

func (r *fakeOfferRepo) GetOfferByID(offerID uuid.UUID) (*entity.Offer, error) {
	o, ok := r.offers[offerID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOfferRepo) GetOffersByBuyerID(buyerID uuid.UUID) ([]entity.Offer, error) {
	var out []entity.Offer
	for _, o := range r.offers {
		if o.BuyerID == buyerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) GetOffersByListingID(listingID uuid.UUID) ([]entity.Offer, error) {
	var out []entity.Offer
	for _, o := range r.offers {
		if o.ListingID == listingID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) GetAcceptedOffer(listingID uuid.UUID) (*entity.Offer, error) {
	for _, o := range r.offers {
		if o.ListingID == listingID && o.Status == entity.OfferStatusAccepted {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeOfferRepo) HasPendingOffer(listingID, buyerID uuid.UUID) (bool, error) {
	for _, o := range r.offers {
		if o.ListingID == listingID && o.BuyerID == buyerID && o.Status == entity.OfferStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOfferRepo) TransitionOfferStatus(offerID uuid.UUID, from, to string) (bool, error) {
	o, ok := r.offers[offerID]
	if !ok || o.Status != from {
		return false, nil
	}
	o.Status = to
	return true, nil
}

func (r *fakeOfferRepo) RejectCompetingOffers(listingID, acceptedID uuid.UUID) error {
	for _, o := range r.offers {
		if o.ListingID == listingID && o.ID != acceptedID && o.Status == entity.OfferStatusPending {
			o.Status = entity.OfferStatusRejected
		}
	}
	return nil
}

func (r *fakeOfferRepo) WithdrawPendingOffers(listingID uuid.UUID) error {
	for _, o := range r.offers {
		if o.ListingID == listingID && o.Status == entity.OfferStatusPending {
			o.Status = entity.OfferStatusWithdrawn
		}
	}
	return nil
}

func (r *fakeOfferRepo) countByStatus(listingID uuid.UUID, status string) int {
	n := 0
	for _, o := range r.offers {
		if o.ListingID == listingID && o.Status == status {
			n++
		}
	}
	return n
}

type fakeListingRepo struct {
	listings map[uuid.UUID]*entity.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[uuid.UUID]*entity.Listing)}
}

func (r *fakeListingRepo) CreateListing(listing *entity.Listing) error {
	cp := *listing
	r.listings[listing.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetListingByID(listingID uuid.UUID) (*entity.Listing, error) {
	l, ok := r.listings[listingID]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeListingRepo) SearchListings(filter entity.ListingFilter) ([]entity.Listing, error) {
	var out []entity.Listing
	for _, l := range r.listings {
		if l.Status != entity.ListingStatusWaiting {
			continue
		}
		if filter.EventID != uuid.Nil && l.EventID != filter.EventID {
			continue
		}
		if filter.Type != "" && l.Type != filter.Type {
			continue
		}
		if filter.Distance != "" && l.Distance != filter.Distance {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeListingRepo) GetListingsByUserID(userID uuid.UUID) ([]entity.Listing, error) {
	var out []entity.Listing
	for _, l := range r.listings {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) GetListingsByEventID(eventID uuid.UUID) ([]entity.Listing, error) {
	var out []entity.Listing
	for _, l := range r.listings {
		if l.EventID == eventID && l.Status == entity.ListingStatusWaiting {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) TransitionListingStatus(listingID uuid.UUID, from, to string) (bool, error) {
	l, ok := r.listings[listingID]
	if !ok || l.Status != from {
		return false, nil
	}
	l.Status = to
	return true, nil
}

type fakeEventRepo struct {
	events map[uuid.UUID]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*entity.Event)}
}

func (r *fakeEventRepo) CreateEvent(event *entity.Event) error {
	cp := *event
	r.events[event.ID] = &cp
	return nil
}

func (r *fakeEventRepo) GetEventByID(eventID uuid.UUID) (*entity.Event, error) {
	ev, ok := r.events[eventID]
	if !ok {
		return nil, nil
	}
	cp := *ev
	return &cp, nil
}

func (r *fakeEventRepo) GetUpcomingEvents() ([]entity.Event, error) {
	var out []entity.Event
	for _, ev := range r.events {
		if ev.IsActive {
			out = append(out, *ev)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) CreateUser(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(userID uuid.UUID) (*entity.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeStatsRepo struct {
	stats   map[uuid.UUID]*entity.UserStats
	ratings []entity.Rating
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{stats: make(map[uuid.UUID]*entity.UserStats)}
}

func (r *fakeStatsRepo) row(userID uuid.UUID) *entity.UserStats {
	if s, ok := r.stats[userID]; ok {
		return s
	}
	s := &entity.UserStats{UserID: userID}
	r.stats[userID] = s
	return s
}

func (r *fakeStatsRepo) GetByUserID(userID uuid.UUID) (*entity.UserStats, error) {
	s, ok := r.stats[userID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStatsRepo) IncrementCompleted(userID uuid.UUID) error {
	r.row(userID).CompletedDeals++
	return nil
}

func (r *fakeStatsRepo) IncrementCancelled(userID uuid.UUID) error {
	r.row(userID).CancelledDeals++
	return nil
}

func (r *fakeStatsRepo) IncrementNoResponse(userID uuid.UUID) error {
	r.row(userID).NoResponseCount++
	return nil
}

func (r *fakeStatsRepo) CreateRating(rating *entity.Rating) error {
	for _, existing := range r.ratings {
		if existing.ListingID == rating.ListingID && existing.RaterID == rating.RaterID {
			return repo.ErrDuplicateRating
		}
	}
	r.ratings = append(r.ratings, *rating)
	s := r.row(rating.RateeID)
	s.RatingCount++
	s.TotalRatingSum += rating.Rating
	return nil
}

type fakeLogRepo struct {
	history       []entity.HistoryStatus
	notifications []entity.Notification
}

func (r *fakeLogRepo) SaveHistoryStatus(doc *entity.HistoryStatus) error {
	r.history = append(r.history, *doc)
	return nil
}

func (r *fakeLogRepo) SaveNotification(doc *entity.Notification) error {
	r.notifications = append(r.notifications, *doc)
	return nil
}
