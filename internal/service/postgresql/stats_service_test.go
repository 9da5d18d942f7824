package service

import (
	"testing"

	entity "bibtrade/internal/domain"
	"bibtrade/internal/reputation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type statsFixture struct {
	svc      *StatsService
	stats    *fakeStatsRepo
	users    *fakeUserRepo
	listings *fakeListingRepo
	offers   *fakeOfferRepo
}

func newStatsFixture() *statsFixture {
	f := &statsFixture{
		stats:    newFakeStatsRepo(),
		users:    newFakeUserRepo(),
		listings: newFakeListingRepo(),
		offers:   newFakeOfferRepo(),
	}
	f.svc = NewStatsService(f.stats, f.users, f.listings, f.offers)
	return f
}

// completedDeal seeds a completed listing with its accepted offer and
// returns the seller and buyer ids alongside the listing.
func (f *statsFixture) completedDeal() (listingID, seller, buyer uuid.UUID) {
	seller = uuid.New()
	buyer = uuid.New()
	listing := &entity.Listing{
		ID:          uuid.New(),
		UserID:      seller,
		EventID:     uuid.New(),
		Type:        entity.ListingTypeSell,
		Distance:    "10K",
		PriceMode:   entity.PriceModeOpen,
		AskingPrice: 1800,
		Status:      entity.ListingStatusCompleted,
	}
	f.listings.CreateListing(listing)
	f.offers.CreateOffer(&entity.Offer{
		ID:         uuid.New(),
		ListingID:  listing.ID,
		BuyerID:    buyer,
		SellerID:   seller,
		OfferPrice: 1800,
		Status:     entity.OfferStatusAccepted,
	})
	return listing.ID, seller, buyer
}

func TestGetProfileWithoutStatsRow(t *testing.T) {
	f := newStatsFixture()
	userID := uuid.New()
	f.users.CreateUser(&entity.User{ID: userID, DisplayName: "Runner A"})

	profile, err := f.svc.GetProfile(userID)
	assert.NoError(t, err)
	assert.Equal(t, 50, profile.Score)
	assert.Equal(t, reputation.TierNew, profile.Tier)
	assert.Equal(t, 0, profile.CompletedDeals)
	assert.Nil(t, profile.AverageRating, "no ratings must render as nil, not zero")
}

func TestGetProfileWithHistory(t *testing.T) {
	f := newStatsFixture()
	userID := uuid.New()
	f.users.CreateUser(&entity.User{ID: userID, DisplayName: "Runner B"})

	for i := 0; i < 10; i++ {
		f.stats.IncrementCompleted(userID)
	}
	f.stats.CreateRating(&entity.Rating{ID: uuid.New(), ListingID: uuid.New(), RaterID: uuid.New(), RateeID: userID, Rating: 5})
	f.stats.CreateRating(&entity.Rating{ID: uuid.New(), ListingID: uuid.New(), RaterID: uuid.New(), RateeID: userID, Rating: 4})

	profile, err := f.svc.GetProfile(userID)
	assert.NoError(t, err)
	assert.Equal(t, 100, profile.Score)
	assert.Equal(t, reputation.TierHighlyTrusted, profile.Tier)
	assert.Equal(t, 10, profile.CompletedDeals)
	assert.NotNil(t, profile.AverageRating)
	assert.InDelta(t, 4.5, *profile.AverageRating, 0.0001)
	assert.Equal(t, 2, profile.RatingCount)
}

func TestGetProfileUnknownUser(t *testing.T) {
	f := newStatsFixture()

	_, err := f.svc.GetProfile(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRateDealCreditsCounterparty(t *testing.T) {
	f := newStatsFixture()
	listingID, seller, buyer := f.completedDeal()

	assert.NoError(t, f.svc.RateDeal(seller, listingID, 4))
	assert.NoError(t, f.svc.RateDeal(buyer, listingID, 5))

	buyerRow, _ := f.stats.GetByUserID(buyer)
	assert.Equal(t, 1, buyerRow.RatingCount)
	assert.Equal(t, 4, buyerRow.TotalRatingSum)

	sellerRow, _ := f.stats.GetByUserID(seller)
	assert.Equal(t, 1, sellerRow.RatingCount)
	assert.Equal(t, 5, sellerRow.TotalRatingSum)
}

func TestRateDealInvalidRating(t *testing.T) {
	f := newStatsFixture()
	listingID, seller, _ := f.completedDeal()

	assert.ErrorIs(t, f.svc.RateDeal(seller, listingID, 0), ErrInvalidRating)
	assert.ErrorIs(t, f.svc.RateDeal(seller, listingID, 6), ErrInvalidRating)
}

func TestRateDealRequiresCompletedDeal(t *testing.T) {
	f := newStatsFixture()
	seller := uuid.New()
	listing := &entity.Listing{
		ID:          uuid.New(),
		UserID:      seller,
		Type:        entity.ListingTypeSell,
		PriceMode:   entity.PriceModeOpen,
		AskingPrice: 1800,
		Status:      entity.ListingStatusWaiting,
	}
	f.listings.CreateListing(listing)

	assert.ErrorIs(t, f.svc.RateDeal(seller, listing.ID, 5), ErrDealNotCompleted)
}

func TestRateDealOutsiderRejected(t *testing.T) {
	f := newStatsFixture()
	listingID, _, _ := f.completedDeal()

	err := f.svc.RateDeal(uuid.New(), listingID, 5)
	assert.ErrorIs(t, err, ErrNotParticipant)

	for userID := range f.stats.stats {
		row, _ := f.stats.GetByUserID(userID)
		assert.Equal(t, 0, row.RatingCount)
	}
}

func TestRateDealOncePerSide(t *testing.T) {
	f := newStatsFixture()
	listingID, seller, buyer := f.completedDeal()

	assert.NoError(t, f.svc.RateDeal(seller, listingID, 5))
	assert.ErrorIs(t, f.svc.RateDeal(seller, listingID, 3), ErrAlreadyRated)

	buyerRow, _ := f.stats.GetByUserID(buyer)
	assert.Equal(t, 1, buyerRow.RatingCount)
	assert.Equal(t, 5, buyerRow.TotalRatingSum)
}

func TestRateDealUnknownListing(t *testing.T) {
	f := newStatsFixture()

	assert.ErrorIs(t, f.svc.RateDeal(uuid.New(), uuid.New(), 3), ErrListingNotFound)
}
