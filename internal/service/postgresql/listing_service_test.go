package service

import (
	"testing"
	"time"

	entity "bibtrade/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type listingFixture struct {
	svc      *ListingService
	offerSvc *OfferService
	listings *fakeListingRepo
	offers   *fakeOfferRepo
	events   *fakeEventRepo
	stats    *fakeStatsRepo
	logs     *fakeLogRepo
	owner    uuid.UUID
	eventID  uuid.UUID
}

func newListingFixture() *listingFixture {
	f := &listingFixture{
		listings: newFakeListingRepo(),
		offers:   newFakeOfferRepo(),
		events:   newFakeEventRepo(),
		stats:    newFakeStatsRepo(),
		logs:     &fakeLogRepo{},
		owner:    uuid.New(),
		eventID:  uuid.New(),
	}
	f.svc = NewListingService(f.listings, f.events, f.offers, f.stats, f.logs)
	f.offerSvc = NewOfferService(f.offers, f.listings, f.stats, f.logs)
	f.events.CreateEvent(&entity.Event{
		ID:                 f.eventID,
		Name:               "Bangkok Marathon",
		EventDate:          time.Now().AddDate(0, 1, 0),
		Province:           "Bangkok",
		AvailableDistances: []string{"10K", "21K", "42K"},
		IsActive:           true,
	})
	return f
}

func validInput(f *listingFixture) entity.CreateListingInput {
	return entity.CreateListingInput{
		EventIDStr:  f.eventID.String(),
		Type:        entity.ListingTypeSell,
		Distance:    "21K",
		IncludesBib: true,
		PriceMode:   entity.PriceModeOpen,
		AskingPrice: 1800,
	}
}

func TestCreateListing(t *testing.T) {
	f := newListingFixture()

	listing, err := f.svc.CreateListing(f.owner, validInput(f), "/uploads/bib.jpg", nil)
	assert.NoError(t, err)
	assert.Equal(t, entity.ListingStatusWaiting, listing.Status)
	assert.Equal(t, f.owner, listing.UserID)
	assert.Equal(t, "/uploads/bib.jpg", listing.BibImageURL)
}

func TestCreateListingValidation(t *testing.T) {
	f := newListingFixture()

	in := validInput(f)
	in.Type = "trade"
	_, err := f.svc.CreateListing(f.owner, in, "", nil)
	assert.ErrorIs(t, err, ErrInvalidListingType)

	in = validInput(f)
	in.PriceMode = "auction"
	_, err = f.svc.CreateListing(f.owner, in, "", nil)
	assert.ErrorIs(t, err, ErrInvalidPriceMode)

	in = validInput(f)
	in.AskingPrice = 0
	_, err = f.svc.CreateListing(f.owner, in, "", nil)
	assert.ErrorIs(t, err, ErrInvalidAskingPrice)

	in = validInput(f)
	in.Distance = ""
	_, err = f.svc.CreateListing(f.owner, in, "", nil)
	assert.ErrorIs(t, err, ErrDistanceRequired)

	in = validInput(f)
	in.EventIDStr = uuid.New().String()
	_, err = f.svc.CreateListing(f.owner, in, "", nil)
	assert.ErrorIs(t, err, ErrEventNotFound)

	in = validInput(f)
	_, err = f.svc.CreateListing(f.owner, in, "", []string{"a", "b", "c"})
	assert.ErrorIs(t, err, ErrTooManyImages)
}

func TestCreateListingHiddenFloorAboveAsking(t *testing.T) {
	f := newListingFixture()

	in := validInput(f)
	in.PriceMode = entity.PriceModeHidden
	in.MinPrice = 2000
	_, err := f.svc.CreateListing(f.owner, in, "", nil)
	assert.ErrorIs(t, err, ErrInvalidMinPrice)

	in.MinPrice = 1500
	listing, err := f.svc.CreateListing(f.owner, in, "", nil)
	assert.NoError(t, err)
	assert.True(t, listing.MinPrice.Valid)
	assert.EqualValues(t, 1500, listing.MinPrice.Int64)
}

func TestCreateListingFreeTextDistance(t *testing.T) {
	f := newListingFixture()

	in := validInput(f)
	in.Distance = "trail 55K"
	listing, err := f.svc.CreateListing(f.owner, in, "", nil)
	assert.NoError(t, err)
	assert.Equal(t, "trail 55K", listing.Distance)
}

func TestCancelListingWithdrawsPendingOffers(t *testing.T) {
	f := newListingFixture()
	listing, err := f.svc.CreateListing(f.owner, validInput(f), "", nil)
	assert.NoError(t, err)

	_, _, err = f.offerSvc.SubmitOffer(listing.ID, uuid.New(), entity.SubmitOfferInput{})
	assert.NoError(t, err)
	_, _, err = f.offerSvc.SubmitOffer(listing.ID, uuid.New(), entity.SubmitOfferInput{})
	assert.NoError(t, err)

	cancelled, err := f.svc.CancelListing(f.owner, listing.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.ListingStatusCancelled, cancelled.Status)

	assert.Equal(t, 0, f.offers.countByStatus(listing.ID, entity.OfferStatusPending))
	assert.Equal(t, 2, f.offers.countByStatus(listing.ID, entity.OfferStatusWithdrawn))

	stats, _ := f.stats.GetByUserID(f.owner)
	assert.Equal(t, 1, stats.CancelledDeals)
}

func TestCancelListingNotifiesPendingBuyers(t *testing.T) {
	f := newListingFixture()
	listing, _ := f.svc.CreateListing(f.owner, validInput(f), "", nil)

	buyerA := uuid.New()
	buyerB := uuid.New()
	f.offerSvc.SubmitOffer(listing.ID, buyerA, entity.SubmitOfferInput{})
	f.offerSvc.SubmitOffer(listing.ID, buyerB, entity.SubmitOfferInput{})
	offerC, _, _ := f.offerSvc.SubmitOffer(listing.ID, uuid.New(), entity.SubmitOfferInput{})
	f.offerSvc.RejectOffer(f.owner, offerC.ID)

	_, err := f.svc.CancelListing(f.owner, listing.ID)
	assert.NoError(t, err)

	// one notification per pending buyer, none for the already rejected one
	notified := make(map[string]int)
	for _, n := range f.logs.notifications {
		if n.Type == "listing" && n.RelatedID == listing.ID.String() {
			notified[n.UserID]++
		}
	}
	assert.Equal(t, map[string]int{buyerA.String(): 1, buyerB.String(): 1}, notified)
}

func TestCancelListingOnlyOwner(t *testing.T) {
	f := newListingFixture()
	listing, _ := f.svc.CreateListing(f.owner, validInput(f), "", nil)

	_, err := f.svc.CancelListing(uuid.New(), listing.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestCancelListingTerminalStateRejected(t *testing.T) {
	f := newListingFixture()
	listing, _ := f.svc.CreateListing(f.owner, validInput(f), "", nil)
	f.listings.TransitionListingStatus(listing.ID, entity.ListingStatusWaiting, entity.ListingStatusCompleted)

	_, err := f.svc.CancelListing(f.owner, listing.ID)
	assert.ErrorIs(t, err, ErrListingState)
}
