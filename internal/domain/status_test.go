package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingTransitions(t *testing.T) {
	assert.True(t, CanListingTransition(ListingStatusWaiting, ListingStatusMatching))
	assert.True(t, CanListingTransition(ListingStatusWaiting, ListingStatusCancelled))
	assert.True(t, CanListingTransition(ListingStatusMatching, ListingStatusCompleted))
	assert.True(t, CanListingTransition(ListingStatusMatching, ListingStatusCancelled))

	// no reverting out of matched, no leaving terminal states
	assert.False(t, CanListingTransition(ListingStatusMatched, ListingStatusWaiting))
	assert.False(t, CanListingTransition(ListingStatusCompleted, ListingStatusWaiting))
	assert.False(t, CanListingTransition(ListingStatusCancelled, ListingStatusWaiting))
	assert.False(t, CanListingTransition(ListingStatusCompleted, ListingStatusCancelled))
	assert.False(t, CanListingTransition(ListingStatusWaiting, ListingStatusCompleted))
}

func TestOfferTransitions(t *testing.T) {
	assert.True(t, CanOfferTransition(OfferStatusPending, OfferStatusAccepted))
	assert.True(t, CanOfferTransition(OfferStatusPending, OfferStatusRejected))
	assert.True(t, CanOfferTransition(OfferStatusPending, OfferStatusWithdrawn))

	assert.False(t, CanOfferTransition(OfferStatusAccepted, OfferStatusRejected))
	assert.False(t, CanOfferTransition(OfferStatusRejected, OfferStatusPending))
	assert.False(t, CanOfferTransition(OfferStatusWithdrawn, OfferStatusAccepted))
}
