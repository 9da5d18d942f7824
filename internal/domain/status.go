package entity

const (
	ListingStatusWaiting   = "waiting"
	ListingStatusMatching  = "matching"
	ListingStatusMatched   = "matched"
	ListingStatusCompleted = "completed"
	ListingStatusCancelled = "cancelled"

	OfferStatusPending   = "pending"
	OfferStatusAccepted  = "accepted"
	OfferStatusRejected  = "rejected"
	OfferStatusWithdrawn = "withdrawn"
)

// listingTransitions is the single source of truth for the listing state
// machine. Transitions are monotonic: nothing leaves a terminal state and
// nothing moves backwards.
var listingTransitions = map[string][]string{
	ListingStatusWaiting:  {ListingStatusMatching, ListingStatusCancelled},
	ListingStatusMatching: {ListingStatusMatched, ListingStatusCompleted, ListingStatusCancelled},
	ListingStatusMatched:  {ListingStatusCompleted},
}

var offerTransitions = map[string][]string{
	OfferStatusPending: {OfferStatusAccepted, OfferStatusRejected, OfferStatusWithdrawn},
}

func CanListingTransition(from, to string) bool {
	for _, s := range listingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func CanOfferTransition(from, to string) bool {
	for _, s := range offerTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
