// Package negotiation computes the settlement price for hidden-price
// listings. The seller's floor and the buyer's ceiling never leave this
// computation; only the outcome is shown to either side.
package negotiation

import (
	"errors"

	entity "bibtrade/internal/domain"
)

var ErrInvalidInput = errors.New("negotiation: seller floor and buyer ceiling must be positive")

// Outcome is the result of evaluating one buyer ceiling against one seller
// floor. Price is meaningful only when Matched is true.
type Outcome struct {
	Matched bool `json:"matched"`
	Price   int  `json:"price,omitempty"`
}

// Evaluate decides whether the two hidden prices overlap and, if they do,
// settles on the midpoint, half rounded up. The result always lies in
// [sellerFloor, buyerCeiling]. Deterministic, no side effects.
func Evaluate(sellerFloor, buyerCeiling int) (Outcome, error) {
	if sellerFloor <= 0 || buyerCeiling <= 0 {
		return Outcome{}, ErrInvalidInput
	}
	if buyerCeiling < sellerFloor {
		return Outcome{}, nil
	}
	return Outcome{Matched: true, Price: (sellerFloor + buyerCeiling + 1) / 2}, nil
}

// FloorFor returns the seller's effective floor for a listing: the explicit
// minimum price when set, otherwise the asking price.
func FloorFor(listing *entity.Listing) int {
	if listing.MinPrice.Valid && listing.MinPrice.Int64 > 0 {
		return int(listing.MinPrice.Int64)
	}
	return listing.AskingPrice
}
