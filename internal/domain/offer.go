package entity

import (
	"time"

	"github.com/google/uuid"
)

type Offer struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ListingID  uuid.UUID `db:"listing_id" json:"listing_id"`
	BuyerID    uuid.UUID `db:"buyer_id" json:"buyer_id"`
	SellerID   uuid.UUID `db:"seller_id" json:"seller_id"` // denormalized from listing
	OfferPrice int       `db:"offer_price" json:"offer_price"`
	Message    string    `db:"message" json:"message,omitempty"`
	Status     string    `db:"status" json:"status"` // pending, accepted, rejected, withdrawn
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type SubmitOfferInput struct {
	MaxPrice int    `json:"max_price"` // buyer ceiling, hidden mode only
	Message  string `json:"message"`
}

type QuoteInput struct {
	MaxPrice int `json:"max_price" binding:"required"`
}
