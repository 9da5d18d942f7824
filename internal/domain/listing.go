package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	ListingTypeSell = "sell"
	ListingTypeBuy  = "buy"

	PriceModeOpen   = "open"
	PriceModeHidden = "hidden"
)

// Listing marshals straight into API responses; min_price and max_price are
// excluded so the negotiation bounds never leave the server.
type Listing struct {
	ID                    uuid.UUID     `db:"id" json:"id"`
	UserID                uuid.UUID     `db:"user_id" json:"user_id"`
	EventID               uuid.UUID     `db:"event_id" json:"event_id"`
	Type                  string        `db:"type" json:"type"` // sell, buy
	Distance              string        `db:"distance" json:"distance"`
	IncludesBib           bool          `db:"includes_bib" json:"includes_bib"`
	BibGender             string        `db:"bib_gender" json:"bib_gender,omitempty"`
	IncludesShirt         bool          `db:"includes_shirt" json:"includes_shirt"`
	ShirtSize             string        `db:"shirt_size" json:"shirt_size,omitempty"`
	IncludesFinisherShirt bool          `db:"includes_finisher_shirt" json:"includes_finisher_shirt"`
	FinisherShirtSize     string        `db:"finisher_shirt_size" json:"finisher_shirt_size,omitempty"`
	IncludesMedal         bool          `db:"includes_medal" json:"includes_medal"`
	IncludesOther         string        `db:"includes_other" json:"includes_other,omitempty"`
	PriceMode             string        `db:"price_mode" json:"price_mode"` // open, hidden
	AskingPrice           int           `db:"asking_price" json:"asking_price"`
	MinPrice              sql.NullInt64 `db:"min_price" json:"-"` // seller floor, hidden sell only
	MaxPrice              sql.NullInt64 `db:"max_price" json:"-"` // buyer ceiling, hidden buy only
	MeetupLocation        string        `db:"meetup_location" json:"meetup_location,omitempty"`
	Note                  string        `db:"note" json:"note,omitempty"`
	BibImageURL           string        `db:"bib_image_url" json:"bib_image_url,omitempty"`
	ExtraImageURLs        []string      `db:"extra_image_urls" json:"extra_image_urls,omitempty"` // JSONB, sell only, max 2
	Status                string        `db:"status" json:"status"`                               // waiting, matching, matched, completed, cancelled
	CreatedAt             time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time     `db:"updated_at" json:"updated_at"`
}

type CreateListingInput struct {
	EventIDStr            string
	Type                  string
	Distance              string
	IncludesBib           bool
	BibGender             string
	IncludesShirt         bool
	ShirtSize             string
	IncludesFinisherShirt bool
	FinisherShirtSize     string
	IncludesMedal         bool
	IncludesOther         string
	PriceMode             string
	AskingPrice           int
	MinPrice              int // 0 means not set
	MaxPrice              int // 0 means not set
	MeetupLocation        string
	Note                  string
}

type ListingFilter struct {
	EventID  uuid.UUID `form:"event_id"`
	Type     string    `form:"type"`
	Distance string    `form:"distance"`
	Province string    `form:"province"`
	Limit    int       `form:"limit"`
	Offset   int       `form:"offset"`
}
