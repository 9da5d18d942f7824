package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserStats struct {
	UserID          uuid.UUID `db:"user_id"`
	CompletedDeals  int       `db:"completed_deals"`
	CancelledDeals  int       `db:"cancelled_deals"`
	NoResponseCount int       `db:"no_response_count"`
	OnTimeCount     int       `db:"on_time_count"`
	RatingCount     int       `db:"rating_count"`
	TotalRatingSum  int       `db:"total_rating_sum"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// Rating is one participant's score of the counterparty after a completed
// deal. The (listing_id, rater_id) pair is unique; a deal can be rated once
// per side.
type Rating struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ListingID uuid.UUID `db:"listing_id" json:"listing_id"`
	RaterID   uuid.UUID `db:"rater_id" json:"rater_id"`
	RateeID   uuid.UUID `db:"ratee_id" json:"ratee_id"`
	Rating    int       `db:"rating" json:"rating"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type RateUserInput struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// ProfileResp is the public view of a user: identity plus reputation derived
// from the stats counters.
type ProfileResp struct {
	ID             uuid.UUID `json:"id"`
	DisplayName    string    `json:"displayName"`
	AvatarURL      string    `json:"avatarUrl,omitempty"`
	CompletedDeals int       `json:"completedDeals"`
	CancelledDeals int       `json:"cancelledDeals"`
	Score          int       `json:"score"`
	Tier           string    `json:"tier"`
	AverageRating  *float64  `json:"averageRating"` // nil means no ratings yet
	RatingCount    int       `json:"ratingCount"`
}
