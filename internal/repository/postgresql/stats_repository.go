package repository

import (
	"database/sql"
	"errors"

	entity "bibtrade/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicateRating maps the unique index on (listing_id, rater_id): each
// side of a deal rates the other at most once.
var ErrDuplicateRating = errors.New("this deal was already rated by this user")

type StatsRepository interface {
	GetByUserID(userID uuid.UUID) (*entity.UserStats, error)
	IncrementCompleted(userID uuid.UUID) error
	IncrementCancelled(userID uuid.UUID) error
	IncrementNoResponse(userID uuid.UUID) error
	CreateRating(rating *entity.Rating) error
}

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) StatsRepository {
	return &statsRepository{db: db}
}

// GetByUserID returns nil, nil when the user has no stats row yet; callers
// treat that the same as all-zero counters.
func (r *statsRepository) GetByUserID(userID uuid.UUID) (*entity.UserStats, error) {
	var stats entity.UserStats
	query := `
		SELECT user_id, completed_deals, cancelled_deals, no_response_count,
		       on_time_count, rating_count, total_rating_sum, updated_at
		FROM user_stats WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&stats.UserID, &stats.CompletedDeals, &stats.CancelledDeals, &stats.NoResponseCount,
		&stats.OnTimeCount, &stats.RatingCount, &stats.TotalRatingSum, &stats.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *statsRepository) IncrementCompleted(userID uuid.UUID) error {
	return r.upsert(userID, `completed_deals = user_stats.completed_deals + 1`, `1, 0, 0, 0, 0`)
}

func (r *statsRepository) IncrementCancelled(userID uuid.UUID) error {
	return r.upsert(userID, `cancelled_deals = user_stats.cancelled_deals + 1`, `0, 1, 0, 0, 0`)
}

func (r *statsRepository) IncrementNoResponse(userID uuid.UUID) error {
	return r.upsert(userID, `no_response_count = user_stats.no_response_count + 1`, `0, 0, 1, 0, 0`)
}

// CreateRating stores the rating row and folds it into the ratee's counters
// in one transaction. The unique index on (listing_id, rater_id) rejects a
// second rating of the same deal by the same user.
func (r *statsRepository) CreateRating(rating *entity.Rating) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertRating := `
		INSERT INTO ratings (id, listing_id, rater_id, ratee_id, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	if _, err := tx.Exec(insertRating, rating.ID, rating.ListingID, rating.RaterID, rating.RateeID, rating.Rating); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateRating
		}
		return err
	}

	updateStats := `
		INSERT INTO user_stats (user_id, completed_deals, cancelled_deals, no_response_count, on_time_count, rating_count, total_rating_sum, updated_at)
		VALUES ($1, 0, 0, 0, 0, 1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			rating_count = user_stats.rating_count + 1,
			total_rating_sum = user_stats.total_rating_sum + $2,
			updated_at = NOW()
	`
	if _, err := tx.Exec(updateStats, rating.RateeID, rating.Rating); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *statsRepository) upsert(userID uuid.UUID, update string, initial string) error {
	query := `
		INSERT INTO user_stats (user_id, completed_deals, cancelled_deals, no_response_count, rating_count, total_rating_sum, updated_at)
		VALUES ($1, ` + initial + `, NOW())
		ON CONFLICT (user_id) DO UPDATE SET ` + update + `, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID)
	return err
}
