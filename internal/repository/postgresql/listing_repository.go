package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	entity "bibtrade/internal/domain"

	"github.com/google/uuid"
)

type ListingRepository interface {
	CreateListing(listing *entity.Listing) error
	GetListingByID(listingID uuid.UUID) (*entity.Listing, error)
	SearchListings(filter entity.ListingFilter) ([]entity.Listing, error)
	GetListingsByUserID(userID uuid.UUID) ([]entity.Listing, error)
	GetListingsByEventID(eventID uuid.UUID) ([]entity.Listing, error)
	TransitionListingStatus(listingID uuid.UUID, from, to string) (bool, error)
}

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, user_id, event_id, type, distance,
	includes_bib, bib_gender, includes_shirt, shirt_size,
	includes_finisher_shirt, finisher_shirt_size, includes_medal, includes_other,
	price_mode, asking_price, min_price, max_price,
	meetup_location, note, bib_image_url, extra_image_urls,
	status, created_at, updated_at`

func scanListing(row interface{ Scan(...interface{}) error }, l *entity.Listing) error {
	var extraImages []byte
	err := row.Scan(
		&l.ID, &l.UserID, &l.EventID, &l.Type, &l.Distance,
		&l.IncludesBib, &l.BibGender, &l.IncludesShirt, &l.ShirtSize,
		&l.IncludesFinisherShirt, &l.FinisherShirtSize, &l.IncludesMedal, &l.IncludesOther,
		&l.PriceMode, &l.AskingPrice, &l.MinPrice, &l.MaxPrice,
		&l.MeetupLocation, &l.Note, &l.BibImageURL, &extraImages,
		&l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if len(extraImages) > 0 {
		if err := json.Unmarshal(extraImages, &l.ExtraImageURLs); err != nil {
			return fmt.Errorf("failed to decode extra_image_urls: %w", err)
		}
	}
	return nil
}

func (r *listingRepository) CreateListing(listing *entity.Listing) error {
	extraImages, err := json.Marshal(listing.ExtraImageURLs)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO listings (id, user_id, event_id, type, distance,
			includes_bib, bib_gender, includes_shirt, shirt_size,
			includes_finisher_shirt, finisher_shirt_size, includes_medal, includes_other,
			price_mode, asking_price, min_price, max_price,
			meetup_location, note, bib_image_url, extra_image_urls,
			status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,NOW(),NOW())
	`
	_, err = r.db.Exec(query,
		listing.ID, listing.UserID, listing.EventID, listing.Type, listing.Distance,
		listing.IncludesBib, listing.BibGender, listing.IncludesShirt, listing.ShirtSize,
		listing.IncludesFinisherShirt, listing.FinisherShirtSize, listing.IncludesMedal, listing.IncludesOther,
		listing.PriceMode, listing.AskingPrice, listing.MinPrice, listing.MaxPrice,
		listing.MeetupLocation, listing.Note, listing.BibImageURL, extraImages,
		listing.Status,
	)
	return err
}

func (r *listingRepository) GetListingByID(listingID uuid.UUID) (*entity.Listing, error) {
	var listing entity.Listing
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	err := scanListing(r.db.QueryRow(query, listingID), &listing)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// SearchListings returns open (waiting) listings newest first, optionally
// narrowed by event, type, distance or the event's province.
func (r *listingRepository) SearchListings(filter entity.ListingFilter) ([]entity.Listing, error) {
	query := `
		SELECT ` + prefixColumns("l") + `
		FROM listings l
		JOIN events e ON e.id = l.event_id
		WHERE l.status = 'waiting'
	`
	args := []interface{}{}
	idx := 1

	if filter.EventID != uuid.Nil {
		query += fmt.Sprintf(" AND l.event_id = $%d", idx)
		args = append(args, filter.EventID)
		idx++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND l.type = $%d", idx)
		args = append(args, filter.Type)
		idx++
	}
	if filter.Distance != "" {
		query += fmt.Sprintf(" AND l.distance = $%d", idx)
		args = append(args, filter.Distance)
		idx++
	}
	if filter.Province != "" {
		query += fmt.Sprintf(" AND e.province ILIKE $%d", idx)
		args = append(args, "%"+filter.Province+"%")
		idx++
	}

	query += " ORDER BY l.created_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query += fmt.Sprintf(" LIMIT $%d", idx)
	args = append(args, limit)
	idx++

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, filter.Offset)
	}

	return r.queryListings(query, args...)
}

func (r *listingRepository) GetListingsByUserID(userID uuid.UUID) ([]entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryListings(query, userID)
}

func (r *listingRepository) GetListingsByEventID(eventID uuid.UUID) ([]entity.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE event_id = $1 AND status = 'waiting' ORDER BY created_at DESC`
	return r.queryListings(query, eventID)
}

// TransitionListingStatus is the mutual exclusion point for competing
// accepts: only one caller can move a listing out of a given status.
func (r *listingRepository) TransitionListingStatus(listingID uuid.UUID, from, to string) (bool, error) {
	query := `UPDATE listings SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`
	res, err := r.db.Exec(query, to, listingID, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *listingRepository) queryListings(query string, args ...interface{}) ([]entity.Listing, error) {
	var listings []entity.Listing
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var listing entity.Listing
		if err := scanListing(rows, &listing); err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

func prefixColumns(alias string) string {
	return alias + `.id, ` + alias + `.user_id, ` + alias + `.event_id, ` + alias + `.type, ` + alias + `.distance,
	` + alias + `.includes_bib, ` + alias + `.bib_gender, ` + alias + `.includes_shirt, ` + alias + `.shirt_size,
	` + alias + `.includes_finisher_shirt, ` + alias + `.finisher_shirt_size, ` + alias + `.includes_medal, ` + alias + `.includes_other,
	` + alias + `.price_mode, ` + alias + `.asking_price, ` + alias + `.min_price, ` + alias + `.max_price,
	` + alias + `.meetup_location, ` + alias + `.note, ` + alias + `.bib_image_url, ` + alias + `.extra_image_urls,
	` + alias + `.status, ` + alias + `.created_at, ` + alias + `.updated_at`
}
