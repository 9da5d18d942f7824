package repository

import (
	"database/sql"
	"errors"

	entity "bibtrade/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrDuplicatePending maps the partial unique index on
// (listing_id, buyer_id) WHERE status='pending'. The index, not the
// application check, is the enforcement point against concurrent submissions.
var ErrDuplicatePending = errors.New("pending offer already exists for this listing")

type OfferRepository interface {
	CreateOffer(offer *entity.Offer) error
	GetOfferByID(offerID uuid.UUID) (*entity.Offer, error)
	GetOffersByBuyerID(buyerID uuid.UUID) ([]entity.Offer, error)
	GetOffersByListingID(listingID uuid.UUID) ([]entity.Offer, error)
	GetAcceptedOffer(listingID uuid.UUID) (*entity.Offer, error)
	HasPendingOffer(listingID, buyerID uuid.UUID) (bool, error)
	TransitionOfferStatus(offerID uuid.UUID, from, to string) (bool, error)
	RejectCompetingOffers(listingID, acceptedID uuid.UUID) error
	WithdrawPendingOffers(listingID uuid.UUID) error
}

type offerRepository struct {
	db *sql.DB
}

func NewOfferRepository(db *sql.DB) OfferRepository {
	return &offerRepository{db: db}
}

const offerColumns = `id, listing_id, buyer_id, seller_id, offer_price, message, status, created_at, updated_at`

func scanOffer(row interface{ Scan(...interface{}) error }, offer *entity.Offer) error {
	return row.Scan(
		&offer.ID, &offer.ListingID, &offer.BuyerID, &offer.SellerID,
		&offer.OfferPrice, &offer.Message, &offer.Status, &offer.CreatedAt, &offer.UpdatedAt,
	)
}

func (r *offerRepository) CreateOffer(offer *entity.Offer) error {
	query := `
		INSERT INTO offers (id, listing_id, buyer_id, seller_id, offer_price, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(query,
		offer.ID, offer.ListingID, offer.BuyerID, offer.SellerID,
		offer.OfferPrice, offer.Message, offer.Status,
	)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicatePending
	}
	return err
}

func (r *offerRepository) GetOfferByID(offerID uuid.UUID) (*entity.Offer, error) {
	var offer entity.Offer
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`
	err := scanOffer(r.db.QueryRow(query, offerID), &offer)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) GetOffersByBuyerID(buyerID uuid.UUID) ([]entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE buyer_id = $1 ORDER BY created_at DESC`
	return r.queryOffers(query, buyerID)
}

func (r *offerRepository) GetOffersByListingID(listingID uuid.UUID) ([]entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE listing_id = $1 ORDER BY created_at DESC`
	return r.queryOffers(query, listingID)
}

func (r *offerRepository) GetAcceptedOffer(listingID uuid.UUID) (*entity.Offer, error) {
	var offer entity.Offer
	query := `SELECT ` + offerColumns + ` FROM offers WHERE listing_id = $1 AND status = 'accepted'`
	err := scanOffer(r.db.QueryRow(query, listingID), &offer)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) HasPendingOffer(listingID, buyerID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM offers
			WHERE listing_id = $1 AND buyer_id = $2 AND status = 'pending'
		)
	`
	err := r.db.QueryRow(query, listingID, buyerID).Scan(&exists)
	return exists, err
}

// TransitionOfferStatus flips the status only when the row still holds
// the expected current status. The WHERE clause is what keeps two
// concurrent decisions on the same offer from both committing.
func (r *offerRepository) TransitionOfferStatus(offerID uuid.UUID, from, to string) (bool, error) {
	query := `UPDATE offers SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`
	res, err := r.db.Exec(query, to, offerID, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *offerRepository) RejectCompetingOffers(listingID, acceptedID uuid.UUID) error {
	query := `
		UPDATE offers SET status = 'rejected', updated_at = NOW()
		WHERE listing_id = $1 AND id <> $2 AND status = 'pending'
	`
	_, err := r.db.Exec(query, listingID, acceptedID)
	return err
}

func (r *offerRepository) WithdrawPendingOffers(listingID uuid.UUID) error {
	query := `
		UPDATE offers SET status = 'withdrawn', updated_at = NOW()
		WHERE listing_id = $1 AND status = 'pending'
	`
	_, err := r.db.Exec(query, listingID)
	return err
}

func (r *offerRepository) queryOffers(query string, arg interface{}) ([]entity.Offer, error) {
	var offers []entity.Offer
	rows, err := r.db.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var offer entity.Offer
		if err := scanOffer(rows, &offer); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
