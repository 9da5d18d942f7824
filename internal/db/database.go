package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func New(databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("cannot ping database: %w", err)
	}

	if err := initSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		display_name TEXT NOT NULL,
		avatar_url TEXT DEFAULT '',
		password_hash TEXT NOT NULL,
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		name_en TEXT DEFAULT '',
		event_date DATE NOT NULL,
		province TEXT NOT NULL,
		venue TEXT DEFAULT '',
		available_distances JSONB DEFAULT '[]',
		is_active BOOLEAN DEFAULT TRUE,
		is_verified BOOLEAN DEFAULT FALSE,
		created_by UUID REFERENCES users(id),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS listings (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		event_id UUID NOT NULL REFERENCES events(id),
		type TEXT NOT NULL,
		distance TEXT NOT NULL,
		includes_bib BOOLEAN DEFAULT FALSE,
		bib_gender TEXT DEFAULT '',
		includes_shirt BOOLEAN DEFAULT FALSE,
		shirt_size TEXT DEFAULT '',
		includes_finisher_shirt BOOLEAN DEFAULT FALSE,
		finisher_shirt_size TEXT DEFAULT '',
		includes_medal BOOLEAN DEFAULT FALSE,
		includes_other TEXT DEFAULT '',
		price_mode TEXT NOT NULL,
		asking_price INT NOT NULL CHECK (asking_price > 0),
		min_price INT,
		max_price INT,
		meetup_location TEXT DEFAULT '',
		note TEXT DEFAULT '',
		bib_image_url TEXT DEFAULT '',
		extra_image_urls JSONB DEFAULT '[]',
		status TEXT NOT NULL DEFAULT 'waiting',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS offers (
		id UUID PRIMARY KEY,
		listing_id UUID NOT NULL REFERENCES listings(id),
		buyer_id UUID NOT NULL REFERENCES users(id),
		seller_id UUID NOT NULL REFERENCES users(id),
		offer_price INT NOT NULL CHECK (offer_price > 0),
		message TEXT DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE UNIQUE INDEX IF NOT EXISTS offers_one_pending_per_buyer
		ON offers (listing_id, buyer_id) WHERE status = 'pending';

	CREATE TABLE IF NOT EXISTS user_stats (
		user_id UUID PRIMARY KEY REFERENCES users(id),
		completed_deals INT DEFAULT 0,
		cancelled_deals INT DEFAULT 0,
		no_response_count INT DEFAULT 0,
		on_time_count INT DEFAULT 0,
		rating_count INT DEFAULT 0,
		total_rating_sum INT DEFAULT 0,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id UUID PRIMARY KEY,
		listing_id UUID NOT NULL REFERENCES listings(id),
		rater_id UUID NOT NULL REFERENCES users(id),
		ratee_id UUID NOT NULL REFERENCES users(id),
		rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE UNIQUE INDEX IF NOT EXISTS ratings_one_per_side
		ON ratings (listing_id, rater_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}
