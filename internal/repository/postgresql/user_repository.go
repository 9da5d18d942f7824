package repository

import (
	"database/sql"

	entity "bibtrade/internal/domain"

	"github.com/google/uuid"
)

type UserRepository interface {
	CreateUser(user *entity.User) error
	GetByID(userID uuid.UUID) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, display_name, avatar_url, password_hash, is_active, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }, u *entity.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.AvatarURL,
		&u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
}

func (r *userRepository) CreateUser(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, display_name, avatar_url, password_hash, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,NOW(),NOW())
	`
	_, err := r.db.Exec(query,
		user.ID, user.Email, user.DisplayName, user.AvatarURL,
		user.PasswordHash, user.IsActive,
	)
	return err
}

func (r *userRepository) GetByID(userID uuid.UUID) (*entity.User, error) {
	var user entity.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := scanUser(r.db.QueryRow(query, userID), &user)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var user entity.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := scanUser(r.db.QueryRow(query, email), &user)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
