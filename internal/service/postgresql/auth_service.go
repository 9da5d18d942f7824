package service

import (
	"errors"

	entity "bibtrade/internal/domain"
	repo "bibtrade/internal/repository/postgresql"
	utils "bibtrade/pkg"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInactiveAccount     = errors.New("account is inactive")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already taken")
)

type AuthService struct {
	userRepo repo.UserRepository
}

func NewAuthService(userRepo repo.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

func (s *AuthService) Register(input *entity.RegisterInput) (*entity.UserResp, error) {
	if u, err := s.userRepo.GetByEmail(input.Email); err != nil {
		return nil, err
	} else if u != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		PasswordHash: hashed,
		IsActive:     true,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	return &entity.UserResp{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, nil
}

func (s *AuthService) Login(email, password string) (*entity.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveAccount
	}

	tokenString, err := utils.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	refresh, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &entity.LoginResponse{
		Token:        tokenString,
		RefreshToken: refresh,
		User: entity.UserResp{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
		},
	}, nil
}

func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return "", ErrInvalidUserID
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil || user == nil {
		return "", ErrUserNotFound
	}

	return utils.GenerateToken(user)
}

func (s *AuthService) GetProfile(userID uuid.UUID) (*entity.UserResp, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &entity.UserResp{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}, nil
}
