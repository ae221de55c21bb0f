// internal/services/auth_service.go
// Organizer authentication service, trimmed from the teacher's user auth

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golf-sim/internal/config"
	"golf-sim/internal/models"
	"golf-sim/internal/repositories"
	"golf-sim/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles organizer registration, login, and token issuance
type AuthService struct {
	organizerRepo *repositories.OrganizerRepository
	config        config.AuthConfig
	cache         *CacheService
	logger        *log.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	organizerRepo *repositories.OrganizerRepository,
	config config.AuthConfig,
	cache *CacheService,
	logger *log.Logger,
) *AuthService {
	return &AuthService{
		organizerRepo: organizerRepo,
		config:        config,
		cache:         cache,
		logger:        logger,
	}
}

// Register creates a new organizer account
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.Organizer, *models.TokenPair, error) {
	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	exists, err := s.organizerRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BCryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	organizer := &models.Organizer{
		ID:           utils.GenerateUUID(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.organizerRepo.Create(ctx, organizer); err != nil {
		return nil, nil, fmt.Errorf("failed to create organizer: %w", err)
	}

	tokenPair, err := s.generateTokenPair(organizer)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	organizer.PasswordHash = ""
	return organizer, tokenPair, nil
}

// Login authenticates an organizer and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Organizer, *models.TokenPair, error) {
	organizer, err := s.organizerRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organizer.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(organizer)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	organizer.PasswordHash = ""
	return organizer, tokenPair, nil
}

// RefreshToken generates new tokens using a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	cacheKey := fmt.Sprintf("refresh_token_%s", refreshToken)
	var organizerID string
	if err := s.cache.Get(cacheKey, &organizerID); err != nil {
		return nil, ErrInvalidToken
	}

	organizer, err := s.organizerRepo.GetByID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer: %w", err)
	}

	s.cache.Delete(cacheKey)
	return s.generateTokenPair(organizer)
}

func (s *AuthService) generateTokenPair(organizer *models.Organizer) (*models.TokenPair, error) {
	accessToken, err := utils.GenerateJWT(organizer.ID, "organizer", s.config.JWTSecret, s.config.JWTExpiration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	cacheKey := fmt.Sprintf("refresh_token_%s", refreshToken)
	if err := s.cache.Set(cacheKey, organizer.ID, s.config.RefreshTokenExpiry); err != nil {
		return nil, fmt.Errorf("failed to cache refresh token: %w", err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.config.JWTExpiration),
	}, nil
}

// ValidateToken validates a JWT token and returns the organizer ID
func (s *AuthService) ValidateToken(token string) (string, error) {
	organizerID, _, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return "", ErrInvalidToken
	}
	return organizerID, nil
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.cache.Delete(fmt.Sprintf("refresh_token_%s", refreshToken))
	}
	return nil
}

// ChangePassword changes an organizer's password
func (s *AuthService) ChangePassword(ctx context.Context, organizerID, currentPassword, newPassword string) error {
	if err := utils.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	organizer, err := s.organizerRepo.GetByID(ctx, organizerID)
	if err != nil {
		return fmt.Errorf("organizer not found: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organizer.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.config.BCryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.organizerRepo.UpdatePassword(ctx, organizerID, string(hashedPassword))
}
