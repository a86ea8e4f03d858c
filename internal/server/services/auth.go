package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/server/auth"
	"github.com/lifeos/lifeos/internal/server/config"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/repositories/repomanager"
)

var (
	errPinFormat = common.WithMessage(common.ErrValidation, "PIN must be 4 digits")
	errPinExists = common.WithMessage(common.ErrConflict, "PIN already exists")
	errNoUser    = common.WithMessage(common.ErrNotFound, "No user found. Create PIN first.")
	errWrongPin  = common.WithMessage(common.ErrUnauthorized, "Incorrect PIN")
)

// AuthService handles first-time PIN setup, PIN login and token issuance.
type AuthService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	jwtSecret     []byte
	tokenValidity time.Duration
	now           func() time.Time
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:            db,
		repomanager:   m,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
		now:           utcNow,
	}
}

// CreatePin creates the single user and returns a token for it.
func (s *AuthService) CreatePin(ctx context.Context, pin string) (string, *models.User, error) {
	if !auth.ValidPIN(pin) {
		return "", nil, errPinFormat
	}

	repo := s.repomanager.Users(s.db)

	exists, err := repo.Exists(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("check user: %w", err)
	}
	if exists {
		return "", nil, errPinExists
	}

	hash, err := auth.HashPIN(pin)
	if err != nil {
		return "", nil, fmt.Errorf("hash pin: %w", err)
	}

	user, err := repo.Create(ctx, hash)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return "", nil, errPinExists
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login checks pin against the stored hash and records the login time.
func (s *AuthService) Login(ctx context.Context, pin string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.Get(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", errNoUser
		}
		return "", fmt.Errorf("load user: %w", err)
	}

	ok, err := auth.ComparePIN(user.PinHash, pin)
	if err != nil {
		return "", fmt.Errorf("compare pin: %w", err)
	}
	if !ok {
		return "", errWrongPin
	}

	if err := repo.UpdateLastLogin(ctx, user.ID, s.now()); err != nil {
		return "", fmt.Errorf("update last login: %w", err)
	}

	return s.generateToken(user.ID)
}

func (s *AuthService) CheckPinExists(ctx context.Context) (bool, error) {
	exists, err := s.repomanager.Users(s.db).Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return exists, nil
}

// Authenticate turns a bearer token into the Identity it was issued for.
func (s *AuthService) Authenticate(token string) (auth.Identity, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return auth.NewIdentity(userID), nil
}

func (s *AuthService) generateToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return "", fmt.Errorf("%w: sign token: %v", common.ErrInternal, err)
	}
	return token, nil
}
