package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-login-bridge/internal/config"
	"github.com/MKhiriev/go-login-bridge/internal/logger"
	"github.com/MKhiriev/go-login-bridge/internal/utils"
	"github.com/MKhiriev/go-login-bridge/internal/validators"
	"github.com/MKhiriev/go-login-bridge/models"
)

type authService struct {
	accounts map[string]models.Account

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// compared against when the login is unknown, so both paths cost a
	// bcrypt comparison
	dummyHash []byte

	logger *logger.Logger
}

// NewAuthService seeds the account table from cfg.Accounts ("login:password"
// pairs). Every pair must pass the credentials validator. Passwords are only
// kept as bcrypt hashes.
func NewAuthService(cfg *config.StubServerConfig, logger *logger.Logger) (AuthService, error) {
	s := &authService{
		accounts:      make(map[string]models.Account, len(cfg.Accounts)),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}

	validator := validators.NewCredentialsValidator()
	for i, entry := range cfg.Accounts {
		login, password, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("account #%d: %w", i+1, ErrInvalidDataProvided)
		}
		if err := validator.Validate(context.Background(), models.Credentials{Identifier: login, Secret: password}); err != nil {
			return nil, fmt.Errorf("account #%d: %w: %w", i+1, ErrInvalidDataProvided, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password of %q: %w", login, err)
		}
		s.accounts[login] = models.Account{
			UserID:       int64(i + 1),
			Login:        login,
			PasswordHash: hash,
		}
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing dummy password: %w", err)
	}
	s.dummyHash = dummy

	logger.Info().Int("accounts", len(s.accounts)).Msg("auth service created")
	return s, nil
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.Account, error) {
	if creds.Identifier == "" || creds.Secret == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, found := s.accounts[creds.Identifier]
	hash := account.PasswordHash
	if !found {
		hash = s.dummyHash
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Secret)); err != nil || !found {
		return models.Account{}, ErrWrongPassword
	}

	return account, nil
}

func (s *authService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, account.UserID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}

func (s *authService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return parsed, nil
}
