package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"mediavault/internal/domain/domainerr"
	"mediavault/internal/domain/entity"
	"mediavault/internal/domain/repository/database"
)

const sessionIssuer = "mediavault"

const defaultSessionTTL = 24 * time.Hour

type SessionConfig struct {
	Secret     string `yaml:"-"`
	TTLMinutes int    `yaml:"ttl_in_minutes"`
}

func (c SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

type Authenticator struct {
	retriever database.UserRetriever
	secret    []byte
	ttl       time.Duration
}

func NewAuthenticator(retriever database.UserRetriever, cfg SessionConfig) *Authenticator {
	ttl := cfg.TTL()
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &Authenticator{
		retriever: retriever,
		secret:    []byte(cfg.Secret),
		ttl:       ttl,
	}
}

// Login compares password against the stored hash and, on success, mints
// a signed session token. Unknown emails and wrong passwords are not
// distinguished to the caller.
func (a *Authenticator) Login(ctx context.Context, email, password string) (entity.Session, error) {
	if email == "" || password == "" {
		return entity.Session{}, domainerr.New(domainerr.KindValidation, "email and password are required")
	}

	user, err := a.retriever.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return entity.Session{}, domainerr.New(domainerr.KindInvalidCredentials, "invalid email or password")
		}

		return entity.Session{}, err
	}

	if !user.ComparePassword(password) {
		return entity.Session{}, domainerr.New(domainerr.KindInvalidCredentials, "invalid email or password")
	}

	expiresAt := time.Now().Add(a.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return entity.Session{}, domainerr.Wrap(domainerr.KindStorage, "failed to create session", err)
	}

	return entity.Session{Token: signed, ExpiresAt: expiresAt}, nil
}
