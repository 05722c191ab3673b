package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"portfolio/pkg/jwt"
	"portfolio/pkg/logger"
	"portfolio/services/api/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Login(ctx context.Context, password string) (*entity.AdminSession, error)
	Logout(ctx context.Context, token string) error
}

// SessionRevoker remembers logged-out session ids until they would expire.
type SessionRevoker interface {
	Revoke(ctx context.Context, id string, ttl time.Duration) error
}

type AdminSecret struct {
	Password     string
	PasswordHash string
}

func (s AdminSecret) Configured() bool {
	return s.Password != "" || s.PasswordHash != ""
}

// Matches compares against the bcrypt hash when set, otherwise against the plain
// password in constant time.
func (s AdminSecret) Matches(password string) bool {
	if password == "" {
		return false
	}
	if s.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)) == nil
	}
	if s.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.Password), []byte(password)) == 1
}

type authUseCase struct {
	secret     AdminSecret
	jwtService *jwt.Service
	revoker    SessionRevoker
	logger     *logger.Logger
	now        func() time.Time
}

// NewAuthUseCase builds the admin gate. revoker may be nil, in which case logout
// only clears the client cookie.
func NewAuthUseCase(secret AdminSecret, jwtService *jwt.Service, revoker SessionRevoker, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		secret:     secret,
		jwtService: jwtService,
		revoker:    revoker,
		logger:     logger,
		now:        time.Now,
	}
}

func (uc *authUseCase) Login(ctx context.Context, password string) (*entity.AdminSession, error) {
	if !uc.secret.Matches(password) {
		uc.logger.Warn("Rejected admin login attempt")
		return nil, ErrInvalidCredentials
	}

	token, claims, err := uc.jwtService.GenerateToken(jwt.AdminSubject, "admin")
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	uc.logger.Info("Admin session %s issued", claims.ID)
	return &entity.AdminSession{
		ID:        claims.ID,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes token until its expiry. Unknown or invalid tokens are ignored.
func (uc *authUseCase) Logout(ctx context.Context, token string) error {
	if token == "" || uc.revoker == nil {
		return nil
	}

	claims, err := uc.jwtService.ValidateToken(token)
	if err != nil {
		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(uc.now())
	if err := uc.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	uc.logger.Info("Admin session %s revoked", claims.ID)
	return nil
}
