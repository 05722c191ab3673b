package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"portfolio/pkg/jwt"
	"portfolio/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminSecret_Matches(t *testing.T) {
	plain := AdminSecret{Password: "hunter2"}
	assert.True(t, plain.Matches("hunter2"))
	assert.False(t, plain.Matches("hunter3"))
	assert.False(t, plain.Matches(""))

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := AdminSecret{Password: "ignored", PasswordHash: string(hash)}
	assert.True(t, hashed.Matches("s3cret"))
	assert.False(t, hashed.Matches("ignored"))

	empty := AdminSecret{}
	assert.False(t, empty.Configured())
	assert.False(t, empty.Matches("anything"))
}

func TestAuth_Login(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	uc := NewAuthUseCase(AdminSecret{Password: "hunter2"}, jwtService, nil, logger.New())

	session, err := uc.Login(context.Background(), "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	claims, err := jwtService.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, jwt.AdminSubject, claims.Subject)
	assert.Equal(t, session.ID, claims.ID)

	_, err = uc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuth_LogoutRevokesSession(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	revoker := &fakeRevoker{}
	uc := NewAuthUseCase(AdminSecret{Password: "hunter2"}, jwtService, revoker, logger.New())
	ctx := context.Background()

	session, err := uc.Login(ctx, "hunter2")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, session.Token))
	ttl, ok := revoker.revoked[session.ID]
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)
}

func TestAuth_LogoutIgnoresInvalidTokens(t *testing.T) {
	revoker := &fakeRevoker{}
	uc := NewAuthUseCase(AdminSecret{Password: "x"}, jwt.NewService("test-secret", time.Hour), revoker, logger.New())

	require.NoError(t, uc.Logout(context.Background(), ""))
	require.NoError(t, uc.Logout(context.Background(), "garbage"))
	assert.Empty(t, revoker.revoked)
}

func TestAuth_LogoutRevocationFailure(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	revoker := &fakeRevoker{err: errors.New("redis down")}
	uc := NewAuthUseCase(AdminSecret{Password: "hunter2"}, jwtService, revoker, logger.New())

	session, err := uc.Login(context.Background(), "hunter2")
	require.NoError(t, err)
	assert.Error(t, uc.Logout(context.Background(), session.Token))
}

func TestAuth_LogoutWithoutRevoker(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)
	uc := NewAuthUseCase(AdminSecret{Password: "hunter2"}, jwtService, nil, logger.New())

	session, err := uc.Login(context.Background(), "hunter2")
	require.NoError(t, err)
	assert.NoError(t, uc.Logout(context.Background(), session.Token))
}
