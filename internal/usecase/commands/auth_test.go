//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"engage-api/internal/domain/user"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/clock"
	"engage-api/internal/pkg/errs"
	"engage-api/internal/pkg/jwt"
	"engage-api/internal/pkg/password"
	"engage-api/internal/usecase/commands"
	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	lastLoginIDs []uuid.UUID
}

func (f *fakeUserRepo) Create(context.Context, db.DBTX, *user.User, string) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, id uuid.UUID, _ time.Time) error {
	f.lastLoginIDs = append(f.lastLoginIDs, id)
	return nil
}

type fakeUserReadStore struct {
	view       *queries.AuthorizedUserView
	hash       string
	byEmailErr error
	byIDErr    error
}

func (f *fakeUserReadStore) FindByID(context.Context, uuid.UUID) (*queries.AuthorizedUserView, error) {
	return f.view, f.byIDErr
}

func (f *fakeUserReadStore) FindByEmail(context.Context, string) (*queries.AuthorizedUserView, string, error) {
	return f.view, f.hash, f.byEmailErr
}

type authHarness struct {
	cmds  commands.AuthCommands
	store *fakeUserReadStore
	users *fakeUserRepo
	jwtSv *jwt.Service
}

func newAuthHarness(t *testing.T, plaintext string) *authHarness {
	t.Helper()
	hash, err := password.HashPassword(plaintext)
	require.NoError(t, err)

	businessID := uuid.New()
	store := &fakeUserReadStore{
		view: &queries.AuthorizedUserView{
			ID:         uuid.New(),
			Email:      "owner@example.com",
			Role:       "owner",
			BusinessID: &businessID,
			IsActive:   true,
		},
		hash: hash,
	}
	users := &fakeUserRepo{}
	uow := &fakeUoW{tx: &fakeTx{users: users, reads: &fakeCommandReads{}}}
	jwtSv := jwt.NewService("test-secret-key", 15*time.Minute, 24*time.Hour)

	return &authHarness{
		cmds:  commands.NewAuthCommands(uow, store, jwtSv, clock.NewMockClock(testNow)),
		store: store,
		users: users,
		jwtSv: jwtSv,
	}
}

func TestAuthCommands_Login(t *testing.T) {
	const plaintext = "correct-horse-battery"

	t.Run("success issues a token pair and records last login", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)

		result, err := h.cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "owner@example.com",
			Password: plaintext,
		})
		require.NoError(t, err)

		assert.Equal(t, h.store.view.ID, result.UserID)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)
		require.Len(t, h.users.lastLoginIDs, 1)
		assert.Equal(t, h.store.view.ID, h.users.lastLoginIDs[0])

		claims, err := h.jwtSv.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, h.store.view.ID, claims.UserID)
		assert.Equal(t, "owner", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)

		_, err := h.cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "owner@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to the same error as a bad password", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)
		h.store.view = nil
		h.store.byEmailErr = errs.New("no rows")

		_, err := h.cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "nobody@example.com",
			Password: plaintext,
		})
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)
		h.store.view.IsActive = false

		_, err := h.cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "owner@example.com",
			Password: plaintext,
		})
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("malformed email fails before any lookup", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)

		_, err := h.cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "not-an-email",
			Password: plaintext,
		})
		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	const plaintext = "correct-horse-battery"

	login := func(t *testing.T, h *authHarness) *commands.TokenPair {
		t.Helper()
		result, err := h.cmds.Login(context.Background(), commands.LoginRequest{
			Email:    "owner@example.com",
			Password: plaintext,
		})
		require.NoError(t, err)
		return result.TokenPair
	}

	t.Run("rotates both tokens", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)
		pair := login(t, h)

		refreshed, err := h.cmds.RefreshToken(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEmpty(t, refreshed.RefreshToken)
	})

	t.Run("access token is not accepted as a refresh token", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)
		pair := login(t, h)

		_, err := h.cmds.RefreshToken(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("garbage token", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)

		_, err := h.cmds.RefreshToken(context.Background(), "not.a.jwt")
		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
	})

	t.Run("deactivated user cannot refresh", func(t *testing.T) {
		h := newAuthHarness(t, plaintext)
		pair := login(t, h)
		h.store.view.IsActive = false

		_, err := h.cmds.RefreshToken(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
