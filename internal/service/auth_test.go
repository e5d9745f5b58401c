package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuselect/election-api/internal/repository"
	"github.com/campuselect/election-api/internal/repository/dao"
	"github.com/campuselect/election-api/internal/service"
)

type authFixture struct {
	verifier *service.VerifyService
	svc      *service.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	kv := newTestKV(t)
	repo := repository.NewUserRepository(dao.NewUserDAO(kv))
	verifier := service.NewVerifyService()

	return &authFixture{
		verifier: verifier,
		svc:      service.NewAuthService(repo, verifier),
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("roster default password", func(t *testing.T) {
		f := newAuthFixture(t)

		user, err := f.svc.Login(ctx, "2019331502", "vote1234")
		require.NoError(t, err)
		assert.Equal(t, "Rahim Uddin", user.Name)
		assert.False(t, user.IsAdmin)
	})

	t.Run("admin account", func(t *testing.T) {
		f := newAuthFixture(t)

		user, err := f.svc.Login(ctx, "2019331501", "admin123")
		require.NoError(t, err)
		assert.True(t, user.IsAdmin)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.Login(ctx, "2019331502", "wrong")
		require.ErrorIs(t, err, service.ErrWrongPassword)
	})

	t.Run("unknown student", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.Login(ctx, "0000000000", "vote1234")
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a verified session", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.UpdateProfile(ctx, "2019331502", "New Name", "", "")
		require.ErrorIs(t, err, service.ErrNotVerified)
	})

	t.Run("renames without touching the password", func(t *testing.T) {
		f := newAuthFixture(t)
		require.True(t, f.verifier.Verify("ID: 2019331502", "2019331502"))

		user, err := f.svc.UpdateProfile(ctx, "2019331502", "  Rahim U.  ", "", "")
		require.NoError(t, err)
		assert.Equal(t, "Rahim U.", user.Name)

		// Old password still works; the override map shadows the roster name.
		user, err = f.svc.Login(ctx, "2019331502", "vote1234")
		require.NoError(t, err)
		assert.Equal(t, "Rahim U.", user.Name)
	})

	t.Run("password change requires the current password", func(t *testing.T) {
		f := newAuthFixture(t)
		require.True(t, f.verifier.Verify("ID: 2019331502", "2019331502"))

		_, err := f.svc.UpdateProfile(ctx, "2019331502", "Rahim Uddin", "wrong", "newpass99")
		require.ErrorIs(t, err, service.ErrWrongPassword)
	})

	t.Run("password change sticks across logins", func(t *testing.T) {
		f := newAuthFixture(t)
		require.True(t, f.verifier.Verify("ID: 2019331502", "2019331502"))

		_, err := f.svc.UpdateProfile(ctx, "2019331502", "Rahim Uddin", "vote1234", "newpass99")
		require.NoError(t, err)

		_, err = f.svc.Login(ctx, "2019331502", "newpass99")
		require.NoError(t, err)

		_, err = f.svc.Login(ctx, "2019331502", "vote1234")
		require.ErrorIs(t, err, service.ErrWrongPassword)
	})
}
