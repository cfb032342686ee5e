package user_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hash = []byte("$2a$10$fakehashfortests")

func TestNewUser(t *testing.T) {
	t.Run("creates user", func(t *testing.T) {
		id := kernel.NewUUID()
		u, err := user.NewUser(id, "Maria Perez", "Maria@Example.COM", "809-555-0101", hash, user.RoleClient)

		require.NoError(t, err)
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "Maria Perez", u.Name())
		assert.Equal(t, "maria@example.com", u.Email())
		assert.Equal(t, "809-555-0101", u.Phone())
		assert.Equal(t, hash, u.PasswordHash())
		assert.Equal(t, user.RoleClient, u.Role())
		assert.True(t, u.IsActive())
		require.NoError(t, u.Validate())
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		for _, email := range []string{"", "no-at-sign", "@example.com", "maria@"} {
			_, err := user.NewUser(kernel.NewUUID(), "Maria", email, "", hash, user.RoleClient)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "email %q", email)
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "   ", "a@b.com", "", hash, user.RoleClient)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty password hash", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Maria", "a@b.com", "", nil, user.RoleClient)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "Maria", "a@b.com", "", hash, user.RoleUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreUser_KeepsStoredActiveFlag(t *testing.T) {
	u, err := user.RestoreUser(kernel.NewUUID(), "Maria", "a@b.com", "", hash, user.RoleClient, false)

	require.NoError(t, err)
	assert.False(t, u.IsActive())
}

func TestRoleFromString(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want user.Role
	}{
		{"client", user.RoleClient},
		{"courier", user.RoleCourier},
		{"commerce", user.RoleCommerce},
		{"admin", user.RoleAdmin},
	} {
		got, err := user.RoleFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.in, got.String())
	}

	_, err := user.RoleFromString("superuser")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestUser_Validate(t *testing.T) {
	var zero user.User
	require.ErrorIs(t, zero.Validate(), user.ErrUserIsNotConstructed)

	var nilUser *user.User
	require.ErrorIs(t, nilUser.Validate(), user.ErrUserIsNotConstructed)
}
