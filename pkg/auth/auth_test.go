package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()

	token, expiresAt, err := NewToken(7, "ada@library.io", RoleMember)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, 7, claims.Profile.UserID)
	require.Equal(t, "ada@library.io", claims.Profile.Username)
	require.Equal(t, RoleMember, claims.Profile.Role)
	require.Equal(t, "ada@library.io", claims.Email)
}

func TestParseToken_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.token")
	require.Error(t, err)
}

func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	p := Principal{UserID: 1, Email: "admin@library.io", Role: RoleLibrarian}
	ctx := SetAuthContext(context.Background(), p)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	require.Equal(t, p, got)
	require.True(t, got.IsLibrarian())

	_, err = FromContext(context.Background())
	require.Error(t, err)
}
