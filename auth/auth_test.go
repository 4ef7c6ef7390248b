package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUsers map[string]*models.User

func (f fakeUsers) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	if username == "broken" {
		return nil, errors.New("connection reset")
	}
	return f[username], nil
}

func newTestGate(t *testing.T) (*Gate, *models.User) {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Username: "admin", Password: hash, Role: models.RoleAdmin}
	return NewGate(fakeUsers{"admin": user}, "test-secret"), user
}

func TestHashPasswordCost(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)
}

func TestIssueAndVerify(t *testing.T) {
	gate, user := newTestGate(t)

	token, got, err := gate.Issue(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	id, err := gate.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: user.ID, Username: "admin", Role: models.RoleAdmin}, *id)
}

func TestIssueRejectsBadCredentials(t *testing.T) {
	gate, _ := newTestGate(t)

	_, _, err := gate.Issue(context.Background(), "admin", "wrong")
	assert.True(t, errs.IsInvalidCredentialsError(err))
	assert.Equal(t, 401, errs.StatusCode(err))

	_, _, err = gate.Issue(context.Background(), "ghost", "s3cret")
	assert.True(t, errs.IsInvalidCredentialsError(err))

	_, _, err = gate.Issue(context.Background(), "broken", "x")
	assert.Equal(t, 500, errs.StatusCode(err))
}

func TestVerifyFailures(t *testing.T) {
	gate, user := newTestGate(t)

	_, err := gate.Verify("")
	assert.True(t, errs.IsMissingTokenError(err))
	assert.Equal(t, 401, errs.StatusCode(err))

	_, err = gate.Verify("not.a.jwt")
	assert.True(t, errs.IsInvalidTokenError(err))
	assert.Equal(t, 403, errs.StatusCode(err))

	other := NewGate(fakeUsers{}, "another-secret")
	foreign, err := other.Sign(Identity{UserID: user.ID, Username: "admin"})
	require.NoError(t, err)
	_, err = gate.Verify(foreign)
	assert.True(t, errs.IsInvalidTokenError(err))

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: user.ID})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = gate.Verify(unsigned)
	assert.True(t, errs.IsInvalidTokenError(err))
}

func TestVerifyExpiry(t *testing.T) {
	gate, user := newTestGate(t)
	issuedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	gate.now = func() time.Time { return issuedAt }

	token, err := gate.Sign(Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	require.NoError(t, err)

	gate.now = func() time.Time { return issuedAt.Add(23 * time.Hour) }
	_, err = gate.Verify(token)
	require.NoError(t, err)

	gate.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }
	_, err = gate.Verify(token)
	assert.True(t, errs.IsInvalidTokenError(err))
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc "))
	assert.Equal(t, "", BearerToken("abc"))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken(""))
}
