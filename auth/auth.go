// Package auth issues and verifies the signed credentials that guard the
// admin API.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenTTL   = 24 * time.Hour
	BcryptCost = 10
)

// UserFinder is the slice of storage the gate needs.
type UserFinder interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Identity is what a verified credential says about its bearer.
type Identity struct {
	UserID   uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

// Claims is the signed payload.
type Claims struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

type Gate struct {
	users  UserFinder
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewGate(users UserFinder, secret string) *Gate {
	return &Gate{
		users:  users,
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}
}

// Issue checks username and password and returns a signed credential for the
// user. Unknown users and wrong passwords fail the same way.
func (g *Gate) Issue(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := g.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", nil, errs.NewDatabaseError("fetch", "user", err)
	}

	if user == nil {
		// Keep timing uniform with the wrong-password path.
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return "", nil, errs.NewInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errs.NewInvalidCredentialsError()
	}

	token, err := g.Sign(Identity{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return "", nil, errs.NewInternalErrorWithCause("Failed to sign credential", err)
	}
	return token, user, nil
}

// Sign creates an HS256 credential for id that expires after the gate's TTL.
func (g *Gate) Sign(id Identity) (string, error) {
	now := g.now()
	claims := Claims{
		UserID:   id.UserID,
		Username: id.Username,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}

// Verify checks the signature and expiry of token. Role is not inspected:
// any valid credential is accepted.
func (g *Gate) Verify(token string) (*Identity, error) {
	if token == "" {
		return nil, errs.NewMissingTokenError()
	}

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(g.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errs.NewInvalidTokenError(err)
	}
	if !parsed.Valid {
		return nil, errs.NewInvalidTokenError(errors.New("token not valid"))
	}

	return &Identity{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}, nil
}

// BearerToken extracts the credential from an Authorization header value.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// HashPassword returns the bcrypt hash stored in User.Password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

var (
	dummyOnce sync.Once
	dummy     []byte
)

func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), BcryptCost)
	})
	return dummy
}
