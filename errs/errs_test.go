package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	cases := []struct {
		name   string
		cause  error
		status int
		is     error
	}{
		{"gorm duplicate", gorm.ErrDuplicatedKey, http.StatusConflict, ErrAlreadyExists},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_blog_posts_slug"`), http.StatusConflict, ErrAlreadyExists},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: blog_posts.slug"), http.StatusConflict, ErrAlreadyExists},
		{"foreign key", gorm.ErrForeignKeyViolated, http.StatusBadRequest, ErrForeignKeyConstraint},
		{"record not found", fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound), http.StatusNotFound, ErrNotFound},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusInternalServerError, ErrDatabaseQuery},
		{"other", errors.New("syntax error at or near"), http.StatusInternalServerError, ErrDatabaseQuery},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("create", "blog post", tc.cause)
			require.Equal(t, tc.status, err.StatusCode)
			require.ErrorIs(t, err, tc.is)
			require.Equal(t, tc.status, StatusCode(err))
		})
	}
}

func TestUnexpectedDatabaseErrorHidesCause(t *testing.T) {
	err := NewDatabaseError("find", "blog posts", errors.New("pq: password authentication failed for user app"))
	require.Equal(t, "Failed to find blog posts", err.Message())
	require.Contains(t, err.GetFullError(), "password authentication failed")
}

func TestApiErrKinds(t *testing.T) {
	require.True(t, IsNotFound(NewNotFoundError("Blog post not found")))
	require.Equal(t, "Blog post not found", NewNotFoundError("Blog post not found").Message())
	require.True(t, IsBadRequest(NewBadRequestError("Email is required")))
	require.True(t, IsInvalidCredentialsError(NewInvalidCredentialsError()))
	require.Equal(t, http.StatusUnauthorized, NewMissingTokenError().StatusCode)
	require.Equal(t, http.StatusForbidden, NewInvalidTokenError(nil).StatusCode)
	require.True(t, IsValidationError(NewValidationError("Invalid form data", nil)))
	require.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))

	exists := NewAlreadyExists("User")
	require.True(t, IsAlreadyExists(exists))
	require.Equal(t, http.StatusConflict, exists.StatusCode)
	require.Equal(t, "User already exists", exists.Message())
}
