package main

import (
	"context"
	"testing"

	"github.com/rpupo63/electronics-site-backend/auth"
	"github.com/rpupo63/electronics-site-backend/database"
	"github.com/rpupo63/electronics-site-backend/database/dbtest"
	"github.com/rpupo63/electronics-site-backend/errs"
	"github.com/rpupo63/electronics-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdmin(t *testing.T) {
	ctx := context.Background()
	store := database.New(dbtest.Open(t))

	user, err := createAdmin(ctx, store, "admin", "admin@example.com", "", "hunter2", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Name)
	assert.NotEqual(t, "hunter2", user.Password)

	token, _, err := auth.NewGate(store, "s").Issue(ctx, "admin", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = createAdmin(ctx, store, "admin", "other@example.com", "", "pw", models.RoleAdmin)
	assert.True(t, errs.IsAlreadyExists(err))
	assert.EqualError(t, err, "User already exists")
	_, err = createAdmin(ctx, store, "other", "admin@example.com", "", "pw", models.RoleAdmin)
	assert.True(t, errs.IsAlreadyExists(err))
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd(map[string]string{})

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "generate", "create-admin"})
	assert.NotNil(t, root.RunE)
}
