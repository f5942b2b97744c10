package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"poi-be-svc/internal/auth"
	"poi-be-svc/internal/database/dbtest"
	"poi-be-svc/internal/models"
)

func TestUserRepository(t *testing.T) {
	db := dbtest.New(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	zed := seedUser(t, db, "zed@example.com", "Zed")
	amy := seedUser(t, db, "amy@example.com", "Amy")
	assert.Equal(t, auth.RoleUser, zed.Role)

	found, err := repo.GetByEmail(ctx, "amy@example.com")
	require.NoError(t, err)
	assert.Equal(t, amy.ID, found.ID)

	_, err = repo.GetByID(ctx, models.NewID())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	users, err := repo.ListOrderedByName(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Amy", users[0].Name)
	assert.Empty(t, users[0].Password)

	ids, err := repo.ListIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{zed.ID, amy.ID}, ids)

	exists, err := repo.ExistsWithRole(ctx, auth.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &models.User{Email: "root@example.com", Name: "Root", Password: "x", Role: auth.RoleAdmin}))
	exists, err = repo.ExistsWithRole(ctx, auth.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := dbtest.New(t)
	seedUser(t, db, "dup@example.com", "One")

	err := NewUserRepository(db).Create(context.Background(), &models.User{Email: "dup@example.com", Name: "Two", Password: "x"})
	assert.Error(t, err)
}
