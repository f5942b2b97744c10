package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-be-svc/internal/database/dbtest"
	"poi-be-svc/internal/models"
)

func TestDashboardRepository_GetMenuStatistics(t *testing.T) {
	db := dbtest.New(t)
	menus := NewMenuRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "u@example.com", "U")

	root := seedMenu(t, menus, "root", 0, true, nil)
	seedMenu(t, menus, "child", 0, true, strPtr(root.ID))
	filter := &models.MenuItem{Name: "cafes", IsGlobal: false, UserID: strPtr(user.ID)}
	filter.SetTarget(models.FilterTarget{Province: "Taipei"})
	require.NoError(t, menus.CreateForUser(ctx, filter, user.ID))

	stats, err := NewDashboardRepository(db).GetMenuStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalMenus)
	assert.Equal(t, int64(2), stats.GlobalMenus)
	assert.Equal(t, int64(1), stats.UserSpecificMenus)
	assert.Equal(t, int64(2), stats.LinkMenus)
	assert.Equal(t, int64(1), stats.FilterMenus)
	assert.Equal(t, int64(2), stats.RootMenus)
	assert.Equal(t, int64(1), stats.ChildMenus)
	assert.Equal(t, int64(1), stats.Assignments)
	assert.Equal(t, int64(1), stats.Users)
}

func TestDashboardRepository_EmptyStore(t *testing.T) {
	stats, err := NewDashboardRepository(dbtest.New(t)).GetMenuStatistics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalMenus)
	assert.Zero(t, stats.GlobalMenus)
}
