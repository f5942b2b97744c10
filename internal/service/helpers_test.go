package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"poi-be-svc/internal/auth"
	"poi-be-svc/internal/database/dbtest"
	"poi-be-svc/internal/models"
	"poi-be-svc/internal/repository"
	"poi-be-svc/pkg/logger"
)

type testEnv struct {
	db         *gorm.DB
	menuRepo   repository.MenuRepository
	userRepo   repository.UserRepository
	assignRepo repository.UserMenuRepository
	guard      *MenuGuard
	menus      MenuService
	userMenus  UserMenuService
	log        *logger.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := dbtest.New(t)
	log := logger.NewDiscardLogger()
	menuRepo := repository.NewMenuRepository(db)
	userRepo := repository.NewUserRepository(db)
	assignRepo := repository.NewUserMenuRepository(db)
	guard := NewMenuGuard(menuRepo, userRepo)

	return &testEnv{
		db:         db,
		menuRepo:   menuRepo,
		userRepo:   userRepo,
		assignRepo: assignRepo,
		guard:      guard,
		menus:      NewMenuService(menuRepo, NewMenuVisibility(menuRepo, assignRepo), guard, log),
		userMenus:  NewUserMenuService(menuRepo, assignRepo, userRepo, guard, log),
		log:        log,
	}
}

func (e *testEnv) user(t *testing.T, email string, role auth.Role) *models.User {
	t.Helper()
	u := &models.User{Email: email, Name: email, Password: "x", Role: role}
	require.NoError(t, e.userRepo.Create(context.Background(), u))
	return u
}

// menu inserts a row directly, bypassing the guard, with a distinct creation time
func (e *testEnv) menu(t *testing.T, name string, order int, global bool, parent *string) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		Name:      name,
		MenuType:  models.MenuTypeLink,
		Link:      "/" + name,
		SortOrder: order,
		IsGlobal:  global,
		ParentID:  parent,
	}
	require.NoError(t, e.menuRepo.Create(context.Background(), item))
	time.Sleep(2 * time.Millisecond)
	return item
}

func ptr[T any](v T) *T {
	return &v
}
