package scheduler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-be-svc/internal/database/dbtest"
	"poi-be-svc/internal/models"
	"poi-be-svc/internal/models/response"
	"poi-be-svc/internal/repository"
	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
)

type stubMenuService struct {
	service.MenuService
	report *response.MenuAuditReport
	err    error
}

func (s stubMenuService) AuditMenus(context.Context) (*response.MenuAuditReport, error) {
	return s.report, s.err
}

func TestRunAudit_RecordsStartAndSuccess(t *testing.T) {
	db := dbtest.New(t)
	logRepo := repository.NewSchedulerLogRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	parentID := models.NewID()
	require.NoError(t, menuRepo.Create(context.Background(), &models.MenuItem{
		ID:       models.NewID(),
		Name:     "Orphan",
		ParentID: &parentID,
		MenuType: models.MenuTypeLink,
		Link:     "/orphan",
		IsGlobal: true,
	}))

	guard := service.NewMenuGuard(menuRepo, repository.NewUserRepository(db))
	visibility := service.NewMenuVisibility(menuRepo, repository.NewUserMenuRepository(db))
	menus := service.NewMenuService(menuRepo, visibility, guard, logger.NewDiscardLogger())

	s := NewMenuAuditScheduler(menus, logRepo, logger.NewDiscardLogger(), "0 0 * * * *")
	docID := s.runAudit(context.Background())

	logs, err := logRepo.ListByDocument(context.Background(), docID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.SchedulerStatusStart, logs[0].Status)
	assert.Equal(t, models.SchedulerStatusSuccess, logs[1].Status)
	assert.Equal(t, MenuAuditCode, logs[1].SchedulerCode)
	assert.Contains(t, logs[1].Message, service.IssueDanglingParent)
}

func TestRunAudit_RecordsFailure(t *testing.T) {
	db := dbtest.New(t)
	logRepo := repository.NewSchedulerLogRepository(db)

	s := NewMenuAuditScheduler(stubMenuService{err: errors.New("boom")}, logRepo, logger.NewDiscardLogger(), "0 0 * * * *")
	docID := s.runAudit(context.Background())

	logs, err := logRepo.ListByDocument(context.Background(), docID)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.SchedulerStatusFailed, logs[1].Status)
	assert.True(t, strings.Contains(logs[1].Message, "boom"))
}

func TestStart_RejectsBadExpression(t *testing.T) {
	s := NewMenuAuditScheduler(stubMenuService{}, nil, logger.NewDiscardLogger(), "not a cron")
	assert.Error(t, s.Start())
}
