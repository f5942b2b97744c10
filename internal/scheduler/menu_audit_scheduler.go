package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"poi-be-svc/internal/models"
	"poi-be-svc/internal/repository"
	"poi-be-svc/internal/service"
	"poi-be-svc/pkg/logger"
)

// MenuAuditCode identifies audit runs in scheduler_logs
const MenuAuditCode = "MENU_AUDIT"

const auditTimeout = 2 * time.Minute

// MenuAuditScheduler periodically scans menus for broken parent links
type MenuAuditScheduler struct {
	menuService      service.MenuService
	schedulerLogRepo repository.SchedulerLogRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
}

// NewMenuAuditScheduler creates a new menu audit scheduler
func NewMenuAuditScheduler(menuService service.MenuService, schedulerLogRepo repository.SchedulerLogRepository, logger *logger.Logger, cronExpression string) *MenuAuditScheduler {
	return &MenuAuditScheduler{
		menuService:      menuService,
		schedulerLogRepo: schedulerLogRepo,
		logger:           logger,
		cron:             cron.New(cron.WithSeconds()),
		cronExpression:   cronExpression,
	}
}

// Start schedules the audit job and starts the cron runner
func (s *MenuAuditScheduler) Start() error {
	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling menu audit job")
	if _, err := s.cron.AddFunc(s.cronExpression, s.runScheduled); err != nil {
		return fmt.Errorf("failed to schedule menu audit job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Menu audit scheduler started successfully")
	return nil
}

// Stop waits for a running job and stops the scheduler
func (s *MenuAuditScheduler) Stop() {
	s.logger.Info("Stopping menu audit scheduler...")
	<-s.cron.Stop().Done()
	s.logger.Info("Menu audit scheduler stopped successfully")
}

func (s *MenuAuditScheduler) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()
	s.runAudit(ctx)
}

// runAudit performs one audit and records START then SUCCESS or FAILED under a fresh document id
func (s *MenuAuditScheduler) runAudit(ctx context.Context) string {
	docID := uuid.NewString()
	s.logRun(ctx, docID, "Starting scheduled menu audit", models.SchedulerStatusStart)

	report, err := s.menuService.AuditMenus(ctx)
	if err != nil {
		s.logRun(ctx, docID, fmt.Sprintf("Menu audit failed: %v", err), models.SchedulerStatusFailed)
		s.logger.WithError(err).Error("Scheduled menu audit failed")
		return docID
	}

	reportJSON, _ := json.Marshal(report)
	s.logRun(ctx, docID, fmt.Sprintf("Menu audit completed: %s", reportJSON), models.SchedulerStatusSuccess)

	entry := s.logger.WithFields(map[string]interface{}{
		"scanned_menus": report.ScannedMenus,
		"issues":        len(report.Issues),
	})
	if len(report.Issues) > 0 {
		entry.Warn("Menu audit found structural issues")
	} else {
		entry.Info("Menu audit completed")
	}
	return docID
}

func (s *MenuAuditScheduler) logRun(ctx context.Context, documentID, message, status string) {
	entry := &models.SchedulerLog{
		DocumentID:    documentID,
		SchedulerCode: MenuAuditCode,
		Message:       message,
		Status:        status,
	}

	if err := s.schedulerLogRepo.Create(ctx, entry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
