package repository

import (
	"context"

	"gorm.io/gorm"

	"poi-be-svc/internal/models"
)

// SchedulerLogRepository defines the interface for scheduler log data operations
type SchedulerLogRepository interface {
	Create(ctx context.Context, log *models.SchedulerLog) error
	ListByDocument(ctx context.Context, documentID string) ([]models.SchedulerLog, error)
}

// schedulerLogRepository implements SchedulerLogRepository
type schedulerLogRepository struct {
	db *gorm.DB
}

// NewSchedulerLogRepository creates a new instance of SchedulerLogRepository
func NewSchedulerLogRepository(db *gorm.DB) SchedulerLogRepository {
	return &schedulerLogRepository{
		db: db,
	}
}

// Create creates a new scheduler log record
func (r *schedulerLogRepository) Create(ctx context.Context, log *models.SchedulerLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByDocument retrieves the log rows of one scheduler run in insertion order
func (r *schedulerLogRepository) ListByDocument(ctx context.Context, documentID string) ([]models.SchedulerLog, error) {
	var logs []models.SchedulerLog
	err := r.db.WithContext(ctx).Where("document_id = ?", documentID).Order("id ASC").Find(&logs).Error
	return logs, err
}
