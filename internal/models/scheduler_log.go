package models

import (
	"time"
)

// Scheduler run states
const (
	SchedulerStatusStart   = "START"
	SchedulerStatusSuccess = "SUCCESS"
	SchedulerStatusFailed  = "FAILED"
)

// SchedulerLog represents the scheduler_logs table
type SchedulerLog struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	DocumentID    string    `json:"document_id" gorm:"column:document_id;type:varchar(64);index"`
	SchedulerCode string    `json:"scheduler_code" gorm:"column:scheduler_code;type:varchar(64);index"`
	Message       string    `json:"message" gorm:"column:message;type:text"`
	Status        string    `json:"status" gorm:"column:status;type:varchar(16)"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName sets the insert table name for SchedulerLog
func (SchedulerLog) TableName() string {
	return "scheduler_logs"
}
