package eventlog

import (
	"time"

	"gorm.io/datatypes"
)

type Type string

const (
	ExamCreated      Type = "ExamCreated"
	ExamUpdated      Type = "ExamUpdated"
	ExamDeleted      Type = "ExamDeleted"
	AttemptSubmitted Type = "AttemptSubmitted"
)

type Event struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Type      Type           `gorm:"type:varchar(32);not null;index" json:"type"`
	Key       string         `gorm:"column:event_key;not null;index" json:"key"`
	Data      datatypes.JSON `json:"data"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Event) TableName() string {
	return "event_logs"
}
