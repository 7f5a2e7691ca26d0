package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Log records an administrative action (document decisions, account
// deletions). Entries are pruned by the retention cron.
type Log struct {
	ID         uint              `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     uuid.UUID         `json:"user_id" gorm:"type:uuid;index"`
	ActionType string            `json:"action_type" gorm:"size:50;index"`
	TargetID   string            `json:"target_id" gorm:"size:64"`
	Details    datatypes.JSONMap `json:"details" gorm:"type:jsonb"`
	CreatedAt  time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
}

func (Log) TableName() string {
	return "activity_log"
}

const (
	ActionDocumentApprove = "document_approve"
	ActionDocumentReject  = "document_reject"
	ActionUserDelete      = "user_delete"
	ActionAutoAssign      = "auto_assign"
)
