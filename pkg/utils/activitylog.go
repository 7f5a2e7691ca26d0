package utils

import (
	"log"

	"github.com/aduportal/portal-go/internal/domain/activity"
	"github.com/aduportal/portal-go/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LogActivity records an action in the activity log. Failures are logged
// and swallowed: the log is a best-effort side channel, never a reason to
// fail the primary operation.
var LogActivity = func(userID uuid.UUID, actionType, targetID string, details map[string]interface{}, repo repository.ActivityRepo) {
	entry := &activity.Log{
		UserID:     userID,
		ActionType: actionType,
		TargetID:   targetID,
		Details:    datatypes.JSONMap(details),
	}

	if err := repo.CreateLog(entry); err != nil {
		log.Printf("[LogActivity] failed to record %s on %s: %v", actionType, targetID, err)
	}
}
