package request

import (
	"time"

	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status tracks a request through its review lifecycle.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusPendingValidation Status = "pending_validation"
	StatusInReview          Status = "in_review"
	StatusApproved          Status = "approved"
	StatusRejected          Status = "rejected"
)

// RequestType enumerates the urban-planning procedures citizens can open.
type RequestType string

const (
	TypeBuildingPermit    RequestType = "building_permit"
	TypeUrbanismCert      RequestType = "urbanism_certificate"
	TypeDemolitionPermit  RequestType = "demolition_permit"
	TypeUtilityConnection RequestType = "utility_connection"
	TypeInformational     RequestType = "informational_request"
	TypeOther             RequestType = "other"
)

const (
	PriorityMin = 0
	PriorityMax = 10
)

// Metadata keys appended by clerk decisions.
const (
	MetaApprovalNotes   = "approval_notes"
	MetaApprovedAt      = "approved_at"
	MetaRejectionReason = "rejection_reason"
	MetaRejectedAt      = "rejected_at"
)

// Request is a citizen's submitted procedure instance. assigned_clerk_id is
// set only by claim/auto-assign and cleared only by unassign.
type Request struct {
	ID                uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	UserID            *uuid.UUID        `json:"user_id" gorm:"type:uuid;index"`
	RequestType       RequestType       `json:"request_type" gorm:"size:50;not null"`
	Status            Status            `json:"status" gorm:"size:30;default:'draft';index"`
	AssignedClerkID   *uuid.UUID        `json:"assigned_clerk_id" gorm:"type:uuid;index"`
	Priority          int               `json:"priority" gorm:"default:0"`
	LegalDeadline     *time.Time        `json:"legal_deadline"`
	ExtractedMetadata datatypes.JSONMap `json:"extracted_metadata" gorm:"type:jsonb"`
	CreatedAt         time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt         time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Request) TableName() string {
	return "requests"
}

func (r *Request) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusPendingValidation, StatusInReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// transitions is the full state machine: claim moves pending work into
// review, unassign returns it, and decisions close it.
var transitions = map[Status][]Status{
	StatusDraft:             {StatusPendingValidation},
	StatusPendingValidation: {StatusInReview},
	StatusInReview:          {StatusPendingValidation, StatusApproved, StatusRejected},
}

// CanTransitionTo reports whether the defined operations allow moving the
// request from its current status to the target.
func (r *Request) CanTransitionTo(target Status) bool {
	for _, next := range transitions[r.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// Claimable reports whether a clerk may take ownership of the request.
func (r *Request) Claimable() bool {
	return r.Status == StatusPendingValidation && r.AssignedClerkID == nil
}

// DaysUntilDeadline returns ceil((legal_deadline - now) / 24h). The second
// return is false when no deadline is set.
func (r *Request) DaysUntilDeadline(now time.Time) (int, bool) {
	if r.LegalDeadline == nil {
		return 0, false
	}
	diff := r.LegalDeadline.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days, true
}

// IsUrgent reports whether the request falls inside the deadline window.
// Overdue requests (negative days) are always urgent. Requests without a
// deadline never are.
func (r *Request) IsUrgent(now time.Time, thresholdDays int) bool {
	if r.Status != StatusPendingValidation && r.Status != StatusInReview {
		return false
	}
	days, ok := r.DaysUntilDeadline(now)
	return ok && days <= thresholdDays
}

// Enriched is a request joined with its requester, assigned clerk and
// document count. Missing joins degrade: absent requester becomes the
// "unknown" placeholder, absent clerk stays null.
type Enriched struct {
	Request
	User              *profile.Ref `json:"user"`
	AssignedClerk     *profile.Ref `json:"assigned_clerk"`
	DocumentsCount    int64        `json:"documents_count"`
	DaysUntilDeadline *int         `json:"days_until_deadline,omitempty"`
}
