package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequestDTO struct {
	RequestType   string                 `json:"request_type" binding:"required"`
	Submit        bool                   `json:"submit"` // false keeps the request in draft
	LegalDeadline *time.Time             `json:"legal_deadline,omitempty"`
	Metadata      map[string]interface{} `json:"extracted_metadata,omitempty"`
}

type ApproveDTO struct {
	Notes string `json:"notes"`
}

type RejectDTO struct {
	Reason string `json:"reason" binding:"required"`
}

type PriorityDTO struct {
	Priority int `json:"priority" binding:"min=0,max=10"`
}

// ListFilter captures the query parameters of GET /requests. Search matches
// request_type only (case-insensitive partial match).
type ListFilter struct {
	Status          string
	RequestType     string
	AssignedClerkID *uuid.UUID
	FromDate        *time.Time
	ToDate          *time.Time
	Search          string
}

// Statistics is the GET /requests/statistics payload.
type Statistics struct {
	Total        int64            `json:"total"`
	Pending      int64            `json:"pending"`
	Approved     int64            `json:"approved"`
	Rejected     int64            `json:"rejected"`
	ApprovalRate float64          `json:"approval_rate"`
	ByType       map[string]int64 `json:"by_type"`
}

// ClerkStats feeds the clerk dashboard.
type ClerkStats struct {
	PendingValidation  int64 `json:"pending_validation"`
	InReview           int64 `json:"in_review"`
	NearDeadline       int64 `json:"near_deadline"`
	CompletedThisMonth int64 `json:"completed_this_month"`
	AssignedToMe       int64 `json:"assigned_to_me"`
}
