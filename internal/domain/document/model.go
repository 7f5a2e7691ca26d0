package document

import (
	"time"

	"github.com/aduportal/portal-go/internal/domain/profile"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ValidationStatus tracks the manual review of an uploaded document.
type ValidationStatus string

const (
	ValidationPending  ValidationStatus = "pending"
	ValidationApproved ValidationStatus = "approved"
	ValidationRejected ValidationStatus = "rejected"
)

// Document is a file attached to a request. The file bytes live in object
// storage under StoragePath; this row tracks review state only.
type Document struct {
	ID                uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey"`
	RequestID         uuid.UUID        `json:"request_id" gorm:"type:uuid;index;not null"`
	FileName          string           `json:"file_name" gorm:"size:255;not null"`
	StoragePath       string           `json:"storage_path" gorm:"size:512"`
	ContentType       string           `json:"content_type" gorm:"size:100"`
	SizeBytes         int64            `json:"size_bytes"`
	DocumentTypeAI    *string          `json:"document_type_ai" gorm:"size:100"`
	ValidationStatus  ValidationStatus `json:"validation_status" gorm:"size:20;default:'pending';index"`
	ValidationMessage string           `json:"validation_message" gorm:"type:text"`
	UploadedAt        time.Time        `json:"uploaded_at" gorm:"autoCreateTime;index"`
}

func (Document) TableName() string {
	return "documents"
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// RequestRef ties a rejected document back to its request and requester.
type RequestRef struct {
	ID          uuid.UUID    `json:"id"`
	RequestType string       `json:"request_type"`
	User        *profile.Ref `json:"user"`
}

// Enriched is a document joined with its request and requester for the
// rejected-documents listing.
type Enriched struct {
	Document
	Request *RequestRef `json:"request"`
}
