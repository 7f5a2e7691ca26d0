package profile

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role determines what a profile may do in the portal.
type Role string

const (
	RoleCitizen Role = "citizen" // submits requests
	RoleClerk   Role = "clerk"   // reviews and decides on requests
	RoleAdmin   Role = "admin"
)

// Profile represents a portal account. Clerk profiles are the assignment
// targets of the triage engine; inactive profiles cannot log in and are
// skipped during auto-assignment.
type Profile struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"size:255;uniqueIndex;not null"`
	FullName     *string    `json:"full_name"`
	Role         Role       `json:"role" gorm:"size:20;default:'citizen'"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Profile) IsStaff() bool {
	return p.Role == RoleClerk || p.Role == RoleAdmin
}

// Ref is the subset of a profile embedded into enriched request payloads.
type Ref struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName *string   `json:"full_name"`
}

// UnknownRef is the placeholder used when a requester profile is missing.
func UnknownRef() *Ref {
	return &Ref{Email: "unknown", FullName: nil}
}

func (p *Profile) ToRef() *Ref {
	return &Ref{ID: p.ID, Email: p.Email, FullName: p.FullName}
}
