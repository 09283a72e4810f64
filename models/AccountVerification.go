package models

import (
	"time"
)

// Verification statuses. An account moves out of pending only through an
// admin decision; verify never changes an existing record.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type AccountVerification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	JalwaUserID string    `json:"jalwaUserId" gorm:"size:50;not null;uniqueIndex"`
	Status      string    `json:"status" gorm:"size:20;default:'pending';index"` // pending, approved, rejected
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidStatus reports whether s is one of the three recognized statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
