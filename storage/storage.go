package storage

import (
	"errors"

	"jalwa-site-server/models"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrInvalidStatus   = errors.New("invalid status: must be one of pending, approved, rejected")
	ErrInvalidGiftCode = errors.New("gift code must not be empty")
)

// VerificationResult is what a self-service verify call reports back to
// the client. Message mirrors the envelope message field.
type VerificationResult struct {
	Message    string `json:"message"`
	IsVerified bool   `json:"isVerified"`
	Status     string `json:"status"`
	UserID     string `json:"userId"`
}

// Store owns the verification collection and the gift code cell. Handlers
// receive a Store instead of reaching for a package global so the memory
// and postgres backends are interchangeable.
type Store interface {
	GetAllAccountVerifications() ([]models.AccountVerification, error)
	GetAccountVerificationsByStatus(status string) ([]models.AccountVerification, error)
	FindVerificationByUserID(jalwaUserID string) (*models.AccountVerification, error)

	// VerifyAccount is an idempotent lookup-or-create: an existing record
	// is reported as-is, a new one is created approved or pending
	// depending on the trusted allow-list.
	VerifyAccount(jalwaUserID string) (*VerificationResult, error)

	// UpdateAccountVerificationStatus overwrites the status of an existing
	// record. Any status may be set from any other status; this is an
	// admin override, not a guarded workflow transition. Empty notes keep
	// the prior note.
	UpdateAccountVerificationStatus(id uint, status string, notes string) (*models.AccountVerification, error)

	GetGiftCode() (string, error)
	UpdateGiftCode(code string) (string, error)
}

// System note attached when the allow-list approves an account at first
// contact.
const autoApprovedNote = "Auto-approved: ID found in trusted list"

func resultForExisting(v *models.AccountVerification) *VerificationResult {
	return &VerificationResult{
		Message:    "Account verification status retrieved",
		IsVerified: v.Status == models.StatusApproved,
		Status:     v.Status,
		UserID:     v.JalwaUserID,
	}
}

func resultForNew(v *models.AccountVerification) *VerificationResult {
	msg := "Verification pending admin approval"
	if v.Status == models.StatusApproved {
		msg = "Account verified automatically"
	}
	return &VerificationResult{
		Message:    msg,
		IsVerified: v.Status == models.StatusApproved,
		Status:     v.Status,
		UserID:     v.JalwaUserID,
	}
}
