package storage

import (
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"jalwa-site-server/models"
)

// MemoryStore keeps everything in process memory. It is the default
// backend for development and tests; production deployments configure the
// postgres backend instead. All methods are safe for concurrent use.
type MemoryStore struct {
	mu            sync.RWMutex
	verifications []models.AccountVerification
	nextID        uint
	giftCode      string
	approvedIDs   []string
}

// NewMemoryStore seeds the store with the demo records the original
// deployment shipped with, so admin dashboards are not empty on first run.
func NewMemoryStore(approvedIDs []string, giftCode string) *MemoryStore {
	now := time.Now()
	return &MemoryStore{
		verifications: []models.AccountVerification{
			{
				ID:          1,
				JalwaUserID: "12345",
				Status:      models.StatusApproved,
				Notes:       autoApprovedNote,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			{
				ID:          2,
				JalwaUserID: "56789",
				Status:      models.StatusPending,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		nextID:      3,
		giftCode:    giftCode,
		approvedIDs: approvedIDs,
	}
}

// NewEmptyMemoryStore starts with no verification records. Used by tests
// that assert on creation behavior.
func NewEmptyMemoryStore(approvedIDs []string, giftCode string) *MemoryStore {
	return &MemoryStore{
		nextID:      1,
		giftCode:    giftCode,
		approvedIDs: approvedIDs,
	}
}

func (s *MemoryStore) GetAllAccountVerifications() ([]models.AccountVerification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AccountVerification, len(s.verifications))
	copy(out, s.verifications)
	return out, nil
}

func (s *MemoryStore) GetAccountVerificationsByStatus(status string) ([]models.AccountVerification, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.AccountVerification{}
	for _, v := range s.verifications {
		if v.Status == status {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *MemoryStore) FindVerificationByUserID(jalwaUserID string) (*models.AccountVerification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.verifications {
		if s.verifications[i].JalwaUserID == jalwaUserID {
			v := s.verifications[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) VerifyAccount(jalwaUserID string) (*VerificationResult, error) {
	// Lookup and create under one lock so two concurrent verifies for the
	// same ID cannot both insert.
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.verifications {
		if s.verifications[i].JalwaUserID == jalwaUserID {
			return resultForExisting(&s.verifications[i]), nil
		}
	}

	now := time.Now()
	v := models.AccountVerification{
		ID:          s.nextID,
		JalwaUserID: jalwaUserID,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if slices.Contains(s.approvedIDs, jalwaUserID) {
		v.Status = models.StatusApproved
		v.Notes = autoApprovedNote
	}

	s.nextID++
	s.verifications = append(s.verifications, v)

	return resultForNew(&v), nil
}

func (s *MemoryStore) UpdateAccountVerificationStatus(id uint, status string, notes string) (*models.AccountVerification, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.verifications {
		if s.verifications[i].ID != id {
			continue
		}
		s.verifications[i].Status = status
		if notes != "" {
			s.verifications[i].Notes = notes
		}
		s.verifications[i].UpdatedAt = time.Now()

		v := s.verifications[i]
		return &v, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetGiftCode() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.giftCode, nil
}

func (s *MemoryStore) UpdateGiftCode(code string) (string, error) {
	if code == "" {
		return "", ErrInvalidGiftCode
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.giftCode = code
	return s.giftCode, nil
}
