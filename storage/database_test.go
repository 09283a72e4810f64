package storage

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jalwa-site-server/models"
)

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	performMigrations(db)

	s, err := NewGormStore(db, nil, testApprovedIDs, "4033F8A7A14DE9DC179CDD9942EF52F6")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestGormStoreSeedsDefaults(t *testing.T) {
	s := newTestGormStore(t)

	all, err := s.GetAllAccountVerifications()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 seed records, got %d", len(all))
	}

	code, err := s.GetGiftCode()
	if err != nil {
		t.Fatal(err)
	}
	if code != "4033F8A7A14DE9DC179CDD9942EF52F6" {
		t.Fatalf("unexpected seeded gift code %q", code)
	}
}

func TestGormStoreVerifyCreateAndRetrieve(t *testing.T) {
	s := newTestGormStore(t)

	result, err := s.VerifyAccount("approved_test_user")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsVerified || result.Status != models.StatusApproved {
		t.Fatalf("expected auto-approval, got %+v", result)
	}

	// Second call must not insert a duplicate row.
	again, err := s.VerifyAccount("approved_test_user")
	if err != nil {
		t.Fatal(err)
	}
	if again.Status != models.StatusApproved {
		t.Fatalf("retrieval changed status: %+v", again)
	}

	var count int64
	s.db.Model(&models.AccountVerification{}).
		Where("jalwa_user_id = ?", "approved_test_user").
		Count(&count)
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestGormStoreUpdateStatus(t *testing.T) {
	s := newTestGormStore(t)

	result, err := s.VerifyAccount("u1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Status != models.StatusPending {
		t.Fatalf("expected pending, got %q", result.Status)
	}

	v, err := s.FindVerificationByUserID("u1")
	if err != nil {
		t.Fatal(err)
	}

	updated, err := s.UpdateAccountVerificationStatus(v.ID, models.StatusApproved, "manual review")
	if err != nil {
		t.Fatal(err)
	}
	if updated.Status != models.StatusApproved || updated.Notes != "manual review" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	approved, err := s.GetAccountVerificationsByStatus(models.StatusApproved)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, a := range approved {
		if a.JalwaUserID == "u1" {
			found = true
		}
	}
	if !found {
		t.Fatal("updated record missing from approved listing")
	}

	if _, err := s.UpdateAccountVerificationStatus(9999, models.StatusApproved, ""); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormStoreGiftCodeUpdate(t *testing.T) {
	s := newTestGormStore(t)

	if _, err := s.UpdateGiftCode(""); err != ErrInvalidGiftCode {
		t.Fatalf("expected ErrInvalidGiftCode, got %v", err)
	}

	if _, err := s.UpdateGiftCode("NEWCODE42"); err != nil {
		t.Fatal(err)
	}
	code, err := s.GetGiftCode()
	if err != nil {
		t.Fatal(err)
	}
	if code != "NEWCODE42" {
		t.Fatalf("gift code = %q, want NEWCODE42", code)
	}
}
