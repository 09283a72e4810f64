package storage

import (
	"errors"
	"log"
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jalwa-site-server/models"
)

// InitializeDB connects to postgres and runs migrations.
func InitializeDB(dsn string) *gorm.DB {
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required for the postgres backend")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connecting to db: " + dbError.Error())
	}

	performMigrations(db)
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.AccountVerification{},
		&models.GiftCode{},
	)
}

// GormStore is the durable Store backend. An optional cache sits in front
// of the gift code, which every visitor reads but admins change rarely.
type GormStore struct {
	db          *gorm.DB
	cache       *GiftCodeCache
	approvedIDs []string
}

func NewGormStore(db *gorm.DB, cache *GiftCodeCache, approvedIDs []string, defaultGiftCode string) (*GormStore, error) {
	s := &GormStore{db: db, cache: cache, approvedIDs: approvedIDs}
	if err := s.seedDefaults(defaultGiftCode); err != nil {
		return nil, err
	}
	return s, nil
}

// seedDefaults creates the singleton gift code row and, on a fresh
// database, the demo verification records.
func (s *GormStore) seedDefaults(defaultGiftCode string) error {
	code := models.GiftCode{ID: 1, Code: defaultGiftCode}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&code).Error; err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.AccountVerification{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seed := []models.AccountVerification{
		{JalwaUserID: "12345", Status: models.StatusApproved, Notes: autoApprovedNote},
		{JalwaUserID: "56789", Status: models.StatusPending},
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error
}

func (s *GormStore) GetAllAccountVerifications() ([]models.AccountVerification, error) {
	var out []models.AccountVerification
	if err := s.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) GetAccountVerificationsByStatus(status string) ([]models.AccountVerification, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	var out []models.AccountVerification
	if err := s.db.Where("status = ?", status).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) FindVerificationByUserID(jalwaUserID string) (*models.AccountVerification, error) {
	var v models.AccountVerification
	err := s.db.Where("jalwa_user_id = ?", jalwaUserID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *GormStore) VerifyAccount(jalwaUserID string) (*VerificationResult, error) {
	existing, err := s.FindVerificationByUserID(jalwaUserID)
	if err == nil {
		return resultForExisting(existing), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	v := models.AccountVerification{
		JalwaUserID: jalwaUserID,
		Status:      models.StatusPending,
	}
	if slices.Contains(s.approvedIDs, jalwaUserID) {
		v.Status = models.StatusApproved
		v.Notes = autoApprovedNote
	}

	// The unique index on jalwa_user_id makes concurrent verifies race
	// safely: the loser's insert is a no-op and it reads the winner's row.
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "jalwa_user_id"}},
		DoNothing: true,
	}).Create(&v)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		winner, err := s.FindVerificationByUserID(jalwaUserID)
		if err != nil {
			return nil, err
		}
		return resultForExisting(winner), nil
	}

	return resultForNew(&v), nil
}

func (s *GormStore) UpdateAccountVerificationStatus(id uint, status string, notes string) (*models.AccountVerification, error) {
	if !models.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	var v models.AccountVerification
	err := s.db.First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	v.Status = status
	if notes != "" {
		v.Notes = notes
	}
	v.UpdatedAt = time.Now()
	if err := s.db.Save(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *GormStore) GetGiftCode() (string, error) {
	if s.cache != nil {
		if code, ok := s.cache.Get(); ok {
			return code, nil
		}
	}

	var gc models.GiftCode
	if err := s.db.First(&gc, 1).Error; err != nil {
		return "", err
	}
	if s.cache != nil {
		s.cache.Set(gc.Code)
	}
	return gc.Code, nil
}

func (s *GormStore) UpdateGiftCode(code string) (string, error) {
	if code == "" {
		return "", ErrInvalidGiftCode
	}

	if err := s.db.Model(&models.GiftCode{}).Where("id = ?", 1).Update("code", code).Error; err != nil {
		return "", err
	}
	if s.cache != nil {
		s.cache.Set(code)
	}
	return code, nil
}
