package models

import (
	"time"
)

// GiftCode is a single shared promotional code. Exactly one row exists
// (ID 1); admins overwrite the code in place.
type GiftCode struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Code      string    `json:"giftCode" gorm:"size:100;not null"`
	UpdatedAt time.Time `json:"updatedAt"`
}
