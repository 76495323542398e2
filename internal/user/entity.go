package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string     `gorm:"not null" json:"username"`
	Email        string     `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"column:password;not null" json:"-"`
	Role         Role       `gorm:"type:varchar(16);not null" json:"role"`
	OTP          *string    `gorm:"column:otp" json:"-"`
	OTPExpiry    *time.Time `gorm:"column:otp_expiry;index" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
