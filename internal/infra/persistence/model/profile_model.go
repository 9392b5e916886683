// Package model contains the GORM persistence models.
// They mirror the database schema and are mapped to domain entities at the repository boundary.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfileModel is the GORM model for the user_profiles table.
// The unique constraints carry fixed names; the storage layer relies on them
// to classify duplicate-key failures by column.
type UserProfileModel struct {
	ID             int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Username       string         `gorm:"column:username;not null;uniqueIndex:uq_user_profiles_username"`
	Email          string         `gorm:"column:email;not null;uniqueIndex:uq_user_profiles_email"`
	AdditionalData datatypes.JSON `gorm:"column:additional_data"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`

	Credential *CredentialModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for UserProfileModel.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// CredentialModel is the GORM model for the user_credentials table.
// One row per profile, written at registration and removed by the cascade
// when the owning profile is deleted.
type CredentialModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex:uq_user_credentials_user_id"`
	PasswordSalt string    `gorm:"column:password_salt;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName specifies the table name for CredentialModel.
func (CredentialModel) TableName() string {
	return "user_credentials"
}
