// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Account represents a registered farmer account in the system.
// It contains authentication credentials and metadata for account management.
type Account struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey"`

	// Mobile is the phone number used for authentication.
	// It must be unique across all accounts.
	Mobile string `gorm:"uniqueIndex;size:32;not null"`

	// FullName is the display name captured at signup.
	FullName string `gorm:"size:255"`

	// Password is the hashed password for the account.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}

// TableName overrides the default GORM table name.
func (Account) TableName() string {
	return "accounts"
}
