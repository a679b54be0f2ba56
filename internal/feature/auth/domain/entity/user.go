// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user.
type User struct {
	// ID is a UUID assigned by the store on insert.
	ID string `gorm:"primaryKey;type:varchar(36)"`

	// Email is compared as an exact string; it is unique across users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	Name string `gorm:"size:255;not null"`

	// Tel is the user's phone number.
	Tel string `gorm:"size:64;not null"`

	// PasswordHash and Salt together form the stored credential. Never serialized.
	PasswordHash []byte `gorm:"not null" json:"-"`
	Salt         []byte `gorm:"not null" json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSummary is the projection returned by user listings.
type UserSummary struct {
	ID    string
	Tel   string
	Name  string
	Email string
}
