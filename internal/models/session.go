package models

import "time"

// Session tracks one authenticated login. The access token is stored only as
// a SHA-256 hash; LastActivityAt is stamped on every protected request and a
// session whose idle time exceeds the configured timeout is deleted, which
// forces a full logout.
type Session struct {
	Base
	UserID         string    `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash      string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	LastActivityAt time.Time `gorm:"not null" json:"last_activity_at"`
}
