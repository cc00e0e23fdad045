package models

import "time"

// ShareLink maps a public random hash to a user, granting unauthenticated
// read access to that user's entire content collection. The unique index on
// UserID enforces at most one active link per user at the store level.
//
// Deletions are hard deletes: a disabled link must free the unique user slot
// immediately so sharing can be re-enabled with a fresh hash.
type ShareLink struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"uniqueIndex;type:varchar(36)"`
	Hash      string    `json:"hash" gorm:"uniqueIndex;type:varchar(32)"`
	CreatedAt time.Time `json:"createdAt"`
}
