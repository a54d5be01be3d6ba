package model

import (
	"time"

	"github.com/google/uuid"
)

type WishlistEntryList []WishlistEntry

// WishlistEntry is unique per (UserID, TopicID).
type WishlistEntry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	TopicID   uuid.UUID `db:"topic_id" json:"topic_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
