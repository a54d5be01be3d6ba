package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const MaxMessageLength = 500

type MessageList []Message

// Message is immutable once stored. Author name and avatar are copied from the
// profile at write time and never refreshed.
type Message struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Seq               int64     `db:"seq" json:"seq"`
	TopicID           uuid.UUID `db:"topic_id" json:"topic_id"`
	AuthorID          uuid.UUID `db:"author_id" json:"author_id"`
	AuthorDisplayName string    `db:"author_display_name" json:"author_display_name"`
	AuthorAvatarURL   string    `db:"author_avatar_url" json:"author_avatar_url"`
	Content           string    `db:"content" json:"content"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// DecodeMessageRow converts a row_to_json payload of topic_messages into a Message.
// Unknown columns and missing keys are rejected.
func DecodeMessageRow(payload []byte) (Message, error) {
	var row struct {
		ID                *uuid.UUID `json:"id"`
		Seq               *int64     `json:"seq"`
		TopicID           *uuid.UUID `json:"topic_id"`
		AuthorID          *uuid.UUID `json:"author_id"`
		AuthorDisplayName *string    `json:"author_display_name"`
		AuthorAvatarURL   *string    `json:"author_avatar_url"`
		Content           *string    `json:"content"`
		CreatedAt         *time.Time `json:"created_at"`
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&row); err != nil {
		return Message{}, fmt.Errorf("failed to decode message row: %w", err)
	}

	switch {
	case row.ID == nil || *row.ID == uuid.Nil:
		return Message{}, fmt.Errorf("message row: missing id")
	case row.Seq == nil:
		return Message{}, fmt.Errorf("message row %s: missing seq", row.ID)
	case row.TopicID == nil || *row.TopicID == uuid.Nil:
		return Message{}, fmt.Errorf("message row %s: missing topic_id", row.ID)
	case row.AuthorID == nil:
		return Message{}, fmt.Errorf("message row %s: missing author_id", row.ID)
	case row.Content == nil:
		return Message{}, fmt.Errorf("message row %s: missing content", row.ID)
	case row.CreatedAt == nil || row.CreatedAt.IsZero():
		return Message{}, fmt.Errorf("message row %s: missing created_at", row.ID)
	}

	msg := Message{
		ID:        *row.ID,
		Seq:       *row.Seq,
		TopicID:   *row.TopicID,
		AuthorID:  *row.AuthorID,
		Content:   *row.Content,
		CreatedAt: *row.CreatedAt,
	}
	if row.AuthorDisplayName != nil {
		msg.AuthorDisplayName = *row.AuthorDisplayName
	}
	if row.AuthorAvatarURL != nil {
		msg.AuthorAvatarURL = *row.AuthorAvatarURL
	}

	return msg, nil
}

// ChangeEvent is one notification from the store change feed. Reconnected is set when
// the feed connection was re-established and inserts may have been missed.
type ChangeEvent struct {
	Payload     []byte
	Reconnected bool
}
