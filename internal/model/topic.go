package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultGalleryLimit = 16
	MaxGalleryLimit     = 100
)

type TopicList []Topic

// Topic is one day's picture. It is owned by the ingestion side and is read-only here.
type Topic struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Date           time.Time `db:"date" json:"date"`
	Title          string    `db:"title" json:"title"`
	Explanation    string    `db:"explanation" json:"explanation"`
	MediaURL       string    `db:"media_url" json:"media_url"`
	HDURL          *string   `db:"hd_url" json:"hd_url,omitempty"`
	MediaType      string    `db:"media_type" json:"media_type"`
	Copyright      *string   `db:"copyright" json:"copyright,omitempty"`
	ServiceVersion *string   `db:"service_version" json:"service_version,omitempty"`
}
