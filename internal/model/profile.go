package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultRole = "user"

	ProviderGitHub = "github"
	ProviderGoogle = "google"
)

type Profile struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	DisplayName string     `db:"display_name" json:"display_name"`
	AvatarURL   string     `db:"avatar_url" json:"avatar_url"`
	Role        string     `db:"role" json:"role"`
	Birthdate   *time.Time `db:"birthdate" json:"birthdate,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// Identity is what the identity provider knows about a signed-in user.
type Identity struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Providers []string  `json:"providers"`
	Name      string    `json:"name"`
	UserName  string    `json:"user_name"`
	AvatarURL string    `json:"avatar_url"`
}

// DisplayName picks the provider-supplied name, falling back to the handle.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.UserName
}

type ProfileUpdate struct {
	DisplayName string
	Birthdate   *time.Time
}
