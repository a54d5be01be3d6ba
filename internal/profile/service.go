// Package profile resolves users to the display identity shown next to their
// messages and in the navigation.
package profile

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

const (
	maxDisplayNameLength = 64
	maxAvatarURLLength   = 2048
)

var allowedProviders = []string{model.ProviderGitHub, model.ProviderGoogle}

type Service struct {
	repository DBRepo
	now        func() time.Time
}

func New(repo DBRepo) *Service {
	return &Service{
		repository: repo,
		now:        time.Now,
	}
}

// Resolve returns nil without an error when the user has no profile yet.
func (s *Service) Resolve(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	profile, err := s.repository.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}

	return profile, nil
}

// SignIn creates the profile on a user's first sign-in through an allowed provider.
func (s *Service) SignIn(ctx context.Context, identity model.Identity) (*model.Profile, error) {
	if identity.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user not found", model.ErrAuth)
	}

	hasValidIdentity := slices.ContainsFunc(identity.Providers, func(p string) bool {
		return slices.Contains(allowedProviders, p)
	})
	if !hasValidIdentity {
		return nil, fmt.Errorf("%w: no valid identity provider found (github or google)", model.ErrAuth)
	}

	profile, err := s.repository.UpsertSignInProfile(ctx, &model.Profile{
		ID:          identity.UserID,
		DisplayName: truncateRunes(strings.TrimSpace(identity.DisplayName()), maxDisplayNameLength),
		AvatarURL:   signInAvatar(identity.AvatarURL),
		Role:        model.DefaultRole,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return profile, nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) (*model.Profile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user not found", model.ErrAuth)
	}

	update.DisplayName = strings.TrimSpace(update.DisplayName)
	if update.DisplayName == "" {
		return nil, fmt.Errorf("%w: display name cannot be empty", model.ErrValidation)
	}
	if utf8.RuneCountInString(update.DisplayName) > maxDisplayNameLength {
		return nil, fmt.Errorf("%w: display name exceeds %d characters", model.ErrValidation, maxDisplayNameLength)
	}
	if update.Birthdate != nil && update.Birthdate.After(s.now()) {
		return nil, fmt.Errorf("%w: birthdate is in the future", model.ErrValidation)
	}

	profile, err := s.repository.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:limit]))
}

// signInAvatar drops an avatar URL that is too long to store; a cut URL would not load.
// An empty avatar leaves the stored one untouched.
func signInAvatar(url string) string {
	if len(url) > maxAvatarURLLength {
		return ""
	}
	return url
}

// Display is what the navigation shows for a user.
type Display struct {
	Name      string
	Initial   string
	AvatarURL string
}

// DisplayFor prefers the stored profile and falls back to the identity provider's data
// when the profile is missing or incomplete.
func DisplayFor(p *model.Profile, identity model.Identity) Display {
	var d Display
	if p != nil {
		d.Name = p.DisplayName
		d.AvatarURL = p.AvatarURL
	}
	if d.Name == "" {
		d.Name = identity.DisplayName()
	}
	if d.Name == "" {
		d.Name = identity.Email
	}
	if d.AvatarURL == "" {
		d.AvatarURL = identity.AvatarURL
	}

	if r, _ := utf8.DecodeRuneInString(d.Name); r != utf8.RuneError {
		d.Initial = string(unicode.ToUpper(r))
	}

	return d
}
