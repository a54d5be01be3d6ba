package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

var profileColumns = []string{
	"id",
	"display_name",
	"avatar_url",
	"role",
	"birthdate",
	"created_at",
	"updated_at",
}

// GetProfile returns nil without an error when the profile does not exist.
func (r *Repository) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	query, args, err := sq.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var profile model.Profile
	err = r.Chk(ctx).GetContext(ctx, &profile, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, "get profile")
	}

	return &profile, nil
}

// UpsertSignInProfile creates the profile on first sign-in. Later sign-ins only
// refresh a non-empty avatar so that names edited by the user are kept.
func (r *Repository) UpsertSignInProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	query, args, err := sq.Insert("profiles").
		Columns("id", "display_name", "avatar_url", "role").
		Values(profile.ID, profile.DisplayName, profile.AvatarURL, profile.Role).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"avatar_url = COALESCE(NULLIF(EXCLUDED.avatar_url, ''), profiles.avatar_url), " +
			"updated_at = now() " +
			"RETURNING id, display_name, avatar_url, role, birthdate, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var stored model.Profile
	if err = r.Chk(ctx).GetContext(ctx, &stored, query, args...); err != nil {
		return nil, mapError(err, "upsert profile")
	}

	return &stored, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) (*model.Profile, error) {
	query, args, err := sq.Update("profiles").
		Set("display_name", update.DisplayName).
		Set("birthdate", update.Birthdate).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING id, display_name, avatar_url, role, birthdate, created_at, updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var profile model.Profile
	err = r.Chk(ctx).GetContext(ctx, &profile, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %s: %w", userID, model.ErrNotFound)
	}
	if err != nil {
		return nil, mapError(err, "update profile")
	}

	return &profile, nil
}
