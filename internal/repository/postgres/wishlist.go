package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

// UpsertWishlistEntry returns the entry for (userID, topicID), creating it when absent.
// The no-op update makes RETURNING yield the existing row on conflict.
func (r *Repository) UpsertWishlistEntry(ctx context.Context, userID, topicID uuid.UUID) (*model.WishlistEntry, error) {
	query, args, err := sq.Insert("wishlist_entries").
		Columns("user_id", "topic_id").
		Values(userID, topicID).
		Suffix("ON CONFLICT (user_id, topic_id) DO UPDATE SET user_id = EXCLUDED.user_id RETURNING id, user_id, topic_id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var entry model.WishlistEntry
	if err = r.Chk(ctx).GetContext(ctx, &entry, query, args...); err != nil {
		return nil, mapError(err, "upsert wishlist entry")
	}

	return &entry, nil
}

// DeleteWishlistEntry removes the entry only when it belongs to userID.
func (r *Repository) DeleteWishlistEntry(ctx context.Context, userID, entryID uuid.UUID) (bool, error) {
	query, args, err := sq.Delete("wishlist_entries").
		Where(sq.And{
			sq.Eq{"id": entryID},
			sq.Eq{"user_id": userID},
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %v", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return false, mapError(err, "delete wishlist entry")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, mapError(err, "delete wishlist entry")
	}

	return affected > 0, nil
}

func (r *Repository) ListWishlistEntries(ctx context.Context, userID uuid.UUID) (model.WishlistEntryList, error) {
	query, args, err := sq.Select("id", "user_id", "topic_id", "created_at").
		From("wishlist_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	entries := model.WishlistEntryList{}
	if err = r.Chk(ctx).SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, mapError(err, "list wishlist entries")
	}

	return entries, nil
}
