// Package wishlist manages the membership of topics in a user's wishlist.
package wishlist

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

type Manager struct {
	repository DBRepo
}

func New(repo DBRepo) *Manager {
	return &Manager{repository: repo}
}

// Add puts topicID on the user's wishlist. Adding the same topic again returns the
// existing entry.
func (m *Manager) Add(ctx context.Context, userID, topicID uuid.UUID) (*model.WishlistEntry, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: no authenticated user", model.ErrAuth)
	}
	if topicID == uuid.Nil {
		return nil, fmt.Errorf("%w: topic id is required", model.ErrValidation)
	}

	entry, err := m.repository.UpsertWishlistEntry(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	return entry, nil
}

// Remove deletes the entry if it exists and belongs to userID. Removing an unknown
// entry succeeds without changes.
func (m *Manager) Remove(ctx context.Context, userID, entryID uuid.UUID) error {
	if userID == uuid.Nil {
		return fmt.Errorf("%w: no authenticated user", model.ErrAuth)
	}

	if _, err := m.repository.DeleteWishlistEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("failed to remove wishlist entry: %w", err)
	}

	return nil
}

// List returns the user's entries, newest first.
func (m *Manager) List(ctx context.Context, userID uuid.UUID) (model.WishlistEntryList, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: no authenticated user", model.ErrAuth)
	}

	entries, err := m.repository.ListWishlistEntries(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist entries: %w", err)
	}
	if entries == nil {
		entries = model.WishlistEntryList{}
	}

	return entries, nil
}
