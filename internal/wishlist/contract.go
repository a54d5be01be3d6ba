//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package wishlist

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

type DBRepo interface {
	UpsertWishlistEntry(ctx context.Context, userID, topicID uuid.UUID) (*model.WishlistEntry, error)
	DeleteWishlistEntry(ctx context.Context, userID, entryID uuid.UUID) (bool, error)
	ListWishlistEntries(ctx context.Context, userID uuid.UUID) (model.WishlistEntryList, error)
}
