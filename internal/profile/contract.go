//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

type DBRepo interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	UpsertSignInProfile(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) (*model.Profile, error)
}
