//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package signin

import (
	"context"

	"github.com/nasafacts/community-service/internal/model"
)

type ProfileService interface {
	SignIn(ctx context.Context, identity model.Identity) (*model.Profile, error)
}
