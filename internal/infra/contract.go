//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package infra

import "github.com/nasafacts/community-service/internal/model"

type AccessVerifier interface {
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}
