//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package topic

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

type DBRepo interface {
	ListTopics(ctx context.Context, limit uint64) (model.TopicList, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error)
	GetTopicByDate(ctx context.Context, date time.Time) (*model.Topic, error)
}
