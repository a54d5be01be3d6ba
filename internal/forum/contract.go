//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package forum

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
	"github.com/nasafacts/community-service/internal/realtime"
)

type DBRepo interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	SaveMessage(ctx context.Context, message *model.Message) error
	GetTopicMessages(ctx context.Context, topicID uuid.UUID) (model.MessageList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type MessageLister interface {
	ListMessages(ctx context.Context, topicID uuid.UUID) (model.MessageList, error)
}

type Subscriber interface {
	Subscribe(topicID uuid.UUID, onInsert func(model.Message), opts ...realtime.SubscribeOption) *realtime.Subscription
}
