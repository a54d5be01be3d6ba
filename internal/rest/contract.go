//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/forum"
	api "github.com/nasafacts/community-service/internal/generated"
	"github.com/nasafacts/community-service/internal/model"
)

type MessageStore interface {
	PostMessage(ctx context.Context, topicID, authorID uuid.UUID, content string) (*model.Message, error)
	ListMessages(ctx context.Context, topicID uuid.UUID) (model.MessageList, error)
}

type ThreadOpener interface {
	Open(ctx context.Context, topicID uuid.UUID, onAppend func(model.Message)) (*forum.Thread, error)
}

type TopicCatalog interface {
	List(ctx context.Context, limit *int) (model.TopicList, error)
	Get(ctx context.Context, topicID uuid.UUID) (*model.Topic, error)
	Today(ctx context.Context) (*model.Topic, error)
}

type Wishlist interface {
	Add(ctx context.Context, userID, topicID uuid.UUID) (*model.WishlistEntry, error)
	Remove(ctx context.Context, userID, entryID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) (model.WishlistEntryList, error)
}

type Profiles interface {
	Resolve(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	SignIn(ctx context.Context, identity model.Identity) (*model.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) (*model.Profile, error)
}

type CentrifugeClient interface {
	PublishMessage(ctx context.Context, msg model.Message) error
}

type Validator interface {
	ValidateSendMessage(req *api.SendMessageRequest) error
	ValidateUpdateProfile(req *api.UpdateProfileRequest) (model.ProfileUpdate, error)
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID string, topicID uuid.UUID) (string, int64, error)
}
