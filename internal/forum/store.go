// Package forum holds the per-topic discussion: the message store client and the
// composition of history reads with the realtime feed.
package forum

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

type Store struct {
	repository DBRepo
}

func NewStore(repo DBRepo) *Store {
	return &Store{repository: repo}
}

// PostMessage appends one message to the topic thread, copying the author's current
// display name and avatar onto it.
func (s *Store) PostMessage(ctx context.Context, topicID, authorID uuid.UUID, content string) (*model.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", model.ErrValidation)
	}
	if utf8.RuneCountInString(content) > model.MaxMessageLength {
		return nil, fmt.Errorf("%w: content exceeds maximum length of %d characters", model.ErrValidation, model.MaxMessageLength)
	}
	if topicID == uuid.Nil {
		return nil, fmt.Errorf("%w: topic id is required", model.ErrValidation)
	}
	if authorID == uuid.Nil {
		return nil, fmt.Errorf("%w: no authenticated user", model.ErrAuth)
	}

	var message model.Message
	err := s.repository.WithTx(ctx, func(ctx context.Context) error {
		profile, err := s.repository.GetProfile(ctx, authorID)
		if err != nil {
			return fmt.Errorf("failed to get profile: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("%w: profile not found", model.ErrAuth)
		}

		message = model.Message{
			ID:                uuid.New(),
			TopicID:           topicID,
			AuthorID:          authorID,
			AuthorDisplayName: profile.DisplayName,
			AuthorAvatarURL:   profile.AvatarURL,
			Content:           content,
		}

		if err = s.repository.SaveMessage(ctx, &message); err != nil {
			return fmt.Errorf("failed to save message: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &message, nil
}

// ListMessages returns the topic thread oldest first. An empty thread is not an error.
func (s *Store) ListMessages(ctx context.Context, topicID uuid.UUID) (model.MessageList, error) {
	if topicID == uuid.Nil {
		return nil, fmt.Errorf("%w: topic id is required", model.ErrValidation)
	}

	messages, err := s.repository.GetTopicMessages(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	if messages == nil {
		messages = model.MessageList{}
	}

	return messages, nil
}
