// Package topic serves the read-only catalogue of daily pictures that threads hang off.
package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

type Catalog struct {
	repository DBRepo
	now        func() time.Time
}

func New(repo DBRepo) *Catalog {
	return &Catalog{
		repository: repo,
		now:        time.Now,
	}
}

// List returns the newest topics first. A nil limit means the gallery default and
// limits above the maximum are clamped.
func (c *Catalog) List(ctx context.Context, limit *int) (model.TopicList, error) {
	n := model.DefaultGalleryLimit
	if limit != nil {
		n = *limit
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: limit must be positive", model.ErrValidation)
	}
	n = min(n, model.MaxGalleryLimit)

	topics, err := c.repository.ListTopics(ctx, uint64(n))
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	if topics == nil {
		topics = model.TopicList{}
	}

	return topics, nil
}

func (c *Catalog) Get(ctx context.Context, topicID uuid.UUID) (*model.Topic, error) {
	if topicID == uuid.Nil {
		return nil, fmt.Errorf("%w: topic id is required", model.ErrValidation)
	}

	topic, err := c.repository.GetTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	return topic, nil
}

// Today returns the topic for the current UTC calendar date.
func (c *Catalog) Today(ctx context.Context) (*model.Topic, error) {
	y, m, d := c.now().UTC().Date()

	topic, err := c.repository.GetTopicByDate(ctx, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's topic: %w", err)
	}

	return topic, nil
}
