package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

var topicColumns = []string{
	"id",
	"date",
	"title",
	"explanation",
	"media_url",
	"hd_url",
	"media_type",
	"copyright",
	"service_version",
}

func (r *Repository) ListTopics(ctx context.Context, limit uint64) (model.TopicList, error) {
	query, args, err := sq.Select(topicColumns...).
		From("topics").
		OrderBy("date DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	topics := model.TopicList{}
	if err = r.Chk(ctx).SelectContext(ctx, &topics, query, args...); err != nil {
		return nil, mapError(err, "list topics")
	}

	return topics, nil
}

func (r *Repository) GetTopic(ctx context.Context, topicID uuid.UUID) (*model.Topic, error) {
	return r.getTopic(ctx, sq.Eq{"id": topicID})
}

func (r *Repository) GetTopicByDate(ctx context.Context, date time.Time) (*model.Topic, error) {
	return r.getTopic(ctx, sq.Eq{"date": date.Format(time.DateOnly)})
}

func (r *Repository) getTopic(ctx context.Context, where sq.Eq) (*model.Topic, error) {
	query, args, err := sq.Select(topicColumns...).
		From("topics").
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var topic model.Topic
	err = r.Chk(ctx).GetContext(ctx, &topic, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("topic: %w", model.ErrNotFound)
	}
	if err != nil {
		return nil, mapError(err, "get topic")
	}

	return &topic, nil
}
