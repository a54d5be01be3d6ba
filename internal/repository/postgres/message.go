package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
)

var messageColumns = []string{
	"id",
	"seq",
	"topic_id",
	"author_id",
	"author_display_name",
	"author_avatar_url",
	"content",
	"created_at",
}

// SaveMessage inserts message and fills the store-assigned Seq and CreatedAt.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("topic_messages").
		Columns("id", "topic_id", "author_id", "author_display_name", "author_avatar_url", "content").
		Values(message.ID, message.TopicID, message.AuthorID, message.AuthorDisplayName, message.AuthorAvatarURL, message.Content).
		Suffix("RETURNING seq, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	var assigned struct {
		Seq       int64     `db:"seq"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err = r.Chk(ctx).GetContext(ctx, &assigned, query, args...); err != nil {
		return mapError(err, "save message")
	}

	message.Seq = assigned.Seq
	message.CreatedAt = assigned.CreatedAt

	return nil
}

// GetTopicMessages returns the whole thread of a topic, oldest first.
func (r *Repository) GetTopicMessages(ctx context.Context, topicID uuid.UUID) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("topic_messages").
		Where(sq.Eq{"topic_id": topicID}).
		OrderBy("created_at ASC", "seq ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	if err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, mapError(err, "get topic messages")
	}

	return messages, nil
}
