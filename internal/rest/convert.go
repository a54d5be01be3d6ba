package rest

import (
	"time"

	api "github.com/nasafacts/community-service/internal/generated"
	"github.com/nasafacts/community-service/internal/model"
	"github.com/nasafacts/community-service/internal/profile"
)

func toAPIMessage(msg model.Message) api.Message {
	return api.Message{
		Id:                msg.ID.String(),
		Seq:               msg.Seq,
		TopicId:           msg.TopicID.String(),
		AuthorId:          msg.AuthorID.String(),
		AuthorDisplayName: msg.AuthorDisplayName,
		AuthorAvatarUrl:   msg.AuthorAvatarURL,
		Content:           msg.Content,
		CreatedAt:         msg.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func toAPITopic(topic model.Topic) api.Topic {
	return api.Topic{
		Id:          topic.ID.String(),
		Date:        topic.Date.Format(time.DateOnly),
		Title:       topic.Title,
		Explanation: topic.Explanation,
		MediaUrl:    topic.MediaURL,
		HdUrl:       topic.HDURL,
		MediaType:   topic.MediaType,
		Copyright:   topic.Copyright,
	}
}

func toAPIWishlistEntry(entry model.WishlistEntry) api.WishlistEntry {
	return api.WishlistEntry{
		Id:        entry.ID.String(),
		TopicId:   entry.TopicID.String(),
		CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toAPIProfile(p model.Profile) api.Profile {
	var birthdate *string
	if p.Birthdate != nil {
		date := p.Birthdate.Format(time.DateOnly)
		birthdate = &date
	}

	return api.Profile{
		Id:          p.ID.String(),
		DisplayName: p.DisplayName,
		AvatarUrl:   p.AvatarURL,
		Role:        p.Role,
		Birthdate:   birthdate,
	}
}

func toAPIProfilePtr(p *model.Profile) *api.Profile {
	if p == nil {
		return nil
	}
	out := toAPIProfile(*p)
	return &out
}

func toAPIDisplay(d profile.Display) api.ProfileDisplay {
	return api.ProfileDisplay{
		Name:      d.Name,
		Initial:   d.Initial,
		AvatarUrl: d.AvatarURL,
	}
}
