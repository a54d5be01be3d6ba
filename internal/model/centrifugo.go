package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TopicChannelPrefix = "topic:"

// TopicChannel is the Centrifugo channel carrying new messages of one topic.
func TopicChannel(topicID uuid.UUID) string {
	return TopicChannelPrefix + topicID.String()
}

type CentrifugoEvent struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

type CentrifugoEventParams struct {
	Channel string  `json:"channel"`
	Data    Message `json:"data"`
}

type CentrifugoConnectClaims struct {
	jwt.RegisteredClaims
}

type CentrifugoSubscribeClaims struct {
	jwt.RegisteredClaims

	Channel string `json:"channel"`
	Client  string `json:"client,omitempty"`

	UserID  string `json:"user_id"`
	TopicID string `json:"topic_id"`
}

// AccessClaims are issued by the identity provider and verified on every request.
type AccessClaims struct {
	jwt.RegisteredClaims

	Email     string   `json:"email,omitempty"`
	Providers []string `json:"providers,omitempty"`
	Name      string   `json:"name,omitempty"`
	UserName  string   `json:"user_name,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
}
