// Package forumapi is an HTTP client for the topic discussion endpoints.
package forumapi

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	api "github.com/nasafacts/community-service/internal/generated"
	"github.com/nasafacts/community-service/internal/model"
)

const maxEventSize = 1 << 20

// ErrResync is returned by Stream when the server dropped the subscription because
// the client fell behind. Reopening the stream re-reads the snapshot.
var ErrResync = errors.New("stream requires resync")

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New returns a client for baseURL. An empty token makes anonymous requests.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: httpClient,
	}
}

func (c *Client) PostMessage(ctx context.Context, topicID uuid.UUID, content string) (*model.Message, error) {
	jsonData, err := json.Marshal(api.SendMessageRequest{Content: content})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var response api.SendMessageResponse
	if err := c.do(ctx, http.MethodPost, c.messagesURL(topicID), bytes.NewReader(jsonData), &response); err != nil {
		return nil, err
	}

	msg, err := fromAPIMessage(response.Message)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) ListMessages(ctx context.Context, topicID uuid.UUID) (model.MessageList, error) {
	var response api.GetTopicMessagesResponse
	if err := c.do(ctx, http.MethodGet, c.messagesURL(topicID), nil, &response); err != nil {
		return nil, err
	}

	messages := make(model.MessageList, 0, len(response.Messages))
	for _, m := range response.Messages {
		msg, err := fromAPIMessage(m)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// Stream delivers the snapshot and then live messages of a topic to onMessage until
// ctx is done, the server closes the stream or it asks for a resync.
func (c *Client) Stream(ctx context.Context, topicID uuid.UUID, onMessage func(model.Message)) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.messagesURL(topicID)+"/stream", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var event, data string
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case line == "":
			if err := dispatch(event, data, onMessage); err != nil {
				return err
			}
			event, data = "", ""
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data != "" {
				data += "\n"
			}
			data += strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " ")
		}
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stream: %w", err)
	}
	return io.EOF
}

func dispatch(event, data string, onMessage func(model.Message)) error {
	switch event {
	case "message":
		var m api.Message
		if err := json.Unmarshal([]byte(data), &m); err != nil {
			return fmt.Errorf("failed to decode message event: %w", err)
		}
		msg, err := fromAPIMessage(m)
		if err != nil {
			return err
		}
		onMessage(msg)
	case "resync":
		return ErrResync
	}
	return nil
}

func (c *Client) messagesURL(topicID uuid.UUID) string {
	return fmt.Sprintf("%s/api/topics/%s/messages", c.baseURL, topicID)
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader, out any) error {
	req, err := c.newRequest(ctx, method, url, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError maps an error response back onto the model taxonomy.
func decodeError(resp *http.Response) error {
	var body api.Error
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}

	var kind error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		kind = model.ErrValidation
	case http.StatusUnauthorized:
		kind = model.ErrAuth
	case http.StatusForbidden:
		kind = model.ErrForbidden
	case http.StatusNotFound:
		kind = model.ErrNotFound
	default:
		kind = model.ErrStore
	}
	if body.Error == kind.Error() {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, body.Error)
}

func fromAPIMessage(m api.Message) (model.Message, error) {
	id, err := uuid.Parse(m.Id)
	if err != nil {
		return model.Message{}, fmt.Errorf("message id %q: %w", m.Id, err)
	}
	topicID, err := uuid.Parse(m.TopicId)
	if err != nil {
		return model.Message{}, fmt.Errorf("message %s topic_id: %w", id, err)
	}
	authorID, err := uuid.Parse(m.AuthorId)
	if err != nil {
		return model.Message{}, fmt.Errorf("message %s author_id: %w", id, err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, m.CreatedAt)
	if err != nil {
		return model.Message{}, fmt.Errorf("message %s created_at: %w", id, err)
	}

	return model.Message{
		ID:                id,
		Seq:               m.Seq,
		TopicID:           topicID,
		AuthorID:          authorID,
		AuthorDisplayName: m.AuthorDisplayName,
		AuthorAvatarURL:   m.AuthorAvatarUrl,
		Content:           m.Content,
		CreatedAt:         createdAt,
	}, nil
}
