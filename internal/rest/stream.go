package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/nasafacts/community-service/internal/config"
	api "github.com/nasafacts/community-service/internal/generated"
	"github.com/nasafacts/community-service/internal/model"
)

const (
	eventMessage   = "message"
	eventHeartbeat = "heartbeat"
	eventResync    = "resync"

	defaultHeartbeat = 30 * time.Second
	writeTimeout     = 60 * time.Second
)

// StreamTopicMessages sends the thread snapshot followed by live inserts as
// server-sent events. A client that cannot keep up receives a resync event and is
// disconnected; reconnecting re-reads the snapshot.
func (h *Handler) StreamTopicMessages(w http.ResponseWriter, r *http.Request, topicId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StreamTopicMessages")

	topicID, err := parseID(topicId, "topic_id")
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	out := newOutbox()
	thread, err := h.feed.Open(r.Context(), topicID, out.push)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open topic %s: %v", topicID, err))
		h.writeDomainError(w, err)
		return
	}
	defer thread.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	if err := rc.Flush(); err != nil {
		logger.Error(fmt.Sprintf("streaming not supported: %v", err))
		return
	}

	flush := func() bool {
		msgs, overflowed := out.drain()
		for _, msg := range msgs {
			if err := sendEvent(w, rc, eventMessage, toAPIMessage(msg)); err != nil {
				return false
			}
		}
		if overflowed {
			logger.Warn(fmt.Sprintf("stream subscriber of topic %s fell behind, requesting resync", topicID))
			_ = sendEvent(w, rc, eventResync, api.Error{Error: "subscriber fell behind"})
			return false
		}
		return true
	}

	if !flush() {
		return
	}
	out.setLimit(h.stream.SubscriberBuffer)

	interval := h.stream.HeartbeatInterval
	if interval <= 0 {
		interval = defaultHeartbeat
	}
	heartbeat := time.NewTicker(interval)
	defer heartbeat.Stop()

	for {
		select {
		case <-out.signal:
			if !flush() {
				return
			}
		case now := <-heartbeat.C:
			if err := sendEvent(w, rc, eventHeartbeat, map[string]int64{"ts": now.Unix()}); err != nil {
				return
			}
		case <-thread.Broken():
			logger.Warn(fmt.Sprintf("topic %s lost live updates, requesting resync: %v", topicID, thread.Err()))
			_ = sendEvent(w, rc, eventResync, api.Error{Error: "live updates interrupted"})
			return
		case <-r.Context().Done():
			return
		}
	}
}

func sendEvent(w http.ResponseWriter, rc *http.ResponseController, eventType string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal event data: %w", err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventType, jsonData); err != nil {
		return err
	}

	if err := rc.Flush(); err != nil {
		return err
	}

	// Not every ResponseWriter supports deadlines.
	_ = rc.SetWriteDeadline(time.Now().Add(writeTimeout))

	return nil
}

// outbox queues messages between the feed callback, which must not block, and the
// connection writer. Once limit messages are pending the outbox gives up and only
// reports the overflow.
type outbox struct {
	mu         sync.Mutex
	items      model.MessageList
	limit      int
	overflowed bool
	signal     chan struct{}
}

func newOutbox() *outbox {
	return &outbox{signal: make(chan struct{}, 1)}
}

func (o *outbox) push(msg model.Message) {
	o.mu.Lock()
	switch {
	case o.overflowed:
	case o.limit > 0 && len(o.items) >= o.limit:
		o.overflowed = true
		o.items = nil
	default:
		o.items = append(o.items, msg)
	}
	o.mu.Unlock()

	select {
	case o.signal <- struct{}{}:
	default:
	}
}

func (o *outbox) drain() (model.MessageList, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	items := o.items
	o.items = nil
	return items, o.overflowed
}

// setLimit bounds the queue. Zero means unbounded.
func (o *outbox) setLimit(limit int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.limit = limit
}
