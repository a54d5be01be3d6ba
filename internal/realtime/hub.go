// Package realtime fans out newly inserted messages to per-topic subscribers.
//
// A single goroutine drives the Hub from a change feed, so callbacks of one
// subscription observe inserts in the order the store committed them. Inserts
// that happened before Subscribe returned are never redelivered; the caller
// backfills history from the store and de-duplicates by message id.
package realtime

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/nasafacts/community-service/internal/model"
)

type Hub struct {
	mu      sync.RWMutex
	topics  map[uuid.UUID]map[uint64]*Subscription
	nextID  uint64
	logger  logger_lib.LoggerInterface
	metrics pkg.MetricInterface
}

const (
	metricDispatched = "realtime.change_event.dispatched"
	metricRejected   = "realtime.change_event.rejected"
	metricResync     = "realtime.resync"
)

type HubOption func(*Hub)

// WithMetrics counts dispatched and rejected change events and resyncs.
func WithMetrics(metrics pkg.MetricInterface) HubOption {
	return func(h *Hub) {
		h.metrics = metrics
	}
}

type Subscription struct {
	hub      *Hub
	id       uint64
	topicID  uuid.UUID
	onInsert func(model.Message)
	onResync func()

	// dispatchMu is held while a callback runs so Close can wait for it.
	dispatchMu sync.Mutex
	closed     atomic.Bool
	once       sync.Once
}

type SubscribeOption func(*Subscription)

// WithResync registers fn to run when the change feed reconnected and inserts
// may have been missed.
func WithResync(fn func()) SubscribeOption {
	return func(s *Subscription) {
		s.onResync = fn
	}
}

func NewHub(logger logger_lib.LoggerInterface, opts ...HubOption) *Hub {
	h := &Hub{
		topics: make(map[uuid.UUID]map[uint64]*Subscription),
		logger: logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Subscribe registers onInsert for messages of topicID. Every Subscribe must be
// paired with exactly one Close.
func (h *Hub) Subscribe(topicID uuid.UUID, onInsert func(model.Message), opts ...SubscribeOption) *Subscription {
	sub := &Subscription{
		hub:      h,
		topicID:  topicID,
		onInsert: onInsert,
	}
	for _, opt := range opts {
		opt(sub)
	}

	h.mu.Lock()
	h.nextID++
	sub.id = h.nextID
	subs, ok := h.topics[topicID]
	if !ok {
		subs = make(map[uint64]*Subscription)
		h.topics[topicID] = subs
	}
	subs[sub.id] = sub
	h.mu.Unlock()

	return sub
}

// Subscribers reports the number of open subscriptions for topicID.
func (h *Hub) Subscribers(topicID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topicID])
}

// Dispatch delivers msg to the subscribers of its topic.
func (h *Hub) Dispatch(msg model.Message) {
	for _, sub := range h.snapshot(msg.TopicID) {
		sub.deliver(func() {
			sub.onInsert(msg)
		})
	}
	h.increment(metricDispatched)
}

// Resync notifies every subscription that registered a resync hook.
func (h *Hub) Resync() {
	h.mu.RLock()
	var subs []*Subscription
	for _, topicSubs := range h.topics {
		for _, sub := range topicSubs {
			if sub.onResync != nil {
				subs = append(subs, sub)
			}
		}
	}
	h.mu.RUnlock()

	h.increment(metricResync)
	for _, sub := range subs {
		sub.deliver(sub.onResync)
	}
}

// Run consumes events until the channel is closed or ctx is done. Rows that do not
// decode into a Message are logged and skipped.
func (h *Hub) Run(ctx context.Context, events <-chan model.ChangeEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			if ev.Reconnected {
				h.logger.Warn("change feed reconnected, resyncing subscribers")
				h.Resync()
				continue
			}

			msg, err := model.DecodeMessageRow(ev.Payload)
			if err != nil {
				h.increment(metricRejected)
				h.logger.Error(fmt.Sprintf("rejected change event: %v", err))
				continue
			}

			h.Dispatch(msg)
		}
	}
}

func (h *Hub) increment(name string) {
	if h.metrics != nil {
		h.metrics.Increment(name)
	}
}

func (h *Hub) snapshot(topicID uuid.UUID) []*Subscription {
	h.mu.RLock()
	defer h.mu.RUnlock()

	subs := h.topics[topicID]
	if len(subs) == 0 {
		return nil
	}

	out := make([]*Subscription, 0, len(subs))
	for _, sub := range subs {
		out = append(out, sub)
	}
	return out
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.topics[sub.topicID]
	delete(subs, sub.id)
	if len(subs) == 0 {
		delete(h.topics, sub.topicID)
	}
}

// Close releases the subscription. It is safe to call more than once. Once Close
// returns no callback of this subscription is running or will start. Close must not
// be called from inside the subscription's own callback.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.closed.Store(true)
		s.hub.remove(s)

		s.dispatchMu.Lock()
		//nolint:staticcheck // waits for an in-flight callback
		s.dispatchMu.Unlock()
	})
}

func (s *Subscription) deliver(fn func()) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	if s.closed.Load() {
		return
	}
	fn()
}
