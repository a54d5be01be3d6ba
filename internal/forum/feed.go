package forum

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/model"
	"github.com/nasafacts/community-service/internal/realtime"
)

const resyncTimeout = 10 * time.Second

// Feed opens live topic threads: history from the store followed by realtime inserts.
type Feed struct {
	lister MessageLister
	hub    Subscriber
}

func NewFeed(lister MessageLister, hub Subscriber) *Feed {
	return &Feed{
		lister: lister,
		hub:    hub,
	}
}

// Thread is one open topic view. Every message reaches onAppend at most once.
type Thread struct {
	topicID  uuid.UUID
	lister   MessageLister
	sub      *realtime.Subscription
	view     *View
	onAppend func(model.Message)

	mu      sync.Mutex
	ready   bool
	closed  bool
	pending model.MessageList
	lastErr error

	broken     chan struct{}
	brokenOnce sync.Once
}

// Open subscribes before reading history so nothing committed in between is lost;
// arrivals during the read are held back and merged after the snapshot. onAppend is
// called with the thread lock held and must not call back into the Thread.
func (f *Feed) Open(ctx context.Context, topicID uuid.UUID, onAppend func(model.Message)) (*Thread, error) {
	t := &Thread{
		topicID:  topicID,
		lister:   f.lister,
		view:     NewView(),
		onAppend: onAppend,
		broken:   make(chan struct{}),
	}

	t.sub = f.hub.Subscribe(topicID, t.handleInsert, realtime.WithResync(func() {
		go t.resync()
	}))

	history, err := f.lister.ListMessages(ctx, topicID)
	if err != nil {
		t.sub.Close()
		return nil, err
	}

	t.mu.Lock()
	t.appendLocked(history)
	t.appendLocked(t.pending)
	t.pending = nil
	t.ready = true
	t.mu.Unlock()

	return t, nil
}

// Add inserts a message known to the caller, typically the confirmed result of its
// own post. It reports whether the message was new.
func (t *Thread) Add(msg model.Message) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || msg.TopicID != t.topicID {
		return false
	}
	if !t.view.Add(msg) {
		return false
	}
	t.onAppend(msg)
	return true
}

func (t *Thread) Messages() model.MessageList {
	return t.view.Messages()
}

// Broken is closed when a resync could not re-read history. The view may then miss
// messages for good, so the consumer should drop it and open a new thread.
func (t *Thread) Broken() <-chan struct{} {
	return t.broken
}

// Err returns the last resync failure, if any.
func (t *Thread) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// Close releases the realtime subscription. It is safe to call more than once.
func (t *Thread) Close() {
	t.sub.Close()

	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
}

func (t *Thread) handleInsert(msg model.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	if !t.ready {
		t.pending = append(t.pending, msg)
		return
	}
	t.appendLocked(model.MessageList{msg})
}

// resync re-reads history after the feed lost its connection and merges whatever
// was missed.
func (t *Thread) resync() {
	ctx, cancel := context.WithTimeout(context.Background(), resyncTimeout)
	defer cancel()

	history, err := t.lister.ListMessages(ctx, t.topicID)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.lastErr = err
		t.brokenOnce.Do(func() {
			close(t.broken)
		})
		return
	}
	if t.closed || !t.ready {
		return
	}
	t.appendLocked(history)
}

func (t *Thread) appendLocked(msgs model.MessageList) {
	for _, msg := range t.view.Merge(msgs) {
		t.onAppend(msg)
	}
}
