// Package submission drives a single message form: at most one post in flight,
// input cleared on success and kept on failure.
package submission

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/nasafacts/community-service/internal/model"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// PostFunc sends content and returns the stored message.
type PostFunc func(ctx context.Context, content string) (*model.Message, error)

type Controller struct {
	post      PostFunc
	onSuccess func(model.Message)
	onFailure func(error)

	mu        sync.Mutex
	state     State
	input     string
	notice    error
	discarded bool
	inflight  sync.WaitGroup
}

type Option func(*Controller)

// OnSuccess is called with the stored message once a post succeeds.
func OnSuccess(fn func(model.Message)) Option {
	return func(c *Controller) {
		c.onSuccess = fn
	}
}

// OnFailure is called with the reason of a failed post.
func OnFailure(fn func(error)) Option {
	return func(c *Controller) {
		c.onFailure = fn
	}
}

func New(post PostFunc, opts ...Option) *Controller {
	c := &Controller{post: post}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) SetInput(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = content
}

func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Notice returns the error shown to the user, nil when there is none.
func (c *Controller) Notice() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

func (c *Controller) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = nil
}

// Submit starts posting the current input and reports whether it did. A submit while
// another one is in flight is swallowed, as is empty input, which only sets a notice.
// Once started, the post runs to completion even if ctx is canceled.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if c.discarded || c.state == StateSubmitting {
		c.mu.Unlock()
		return false
	}

	content := strings.TrimSpace(c.input)
	if content == "" {
		c.notice = fmt.Errorf("%w: content cannot be empty", model.ErrValidation)
		c.mu.Unlock()
		return false
	}

	c.state = StateSubmitting
	c.notice = nil
	c.inflight.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.inflight.Done()
		msg, err := c.post(context.WithoutCancel(ctx), content)
		c.finish(msg, err)
	}()

	return true
}

// Wait blocks until the in-flight post, if any, has completed.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Discard detaches the controller from its view. A post still in flight completes
// but its result is dropped.
func (c *Controller) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.discarded = true
}

func (c *Controller) finish(msg *model.Message, err error) {
	c.mu.Lock()
	if c.discarded {
		c.mu.Unlock()
		return
	}

	c.state = StateIdle
	if err == nil && msg == nil {
		err = fmt.Errorf("%w: empty response", model.ErrStore)
	}
	if err != nil {
		c.notice = err
	} else {
		c.input = ""
	}
	onSuccess, onFailure := c.onSuccess, c.onFailure
	c.mu.Unlock()

	switch {
	case err != nil && onFailure != nil:
		onFailure(err)
	case err == nil && onSuccess != nil:
		onSuccess(*msg)
	}
}
