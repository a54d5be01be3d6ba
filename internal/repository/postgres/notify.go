package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/nasafacts/community-service/internal/config"
	"github.com/nasafacts/community-service/internal/model"
)

const listenerPingInterval = 90 * time.Second

// NotifySource turns LISTEN notifications of the message insert trigger into change
// events. Notifications arrive in commit order.
type NotifySource struct {
	listener *pq.Listener
	logger   logger_lib.LoggerInterface
}

func NewNotifySource(cfg *config.Config, logger logger_lib.LoggerInterface) (*NotifySource, error) {
	listener := pq.NewListener(
		ConnString(cfg),
		cfg.Realtime.MinReconnectInterval,
		cfg.Realtime.MaxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				logger.Warn(fmt.Sprintf("pq listener event %d: %v", ev, err))
			}
		},
	)

	if err := listener.Listen(cfg.Realtime.NotifyChannel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("failed to listen on %s: %w", cfg.Realtime.NotifyChannel, err)
	}

	return &NotifySource{
		listener: listener,
		logger:   logger,
	}, nil
}

// Events forwards notifications until ctx is done, then closes the listener.
// pq signals a re-established connection with a nil notification; it is forwarded
// as a Reconnected event because inserts committed meanwhile were not delivered.
func (s *NotifySource) Events(ctx context.Context) <-chan model.ChangeEvent {
	out := make(chan model.ChangeEvent)

	go func() {
		defer close(out)
		defer func() {
			_ = s.listener.Close()
		}()

		ticker := time.NewTicker(listenerPingInterval)
		defer ticker.Stop()

		for {
			var ev model.ChangeEvent

			select {
			case <-ctx.Done():
				return
			case n, ok := <-s.listener.Notify:
				if !ok {
					return
				}
				if n == nil {
					ev = model.ChangeEvent{Reconnected: true}
				} else {
					ev = model.ChangeEvent{Payload: []byte(n.Extra)}
				}
			case <-ticker.C:
				if err := s.listener.Ping(); err != nil {
					s.logger.Warn(fmt.Sprintf("pq listener ping failed: %v", err))
				}
				continue
			}

			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
