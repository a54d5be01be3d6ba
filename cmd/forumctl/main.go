// Command forumctl follows a topic thread in the terminal and posts every line read
// from stdin as a message.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/nasafacts/community-service/internal/client/forumapi"
	"github.com/nasafacts/community-service/internal/forum"
	"github.com/nasafacts/community-service/internal/model"
	"github.com/nasafacts/community-service/internal/submission"
)

const reconnectDelay = 2 * time.Second

func main() {
	baseURL := flag.String("addr", "http://localhost:8080", "service base URL")
	topic := flag.String("topic", "", "topic id to follow")
	token := flag.String("token", os.Getenv("FORUM_TOKEN"), "access token, required for posting")
	flag.Parse()

	topicID, err := uuid.Parse(*topic)
	if err != nil {
		log.Fatalf("invalid -topic: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := forumapi.New(*baseURL, *token, nil)
	view := forum.NewView()

	show := func(msg model.Message) {
		if view.Add(msg) {
			fmt.Printf("[%s] %s: %s\n", msg.CreatedAt.Local().Format(time.Kitchen), msg.AuthorDisplayName, msg.Content)
		}
	}

	go follow(ctx, client, topicID, show)

	form := submission.New(
		func(ctx context.Context, content string) (*model.Message, error) {
			return client.PostMessage(ctx, topicID, content)
		},
		submission.OnSuccess(show),
		submission.OnFailure(func(err error) {
			fmt.Fprintf(os.Stderr, "not sent: %v\n", err)
		}),
	)
	defer form.Discard()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				form.Wait()
				return
			}
			form.SetInput(line)
			if !form.Submit(ctx) {
				if notice := form.Notice(); notice != nil {
					fmt.Fprintf(os.Stderr, "%v\n", notice)
					form.DismissNotice()
				}
				continue
			}
			form.Wait()
		}
	}
}

// follow keeps a stream open until ctx is done. Every reconnect replays the snapshot,
// which the view de-duplicates. A stream that dropped without a resync request is
// backfilled over plain HTTP while waiting to reconnect.
func follow(ctx context.Context, client *forumapi.Client, topicID uuid.UUID, show func(model.Message)) {
	for {
		err := client.Stream(ctx, topicID, show)
		if ctx.Err() != nil {
			return
		}

		switch {
		case errors.Is(err, forumapi.ErrResync):
		case errors.Is(err, model.ErrNotFound):
			fmt.Fprintf(os.Stderr, "topic %s not found\n", topicID)
			return
		default:
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(os.Stderr, "stream: %v\n", err)
			}
			catchUp(ctx, client, topicID, show)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func catchUp(ctx context.Context, client *forumapi.Client, topicID uuid.UUID, show func(model.Message)) {
	history, err := client.ListMessages(ctx, topicID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return
	}
	for _, msg := range history {
		show(msg)
	}
}
