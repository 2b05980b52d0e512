package broker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	defaultHandleAttempts = 5
	defaultRetryBackoff   = 500 * time.Millisecond
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	l             *slog.Logger
	r             messageReader
	wg            *sync.WaitGroup
	topicHandlers map[string]func(context.Context, kafka.Message) error
	attempts      int
	backoff       time.Duration
}

func NewConsumer(
	brokers []string,
	groupID string,
	topics ...string,
) *Consumer {
	l := slog.Default().WithGroup("kafka").With("group_id", groupID)

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		GroupTopics: topics,
		Logger:      &infoLogger{l: l},
		ErrorLogger: &errorLogger{l: l},
	})

	return newConsumer(l, r)
}

func newConsumer(l *slog.Logger, r messageReader) *Consumer {
	return &Consumer{
		l:             l,
		r:             r,
		wg:            &sync.WaitGroup{},
		topicHandlers: make(map[string]func(context.Context, kafka.Message) error),
		attempts:      defaultHandleAttempts,
		backoff:       defaultRetryBackoff,
	}
}

func (c *Consumer) Handle(topic string, handler func(context.Context, kafka.Message) error) *Consumer {
	c.topicHandlers[topic] = handler
	return c
}

// Consume reads messages until ctx is done. An offset is committed only after
// its message is settled, so a message interrupted by shutdown is redelivered.
func (c *Consumer) Consume(ctx context.Context) *Consumer {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		for {
			m, err := c.r.FetchMessage(ctx)
			if err != nil {
				if errors.Is(err, io.EOF) || ctx.Err() != nil {
					c.l.Info("consumer stopped")
					return
				}

				c.l.Error(fmt.Sprintf("fetch kafka message: %s", err))

				continue
			}

			if !c.dispatch(ctx, m) {
				c.l.Info("consumer stopped")
				return
			}

			err = c.r.CommitMessages(ctx, m)
			if err != nil {
				if ctx.Err() != nil {
					return
				}

				c.l.Error(fmt.Sprintf("commit kafka message: %s", err), "topic", m.Topic, "offset", m.Offset)
			}
		}
	}()

	return c
}

// dispatch runs the topic handler, retrying failures with exponential backoff.
// After the last attempt the message is logged and skipped. It reports false
// when ctx is done before the message is settled.
func (c *Consumer) dispatch(ctx context.Context, m kafka.Message) bool {
	handler, ok := c.topicHandlers[m.Topic]
	if !ok {
		c.l.Warn("kafka handler not found", "topic", m.Topic)
		return true
	}

	wait := c.backoff

	for attempt := 1; ; attempt++ {
		err := handler(ctx, m)
		if err == nil {
			return true
		}

		if attempt >= c.attempts {
			c.l.Error(fmt.Sprintf("skip kafka msg after %d attempts: %s", attempt, err),
				"topic", m.Topic, "offset", m.Offset, "key", string(m.Key))

			return true
		}

		c.l.Warn(fmt.Sprintf("handle kafka msg: %s", err), "topic", m.Topic, "offset", m.Offset, "attempt", attempt)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(wait):
		}

		wait *= 2
	}
}

func (c *Consumer) Close() {
	err := c.r.Close()
	if err != nil {
		c.l.Error(fmt.Sprintf("close kafka reader: %s", err))
	}

	c.wg.Wait()
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
