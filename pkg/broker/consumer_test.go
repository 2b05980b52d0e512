package broker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type memReader struct {
	msgs chan kafka.Message

	mu        sync.Mutex
	committed []int64
}

func newMemReader(msgs ...kafka.Message) *memReader {
	r := &memReader{msgs: make(chan kafka.Message, len(msgs))}
	for _, m := range msgs {
		r.msgs <- m
	}

	return r
}

func (r *memReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m, ok := <-r.msgs:
		if !ok {
			return kafka.Message{}, io.EOF
		}

		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *memReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}

	return nil
}

func (r *memReader) Close() error {
	close(r.msgs)
	return nil
}

func (r *memReader) commits() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int64(nil), r.committed...)
}

func testConsumer(r messageReader) *Consumer {
	c := newConsumer(slog.New(slog.NewTextHandler(io.Discard, nil)), r)
	c.backoff = time.Millisecond

	return c
}

func TestConsumer_CommitsAfterHandler(t *testing.T) {
	t.Parallel()

	const topic = "technician.location"

	t.Run("transient failure is retried before commit", func(t *testing.T) {
		t.Parallel()

		r := newMemReader(kafka.Message{Topic: topic, Offset: 10})

		var calls atomic.Int32

		c := testConsumer(r).Handle(topic, func(context.Context, kafka.Message) error {
			if calls.Add(1) < 3 {
				return errors.New("pool closed")
			}

			return nil
		})

		c.Consume(context.Background())

		require.Eventually(t, func() bool { return len(r.commits()) == 1 }, time.Second, time.Millisecond)
		require.Equal(t, int32(3), calls.Load())
		require.Equal(t, []int64{10}, r.commits())

		c.Close()
	})

	t.Run("message is skipped after the last attempt", func(t *testing.T) {
		t.Parallel()

		r := newMemReader(kafka.Message{Topic: topic, Offset: 4}, kafka.Message{Topic: topic, Offset: 5})

		var calls atomic.Int32

		c := testConsumer(r).Handle(topic, func(_ context.Context, m kafka.Message) error {
			calls.Add(1)

			if m.Offset == 4 {
				return errors.New("pool closed")
			}

			return nil
		})
		c.attempts = 3

		c.Consume(context.Background())

		require.Eventually(t, func() bool { return len(r.commits()) == 2 }, time.Second, time.Millisecond)
		require.Equal(t, int32(4), calls.Load())
		require.Equal(t, []int64{4, 5}, r.commits())

		c.Close()
	})

	t.Run("shutdown during retry leaves the offset uncommitted", func(t *testing.T) {
		t.Parallel()

		r := newMemReader(kafka.Message{Topic: topic, Offset: 7})
		ctx, cancel := context.WithCancel(context.Background())

		failed := make(chan struct{}, 1)

		c := testConsumer(r).Handle(topic, func(context.Context, kafka.Message) error {
			select {
			case failed <- struct{}{}:
			default:
			}

			return errors.New("pool closed")
		})
		c.backoff = time.Hour

		c.Consume(ctx)

		<-failed
		cancel()
		c.Close()

		require.Empty(t, r.commits())
	})
}
