package permsync

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier delivers change signals across processes over a Redis
// pub/sub channel. It is the cross-process analogue of a storage-change
// event: fire-and-forget, at-least-once for connected subscribers, no
// payload.
type RedisNotifier struct {
	client  *redis.Client
	channel string

	mu     sync.Mutex
	closed bool
}

// NewRedisNotifier creates a notifier on the given channel. An empty
// channel name falls back to DefaultChannel.
func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisNotifier{client: client, channel: channel}
}

// Subscribe opens a pub/sub subscription and pumps incoming messages
// into a signal channel. The pump stops when the subscription is closed
// or the context is cancelled.
func (n *RedisNotifier) Subscribe(ctx context.Context) (Subscription, error) {
	n.mu.Lock()
	closed := n.closed
	n.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	pubsub := n.client.Subscribe(ctx, n.channel)
	// Force the subscription onto the wire before returning so callers
	// do not miss notifications published right after Subscribe.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.Join(ErrSubscribeFailed, err)
	}

	sub := &redisSubscription{
		pubsub: pubsub,
		ch:     make(chan struct{}, 1),
	}

	go func() {
		defer sub.closeOne.Do(func() { close(sub.ch) })
		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case sub.ch <- struct{}{}:
				default:
				}
			}
		}
	}()

	return sub, nil
}

// Notify publishes a signal to every subscribed process.
func (n *RedisNotifier) Notify(ctx context.Context) error {
	n.mu.Lock()
	closed := n.closed
	n.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if err := n.client.Publish(ctx, n.channel, "1").Err(); err != nil {
		return errors.Join(ErrPublishFailed, err)
	}
	return nil
}

// Close marks the notifier closed. Open subscriptions are closed
// individually by their owners; the shared Redis client is not closed
// here because the permission store may still be using it.
func (n *RedisNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	return nil
}

// Channel returns the notification topic name.
func (n *RedisNotifier) Channel() string {
	return n.channel
}

type redisSubscription struct {
	pubsub   *redis.PubSub
	ch       chan struct{}
	closeOne sync.Once
}

func (s *redisSubscription) C() <-chan struct{} {
	return s.ch
}

func (s *redisSubscription) Close() error {
	err := s.pubsub.Close()
	return err
}
