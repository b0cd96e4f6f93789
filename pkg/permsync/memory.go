package permsync

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryNotifier is an in-process Notifier for single-process
// deployments and tests. Signals are delivered non-blocking: a
// subscriber that has not drained its pending signal simply coalesces
// with the next one.
type MemoryNotifier struct {
	mu     sync.RWMutex
	subs   map[string]*memorySubscription
	closed bool
}

type memorySubscription struct {
	id       string
	ch       chan struct{}
	owner    *MemoryNotifier
	closeOne sync.Once
}

// NewMemoryNotifier creates an in-memory notifier.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{subs: make(map[string]*memorySubscription)}
}

// Subscribe registers a new subscription. It is cleaned up either by an
// explicit Close or when the provided context is cancelled.
func (n *MemoryNotifier) Subscribe(ctx context.Context) (Subscription, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return nil, ErrClosed
	}

	sub := &memorySubscription{
		id:    uuid.New().String(),
		ch:    make(chan struct{}, 1),
		owner: n,
	}
	n.subs[sub.id] = sub

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			_ = sub.Close()
		}()
	}

	return sub, nil
}

// Notify signals every live subscription. It never blocks on slow
// consumers and never fails for an open notifier.
func (n *MemoryNotifier) Notify(ctx context.Context) error {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		return ErrClosed
	}
	for _, sub := range n.subs {
		select {
		case sub.ch <- struct{}{}:
		default:
		}
	}
	return nil
}

// Close shuts down the notifier and closes every subscription.
func (n *MemoryNotifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	subs := make([]*memorySubscription, 0, len(n.subs))
	for _, sub := range n.subs {
		subs = append(subs, sub)
	}
	clear(n.subs)
	n.mu.Unlock()

	for _, sub := range subs {
		sub.closeOne.Do(func() { close(sub.ch) })
	}
	return nil
}

func (s *memorySubscription) C() <-chan struct{} {
	return s.ch
}

func (s *memorySubscription) Close() error {
	s.owner.mu.Lock()
	delete(s.owner.subs, s.id)
	s.owner.mu.Unlock()

	s.closeOne.Do(func() { close(s.ch) })
	return nil
}
