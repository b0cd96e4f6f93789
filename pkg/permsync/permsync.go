package permsync

import "context"

// DefaultChannel is the notification topic paired with the default
// permission slot key.
const DefaultChannel = "eishro-merchant-permissions-updated"

// Subscription receives change signals from a Notifier. Signals carry
// no payload: the only contract is "the permission slot changed, reload
// it". Subscriptions must be closed on consumer teardown so callbacks
// do not leak across merchant-identity changes.
type Subscription interface {
	// C returns the signal channel. It is closed when the subscription
	// or its notifier is closed.
	C() <-chan struct{}

	// Close releases the subscription. Idempotent.
	Close() error
}

// Notifier is the change-notification mechanism around the permission
// slot. Any writer must call Notify after mutating the slot; every
// consumer holds a Subscription and funnels both cross-process and
// in-process triggers into the same reload path.
//
// Delivery is at-least-once for live subscribers; slow consumers may
// see consecutive signals coalesced but never miss the latest state,
// since the signal only prompts a re-read of the slot.
type Notifier interface {
	Subscribe(ctx context.Context) (Subscription, error)
	Notify(ctx context.Context) error
	Close() error
}

// Config holds the sync channel's environment-driven settings.
type Config struct {
	// Channel names the notification topic.
	Channel string `env:"MERCHANT_PERMISSIONS_EVENT" envDefault:"eishro-merchant-permissions-updated"`
}
