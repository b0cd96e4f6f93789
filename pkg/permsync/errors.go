package permsync

import "errors"

var (
	// ErrClosed is returned when subscribing to or notifying through a
	// closed notifier.
	ErrClosed = errors.New("permsync: notifier is closed")

	// ErrSubscribeFailed is returned when the underlying transport
	// refuses the subscription.
	ErrSubscribeFailed = errors.New("permsync: subscribe failed")

	// ErrPublishFailed is returned when a change signal cannot be
	// published. Writers treat it as best-effort and log it; the local
	// write has already succeeded.
	ErrPublishFailed = errors.New("permsync: publish failed")
)
