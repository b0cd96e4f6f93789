package permsync_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eishro/merchantaccess/pkg/permsync"
)

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisNotifier(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("default channel", func(t *testing.T) {
		t.Parallel()
		n := permsync.NewRedisNotifier(newRedisClient(t), "")
		assert.Equal(t, permsync.DefaultChannel, n.Channel())
	})

	t.Run("publishes to subscribers across clients", func(t *testing.T) {
		t.Parallel()
		srv := miniredis.RunT(t)

		writer := redis.NewClient(&redis.Options{Addr: srv.Addr()})
		reader := redis.NewClient(&redis.Options{Addr: srv.Addr()})
		t.Cleanup(func() {
			_ = writer.Close()
			_ = reader.Close()
		})

		consumer := permsync.NewRedisNotifier(reader, "test-channel")
		sub, err := consumer.Subscribe(ctx)
		require.NoError(t, err)
		t.Cleanup(func() { _ = sub.Close() })

		producer := permsync.NewRedisNotifier(writer, "test-channel")
		require.NoError(t, producer.Notify(ctx))

		waitSignal(t, sub.C())
	})

	t.Run("closed subscription channel drains closed", func(t *testing.T) {
		t.Parallel()
		n := permsync.NewRedisNotifier(newRedisClient(t), "test-channel")

		sub, err := n.Subscribe(ctx)
		require.NoError(t, err)
		require.NoError(t, sub.Close())

		select {
		case _, open := <-sub.C():
			assert.False(t, open)
		default:
			// A still-open empty channel is also acceptable here while the
			// pump goroutine winds down; force a read to observe closure.
			_, open := <-sub.C()
			assert.False(t, open)
		}
	})

	t.Run("closed notifier rejects operations", func(t *testing.T) {
		t.Parallel()
		n := permsync.NewRedisNotifier(newRedisClient(t), "test-channel")
		require.NoError(t, n.Close())

		_, err := n.Subscribe(ctx)
		assert.ErrorIs(t, err, permsync.ErrClosed)
		assert.ErrorIs(t, n.Notify(ctx), permsync.ErrClosed)
	})
}
