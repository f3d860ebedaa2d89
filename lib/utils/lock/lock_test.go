package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	ctx := context.Background()

	t.Run(`runs code when key is free`, func(t *testing.T) {
		ran := false
		success, err := WithDelay(ctx, "free-key", 50*time.Millisecond, func() error {
			ran = true
			return nil
		})
		require.Nil(t, err)
		require.True(t, success)
		require.True(t, ran)
	})

	t.Run(`second caller times out while key is held`, func(t *testing.T) {
		holding := make(chan struct{})
		release := make(chan struct{})
		go func() {
			_, _ = WithDelay(ctx, "busy-key", time.Second, func() error {
				close(holding)
				<-release
				return nil
			})
		}()
		<-holding

		success, err := WithDelay(ctx, "busy-key", 30*time.Millisecond, func() error {
			return nil
		})
		require.Nil(t, err)
		require.False(t, success)
		close(release)
	})

	t.Run(`different keys do not contend`, func(t *testing.T) {
		var wg sync.WaitGroup
		results := make([]bool, 2)
		for i, key := range []string{"key-a", "key-b"} {
			wg.Add(1)
			go func(i int, key string) {
				defer wg.Done()
				success, _ := WithDelay(ctx, key, 50*time.Millisecond, func() error {
					time.Sleep(20 * time.Millisecond)
					return nil
				})
				results[i] = success
			}(i, key)
		}
		wg.Wait()
		require.True(t, results[0])
		require.True(t, results[1])
	})
}
