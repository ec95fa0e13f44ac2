package scrape

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/kwfeed/pkg/domain"
)

func TestUntilRows(t *testing.T) {
	r := Retrier{Attempts: 15, Delay: time.Millisecond}

	t.Run("rows on the last attempt", func(t *testing.T) {
		calls := 0
		rows, err := UntilRows(context.Background(), r, "猫", func(context.Context) ([]string, error) {
			calls++
			if calls < 15 {
				return nil, nil
			}
			return []string{"row1", "row2"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"row1", "row2"}, rows)
		assert.Equal(t, 15, calls)
	})

	t.Run("always empty", func(t *testing.T) {
		calls := 0
		_, err := UntilRows(context.Background(), r, "猫", func(context.Context) ([]string, error) {
			calls++
			return []string{}, nil
		})
		require.Error(t, err)
		var timeoutErr *domain.ScrapeTimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, "猫", timeoutErr.Query)
		assert.Contains(t, err.Error(), "猫")
		assert.Equal(t, 15, calls)
	})

	t.Run("first attempt succeeds", func(t *testing.T) {
		calls := 0
		rows, err := UntilRows(context.Background(), r, "q", func(context.Context) ([]int, error) {
			calls++
			return []int{1}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, rows)
		assert.Equal(t, 1, calls)
	})

	t.Run("fetch error is not retried", func(t *testing.T) {
		calls := 0
		_, err := UntilRows(context.Background(), r, "q", func(context.Context) ([]int, error) {
			calls++
			return nil, errors.New("connection refused")
		})
		require.EqualError(t, err, "connection refused")
		assert.Equal(t, 1, calls)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := UntilRows(ctx, Retrier{Attempts: 3, Delay: 50 * time.Millisecond}, "q", func(context.Context) ([]int, error) {
			return nil, nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
