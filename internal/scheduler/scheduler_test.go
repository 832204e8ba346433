package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRun_InvalidRule(t *testing.T) {
	err := Run(context.Background(), "FREQ=NEVER", zap.NewNop(), func(context.Context) {})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reminder rrule")
}

func TestRun_FiresAndStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, "FREQ=SECONDLY", zap.NewNop(), func(context.Context) {
			select {
			case fired <- struct{}{}:
			default:
			}
		})
	}()

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep never fired")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_CancelledBeforeFirstOccurrence(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, "FREQ=DAILY;BYHOUR=9;BYMINUTE=0;BYSECOND=0", zap.NewNop(), func(context.Context) {
		t.Fatal("sweep must not fire after cancel")
	})

	assert.ErrorIs(t, err, context.Canceled)
}
