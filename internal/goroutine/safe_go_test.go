package goroutine

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo_RecoversPanic(t *testing.T) {
	log, hook := test.NewNullLogger()
	done := make(chan struct{})

	Go(log, "explode", func() {
		defer close(done)
		panic("boom")
	})

	<-done
	require.Eventually(t, func() bool { return hook.LastEntry() != nil }, time.Second, 10*time.Millisecond)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "explode", entry.Data["task"])
	assert.Equal(t, "boom", entry.Data["panic"])
}

func TestGoWithContext_RunsUntilCancel(t *testing.T) {
	log, hook := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	GoWithContext(ctx, log, "watcher", func(ctx context.Context) {
		<-ctx.Done()
		close(stopped)
	})

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("task did not observe cancellation")
	}
	assert.Empty(t, hook.AllEntries())
}
