package jsloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsSynchronous(t *testing.T) {
	l := New(0, nil)
	defer l.Close()

	var got int64
	err := l.Run(context.Background(), func() {
		v, err := l.Runtime().RunString("1 + 2")
		require.NoError(t, err)
		got = v.ToInteger()
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)
}

func TestQueueIsFIFO(t *testing.T) {
	l := New(16, nil)

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 0; i < 10; i++ {
		i := i
		require.NoError(t, l.Queue(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	l.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}

func TestQueueFullAndClosed(t *testing.T) {
	l := New(1, nil)

	block := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, l.Queue(func() {
		close(started)
		<-block
	}))
	<-started
	require.NoError(t, l.Queue(func() {}))
	assert.ErrorIs(t, l.Queue(func() {}), ErrQueueFull)

	close(block)
	l.Close()
	l.Close()

	assert.ErrorIs(t, l.Queue(func() {}), ErrClosed)
	assert.ErrorIs(t, l.Run(context.Background(), func() {}), ErrClosed)
}

func TestRunRecoversPanic(t *testing.T) {
	l := New(0, nil)
	defer l.Close()

	err := l.Run(context.Background(), func() { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	assert.NoError(t, l.Run(context.Background(), func() {}))
}

func TestRunInterruptsScriptOnCancel(t *testing.T) {
	l := New(0, nil)
	defer l.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var scriptErr error
	err := l.Run(ctx, func() {
		_, scriptErr = l.Runtime().RunString("for (;;) {}")
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var interrupted *goja.InterruptedError
	assert.ErrorAs(t, scriptErr, &interrupted)

	var after int64
	require.NoError(t, l.Run(context.Background(), func() {
		v, err := l.Runtime().RunString("40 + 2")
		require.NoError(t, err)
		after = v.ToInteger()
	}))
	assert.Equal(t, int64(42), after)
}

func TestRunCanceledBeforeStart(t *testing.T) {
	l := New(4, nil)
	defer l.Close()

	block := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, l.Queue(func() {
		close(started)
		<-block
	}))
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	ran := false
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx, func() { ran = true }) }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)

	close(block)
	require.NoError(t, l.Run(context.Background(), func() {}))
	assert.False(t, ran)
}

func TestCancelAfterJobFinishedDoesNotLeakInterrupt(t *testing.T) {
	l := New(0, nil)
	defer l.Close()

	for i := 0; i < 200; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		err := l.Run(ctx, func() { cancel() })
		assert.True(t, err == nil || err == context.Canceled, "unexpected error: %v", err)

		var scriptErr error
		require.NoError(t, l.Run(context.Background(), func() {
			_, scriptErr = l.Runtime().RunString("1 + 1")
		}))
		require.NoError(t, scriptErr, "iteration %d", i)
	}
}
