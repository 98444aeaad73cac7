package scheme

import (
	"context"
	"errors"
	"sync"

	"schemebridge/pkg/arkweb"
)

type fakeEngine struct {
	mu        sync.Mutex
	responses []*arkweb.Response
	data      [][]byte
	finished  int
	failed    []int32
	destroyed int
	reject    bool
}

var errRejected = errors.New("rejected")

func (e *fakeEngine) DidReceiveResponse(resp *arkweb.Response) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.reject {
		return errRejected
	}
	e.responses = append(e.responses, resp)
	return nil
}

func (e *fakeEngine) DidReceiveData(data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.reject {
		return errRejected
	}
	e.data = append(e.data, data)
	return nil
}

func (e *fakeEngine) DidFinish() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.reject {
		return errRejected
	}
	e.finished++
	return nil
}

func (e *fakeEngine) DidFailWithError(code int32, _ string, _ bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.reject {
		return errRejected
	}
	e.failed = append(e.failed, code)
	return nil
}

func (e *fakeEngine) Destroy() {
	e.mu.Lock()
	e.destroyed++
	e.mu.Unlock()
}

func (e *fakeEngine) calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.responses) + len(e.data) + e.finished + len(e.failed)
}

// inlineLoop 在调用方 goroutine 上执行，queueErr 非空时拒绝排队
type inlineLoop struct {
	mu       sync.Mutex
	queued   []func()
	queueErr error
}

func (l *inlineLoop) Run(_ context.Context, fn func()) error {
	fn()
	return nil
}

func (l *inlineLoop) Queue(fn func()) error {
	if l.queueErr != nil {
		return l.queueErr
	}
	l.mu.Lock()
	l.queued = append(l.queued, fn)
	l.mu.Unlock()
	return nil
}

func (l *inlineLoop) drain() {
	l.mu.Lock()
	queued := l.queued
	l.queued = nil
	l.mu.Unlock()
	for _, fn := range queued {
		fn()
	}
}

type recordingObserver struct {
	mu     sync.Mutex
	events []Event
}

func (o *recordingObserver) Observe(ev Event) {
	o.mu.Lock()
	o.events = append(o.events, ev)
	o.mu.Unlock()
}

func (o *recordingObserver) kinds() []EventKind {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]EventKind, 0, len(o.events))
	for _, ev := range o.events {
		out = append(out, ev.Kind)
	}
	return out
}
