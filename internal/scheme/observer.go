package scheme

import "sync"

// EventKind 请求生命周期事件
type EventKind string

const (
	EventIntercepted EventKind = "intercepted"
	EventPassed      EventKind = "passed"
	EventResponded   EventKind = "responded"
	EventData        EventKind = "data"
	EventFinished    EventKind = "finished"
	EventFailed      EventKind = "failed"
	EventStopped     EventKind = "stopped"
)

// Event 观察者收到的事件
type Event struct {
	Kind      EventKind
	RequestID string
	Request   *Request // 仅 intercepted/passed/stopped 携带
	Status    int32
	NetError  int32
	Bytes     int
	Reason    string // passed 时的原因
}

// Observer 请求生命周期观察者，回调可能来自任意 goroutine
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc 函数适配
type ObserverFunc func(ev Event)

func (f ObserverFunc) Observe(ev Event) { f(ev) }

// Observers 组合多个观察者
type Observers []Observer

func (os Observers) Observe(ev Event) {
	for _, o := range os {
		if o != nil {
			o.Observe(ev)
		}
	}
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// deferredObserver 在 release 之前缓存事件，release 时先发出 first 再按序补发
type deferredObserver struct {
	mu     sync.Mutex
	target Observer
	queued []Event
	live   bool
}

func (d *deferredObserver) Observe(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.live {
		d.queued = append(d.queued, ev)
		return
	}
	d.target.Observe(ev)
}

func (d *deferredObserver) release(first Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.target.Observe(first)
	for _, ev := range d.queued {
		d.target.Observe(ev)
	}
	d.queued = nil
	d.live = true
}
