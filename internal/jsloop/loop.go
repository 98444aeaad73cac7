// Package jsloop 独占脚本运行时的单 goroutine 事件循环
package jsloop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dop251/goja"

	"schemebridge/internal/logger"
)

var (
	// ErrClosed 循环已关闭
	ErrClosed = errors.New("jsloop: closed")
	// ErrQueueFull 队列已满
	ErrQueueFull = errors.New("jsloop: queue full")
)

const defaultQueueSize = 256

const (
	statePending int32 = iota
	stateRunning
	stateCanceled
	stateDone
)

type job struct {
	fn    func()
	state atomic.Int32
	done  chan struct{} // 仅同步任务使用
	err   error
}

// Loop 脚本事件循环，运行时只在循环 goroutine 上访问
type Loop struct {
	vm  *goja.Runtime
	log logger.Logger

	// intMu 保证中断只落在仍在执行的任务上
	intMu sync.Mutex

	mu     sync.RWMutex
	closed bool
	jobs   chan *job
	quit   chan struct{}
	done   chan struct{}
}

// New 创建并启动循环，queueSize <= 0 时使用默认值
func New(queueSize int, l logger.Logger) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if l == nil {
		l = logger.NewNop()
	}
	loop := &Loop{
		vm:   goja.New(),
		log:  l,
		jobs: make(chan *job, queueSize),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go loop.run()
	return loop
}

// Runtime 返回脚本运行时，只能在 Run/Queue 的回调里使用
func (l *Loop) Runtime() *goja.Runtime { return l.vm }

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case j := <-l.jobs:
			l.exec(j)
		case <-l.quit:
			for {
				select {
				case j := <-l.jobs:
					l.exec(j)
				default:
					return
				}
			}
		}
	}
}

func (l *Loop) exec(j *job) {
	if j.done != nil && !j.state.CompareAndSwap(statePending, stateRunning) {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("jsloop: panic: %v", r)
			if j.done != nil {
				j.err = err
			} else {
				l.log.Err(err, "循环任务异常")
			}
		}
		l.intMu.Lock()
		j.state.Store(stateDone)
		l.vm.ClearInterrupt()
		l.intMu.Unlock()
		if j.done != nil {
			close(j.done)
		}
	}()
	j.fn()
}

// Run 在循环上同步执行 fn；ctx 取消时，未开始的任务被撤销，执行中的脚本被中断。
// 不能在循环 goroutine 内调用。
func (l *Loop) Run(ctx context.Context, fn func()) error {
	j := &job{fn: fn, done: make(chan struct{})}

	l.mu.RLock()
	if l.closed {
		l.mu.RUnlock()
		return ErrClosed
	}
	select {
	case l.jobs <- j:
		l.mu.RUnlock()
	case <-ctx.Done():
		l.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case <-j.done:
		return j.err
	case <-ctx.Done():
		if j.state.CompareAndSwap(statePending, stateCanceled) {
			return ctx.Err()
		}
		if !l.interrupt(j, ctx.Err()) {
			// 任务已执行完
			<-j.done
			return j.err
		}
		<-j.done
		return ctx.Err()
	}
}

// interrupt 任务仍在执行时中断脚本
func (l *Loop) interrupt(j *job, reason error) bool {
	l.intMu.Lock()
	defer l.intMu.Unlock()
	if j.state.Load() != stateRunning {
		return false
	}
	l.vm.Interrupt(reason)
	return true
}

// Queue 按 FIFO 顺序排入 fn，不等待执行
func (l *Loop) Queue(fn func()) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return ErrClosed
	}
	select {
	case l.jobs <- &job{fn: fn}:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close 拒绝新任务，执行完已排队的任务后退出，可重复调用
func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closed = true
	close(l.quit)
	l.mu.Unlock()
	<-l.done
}
