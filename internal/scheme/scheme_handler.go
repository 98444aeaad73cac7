package scheme

import (
	"context"
	"sync"
	"sync/atomic"

	"schemebridge/internal/logger"
	"schemebridge/pkg/arkweb"
)

// Loop 脚本事件循环
type Loop interface {
	// Run 在循环上同步执行 fn
	Run(ctx context.Context, fn func()) error
	// Queue 将 fn 排入循环，不等待执行
	Queue(fn func()) error
}

// StartFunc 脚本层请求开始回调，返回值为布尔时才作为拦截决定
type StartFunc func(req *Request, rh *ResourceHandler) (any, error)

// StopFunc 脚本层请求结束回调
type StopFunc func(req *Request) error

// 不拦截的原因
const (
	ReasonDeclined       = "declined"
	ReasonNoCallback     = "no_callback"
	ReasonNoLoop         = "no_loop"
	ReasonLoopFailed     = "loop_failed"
	ReasonCallbackThrown = "callback_error"
	ReasonNotBoolean     = "not_boolean"
)

var liveStopWork atomic.Int64

// LiveStopWork 已分配但尚未释放的结束事件工作项数量
func LiveStopWork() int64 { return liveStopWork.Load() }

type stopWork struct {
	req *Request
	cb  StopFunc
}

func newStopWork(req *Request, cb StopFunc) *stopWork {
	liveStopWork.Add(1)
	return &stopWork{req: req, cb: cb}
}

func (w *stopWork) release() {
	if w.req == nil && w.cb == nil {
		return
	}
	w.req, w.cb = nil, nil
	liveStopWork.Add(-1)
}

// WebSchemeHandler 将引擎拦截事件桥接到脚本层的两个回调
type WebSchemeHandler struct {
	table      *Table
	loop       Loop
	log        logger.Logger
	observer   Observer
	dispatcher *arkweb.Dispatcher

	mu      sync.Mutex
	onStart StartFunc
	onStop  StopFunc
	closed  bool
}

// Option 构造选项
type Option func(*WebSchemeHandler)

func WithLogger(l logger.Logger) Option {
	return func(h *WebSchemeHandler) {
		if l != nil {
			h.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(h *WebSchemeHandler) {
		if o != nil {
			h.observer = o
		}
	}
}

// WithDispatcher 关闭时从分发表中摘除引擎处理器
func WithDispatcher(d *arkweb.Dispatcher) Option {
	return func(h *WebSchemeHandler) {
		h.dispatcher = d
	}
}

// NewWebSchemeHandler 创建处理器并在 table 中登记对应的引擎处理器，table 为 nil 时使用 DefaultTable
func NewWebSchemeHandler(table *Table, loop Loop, opts ...Option) *WebSchemeHandler {
	if table == nil {
		table = DefaultTable
	}
	h := &WebSchemeHandler{
		table:    table,
		loop:     loop,
		log:      logger.NewNop(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(h)
	}

	engine := arkweb.CreateSchemeHandler()
	engine.SetOnRequestStart(table.onRequestStart)
	engine.SetOnRequestStop(table.onRequestStop)
	table.put(h, engine)
	return h
}

func (t *Table) onRequestStart(ctx context.Context, sh *arkweb.SchemeHandler, req *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool {
	h := t.WebSchemeHandler(sh)
	if h == nil {
		return false
	}
	return h.RequestStart(ctx, req, rh)
}

func (t *Table) onRequestStop(sh *arkweb.SchemeHandler, req *arkweb.ResourceRequest) {
	if h := t.WebSchemeHandler(sh); h != nil {
		h.RequestStop(req)
	}
}

// Engine 返回对应的引擎处理器，已关闭时为 nil
func (h *WebSchemeHandler) Engine() *arkweb.SchemeHandler {
	return h.table.ArkWebSchemeHandler(h)
}

// PutRequestStart 设置开始回调，后设置者生效
func (h *WebSchemeHandler) PutRequestStart(cb StartFunc) {
	h.mu.Lock()
	h.onStart = cb
	h.mu.Unlock()
}

// PutRequestStop 设置结束回调，后设置者生效
func (h *WebSchemeHandler) PutRequestStop(cb StopFunc) {
	h.mu.Lock()
	h.onStop = cb
	h.mu.Unlock()
}

func (h *WebSchemeHandler) callbacks() (StartFunc, StopFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, nil
	}
	return h.onStart, h.onStop
}

// RequestStart 在脚本循环上同步调用开始回调并返回拦截决定，调用方一直阻塞到回调返回
func (h *WebSchemeHandler) RequestStart(ctx context.Context, req *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool {
	request := NewRequest(req)
	// 回调内产生的事件排在 intercepted/passed 之后
	obs := &deferredObserver{target: h.observer}
	handler := NewResourceHandler(request.ID(), rh, obs)

	intercept, reason := h.requestStart(ctx, request, handler)
	if !intercept {
		handler.SetFinished()
		if reason != ReasonDeclined {
			h.log.Warn("请求未拦截", "url", request.URL(), "reason", reason)
		}
		obs.release(Event{Kind: EventPassed, RequestID: request.ID(), Request: request, Reason: reason})
		return false
	}
	obs.release(Event{Kind: EventIntercepted, RequestID: request.ID(), Request: request})
	return true
}

func (h *WebSchemeHandler) requestStart(ctx context.Context, req *Request, rh *ResourceHandler) (bool, string) {
	start, _ := h.callbacks()
	if start == nil {
		return false, ReasonNoCallback
	}
	if h.loop == nil {
		return false, ReasonNoLoop
	}

	var (
		result any
		cbErr  error
	)
	if err := h.loop.Run(ctx, func() {
		result, cbErr = start(req, rh)
	}); err != nil {
		h.log.Err(err, "开始回调调度失败", "url", req.URL())
		return false, ReasonLoopFailed
	}
	if cbErr != nil {
		h.log.Err(cbErr, "开始回调执行失败", "url", req.URL())
		return false, ReasonCallbackThrown
	}
	intercept, ok := result.(bool)
	if !ok {
		return false, ReasonNotBoolean
	}
	if !intercept {
		return false, ReasonDeclined
	}
	return true, ""
}

// RequestStop 将结束回调排入脚本循环，不阻塞调用方；排队失败时立即释放工作项
func (h *WebSchemeHandler) RequestStop(req *arkweb.ResourceRequest) {
	request := NewRequest(req)
	h.observer.Observe(Event{Kind: EventStopped, RequestID: request.ID(), Request: request})
	if h.loop == nil {
		return
	}
	_, stop := h.callbacks()
	work := newStopWork(request, stop)
	if err := h.loop.Queue(func() { h.runStop(work) }); err != nil {
		h.log.Warn("结束回调排队失败", "url", request.URL(), "error", err)
		work.release()
	}
}

// runStop 回调在排队期间被清除时直接丢弃请求
func (h *WebSchemeHandler) runStop(work *stopWork) {
	defer work.release()
	if work.cb == nil || h.isClosed() {
		return
	}
	if err := work.cb(work.req); err != nil {
		h.log.Err(err, "结束回调执行失败", "url", work.req.URL())
	}
}

func (h *WebSchemeHandler) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// Close 移除映射、丢弃回调并销毁引擎处理器，可重复调用
func (h *WebSchemeHandler) Close() {
	h.mu.Lock()
	h.closed = true
	h.onStart, h.onStop = nil, nil
	h.mu.Unlock()
	if engine := h.table.remove(h); engine != nil {
		engine.SetOnRequestStart(nil)
		engine.SetOnRequestStop(nil)
		if h.dispatcher != nil {
			h.dispatcher.RemoveHandler(engine)
		}
	}
}
