package scheme

import (
	"fmt"
	"sync"

	"schemebridge/internal/neterror"
	"schemebridge/pkg/arkweb"
)

// ResourceHandler 一次性的响应通道：Idle -> Responded -> Finished，或 Idle -> Failed
type ResourceHandler struct {
	mu        sync.Mutex
	requestID string
	engine    arkweb.ResourceHandler
	finished  bool
	observer  Observer
}

// NewResourceHandler 包装引擎句柄，obs 可为 nil
func NewResourceHandler(requestID string, engine arkweb.ResourceHandler, obs Observer) *ResourceHandler {
	if obs == nil {
		obs = nopObserver{}
	}
	return &ResourceHandler{requestID: requestID, engine: engine, observer: obs}
}

func (h *ResourceHandler) RequestID() string { return h.requestID }

// IsFinished 是否已进入终态
func (h *ResourceHandler) IsFinished() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.finished
}

// SetFinished 标记结束，不通知引擎
func (h *ResourceHandler) SetFinished() {
	h.mu.Lock()
	h.finished = true
	h.mu.Unlock()
}

// DidReceiveResponse 转发响应头，不改变结束状态
func (h *ResourceHandler) DidReceiveResponse(resp *Response) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finished {
		return ErrAlreadyFinished
	}
	if resp == nil || h.engine == nil {
		return ErrInvalidParam
	}
	engineResp := resp.Engine()
	if err := h.engine.DidReceiveResponse(engineResp); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	h.observer.Observe(Event{Kind: EventResponded, RequestID: h.requestID, Status: engineResp.Status})
	return nil
}

// DidReceiveResponseBody 转发一段响应体，可多次调用
func (h *ResourceHandler) DidReceiveResponseBody(buf []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finished {
		return ErrAlreadyFinished
	}
	if h.engine == nil {
		return ErrInvalidParam
	}
	if err := h.engine.DidReceiveData(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	h.observer.Observe(Event{Kind: EventData, RequestID: h.requestID, Bytes: len(buf)})
	return nil
}

// DidFinish 完成响应并进入终态
func (h *ResourceHandler) DidFinish() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finished {
		return ErrAlreadyFinished
	}
	if h.engine == nil {
		return ErrInvalidParam
	}
	if err := h.engine.DidFinish(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	h.finished = true
	h.observer.Observe(Event{Kind: EventFinished, RequestID: h.requestID})
	return nil
}

// DidFailWithError 以网络错误结束请求
func (h *ResourceHandler) DidFailWithError(code neterror.Code, description string, completeIfNoResponse bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.finished {
		return ErrAlreadyFinished
	}
	if h.engine == nil {
		return ErrInvalidParam
	}
	if err := h.engine.DidFailWithError(int32(code), description, completeIfNoResponse); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParam, err)
	}
	h.finished = true
	h.observer.Observe(Event{Kind: EventFailed, RequestID: h.requestID, NetError: int32(code)})
	return nil
}

// Destroy 释放引擎句柄，可重复调用
func (h *ResourceHandler) Destroy() {
	h.mu.Lock()
	engine := h.engine
	h.engine = nil
	h.mu.Unlock()
	if engine != nil {
		engine.Destroy()
	}
}
