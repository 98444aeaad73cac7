package cdp

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	cdpadapter "schemebridge/internal/adapter/cdp"
	"schemebridge/internal/neterror"
	"schemebridge/pkg/arkweb"

	"github.com/mafredri/cdp/protocol/fetch"
)

var (
	errCompleted       = errors.New("请求已完成")
	errNoResponse      = errors.New("尚未收到响应头")
	errResponseWritten = errors.New("响应头已提交")
)

// fetchAPI 拦截流程用到的 Fetch 域命令
type fetchAPI interface {
	ContinueRequest(ctx context.Context, args *fetch.ContinueRequestArgs) error
	FulfillRequest(ctx context.Context, args *fetch.FulfillRequestArgs) error
	FailRequest(ctx context.Context, args *fetch.FailRequestArgs) error
}

// resourceHandler 基于 Fetch 域的响应通道：缓冲响应体，结束时一次性 fulfill
type resourceHandler struct {
	ctx     context.Context
	fetch   fetchAPI
	id      fetch.RequestID
	timeout time.Duration
	onDone  func(err error)

	mu   sync.Mutex
	resp *arkweb.Response
	body bytes.Buffer
	done bool
}

func newResourceHandler(ctx context.Context, api fetchAPI, id fetch.RequestID, timeout time.Duration, onDone func(error)) *resourceHandler {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &resourceHandler{ctx: ctx, fetch: api, id: id, timeout: timeout, onDone: onDone}
}

func (h *resourceHandler) DidReceiveResponse(resp *arkweb.Response) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return errCompleted
	}
	if h.resp != nil {
		return errResponseWritten
	}
	h.resp = resp.Clone()
	return nil
}

func (h *resourceHandler) DidReceiveData(data []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return errCompleted
	}
	if h.resp == nil {
		return errNoResponse
	}
	h.body.Write(data)
	return nil
}

func (h *resourceHandler) DidFinish() error {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return errCompleted
	}
	if h.resp == nil {
		h.mu.Unlock()
		return errNoResponse
	}
	h.done = true
	args := cdpadapter.ToFulfillArgs(h.id, h.resp, bytes.Clone(h.body.Bytes()))
	h.body.Reset()
	h.mu.Unlock()

	return h.complete(func(ctx context.Context) error {
		return h.fetch.FulfillRequest(ctx, args)
	})
}

// DidFailWithError 未收到响应头且 completeIfNoResponse 时以 502 完成请求，否则 failRequest
func (h *resourceHandler) DidFailWithError(code int32, description string, completeIfNoResponse bool) error {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return errCompleted
	}
	h.done = true
	synthesize := h.resp == nil && completeIfNoResponse
	h.body.Reset()
	h.mu.Unlock()

	if synthesize {
		resp := arkweb.NewResponse()
		resp.Status = 502
		resp.StatusText = description
		resp.Headers["X-Net-Error"] = neterror.Code(code).String()
		args := cdpadapter.ToFulfillArgs(h.id, resp, nil)
		return h.complete(func(ctx context.Context) error {
			return h.fetch.FulfillRequest(ctx, args)
		})
	}
	args := &fetch.FailRequestArgs{RequestID: h.id, ErrorReason: errorReason(neterror.Code(code))}
	return h.complete(func(ctx context.Context) error {
		return h.fetch.FailRequest(ctx, args)
	})
}

// Destroy 脚本层放弃句柄时中止尚未完成的请求
func (h *resourceHandler) Destroy() {
	if !h.markDone() {
		return
	}
	args := &fetch.FailRequestArgs{RequestID: h.id, ErrorReason: errorReason(neterror.ErrAborted)}
	_ = h.complete(func(ctx context.Context) error {
		return h.fetch.FailRequest(ctx, args)
	})
}

// markDone 抢占结束权，返回 false 表示已经结束
func (h *resourceHandler) markDone() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.done {
		return false
	}
	h.done = true
	h.body.Reset()
	return true
}

func (h *resourceHandler) complete(send func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(h.ctx, h.timeout)
	defer cancel()
	err := send(ctx)
	if h.onDone != nil {
		h.onDone(err)
	}
	return err
}
