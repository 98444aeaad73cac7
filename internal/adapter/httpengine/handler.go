// Package httpengine 以 net/http 作为引擎后端，把 HTTP 请求交给 scheme 处理器
package httpengine

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"schemebridge/internal/logger"
	"schemebridge/pkg/arkweb"

	"github.com/google/uuid"
)

// Dispatcher 按 scheme 分发请求
type Dispatcher interface {
	DispatchStart(ctx context.Context, scheme string, req *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool
	DispatchStop(scheme string, req *arkweb.ResourceRequest)
}

// Resolver 将请求映射到 scheme
type Resolver interface {
	Match(url, method string) (string, bool)
}

// Handler 实现 http.Handler
type Handler struct {
	Dispatcher Dispatcher
	Resolver   Resolver
	// Scheme 路由未命中时使用的 scheme，为空时取请求 URL 的 scheme
	Scheme   string
	Fallback http.Handler
	// StartTimeout 开始回调的最长等待时间，0 表示只受客户端连接约束
	StartTimeout time.Duration
	Log          logger.Logger
}

func (h *Handler) logger() logger.Logger {
	if h.Log == nil {
		return logger.NewNop()
	}
	return h.Log
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := ToResourceRequest(r)
	scheme := h.resolve(req, r)
	rw := newResponseWriter(w)

	startCtx := r.Context()
	if h.StartTimeout > 0 {
		var cancel context.CancelFunc
		startCtx, cancel = context.WithTimeout(startCtx, h.StartTimeout)
		defer cancel()
	}

	intercepted := false
	if h.Dispatcher != nil {
		intercepted = h.Dispatcher.DispatchStart(startCtx, scheme, req, rw)
	}
	if !intercepted {
		if rw.markDone() {
			h.fallback(w, r)
		}
		return
	}

	select {
	case <-rw.doneCh:
	case <-r.Context().Done():
		if rw.markDone() {
			h.logger().Debug("客户端断开，分发结束事件", "scheme", scheme, "url", req.URL)
			h.Dispatcher.DispatchStop(scheme, req)
			return
		}
	}
	if rw.isAborted() {
		panic(http.ErrAbortHandler)
	}
}

func (h *Handler) fallback(w http.ResponseWriter, r *http.Request) {
	if h.Fallback != nil {
		h.Fallback.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}

func (h *Handler) resolve(req *arkweb.ResourceRequest, r *http.Request) string {
	if h.Resolver != nil {
		if s, ok := h.Resolver.Match(req.URL, req.Method); ok {
			return s
		}
	}
	if h.Scheme != "" {
		return h.Scheme
	}
	if r.URL.Scheme != "" {
		return r.URL.Scheme
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

var destTypes = map[string]int32{
	"document": arkweb.ResourceTypeMainFrame,
	"iframe":   arkweb.ResourceTypeSubFrame,
	"frame":    arkweb.ResourceTypeSubFrame,
	"style":    arkweb.ResourceTypeStylesheet,
	"script":   arkweb.ResourceTypeScript,
	"image":    arkweb.ResourceTypeImage,
	"font":     arkweb.ResourceTypeFont,
	"audio":    arkweb.ResourceTypeMedia,
	"video":    arkweb.ResourceTypeMedia,
	"empty":    arkweb.ResourceTypeXHR,
}

// ToResourceRequest 由 HTTP 请求构造引擎请求，资源类型取自 Sec-Fetch-Dest
func ToResourceRequest(r *http.Request) *arkweb.ResourceRequest {
	req := arkweb.NewResourceRequest()
	req.ID = uuid.NewString()
	req.URL = absoluteURL(r)
	req.Method = r.Method
	req.Referrer = r.Referer()
	req.HasGesture = r.Header.Get("Sec-Fetch-User") == "?1"
	if dest := strings.ToLower(r.Header.Get("Sec-Fetch-Dest")); dest != "" {
		if t, ok := destTypes[dest]; ok {
			req.ResourceType = t
		} else {
			req.ResourceType = arkweb.ResourceTypeSubResource
		}
	}
	req.IsMainFrame = req.ResourceType == arkweb.ResourceTypeMainFrame

	names := make([]string, 0, len(r.Header))
	for k := range r.Header {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		for _, v := range r.Header[k] {
			req.Headers = append(req.Headers, arkweb.Header{Name: k, Value: v})
		}
	}
	return req
}

func absoluteURL(r *http.Request) string {
	if r.URL.IsAbs() {
		return r.URL.String()
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
