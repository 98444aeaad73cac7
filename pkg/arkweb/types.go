// Package arkweb 宿主 web 引擎一侧的嵌入接口
package arkweb

import (
	"context"
	"sync"
)

// Header 单个请求头
type Header struct {
	Name  string
	Value string
}

// ResourceRequest 引擎拦截到的请求
type ResourceRequest struct {
	ID           string // 引擎分配的请求标识，开始与结束事件共用
	URL          string
	Method       string
	Referrer     string
	IsRedirect   bool
	IsMainFrame  bool
	HasGesture   bool
	Headers      []Header
	ResourceType int32
	FrameURL     string
}

// 资源类型，取值与 Chromium 一致
const (
	ResourceTypeMainFrame   int32 = 0
	ResourceTypeSubFrame    int32 = 1
	ResourceTypeStylesheet  int32 = 2
	ResourceTypeScript      int32 = 3
	ResourceTypeImage       int32 = 4
	ResourceTypeFont        int32 = 5
	ResourceTypeSubResource int32 = 6
	ResourceTypeMedia       int32 = 8
	ResourceTypePrefetch    int32 = 11
	ResourceTypeXHR         int32 = 13
	ResourceTypePing        int32 = 14
)

// NewResourceRequest 资源类型默认为 -1
func NewResourceRequest() *ResourceRequest {
	return &ResourceRequest{ResourceType: -1}
}

// Response 交给引擎的响应头信息
type Response struct {
	URL              string
	Status           int32
	StatusText       string
	MimeType         string
	Encoding         string
	Headers          map[string]string
	ErrorCode        int32
	ErrorDescription string
}

// NewResponse 创建空响应
func NewResponse() *Response {
	return &Response{Headers: map[string]string{}}
}

// Clone 深拷贝
func (r *Response) Clone() *Response {
	if r == nil {
		return nil
	}
	out := *r
	out.Headers = make(map[string]string, len(r.Headers))
	for k, v := range r.Headers {
		out.Headers[k] = v
	}
	return &out
}

// ResourceHandler 引擎提供的响应通道
type ResourceHandler interface {
	DidReceiveResponse(resp *Response) error
	DidReceiveData(data []byte) error
	DidFinish() error
	DidFailWithError(code int32, description string, completeIfNoResponse bool) error
	Destroy()
}

// OnRequestStart 返回 true 表示拦截，调用方阻塞直到返回
type OnRequestStart func(ctx context.Context, sh *SchemeHandler, req *ResourceRequest, rh ResourceHandler) bool

// OnRequestStop 请求被引擎取消或结束
type OnRequestStop func(sh *SchemeHandler, req *ResourceRequest)

// SchemeHandler 引擎侧的 scheme 处理器，只保存两个回调
type SchemeHandler struct {
	mu      sync.RWMutex
	onStart OnRequestStart
	onStop  OnRequestStop
}

// CreateSchemeHandler 创建空处理器
func CreateSchemeHandler() *SchemeHandler {
	return &SchemeHandler{}
}

func (sh *SchemeHandler) SetOnRequestStart(cb OnRequestStart) {
	sh.mu.Lock()
	sh.onStart = cb
	sh.mu.Unlock()
}

func (sh *SchemeHandler) SetOnRequestStop(cb OnRequestStop) {
	sh.mu.Lock()
	sh.onStop = cb
	sh.mu.Unlock()
}

func (sh *SchemeHandler) startCallback() OnRequestStart {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.onStart
}

func (sh *SchemeHandler) stopCallback() OnRequestStop {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.onStop
}
