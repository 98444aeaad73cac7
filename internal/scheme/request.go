package scheme

import (
	"slices"

	"schemebridge/pkg/arkweb"
)

// Request 拦截时刻的请求快照，只读
type Request struct {
	id           string
	url          string
	method       string
	referrer     string
	isRedirect   bool
	isMainFrame  bool
	hasGesture   bool
	headers      []arkweb.Header
	resourceType int32
	frameURL     string
}

// NewRequest 从引擎请求复制快照，req 为 nil 时得到空请求
func NewRequest(req *arkweb.ResourceRequest) *Request {
	if req == nil {
		return &Request{resourceType: -1}
	}
	return &Request{
		id:           req.ID,
		url:          req.URL,
		method:       req.Method,
		referrer:     req.Referrer,
		isRedirect:   req.IsRedirect,
		isMainFrame:  req.IsMainFrame,
		hasGesture:   req.HasGesture,
		headers:      slices.Clone(req.Headers),
		resourceType: req.ResourceType,
		frameURL:     req.FrameURL,
	}
}

func (r *Request) ID() string          { return r.id }
func (r *Request) URL() string         { return r.url }
func (r *Request) Method() string      { return r.method }
func (r *Request) Referrer() string    { return r.referrer }
func (r *Request) IsRedirect() bool    { return r.isRedirect }
func (r *Request) IsMainFrame() bool   { return r.isMainFrame }
func (r *Request) HasGesture() bool    { return r.hasGesture }
func (r *Request) ResourceType() int32 { return r.resourceType }
func (r *Request) FrameURL() string    { return r.frameURL }

// Headers 返回请求头列表的副本
func (r *Request) Headers() []arkweb.Header {
	return slices.Clone(r.headers)
}
