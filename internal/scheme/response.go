package scheme

import (
	"sync"

	"schemebridge/pkg/arkweb"
)

// Response 可变的响应构造器，持有一个引擎响应结构
type Response struct {
	mu   sync.RWMutex
	resp *arkweb.Response
}

func NewResponse() *Response {
	return &Response{resp: arkweb.NewResponse()}
}

// Engine 返回交给引擎的响应副本
func (r *Response) Engine() *arkweb.Response {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.Clone()
}

func (r *Response) URL() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.URL
}

func (r *Response) SetURL(url string) error {
	return r.setString(&r.resp.URL, url)
}

func (r *Response) Status() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.Status
}

func (r *Response) SetStatus(status int32) {
	r.mu.Lock()
	r.resp.Status = status
	r.mu.Unlock()
}

func (r *Response) StatusText() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.StatusText
}

func (r *Response) SetStatusText(text string) error {
	return r.setString(&r.resp.StatusText, text)
}

func (r *Response) MimeType() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.MimeType
}

func (r *Response) SetMimeType(mime string) error {
	return r.setString(&r.resp.MimeType, mime)
}

func (r *Response) Encoding() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.Encoding
}

func (r *Response) SetEncoding(enc string) error {
	return r.setString(&r.resp.Encoding, enc)
}

// HeaderByName 按名称精确查找响应头
func (r *Response) HeaderByName(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.Headers[name]
}

// SetHeaderByName overwrite 为 false 时保留已存在的值
func (r *Response) SetHeaderByName(name, value string, overwrite bool) error {
	if name == "" || value == "" {
		return ErrInvalidParam
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.resp.Headers[name]; ok && !overwrite {
		return nil
	}
	r.resp.Headers[name] = value
	return nil
}

func (r *Response) ErrorCode() int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.ErrorCode
}

func (r *Response) ErrorDescription() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resp.ErrorDescription
}

func (r *Response) SetErrorCode(code int32, description string) {
	r.mu.Lock()
	r.resp.ErrorCode = code
	r.resp.ErrorDescription = description
	r.mu.Unlock()
}

func (r *Response) setString(field *string, value string) error {
	if value == "" {
		return ErrInvalidParam
	}
	r.mu.Lock()
	*field = value
	r.mu.Unlock()
	return nil
}
