package httpengine

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"schemebridge/internal/neterror"
	"schemebridge/pkg/arkweb"
)

var (
	errCompleted       = errors.New("请求已完成")
	errNoResponse      = errors.New("尚未收到响应头")
	errResponseWritten = errors.New("响应头已提交")
)

// responseWriter 把响应通道的调用写入 http.ResponseWriter，ServeHTTP 返回后不再写入
type responseWriter struct {
	mu          sync.Mutex
	w           http.ResponseWriter
	wroteHeader bool
	done        bool
	aborted     bool
	doneCh      chan struct{}
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w: w, doneCh: make(chan struct{})}
}

func (rw *responseWriter) DidReceiveResponse(resp *arkweb.Response) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.done {
		return errCompleted
	}
	if rw.wroteHeader {
		return errResponseWritten
	}
	if resp == nil {
		return errNoResponse
	}
	header := rw.w.Header()
	for k, v := range resp.Headers {
		header.Set(k, v)
	}
	if resp.MimeType != "" && header.Get("Content-Type") == "" {
		ct := resp.MimeType
		if resp.Encoding != "" {
			ct += "; charset=" + resp.Encoding
		}
		header.Set("Content-Type", ct)
	}
	status := int(resp.Status)
	if status <= 0 {
		status = http.StatusOK
	}
	rw.w.WriteHeader(status)
	rw.wroteHeader = true
	rw.flush()
	return nil
}

func (rw *responseWriter) DidReceiveData(data []byte) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.done {
		return errCompleted
	}
	if !rw.wroteHeader {
		return errNoResponse
	}
	if _, err := rw.w.Write(data); err != nil {
		return err
	}
	rw.flush()
	return nil
}

func (rw *responseWriter) DidFinish() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.done {
		return errCompleted
	}
	if !rw.wroteHeader {
		return errNoResponse
	}
	rw.finishLocked()
	return nil
}

// DidFailWithError 尚未写出响应头且 completeIfNoResponse 时返回 502，其余情况中断连接
func (rw *responseWriter) DidFailWithError(code int32, description string, completeIfNoResponse bool) error {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.done {
		return errCompleted
	}
	name := neterror.Code(code).String()
	if !rw.wroteHeader && completeIfNoResponse {
		h := rw.w.Header()
		h.Set("Content-Type", "text/plain; charset=utf-8")
		h.Set("X-Net-Error", name)
		h.Set("X-Net-Error-Code", strconv.Itoa(int(code)))
		rw.w.WriteHeader(http.StatusBadGateway)
		rw.wroteHeader = true
		if description == "" {
			description = name
		}
		_, _ = rw.w.Write([]byte(description))
	} else {
		rw.aborted = true
	}
	rw.finishLocked()
	return nil
}

func (rw *responseWriter) Destroy() {
	_ = rw.DidFailWithError(int32(neterror.ErrAborted), "", true)
}

func (rw *responseWriter) finishLocked() {
	rw.done = true
	close(rw.doneCh)
}

// markDone 抢占结束权，返回 false 表示已经结束
func (rw *responseWriter) markDone() bool {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	if rw.done {
		return false
	}
	rw.finishLocked()
	return true
}

func (rw *responseWriter) isAborted() bool {
	rw.mu.Lock()
	defer rw.mu.Unlock()
	return rw.aborted
}

func (rw *responseWriter) flush() {
	if f, ok := rw.w.(http.Flusher); ok {
		f.Flush()
	}
}
