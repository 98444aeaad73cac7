package httpengine

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"schemebridge/internal/neterror"
	"schemebridge/internal/rules"
	"schemebridge/pkg/arkweb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineHandler(start arkweb.OnRequestStart, stop arkweb.OnRequestStop) *arkweb.SchemeHandler {
	sh := arkweb.CreateSchemeHandler()
	sh.SetOnRequestStart(start)
	sh.SetOnRequestStop(stop)
	return sh
}

func TestInterceptedStreamsResponse(t *testing.T) {
	d := arkweb.NewDispatcher()
	var got *arkweb.ResourceRequest
	d.Insert("app", engineHandler(func(_ context.Context, _ *arkweb.SchemeHandler, req *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool {
		got = req
		go func() {
			resp := arkweb.NewResponse()
			resp.Status = 201
			resp.MimeType = "text/plain"
			resp.Encoding = "utf-8"
			resp.Headers["X-Test"] = "1"
			_ = rh.DidReceiveResponse(resp)
			_ = rh.DidReceiveData([]byte("hello "))
			_ = rh.DidReceiveData([]byte("world"))
			_ = rh.DidFinish()
		}()
		return true
	}, nil))

	h := &Handler{Dispatcher: d, Scheme: "app"}
	r := httptest.NewRequest(http.MethodGet, "http://app.local/index.html", nil)
	r.Header.Set("Sec-Fetch-Dest", "document")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, 201, w.Code)
	assert.Equal(t, "hello world", w.Body.String())
	assert.Equal(t, "1", w.Header().Get("X-Test"))
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, w.Flushed)

	require.NotNil(t, got)
	assert.Equal(t, "http://app.local/index.html", got.URL)
	assert.Equal(t, arkweb.ResourceTypeMainFrame, got.ResourceType)
	assert.True(t, got.IsMainFrame)
	assert.NotEmpty(t, got.ID)
}

func TestNotInterceptedFallsBack(t *testing.T) {
	d := arkweb.NewDispatcher()
	d.Insert("app", engineHandler(func(context.Context, *arkweb.SchemeHandler, *arkweb.ResourceRequest, arkweb.ResourceHandler) bool {
		return false
	}, nil))

	h := &Handler{Dispatcher: d, Scheme: "app"}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	h.Fallback = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "static")
	})
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, "static", w.Body.String())
}

func TestRouteResolvesScheme(t *testing.T) {
	d := arkweb.NewDispatcher()
	var schemes []string
	for _, s := range []string{"api", "http"} {
		s := s
		d.Insert(s, engineHandler(func(context.Context, *arkweb.SchemeHandler, *arkweb.ResourceRequest, arkweb.ResourceHandler) bool {
			schemes = append(schemes, s)
			return false
		}, nil))
	}
	h := &Handler{
		Dispatcher: d,
		Resolver:   rules.New([]rules.Route{{Scheme: "api", Pattern: "http://app.local/api/", Mode: rules.ModePrefix}}),
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://app.local/api/users", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://app.local/other", nil))
	assert.Equal(t, []string{"api", "http"}, schemes)
}

func TestFailWritesBadGateway(t *testing.T) {
	d := arkweb.NewDispatcher()
	d.Insert("app", engineHandler(func(_ context.Context, _ *arkweb.SchemeHandler, _ *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool {
		require.NoError(t, rh.DidFailWithError(int32(neterror.ErrConnectionReset), "", true))
		assert.ErrorIs(t, rh.DidFinish(), errCompleted)
		return true
	}, nil))

	w := httptest.NewRecorder()
	(&Handler{Dispatcher: d, Scheme: "app"}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "ERR_CONNECTION_RESET", w.Header().Get("X-Net-Error"))
	assert.Equal(t, "-101", w.Header().Get("X-Net-Error-Code"))
	assert.Equal(t, "ERR_CONNECTION_RESET", w.Body.String())
}

func TestFailAfterHeadersAborts(t *testing.T) {
	d := arkweb.NewDispatcher()
	d.Insert("app", engineHandler(func(_ context.Context, _ *arkweb.SchemeHandler, _ *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool {
		_ = rh.DidReceiveResponse(arkweb.NewResponse())
		_ = rh.DidFailWithError(int32(neterror.ErrFailed), "", false)
		return true
	}, nil))

	w := httptest.NewRecorder()
	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		(&Handler{Dispatcher: d, Scheme: "app"}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWriterOrdering(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	assert.ErrorIs(t, rw.DidReceiveData([]byte("x")), errNoResponse)
	assert.ErrorIs(t, rw.DidFinish(), errNoResponse)
	require.NoError(t, rw.DidReceiveResponse(arkweb.NewResponse()))
	assert.ErrorIs(t, rw.DidReceiveResponse(arkweb.NewResponse()), errResponseWritten)
	require.NoError(t, rw.DidFinish())
	assert.ErrorIs(t, rw.DidReceiveData([]byte("x")), errCompleted)
	assert.False(t, rw.markDone())
}

func TestClientDisconnectDeliversStop(t *testing.T) {
	d := arkweb.NewDispatcher()
	started := make(chan struct{})
	stopped := make(chan string, 1)
	var once sync.Once
	d.Insert("http", engineHandler(func(_ context.Context, _ *arkweb.SchemeHandler, _ *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool {
		once.Do(func() { close(started) })
		return true
	}, func(_ *arkweb.SchemeHandler, req *arkweb.ResourceRequest) {
		stopped <- req.ID
	}))

	srv := httptest.NewServer(&Handler{Dispatcher: d})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/slow", nil)
	require.NoError(t, err)
	errCh := make(chan error, 1)
	go func() {
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			resp.Body.Close()
		}
		errCh <- err
	}()

	<-started
	cancel()
	assert.Error(t, <-errCh)

	select {
	case id := <-stopped:
		assert.NotEmpty(t, id)
	case <-time.After(5 * time.Second):
		t.Fatal("未收到结束事件")
	}
}
