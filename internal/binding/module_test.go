package binding

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"schemebridge/internal/jsloop"
	"schemebridge/internal/logger"
	"schemebridge/internal/scheme"
	"schemebridge/pkg/arkweb"
)

type fakeEngine struct {
	mu       sync.Mutex
	resp     *arkweb.Response
	body     bytes.Buffer
	finished int
	failCode int32
	failDesc string
	complete bool
}

func (e *fakeEngine) DidReceiveResponse(resp *arkweb.Response) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resp = resp
	return nil
}

func (e *fakeEngine) DidReceiveData(data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.body.Write(data)
	return nil
}

func (e *fakeEngine) DidFinish() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.finished++
	return nil
}

func (e *fakeEngine) DidFailWithError(code int32, desc string, complete bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failCode, e.failDesc, e.complete = code, desc, complete
	return nil
}

func (e *fakeEngine) Destroy() {}

type harness struct {
	loop       *jsloop.Loop
	module     *Module
	dispatcher *arkweb.Dispatcher
	table      *scheme.Table
	logs       *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		loop:       jsloop.New(16, nil),
		dispatcher: arkweb.NewDispatcher(),
		table:      scheme.NewTable(),
		logs:       &bytes.Buffer{},
	}
	var err error
	require.NoError(t, h.loop.Run(context.Background(), func() {
		h.module, err = Install(h.loop.Runtime(), Env{
			Table:      h.table,
			Loop:       h.loop,
			Dispatcher: h.dispatcher,
			Logger:     logger.NewWithWriter(h.logs, "debug"),
		})
	}))
	require.NoError(t, err)
	t.Cleanup(func() {
		h.module.Close()
		h.loop.Close()
	})
	return h
}

// eval 在循环上执行脚本并导出结果
func (h *harness) eval(t *testing.T, src string) any {
	t.Helper()
	var (
		out any
		err error
	)
	require.NoError(t, h.loop.Run(context.Background(), func() {
		v, runErr := h.loop.Runtime().RunString(src)
		if runErr != nil {
			err = runErr
			return
		}
		out = v.Export()
	}))
	require.NoError(t, err)
	return out
}

func (h *harness) start(id, url string, engine arkweb.ResourceHandler) bool {
	req := arkweb.NewResourceRequest()
	req.ID = id
	req.URL = url
	req.Method = "GET"
	req.Headers = []arkweb.Header{{Name: "Accept", Value: "text/html"}, {Name: "X-Trace", Value: "7"}}
	req.ResourceType = 0
	return h.dispatcher.DispatchStart(context.Background(), "app", req, engine)
}

func TestInterceptAndRespond(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `
		const handler = new WebSchemeHandler();
		handler.onRequestStart((req, rh) => {
			const resp = new WebSchemeHandlerResponse();
			resp.setUrl(req.getRequestUrl());
			resp.setStatus(200);
			resp.setStatusText("OK");
			resp.setMimeType("text/plain");
			resp.setEncoding("utf-8");
			resp.setHeaderByName("X-Method", req.getRequestMethod(), true);
			rh.didReceiveResponse(resp);
			rh.didReceiveResponseBody(new Uint8Array([104, 105]).buffer);
			rh.didFinish();
			return true;
		});
		registerSchemeHandler("app", handler);
	`)

	engine := &fakeEngine{}
	require.True(t, h.start("1", "app://local/index", engine))

	require.NotNil(t, engine.resp)
	assert.Equal(t, int32(200), engine.resp.Status)
	assert.Equal(t, "OK", engine.resp.StatusText)
	assert.Equal(t, "text/plain", engine.resp.MimeType)
	assert.Equal(t, "app://local/index", engine.resp.URL)
	assert.Equal(t, "GET", engine.resp.Headers["X-Method"])
	assert.Equal(t, "hi", engine.body.String())
	assert.Equal(t, 1, engine.finished)
}

func TestRequestGetters(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `
		var seen = null;
		const handler = new WebSchemeHandler();
		handler.onRequestStart((req) => {
			seen = {
				headers: req.getHeader(),
				referrer: req.getReferrer(),
				redirect: req.isRedirect(),
				mainFrame: req.isMainFrame(),
				gesture: req.hasGesture(),
				body: req.getHttpBodyStream(),
				type: req.getRequestResourceType(),
				frame: req.getFrameUrl(),
			};
			return false;
		});
		registerSchemeHandler("app", handler);
	`)

	assert.False(t, h.start("1", "app://x", &fakeEngine{}))

	out := h.eval(t, `JSON.stringify(seen)`).(string)
	assert.Equal(t, "Accept", gjson.Get(out, "headers.0.headerKey").String())
	assert.Equal(t, "7", gjson.Get(out, "headers.1.headerValue").String())
	assert.False(t, gjson.Get(out, "redirect").Bool())
	assert.False(t, gjson.Get(out, "body").Exists())
	assert.Equal(t, int64(0), gjson.Get(out, "type").Int())

	assert.Equal(t, int64(-1), h.eval(t, `new WebSchemeHandlerRequest().getRequestResourceType()`))
}

func TestNonBooleanResultIsNotIntercepted(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `
		const handler = new WebSchemeHandler();
		handler.onRequestStart(() => "yes");
		registerSchemeHandler("app", handler);
	`)
	assert.False(t, h.start("1", "app://x", &fakeEngine{}))
	assert.Contains(t, h.logs.String(), scheme.ReasonNotBoolean)
}

func TestThrowingCallbackIsNotIntercepted(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `
		const handler = new WebSchemeHandler();
		handler.onRequestStart(() => { throw new Error("nope"); });
		registerSchemeHandler("app", handler);
	`)
	engine := &fakeEngine{}
	assert.False(t, h.start("1", "app://x", engine))
	assert.Zero(t, engine.finished)
}

func TestResourceHandlerErrors(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `
		var codes = [];
		function attempt(fn) {
			try { fn(); codes.push(0); } catch (e) { codes.push(e.code); }
		}
		const handler = new WebSchemeHandler();
		handler.onRequestStart((req, rh) => {
			attempt(() => rh.didFail("bad"));
			attempt(() => rh.didFail("bad", true));
			attempt(() => rh.didFail(12345, true));
			attempt(() => rh.didFail(WebNetErrorCode.NET_OK, true));
			attempt(() => rh.didReceiveResponse());
			attempt(() => rh.didReceiveResponse({}));
			attempt(() => rh.didReceiveResponseBody("text"));
			attempt(() => rh.didFail(WebNetErrorCode.ERR_CONNECTION_RESET, false));
			attempt(() => rh.didFinish());
			attempt(() => rh.didReceiveResponseBody(new ArrayBuffer(1)));
			return true;
		});
		registerSchemeHandler("app", handler);
	`)

	engine := &fakeEngine{}
	require.True(t, h.start("1", "app://x", engine))

	codes := h.eval(t, `codes`).([]any)
	assert.Equal(t, []any{
		int64(401), int64(17100101), int64(17100101), int64(17100101),
		int64(401), int64(401), int64(401),
		int64(0), int64(17100021), int64(17100021),
	}, codes)
	assert.Equal(t, int32(-101), engine.failCode)
	assert.Equal(t, "ERR_CONNECTION_RESET", engine.failDesc)
	assert.False(t, engine.complete)
}

func TestDidFailSingleArgUnknownCode(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `
		const handler = new WebSchemeHandler();
		handler.onRequestStart((req, rh) => { rh.didFail(-9999); return true; });
		registerSchemeHandler("app", handler);
	`)
	engine := &fakeEngine{}
	require.True(t, h.start("1", "app://x", engine))
	assert.Equal(t, int32(-9999), engine.failCode)
	assert.Equal(t, "UNKNOWN_ERROR_CODE", engine.failDesc)
}

func TestResponseValidation(t *testing.T) {
	h := newHarness(t)
	out := h.eval(t, `
		const resp = new WebSchemeHandlerResponse();
		const codes = [];
		for (const fn of [
			() => resp.setHeaderByName("a", "b"),
			() => resp.setHeaderByName(1, "b", true),
			() => resp.setHeaderByName("a", "b", "yes"),
			() => resp.setNetErrorCode(),
			() => resp.setNetErrorCode("x"),
			() => resp.setStatus("200"),
			() => resp.setUrl(5),
		]) {
			try { fn(); codes.push(0); } catch (e) { codes.push(e.code); }
		}
		resp.setHeaderByName("k", "v1", false);
		resp.setHeaderByName("k", "v2", false);
		resp.setMimeType("");
		resp.setNetErrorCode(WebNetErrorCode.ERR_TIMED_OUT);
		JSON.stringify({
			codes: codes,
			header: resp.getHeaderByName("k"),
			mime: resp.getMimeType(),
			err: resp.getNetErrorCode(),
			status: resp.getStatus(),
		});
	`).(string)

	assert.Equal(t, `[401,401,401,401,401,401,401]`, gjson.Get(out, "codes").Raw)
	assert.Equal(t, "v1", gjson.Get(out, "header").String())
	assert.Equal(t, "", gjson.Get(out, "mime").String())
	assert.Equal(t, int64(-7), gjson.Get(out, "err").Int())
	assert.Equal(t, int64(0), gjson.Get(out, "status").Int())
}

func TestRequestStopDelivered(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `
		var stopped = [];
		const handler = new WebSchemeHandler();
		handler.onRequestStart(() => true);
		handler.onRequestStop((req) => stopped.push(req.getRequestUrl()));
		registerSchemeHandler("app", handler);
	`)

	req := arkweb.NewResourceRequest()
	req.URL = "app://stop"
	h.dispatcher.DispatchStop("app", req)

	assert.Eventually(t, func() bool {
		out := h.eval(t, `stopped.join(",")`)
		return out == "app://stop"
	}, time.Second, 10*time.Millisecond)
}

func TestClearSchemeHandlers(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `
		const handler = new WebSchemeHandler();
		handler.onRequestStart(() => true);
		registerSchemeHandler("app", handler);
		clearSchemeHandlers();
	`)
	assert.False(t, h.start("1", "app://x", &fakeEngine{}))
	assert.Empty(t, h.dispatcher.Schemes())
}

func TestHandlerArgumentChecks(t *testing.T) {
	h := newHarness(t)
	out := h.eval(t, `
		const codes = [];
		for (const fn of [
			() => new WebSchemeHandler().onRequestStart(42),
			() => registerSchemeHandler("app"),
			() => registerSchemeHandler("app", {}),
		]) {
			try { fn(); codes.push(0); } catch (e) { codes.push(e.code); }
		}
		codes;
	`)
	assert.Equal(t, []any{int64(401), int64(401), int64(401)}, out)
}

func TestConsoleRoutesToLogger(t *testing.T) {
	h := newHarness(t)
	h.eval(t, `console.warn("hello", 1, true)`)
	line := h.logs.String()
	assert.Equal(t, "hello 1 true", gjson.Get(line, "message").String())
	assert.Equal(t, "warn", gjson.Get(line, "level").String())
}

func TestEnums(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, int64(-101), h.eval(t, `WebNetErrorCode.ERR_CONNECTION_RESET`))
	assert.Equal(t, int64(4), h.eval(t, `WebMessageType.ARRAY_BUFFER`))
}
