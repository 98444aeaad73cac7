package session

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"schemebridge/internal/cdp/cdptest"
	"schemebridge/internal/rules"
	"schemebridge/internal/storage"
	"schemebridge/pkg/arkweb"
	"schemebridge/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const echoScript = `
const handler = new WebSchemeHandler();
handler.onRequestStart((req, rh) => {
	if (req.getRequestUrl().endsWith("/skip")) {
		return false;
	}
	if (req.getRequestUrl().endsWith("/hang")) {
		return true;
	}
	const resp = new WebSchemeHandlerResponse();
	resp.setStatus(200);
	resp.setMimeType("text/plain");
	resp.setHeaderByName("X-Scheme", "app", true);
	rh.didReceiveResponse(resp);
	rh.didReceiveResponseBody(new Uint8Array([111, 107]).buffer);
	rh.didFinish();
	return true;
});
handler.onRequestStop((req) => {
	globalThis.lastStopped = req.getRequestUrl();
});
registerSchemeHandler("app", handler);
`

func newTestSession(t *testing.T, withDB bool) *Session {
	t.Helper()
	opts := Options{}
	if withDB {
		db, err := storage.Open(":memory:", "t_", nil)
		require.NoError(t, err)
		t.Cleanup(func() { _ = storage.Close(db) })
		opts.DB = db
	}
	s, err := New("s1", model.SessionConfig{QueueSize: 16}, opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	require.NoError(t, s.LoadScript(context.Background(), "echo.js", echoScript))
	return s
}

func drain(ch <-chan model.Event) []model.Event {
	var out []model.Event
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestHTTPRoundTrip(t *testing.T) {
	s := newTestSession(t, false)
	assert.Equal(t, []string{"app"}, s.Schemes())

	srv := httptest.NewServer(s.HTTPHandler("app", nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/index")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
	assert.Equal(t, "app", resp.Header.Get("X-Scheme"))

	resp, err = http.Get(srv.URL + "/skip")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var types []string
	for _, ev := range drain(s.Events()) {
		assert.Equal(t, model.SessionID("s1"), ev.Session)
		types = append(types, ev.Type)
		if ev.Type == model.EventIntercepted {
			assert.Equal(t, "app", ev.Scheme)
		}
	}
	assert.Equal(t, []string{
		model.EventIntercepted, model.EventResponded, model.EventFinished, model.EventPassed,
	}, types)
}

func TestStopReachesScript(t *testing.T) {
	s := newTestSession(t, true)

	req := arkweb.NewResourceRequest()
	req.ID = "r1"
	req.URL = "app://x/hang"
	ok := s.DispatchStart(context.Background(), "app", req, nopEngine{})
	require.True(t, ok)
	assert.Equal(t, "app", s.schemeOf("r1"))

	s.DispatchStop("app", req)
	assert.Eventually(t, func() bool {
		var v string
		_ = s.loop.Run(context.Background(), func() {
			v = s.loop.Runtime().Get("lastStopped").String()
		})
		return v == "app://x/hang"
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, s.schemeOf("r1"))

	assert.Eventually(t, func() bool {
		recs, err := s.Records(context.Background(), 0)
		return err == nil && len(recs) == 1 && recs[0].Outcome == storage.OutcomeStopped
	}, 2*time.Second, 10*time.Millisecond)
}

func TestUnregisteredSchemeNotTracked(t *testing.T) {
	s := newTestSession(t, false)
	req := arkweb.NewResourceRequest()
	req.ID = "r1"
	assert.False(t, s.DispatchStart(context.Background(), "other", req, nopEngine{}))
	assert.Empty(t, s.schemeOf("r1"))
}

func TestLoadScriptErrors(t *testing.T) {
	s := newTestSession(t, false)
	err := s.LoadScript(context.Background(), "bad.js", `throw new Error("boom")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	require.NoError(t, s.ReloadScript(context.Background(), "empty.js", `1`))
	assert.Empty(t, s.Schemes())
}

func TestReloadSameScript(t *testing.T) {
	s := newTestSession(t, false)
	require.NoError(t, s.ReloadScript(context.Background(), "echo.js", echoScript))
	require.NoError(t, s.ReloadScript(context.Background(), "echo.js", echoScript))
	assert.Equal(t, []string{"app"}, s.Schemes())
}

func TestRoutesAndDevtools(t *testing.T) {
	s := newTestSession(t, false)
	require.Error(t, s.UpdateRoutes([]rules.Route{{Scheme: "a", Pattern: "(", Mode: rules.ModeRegex}}))
	require.NoError(t, s.UpdateRoutes([]rules.Route{{Scheme: "a", Pattern: "x"}}))
	assert.Len(t, s.Routes(), 1)

	_, err := s.AttachTarget(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoDevtools)
	assert.ErrorIs(t, s.EnableInterception(), ErrNoDevtools)

	recs, err := s.Records(context.Background(), 10)
	assert.NoError(t, err)
	assert.Nil(t, recs)
}

func TestManager(t *testing.T) {
	m := NewManager(nil, nil)
	s, err := m.Create("a", model.SessionConfig{})
	require.NoError(t, err)
	_, err = m.Create("a", model.SessionConfig{})
	assert.Error(t, err)

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.Len(t, m.List(), 1)

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	_, err = m.Create("b", model.SessionConfig{})
	require.NoError(t, err)
	m.CloseAll()
	assert.Empty(t, m.List())
}

type nopEngine struct{}

func (nopEngine) DidReceiveResponse(*arkweb.Response) error    { return nil }
func (nopEngine) DidReceiveData([]byte) error                  { return nil }
func (nopEngine) DidFinish() error                             { return nil }
func (nopEngine) DidFailWithError(int32, string, bool) error   { return nil }
func (nopEngine) Destroy()                                     {}

func TestUpdateRoutesRefreshesInterception(t *testing.T) {
	stub := cdptest.NewDevTools()
	defer stub.Close()

	routeA := []rules.Route{{Scheme: "app", Pattern: "https://a.test/", Mode: rules.ModePrefix}}
	s, err := New("s2", model.SessionConfig{DevToolsURL: stub.URL, QueueSize: 16, Routes: routeA}, Options{})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.UpdateRoutes(routeA))
	assert.Zero(t, stub.Count("Fetch.enable"))

	_, err = s.AttachTarget(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, s.EnableInterception())
	require.NoError(t, s.UpdateRoutes([]rules.Route{{Scheme: "app", Pattern: "https://b.test/", Mode: rules.ModePrefix}}))

	enables := stub.Calls("Fetch.enable")
	require.Len(t, enables, 2)
	assert.Contains(t, enables[0], "https://a.test/*")
	assert.Contains(t, enables[1], "https://b.test/*")
}
