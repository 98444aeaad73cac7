package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"schemebridge/internal/storage"
	api "schemebridge/pkg/api"
	"schemebridge/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appScript = `
const h = new WebSchemeHandler();
h.onRequestStart((req, rh) => {
	if (req.getRequestUrl().endsWith("/index.html")) {
		return false;
	}
	const resp = new WebSchemeHandlerResponse();
	resp.setStatus(200);
	resp.setMimeType("text/plain");
	rh.didReceiveResponse(resp);
	rh.didReceiveResponseBody(new Uint8Array([111, 107]).buffer);
	rh.didFinish();
	return true;
});
registerSchemeHandler("app", h);
`

func newTestApp(t *testing.T) *App {
	t.Helper()
	db, err := storage.Open(":memory:", "gui_", nil)
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close(db) })

	fallback := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "frontend")
	})
	app := NewApp(api.NewService(db, nil), model.SessionConfig{DevToolsURL: "http://127.0.0.1:9222"}, fallback, nil)
	t.Cleanup(func() { app.shutdown(context.Background()) })
	return app
}

func get(t *testing.T, h http.Handler, path string) string {
	t.Helper()
	srv := httptest.NewServer(h)
	defer srv.Close()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestAppServesFrontendWithoutSession(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, "frontend", get(t, app, "/data"))
}

func TestAppRoutesAssetsThroughSession(t *testing.T) {
	app := newTestApp(t)

	id, err := app.StartSession("")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	dir := t.TempDir()
	path := filepath.Join(dir, "handler.js")
	require.NoError(t, os.WriteFile(path, []byte(appScript), 0o644))
	require.NoError(t, app.LoadScriptFile(path))

	assert.Equal(t, "ok", get(t, app, "/data"))
	assert.Equal(t, "frontend", get(t, app, "/index.html"))

	sessions := app.GetSessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, path, sessions[0].Script)
	assert.Equal(t, "http://127.0.0.1:9222", sessions[0].DevToolsURL)

	require.NoError(t, app.StopSession())
	assert.Empty(t, app.GetSessions())
	assert.Equal(t, "frontend", get(t, app, "/data"))
}

func TestAppRequiresSession(t *testing.T) {
	app := newTestApp(t)

	assert.Error(t, app.StopSession())
	assert.Error(t, app.LoadScript("x.js", ""))
	assert.Error(t, app.EnableInterception())
	assert.Error(t, app.AttachSelectedTarget())
	assert.Error(t, app.DetachSelectedTarget())

	targets, err := app.RefreshTargets()
	assert.NoError(t, err)
	assert.Empty(t, targets)

	recs, err := app.Records(10)
	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestAppSetCurrentSession(t *testing.T) {
	app := newTestApp(t)

	_, err := app.StartSession("")
	require.NoError(t, err)
	second, err := app.StartSession("")
	require.NoError(t, err)

	cur, ok := app.GetCurrentSessionID()
	require.True(t, ok)
	assert.Equal(t, second, string(cur))

	require.NoError(t, app.SetCurrentSession(0))
	cur, ok = app.GetCurrentSessionID()
	require.True(t, ok)
	assert.Equal(t, app.GetSessions()[0].ID, string(cur))

	require.NoError(t, app.SetCurrentSession(-1))
	_, ok = app.GetCurrentSessionID()
	assert.False(t, ok)
}
