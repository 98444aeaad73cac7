package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"schemebridge/internal/rules"
	"schemebridge/internal/storage"
	"schemebridge/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const script = `
const h = new WebSchemeHandler();
h.onRequestStart((req, rh) => {
	rh.didFail(WebNetErrorCode.ERR_NAME_NOT_RESOLVED, true);
	return true;
});
registerSchemeHandler("dns", h);
`

func TestServiceFlow(t *testing.T) {
	db, err := storage.Open(":memory:", "svc_", nil)
	require.NoError(t, err)
	defer storage.Close(db)

	svc := New(db, nil)
	defer svc.Close()

	id, err := svc.StartSession(model.SessionConfig{})
	require.NoError(t, err)
	require.NoError(t, svc.LoadScript(id, "dns.js", script))
	require.NoError(t, svc.UpdateRoutes(id, []rules.Route{{Scheme: "dns", Pattern: "http://*/fail*"}}))

	h, err := svc.HTTPHandler(id, "", nil)
	require.NoError(t, err)
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/fail")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "ERR_NAME_NOT_RESOLVED", string(body))

	events, err := svc.SubscribeEvents(id)
	require.NoError(t, err)
	first := <-events
	assert.Equal(t, model.EventIntercepted, first.Type)
	assert.Equal(t, "dns", first.Scheme)
	second := <-events
	assert.Equal(t, model.EventFailed, second.Type)

	assert.Eventually(t, func() bool {
		recs, err := svc.ListRecords(id, 0)
		return err == nil && len(recs) == 1 && recs[0].Outcome == storage.OutcomeFailed
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, svc.StopSession(id))
	assert.Error(t, svc.StopSession(id))
	_, err = svc.ListRecords(id, 0)
	assert.Error(t, err)
}
