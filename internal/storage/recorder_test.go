package storage

import (
	"bytes"
	"context"
	"testing"

	"schemebridge/internal/logger"
	"schemebridge/internal/scheme"
	"schemebridge/pkg/arkweb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(":memory:", "test_", logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func request(id, url string) *scheme.Request {
	req := arkweb.NewResourceRequest()
	req.ID = id
	req.URL = url
	req.Method = "GET"
	req.ResourceType = arkweb.ResourceTypeScript
	return scheme.NewRequest(req)
}

func TestOpenUsesPrefix(t *testing.T) {
	db := openTestDB(t)
	assert.True(t, db.Migrator().HasTable("test_request_records"))
}

func TestRecorderLifecycle(t *testing.T) {
	db := openTestDB(t)
	rec := NewRecorder(db, "s1", nil)
	rec.SchemeOf = func(string) string { return "app" }

	rec.Observe(scheme.Event{Kind: scheme.EventIntercepted, RequestID: "r1", Request: request("r1", "app://x/a.js")})
	rec.Observe(scheme.Event{Kind: scheme.EventResponded, RequestID: "r1", Status: 200})
	rec.Observe(scheme.Event{Kind: scheme.EventData, RequestID: "r1", Bytes: 5})
	rec.Observe(scheme.Event{Kind: scheme.EventData, RequestID: "r1", Bytes: 7})
	rec.Observe(scheme.Event{Kind: scheme.EventFinished, RequestID: "r1"})

	rec.Observe(scheme.Event{Kind: scheme.EventPassed, RequestID: "r2", Request: request("r2", "app://x/b"), Reason: scheme.ReasonDeclined})

	rec.Observe(scheme.Event{Kind: scheme.EventIntercepted, RequestID: "r3", Request: request("r3", "app://x/c")})
	rec.Observe(scheme.Event{Kind: scheme.EventFailed, RequestID: "r3", NetError: -101})

	rec.Observe(scheme.Event{Kind: scheme.EventIntercepted, RequestID: "r4", Request: request("r4", "app://x/d")})
	rec.Observe(scheme.Event{Kind: scheme.EventStopped, RequestID: "r4"})
	rec.Observe(scheme.Event{Kind: scheme.EventFinished, RequestID: "r4"})

	rec.Observe(scheme.Event{Kind: scheme.EventFinished, RequestID: "unknown"})
	rec.Close()
	rec.Close()
	rec.Observe(scheme.Event{Kind: scheme.EventPassed, RequestID: "late"})

	rows, err := ListRecords(context.Background(), db, "s1", 0)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	byID := map[string]RequestRecord{}
	for _, r := range rows {
		byID[r.RequestID] = r
	}
	r1 := byID["r1"]
	assert.Equal(t, OutcomeFinished, r1.Outcome)
	assert.Equal(t, int32(200), r1.Status)
	assert.Equal(t, int64(12), r1.BodyBytes)
	assert.Equal(t, "app", r1.Scheme)
	assert.Equal(t, arkweb.ResourceTypeScript, r1.ResourceType)
	assert.True(t, r1.Intercepted)
	require.NotNil(t, r1.EndedAt)

	assert.Equal(t, OutcomePassed, byID["r2"].Outcome)
	assert.False(t, byID["r2"].Intercepted)
	assert.Equal(t, OutcomeFailed, byID["r3"].Outcome)
	assert.Equal(t, int32(-101), byID["r3"].NetError)
	assert.Equal(t, OutcomeStopped, byID["r4"].Outcome)

	m := r1.ToModel()
	assert.Equal(t, "s1", m.SessionID)
	assert.NotZero(t, m.EndedAt)

	limited, err := ListRecords(context.Background(), db, "s1", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	other, err := ListRecords(context.Background(), db, "s2", 0)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestGormLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	gl := NewGormLogger(logger.NewWithWriter(&buf, "debug"))

	gl.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	gl.Warn(context.Background(), "shown")
	assert.Equal(t, "shown", gjson.Get(buf.String(), "message").String())
}
