package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemebridge/internal/neterror"
)

func TestResourceHandlerFinishOnce(t *testing.T) {
	engine := &fakeEngine{}
	h := NewResourceHandler("r1", engine, nil)

	resp := NewResponse()
	resp.SetStatus(200)
	require.NoError(t, h.DidReceiveResponse(resp))
	require.NoError(t, h.DidReceiveResponseBody([]byte("a")))
	require.NoError(t, h.DidReceiveResponseBody([]byte("b")))
	require.NoError(t, h.DidFinish())
	assert.True(t, h.IsFinished())

	assert.ErrorIs(t, h.DidFinish(), ErrAlreadyFinished)
	assert.ErrorIs(t, h.DidFailWithError(neterror.ErrFailed, "x", false), ErrAlreadyFinished)
	assert.ErrorIs(t, h.DidReceiveResponse(resp), ErrAlreadyFinished)
	assert.ErrorIs(t, h.DidReceiveResponseBody([]byte("c")), ErrAlreadyFinished)

	assert.Equal(t, 1, engine.finished)
	assert.Len(t, engine.data, 2)
	assert.Equal(t, int32(200), engine.responses[0].Status)
}

func TestResourceHandlerFailThenFinish(t *testing.T) {
	engine := &fakeEngine{}
	h := NewResourceHandler("r1", engine, nil)

	err := h.DidFailWithError(neterror.ErrConnectionReset, "ERR_CONNECTION_RESET", false)
	assert.Equal(t, NetOK, CodeOf(err))

	err = h.DidFinish()
	assert.Equal(t, ErrorUnknown, CodeOf(err))
	assert.Equal(t, []int32{int32(neterror.ErrConnectionReset)}, engine.failed)
	assert.Zero(t, engine.finished)
}

func TestResourceHandlerInvalidParam(t *testing.T) {
	h := NewResourceHandler("r1", nil, nil)
	assert.Equal(t, InvalidParam, CodeOf(h.DidReceiveResponse(NewResponse())))
	assert.Equal(t, InvalidParam, CodeOf(h.DidReceiveResponseBody(nil)))
	assert.Equal(t, InvalidParam, CodeOf(h.DidFinish()))
	assert.Equal(t, InvalidParam, CodeOf(h.DidFailWithError(neterror.ErrFailed, "", false)))
	assert.False(t, h.IsFinished())

	engine := &fakeEngine{}
	h = NewResourceHandler("r2", engine, nil)
	assert.ErrorIs(t, h.DidReceiveResponse(nil), ErrInvalidParam)

	engine.reject = true
	assert.ErrorIs(t, h.DidFinish(), ErrInvalidParam)
	assert.False(t, h.IsFinished())
}

func TestResourceHandlerSetFinishedSkipsEngine(t *testing.T) {
	engine := &fakeEngine{}
	h := NewResourceHandler("r1", engine, nil)
	h.SetFinished()

	assert.ErrorIs(t, h.DidReceiveResponseBody([]byte("x")), ErrAlreadyFinished)
	assert.Zero(t, engine.calls())
}

func TestResourceHandlerDestroyIdempotent(t *testing.T) {
	engine := &fakeEngine{}
	h := NewResourceHandler("r1", engine, nil)
	h.Destroy()
	h.Destroy()
	assert.Equal(t, 1, engine.destroyed)
	assert.ErrorIs(t, h.DidFinish(), ErrInvalidParam)
}

func TestResourceHandlerObserverEvents(t *testing.T) {
	obs := &recordingObserver{}
	h := NewResourceHandler("r1", &fakeEngine{}, obs)

	resp := NewResponse()
	resp.SetStatus(404)
	require.NoError(t, h.DidReceiveResponse(resp))
	require.NoError(t, h.DidReceiveResponseBody([]byte("abc")))
	require.NoError(t, h.DidFinish())

	assert.Equal(t, []EventKind{EventResponded, EventData, EventFinished}, obs.kinds())
	assert.Equal(t, int32(404), obs.events[0].Status)
	assert.Equal(t, 3, obs.events[1].Bytes)
}
