package cdp

import (
	"context"
	"net/url"
	"time"

	cdpadapter "schemebridge/internal/adapter/cdp"
	"schemebridge/pkg/arkweb"
	"schemebridge/pkg/model"

	"github.com/mafredri/cdp/protocol/fetch"
)

// consume 持续接收拦截事件并按并发限制分发处理，ctx 取消表示主动停止
func (m *Manager) consume(ctx context.Context, ts *targetSession, rp fetch.RequestPausedClient) {
	defer rp.Close()

	m.log.Info("开始消费拦截事件流", "target", string(ts.id))
	for {
		ev, err := rp.Recv()
		if err != nil {
			if ctx.Err() != nil {
				m.log.Debug("拦截事件流已停止", "target", string(ts.id))
				return
			}
			m.log.Debug("拦截事件流结束", "target", string(ts.id), "error", err)
			m.handleTargetStreamClosed(ts)
			return
		}
		m.dispatchPaused(ts, ev)
	}
}

// handleTargetStreamClosed 拦截流终止后移除目标
func (m *Manager) handleTargetStreamClosed(ts *targetSession) {
	m.targetsMu.Lock()
	cur, ok := m.targets[ts.id]
	if ok && cur == ts {
		delete(m.targets, ts.id)
	}
	m.targetsMu.Unlock()
	if ok && cur == ts {
		m.log.Warn("拦截流被中断，自动移除目标", "target", string(ts.id))
	}
	m.closeTargetSession(ts)
}

// dispatchPaused 提交到工作池，队列已满时降级放行
func (m *Manager) dispatchPaused(ts *targetSession, ev *fetch.RequestPausedReply) {
	if !m.pool.submit(func() { m.handle(ts, ev) }) {
		m.degradeAndContinue(ts, ev, "并发队列已满")
	}
}

// handle 将一次拦截交给对应 scheme 的处理器，未拦截时放行
func (m *Manager) handle(ts *targetSession, ev *fetch.RequestPausedReply) {
	start := time.Now()
	req := cdpadapter.ToResourceRequest(ev)
	scheme := m.resolve(req)

	rh := newResourceHandler(ts.ctx, ts.fetch, ev.RequestID, time.Second, func(err error) {
		ts.forget(ev.RequestID)
		if err != nil {
			m.log.Err(err, "提交拦截结果失败", "target", string(ts.id), "url", req.URL)
		}
	})
	if !ts.track(ev.RequestID, &inflight{scheme: scheme, req: req, rh: rh}) {
		return
	}

	ctx, cancel := context.WithTimeout(ts.ctx, m.processTimeout())
	intercepted := m.dispatcher.DispatchStart(ctx, scheme, req, rh)
	cancel()

	if !intercepted {
		ts.forget(ev.RequestID)
		if rh.markDone() {
			m.continueRequest(ts, ev)
		}
		m.log.Debug("请求未拦截，已放行", "scheme", scheme, "url", req.URL, "duration", time.Since(start))
		return
	}
	m.log.Debug("请求已拦截", "scheme", scheme, "url", req.URL, "duration", time.Since(start))
}

// resolve 先按路由匹配，未命中时使用 URL 自身的 scheme
func (m *Manager) resolve(req *arkweb.ResourceRequest) string {
	if m.resolver != nil {
		if s, ok := m.resolver.Match(req.URL, req.Method); ok {
			return s
		}
	}
	if u, err := url.Parse(req.URL); err == nil {
		return u.Scheme
	}
	return ""
}

func (m *Manager) continueRequest(ts *targetSession, ev *fetch.RequestPausedReply) {
	ctx, cancel := context.WithTimeout(ts.ctx, time.Second)
	defer cancel()
	if err := ts.fetch.ContinueRequest(ctx, &fetch.ContinueRequestArgs{RequestID: ev.RequestID}); err != nil {
		m.log.Err(err, "放行请求失败", "target", string(ts.id), "url", ev.Request.URL)
	}
}

// degradeAndContinue 统一的降级处理：直接放行请求
func (m *Manager) degradeAndContinue(ts *targetSession, ev *fetch.RequestPausedReply, reason string) {
	m.log.Warn("执行降级策略：直接放行", "target", string(ts.id), "reason", reason, "requestID", string(ev.RequestID))
	m.continueRequest(ts, ev)
	m.sendEvent(model.Event{
		Type:      model.EventDegraded,
		Target:    ts.id,
		RequestID: string(ev.RequestID),
		URL:       ev.Request.URL,
		Method:    ev.Request.Method,
		Reason:    reason,
	})
}

// track 登记进行中的请求，目标已关闭时返回 false
func (ts *targetSession) track(id fetch.RequestID, in *inflight) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.closed {
		return false
	}
	ts.inflight[id] = in
	return true
}

func (ts *targetSession) forget(id fetch.RequestID) {
	ts.mu.Lock()
	delete(ts.inflight, id)
	ts.mu.Unlock()
}

// pending 进行中的拦截请求数量
func (ts *targetSession) pending() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.inflight)
}
