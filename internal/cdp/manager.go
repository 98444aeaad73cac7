// Package cdp 基于 Chrome DevTools Protocol Fetch 域的引擎后端
package cdp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"schemebridge/internal/logger"
	"schemebridge/internal/rules"
	"schemebridge/pkg/arkweb"
	"schemebridge/pkg/model"

	"github.com/mafredri/cdp"
	"github.com/mafredri/cdp/devtool"
	"github.com/mafredri/cdp/protocol/fetch"
	"github.com/mafredri/cdp/rpcc"
)

// Dispatcher 按 scheme 分发拦截事件
type Dispatcher interface {
	DispatchStart(ctx context.Context, scheme string, req *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool
	DispatchStop(scheme string, req *arkweb.ResourceRequest)
}

// Resolver 将请求映射到 scheme
type Resolver interface {
	Match(url, method string) (string, bool)
	Routes() []rules.Route
}

// Options 管理器选项
type Options struct {
	DevtoolsURL      string
	Workers          int
	QueueSize        int
	ProcessTimeoutMS int
}

type Manager struct {
	devtoolsURL      string
	dispatcher       Dispatcher
	resolver         Resolver
	events           chan model.Event
	log              logger.Logger
	processTimeoutMS int
	pool             *workerPool
	enabled          atomic.Bool

	targetsMu sync.Mutex
	targets   map[model.TargetID]*targetSession
}

type targetSession struct {
	id     model.TargetID
	conn   *rpcc.Conn
	client *cdp.Client
	fetch  fetchAPI
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	inflight map[fetch.RequestID]*inflight
	closed   bool

	// enableMu 串行化同一目标的启用、刷新与停用
	enableMu   sync.Mutex
	stream     fetch.RequestPausedClient
	stopStream context.CancelFunc
}

type inflight struct {
	scheme string
	req    *arkweb.ResourceRequest
	rh     *resourceHandler
}

// New 创建管理器，events 可为 nil
func New(opts Options, d Dispatcher, r Resolver, events chan model.Event, l logger.Logger) *Manager {
	if l == nil {
		l = logger.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 8
	}
	queue := opts.QueueSize
	if queue <= 0 {
		queue = 256
	}
	return &Manager{
		devtoolsURL:      opts.DevtoolsURL,
		dispatcher:       d,
		resolver:         r,
		events:           events,
		log:              l,
		processTimeoutMS: opts.ProcessTimeoutMS,
		pool:             newWorkerPool(workers, queue),
		targets:          make(map[model.TargetID]*targetSession),
	}
}

// ListTargets 列出调试端点上的页面目标
func (m *Manager) ListTargets(ctx context.Context) ([]model.TargetInfo, error) {
	targets, err := devtool.New(m.devtoolsURL).List(ctx)
	if err != nil {
		return nil, err
	}
	m.targetsMu.Lock()
	defer m.targetsMu.Unlock()
	out := make([]model.TargetInfo, 0, len(targets))
	for _, t := range targets {
		_, attached := m.targets[model.TargetID(t.ID)]
		out = append(out, model.TargetInfo{
			ID:        model.TargetID(t.ID),
			Type:      string(t.Type),
			URL:       t.URL,
			Title:     t.Title,
			IsCurrent: attached,
		})
	}
	return out, nil
}

// AttachTarget 连接目标，target 为空时选择第一个 page
func (m *Manager) AttachTarget(ctx context.Context, target model.TargetID) (model.TargetID, error) {
	targets, err := devtool.New(m.devtoolsURL).List(ctx)
	if err != nil {
		return "", err
	}
	var sel *devtool.Target
	for _, t := range targets {
		if target == "" && t.Type == devtool.Page {
			sel = t
			break
		}
		if string(t.ID) == string(target) {
			sel = t
			break
		}
	}
	if sel == nil {
		return "", fmt.Errorf("未找到目标: %s", target)
	}

	id := model.TargetID(sel.ID)
	m.targetsMu.Lock()
	if _, ok := m.targets[id]; ok {
		m.targetsMu.Unlock()
		return id, nil
	}
	m.targetsMu.Unlock()

	conn, err := rpcc.DialContext(ctx, sel.WebSocketDebuggerURL)
	if err != nil {
		return "", err
	}
	client := cdp.NewClient(conn)
	tctx, cancel := context.WithCancel(context.Background())
	ts := &targetSession{
		id:       id,
		conn:     conn,
		client:   client,
		fetch:    client.Fetch,
		ctx:      tctx,
		cancel:   cancel,
		inflight: make(map[fetch.RequestID]*inflight),
	}

	m.targetsMu.Lock()
	m.targets[id] = ts
	m.targetsMu.Unlock()
	m.log.Info("已附加目标", "target", string(id), "url", sel.URL)

	if m.enabled.Load() {
		if err := m.enableTarget(ts); err != nil {
			m.DetachTarget(id)
			return "", err
		}
	}
	return id, nil
}

// DetachTarget 断开目标，未完成的拦截请求收到结束事件
func (m *Manager) DetachTarget(id model.TargetID) {
	m.targetsMu.Lock()
	ts, ok := m.targets[id]
	delete(m.targets, id)
	m.targetsMu.Unlock()
	if ok {
		m.closeTargetSession(ts)
	}
}

// Enable 在所有已附加目标上启用请求阶段拦截
func (m *Manager) Enable() error {
	m.enabled.Store(true)
	for _, ts := range m.snapshotTargets() {
		if err := m.enableTarget(ts); err != nil {
			return err
		}
	}
	return nil
}

// Disable 停用拦截并停止事件消费，目标保持连接
func (m *Manager) Disable() error {
	m.enabled.Store(false)
	var firstErr error
	for _, ts := range m.snapshotTargets() {
		if err := m.disableTarget(ts); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RefreshPatterns 路由变更后按新路由重新下发拦截模式，未启用时不做任何事
func (m *Manager) RefreshPatterns() error {
	if !m.enabled.Load() {
		return nil
	}
	var firstErr error
	for _, ts := range m.snapshotTargets() {
		ts.enableMu.Lock()
		err := ts.client.Fetch.Enable(ts.ctx, &fetch.EnableArgs{Patterns: m.patterns()})
		ts.enableMu.Unlock()
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Enabled 是否处于拦截状态
func (m *Manager) Enabled() bool { return m.enabled.Load() }

// Close 断开全部目标并停止工作池
func (m *Manager) Close() {
	m.enabled.Store(false)
	m.targetsMu.Lock()
	targets := m.targets
	m.targets = make(map[model.TargetID]*targetSession)
	m.targetsMu.Unlock()
	for _, ts := range targets {
		m.closeTargetSession(ts)
	}
	m.pool.stop()
}

func (m *Manager) snapshotTargets() []*targetSession {
	m.targetsMu.Lock()
	defer m.targetsMu.Unlock()
	out := make([]*targetSession, 0, len(m.targets))
	for _, ts := range m.targets {
		out = append(out, ts)
	}
	return out
}

// enableTarget 每个目标只保留一个事件流，重复启用只刷新拦截模式
func (m *Manager) enableTarget(ts *targetSession) error {
	ts.enableMu.Lock()
	defer ts.enableMu.Unlock()

	created := false
	if ts.stream == nil {
		sctx, cancel := context.WithCancel(ts.ctx)
		rp, err := ts.client.Fetch.RequestPaused(sctx)
		if err != nil {
			cancel()
			return err
		}
		ts.stream, ts.stopStream = rp, cancel
		created = true
		go m.consume(sctx, ts, rp)
	}
	if err := ts.client.Fetch.Enable(ts.ctx, &fetch.EnableArgs{Patterns: m.patterns()}); err != nil {
		if created {
			ts.closeStream()
		}
		return err
	}
	m.log.Info("已启用拦截", "target", string(ts.id))
	return nil
}

func (m *Manager) disableTarget(ts *targetSession) error {
	ts.enableMu.Lock()
	defer ts.enableMu.Unlock()
	ts.closeStream()
	return ts.client.Fetch.Disable(ts.ctx)
}

// closeStream 停止当前事件流，调用方持有 enableMu
func (ts *targetSession) closeStream() {
	if ts.stream == nil {
		return
	}
	ts.stopStream()
	_ = ts.stream.Close()
	ts.stream, ts.stopStream = nil, nil
}

// patterns 每条路由一个请求阶段模式，存在正则路由或没有路由时拦截全部请求
func (m *Manager) patterns() []fetch.RequestPattern {
	var routes []rules.Route
	if m.resolver != nil {
		routes = m.resolver.Routes()
	}
	return requestPatterns(routes)
}

func requestPatterns(routes []rules.Route) []fetch.RequestPattern {
	urls := []string{"*"}
	if len(routes) > 0 && !hasRegex(routes) {
		urls = urls[:0]
		for _, r := range routes {
			switch r.Mode {
			case rules.ModePrefix:
				urls = append(urls, escapePattern(r.Pattern)+"*")
			case rules.ModeExact:
				urls = append(urls, escapePattern(r.Pattern))
			default:
				urls = append(urls, r.Pattern)
			}
		}
	}
	out := make([]fetch.RequestPattern, 0, len(urls))
	for i := range urls {
		u := urls[i]
		out = append(out, fetch.RequestPattern{URLPattern: &u, RequestStage: fetch.RequestStageRequest})
	}
	return out
}

func hasRegex(routes []rules.Route) bool {
	for _, r := range routes {
		if r.Mode == rules.ModeRegex {
			return true
		}
	}
	return false
}

// escapePattern 转义 CDP 模式中的通配符
func escapePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)
	return r.Replace(s)
}

func (m *Manager) processTimeout() time.Duration {
	if m.processTimeoutMS <= 0 {
		return 3 * time.Second
	}
	return time.Duration(m.processTimeoutMS) * time.Millisecond
}

// closeTargetSession 关闭连接并向未完成的拦截请求分发结束事件
func (m *Manager) closeTargetSession(ts *targetSession) {
	ts.mu.Lock()
	if ts.closed {
		ts.mu.Unlock()
		return
	}
	ts.closed = true
	pending := ts.inflight
	ts.inflight = make(map[fetch.RequestID]*inflight)
	ts.mu.Unlock()

	ts.enableMu.Lock()
	ts.closeStream()
	ts.enableMu.Unlock()

	for _, in := range pending {
		if in.rh.markDone() {
			m.dispatcher.DispatchStop(in.scheme, in.req)
		}
	}
	ts.cancel()
	if ts.conn != nil {
		if err := ts.conn.Close(); err != nil {
			m.log.Debug("关闭目标连接失败", "target", string(ts.id), "error", err)
		}
	}
	m.log.Info("目标已分离", "target", string(ts.id), "stopped", len(pending))
}

// sendEvent 安全发送事件到通道，自动添加时间戳
func (m *Manager) sendEvent(evt model.Event) {
	if m.events == nil {
		return
	}
	evt.Timestamp = time.Now().UnixMilli()
	select {
	case m.events <- evt:
	default:
	}
}
