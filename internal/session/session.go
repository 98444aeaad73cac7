package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"schemebridge/internal/adapter/httpengine"
	"schemebridge/internal/binding"
	"schemebridge/internal/cdp"
	"schemebridge/internal/jsloop"
	"schemebridge/internal/logger"
	"schemebridge/internal/rules"
	"schemebridge/internal/scheme"
	"schemebridge/internal/storage"
	"schemebridge/pkg/arkweb"
	"schemebridge/pkg/model"

	"github.com/dop251/goja"
	"gorm.io/gorm"
)

// ErrNoDevtools 未配置调试端点
var ErrNoDevtools = errors.New("未配置 DevTools 地址")

// Session 一个脚本运行时及其分发表、路由与引擎后端
type Session struct {
	ID  model.SessionID
	cfg model.SessionConfig
	log logger.Logger

	loop       *jsloop.Loop
	module     *binding.Module
	table      *scheme.Table
	dispatcher *arkweb.Dispatcher
	matcher    *rules.Engine
	db         *gorm.DB
	recorder   *storage.Recorder
	events     chan model.Event

	// requestID -> 请求摘要，请求结束后删除
	requests sync.Map

	mu     sync.Mutex
	cdp    *cdp.Manager
	closed bool
}

type requestInfo struct {
	scheme string
	url    string
	method string
}

// Options 会话依赖
type Options struct {
	DB     *gorm.DB
	Logger logger.Logger
	// EventBuffer 事件通道容量
	EventBuffer int
}

// New 创建会话：启动脚本循环并安装绑定
func New(id model.SessionID, cfg model.SessionConfig, opts Options) (*Session, error) {
	l := opts.Logger
	if l == nil {
		l = logger.NewNop()
	}
	l = l.With("session", string(id))
	buf := opts.EventBuffer
	if buf <= 0 {
		buf = 256
	}

	s := &Session{
		ID:         id,
		cfg:        cfg,
		log:        l,
		loop:       jsloop.New(cfg.QueueSize, l),
		table:      scheme.NewTable(),
		dispatcher: arkweb.NewDispatcher(),
		matcher:    rules.New(cfg.Routes),
		db:         opts.DB,
		events:     make(chan model.Event, buf),
	}

	observers := scheme.Observers{}
	if s.db != nil {
		s.recorder = storage.NewRecorder(s.db, string(id), l)
		s.recorder.SchemeOf = s.schemeOf
		observers = append(observers, s.recorder)
	}
	observers = append(observers, scheme.ObserverFunc(s.observe))

	var installErr error
	err := s.loop.Run(context.Background(), func() {
		s.module, installErr = binding.Install(s.loop.Runtime(), binding.Env{
			Table:      s.table,
			Loop:       s.loop,
			Dispatcher: s.dispatcher,
			Observer:   observers,
			Logger:     l,
		})
	})
	if err == nil {
		err = installErr
	}
	if err != nil {
		s.loop.Close()
		if s.recorder != nil {
			s.recorder.Close()
		}
		return nil, fmt.Errorf("安装脚本绑定失败: %w", err)
	}
	return s, nil
}

// LoadScript 在会话运行时中执行脚本
func (s *Session) LoadScript(ctx context.Context, name, src string) error {
	var runErr error
	// 包在块中执行，顶层 let/const/class 不会在重载时重复声明
	wrapped := "{" + src + "\n}"
	err := s.loop.Run(ctx, func() {
		_, runErr = s.loop.Runtime().RunScript(name, wrapped)
	})
	if err != nil {
		return err
	}
	if runErr != nil {
		var ex *goja.Exception
		if errors.As(runErr, &ex) {
			return fmt.Errorf("脚本 %s 执行失败: %s", name, ex.Value().String())
		}
		return fmt.Errorf("脚本 %s 执行失败: %w", name, runErr)
	}
	s.log.Info("脚本已加载", "script", name, "schemes", s.dispatcher.Schemes())
	return nil
}

// ReloadScript 清空已注册的处理器后重新执行脚本
func (s *Session) ReloadScript(ctx context.Context, name, src string) error {
	s.dispatcher.Clear()
	s.module.Close()
	return s.LoadScript(ctx, name, src)
}

// UpdateRoutes 替换路由表，已启用 CDP 拦截时同时刷新拦截模式
func (s *Session) UpdateRoutes(routes []rules.Route) error {
	for i, r := range routes {
		if err := rules.Validate(r); err != nil {
			return fmt.Errorf("routes[%d]: %w", i, err)
		}
	}
	s.matcher.Update(routes)

	s.mu.Lock()
	m := s.cdp
	s.mu.Unlock()
	if m != nil {
		if err := m.RefreshPatterns(); err != nil {
			return fmt.Errorf("刷新拦截模式失败: %w", err)
		}
	}
	return nil
}

// Routes 当前路由
func (s *Session) Routes() []rules.Route { return s.matcher.Routes() }

// Schemes 已注册处理器的 scheme
func (s *Session) Schemes() []string { return s.dispatcher.Schemes() }

// Events 会话事件，消费不及时的事件会被丢弃
func (s *Session) Events() <-chan model.Event { return s.events }

// HTTPHandler 以本会话为后端的 http.Handler，defaultScheme 为路由未命中时使用的 scheme
func (s *Session) HTTPHandler(defaultScheme string, fallback http.Handler) *httpengine.Handler {
	timeout := time.Duration(s.cfg.ProcessTimeoutMS) * time.Millisecond
	return &httpengine.Handler{
		Dispatcher:   s,
		Resolver:     s.matcher,
		Scheme:       defaultScheme,
		Fallback:     fallback,
		StartTimeout: timeout,
		Log:          s.log.With("engine", "http"),
	}
}

// DispatchStart 登记请求摘要后交给分发表
func (s *Session) DispatchStart(ctx context.Context, schemeName string, req *arkweb.ResourceRequest, rh arkweb.ResourceHandler) bool {
	s.requests.Store(req.ID, requestInfo{scheme: schemeName, url: req.URL, method: req.Method})
	ok := s.dispatcher.DispatchStart(ctx, schemeName, req, rh)
	if !ok {
		s.requests.Delete(req.ID)
	}
	return ok
}

func (s *Session) DispatchStop(schemeName string, req *arkweb.ResourceRequest) {
	s.dispatcher.DispatchStop(schemeName, req)
	s.requests.Delete(req.ID)
}

func (s *Session) schemeOf(requestID string) string {
	if v, ok := s.requests.Load(requestID); ok {
		return v.(requestInfo).scheme
	}
	return ""
}

// observe 将生命周期事件转为会话事件，数据块事件不转发
func (s *Session) observe(ev scheme.Event) {
	var typ string
	switch ev.Kind {
	case scheme.EventIntercepted:
		typ = model.EventIntercepted
	case scheme.EventPassed:
		typ = model.EventPassed
	case scheme.EventResponded:
		typ = model.EventResponded
	case scheme.EventFinished:
		typ = model.EventFinished
	case scheme.EventFailed:
		typ = model.EventFailed
	case scheme.EventStopped:
		typ = model.EventStopped
	default:
		return
	}

	out := model.Event{
		Type:      typ,
		RequestID: ev.RequestID,
		Status:    int(ev.Status),
		NetError:  ev.NetError,
		Reason:    ev.Reason,
	}
	if v, ok := s.requests.Load(ev.RequestID); ok {
		info := v.(requestInfo)
		out.Scheme, out.URL, out.Method = info.scheme, info.url, info.method
	} else if ev.Request != nil {
		out.URL, out.Method = ev.Request.URL(), ev.Request.Method()
	}
	switch ev.Kind {
	case scheme.EventPassed, scheme.EventFinished, scheme.EventFailed, scheme.EventStopped:
		s.requests.Delete(ev.RequestID)
	}
	s.sendEvent(out)
}

// sendEvent 安全发送事件到通道，自动添加时间戳
func (s *Session) sendEvent(evt model.Event) {
	evt.Session = s.ID
	evt.Timestamp = time.Now().UnixMilli()
	select {
	case s.events <- evt:
	default:
	}
}

func (s *Session) cdpManager() (*cdp.Manager, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.New("会话已关闭")
	}
	if s.cdp != nil {
		return s.cdp, nil
	}
	if s.cfg.DevToolsURL == "" {
		return nil, ErrNoDevtools
	}
	s.cdp = cdp.New(cdp.Options{
		DevtoolsURL:      s.cfg.DevToolsURL,
		Workers:          s.cfg.Workers,
		QueueSize:        s.cfg.QueueSize,
		ProcessTimeoutMS: s.cfg.ProcessTimeoutMS,
	}, s, s.matcher, s.events, s.log.With("engine", "cdp"))
	return s.cdp, nil
}

// ListTargets 列出调试端点上的目标
func (s *Session) ListTargets(ctx context.Context) ([]model.TargetInfo, error) {
	m, err := s.cdpManager()
	if err != nil {
		return nil, err
	}
	return m.ListTargets(ctx)
}

// AttachTarget 附加 CDP 目标
func (s *Session) AttachTarget(ctx context.Context, target model.TargetID) (model.TargetID, error) {
	m, err := s.cdpManager()
	if err != nil {
		return "", err
	}
	return m.AttachTarget(ctx, target)
}

// DetachTarget 分离 CDP 目标
func (s *Session) DetachTarget(target model.TargetID) error {
	m, err := s.cdpManager()
	if err != nil {
		return err
	}
	m.DetachTarget(target)
	return nil
}

// EnableInterception 启用 CDP 拦截
func (s *Session) EnableInterception() error {
	m, err := s.cdpManager()
	if err != nil {
		return err
	}
	return m.Enable()
}

// DisableInterception 停用 CDP 拦截
func (s *Session) DisableInterception() error {
	m, err := s.cdpManager()
	if err != nil {
		return err
	}
	return m.Disable()
}

// Records 本会话的请求记录，未配置存储时返回空
func (s *Session) Records(ctx context.Context, limit int) ([]model.Record, error) {
	if s.db == nil {
		return nil, nil
	}
	rows, err := storage.ListRecords(ctx, s.db, string(s.ID), limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.Record, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToModel())
	}
	return out, nil
}

// Close 依次关闭 CDP 后端、处理器、脚本循环和记录器，可重复调用
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	m := s.cdp
	s.mu.Unlock()

	if m != nil {
		m.Close()
	}
	s.dispatcher.Clear()
	s.module.Close()
	s.loop.Close()
	if s.recorder != nil {
		s.recorder.Close()
	}
	s.log.Info("会话已关闭")
}
