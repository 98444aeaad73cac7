package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"schemebridge/internal/logger"
	"schemebridge/internal/rules"
	"schemebridge/internal/script"
	api "schemebridge/pkg/api"
	"schemebridge/pkg/model"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// App 是 GUI 应用的核心状态与业务逻辑封装
type App struct {
	ctx context.Context
	svc api.Service
	log logger.Logger

	// 新会话使用的默认参数
	base model.SessionConfig

	// 未拦截请求回退到的内置页面
	fallback http.Handler

	mu             sync.RWMutex
	sessions       []SessionItem
	currentSession int
	handler        http.Handler
	targets        []TargetItem
	currentTarget  int
}

// SessionItem 表示会话列表项
type SessionItem struct {
	ID          string `json:"id"`
	DevToolsURL string `json:"devToolsURL"`
	Script      string `json:"script"`
	Enabled     bool   `json:"enabled"`
}

// TargetItem 表示目标列表项
type TargetItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Attached bool   `json:"attached"`
}

// NewApp 创建应用实例
func NewApp(svc api.Service, base model.SessionConfig, fallback http.Handler, l logger.Logger) *App {
	if l == nil {
		l = logger.NewNop()
	}
	return &App{
		svc:            svc,
		log:            l,
		base:           base,
		fallback:       fallback,
		currentSession: -1,
		currentTarget:  -1,
	}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

func (a *App) shutdown(context.Context) {
	a.svc.Close()
}

// ServeHTTP 资源请求交给当前会话，没有会话时使用内置页面
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mu.RLock()
	h := a.handler
	a.mu.RUnlock()
	if h == nil {
		h = a.fallback
	}
	if h == nil {
		http.NotFound(w, r)
		return
	}
	h.ServeHTTP(w, r)
}

// StartSession 创建新会话并设为当前会话
func (a *App) StartSession(devToolsURL string) (string, error) {
	cfg := a.base
	if devToolsURL != "" {
		cfg.DevToolsURL = devToolsURL
	}
	id, err := a.svc.StartSession(cfg)
	if err != nil {
		return "", err
	}
	h, err := a.svc.HTTPHandler(id, "app", a.fallback)
	if err != nil {
		return "", err
	}
	events, err := a.svc.SubscribeEvents(id)
	if err != nil {
		return "", err
	}
	go a.forwardEvents(events)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions = append(a.sessions, SessionItem{ID: string(id), DevToolsURL: cfg.DevToolsURL})
	a.currentSession = len(a.sessions) - 1
	a.handler = h
	return string(id), nil
}

// StopSession 停止当前会话
func (a *App) StopSession() error {
	id, ok := a.GetCurrentSessionID()
	if !ok {
		return fmt.Errorf("no session selected")
	}
	if err := a.svc.StopSession(id); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions = append(a.sessions[:a.currentSession], a.sessions[a.currentSession+1:]...)
	a.currentSession = -1
	a.handler = nil
	a.targets = nil
	a.currentTarget = -1
	return nil
}

// forwardEvents 将会话事件推送到前端
func (a *App) forwardEvents(events <-chan model.Event) {
	for ev := range events {
		if a.ctx == nil {
			continue
		}
		runtime.EventsEmit(a.ctx, "request", ev)
	}
}

// SetCurrentSession 设置当前活跃会话
func (a *App) SetCurrentSession(idx int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if idx < 0 || idx >= len(a.sessions) {
		a.currentSession = -1
		a.handler = nil
		return nil
	}
	h, err := a.svc.HTTPHandler(model.SessionID(a.sessions[idx].ID), "app", a.fallback)
	if err != nil {
		return err
	}
	a.currentSession = idx
	a.handler = h
	return nil
}

// GetSessions 获取会话列表
func (a *App) GetSessions() []SessionItem {
	a.mu.RLock()
	defer a.mu.RUnlock()
	result := make([]SessionItem, len(a.sessions))
	copy(result, a.sessions)
	return result
}

// GetCurrentSessionID 获取当前会话 ID
func (a *App) GetCurrentSessionID() (model.SessionID, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.currentSession < 0 || a.currentSession >= len(a.sessions) {
		return "", false
	}
	return model.SessionID(a.sessions[a.currentSession].ID), true
}

// LoadScriptFile 读取并执行处理器脚本
func (a *App) LoadScriptFile(path string) error {
	src, err := script.Read(path)
	if err != nil {
		return err
	}
	return a.LoadScript(path, src)
}

// LoadScript 在当前会话中重新加载脚本
func (a *App) LoadScript(name, src string) error {
	id, ok := a.GetCurrentSessionID()
	if !ok {
		return fmt.Errorf("no session selected")
	}
	if err := a.svc.ReloadScript(id, name, src); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentSession >= 0 {
		a.sessions[a.currentSession].Script = name
	}
	return nil
}

// UpdateRoutes 替换当前会话的路由
func (a *App) UpdateRoutes(routes []rules.Route) error {
	id, ok := a.GetCurrentSessionID()
	if !ok {
		return fmt.Errorf("no session selected")
	}
	return a.svc.UpdateRoutes(id, routes)
}

// EnableInterception 启用拦截
func (a *App) EnableInterception() error {
	return a.setInterception(true)
}

// DisableInterception 停用拦截
func (a *App) DisableInterception() error {
	return a.setInterception(false)
}

func (a *App) setInterception(on bool) error {
	id, ok := a.GetCurrentSessionID()
	if !ok {
		return fmt.Errorf("no session selected")
	}
	var err error
	if on {
		err = a.svc.EnableInterception(id)
	} else {
		err = a.svc.DisableInterception(id)
	}
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentSession >= 0 && a.currentSession < len(a.sessions) {
		a.sessions[a.currentSession].Enabled = on
	}
	return nil
}

// RefreshTargets 刷新目标列表
func (a *App) RefreshTargets() ([]TargetItem, error) {
	id, ok := a.GetCurrentSessionID()
	if !ok {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.targets = nil
		a.currentTarget = -1
		return nil, nil
	}
	targets, err := a.svc.ListTargets(id)
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.targets = a.targets[:0]
	for _, t := range targets {
		a.targets = append(a.targets, TargetItem{
			ID:       string(t.ID),
			Title:    t.Title,
			URL:      t.URL,
			Type:     t.Type,
			Attached: t.IsCurrent,
		})
	}
	a.currentTarget = -1
	result := make([]TargetItem, len(a.targets))
	copy(result, a.targets)
	return result, nil
}

// SetCurrentTarget 设置当前选中目标
func (a *App) SetCurrentTarget(idx int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if idx < 0 || idx >= len(a.targets) {
		a.currentTarget = -1
		return
	}
	a.currentTarget = idx
}

// AttachSelectedTarget 附加选中目标，未选中时附加第一个页面
func (a *App) AttachSelectedTarget() error {
	id, ok := a.GetCurrentSessionID()
	if !ok {
		return fmt.Errorf("no session selected")
	}
	a.mu.RLock()
	var target model.TargetID
	if a.currentTarget >= 0 && a.currentTarget < len(a.targets) {
		target = model.TargetID(a.targets[a.currentTarget].ID)
	}
	a.mu.RUnlock()
	_, err := a.svc.AttachTarget(id, target)
	return err
}

// DetachSelectedTarget 移除选中目标
func (a *App) DetachSelectedTarget() error {
	id, ok := a.GetCurrentSessionID()
	if !ok {
		return fmt.Errorf("no session selected")
	}
	a.mu.RLock()
	if a.currentTarget < 0 || a.currentTarget >= len(a.targets) {
		a.mu.RUnlock()
		return fmt.Errorf("no target selected")
	}
	t := a.targets[a.currentTarget]
	a.mu.RUnlock()
	return a.svc.DetachTarget(id, model.TargetID(t.ID))
}

// Records 当前会话最近的请求记录
func (a *App) Records(limit int) ([]model.Record, error) {
	id, ok := a.GetCurrentSessionID()
	if !ok {
		return nil, nil
	}
	return a.svc.ListRecords(id, limit)
}
