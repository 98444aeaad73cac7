package arkweb

import (
	"context"
	"sort"
	"sync"
)

// Dispatcher scheme 到处理器的注册表，引擎适配层通过它分发请求
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]*SchemeHandler
}

// NewDispatcher 创建注册表
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]*SchemeHandler)}
}

// Insert 注册处理器，同名 scheme 覆盖
func (d *Dispatcher) Insert(scheme string, sh *SchemeHandler) {
	if sh == nil {
		return
	}
	d.mu.Lock()
	d.handlers[scheme] = sh
	d.mu.Unlock()
}

// Remove 移除处理器
func (d *Dispatcher) Remove(scheme string) {
	d.mu.Lock()
	delete(d.handlers, scheme)
	d.mu.Unlock()
}

// RemoveHandler 移除绑定到 sh 的所有 scheme，返回移除数量
func (d *Dispatcher) RemoveHandler(sh *SchemeHandler) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for scheme, h := range d.handlers {
		if h == sh {
			delete(d.handlers, scheme)
			n++
		}
	}
	return n
}

// Clear 清空注册表
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	d.handlers = make(map[string]*SchemeHandler)
	d.mu.Unlock()
}

// Lookup 查找处理器
func (d *Dispatcher) Lookup(scheme string) (*SchemeHandler, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sh, ok := d.handlers[scheme]
	return sh, ok
}

// Schemes 返回已注册的 scheme
func (d *Dispatcher) Schemes() []string {
	d.mu.RLock()
	out := make([]string, 0, len(d.handlers))
	for s := range d.handlers {
		out = append(out, s)
	}
	d.mu.RUnlock()
	sort.Strings(out)
	return out
}

// DispatchStart 分发请求开始事件，未注册或未设置回调时不拦截
func (d *Dispatcher) DispatchStart(ctx context.Context, scheme string, req *ResourceRequest, rh ResourceHandler) bool {
	sh, ok := d.Lookup(scheme)
	if !ok {
		return false
	}
	cb := sh.startCallback()
	if cb == nil {
		return false
	}
	return cb(ctx, sh, req, rh)
}

// DispatchStop 分发请求结束事件
func (d *Dispatcher) DispatchStop(scheme string, req *ResourceRequest) {
	sh, ok := d.Lookup(scheme)
	if !ok {
		return
	}
	if cb := sh.stopCallback(); cb != nil {
		cb(sh, req)
	}
}
