// Package binding 将 scheme 处理管线以类的形式暴露给脚本运行时
package binding

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dop251/goja"

	"schemebridge/internal/logger"
	"schemebridge/internal/scheme"
	"schemebridge/internal/weberr"
	"schemebridge/pkg/arkweb"
)

// Env 绑定层依赖
type Env struct {
	Table      *scheme.Table
	Loop       scheme.Loop
	Dispatcher *arkweb.Dispatcher
	Observer   scheme.Observer
	Logger     logger.Logger
}

// Module 安装到某个运行时上的绑定
type Module struct {
	vm  *goja.Runtime
	env Env
	log logger.Logger

	requestProto  *goja.Object
	responseProto *goja.Object
	handlerProto  *goja.Object
	schemeProto   *goja.Object

	mu       sync.Mutex
	handlers []*scheme.WebSchemeHandler
}

// Install 注册全部类、枚举与全局函数，必须在循环 goroutine 上调用
func Install(vm *goja.Runtime, env Env) (*Module, error) {
	if env.Logger == nil {
		env.Logger = logger.NewNop()
	}
	if env.Table == nil {
		env.Table = scheme.DefaultTable
	}
	m := &Module{vm: vm, env: env, log: env.Logger.With("module", "binding")}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"request", m.defineRequest},
		{"response", m.defineResponse},
		{"resource handler", m.defineResourceHandler},
		{"scheme handler", m.defineSchemeHandler},
		{"message", m.defineMessage},
		{"enums", m.defineEnums},
		{"globals", m.defineGlobals},
		{"console", m.defineConsole},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return nil, fmt.Errorf("install %s: %w", s.name, err)
		}
	}
	return m, nil
}

// Close 释放本模块创建的所有 scheme 处理器
func (m *Module) Close() {
	m.mu.Lock()
	handlers := m.handlers
	m.handlers = nil
	m.mu.Unlock()
	for _, h := range handlers {
		h.Close()
	}
}

func (m *Module) defineClass(name string, ctor func(goja.ConstructorCall) *goja.Object, methods map[string]func(goja.FunctionCall) goja.Value) (*goja.Object, error) {
	c, ok := m.vm.ToValue(ctor).(*goja.Object)
	if !ok {
		return nil, fmt.Errorf("class %s: constructor is not an object", name)
	}
	proto, ok := c.Get("prototype").(*goja.Object)
	if !ok {
		return nil, fmt.Errorf("class %s: missing prototype", name)
	}
	for n, fn := range methods {
		if err := proto.Set(n, fn); err != nil {
			return nil, err
		}
	}
	return proto, m.vm.Set(name, c)
}

func (m *Module) defineGlobals() error {
	if err := m.vm.Set("registerSchemeHandler", m.registerSchemeHandler); err != nil {
		return err
	}
	return m.vm.Set("clearSchemeHandlers", m.clearSchemeHandlers)
}

// registerSchemeHandler(scheme, handler) 将处理器挂到会话的分发表上
func (m *Module) registerSchemeHandler(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) != 2 {
		m.throw(weberr.CountError("two"))
	}
	name, ok := parseString(call.Argument(0))
	if !ok || name == "" {
		m.throw(weberr.TypeError("scheme", "string"))
	}
	h, ok := unwrap[*scheme.WebSchemeHandler](call.Argument(1))
	if !ok {
		m.throw(weberr.TypeError("handler", "WebSchemeHandler"))
	}
	engine := h.Engine()
	if m.env.Dispatcher == nil || engine == nil {
		m.log.Warn("scheme 处理器未注册", "scheme", name)
		return m.vm.ToValue(false)
	}
	m.env.Dispatcher.Insert(name, engine)
	m.log.Info("scheme 处理器已注册", "scheme", name)
	return m.vm.ToValue(true)
}

func (m *Module) clearSchemeHandlers(goja.FunctionCall) goja.Value {
	if m.env.Dispatcher != nil {
		m.env.Dispatcher.Clear()
	}
	return goja.Undefined()
}

func (m *Module) defineConsole() error {
	console := m.vm.NewObject()
	logAt := func(fn func(string, ...any)) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, 0, len(call.Arguments))
			for _, a := range call.Arguments {
				parts = append(parts, a.String())
			}
			fn(strings.Join(parts, " "), "source", "script")
			return goja.Undefined()
		}
	}
	for name, fn := range map[string]func(string, ...any){
		"log":   m.env.Logger.Info,
		"info":  m.env.Logger.Info,
		"debug": m.env.Logger.Debug,
		"warn":  m.env.Logger.Warn,
		"error": m.env.Logger.Error,
	} {
		if err := console.Set(name, logAt(fn)); err != nil {
			return err
		}
	}
	return m.vm.Set("console", console)
}
