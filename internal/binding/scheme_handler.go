package binding

import (
	"github.com/dop251/goja"

	"schemebridge/internal/scheme"
	"schemebridge/internal/weberr"
)

func (m *Module) defineSchemeHandler() error {
	proto, err := m.defineClass("WebSchemeHandler", func(call goja.ConstructorCall) *goja.Object {
		m.attach(call.This, m.newSchemeHandler())
		return nil
	}, map[string]func(goja.FunctionCall) goja.Value{
		"onRequestStart": m.schemeOnRequestStart,
		"onRequestStop":  m.schemeOnRequestStop,
	})
	m.schemeProto = proto
	return err
}

func (m *Module) newSchemeHandler() *scheme.WebSchemeHandler {
	h := scheme.NewWebSchemeHandler(m.env.Table, m.env.Loop,
		scheme.WithLogger(m.log),
		scheme.WithObserver(m.env.Observer),
		scheme.WithDispatcher(m.env.Dispatcher),
	)
	m.mu.Lock()
	m.handlers = append(m.handlers, h)
	m.mu.Unlock()
	return h
}

func (m *Module) schemeOnRequestStart(call goja.FunctionCall) goja.Value {
	h, ok := unwrap[*scheme.WebSchemeHandler](call.This)
	if !ok {
		return goja.Undefined()
	}
	fn, ok := parseFunction(call.Argument(0))
	if !ok {
		m.throw(weberr.TypeError("callback", "function"))
	}
	h.PutRequestStart(func(req *scheme.Request, rh *scheme.ResourceHandler) (any, error) {
		res, err := fn(goja.Undefined(), m.wrapRequest(req), m.wrapResourceHandler(rh))
		if err != nil {
			return nil, err
		}
		return res.Export(), nil
	})
	return goja.Undefined()
}

func (m *Module) schemeOnRequestStop(call goja.FunctionCall) goja.Value {
	h, ok := unwrap[*scheme.WebSchemeHandler](call.This)
	if !ok {
		return goja.Undefined()
	}
	fn, ok := parseFunction(call.Argument(0))
	if !ok {
		m.throw(weberr.TypeError("callback", "function"))
	}
	h.PutRequestStop(func(req *scheme.Request) error {
		_, err := fn(goja.Undefined(), m.wrapRequest(req))
		return err
	})
	return goja.Undefined()
}
