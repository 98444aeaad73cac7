package binding

import (
	"github.com/dop251/goja"

	"schemebridge/internal/scheme"
)

func (m *Module) defineRequest() error {
	proto, err := m.defineClass("WebSchemeHandlerRequest", func(call goja.ConstructorCall) *goja.Object {
		m.attach(call.This, scheme.NewRequest(nil))
		return nil
	}, map[string]func(goja.FunctionCall) goja.Value{
		"getHeader":              m.requestGetHeader,
		"getRequestUrl":          m.requestString(func(r *scheme.Request) string { return r.URL() }),
		"getRequestMethod":       m.requestString(func(r *scheme.Request) string { return r.Method() }),
		"getReferrer":            m.requestString(func(r *scheme.Request) string { return r.Referrer() }),
		"getFrameUrl":            m.requestString(func(r *scheme.Request) string { return r.FrameURL() }),
		"isRedirect":             m.requestBool(func(r *scheme.Request) bool { return r.IsRedirect() }),
		"isMainFrame":            m.requestBool(func(r *scheme.Request) bool { return r.IsMainFrame() }),
		"hasGesture":             m.requestBool(func(r *scheme.Request) bool { return r.HasGesture() }),
		"getHttpBodyStream":      func(goja.FunctionCall) goja.Value { return goja.Undefined() },
		"getRequestResourceType": m.requestResourceType,
	})
	m.requestProto = proto
	return err
}

func (m *Module) wrapRequest(req *scheme.Request) *goja.Object {
	return m.wrap(m.requestProto, req)
}

func (m *Module) requestGetHeader(call goja.FunctionCall) goja.Value {
	req, ok := unwrap[*scheme.Request](call.This)
	if !ok {
		return goja.Undefined()
	}
	headers := req.Headers()
	items := make([]any, 0, len(headers))
	for _, h := range headers {
		obj := m.vm.NewObject()
		_ = obj.Set("headerKey", h.Name)
		_ = obj.Set("headerValue", h.Value)
		items = append(items, obj)
	}
	return m.vm.NewArray(items...)
}

func (m *Module) requestString(get func(*scheme.Request) string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		req, ok := unwrap[*scheme.Request](call.This)
		if !ok {
			return goja.Undefined()
		}
		return m.vm.ToValue(get(req))
	}
}

func (m *Module) requestBool(get func(*scheme.Request) bool) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		req, ok := unwrap[*scheme.Request](call.This)
		if !ok {
			return goja.Undefined()
		}
		return m.vm.ToValue(get(req))
	}
}

func (m *Module) requestResourceType(call goja.FunctionCall) goja.Value {
	req, ok := unwrap[*scheme.Request](call.This)
	if !ok {
		return goja.Undefined()
	}
	return m.vm.ToValue(req.ResourceType())
}
