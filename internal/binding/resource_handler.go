package binding

import (
	"github.com/dop251/goja"

	"schemebridge/internal/neterror"
	"schemebridge/internal/scheme"
	"schemebridge/internal/weberr"
)

func (m *Module) defineResourceHandler() error {
	proto, err := m.defineClass("WebResourceHandler", func(call goja.ConstructorCall) *goja.Object {
		m.attach(call.This, scheme.NewResourceHandler("", nil, nil))
		return nil
	}, map[string]func(goja.FunctionCall) goja.Value{
		"didReceiveResponse":     m.handlerDidReceiveResponse,
		"didReceiveResponseBody": m.handlerDidReceiveResponseBody,
		"didFinish":              m.handlerDidFinish,
		"didFail":                m.handlerDidFail,
	})
	m.handlerProto = proto
	return err
}

func (m *Module) wrapResourceHandler(rh *scheme.ResourceHandler) *goja.Object {
	return m.wrap(m.handlerProto, rh)
}

// check 非 OK 结果统一抛出 resource handler invalid
func (m *Module) check(op string, err error) {
	if err == nil {
		return
	}
	m.log.Warn("资源处理器调用失败", "op", op, "code", scheme.CodeOf(err), "error", err)
	m.throw(weberr.New(weberr.ResourceHandlerInvalid))
}

func (m *Module) handlerDidReceiveResponse(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) != 1 {
		m.throw(weberr.CountError("one"))
	}
	rh, ok := unwrap[*scheme.ResourceHandler](call.This)
	if !ok {
		return goja.Undefined()
	}
	resp, ok := unwrap[*scheme.Response](call.Argument(0))
	if !ok {
		m.throw(weberr.TypeError("response", "WebSchemeHandlerResponse"))
	}
	m.check("didReceiveResponse", rh.DidReceiveResponse(resp))
	return goja.Undefined()
}

func (m *Module) handlerDidReceiveResponseBody(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) != 1 {
		m.throw(weberr.CountError("one"))
	}
	rh, ok := unwrap[*scheme.ResourceHandler](call.This)
	if !ok {
		return goja.Undefined()
	}
	buf, ok := parseArrayBuffer(call.Argument(0))
	if !ok {
		m.throw(weberr.TypeError("data", "ArrayBuffer"))
	}
	m.check("didReceiveResponseBody", rh.DidReceiveResponseBody(buf))
	return goja.Undefined()
}

func (m *Module) handlerDidFinish(call goja.FunctionCall) goja.Value {
	rh, ok := unwrap[*scheme.ResourceHandler](call.This)
	if !ok {
		return goja.Undefined()
	}
	m.check("didFinish", rh.DidFinish())
	return goja.Undefined()
}

// handlerDidFail 单参数时错误码类型不对抛 401，两个参数时抛无效网络错误
func (m *Module) handlerDidFail(call goja.FunctionCall) goja.Value {
	rh, ok := unwrap[*scheme.ResourceHandler](call.This)
	if !ok {
		return goja.Undefined()
	}
	argc := len(call.Arguments)
	code, ok := parseInt32(call.Argument(0))
	if !ok {
		if argc < 2 {
			m.throw(weberr.TypeError("code", "int"))
		}
		m.throw(weberr.New(weberr.InvalidNetError))
	}

	name, valid := neterror.ValidateAndGetName(neterror.Code(code))
	if argc >= 2 && (!valid || neterror.Code(code) == neterror.NetOK) {
		m.throw(weberr.New(weberr.InvalidNetError))
	}

	completeIfNoResponse, ok := parseBool(call.Argument(1))
	if !ok {
		completeIfNoResponse = false
	}
	m.check("didFail", rh.DidFailWithError(neterror.Code(code), name, completeIfNoResponse))
	return goja.Undefined()
}
