package binding

import (
	"github.com/dop251/goja"

	"schemebridge/internal/neterror"
	"schemebridge/internal/scheme"
	"schemebridge/internal/weberr"
)

func (m *Module) defineResponse() error {
	proto, err := m.defineClass("WebSchemeHandlerResponse", func(call goja.ConstructorCall) *goja.Object {
		m.attach(call.This, scheme.NewResponse())
		return nil
	}, map[string]func(goja.FunctionCall) goja.Value{
		"getUrl":          m.responseGetString(func(r *scheme.Response) string { return r.URL() }),
		"setUrl":          m.responseSetString("url", (*scheme.Response).SetURL),
		"getStatus":       m.responseGetStatus,
		"setStatus":       m.responseSetStatus,
		"getStatusText":   m.responseGetString(func(r *scheme.Response) string { return r.StatusText() }),
		"setStatusText":   m.responseSetString("text", (*scheme.Response).SetStatusText),
		"getMimeType":     m.responseGetString(func(r *scheme.Response) string { return r.MimeType() }),
		"setMimeType":     m.responseSetString("type", (*scheme.Response).SetMimeType),
		"getEncoding":     m.responseGetString(func(r *scheme.Response) string { return r.Encoding() }),
		"setEncoding":     m.responseSetString("encoding", (*scheme.Response).SetEncoding),
		"getHeaderByName": m.responseGetHeaderByName,
		"setHeaderByName": m.responseSetHeaderByName,
		"getNetErrorCode": m.responseGetNetErrorCode,
		"setNetErrorCode": m.responseSetNetErrorCode,
	})
	m.responseProto = proto
	return err
}

func (m *Module) responseGetString(get func(*scheme.Response) string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		resp, ok := unwrap[*scheme.Response](call.This)
		if !ok {
			return goja.Undefined()
		}
		return m.vm.ToValue(get(resp))
	}
}

// responseSetString 空字符串被底层拒绝时只记录日志
func (m *Module) responseSetString(name string, set func(*scheme.Response, string) error) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		resp, ok := unwrap[*scheme.Response](call.This)
		if !ok {
			return goja.Undefined()
		}
		value, ok := parseString(call.Argument(0))
		if !ok {
			m.throw(weberr.TypeError(name, "string"))
		}
		if err := set(resp, value); err != nil {
			m.log.Debug("响应字段未更新", "field", name, "error", err)
		}
		return goja.Undefined()
	}
}

func (m *Module) responseGetStatus(call goja.FunctionCall) goja.Value {
	resp, ok := unwrap[*scheme.Response](call.This)
	if !ok {
		return goja.Undefined()
	}
	return m.vm.ToValue(resp.Status())
}

func (m *Module) responseSetStatus(call goja.FunctionCall) goja.Value {
	resp, ok := unwrap[*scheme.Response](call.This)
	if !ok {
		return goja.Undefined()
	}
	status, ok := parseInt32(call.Argument(0))
	if !ok {
		m.throw(weberr.TypeError("code", "int"))
	}
	resp.SetStatus(status)
	return goja.Undefined()
}

func (m *Module) responseGetHeaderByName(call goja.FunctionCall) goja.Value {
	resp, ok := unwrap[*scheme.Response](call.This)
	if !ok {
		return goja.Undefined()
	}
	name, ok := parseString(call.Argument(0))
	if !ok {
		return goja.Undefined()
	}
	return m.vm.ToValue(resp.HeaderByName(name))
}

func (m *Module) responseSetHeaderByName(call goja.FunctionCall) goja.Value {
	resp, ok := unwrap[*scheme.Response](call.This)
	if !ok {
		return goja.Undefined()
	}
	if len(call.Arguments) != 3 {
		m.throw(weberr.CountError("three"))
	}
	name, ok := parseString(call.Argument(0))
	if !ok {
		m.throw(weberr.TypeError("name", "string"))
	}
	value, ok := parseString(call.Argument(1))
	if !ok {
		m.throw(weberr.TypeError("value", "string"))
	}
	overwrite, ok := parseBool(call.Argument(2))
	if !ok {
		m.throw(weberr.TypeError("overwrite", "boolean"))
	}
	if err := resp.SetHeaderByName(name, value, overwrite); err != nil {
		m.log.Debug("响应头未更新", "name", name, "error", err)
	}
	return goja.Undefined()
}

func (m *Module) responseGetNetErrorCode(call goja.FunctionCall) goja.Value {
	resp, ok := unwrap[*scheme.Response](call.This)
	if !ok {
		return goja.Undefined()
	}
	return m.vm.ToValue(resp.ErrorCode())
}

// responseSetNetErrorCode 错误描述取错误码在表中的名称
func (m *Module) responseSetNetErrorCode(call goja.FunctionCall) goja.Value {
	resp, ok := unwrap[*scheme.Response](call.This)
	if !ok {
		return goja.Undefined()
	}
	if len(call.Arguments) != 1 {
		m.throw(weberr.CountError("one"))
	}
	code, ok := parseInt32(call.Argument(0))
	if !ok {
		m.throw(weberr.TypeError("code", "int"))
	}
	name, _ := neterror.ValidateAndGetName(neterror.Code(code))
	resp.SetErrorCode(code, name)
	return goja.Undefined()
}
