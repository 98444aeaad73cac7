package binding

import (
	"github.com/dop251/goja"

	"schemebridge/internal/weberr"
	"schemebridge/internal/webvalue"
)

func (m *Module) defineMessage() error {
	_, err := m.defineClass("WebMessageExt", func(call goja.ConstructorCall) *goja.Object {
		m.attach(call.This, webvalue.NewMessage(nil))
		return nil
	}, map[string]func(goja.FunctionCall) goja.Value{
		"getType":        m.messageGetType,
		"setType":        m.messageSetType,
		"getString":      m.messageGet(webvalue.MessageString, m.messageString),
		"getNumber":      m.messageGet(webvalue.MessageNumber, m.messageNumber),
		"getBoolean":     m.messageGet(webvalue.MessageBoolean, m.messageBoolean),
		"getArrayBuffer": m.messageGet(webvalue.MessageArrayBuffer, m.messageArrayBuffer),
		"getArray":       m.messageGet(webvalue.MessageArray, m.messageArray),
		"getError":       m.messageGet(webvalue.MessageError, m.messageError),
		"setString":      m.messageSet(webvalue.MessageString, "message", "string", m.setMessageString),
		"setNumber":      m.messageSet(webvalue.MessageNumber, "message", "number", m.setMessageNumber),
		"setBoolean":     m.messageSet(webvalue.MessageBoolean, "message", "boolean", m.setMessageBoolean),
		"setArrayBuffer": m.messageSet(webvalue.MessageArrayBuffer, "message", "ArrayBuffer", m.setMessageArrayBuffer),
		"setArray":       m.messageSet(webvalue.MessageArray, "message", "Array", m.setMessageArray),
		"setError":       m.messageSet(webvalue.MessageError, "message", "Error", m.setMessageError),
		"toJsonString":   m.messageToJSON,
	})
	return err
}

func (m *Module) messageGetType(call goja.FunctionCall) goja.Value {
	msg, ok := unwrap[*webvalue.Message](call.This)
	if !ok {
		return m.vm.ToValue(int64(webvalue.MessageNotSupport))
	}
	return m.vm.ToValue(int64(msg.Type()))
}

func (m *Module) messageSetType(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) != 1 {
		m.throw(weberr.CountError("one"))
	}
	t, ok := parseInt32(call.Argument(0))
	if !ok {
		m.throw(weberr.TypeError("type", "int"))
	}
	if t <= int32(webvalue.MessageNotSupport) || t > int32(webvalue.MessageError) {
		m.throw(weberr.New(weberr.TypeNotMatchWithValue))
	}
	msg, ok := unwrap[*webvalue.Message](call.This)
	if !ok {
		return goja.Undefined()
	}
	msg.Value().SetType(webvalue.None)
	msg.SetType(webvalue.MessageType(t))
	return goja.Undefined()
}

func (m *Module) messageGet(want webvalue.MessageType, get func(*webvalue.Message) goja.Value) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		msg, ok := unwrap[*webvalue.Message](call.This)
		if !ok {
			return goja.Undefined()
		}
		if msg.Type() != want {
			m.throw(weberr.New(weberr.TypeNotMatchWithValue))
		}
		return get(msg)
	}
}

// messageSet 写入前要求消息类型已由 setType 设置
func (m *Module) messageSet(want webvalue.MessageType, name, typ string, set func(*webvalue.Message, goja.Value) bool) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != 1 {
			m.throw(weberr.CountError("one"))
		}
		msg, ok := unwrap[*webvalue.Message](call.This)
		if !ok {
			return goja.Undefined()
		}
		if msg.Type() != want {
			m.throw(weberr.New(weberr.TypeNotMatchWithValue))
		}
		if !set(msg, call.Argument(0)) {
			m.throw(weberr.TypeError(name, typ))
		}
		return goja.Undefined()
	}
}

func (m *Module) messageString(msg *webvalue.Message) goja.Value {
	s, _ := msg.Value().Str()
	return m.vm.ToValue(s)
}

func (m *Module) messageNumber(msg *webvalue.Message) goja.Value {
	n, _ := msg.Number()
	return m.vm.ToValue(n)
}

func (m *Module) messageBoolean(msg *webvalue.Message) goja.Value {
	b, _ := msg.Value().Bool()
	return m.vm.ToValue(b)
}

func (m *Module) messageArrayBuffer(msg *webvalue.Message) goja.Value {
	data, _ := msg.Value().Binary()
	return m.vm.ToValue(m.vm.NewArrayBuffer(data))
}

func (m *Module) messageArray(msg *webvalue.Message) goja.Value {
	v := msg.Value()
	var items []any
	switch v.Type() {
	case webvalue.StringArray:
		arr, _ := v.StringArray()
		for _, it := range arr {
			items = append(items, it)
		}
	case webvalue.BooleanArray:
		arr, _ := v.BooleanArray()
		for _, it := range arr {
			items = append(items, it)
		}
	case webvalue.DoubleArray:
		arr, _ := v.DoubleArray()
		for _, it := range arr {
			items = append(items, it)
		}
	case webvalue.Int64Array:
		arr, _ := v.Int64Array()
		for _, it := range arr {
			items = append(items, it)
		}
	}
	return m.vm.NewArray(items...)
}

func (m *Module) messageError(msg *webvalue.Message) goja.Value {
	name, message, _ := msg.Value().Err()
	obj, err := m.vm.New(m.vm.Get("Error"), m.vm.ToValue(message))
	if err != nil {
		panic(err)
	}
	_ = obj.Set("name", name)
	return obj
}

func (m *Module) setMessageString(msg *webvalue.Message, v goja.Value) bool {
	s, ok := parseString(v)
	if ok {
		msg.SetString(s)
	}
	return ok
}

func (m *Module) setMessageNumber(msg *webvalue.Message, v goja.Value) bool {
	n, ok := parseFloat(v)
	if ok {
		msg.SetNumber(n)
	}
	return ok
}

func (m *Module) setMessageBoolean(msg *webvalue.Message, v goja.Value) bool {
	b, ok := parseBool(v)
	if ok {
		msg.SetBoolean(b)
	}
	return ok
}

func (m *Module) setMessageArrayBuffer(msg *webvalue.Message, v goja.Value) bool {
	data, ok := parseArrayBuffer(v)
	if ok {
		msg.SetArrayBuffer(data)
	}
	return ok
}

// setMessageArray 数组元素必须同类型，全为整数时存为 int64 数组
func (m *Module) setMessageArray(msg *webvalue.Message, v goja.Value) bool {
	items, ok := v.Export().([]any)
	if !ok {
		return false
	}
	var (
		strs    []string
		bools   []bool
		doubles []float64
		ints    []int64
		isInt   = true
	)
	for _, it := range items {
		switch x := it.(type) {
		case string:
			strs = append(strs, x)
		case bool:
			bools = append(bools, x)
		case int64:
			ints = append(ints, x)
			doubles = append(doubles, float64(x))
		case float64:
			isInt = false
			doubles = append(doubles, x)
		default:
			return false
		}
	}
	kinds := 0
	for _, n := range []int{len(strs), len(bools), len(doubles)} {
		if n > 0 {
			kinds++
		}
	}
	if kinds > 1 {
		return false
	}
	val := msg.Value()
	switch {
	case len(bools) > 0:
		val.SetBooleanArray(bools)
	case len(doubles) > 0 && isInt:
		val.SetInt64Array(ints)
	case len(doubles) > 0:
		val.SetDoubleArray(doubles)
	default:
		val.SetStringArray(strs)
	}
	return true
}

func (m *Module) setMessageError(msg *webvalue.Message, v goja.Value) bool {
	obj, ok := v.(*goja.Object)
	if !ok {
		return false
	}
	name := obj.Get("name")
	message := obj.Get("message")
	if name == nil || message == nil {
		return false
	}
	msg.Value().SetError(name.String(), message.String())
	return true
}

func (m *Module) messageToJSON(call goja.FunctionCall) goja.Value {
	msg, ok := unwrap[*webvalue.Message](call.This)
	if !ok {
		return goja.Undefined()
	}
	raw, err := msg.Value().MarshalJSON()
	if err != nil {
		m.throw(weberr.Newf(weberr.TypeNotMatchWithValue, "%v", err))
	}
	return m.vm.ToValue(string(raw))
}
