package binding

import (
	"math"

	"github.com/dop251/goja"

	"schemebridge/internal/weberr"
)

// 原生对象挂在不可枚举属性上
const nativeKey = "__native__"

func (m *Module) wrap(proto *goja.Object, native any) *goja.Object {
	obj := m.vm.NewObject()
	_ = obj.SetPrototype(proto)
	m.attach(obj, native)
	return obj
}

func (m *Module) attach(obj *goja.Object, native any) {
	_ = obj.DefineDataProperty(nativeKey, m.vm.ToValue(native), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_FALSE)
}

func unwrap[T any](v goja.Value) (T, bool) {
	var zero T
	obj, ok := v.(*goja.Object)
	if !ok || obj == nil {
		return zero, false
	}
	nv := obj.Get(nativeKey)
	if nv == nil {
		return zero, false
	}
	t, ok := nv.Export().(T)
	return t, ok
}

// throw 以 BusinessError 对象抛出脚本异常
func (m *Module) throw(be *weberr.BusinessError) {
	obj := m.vm.NewGoError(be)
	_ = obj.Set("name", "BusinessError")
	_ = obj.Set("code", int64(be.Code))
	_ = obj.Set("message", be.Message)
	panic(obj)
}

func parseString(v goja.Value) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.Export().(string)
	return s, ok
}

func parseBool(v goja.Value) (bool, bool) {
	if v == nil {
		return false, false
	}
	b, ok := v.Export().(bool)
	return b, ok
}

// parseInt32 接受任意数值，小数部分截断
func parseInt32(v goja.Value) (int32, bool) {
	if v == nil {
		return 0, false
	}
	switch n := v.Export().(type) {
	case int64:
		return int32(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int32(n), true
	}
	return 0, false
}

func parseFloat(v goja.Value) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch n := v.Export().(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func parseArrayBuffer(v goja.Value) ([]byte, bool) {
	if v == nil {
		return nil, false
	}
	ab, ok := v.Export().(goja.ArrayBuffer)
	if !ok {
		return nil, false
	}
	return ab.Bytes(), true
}

func parseFunction(v goja.Value) (goja.Callable, bool) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, false
	}
	return goja.AssertFunction(v)
}
