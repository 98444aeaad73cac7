// Package webvalue 跨边界传递的异构值（WebValue）与脚本消息（WebMessage）
package webvalue

import (
	"bytes"
	"sort"
)

// Type 值类型
type Type uint8

const (
	None Type = iota
	Boolean
	Integer
	Double
	String
	Binary
	Dictionary
	List
	Error
	StringArray
	BooleanArray
	DoubleArray
	Int64Array
)

var typeNames = [...]string{
	None:         "none",
	Boolean:      "boolean",
	Integer:      "integer",
	Double:       "double",
	String:       "string",
	Binary:       "binary",
	Dictionary:   "dictionary",
	List:         "list",
	Error:        "error",
	StringArray:  "string_array",
	BooleanArray: "boolean_array",
	DoubleArray:  "double_array",
	Int64Array:   "int64_array",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Value 标签联合，同一时刻只持有与 Type 对应的一种载荷
type Value struct {
	typ Type

	b    bool
	i    int64
	d    float64
	s    string
	bin  []byte
	list []Value
	dict map[string]Value

	errName string
	errMsg  string

	strs    []string
	bools   []bool
	doubles []float64
	ints    []int64

	json string
}

func NewBool(b bool) Value      { return Value{typ: Boolean, b: b} }
func NewInt(i int64) Value      { return Value{typ: Integer, i: i} }
func NewDouble(d float64) Value { return Value{typ: Double, d: d} }
func NewString(s string) Value  { return Value{typ: String, s: s} }

// NewBinary 复制 data 作为二进制载荷
func NewBinary(data []byte) Value {
	return Value{typ: Binary, bin: bytes.Clone(data)}
}

// NewList 创建列表，元素按值复制
func NewList(items ...Value) Value {
	v := Value{typ: List, list: make([]Value, 0, len(items))}
	for _, it := range items {
		v.list = append(v.list, it.Clone())
	}
	return v
}

// NewDictionary 创建字典
func NewDictionary(m map[string]Value) Value {
	v := Value{typ: Dictionary, dict: make(map[string]Value, len(m))}
	for k, it := range m {
		v.dict[k] = it.Clone()
	}
	return v
}

// NewError 错误值，载荷为 (name, message)
func NewError(name, message string) Value {
	return Value{typ: Error, errName: name, errMsg: message}
}

func NewStringArray(s []string) Value {
	return Value{typ: StringArray, strs: append([]string{}, s...)}
}

func NewBooleanArray(b []bool) Value {
	return Value{typ: BooleanArray, bools: append([]bool{}, b...)}
}

func NewDoubleArray(d []float64) Value {
	return Value{typ: DoubleArray, doubles: append([]float64{}, d...)}
}

func NewInt64Array(i []int64) Value {
	return Value{typ: Int64Array, ints: append([]int64{}, i...)}
}

// Type 返回当前类型
func (v *Value) Type() Type { return v.typ }

func (v *Value) IsNone() bool { return v.typ == None }

// SetType 切换类型，切换时清空原有载荷
func (v *Value) SetType(t Type) {
	if v.typ == t {
		return
	}
	json := v.json
	*v = Value{typ: t, json: json}
	switch t {
	case List:
		v.list = []Value{}
	case Dictionary:
		v.dict = map[string]Value{}
	}
}

func (v *Value) Bool() (bool, bool) {
	return v.b, v.typ == Boolean
}

func (v *Value) Int() (int64, bool) {
	return v.i, v.typ == Integer
}

func (v *Value) Double() (float64, bool) {
	return v.d, v.typ == Double
}

func (v *Value) Str() (string, bool) {
	return v.s, v.typ == String
}

// Binary 返回二进制载荷的副本
func (v *Value) Binary() ([]byte, bool) {
	if v.typ != Binary {
		return nil, false
	}
	return bytes.Clone(v.bin), true
}

func (v *Value) Err() (name, message string, ok bool) {
	return v.errName, v.errMsg, v.typ == Error
}

func (v *Value) StringArray() ([]string, bool) {
	if v.typ != StringArray {
		return nil, false
	}
	return append([]string{}, v.strs...), true
}

func (v *Value) BooleanArray() ([]bool, bool) {
	if v.typ != BooleanArray {
		return nil, false
	}
	return append([]bool{}, v.bools...), true
}

func (v *Value) DoubleArray() ([]float64, bool) {
	if v.typ != DoubleArray {
		return nil, false
	}
	return append([]float64{}, v.doubles...), true
}

func (v *Value) Int64Array() ([]int64, bool) {
	if v.typ != Int64Array {
		return nil, false
	}
	return append([]int64{}, v.ints...), true
}

func (v *Value) SetBool(b bool) {
	v.SetType(Boolean)
	v.b = b
}

func (v *Value) SetInt(i int64) {
	v.SetType(Integer)
	v.i = i
}

func (v *Value) SetDouble(d float64) {
	v.SetType(Double)
	v.d = d
}

func (v *Value) SetString(s string) {
	v.SetType(String)
	v.s = s
}

func (v *Value) SetBinary(data []byte) {
	v.SetType(Binary)
	v.bin = bytes.Clone(data)
}

func (v *Value) SetError(name, message string) {
	v.SetType(Error)
	v.errName, v.errMsg = name, message
}

func (v *Value) SetStringArray(s []string) {
	v.SetType(StringArray)
	v.strs = append([]string{}, s...)
}

func (v *Value) SetBooleanArray(b []bool) {
	v.SetType(BooleanArray)
	v.bools = append([]bool{}, b...)
}

func (v *Value) SetDoubleArray(d []float64) {
	v.SetType(DoubleArray)
	v.doubles = append([]float64{}, d...)
}

func (v *Value) SetInt64Array(i []int64) {
	v.SetType(Int64Array)
	v.ints = append([]int64{}, i...)
}

// Len 列表或字典的元素个数，其他类型为 0
func (v *Value) Len() int {
	switch v.typ {
	case List:
		return len(v.list)
	case Dictionary:
		return len(v.dict)
	}
	return 0
}

// Index 按下标取列表元素
func (v *Value) Index(i int) (Value, bool) {
	if v.typ != List || i < 0 || i >= len(v.list) {
		return Value{}, false
	}
	return v.list[i].Clone(), true
}

// Append 追加列表元素，非列表值会先转为空列表
func (v *Value) Append(item Value) {
	if v.typ != List {
		v.SetType(List)
	}
	v.list = append(v.list, item.Clone())
}

// Pop 移除并返回最后一个元素
func (v *Value) Pop() (Value, bool) {
	if v.typ != List || len(v.list) == 0 {
		return Value{}, false
	}
	last := v.list[len(v.list)-1]
	v.list = v.list[:len(v.list)-1]
	return last, true
}

// Keys 返回排序后的字典键
func (v *Value) Keys() []string {
	if v.typ != Dictionary {
		return nil
	}
	keys := make([]string, 0, len(v.dict))
	for k := range v.dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (v *Value) Has(key string) bool {
	if v.typ != Dictionary {
		return false
	}
	_, ok := v.dict[key]
	return ok
}

func (v *Value) Get(key string) (Value, bool) {
	if v.typ != Dictionary {
		return Value{}, false
	}
	it, ok := v.dict[key]
	if !ok {
		return Value{}, false
	}
	return it.Clone(), true
}

// Put 写入字典项，非字典值会先转为空字典
func (v *Value) Put(key string, item Value) {
	if v.typ != Dictionary {
		v.SetType(Dictionary)
	}
	v.dict[key] = item.Clone()
}

func (v *Value) Delete(key string) bool {
	if v.typ != Dictionary {
		return false
	}
	if _, ok := v.dict[key]; !ok {
		return false
	}
	delete(v.dict, key)
	return true
}

// SetJsonString 附带的 JSON 文本，与载荷无关
func (v *Value) SetJsonString(s string) { v.json = s }

func (v *Value) GetJsonString() string { return v.json }

// Clone 深拷贝
func (v Value) Clone() Value {
	out := v
	switch v.typ {
	case Binary:
		out.bin = bytes.Clone(v.bin)
	case List:
		out.list = make([]Value, len(v.list))
		for i := range v.list {
			out.list[i] = v.list[i].Clone()
		}
	case Dictionary:
		out.dict = make(map[string]Value, len(v.dict))
		for k, it := range v.dict {
			out.dict[k] = it.Clone()
		}
	case StringArray:
		out.strs = append([]string{}, v.strs...)
	case BooleanArray:
		out.bools = append([]bool{}, v.bools...)
	case DoubleArray:
		out.doubles = append([]float64{}, v.doubles...)
	case Int64Array:
		out.ints = append([]int64{}, v.ints...)
	}
	return out
}

// Equal 深度比较，None 与任何值（包括 None）都不相等
func Equal(a, b Value) bool {
	if a.typ != b.typ || a.typ == None {
		return false
	}
	switch a.typ {
	case Boolean:
		return a.b == b.b
	case Integer:
		return a.i == b.i
	case Double:
		return a.d == b.d
	case String:
		return a.s == b.s
	case Binary:
		return bytes.Equal(a.bin, b.bin)
	case Error:
		return a.errName == b.errName && a.errMsg == b.errMsg
	case List:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case Dictionary:
		if len(a.dict) != len(b.dict) {
			return false
		}
		for k, av := range a.dict {
			bv, ok := b.dict[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case StringArray:
		return sliceEqual(a.strs, b.strs)
	case BooleanArray:
		return sliceEqual(a.bools, b.bools)
	case DoubleArray:
		return sliceEqual(a.doubles, b.doubles)
	case Int64Array:
		return sliceEqual(a.ints, b.ints)
	}
	return false
}

func sliceEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
