package webvalue

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// 特殊类型在 JSON 中以单键对象表示
const (
	keyBinary   = "$binary"
	keyError    = "$error"
	keyStrings  = "$strings"
	keyBooleans = "$booleans"
	keyDoubles  = "$doubles"
	keyInt64s   = "$int64s"
)

// ErrInvalidJSON 输入不是合法 JSON
var ErrInvalidJSON = errors.New("webvalue: invalid json")

// MarshalJSON 编码为 JSON，二进制使用 base64
func (v Value) MarshalJSON() ([]byte, error) {
	s, err := encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalJSON 从 JSON 解码
func (v *Value) UnmarshalJSON(data []byte) error {
	out, err := Parse(string(data))
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// Parse 解析 JSON 文本
func Parse(text string) (Value, error) {
	if !gjson.Valid(text) {
		return Value{}, ErrInvalidJSON
	}
	return decode(gjson.Parse(text))
}

func encode(v Value) (string, error) {
	switch v.typ {
	case None:
		return "null", nil
	case Boolean:
		return strconv.FormatBool(v.b), nil
	case Integer:
		return strconv.FormatInt(v.i, 10), nil
	case Double:
		return formatDouble(v.d)
	case String:
		return quote(v.s)
	case Binary:
		return sjson.Set("{}", keyBinary, base64.StdEncoding.EncodeToString(v.bin))
	case Error:
		out, err := sjson.Set("{}", keyError+".name", v.errName)
		if err != nil {
			return "", err
		}
		return sjson.Set(out, keyError+".message", v.errMsg)
	case List:
		out := "[]"
		for i := range v.list {
			raw, err := encode(v.list[i])
			if err != nil {
				return "", err
			}
			if out, err = sjson.SetRaw(out, "-1", raw); err != nil {
				return "", err
			}
		}
		return out, nil
	case Dictionary:
		out := "{}"
		for _, k := range v.Keys() {
			raw, err := encode(v.dict[k])
			if err != nil {
				return "", err
			}
			if out, err = sjson.SetRaw(out, escapeKey(k), raw); err != nil {
				return "", err
			}
		}
		return out, nil
	case StringArray:
		return sjson.Set("{}", keyStrings, v.strs)
	case BooleanArray:
		return sjson.Set("{}", keyBooleans, v.bools)
	case DoubleArray:
		items := make([]string, 0, len(v.doubles))
		for _, d := range v.doubles {
			s, err := formatDouble(d)
			if err != nil {
				return "", err
			}
			items = append(items, s)
		}
		return sjson.SetRaw("{}", keyDoubles, "["+strings.Join(items, ",")+"]")
	case Int64Array:
		return sjson.Set("{}", keyInt64s, v.ints)
	}
	return "", fmt.Errorf("webvalue: cannot encode type %s", v.typ)
}

func decode(r gjson.Result) (Value, error) {
	switch r.Type {
	case gjson.Null:
		return Value{}, nil
	case gjson.True:
		return NewBool(true), nil
	case gjson.False:
		return NewBool(false), nil
	case gjson.String:
		return NewString(r.String()), nil
	case gjson.Number:
		if isIntegral(r.Raw) {
			if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
				return NewInt(i), nil
			}
		}
		return NewDouble(r.Float()), nil
	}

	if r.IsArray() {
		list := Value{typ: List, list: []Value{}}
		var err error
		r.ForEach(func(_, item gjson.Result) bool {
			var it Value
			if it, err = decode(item); err != nil {
				return false
			}
			list.list = append(list.list, it)
			return true
		})
		return list, err
	}

	if special, ok, err := decodeSpecial(r); ok || err != nil {
		return special, err
	}

	dict := Value{typ: Dictionary, dict: map[string]Value{}}
	var err error
	r.ForEach(func(key, item gjson.Result) bool {
		var it Value
		if it, err = decode(item); err != nil {
			return false
		}
		dict.dict[key.String()] = it
		return true
	})
	return dict, err
}

// decodeSpecial 识别单键的特殊对象
func decodeSpecial(r gjson.Result) (Value, bool, error) {
	obj := r.Map()
	if len(obj) != 1 {
		return Value{}, false, nil
	}
	for key, inner := range obj {
		switch key {
		case keyBinary:
			data, err := base64.StdEncoding.DecodeString(inner.String())
			if err != nil {
				return Value{}, true, fmt.Errorf("webvalue: decode binary: %w", err)
			}
			return NewBinary(data), true, nil
		case keyError:
			return NewError(inner.Get("name").String(), inner.Get("message").String()), true, nil
		case keyStrings:
			var out []string
			for _, it := range inner.Array() {
				out = append(out, it.String())
			}
			return NewStringArray(out), true, nil
		case keyBooleans:
			var out []bool
			for _, it := range inner.Array() {
				out = append(out, it.Bool())
			}
			return NewBooleanArray(out), true, nil
		case keyDoubles:
			var out []float64
			for _, it := range inner.Array() {
				out = append(out, it.Float())
			}
			return NewDoubleArray(out), true, nil
		case keyInt64s:
			var out []int64
			for _, it := range inner.Array() {
				out = append(out, it.Int())
			}
			return NewInt64Array(out), true, nil
		}
	}
	return Value{}, false, nil
}

// formatDouble 保证输出带小数点，解码时仍为 Double
func formatDouble(d float64) (string, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return "", fmt.Errorf("webvalue: unsupported double %v", d)
	}
	s := strconv.FormatFloat(d, 'g', -1, 64)
	if isIntegral(s) {
		s += ".0"
	}
	return s, nil
}

func quote(s string) (string, error) {
	raw, err := sjson.Set("{}", "s", s)
	if err != nil {
		return "", err
	}
	return gjson.Get(raw, "s").Raw, nil
}

func isIntegral(raw string) bool {
	return !strings.ContainsAny(raw, ".eE")
}

var keyEscaper = strings.NewReplacer(
	`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`, `:`, `\:`,
)

func escapeKey(k string) string {
	return keyEscaper.Replace(k)
}
