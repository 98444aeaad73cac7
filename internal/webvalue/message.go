package webvalue

// MessageType 脚本层可见的消息类型
type MessageType int32

const (
	MessageNotSupport MessageType = iota
	MessageString
	MessageNumber
	MessageBoolean
	MessageArrayBuffer
	MessageArray
	MessageError
)

// Message 对 Value 的脚本层包装
type Message struct {
	value *Value
}

// NewMessage 包装 v，v 为 nil 时创建空值
func NewMessage(v *Value) *Message {
	if v == nil {
		v = &Value{}
	}
	return &Message{value: v}
}

func (m *Message) Value() *Value { return m.value }

// Type 将值类型映射为消息类型
func (m *Message) Type() MessageType {
	if m == nil || m.value == nil {
		return MessageNotSupport
	}
	switch m.value.typ {
	case String:
		return MessageString
	case Integer, Double:
		return MessageNumber
	case Boolean:
		return MessageBoolean
	case Binary:
		return MessageArrayBuffer
	case StringArray, BooleanArray, DoubleArray, Int64Array:
		return MessageArray
	case Error:
		return MessageError
	}
	return MessageNotSupport
}

// SetType 按消息类型切换底层值类型
func (m *Message) SetType(mt MessageType) {
	switch mt {
	case MessageString:
		m.value.SetType(String)
	case MessageNumber:
		m.value.SetType(Double)
	case MessageBoolean:
		m.value.SetType(Boolean)
	case MessageArrayBuffer:
		m.value.SetType(Binary)
	case MessageArray:
		m.value.SetType(StringArray)
	case MessageError:
		m.value.SetType(Error)
	default:
		m.value.SetType(None)
	}
}

// Number 整数按浮点返回
func (m *Message) Number() (float64, bool) {
	if i, ok := m.value.Int(); ok {
		return float64(i), true
	}
	return m.value.Double()
}

func (m *Message) SetNumber(d float64)     { m.value.SetDouble(d) }
func (m *Message) SetString(s string)      { m.value.SetString(s) }
func (m *Message) SetBoolean(b bool)       { m.value.SetBool(b) }
func (m *Message) SetArrayBuffer(b []byte) { m.value.SetBinary(b) }
