package binding

import (
	"github.com/dop251/goja"

	"schemebridge/internal/neterror"
	"schemebridge/internal/webvalue"
)

var messageTypeNames = []struct {
	name string
	typ  webvalue.MessageType
}{
	{"NOT_SUPPORT", webvalue.MessageNotSupport},
	{"STRING", webvalue.MessageString},
	{"NUMBER", webvalue.MessageNumber},
	{"BOOLEAN", webvalue.MessageBoolean},
	{"ARRAY_BUFFER", webvalue.MessageArrayBuffer},
	{"ARRAY", webvalue.MessageArray},
	{"ERROR", webvalue.MessageError},
}

func (m *Module) defineEnums() error {
	netErrors := m.vm.NewObject()
	for _, code := range neterror.Codes() {
		name, _ := neterror.ValidateAndGetName(code)
		if err := netErrors.DefineDataProperty(name, m.vm.ToValue(int32(code)), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_TRUE); err != nil {
			return err
		}
	}
	if err := m.vm.Set("WebNetErrorCode", netErrors); err != nil {
		return err
	}

	msgTypes := m.vm.NewObject()
	for _, it := range messageTypeNames {
		if err := msgTypes.DefineDataProperty(it.name, m.vm.ToValue(int32(it.typ)), goja.FLAG_FALSE, goja.FLAG_FALSE, goja.FLAG_TRUE); err != nil {
			return err
		}
	}
	return m.vm.Set("WebMessageType", msgTypes)
}
