// Package weberr 定义脚本层可见的业务错误码
package weberr

import "fmt"

// ErrCode 业务错误码
type ErrCode int32

const (
	NoError                ErrCode = 0
	ParamCheckError        ErrCode = 401
	TypeNotMatchWithValue  ErrCode = 17100014
	ResourceHandlerInvalid ErrCode = 17100021
	InvalidNetError        ErrCode = 17100101
)

var messages = map[ErrCode]string{
	ParamCheckError:        "Parameter error. The type or count of parameters does not match.",
	TypeNotMatchWithValue:  "The type and value of the message do not match.",
	ResourceHandlerInvalid: "The resource handler is invalid.",
	InvalidNetError:        "The error code is not a valid network error code.",
}

// 参数校验消息模板
const (
	TypeErrorTemplate  = "Parameter error. The type of \"%s\" must be %s."
	ParamCountTemplate = "Parameter error. The number of parameters must be %s."
)

// BusinessError 抛给脚本层的业务错误
type BusinessError struct {
	Code    ErrCode
	Message string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("BusinessError %d: %s", e.Code, e.Message)
}

// MessageOf 返回错误码的默认消息
func MessageOf(code ErrCode) string {
	return messages[code]
}

// New 使用默认消息创建业务错误
func New(code ErrCode) *BusinessError {
	return &BusinessError{Code: code, Message: messages[code]}
}

// Newf 使用自定义消息创建业务错误
func Newf(code ErrCode, format string, args ...any) *BusinessError {
	return &BusinessError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// TypeError 参数类型错误
func TypeError(name, typ string) *BusinessError {
	return Newf(ParamCheckError, TypeErrorTemplate, name, typ)
}

// CountError 参数个数错误
func CountError(count string) *BusinessError {
	return Newf(ParamCheckError, ParamCountTemplate, count)
}
