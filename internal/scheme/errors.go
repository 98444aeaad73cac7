// Package scheme scheme 处理器、请求、响应与资源处理器的宿主侧封装
package scheme

import "errors"

// 资源处理器调用结果码
const (
	NetOK        int32 = 0
	ErrorUnknown int32 = 17100100
	InvalidParam int32 = 17100101
)

var (
	// ErrAlreadyFinished 资源处理器已结束
	ErrAlreadyFinished = errors.New("resource handler already finished")
	// ErrInvalidParam 参数为空或引擎拒绝
	ErrInvalidParam = errors.New("invalid param")
)

// CodeOf 将错误映射为结果码
func CodeOf(err error) int32 {
	switch {
	case err == nil:
		return NetOK
	case errors.Is(err, ErrAlreadyFinished):
		return ErrorUnknown
	default:
		return InvalidParam
	}
}
