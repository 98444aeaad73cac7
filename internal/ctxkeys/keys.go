// Package ctxkeys context 中使用的键
package ctxkeys

import "context"

// TraceIDKey 追踪 ID，存储层日志使用
type TraceIDKey struct{}

// WithTraceID 附加追踪 ID
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TraceIDKey{}, id)
}

// TraceID 读取追踪 ID，不存在时为空串
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(TraceIDKey{}).(string)
	return id
}
