package api

import (
	"net/http"

	"schemebridge/internal/logger"
	"schemebridge/internal/rules"
	"schemebridge/internal/service"
	"schemebridge/pkg/model"

	"gorm.io/gorm"
)

// Service 服务接口
type Service interface {
	// StartSession 启动会话
	StartSession(cfg model.SessionConfig) (model.SessionID, error)

	// StopSession 停止会话
	StopSession(id model.SessionID) error

	// LoadScript 在会话中执行处理器脚本
	LoadScript(id model.SessionID, name, src string) error

	// ReloadScript 清空处理器后重新执行脚本
	ReloadScript(id model.SessionID, name, src string) error

	// UpdateRoutes 替换路由表
	UpdateRoutes(id model.SessionID, routes []rules.Route) error

	// ListTargets 列出目标
	ListTargets(id model.SessionID) ([]model.TargetInfo, error)

	// AttachTarget 附加目标
	AttachTarget(id model.SessionID, target model.TargetID) (model.TargetID, error)

	// DetachTarget 分离目标
	DetachTarget(id model.SessionID, target model.TargetID) error

	// EnableInterception 启用拦截
	EnableInterception(id model.SessionID) error

	// DisableInterception 禁用拦截
	DisableInterception(id model.SessionID) error

	// HTTPHandler 以会话为后端的 http.Handler
	HTTPHandler(id model.SessionID, defaultScheme string, fallback http.Handler) (http.Handler, error)

	// ListRecords 请求记录
	ListRecords(id model.SessionID, limit int) ([]model.Record, error)

	// SubscribeEvents 订阅事件
	SubscribeEvents(id model.SessionID) (<-chan model.Event, error)

	// Close 关闭全部会话
	Close()
}

// NewService 创建并返回服务接口实现
func NewService(db *gorm.DB, l logger.Logger) Service {
	return service.New(db, l)
}
