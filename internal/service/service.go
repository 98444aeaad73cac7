// Package service 会话级操作的门面
package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"schemebridge/internal/logger"
	"schemebridge/internal/rules"
	"schemebridge/internal/session"
	"schemebridge/pkg/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const opTimeout = 10 * time.Second

type Service struct {
	sessions *session.Manager
	log      logger.Logger
}

// New 创建服务，db 为 nil 时不记录请求
func New(db *gorm.DB, l logger.Logger) *Service {
	if l == nil {
		l = logger.NewNop()
	}
	return &Service{sessions: session.NewManager(db, l), log: l}
}

func (s *Service) get(id model.SessionID) (*session.Session, error) {
	ss, ok := s.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("会话不存在: %s", id)
	}
	return ss, nil
}

func (s *Service) StartSession(cfg model.SessionConfig) (model.SessionID, error) {
	id := model.SessionID(uuid.NewString())
	if _, err := s.sessions.Create(id, cfg); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) StopSession(id model.SessionID) error {
	if !s.sessions.Delete(id) {
		return fmt.Errorf("会话不存在: %s", id)
	}
	return nil
}

func (s *Service) LoadScript(id model.SessionID, name, src string) error {
	ss, err := s.get(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return ss.LoadScript(ctx, name, src)
}

func (s *Service) ReloadScript(id model.SessionID, name, src string) error {
	ss, err := s.get(id)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return ss.ReloadScript(ctx, name, src)
}

func (s *Service) UpdateRoutes(id model.SessionID, routes []rules.Route) error {
	ss, err := s.get(id)
	if err != nil {
		return err
	}
	return ss.UpdateRoutes(routes)
}

func (s *Service) ListTargets(id model.SessionID) ([]model.TargetInfo, error) {
	ss, err := s.get(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return ss.ListTargets(ctx)
}

func (s *Service) AttachTarget(id model.SessionID, target model.TargetID) (model.TargetID, error) {
	ss, err := s.get(id)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return ss.AttachTarget(ctx, target)
}

func (s *Service) DetachTarget(id model.SessionID, target model.TargetID) error {
	ss, err := s.get(id)
	if err != nil {
		return err
	}
	return ss.DetachTarget(target)
}

func (s *Service) EnableInterception(id model.SessionID) error {
	ss, err := s.get(id)
	if err != nil {
		return err
	}
	return ss.EnableInterception()
}

func (s *Service) DisableInterception(id model.SessionID) error {
	ss, err := s.get(id)
	if err != nil {
		return err
	}
	return ss.DisableInterception()
}

func (s *Service) HTTPHandler(id model.SessionID, defaultScheme string, fallback http.Handler) (http.Handler, error) {
	ss, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return ss.HTTPHandler(defaultScheme, fallback), nil
}

func (s *Service) ListRecords(id model.SessionID, limit int) ([]model.Record, error) {
	ss, err := s.get(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return ss.Records(ctx, limit)
}

func (s *Service) SubscribeEvents(id model.SessionID) (<-chan model.Event, error) {
	ss, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return ss.Events(), nil
}

// Close 关闭全部会话
func (s *Service) Close() {
	s.sessions.CloseAll()
}
