// Package session 会话：一个脚本运行时及其分发表、路由和引擎后端
package session

import (
	"fmt"
	"sync"

	"schemebridge/internal/logger"
	"schemebridge/pkg/model"

	"gorm.io/gorm"
)

// Manager 全局会话管理器
type Manager struct {
	mu       sync.RWMutex
	sessions map[model.SessionID]*Session
	db       *gorm.DB
	log      logger.Logger
}

// NewManager 创建会话管理器，db 为 nil 时不记录请求
func NewManager(db *gorm.DB, l logger.Logger) *Manager {
	if l == nil {
		l = logger.NewNop()
	}
	return &Manager{
		sessions: make(map[model.SessionID]*Session),
		db:       db,
		log:      l,
	}
}

// Create 创建并注册新会话
func (m *Manager) Create(id model.SessionID, cfg model.SessionConfig) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; ok {
		return nil, fmt.Errorf("会话已存在: %s", id)
	}
	s, err := New(id, cfg, Options{DB: m.db, Logger: m.log})
	if err != nil {
		return nil, err
	}
	m.sessions[id] = s
	m.log.Info("创建业务会话", "sessionID", string(id))
	return s, nil
}

// Get 获取会话
func (m *Manager) Get(id model.SessionID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete 关闭并移除会话
func (m *Manager) Delete(id model.SessionID) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return false
	}
	s.Close()
	m.log.Info("销毁业务会话", "sessionID", string(id))
	return true
}

// List 返回所有活动会话
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	return list
}

// CloseAll 关闭全部会话
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[model.SessionID]*Session)
	m.mu.Unlock()
	for _, s := range sessions {
		s.Close()
	}
}
