package model

import "schemebridge/internal/rules"

type SessionID string
type TargetID string

// SessionConfig 会话配置
type SessionConfig struct {
	DevToolsURL      string        `json:"devToolsURL"`
	Workers          int           `json:"workers"`
	QueueSize        int           `json:"queueSize"`
	ProcessTimeoutMS int           `json:"processTimeoutMS"`
	Routes           []rules.Route `json:"routes"`
}

// 事件类型
const (
	EventIntercepted = "intercepted"
	EventPassed      = "passed"
	EventResponded   = "responded"
	EventFinished    = "finished"
	EventFailed      = "failed"
	EventStopped     = "stopped"
	EventDegraded    = "degraded"
)

type Event struct {
	Type      string    `json:"type"`
	Session   SessionID `json:"session"`
	Target    TargetID  `json:"target,omitempty"`
	RequestID string    `json:"requestID,omitempty"`
	Scheme    string    `json:"scheme,omitempty"`
	URL       string    `json:"url,omitempty"`
	Method    string    `json:"method,omitempty"`
	Status    int       `json:"status,omitempty"`
	NetError  int32     `json:"netError,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

type TargetInfo struct {
	ID        TargetID `json:"id"`
	Type      string   `json:"type"`
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	IsCurrent bool     `json:"isCurrent"`
}

// Record 一次请求的处理记录
type Record struct {
	ID           string `json:"id"`
	SessionID    string `json:"sessionID"`
	RequestID    string `json:"requestID"`
	Scheme       string `json:"scheme"`
	URL          string `json:"url"`
	Method       string `json:"method"`
	ResourceType int32  `json:"resourceType"`
	Intercepted  bool   `json:"intercepted"`
	Outcome      string `json:"outcome"`
	Status       int32  `json:"status"`
	NetError     int32  `json:"netError"`
	BodyBytes    int64  `json:"bodyBytes"`
	StartedAt    int64  `json:"startedAt"`
	EndedAt      int64  `json:"endedAt"`
}
