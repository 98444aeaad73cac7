package storage

import (
	"context"
	"sync"
	"time"

	"schemebridge/internal/ctxkeys"
	"schemebridge/internal/logger"
	"schemebridge/internal/scheme"
	"schemebridge/pkg/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 记录结果
const (
	OutcomeIntercepted = "intercepted"
	OutcomePassed      = "passed"
	OutcomeResponded   = "responded"
	OutcomeFinished    = "finished"
	OutcomeFailed      = "failed"
	OutcomeStopped     = "stopped"
)

// RequestRecord 一次请求的处理记录
type RequestRecord struct {
	ID           string `gorm:"primaryKey;size:36"`
	SessionID    string `gorm:"index;size:64"`
	RequestID    string `gorm:"index;size:128"`
	Scheme       string `gorm:"size:64"`
	URL          string
	Method       string `gorm:"size:16"`
	ResourceType int32
	Intercepted  bool
	Outcome      string `gorm:"index;size:16"`
	Status       int32
	NetError     int32
	BodyBytes    int64
	StartedAt    time.Time
	EndedAt      *time.Time
}

// ToModel 转换为对外模型
func (r *RequestRecord) ToModel() model.Record {
	out := model.Record{
		ID:           r.ID,
		SessionID:    r.SessionID,
		RequestID:    r.RequestID,
		Scheme:       r.Scheme,
		URL:          r.URL,
		Method:       r.Method,
		ResourceType: r.ResourceType,
		Intercepted:  r.Intercepted,
		Outcome:      r.Outcome,
		Status:       r.Status,
		NetError:     r.NetError,
		BodyBytes:    r.BodyBytes,
		StartedAt:    r.StartedAt.UnixMilli(),
	}
	if r.EndedAt != nil {
		out.EndedAt = r.EndedAt.UnixMilli()
	}
	return out
}

type recordEvent struct {
	ev     scheme.Event
	scheme string
	at     time.Time
}

// Recorder 观察请求生命周期并写入记录，写库在独立协程中进行，队列满时丢弃事件
type Recorder struct {
	db        *gorm.DB
	sessionID string
	log       logger.Logger
	// SchemeOf 按请求 ID 查询 scheme，可为 nil
	SchemeOf func(requestID string) string

	queue chan recordEvent
	rows  map[string]*RequestRecord
	wg    sync.WaitGroup
	mu    sync.RWMutex
	done  bool
}

// NewRecorder 创建记录器并启动写协程
func NewRecorder(db *gorm.DB, sessionID string, l logger.Logger) *Recorder {
	if l == nil {
		l = logger.NewNop()
	}
	r := &Recorder{
		db:        db,
		sessionID: sessionID,
		log:       l,
		queue:     make(chan recordEvent, 1024),
		rows:      make(map[string]*RequestRecord),
	}
	r.wg.Add(1)
	go r.run()
	return r
}

// Observe 实现 scheme.Observer
func (r *Recorder) Observe(ev scheme.Event) {
	re := recordEvent{ev: ev, at: time.Now()}
	if r.SchemeOf != nil {
		re.scheme = r.SchemeOf(ev.RequestID)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.done {
		return
	}
	select {
	case r.queue <- re:
	default:
		r.log.Warn("记录队列已满，丢弃事件", "kind", string(ev.Kind), "requestID", ev.RequestID)
	}
}

// Close 停止接收事件并等待已排队事件写完
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.done {
		r.mu.Unlock()
		return
	}
	r.done = true
	close(r.queue)
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Recorder) run() {
	defer r.wg.Done()
	for re := range r.queue {
		r.apply(re)
	}
}

func (r *Recorder) apply(re recordEvent) {
	ev := re.ev
	ctx := ctxkeys.WithTraceID(context.Background(), ev.RequestID)
	row, ok := r.rows[ev.RequestID]

	switch ev.Kind {
	case scheme.EventIntercepted, scheme.EventPassed:
		row = &RequestRecord{
			ID:           uuid.NewString(),
			SessionID:    r.sessionID,
			RequestID:    ev.RequestID,
			Scheme:       re.scheme,
			ResourceType: -1,
			Intercepted:  ev.Kind == scheme.EventIntercepted,
			Outcome:      string(ev.Kind),
			StartedAt:    re.at,
		}
		if ev.Request != nil {
			row.URL = ev.Request.URL()
			row.Method = ev.Request.Method()
			row.ResourceType = ev.Request.ResourceType()
		}
		if ev.Kind == scheme.EventPassed {
			row.EndedAt = &re.at
		} else {
			r.rows[ev.RequestID] = row
		}
		r.save(ctx, row)
		return
	}
	if !ok {
		return
	}

	switch ev.Kind {
	case scheme.EventResponded:
		row.Outcome = OutcomeResponded
		row.Status = ev.Status
	case scheme.EventData:
		row.BodyBytes += int64(ev.Bytes)
		// 数据块只累计，终态时一并写入
		return
	case scheme.EventFinished:
		row.Outcome = OutcomeFinished
	case scheme.EventFailed:
		row.Outcome = OutcomeFailed
		row.NetError = ev.NetError
	case scheme.EventStopped:
		row.Outcome = OutcomeStopped
	}
	if ev.Kind != scheme.EventResponded {
		row.EndedAt = &re.at
		delete(r.rows, ev.RequestID)
	}
	r.save(ctx, row)
}

func (r *Recorder) save(ctx context.Context, row *RequestRecord) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		r.log.Err(err, "写入请求记录失败", "requestID", row.RequestID)
	}
}

// ListRecords 按开始时间倒序返回会话的记录，limit<=0 时返回全部
func ListRecords(ctx context.Context, db *gorm.DB, sessionID string, limit int) ([]RequestRecord, error) {
	q := db.WithContext(ctx).Order("started_at desc")
	if sessionID != "" {
		q = q.Where("session_id = ?", sessionID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []RequestRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
