package scheme

import (
	"sync"

	"schemebridge/pkg/arkweb"
)

// Table 宿主处理器与引擎处理器的双向映射，所有读写共用一把锁
type Table struct {
	mu        sync.Mutex
	toEngine  map[*WebSchemeHandler]*arkweb.SchemeHandler
	toWrapper map[*arkweb.SchemeHandler]*WebSchemeHandler
}

// DefaultTable 进程级映射表，供不持有会话的调用方使用
var DefaultTable = NewTable()

func NewTable() *Table {
	return &Table{
		toEngine:  make(map[*WebSchemeHandler]*arkweb.SchemeHandler),
		toWrapper: make(map[*arkweb.SchemeHandler]*WebSchemeHandler),
	}
}

func (t *Table) put(w *WebSchemeHandler, h *arkweb.SchemeHandler) {
	t.mu.Lock()
	t.toEngine[w] = h
	t.toWrapper[h] = w
	t.mu.Unlock()
}

func (t *Table) remove(w *WebSchemeHandler) *arkweb.SchemeHandler {
	t.mu.Lock()
	defer t.mu.Unlock()
	h, ok := t.toEngine[w]
	if !ok {
		return nil
	}
	delete(t.toEngine, w)
	delete(t.toWrapper, h)
	return h
}

// ArkWebSchemeHandler 宿主处理器对应的引擎处理器
func (t *Table) ArkWebSchemeHandler(w *WebSchemeHandler) *arkweb.SchemeHandler {
	if w == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.toEngine[w]
}

// WebSchemeHandler 引擎处理器对应的宿主处理器
func (t *Table) WebSchemeHandler(h *arkweb.SchemeHandler) *WebSchemeHandler {
	if h == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.toWrapper[h]
}

// Len 当前映射条目数
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.toEngine)
}

// Clear 清空两张映射
func (t *Table) Clear() {
	t.mu.Lock()
	t.toEngine = make(map[*WebSchemeHandler]*arkweb.SchemeHandler)
	t.toWrapper = make(map[*arkweb.SchemeHandler]*WebSchemeHandler)
	t.mu.Unlock()
}
