package cdp

import "sync"

// workerPool 固定数量的工作协程，队列满时 submit 返回 false
type workerPool struct {
	tasks chan func()
	wg    sync.WaitGroup
	once  sync.Once
	mu    sync.RWMutex
	done  bool
}

func newWorkerPool(workers, queue int) *workerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &workerPool{tasks: make(chan func(), queue)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
	return p
}

func (p *workerPool) work() {
	defer p.wg.Done()
	for fn := range p.tasks {
		fn()
	}
}

// submit 非阻塞提交
func (p *workerPool) submit(fn func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.done {
		return false
	}
	select {
	case p.tasks <- fn:
		return true
	default:
		return false
	}
}

// stop 拒绝新任务并等待已提交任务完成
func (p *workerPool) stop() {
	p.once.Do(func() {
		p.mu.Lock()
		p.done = true
		close(p.tasks)
		p.mu.Unlock()
		p.wg.Wait()
	})
}
