package sync

import (
	"sync"
	"time"
)

// drainSession одна серия drain: первый drain и все догоняющие.
// Ожидающие вызовы получают ее итог после закрытия done.
type drainSession struct {
	done   chan struct{}
	err    error
	result DrainResult
}

// drainGate не дает запускать drain параллельно. Триггер во время drain
// превращается ровно в один последующий drain той же сессии.
type drainGate struct {
	session *drainSession
	mu      sync.Mutex
	running bool
	pending bool
}

// enter возвращает текущую сессию и true, если вызывающий должен выполнить drain сам.
func (g *drainGate) enter() (*drainSession, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		g.pending = true
		return g.session, false
	}

	g.running = true
	g.pending = false
	g.session = &drainSession{done: make(chan struct{})}
	return g.session, true
}

// next вызывается ведущим после каждого drain. Возвращает true, если нужен
// еще один drain. При stop догоняющий drain отменяется и сессия закрывается.
func (g *drainGate) next(stop bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending && !stop {
		g.pending = false
		return true
	}

	g.pending = false
	g.running = false
	close(g.session.done)
	return false
}

// wait blocks until the running session, if any, finishes.
func (g *drainGate) wait() {
	g.mu.Lock()
	s := g.session
	running := g.running
	g.mu.Unlock()

	if running && s != nil {
		<-s.done
	}
}

// debouncer планирует вызов fn не чаще одного раза за окно delay.
// Триггер, пока вызов уже запланирован, ничего не делает.
type debouncer struct {
	timer   *time.Timer
	fn      func()
	delay   time.Duration
	mu      sync.Mutex
	pending bool
	stopped bool
}

func newDebouncer(delay time.Duration, fn func()) *debouncer {
	return &debouncer{delay: delay, fn: fn}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.delay <= 0 || d.pending || d.stopped {
		return
	}
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.pending = false
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			d.fn()
		}
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
