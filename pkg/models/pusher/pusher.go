package pusher

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, every
// PushInterval while started and once more on Stop.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	running        atomic.Bool
	done           chan struct{}
	stopped        sync.WaitGroup
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Errorf("push: %v", err) },
		PushInterval: time.Second,
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll flushes the buffer. On error the buffer is kept for the next push.
func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		return err
	}

	p.MessagesBuffer = []T{}
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Start() {
	if !p.running.CompareAndSwap(false, true) {
		return
	}

	p.done = make(chan struct{})
	p.stopped.Add(1)
	go func() {
		defer p.stopped.Done()

		ticker := time.NewTicker(p.PushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.done:
				return
			}
		}
	}()
}

// Stop ends the push loop and flushes whatever is still buffered.
func (p *Pusher[T]) Stop() {
	if p.running.CompareAndSwap(true, false) {
		close(p.done)
		p.stopped.Wait()
	}

	if err := p.PushAll(); err != nil {
		p.ErrorHandler(err)
	}
}
