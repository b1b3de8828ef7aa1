package syncs

import "context"

// Semaphore bounds concurrent work, the channel capacity is the limit.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, max(n, 1))
}

func (s Semaphore) Acquire() {
	s <- struct{}{}
}

// AcquireContext returns ctx.Err() if ctx is done before a slot frees up.
func (s Semaphore) AcquireContext(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}
