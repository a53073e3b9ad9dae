package refresh

import (
	"context"
	"sync"
)

// MemorySignal - счетчик в пределах одного процесса. Медленный наблюдатель
// пропускает промежуточные значения и получает только последнее.
type MemorySignal struct {
	mu       sync.Mutex
	value    uint64
	watchers map[chan struct{}]struct{}
}

func NewMemorySignal() *MemorySignal {
	return &MemorySignal{
		watchers: make(map[chan struct{}]struct{}),
	}
}

func (s *MemorySignal) Bump(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value++
	for ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return s.value, nil
}

func (s *MemorySignal) Value() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *MemorySignal) Watch(ctx context.Context, fn func(ctx context.Context, value uint64)) error {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.watchers[ch] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.watchers, ch)
		s.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ch:
			fn(ctx, s.Value())
		}
	}
}
