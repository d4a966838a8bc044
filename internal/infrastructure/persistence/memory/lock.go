package memory

import (
	"context"
	"sync"
)

// GenerationLock is a process-local per-chapter mutual exclusion. It serves
// single-instance deployments running without redis, and the tests.
type GenerationLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func NewGenerationLock() *GenerationLock {
	return &GenerationLock{held: make(map[string]bool)}
}

func (l *GenerationLock) TryAcquire(ctx context.Context, chapterID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[chapterID] {
		return false, nil
	}
	l.held[chapterID] = true
	return true, nil
}

func (l *GenerationLock) Release(chapterID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, chapterID)
	return nil
}
