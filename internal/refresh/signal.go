package refresh

import "context"

// Signal - разделяемый счетчик обновлений списка кризисов
type Signal interface {
	// Bump увеличивает счетчик и возвращает новое значение
	Bump(ctx context.Context) (uint64, error)
	// Watch вызывает fn для каждого нового значения, пока не отменен ctx
	Watch(ctx context.Context, fn func(ctx context.Context, value uint64)) error
}
