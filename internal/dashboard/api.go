package dashboard

import (
	"context"

	"github.com/shenikar/crisis_dashboard/internal/models"
)

//go:generate mockgen -source=api.go -destination=mocks/mock_api.go -package=mocks

// CrisisAPI - операции внешнего API, которыми пользуется панель кризисов
type CrisisAPI interface {
	ListCrises(ctx context.Context) ([]models.Crisis, error)
	ListCrisesByStatus(ctx context.Context, status models.CrisisStatus) ([]models.Crisis, error)
	GetCrisis(ctx context.Context, id string) (*models.Crisis, error)
	CreateCrisis(ctx context.Context, draft models.CrisisDraft) (*models.Crisis, error)
	UpdateCrisisStatus(ctx context.Context, id string, status models.CrisisStatus) (*models.Crisis, error)
	UpdateCrisisPriority(ctx context.Context, id string, priority models.CrisisPriority) (*models.Crisis, error)
	ListCrisisEvents(ctx context.Context, crisisID string) ([]models.CrisisEvent, error)
	CreateCrisisEvent(ctx context.Context, crisisID string, draft models.EventDraft) (*models.CrisisEvent, error)
}

// EventLogAPI - эндпоинты плоского журнала событий
type EventLogAPI interface {
	ListLogEvents(ctx context.Context) ([]models.LogEvent, error)
	CreateLogEvent(ctx context.Context, draft models.LogEventDraft) (*models.LogEvent, error)
	GetSituation(ctx context.Context) (*models.Situation, error)
}

// RefreshSignal - монотонный счетчик, по изменению которого список
// перечитывает данные. Значение может разделяться между сессиями.
type RefreshSignal interface {
	Bump(ctx context.Context) (uint64, error)
}

// MutationNotifier получает успешные изменения для внешних подписчиков
type MutationNotifier interface {
	Notify(ctx context.Context, mutation models.Mutation) error
}

// ErrorReporter принимает сообщение для пользователя. Пустая строка
// сбрасывает ранее показанную ошибку.
type ErrorReporter func(message string)
