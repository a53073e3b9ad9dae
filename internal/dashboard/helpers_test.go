package dashboard

import (
	"io"
	"sync"
	"testing"

	"github.com/shenikar/crisis_dashboard/internal/dashboard/mocks"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard) // Отключаем вывод логов в тестах
	return logrus.NewEntry(logger)
}

func newMockAPI(t *testing.T) *mocks.MockCrisisAPI {
	ctrl := gomock.NewController(t)
	return mocks.NewMockCrisisAPI(ctrl)
}

// errorLog собирает сообщения, переданные в ErrorReporter
type errorLog struct {
	mu       sync.Mutex
	messages []string
}

func (l *errorLog) report(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, message)
}

func (l *errorLog) last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.messages) == 0 {
		return ""
	}
	return l.messages[len(l.messages)-1]
}

func crisis(id string, status models.CrisisStatus) models.Crisis {
	return models.Crisis{
		ID:       id,
		Type:     models.CrisisTypeFire,
		Status:   status,
		Priority: models.CrisisPriorityUrgent,
		Title:    "Crisis " + id,
	}
}

func strPtr(s string) *string {
	return &s
}
