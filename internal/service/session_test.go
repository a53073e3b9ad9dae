package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crisis_dashboard/internal/dashboard"
	"github.com/shenikar/crisis_dashboard/internal/dashboard/mocks"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/shenikar/crisis_dashboard/internal/refresh"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// backendMock объединяет моки обоих API в один CrisisBackend
type backendMock struct {
	*mocks.MockCrisisAPI
	*mocks.MockEventLogAPI
}

// newTestSessionService создаёт сервис с моками.
func newTestSessionService(t *testing.T) (*sessionService, *mocks.MockCrisisAPI, *mocks.MockEventLogAPI) {
	ctrl := gomock.NewController(t)
	crisisMock := mocks.NewMockCrisisAPI(ctrl)
	eventLogMock := mocks.NewMockEventLogAPI(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewSessionService(backendMock{crisisMock, eventLogMock}, refresh.NewMemorySignal(), nil, logger, 30*time.Minute)
	return svc.(*sessionService), crisisMock, eventLogMock
}

func TestCreateSession_MountsCrisisList(t *testing.T) {
	// Подготовка
	svc, crisisMock, _ := newTestSessionService(t)
	ctx := context.Background()

	// Ожидания
	crisisMock.EXPECT().
		ListCrisesByStatus(gomock.Any(), models.CrisisStatusOngoing).
		Return([]models.Crisis{{ID: "1", Status: models.CrisisStatusOngoing}}, nil).
		Times(1)

	// Действие
	session, err := svc.Create(ctx)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, session.ID)
	assert.Equal(t, 1, svc.Count())
	snap := session.Page.Snapshot()
	assert.True(t, snap.List.Loaded)
	assert.Len(t, snap.List.Items, 1)
}

func TestCreateSession_ListFailureStillCreates(t *testing.T) {
	svc, crisisMock, _ := newTestSessionService(t)

	crisisMock.EXPECT().
		ListCrisesByStatus(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	session, err := svc.Create(context.Background())

	require.NoError(t, err)
	snap := session.Page.Snapshot()
	assert.False(t, snap.List.Loaded)
	require.NotNil(t, snap.Error)
	assert.Equal(t, dashboard.MsgLoadCrises, *snap.Error)
}

func TestGetSession_NotFound(t *testing.T) {
	svc, _, _ := newTestSessionService(t)

	session, err := svc.Get(uuid.New())

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteSession(t *testing.T) {
	svc, crisisMock, _ := newTestSessionService(t)
	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), gomock.Any()).Return(nil, nil)

	session, err := svc.Create(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(session.ID))
	assert.Equal(t, 0, svc.Count())
	assert.ErrorIs(t, svc.Delete(session.ID), ErrSessionNotFound)
}

func TestSweep_RemovesIdleSessions(t *testing.T) {
	svc, crisisMock, _ := newTestSessionService(t)
	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	idle, err := svc.Create(context.Background())
	require.NoError(t, err)
	active, err := svc.Create(context.Background())
	require.NoError(t, err)

	// Через 20 минут активная сессия запрашивается и продлевается
	now = now.Add(20 * time.Minute)
	_, err = svc.Get(active.ID)
	require.NoError(t, err)

	// Еще через 20 минут простаивающая сессия истекает
	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, svc.sweep())

	_, err = svc.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.Get(active.ID)
	assert.NoError(t, err)
}

func TestBroadcast_RefreshesEveryPage(t *testing.T) {
	svc, crisisMock, _ := newTestSessionService(t)
	ctx := context.Background()

	// Две загрузки при создании и по одной на каждую панель при рассылке
	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), models.CrisisStatusOngoing).Return(nil, nil).Times(4)

	first, err := svc.Create(ctx)
	require.NoError(t, err)
	second, err := svc.Create(ctx)
	require.NoError(t, err)

	svc.Broadcast(ctx, 7)
	// Повтор того же значения не вызывает новых запросов
	svc.Broadcast(ctx, 7)

	assert.Equal(t, uint64(7), first.Page.Snapshot().Refresh)
	assert.Equal(t, uint64(7), second.Page.Snapshot().Refresh)
}

func TestSessionBoard_LoadsOnce(t *testing.T) {
	svc, crisisMock, eventLogMock := newTestSessionService(t)
	ctx := context.Background()
	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), gomock.Any()).Return(nil, nil)

	eventLogMock.EXPECT().ListLogEvents(gomock.Any()).Return([]models.LogEvent{}, nil).Times(1)
	eventLogMock.EXPECT().GetSituation(gomock.Any()).Return(&models.Situation{StatusByLocation: map[string]string{}}, nil).Times(1)

	session, err := svc.Create(ctx)
	require.NoError(t, err)

	board, err := session.Board(ctx)
	require.NoError(t, err)
	assert.Equal(t, dashboard.SituationLoaded, board.Snapshot().State)

	_, err = session.Board(ctx)
	require.NoError(t, err)
}
