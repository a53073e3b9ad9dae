package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crisis_dashboard/internal/dashboard"
	"github.com/sirupsen/logrus"
)

// ErrSessionNotFound - сессия не существует или истекла
var ErrSessionNotFound = errors.New("session not found")

// CrisisBackend - внешний API целиком: кризисы и плоский журнал
type CrisisBackend interface {
	dashboard.CrisisAPI
	dashboard.EventLogAPI
}

// Session - состояние одной открытой панели оператора
type Session struct {
	ID        uuid.UUID
	Page      *dashboard.Page
	CreatedAt time.Time

	board    *dashboard.SituationBoard
	boardMu  sync.Mutex
	lastSeen time.Time
}

// Board возвращает журнал ситуации, загружая его при первом обращении
func (s *Session) Board(ctx context.Context) (*dashboard.SituationBoard, error) {
	s.boardMu.Lock()
	defer s.boardMu.Unlock()
	if s.board.Loaded() {
		return s.board, nil
	}
	return s.board, s.board.Load(ctx)
}

// SessionService определяет контракт управления сессиями панели
type SessionService interface {
	Create(ctx context.Context) (*Session, error)
	Get(id uuid.UUID) (*Session, error)
	Delete(id uuid.UUID) error
	Broadcast(ctx context.Context, value uint64)
	StartSweeper(ctx context.Context, interval time.Duration)
	Count() int
}

type sessionService struct {
	api      CrisisBackend
	signal   dashboard.RefreshSignal
	notifier dashboard.MutationNotifier
	logger   *logrus.Logger
	idle     time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionService создает реестр сессий. notifier может быть nil.
func NewSessionService(api CrisisBackend, signal dashboard.RefreshSignal, notifier dashboard.MutationNotifier, logger *logrus.Logger, idle time.Duration) SessionService {
	return &sessionService{
		api:      api,
		signal:   signal,
		notifier: notifier,
		logger:   logger,
		idle:     idle,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create открывает новую панель и выполняет первичную загрузку списка.
// Ошибка загрузки не мешает созданию: она видна в снимке панели.
func (s *sessionService) Create(ctx context.Context) (*Session, error) {
	id := uuid.New()
	log := s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "Create",
		"session_id": id,
	})

	entry := s.logger.WithField("session_id", id)
	var opts []dashboard.PageOption
	if s.notifier != nil {
		opts = append(opts, dashboard.WithNotifier(s.notifier))
	}
	now := s.now()
	session := &Session{
		ID:        id,
		Page:      dashboard.NewPage(s.api, s.signal, entry, opts...),
		CreatedAt: now,
		board:     dashboard.NewSituationBoard(s.api, entry),
		lastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	if err := session.Page.Mount(ctx); err != nil {
		log.WithError(err).Warn("Initial crisis list load failed")
	}
	log.Info("Dashboard session created")
	return session, nil
}

// Get возвращает сессию и продлевает её жизнь
func (s *sessionService) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	session.lastSeen = s.now()
	return session, nil
}

func (s *sessionService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	s.logger.WithField("session_id", id).Info("Dashboard session closed")
	return nil
}

// Broadcast передает новое значение сигнала всем открытым панелям
func (s *sessionService) Broadcast(ctx context.Context, value uint64) {
	s.mu.RLock()
	pages := make([]*dashboard.Page, 0, len(s.sessions))
	for _, session := range s.sessions {
		pages = append(pages, session.Page)
	}
	s.mu.RUnlock()

	log := s.logger.WithFields(logrus.Fields{"service": "session", "refresh": value})
	log.WithField("sessions", len(pages)).Debug("Broadcasting refresh signal")

	var wg sync.WaitGroup
	for _, page := range pages {
		wg.Add(1)
		go func(p *dashboard.Page) {
			defer wg.Done()
			if err := p.ObserveRefresh(ctx, value); err != nil {
				log.WithError(err).Debug("Page refresh failed")
			}
		}(page)
	}
	wg.Wait()
}

// StartSweeper периодически удаляет сессии, простаивающие дольше idle
func (s *sessionService) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *sessionService) sweep() int {
	cutoff := s.now().Add(-s.idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.WithField("removed", removed).Info("Expired idle dashboard sessions")
	}
	return removed
}

func (s *sessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
