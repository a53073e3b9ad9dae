package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// SituationState различает "ещё не загружали", "загружается" и "загружено"
type SituationState string

const (
	SituationUnloaded SituationState = "unloaded"
	SituationLoading  SituationState = "loading"
	SituationLoaded   SituationState = "loaded"
)

type SituationSnapshot struct {
	State     SituationState       `json:"state"`
	Situation *models.Situation    `json:"situation,omitempty"`
	Events    []models.LogEvent    `json:"events"`
	Draft     models.LogEventDraft `json:"draft"`
	Error     *string              `json:"error"`
}

// SituationBoard - плоский журнал событий с картой статусов по локациям
type SituationBoard struct {
	api      EventLogAPI
	validate *validator.Validate
	logger   *logrus.Entry

	mu           sync.Mutex
	state        SituationState
	situation    *models.Situation
	events       []models.LogEvent
	draft        models.LogEventDraft
	errMsg       string
	eventSeq     sequence
	situationSeq sequence
}

func NewSituationBoard(api EventLogAPI, logger *logrus.Entry) *SituationBoard {
	return &SituationBoard{
		api:      api,
		validate: newValidator(),
		logger:   logger.WithField("component", "situation_board"),
		state:    SituationUnloaded,
		events:   []models.LogEvent{},
		draft:    models.DefaultLogEventDraft(),
	}
}

// Loaded сообщает, загружалась ли карта ситуации хотя бы раз
func (b *SituationBoard) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state != SituationUnloaded
}

// Load перечитывает журнал и карту ситуации. Слоты независимы: ошибка
// одного не мешает применить другой.
func (b *SituationBoard) Load(ctx context.Context) error {
	eventsErr := b.loadEvents(ctx)
	situationErr := b.loadSituation(ctx)
	if eventsErr != nil {
		return eventsErr
	}
	return situationErr
}

func (b *SituationBoard) loadEvents(ctx context.Context) error {
	b.mu.Lock()
	token := b.eventSeq.next()
	b.mu.Unlock()

	events, err := b.api.ListLogEvents(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.eventSeq.isLatest(token) {
		return nil
	}
	if err != nil {
		b.logger.WithError(err).Warn("Failed to load event log")
		b.errMsg = MsgLoadEvents
		return fmt.Errorf("dashboard: load event log: %w", err)
	}
	if events == nil {
		events = []models.LogEvent{}
	}
	b.events = events
	return nil
}

func (b *SituationBoard) loadSituation(ctx context.Context) error {
	b.mu.Lock()
	token := b.situationSeq.next()
	if b.state == SituationUnloaded {
		b.state = SituationLoading
	}
	b.mu.Unlock()

	situation, err := b.api.GetSituation(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.situationSeq.isLatest(token) {
		return nil
	}
	if err != nil {
		if b.situation == nil {
			b.state = SituationUnloaded
		}
		b.logger.WithError(err).Warn("Failed to load situation")
		b.errMsg = MsgLoadSituation
		return fmt.Errorf("dashboard: load situation: %w", err)
	}
	b.situation = situation
	b.state = SituationLoaded
	return nil
}

func (b *SituationBoard) Edit(patch models.LogEventDraftPatch) (models.LogEventDraft, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if patch.Type != nil && !patch.Type.Valid() {
		return b.draft, fmt.Errorf("%w: type %q", ErrInvalidDraft, *patch.Type)
	}
	if patch.Severity != nil && !patch.Severity.Valid() {
		return b.draft, fmt.Errorf("%w: severity %q", ErrInvalidDraft, *patch.Severity)
	}
	b.draft = patch.Apply(b.draft)
	return b.draft, nil
}

// Submit создает запись журнала и перечитывает журнал и ситуацию
func (b *SituationBoard) Submit(ctx context.Context) (*models.LogEvent, error) {
	b.mu.Lock()
	b.errMsg = ""
	draft := b.draft
	b.mu.Unlock()

	if err := b.validate.Struct(draft); err != nil {
		b.setError(MsgRequiredFields)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	event, err := b.api.CreateLogEvent(ctx, draft)
	if err != nil {
		b.logger.WithError(err).Warn("Failed to create log event")
		b.setError(MsgCreateEvent)
		return nil, fmt.Errorf("dashboard: create log event: %w", err)
	}

	b.mu.Lock()
	b.draft = models.DefaultLogEventDraft()
	b.mu.Unlock()

	if err := b.Load(ctx); err != nil {
		b.logger.WithError(err).Debug("Reload after log event creation failed")
	}
	return event, nil
}

func (b *SituationBoard) setError(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errMsg = message
}

func (b *SituationBoard) Snapshot() SituationSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	snap := SituationSnapshot{
		State:  b.state,
		Events: append([]models.LogEvent{}, b.events...),
		Draft:  b.draft,
	}
	if b.situation != nil {
		statuses := make(map[string]string, len(b.situation.StatusByLocation))
		for k, v := range b.situation.StatusByLocation {
			statuses[k] = v
		}
		snap.Situation = &models.Situation{StatusByLocation: statuses}
	}
	if b.errMsg != "" {
		msg := b.errMsg
		snap.Error = &msg
	}
	return snap
}
