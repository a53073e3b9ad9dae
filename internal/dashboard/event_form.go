package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// EventFormSnapshot - состояние формы добавления события
type EventFormSnapshot struct {
	CrisisID   string            `json:"crisisId"`
	Draft      models.EventDraft `json:"draft"`
	Submitting bool              `json:"submitting"`
}

// AddEventForm привязана к одному кризису на всё время жизни
type AddEventForm struct {
	crisisID  string
	api       CrisisAPI
	validate  *validator.Validate
	onError   ErrorReporter
	onSuccess func(ctx context.Context, crisisID string, event *models.CrisisEvent)
	logger    *logrus.Entry

	mu         sync.Mutex
	draft      models.EventDraft
	submitting int
}

func NewAddEventForm(crisisID string, api CrisisAPI, validate *validator.Validate, onError ErrorReporter, onSuccess func(ctx context.Context, crisisID string, event *models.CrisisEvent), logger *logrus.Entry) *AddEventForm {
	if validate == nil {
		validate = newValidator()
	}
	if onError == nil {
		onError = noopReporter
	}
	if onSuccess == nil {
		onSuccess = func(context.Context, string, *models.CrisisEvent) {}
	}
	return &AddEventForm{
		crisisID:  crisisID,
		api:       api,
		validate:  validate,
		onError:   onError,
		onSuccess: onSuccess,
		logger:    logger.WithFields(logrus.Fields{"component": "event_form", "crisis_id": crisisID}),
		draft:     models.DefaultEventDraft(),
	}
}

func (f *AddEventForm) CrisisID() string {
	return f.crisisID
}

func (f *AddEventForm) Draft() models.EventDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *AddEventForm) Edit(patch models.EventDraftPatch) (models.EventDraft, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return f.Draft(), fmt.Errorf("%w: event type %q", ErrInvalidDraft, *patch.Type)
	}
	if patch.Severity != nil && !patch.Severity.Valid() {
		return f.Draft(), fmt.Errorf("%w: severity %q", ErrInvalidDraft, *patch.Severity)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = patch.Apply(f.draft)
	return f.draft, nil
}

// Submit создает событие в коллекции своего кризиса
func (f *AddEventForm) Submit(ctx context.Context) (*models.CrisisEvent, error) {
	f.onError("")

	f.mu.Lock()
	draft := f.draft
	f.mu.Unlock()

	if err := f.validate.Struct(draft); err != nil {
		f.onError(MsgRequiredFields)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	log := f.logger.WithFields(logrus.Fields{"type": draft.Type, "severity": draft.Severity})

	f.mu.Lock()
	f.submitting++
	f.mu.Unlock()

	event, err := f.api.CreateCrisisEvent(ctx, f.crisisID, draft)

	f.mu.Lock()
	f.submitting--
	if err == nil {
		f.draft = models.DefaultEventDraft()
	}
	f.mu.Unlock()

	if err != nil {
		log.WithError(err).Warn("Failed to add event")
		f.onError(MsgAddEvent)
		return nil, fmt.Errorf("dashboard: add event to %s: %w", f.crisisID, err)
	}

	log.Info("Event added")
	f.onSuccess(ctx, f.crisisID, event)
	return event, nil
}

func (f *AddEventForm) Snapshot() EventFormSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return EventFormSnapshot{
		CrisisID:   f.crisisID,
		Draft:      f.draft,
		Submitting: f.submitting > 0,
	}
}
