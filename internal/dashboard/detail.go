package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// DetailState различает "ничего не выбрано", "загружается" и "загружено"
type DetailState string

const (
	DetailAbsent  DetailState = "absent"
	DetailLoading DetailState = "loading"
	DetailLoaded  DetailState = "loaded"
)

// DetailSnapshot - отображаемое состояние карточки кризиса
type DetailSnapshot struct {
	State     DetailState          `json:"state"`
	CrisisID  string               `json:"crisisId,omitempty"`
	Crisis    *models.Crisis       `json:"crisis,omitempty"`
	Events    []models.CrisisEvent `json:"events"`
	EventForm *EventFormSnapshot   `json:"eventForm,omitempty"`
}

// DetailController загружает выбранный кризис вместе с его событиями и
// выполняет изменения статуса и приоритета.
type DetailController struct {
	api       CrisisAPI
	validate  *validator.Validate
	onError   ErrorReporter
	onMutated func(ctx context.Context, mutation models.Mutation)
	logger    *logrus.Entry

	mu       sync.Mutex
	state    DetailState
	id       string
	crisis   *models.Crisis
	events   []models.CrisisEvent
	form     *AddEventForm
	loadSeq  sequence
	eventSeq sequence
	mutSeq   sequence
}

func NewDetailController(api CrisisAPI, onError ErrorReporter, onMutated func(ctx context.Context, mutation models.Mutation), logger *logrus.Entry) *DetailController {
	if onError == nil {
		onError = noopReporter
	}
	if onMutated == nil {
		onMutated = func(context.Context, models.Mutation) {}
	}
	return &DetailController{
		api:       api,
		validate:  newValidator(),
		onError:   onError,
		onMutated: onMutated,
		logger:    logger.WithField("component", "detail"),
		state:     DetailAbsent,
		events:    []models.CrisisEvent{},
	}
}

// Load читает кризис и его события и применяет их только вместе
func (d *DetailController) Load(ctx context.Context, id string) error {
	d.mu.Lock()
	token := d.loadSeq.next()
	d.state = DetailLoading
	d.id = id
	if d.crisis != nil && d.crisis.ID != id {
		d.crisis = nil
		d.events = []models.CrisisEvent{}
		d.form = nil
	}
	d.mu.Unlock()

	log := d.logger.WithFields(logrus.Fields{"crisis_id": id, "token": token})

	var (
		crisis *models.Crisis
		events []models.CrisisEvent
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		crisis, err = d.api.GetCrisis(gctx, id)
		if err != nil {
			return fmt.Errorf("get crisis: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = d.api.ListCrisisEvents(gctx, id)
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return nil
	})
	err := g.Wait()

	d.mu.Lock()
	if !d.loadSeq.isLatest(token) {
		d.mu.Unlock()
		log.Debug("Discarding superseded crisis detail response")
		return nil
	}
	if err != nil || crisis == nil {
		d.reset()
		d.mu.Unlock()
		if err == nil {
			err = errors.New("get crisis: empty response")
		}
		log.WithError(err).Warn("Failed to load crisis details")
		d.onError(MsgLoadDetail)
		return fmt.Errorf("dashboard: load crisis %s: %w", id, err)
	}
	if events == nil {
		events = []models.CrisisEvent{}
	}
	if d.form == nil || d.form.CrisisID() != crisis.ID {
		d.form = d.newEventForm(crisis.ID)
	}
	d.crisis = crisis
	d.events = events
	d.state = DetailLoaded
	d.mu.Unlock()

	log.WithField("events", len(events)).Debug("Crisis details loaded")
	return nil
}

// Clear сбрасывает выбор; незавершенные загрузки будут отброшены
func (d *DetailController) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadSeq.next()
	d.eventSeq.next()
	d.reset()
}

// reset вызывается под мьютексом
func (d *DetailController) reset() {
	d.state = DetailAbsent
	d.id = ""
	d.crisis = nil
	d.events = []models.CrisisEvent{}
	d.form = nil
}

// ReloadEvents перечитывает только список событий загруженного кризиса
func (d *DetailController) ReloadEvents(ctx context.Context) error {
	d.mu.Lock()
	if d.state != DetailLoaded {
		d.mu.Unlock()
		return ErrNoSelection
	}
	id := d.crisis.ID
	loadToken := d.loadSeq.current()
	token := d.eventSeq.next()
	d.mu.Unlock()

	log := d.logger.WithFields(logrus.Fields{"crisis_id": id, "token": token})

	events, err := d.api.ListCrisisEvents(ctx, id)

	d.mu.Lock()
	if !d.loadSeq.isLatest(loadToken) || !d.eventSeq.isLatest(token) {
		d.mu.Unlock()
		log.Debug("Discarding superseded event list response")
		return nil
	}
	if err != nil {
		d.mu.Unlock()
		log.WithError(err).Warn("Failed to reload crisis events")
		d.onError(MsgLoadDetail)
		return fmt.Errorf("dashboard: reload events of %s: %w", id, err)
	}
	if events == nil {
		events = []models.CrisisEvent{}
	}
	d.events = events
	d.mu.Unlock()
	return nil
}

// ChangeStatus отправляет новый статус и заменяет кризис ответом сервера
func (d *DetailController) ChangeStatus(ctx context.Context, status models.CrisisStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidValue, status)
	}
	return d.mutate(ctx, models.MutationStatusChanged, string(status), func(ctx context.Context, id string) (*models.Crisis, error) {
		return d.api.UpdateCrisisStatus(ctx, id, status)
	})
}

// ChangePriority симметричен ChangeStatus
func (d *DetailController) ChangePriority(ctx context.Context, priority models.CrisisPriority) error {
	if !priority.Valid() {
		return fmt.Errorf("%w: priority %q", ErrInvalidValue, priority)
	}
	return d.mutate(ctx, models.MutationPriorityChanged, string(priority), func(ctx context.Context, id string) (*models.Crisis, error) {
		return d.api.UpdateCrisisPriority(ctx, id, priority)
	})
}

func (d *DetailController) mutate(ctx context.Context, kind models.MutationKind, value string, call func(context.Context, string) (*models.Crisis, error)) error {
	d.mu.Lock()
	if d.state != DetailLoaded {
		d.mu.Unlock()
		return ErrNoSelection
	}
	id := d.crisis.ID
	loadToken := d.loadSeq.current()
	token := d.mutSeq.next()
	d.mu.Unlock()

	log := d.logger.WithFields(logrus.Fields{"crisis_id": id, "mutation": kind, "value": value})

	updated, err := call(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to update crisis")
		d.onError(MsgUpdateCrisis)
		return fmt.Errorf("dashboard: update crisis %s: %w", id, err)
	}

	// Без записи в ответе остается прежняя версия кризиса
	d.mu.Lock()
	switch {
	case updated == nil:
		log.Debug("Update response carries no crisis, keeping current one")
	case d.loadSeq.isLatest(loadToken) && d.mutSeq.isLatest(token):
		d.crisis = updated
	default:
		log.Debug("Selection moved on, not applying update response")
	}
	d.mu.Unlock()

	log.Info("Crisis updated")
	d.onMutated(ctx, models.Mutation{Kind: kind, CrisisID: id, Value: value})
	return nil
}

// EventForm возвращает форму события текущего кризиса или nil
func (d *DetailController) EventForm() *AddEventForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.form
}

func (d *DetailController) newEventForm(crisisID string) *AddEventForm {
	return NewAddEventForm(crisisID, d.api, d.validate, d.onError, d.eventAdded, d.logger)
}

// eventAdded перечитывает хронологию после успешного добавления события
func (d *DetailController) eventAdded(ctx context.Context, crisisID string, event *models.CrisisEvent) {
	if err := d.ReloadEvents(ctx); err != nil && !errors.Is(err, ErrNoSelection) {
		d.logger.WithError(err).WithField("crisis_id", crisisID).Debug("Event list reload after add failed")
	}
	value := ""
	if event != nil {
		value = string(event.Type)
	}
	d.onMutated(ctx, models.Mutation{Kind: models.MutationEventAdded, CrisisID: crisisID, Value: value})
}

func (d *DetailController) State() DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *DetailController) Crisis() *models.Crisis {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.crisis == nil {
		return nil
	}
	c := *d.crisis
	return &c
}

func (d *DetailController) Snapshot() DetailSnapshot {
	d.mu.Lock()
	snap := DetailSnapshot{
		State:    d.state,
		CrisisID: d.id,
		Events:   append([]models.CrisisEvent(nil), d.events...),
	}
	if snap.Events == nil {
		snap.Events = []models.CrisisEvent{}
	}
	if d.crisis != nil {
		c := *d.crisis
		snap.Crisis = &c
	}
	form := d.form
	d.mu.Unlock()

	if form != nil {
		fs := form.Snapshot()
		snap.EventForm = &fs
	}
	return snap
}
