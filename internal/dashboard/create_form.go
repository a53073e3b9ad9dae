package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// CreateFormSnapshot - состояние формы создания кризиса
type CreateFormSnapshot struct {
	Visible    bool               `json:"visible"`
	Draft      models.CrisisDraft `json:"draft"`
	Submitting bool               `json:"submitting"`
}

// CreateCrisisForm держит черновик нового кризиса
type CreateCrisisForm struct {
	api       CrisisAPI
	validate  *validator.Validate
	onError   ErrorReporter
	onSuccess func(ctx context.Context, crisis *models.Crisis)
	logger    *logrus.Entry

	mu         sync.Mutex
	draft      models.CrisisDraft
	submitting int
}

func NewCreateCrisisForm(api CrisisAPI, validate *validator.Validate, onError ErrorReporter, onSuccess func(ctx context.Context, crisis *models.Crisis), logger *logrus.Entry) *CreateCrisisForm {
	if validate == nil {
		validate = newValidator()
	}
	if onError == nil {
		onError = noopReporter
	}
	if onSuccess == nil {
		onSuccess = func(context.Context, *models.Crisis) {}
	}
	return &CreateCrisisForm{
		api:       api,
		validate:  validate,
		onError:   onError,
		onSuccess: onSuccess,
		logger:    logger.WithField("component", "create_form"),
		draft:     models.DefaultCrisisDraft(),
	}
}

func (f *CreateCrisisForm) Draft() models.CrisisDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Edit применяет частичное изменение. Недопустимые значения перечислений
// отклоняются, черновик при этом не меняется.
func (f *CreateCrisisForm) Edit(patch models.CrisisDraftPatch) (models.CrisisDraft, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return f.Draft(), fmt.Errorf("%w: type %q", ErrInvalidDraft, *patch.Type)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return f.Draft(), fmt.Errorf("%w: priority %q", ErrInvalidDraft, *patch.Priority)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = patch.Apply(f.draft)
	return f.draft, nil
}

// Reset возвращает черновик к значениям по умолчанию
func (f *CreateCrisisForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = models.DefaultCrisisDraft()
}

// Submit отправляет черновик. При ошибке черновик остается как есть, чтобы
// пользователь мог исправить его и повторить.
func (f *CreateCrisisForm) Submit(ctx context.Context) (*models.Crisis, error) {
	f.onError("")

	f.mu.Lock()
	draft := f.draft
	f.mu.Unlock()

	if err := f.validate.Struct(draft); err != nil {
		f.onError(MsgRequiredFields)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	log := f.logger.WithFields(logrus.Fields{
		"type":     draft.Type,
		"priority": draft.Priority,
		"title":    draft.Title,
	})

	f.mu.Lock()
	f.submitting++
	f.mu.Unlock()

	crisis, err := f.api.CreateCrisis(ctx, draft)

	f.mu.Lock()
	f.submitting--
	if err == nil {
		f.draft = models.DefaultCrisisDraft()
	}
	f.mu.Unlock()

	if err != nil {
		log.WithError(err).Warn("Failed to create crisis")
		f.onError(MsgCreateCrisis)
		return nil, fmt.Errorf("dashboard: create crisis: %w", err)
	}

	if crisis != nil {
		log = log.WithField("crisis_id", crisis.ID)
	}
	log.Info("Crisis created")
	f.onSuccess(ctx, crisis)
	return crisis, nil
}

func (f *CreateCrisisForm) snapshot() (models.CrisisDraft, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft, f.submitting > 0
}
