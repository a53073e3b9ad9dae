package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// PageSnapshot - всё, что нужно клиенту для отрисовки панели
type PageSnapshot struct {
	SelectedCrisisID *string            `json:"selectedCrisisId"`
	Error            *string            `json:"error"`
	Refresh          uint64             `json:"refresh"`
	List             ListSnapshot       `json:"list"`
	Detail           DetailSnapshot     `json:"detail"`
	CreateForm       CreateFormSnapshot `json:"createForm"`
}

// Page - корень композиции: владеет выбором, видимостью формы создания,
// последней ошибкой и значением сигнала обновления. Дочерние компоненты
// получают состояние только через параметры и колбэки.
type Page struct {
	signal   RefreshSignal
	notifier MutationNotifier
	logger   *logrus.Entry

	list       *ListPanel
	detail     *DetailController
	createForm *CreateCrisisForm

	mu                sync.Mutex
	selectedID        string
	errMsg            string
	createFormVisible bool
	refresh           uint64
}

// PageOption настраивает необязательные зависимости страницы
type PageOption func(*Page)

// WithNotifier передает успешные изменения внешним подписчикам
func WithNotifier(n MutationNotifier) PageOption {
	return func(p *Page) {
		p.notifier = n
	}
}

func NewPage(api CrisisAPI, signal RefreshSignal, logger *logrus.Entry, opts ...PageOption) *Page {
	p := &Page{
		signal: signal,
		logger: logger.WithField("component", "page"),
	}
	for _, opt := range opts {
		opt(p)
	}
	validate := newValidator()
	p.list = NewListPanel(api, p.reportError, logger)
	p.detail = NewDetailController(api, p.reportError, p.mutated, logger)
	p.createForm = NewCreateCrisisForm(api, validate, p.reportError, p.crisisCreated, logger)
	return p
}

// Mount выполняет первичную загрузку списка
func (p *Page) Mount(ctx context.Context) error {
	return p.list.Mount(ctx)
}

func (p *Page) SetFilter(ctx context.Context, filter models.StatusFilter) error {
	return p.list.SetFilter(ctx, filter)
}

// Select выбирает кризис и загружает его детали
func (p *Page) Select(ctx context.Context, crisisID string) error {
	if crisisID == "" {
		return fmt.Errorf("%w: empty crisis id", ErrInvalidValue)
	}
	p.mu.Lock()
	p.selectedID = crisisID
	p.mu.Unlock()
	if err := p.detail.Load(ctx, crisisID); err != nil {
		// Выбор без загруженной записи не показываем
		p.mu.Lock()
		if p.selectedID == crisisID {
			p.selectedID = ""
		}
		p.mu.Unlock()
		return err
	}
	return nil
}

func (p *Page) ClearSelection() {
	p.mu.Lock()
	p.selectedID = ""
	p.mu.Unlock()
	p.detail.Clear()
}

func (p *Page) ShowCreateForm() {
	p.setCreateFormVisible(true)
}

// HideCreateForm скрывает форму; черновик сохраняется
func (p *Page) HideCreateForm() {
	p.setCreateFormVisible(false)
}

func (p *Page) ToggleCreateForm() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createFormVisible = !p.createFormVisible
	return p.createFormVisible
}

func (p *Page) setCreateFormVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.createFormVisible = visible
}

func (p *Page) EditCrisisDraft(patch models.CrisisDraftPatch) (models.CrisisDraft, error) {
	return p.createForm.Edit(patch)
}

func (p *Page) SubmitCrisis(ctx context.Context) (*models.Crisis, error) {
	p.mu.Lock()
	visible := p.createFormVisible
	p.mu.Unlock()
	if !visible {
		return nil, ErrFormHidden
	}
	return p.createForm.Submit(ctx)
}

func (p *Page) EditEventDraft(patch models.EventDraftPatch) (models.EventDraft, error) {
	form := p.detail.EventForm()
	if form == nil {
		return models.EventDraft{}, ErrNoSelection
	}
	return form.Edit(patch)
}

func (p *Page) SubmitEvent(ctx context.Context) (*models.CrisisEvent, error) {
	form := p.detail.EventForm()
	if form == nil {
		return nil, ErrNoSelection
	}
	return form.Submit(ctx)
}

func (p *Page) ChangeStatus(ctx context.Context, status models.CrisisStatus) error {
	return p.detail.ChangeStatus(ctx, status)
}

func (p *Page) ChangePriority(ctx context.Context, priority models.CrisisPriority) error {
	return p.detail.ChangePriority(ctx, priority)
}

// Refresh увеличивает сигнал обновления, после чего список перечитывается
func (p *Page) Refresh(ctx context.Context) (uint64, error) {
	value, err := p.signal.Bump(ctx)
	if err != nil {
		p.logger.WithError(err).Warn("Refresh signal unavailable, reloading list directly")
		return p.current(), p.list.Reload(ctx)
	}
	return value, p.ObserveRefresh(ctx, value)
}

// ObserveRefresh принимает значение сигнала, пришедшее извне
func (p *Page) ObserveRefresh(ctx context.Context, value uint64) error {
	p.mu.Lock()
	if value <= p.refresh {
		p.mu.Unlock()
		return nil
	}
	p.refresh = value
	p.mu.Unlock()
	return p.list.Refresh(ctx, value)
}

func (p *Page) current() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refresh
}

// reportError: последняя запись побеждает, очереди ошибок нет
func (p *Page) reportError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errMsg = message
}

func (p *Page) crisisCreated(ctx context.Context, crisis *models.Crisis) {
	p.HideCreateForm()
	id := ""
	if crisis != nil {
		id = crisis.ID
	}
	p.mutated(ctx, models.Mutation{Kind: models.MutationCrisisCreated, CrisisID: id})
}

// mutated вызывается после любого успешного изменения
func (p *Page) mutated(ctx context.Context, mutation models.Mutation) {
	value, err := p.Refresh(ctx)
	if err != nil {
		p.logger.WithError(err).Debug("List refresh after mutation failed")
	}
	if p.notifier == nil {
		return
	}
	mutation.Refresh = value
	mutation.At = time.Now().UTC()
	if err := p.notifier.Notify(ctx, mutation); err != nil {
		p.logger.WithError(err).WithField("mutation", mutation.Kind).Warn("Failed to publish mutation notification")
	}
}

func (p *Page) Error() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

func (p *Page) Snapshot() PageSnapshot {
	p.mu.Lock()
	selectedID := p.selectedID
	errMsg := p.errMsg
	visible := p.createFormVisible
	refresh := p.refresh
	p.mu.Unlock()

	draft, submitting := p.createForm.snapshot()
	snap := PageSnapshot{
		Refresh: refresh,
		List:    p.list.Snapshot(selectedID),
		Detail:  p.detail.Snapshot(),
		CreateForm: CreateFormSnapshot{
			Visible:    visible,
			Draft:      draft,
			Submitting: submitting,
		},
	}
	if selectedID != "" {
		snap.SelectedCrisisID = &selectedID
	}
	if errMsg != "" {
		snap.Error = &errMsg
	}
	return snap
}
