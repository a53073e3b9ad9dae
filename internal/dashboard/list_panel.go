package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// ListItem - кризис в списке с признаком выделения
type ListItem struct {
	models.Crisis
	Selected bool `json:"selected"`
}

// ListSnapshot - отображаемое состояние списка
type ListSnapshot struct {
	Filter  models.StatusFilter `json:"filter"`
	Items   []ListItem          `json:"items"`
	Loaded  bool                `json:"loaded"`
	Refresh uint64              `json:"refresh"`
}

// ListPanel держит отфильтрованный по статусу список кризисов
type ListPanel struct {
	api     CrisisAPI
	onError ErrorReporter
	logger  *logrus.Entry

	mu      sync.Mutex
	filter  models.StatusFilter
	crises  []models.Crisis
	loaded  bool
	refresh uint64
	seq     sequence
}

func NewListPanel(api CrisisAPI, onError ErrorReporter, logger *logrus.Entry) *ListPanel {
	if onError == nil {
		onError = noopReporter
	}
	return &ListPanel{
		api:     api,
		onError: onError,
		logger:  logger.WithField("component", "list_panel"),
		filter:  models.DefaultStatusFilter,
		crises:  []models.Crisis{},
	}
}

// Mount выполняет первое чтение с текущим фильтром
func (p *ListPanel) Mount(ctx context.Context) error {
	return p.fetch(ctx)
}

// SetFilter меняет фильтр и перечитывает список. Повторная установка
// того же значения ничего не делает.
func (p *ListPanel) SetFilter(ctx context.Context, filter models.StatusFilter) error {
	if !filter.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	p.mu.Lock()
	if p.filter == filter {
		p.mu.Unlock()
		return nil
	}
	p.filter = filter
	p.mu.Unlock()
	return p.fetch(ctx)
}

// Refresh реагирует на новое значение сигнала обновления. Фильтр не меняется.
func (p *ListPanel) Refresh(ctx context.Context, value uint64) error {
	p.mu.Lock()
	if p.refresh == value {
		p.mu.Unlock()
		return nil
	}
	p.refresh = value
	p.mu.Unlock()
	return p.fetch(ctx)
}

// Reload перечитывает список без оглядки на сигнал
func (p *ListPanel) Reload(ctx context.Context) error {
	return p.fetch(ctx)
}

func (p *ListPanel) Filter() models.StatusFilter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

// Snapshot возвращает копию состояния; selectedID подсвечивает элемент
func (p *ListPanel) Snapshot(selectedID string) ListSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	items := make([]ListItem, len(p.crises))
	for i, c := range p.crises {
		items[i] = ListItem{Crisis: c, Selected: selectedID != "" && c.ID == selectedID}
	}
	return ListSnapshot{
		Filter:  p.filter,
		Items:   items,
		Loaded:  p.loaded,
		Refresh: p.refresh,
	}
}

func (p *ListPanel) fetch(ctx context.Context) error {
	p.mu.Lock()
	token := p.seq.next()
	filter := p.filter
	p.mu.Unlock()

	log := p.logger.WithFields(logrus.Fields{"filter": filter, "token": token})

	var (
		crises []models.Crisis
		err    error
	)
	if filter.Scoped() {
		crises, err = p.api.ListCrisesByStatus(ctx, models.CrisisStatus(filter))
	} else {
		crises, err = p.api.ListCrises(ctx)
	}

	p.mu.Lock()
	if !p.seq.isLatest(token) {
		p.mu.Unlock()
		log.Debug("Discarding superseded crisis list response")
		return nil
	}
	if err != nil {
		// Предыдущий список остается на экране
		p.mu.Unlock()
		log.WithError(err).Warn("Failed to load crises")
		p.onError(MsgLoadCrises)
		return fmt.Errorf("dashboard: load crises: %w", err)
	}
	if crises == nil {
		crises = []models.Crisis{}
	}
	p.crises = crises
	p.loaded = true
	p.mu.Unlock()

	log.WithField("count", len(crises)).Debug("Crisis list loaded")
	return nil
}
