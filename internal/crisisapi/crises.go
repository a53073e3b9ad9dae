package crisisapi

import (
	"context"
	"net/http"

	"github.com/shenikar/crisis_dashboard/internal/models"
)

type statusUpdate struct {
	Status models.CrisisStatus `json:"status"`
}

type priorityUpdate struct {
	Priority models.CrisisPriority `json:"priority"`
}

// ListCrises - GET /crises
func (c *Client) ListCrises(ctx context.Context) ([]models.Crisis, error) {
	return listOf[models.Crisis](ctx, c, "crises")
}

// ListCrisesByStatus - GET /crises/status/{status}
func (c *Client) ListCrisesByStatus(ctx context.Context, status models.CrisisStatus) ([]models.Crisis, error) {
	return listOf[models.Crisis](ctx, c, "crises", "status", string(status))
}

// GetCrisis - GET /crises/{id}
func (c *Client) GetCrisis(ctx context.Context, id string) (*models.Crisis, error) {
	crisis := &models.Crisis{}
	if err := c.do(ctx, http.MethodGet, crisis, nil, "crises", id); err != nil {
		return nil, err
	}
	return crisis, nil
}

// CreateCrisis - POST /crises. Созданная запись может отсутствовать (nil)
func (c *Client) CreateCrisis(ctx context.Context, draft models.CrisisDraft) (*models.Crisis, error) {
	return record[models.Crisis](ctx, c, http.MethodPost, draft, "crises")
}

// UpdateCrisisStatus - PUT /crises/{id} с телом {status}. Если сервер не
// вернул запись, результат nil, а прежняя версия остается у вызывающего.
func (c *Client) UpdateCrisisStatus(ctx context.Context, id string, status models.CrisisStatus) (*models.Crisis, error) {
	return record[models.Crisis](ctx, c, http.MethodPut, statusUpdate{Status: status}, "crises", id)
}

// UpdateCrisisPriority - PUT /crises/{id} с телом {priority}
func (c *Client) UpdateCrisisPriority(ctx context.Context, id string, priority models.CrisisPriority) (*models.Crisis, error) {
	return record[models.Crisis](ctx, c, http.MethodPut, priorityUpdate{Priority: priority}, "crises", id)
}

// ListCrisisEvents - GET /crises/{id}/events
func (c *Client) ListCrisisEvents(ctx context.Context, crisisID string) ([]models.CrisisEvent, error) {
	return listOf[models.CrisisEvent](ctx, c, "crises", crisisID, "events")
}

// CreateCrisisEvent - POST /crises/{id}/events
func (c *Client) CreateCrisisEvent(ctx context.Context, crisisID string, draft models.EventDraft) (*models.CrisisEvent, error) {
	return record[models.CrisisEvent](ctx, c, http.MethodPost, draft, "crises", crisisID, "events")
}
