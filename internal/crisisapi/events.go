package crisisapi

import (
	"context"
	"net/http"

	"github.com/shenikar/crisis_dashboard/internal/models"
)

// Эндпоинты плоского журнала из первой версии панели

// ListLogEvents - GET /events
func (c *Client) ListLogEvents(ctx context.Context) ([]models.LogEvent, error) {
	return listOf[models.LogEvent](ctx, c, "events")
}

// CreateLogEvent - POST /events
func (c *Client) CreateLogEvent(ctx context.Context, draft models.LogEventDraft) (*models.LogEvent, error) {
	return record[models.LogEvent](ctx, c, http.MethodPost, draft, "events")
}

// GetSituation - GET /events/situation
func (c *Client) GetSituation(ctx context.Context) (*models.Situation, error) {
	situation := &models.Situation{}
	if err := c.do(ctx, http.MethodGet, situation, nil, "events", "situation"); err != nil {
		return nil, err
	}
	if situation.StatusByLocation == nil {
		situation.StatusByLocation = map[string]string{}
	}
	return situation, nil
}
