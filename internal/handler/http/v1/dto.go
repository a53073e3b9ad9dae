package v1

import (
	"github.com/shenikar/crisis_dashboard/internal/dashboard"
)

// SessionResponse DTO со снимком панели
// @Description Снимок состояния панели для одной сессии
type SessionResponse struct {
	SessionID string                 `json:"sessionId"`
	Dashboard dashboard.PageSnapshot `json:"dashboard"`
}

// SituationResponse DTO со снимком плоского журнала
// @Description Снимок журнала событий и карты ситуации
type SituationResponse struct {
	SessionID string                      `json:"sessionId"`
	Situation dashboard.SituationSnapshot `json:"situation"`
}

// ErrorResponse DTO ошибки; снимок присутствует, если сессия найдена
// @Description Ошибка с текущим состоянием панели
type ErrorResponse struct {
	Error     string                       `json:"error"`
	Dashboard *dashboard.PageSnapshot      `json:"dashboard,omitempty"`
	Situation *dashboard.SituationSnapshot `json:"situation,omitempty"`
}

// SetFilterRequest DTO для смены фильтра списка
// @Description Фильтр списка кризисов
type SetFilterRequest struct {
	Status string `json:"status" validate:"required,oneof=ONGOING OPEN RESOLVED ALL"`
}

// SelectCrisisRequest DTO для выбора кризиса
// @Description Выбор кризиса
type SelectCrisisRequest struct {
	CrisisID string `json:"crisisId" validate:"required"`
}

// CreateFormVisibilityRequest DTO для показа/скрытия формы создания
// @Description Видимость формы создания кризиса
type CreateFormVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// CrisisDraftPatchRequest DTO для изменения черновика кризиса
// @Description Частичное изменение черновика кризиса
type CrisisDraftPatchRequest struct {
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=FIRE MEDICAL TRAFFIC HAZMAT NATURAL_DISASTER SECURITY OTHER"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=ROUTINE URGENT EMERGENCY CRITICAL"`
	Title       *string `json:"title,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// EventDraftPatchRequest DTO для изменения черновика события
// @Description Частичное изменение черновика события
type EventDraftPatchRequest struct {
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=DISPATCH ARRIVED TREATING PATIENT_TRANSPORTED DELIVERED INCIDENT_CLOSED RESOURCE_REQUEST STATUS_UPDATE ESCALATION DEESCALATION"`
	Severity    *string `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Description *string `json:"description,omitempty"`
}

// LogEventDraftPatchRequest DTO для изменения черновика записи журнала
// @Description Частичное изменение черновика записи журнала
type LogEventDraftPatchRequest struct {
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=ALERT UPDATE RESOLVE"`
	Severity    *string `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateStatusRequest DTO для смены статуса кризиса
// @Description Новый статус кризиса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN ONGOING RESOLVED CLOSED ARCHIVED"`
}

// UpdatePriorityRequest DTO для смены приоритета кризиса
// @Description Новый приоритет кризиса
type UpdatePriorityRequest struct {
	Priority string `json:"priority" validate:"required,oneof=ROUTINE URGENT EMERGENCY CRITICAL"`
}

// HealthResponse DTO для health-check
// @Description Состояние сервиса
type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
