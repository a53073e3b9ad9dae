package v1

import (
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/shenikar/crisis_dashboard/internal/service"
)

// ToSessionResponse собирает ответ со снимком панели
func ToSessionResponse(session *service.Session) *SessionResponse {
	return &SessionResponse{
		SessionID: session.ID.String(),
		Dashboard: session.Page.Snapshot(),
	}
}

// DTOToCrisisDraftPatch преобразует DTO в доменное изменение черновика
func DTOToCrisisDraftPatch(dto CrisisDraftPatchRequest) models.CrisisDraftPatch {
	patch := models.CrisisDraftPatch{
		Title:       dto.Title,
		Location:    dto.Location,
		Description: dto.Description,
	}
	if dto.Type != nil {
		t := models.CrisisType(*dto.Type)
		patch.Type = &t
	}
	if dto.Priority != nil {
		p := models.CrisisPriority(*dto.Priority)
		patch.Priority = &p
	}
	return patch
}

func DTOToEventDraftPatch(dto EventDraftPatchRequest) models.EventDraftPatch {
	patch := models.EventDraftPatch{Description: dto.Description}
	if dto.Type != nil {
		t := models.EventType(*dto.Type)
		patch.Type = &t
	}
	if dto.Severity != nil {
		s := models.EventSeverity(*dto.Severity)
		patch.Severity = &s
	}
	return patch
}

func DTOToLogEventDraftPatch(dto LogEventDraftPatchRequest) models.LogEventDraftPatch {
	patch := models.LogEventDraftPatch{
		Location:    dto.Location,
		Description: dto.Description,
	}
	if dto.Type != nil {
		t := models.LogEventType(*dto.Type)
		patch.Type = &t
	}
	if dto.Severity != nil {
		s := models.LogSeverity(*dto.Severity)
		patch.Severity = &s
	}
	return patch
}
