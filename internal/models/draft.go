package models

// CrisisDraft - локальный черновик формы создания кризиса
type CrisisDraft struct {
	Type        CrisisType     `json:"type"`
	Priority    CrisisPriority `json:"priority"`
	Title       string         `json:"title" validate:"required,notblank"`
	Location    string         `json:"location" validate:"required,notblank"`
	Description string         `json:"description" validate:"required,notblank"`
}

// DefaultCrisisDraft возвращает черновик со значениями по умолчанию
func DefaultCrisisDraft() CrisisDraft {
	return CrisisDraft{
		Type:     CrisisTypeMedical,
		Priority: CrisisPriorityUrgent,
	}
}

// CrisisDraftPatch - частичное изменение черновика, nil поля не трогаются
type CrisisDraftPatch struct {
	Type        *CrisisType
	Priority    *CrisisPriority
	Title       *string
	Location    *string
	Description *string
}

// Apply применяет изменение к копии черновика
func (p CrisisDraftPatch) Apply(d CrisisDraft) CrisisDraft {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Priority != nil {
		d.Priority = *p.Priority
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	return d
}

// EventDraft - локальный черновик формы добавления события
type EventDraft struct {
	Type        EventType     `json:"type"`
	Severity    EventSeverity `json:"severity"`
	Description string        `json:"description" validate:"required,notblank"`
}

func DefaultEventDraft() EventDraft {
	return EventDraft{
		Type:     EventTypeDispatch,
		Severity: SeverityHigh,
	}
}

type EventDraftPatch struct {
	Type        *EventType
	Severity    *EventSeverity
	Description *string
}

func (p EventDraftPatch) Apply(d EventDraft) EventDraft {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Severity != nil {
		d.Severity = *p.Severity
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	return d
}
