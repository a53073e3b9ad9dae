package models

// Плоский журнал событий из первой версии панели. API оставлен для
// обратной совместимости и обслуживает только SituationBoard.

type LogEventType string

const (
	LogEventAlert   LogEventType = "ALERT"
	LogEventUpdate  LogEventType = "UPDATE"
	LogEventResolve LogEventType = "RESOLVE"
)

var LogEventTypes = []LogEventType{LogEventAlert, LogEventUpdate, LogEventResolve}

func (t LogEventType) Valid() bool {
	for _, v := range LogEventTypes {
		if v == t {
			return true
		}
	}
	return false
}

type LogSeverity string

const (
	LogSeverityLow    LogSeverity = "LOW"
	LogSeverityMedium LogSeverity = "MEDIUM"
	LogSeverityHigh   LogSeverity = "HIGH"
)

var LogSeverities = []LogSeverity{LogSeverityLow, LogSeverityMedium, LogSeverityHigh}

func (s LogSeverity) Valid() bool {
	for _, v := range LogSeverities {
		if v == s {
			return true
		}
	}
	return false
}

// LogEvent - запись плоского журнала
type LogEvent struct {
	ID          string       `json:"id"`
	Type        LogEventType `json:"type"`
	Severity    LogSeverity  `json:"severity"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Timestamp   Timestamp    `json:"timestamp"`
}

type LogEventDraft struct {
	Type        LogEventType `json:"type"`
	Severity    LogSeverity  `json:"severity"`
	Location    string       `json:"location" validate:"required,notblank"`
	Description string       `json:"description" validate:"required,notblank"`
}

func DefaultLogEventDraft() LogEventDraft {
	return LogEventDraft{
		Type:     LogEventAlert,
		Severity: LogSeverityLow,
	}
}

type LogEventDraftPatch struct {
	Type        *LogEventType
	Severity    *LogSeverity
	Location    *string
	Description *string
}

func (p LogEventDraftPatch) Apply(d LogEventDraft) LogEventDraft {
	if p.Type != nil {
		d.Type = *p.Type
	}
	if p.Severity != nil {
		d.Severity = *p.Severity
	}
	if p.Location != nil {
		d.Location = *p.Location
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	return d
}

// Situation - производная карта статусов по локациям
type Situation struct {
	StatusByLocation map[string]string `json:"statusByLocation"`
}
