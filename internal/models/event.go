package models

// EventType - тип записи в хронологии кризиса
type EventType string

const (
	EventTypeDispatch           EventType = "DISPATCH"
	EventTypeArrived            EventType = "ARRIVED"
	EventTypeTreating           EventType = "TREATING"
	EventTypePatientTransported EventType = "PATIENT_TRANSPORTED"
	EventTypeDelivered          EventType = "DELIVERED"
	EventTypeIncidentClosed     EventType = "INCIDENT_CLOSED"
	EventTypeResourceRequest    EventType = "RESOURCE_REQUEST"
	EventTypeStatusUpdate       EventType = "STATUS_UPDATE"
	EventTypeEscalation         EventType = "ESCALATION"
	EventTypeDeescalation       EventType = "DEESCALATION"
)

var EventTypes = []EventType{
	EventTypeDispatch,
	EventTypeArrived,
	EventTypeTreating,
	EventTypePatientTransported,
	EventTypeDelivered,
	EventTypeIncidentClosed,
	EventTypeResourceRequest,
	EventTypeStatusUpdate,
	EventTypeEscalation,
	EventTypeDeescalation,
}

func (t EventType) Valid() bool {
	for _, v := range EventTypes {
		if v == t {
			return true
		}
	}
	return false
}

// EventSeverity - серьёзность события
type EventSeverity string

const (
	SeverityLow      EventSeverity = "LOW"
	SeverityMedium   EventSeverity = "MEDIUM"
	SeverityHigh     EventSeverity = "HIGH"
	SeverityCritical EventSeverity = "CRITICAL"
)

var EventSeverities = []EventSeverity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

func (s EventSeverity) Valid() bool {
	for _, v := range EventSeverities {
		if v == s {
			return true
		}
	}
	return false
}

// CrisisEvent - неизменяемая запись хронологии, принадлежащая ровно одному кризису
type CrisisEvent struct {
	ID          string         `json:"id"`
	Type        EventType      `json:"type"`
	Severity    *EventSeverity `json:"severity"`
	Timestamp   Timestamp      `json:"timestamp"`
	Description string         `json:"description"`
}
