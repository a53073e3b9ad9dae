package models

// CrisisType - категория кризиса
type CrisisType string

const (
	CrisisTypeFire            CrisisType = "FIRE"
	CrisisTypeMedical         CrisisType = "MEDICAL"
	CrisisTypeTraffic         CrisisType = "TRAFFIC"
	CrisisTypeHazmat          CrisisType = "HAZMAT"
	CrisisTypeNaturalDisaster CrisisType = "NATURAL_DISASTER"
	CrisisTypeSecurity        CrisisType = "SECURITY"
	CrisisTypeOther           CrisisType = "OTHER"
)

// CrisisTypes перечисляет типы в порядке отображения
var CrisisTypes = []CrisisType{
	CrisisTypeFire,
	CrisisTypeMedical,
	CrisisTypeTraffic,
	CrisisTypeHazmat,
	CrisisTypeNaturalDisaster,
	CrisisTypeSecurity,
	CrisisTypeOther,
}

func (t CrisisType) Valid() bool {
	for _, v := range CrisisTypes {
		if v == t {
			return true
		}
	}
	return false
}

// CrisisStatus - стадия жизненного цикла кризиса
type CrisisStatus string

const (
	CrisisStatusOpen     CrisisStatus = "OPEN"
	CrisisStatusOngoing  CrisisStatus = "ONGOING"
	CrisisStatusResolved CrisisStatus = "RESOLVED"
	CrisisStatusClosed   CrisisStatus = "CLOSED"
	CrisisStatusArchived CrisisStatus = "ARCHIVED"
)

var CrisisStatuses = []CrisisStatus{
	CrisisStatusOpen,
	CrisisStatusOngoing,
	CrisisStatusResolved,
	CrisisStatusClosed,
	CrisisStatusArchived,
}

func (s CrisisStatus) Valid() bool {
	for _, v := range CrisisStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CrisisPriority - приоритет реагирования
type CrisisPriority string

const (
	CrisisPriorityRoutine   CrisisPriority = "ROUTINE"
	CrisisPriorityUrgent    CrisisPriority = "URGENT"
	CrisisPriorityEmergency CrisisPriority = "EMERGENCY"
	CrisisPriorityCritical  CrisisPriority = "CRITICAL"
)

var CrisisPriorities = []CrisisPriority{
	CrisisPriorityRoutine,
	CrisisPriorityUrgent,
	CrisisPriorityEmergency,
	CrisisPriorityCritical,
}

func (p CrisisPriority) Valid() bool {
	for _, v := range CrisisPriorities {
		if v == p {
			return true
		}
	}
	return false
}

// Crisis - запись о кризисе в том виде, в каком её отдаёт внешний API.
// Идентификаторы и временные метки назначает только сервер.
type Crisis struct {
	ID          string         `json:"id"`
	Type        CrisisType     `json:"type"`
	Status      CrisisStatus   `json:"status"`
	Priority    CrisisPriority `json:"priority"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    string         `json:"location"`
	CreatedAt   Timestamp      `json:"createdAt"`
	UpdatedAt   Timestamp      `json:"updatedAt"`
	ResolvedAt  *Timestamp     `json:"resolvedAt"`
	ClosedAt    *Timestamp     `json:"closedAt"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`
	EventCount  int            `json:"eventCount"`
}

// StatusFilter - фильтр списка кризисов
type StatusFilter string

const (
	FilterOngoing  StatusFilter = "ONGOING"
	FilterOpen     StatusFilter = "OPEN"
	FilterResolved StatusFilter = "RESOLVED"
	FilterAll      StatusFilter = "ALL"
)

// DefaultStatusFilter - фильтр, с которым открывается список
const DefaultStatusFilter = FilterOngoing

var StatusFilters = []StatusFilter{FilterOngoing, FilterOpen, FilterResolved, FilterAll}

func (f StatusFilter) Valid() bool {
	for _, v := range StatusFilters {
		if v == f {
			return true
		}
	}
	return false
}

// Scoped сообщает, ограничен ли запрос конкретным статусом
func (f StatusFilter) Scoped() bool {
	return f != FilterAll
}
