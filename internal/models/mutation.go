package models

import "time"

// MutationKind - вид успешного изменения, выполненного через внешний API
type MutationKind string

const (
	MutationCrisisCreated   MutationKind = "crisis_created"
	MutationStatusChanged   MutationKind = "status_changed"
	MutationPriorityChanged MutationKind = "priority_changed"
	MutationEventAdded      MutationKind = "event_added"
)

// Mutation описывает изменение для подписчиков вебхука
type Mutation struct {
	Kind     MutationKind `json:"kind"`
	CrisisID string       `json:"crisis_id"`
	Value    string       `json:"value,omitempty"`
	Refresh  uint64       `json:"refresh"`
	At       time.Time    `json:"at"`
}
