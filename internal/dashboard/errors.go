package dashboard

import "errors"

var (
	ErrInvalidFilter = errors.New("invalid status filter")
	ErrInvalidDraft  = errors.New("invalid draft")
	ErrInvalidValue  = errors.New("invalid value")
	ErrNoSelection   = errors.New("no crisis selected")
	ErrFormHidden    = errors.New("create form is not visible")
)

// Сообщения, которые видит пользователь
const (
	MsgLoadCrises     = "Failed to load crises"
	MsgLoadDetail     = "Failed to load crisis details"
	MsgUpdateCrisis   = "Failed to update crisis"
	MsgCreateCrisis   = "Failed to create crisis"
	MsgAddEvent       = "Failed to add event"
	MsgRequiredFields = "Please fill in all required fields"
	MsgLoadEvents     = "Failed to load events"
	MsgLoadSituation  = "Failed to load situation"
	MsgCreateEvent    = "Failed to create event"
)
