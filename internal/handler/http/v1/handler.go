package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/crisis_dashboard/internal/config"
	"github.com/shenikar/crisis_dashboard/internal/dashboard"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/shenikar/crisis_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	sessions service.SessionService
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(sessions service.SessionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// session извлекает сессию из пути; при ошибке ответ уже отправлен
func (h *Handler) session(c *gin.Context) (*service.Session, bool) {
	id, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session ID"})
		return nil, false
	}
	session, err := h.sessions.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return nil, false
	}
	return session, true
}

// bind разбирает и валидирует тело запроса
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// respond отправляет снимок панели либо ошибку действия вместе со снимком
func (h *Handler) respond(c *gin.Context, log *logrus.Entry, session *service.Session, successCode int, err error) {
	if err == nil {
		c.JSON(successCode, ToSessionResponse(session))
		return
	}

	snapshot := session.Page.Snapshot()
	resp := ErrorResponse{Error: err.Error(), Dashboard: &snapshot}
	switch {
	case isClientError(err):
		log.WithError(err).Warn("Rejected dashboard action")
		if snapshot.Error != nil {
			resp.Error = *snapshot.Error
		}
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, dashboard.ErrNoSelection),
		errors.Is(err, dashboard.ErrFormHidden):
		log.WithError(err).Warn("Dashboard action not allowed in current state")
		c.JSON(http.StatusConflict, resp)
	default:
		log.WithError(err).Error("Crisis API call failed")
		resp.Error = "crisis API request failed"
		if snapshot.Error != nil {
			resp.Error = *snapshot.Error
		}
		c.JSON(http.StatusBadGateway, resp)
	}
}

func isClientError(err error) bool {
	return errors.Is(err, dashboard.ErrInvalidFilter) ||
		errors.Is(err, dashboard.ErrInvalidDraft) ||
		errors.Is(err, dashboard.ErrInvalidValue)
}

// @Summary Open a dashboard session
// @Description Creates a dashboard session and loads the crisis list with the default ONGOING filter.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} SessionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	log := h.logger.WithField("method", "createSession")

	session, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to create session")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ToSessionResponse(session))
}

// @Summary Get dashboard snapshot
// @Description Returns the current state of a dashboard session.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid session ID"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sid} [get]
func (h *Handler) getSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ToSessionResponse(session))
}

// @Summary Close a dashboard session
// @Tags Sessions
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Invalid session ID"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sid} [delete]
func (h *Handler) deleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session ID"})
		return
	}
	if err := h.sessions.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change the crisis list filter
// @Description Sets the status filter (ONGOING, OPEN, RESOLVED, ALL) and reloads the list.
// @Tags Crisis list
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param filter body SetFilterRequest true "Filter"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 502 {object} ErrorResponse "Crisis API failure"
// @Router /sessions/{sid}/filter [put]
func (h *Handler) setFilter(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "setFilter", "session_id": session.ID})

	var input SetFilterRequest
	if !h.bind(c, log, &input) {
		return
	}
	err := session.Page.SetFilter(c.Request.Context(), models.StatusFilter(input.Status))
	h.respond(c, log, session, http.StatusOK, err)
}

// @Summary Refresh the crisis list
// @Description Bumps the refresh signal; every open dashboard reloads its list with its current filter.
// @Tags Crisis list
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 502 {object} ErrorResponse "Crisis API failure"
// @Router /sessions/{sid}/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "refresh", "session_id": session.ID})

	_, err := session.Page.Refresh(c.Request.Context())
	h.respond(c, log, session, http.StatusOK, err)
}

// @Summary Select a crisis
// @Description Loads the crisis and its event timeline into the detail view.
// @Tags Crisis detail
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param selection body SelectCrisisRequest true "Crisis to select"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 502 {object} ErrorResponse "Crisis API failure"
// @Router /sessions/{sid}/selection [put]
func (h *Handler) selectCrisis(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "selectCrisis", "session_id": session.ID})

	var input SelectCrisisRequest
	if !h.bind(c, log, &input) {
		return
	}
	err := session.Page.Select(c.Request.Context(), input.CrisisID)
	h.respond(c, log, session, http.StatusOK, err)
}

// @Summary Clear the crisis selection
// @Tags Crisis detail
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sid}/selection [delete]
func (h *Handler) clearSelection(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.Page.ClearSelection()
	c.JSON(http.StatusOK, ToSessionResponse(session))
}

// @Summary Show or hide the create-crisis form
// @Tags Create crisis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param visibility body CreateFormVisibilityRequest true "Visibility"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sid}/create-form/visibility [put]
func (h *Handler) setCreateFormVisibility(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "setCreateFormVisibility", "session_id": session.ID})

	var input CreateFormVisibilityRequest
	if !h.bind(c, log, &input) {
		return
	}
	if *input.Visible {
		session.Page.ShowCreateForm()
	} else {
		session.Page.HideCreateForm()
	}
	c.JSON(http.StatusOK, ToSessionResponse(session))
}

// @Summary Edit the create-crisis draft
// @Description Applies the provided fields to the draft; omitted fields are left unchanged.
// @Tags Create crisis
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param draft body CrisisDraftPatchRequest true "Draft fields"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid draft"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sid}/create-form [patch]
func (h *Handler) editCrisisDraft(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "editCrisisDraft", "session_id": session.ID})

	var input CrisisDraftPatchRequest
	if !h.bind(c, log, &input) {
		return
	}
	_, err := session.Page.EditCrisisDraft(DTOToCrisisDraftPatch(input))
	h.respond(c, log, session, http.StatusOK, err)
}

// @Summary Submit the create-crisis form
// @Description Posts the draft to the crisis API. On success the draft is reset, the form hidden and the list refreshed; on failure the draft is kept.
// @Tags Create crisis
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Required fields missing"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "Form is hidden"
// @Failure 502 {object} ErrorResponse "Crisis API failure"
// @Router /sessions/{sid}/create-form/submit [post]
func (h *Handler) submitCrisis(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "submitCrisis", "session_id": session.ID})

	_, err := session.Page.SubmitCrisis(c.Request.Context())
	h.respond(c, log, session, http.StatusCreated, err)
}

// @Summary Edit the add-event draft
// @Tags Crisis detail
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param draft body EventDraftPatchRequest true "Draft fields"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid draft"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "No crisis selected"
// @Router /sessions/{sid}/event-form [patch]
func (h *Handler) editEventDraft(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "editEventDraft", "session_id": session.ID})

	var input EventDraftPatchRequest
	if !h.bind(c, log, &input) {
		return
	}
	_, err := session.Page.EditEventDraft(DTOToEventDraftPatch(input))
	h.respond(c, log, session, http.StatusOK, err)
}

// @Summary Submit the add-event form
// @Description Posts the event draft to the selected crisis; on success the draft is reset and the timeline reloaded.
// @Tags Crisis detail
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Required fields missing"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "No crisis selected"
// @Failure 502 {object} ErrorResponse "Crisis API failure"
// @Router /sessions/{sid}/event-form/submit [post]
func (h *Handler) submitEvent(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "submitEvent", "session_id": session.ID})

	_, err := session.Page.SubmitEvent(c.Request.Context())
	h.respond(c, log, session, http.StatusCreated, err)
}

// @Summary Change the selected crisis status
// @Tags Crisis detail
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "No crisis selected"
// @Failure 502 {object} ErrorResponse "Crisis API failure"
// @Router /sessions/{sid}/crisis/status [put]
func (h *Handler) changeStatus(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "changeStatus", "session_id": session.ID})

	var input UpdateStatusRequest
	if !h.bind(c, log, &input) {
		return
	}
	err := session.Page.ChangeStatus(c.Request.Context(), models.CrisisStatus(input.Status))
	h.respond(c, log, session, http.StatusOK, err)
}

// @Summary Change the selected crisis priority
// @Tags Crisis detail
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param priority body UpdatePriorityRequest true "New priority"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid priority"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 409 {object} ErrorResponse "No crisis selected"
// @Failure 502 {object} ErrorResponse "Crisis API failure"
// @Router /sessions/{sid}/crisis/priority [put]
func (h *Handler) changePriority(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "changePriority", "session_id": session.ID})

	var input UpdatePriorityRequest
	if !h.bind(c, log, &input) {
		return
	}
	err := session.Page.ChangePriority(c.Request.Context(), models.CrisisPriority(input.Priority))
	h.respond(c, log, session, http.StatusOK, err)
}

// @Summary Get health status
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Sessions: h.sessions.Count()})
}
