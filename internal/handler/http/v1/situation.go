package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crisis_dashboard/internal/dashboard"
	"github.com/shenikar/crisis_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

// Обработчики плоского журнала событий (первая версия панели)

func (h *Handler) situationResponse(c *gin.Context, log *logrus.Entry, session *service.Session, board *dashboard.SituationBoard, successCode int, err error) {
	snapshot := board.Snapshot()
	if err == nil {
		c.JSON(successCode, SituationResponse{SessionID: session.ID.String(), Situation: snapshot})
		return
	}
	resp := ErrorResponse{Error: err.Error(), Situation: &snapshot}
	if snapshot.Error != nil {
		resp.Error = *snapshot.Error
	}
	if isClientError(err) {
		log.WithError(err).Warn("Rejected situation board action")
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	log.WithError(err).Error("Event log API call failed")
	c.JSON(http.StatusBadGateway, resp)
}

// @Summary Get the situation board
// @Description Returns the flat event log and the per-location status map; loads them on first access.
// @Tags Situation
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 200 {object} SituationResponse
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 502 {object} ErrorResponse "Event log API failure"
// @Router /sessions/{sid}/situation [get]
func (h *Handler) getSituation(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "getSituation", "session_id": session.ID})

	board, err := session.Board(c.Request.Context())
	h.situationResponse(c, log, session, board, http.StatusOK, err)
}

// @Summary Edit the situation board draft
// @Tags Situation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Param draft body LogEventDraftPatchRequest true "Draft fields"
// @Success 200 {object} SituationResponse
// @Failure 400 {object} ErrorResponse "Invalid draft"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Router /sessions/{sid}/situation/draft [patch]
func (h *Handler) editLogEventDraft(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "editLogEventDraft", "session_id": session.ID})

	var input LogEventDraftPatchRequest
	if !h.bind(c, log, &input) {
		return
	}
	board, err := session.Board(c.Request.Context())
	if err != nil {
		log.WithError(err).Debug("Situation board load failed, draft still editable")
	}
	_, err = board.Edit(DTOToLogEventDraftPatch(input))
	h.situationResponse(c, log, session, board, http.StatusOK, err)
}

// @Summary Submit a situation board event
// @Tags Situation
// @Produce json
// @Security ApiKeyAuth
// @Param sid path string true "Session ID"
// @Success 201 {object} SituationResponse
// @Failure 400 {object} ErrorResponse "Required fields missing"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Failure 502 {object} ErrorResponse "Event log API failure"
// @Router /sessions/{sid}/situation/submit [post]
func (h *Handler) submitLogEvent(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "submitLogEvent", "session_id": session.ID})

	board, err := session.Board(c.Request.Context())
	if err != nil {
		log.WithError(err).Debug("Situation board load failed before submit")
	}
	_, err = board.Submit(c.Request.Context())
	h.situationResponse(c, log, session, board, http.StatusCreated, err)
}
