package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/crisis_dashboard/internal/config"
	"github.com/shenikar/crisis_dashboard/internal/dashboard"
	"github.com/shenikar/crisis_dashboard/internal/dashboard/mocks"
	"github.com/shenikar/crisis_dashboard/internal/models"
	"github.com/shenikar/crisis_dashboard/internal/refresh"
	"github.com/shenikar/crisis_dashboard/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

type backendMock struct {
	*mocks.MockCrisisAPI
	*mocks.MockEventLogAPI
}

// newTestHandler создает Handler поверх настоящего реестра сессий и мокированного API
func newTestHandler(t *testing.T) (*mocks.MockCrisisAPI, *mocks.MockEventLogAPI, *gin.Engine) {
	ctrl := gomock.NewController(t)
	crisisMock := mocks.NewMockCrisisAPI(ctrl)
	eventLogMock := mocks.NewMockEventLogAPI(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:            []string{testAPIKey},
		SessionIdleTimeout: time.Minute,
	}

	sessions := service.NewSessionService(backendMock{crisisMock, eventLogMock}, refresh.NewMemorySignal(), nil, logger, cfg.SessionIdleTimeout)
	handler := NewHandler(sessions, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return crisisMock, eventLogMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

// openSession создает сессию с пустым списком ONGOING
func openSession(t *testing.T, crisisMock *mocks.MockCrisisAPI, router *gin.Engine) string {
	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), models.CrisisStatusOngoing).Return([]models.Crisis{}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", nil, authHeader)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.SessionID
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) SessionResponse {
	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateSession_Success(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	crisisMock.EXPECT().
		ListCrisesByStatus(gomock.Any(), models.CrisisStatusOngoing).
		Return([]models.Crisis{{ID: "1", Title: "Fire", Status: models.CrisisStatusOngoing}}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", nil, authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeSession(t, w)
	_, err := uuid.Parse(resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.FilterOngoing, resp.Dashboard.List.Filter)
	require.Len(t, resp.Dashboard.List.Items, 1)
	assert.Equal(t, "Fire", resp.Dashboard.List.Items[0].Title)
	assert.Nil(t, resp.Dashboard.SelectedCrisisID)
}

func TestCreateSession_Unauthorized(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/sessions", nil, map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSession_BearerToken(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions", nil, map[string]string{"Authorization": "Bearer " + testAPIKey})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestGetSession_InvalidID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/not-a-uuid", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSession_NotFound(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+uuid.NewString(), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session not found", decodeError(t, w).Error)
}

func TestDeleteSession(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	w := makeRequest(router, http.MethodDelete, "/api/v1/sessions/"+sid, nil, authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/sessions/"+sid, nil, authHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetFilter(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	crisisMock.EXPECT().ListCrises(gomock.Any()).Return([]models.Crisis{{ID: "1"}, {ID: "2"}}, nil)

	w := makeRequest(router, http.MethodPut, "/api/v1/sessions/"+sid+"/filter", jsonBody(t, SetFilterRequest{Status: "ALL"}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Equal(t, models.FilterAll, resp.Dashboard.List.Filter)
	assert.Len(t, resp.Dashboard.List.Items, 2)
}

func TestSetFilter_InvalidValue(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	crisisMock.EXPECT().ListCrises(gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPut, "/api/v1/sessions/"+sid+"/filter", jsonBody(t, SetFilterRequest{Status: "CLOSED"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetFilter_UpstreamFailure(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), models.CrisisStatusOpen).Return(nil, errors.New("down"))

	w := makeRequest(router, http.MethodPut, "/api/v1/sessions/"+sid+"/filter", jsonBody(t, SetFilterRequest{Status: "OPEN"}), authHeader)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dashboard.MsgLoadCrises, resp.Error)
	require.NotNil(t, resp.Dashboard)
	assert.Equal(t, models.FilterOpen, resp.Dashboard.List.Filter)
}

func TestRefresh(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), models.CrisisStatusOngoing).Return([]models.Crisis{{ID: "9"}}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sid+"/refresh", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Equal(t, uint64(1), resp.Dashboard.Refresh)
	assert.Len(t, resp.Dashboard.List.Items, 1)
}

func TestSelectAndClearCrisis(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	crisisMock.EXPECT().GetCrisis(gomock.Any(), "7").Return(&models.Crisis{ID: "7", Title: "Flood"}, nil)
	crisisMock.EXPECT().ListCrisisEvents(gomock.Any(), "7").Return([]models.CrisisEvent{{ID: "e1"}}, nil)

	w := makeRequest(router, http.MethodPut, "/api/v1/sessions/"+sid+"/selection", jsonBody(t, SelectCrisisRequest{CrisisID: "7"}), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	require.NotNil(t, resp.Dashboard.SelectedCrisisID)
	assert.Equal(t, "7", *resp.Dashboard.SelectedCrisisID)
	assert.Equal(t, dashboard.DetailLoaded, resp.Dashboard.Detail.State)
	assert.Len(t, resp.Dashboard.Detail.Events, 1)
	require.NotNil(t, resp.Dashboard.Detail.EventForm)

	w = makeRequest(router, http.MethodDelete, "/api/v1/sessions/"+sid+"/selection", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeSession(t, w)
	assert.Nil(t, resp.Dashboard.SelectedCrisisID)
	assert.Equal(t, dashboard.DetailAbsent, resp.Dashboard.Detail.State)
}

func TestSelectCrisis_MissingID(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	w := makeRequest(router, http.MethodPut, "/api/v1/sessions/"+sid+"/selection", bytes.NewBufferString(`{}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCrisisFlow(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)
	base := "/api/v1/sessions/" + sid

	// Скрытую форму отправить нельзя
	w := makeRequest(router, http.MethodPost, base+"/create-form/submit", nil, authHeader)
	assert.Equal(t, http.StatusConflict, w.Code)

	visible := true
	w = makeRequest(router, http.MethodPut, base+"/create-form/visibility", jsonBody(t, CreateFormVisibilityRequest{Visible: &visible}), authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeSession(t, w).Dashboard.CreateForm.Visible)

	// Незаполненные поля
	w = makeRequest(router, http.MethodPost, base+"/create-form/submit", nil, authHeader)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dashboard.MsgRequiredFields, decodeError(t, w).Error)

	title, location, description, priority := "Gas leak", "Main St", "Strong smell", "EMERGENCY"
	w = makeRequest(router, http.MethodPatch, base+"/create-form", jsonBody(t, CrisisDraftPatchRequest{
		Title:       &title,
		Location:    &location,
		Description: &description,
		Priority:    &priority,
	}), authHeader)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Gas leak", decodeSession(t, w).Dashboard.CreateForm.Draft.Title)

	created := &models.Crisis{ID: "42", Title: title, Status: models.CrisisStatusOngoing}
	crisisMock.EXPECT().CreateCrisis(gomock.Any(), models.CrisisDraft{
		Type:        models.CrisisTypeMedical,
		Priority:    models.CrisisPriorityEmergency,
		Title:       title,
		Location:    location,
		Description: description,
	}).Return(created, nil)
	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), models.CrisisStatusOngoing).Return([]models.Crisis{*created}, nil)

	w = makeRequest(router, http.MethodPost, base+"/create-form/submit", nil, authHeader)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeSession(t, w)
	assert.False(t, resp.Dashboard.CreateForm.Visible)
	assert.Equal(t, models.DefaultCrisisDraft(), resp.Dashboard.CreateForm.Draft)
	assert.Len(t, resp.Dashboard.List.Items, 1)
	assert.Nil(t, resp.Dashboard.Error)
}

func TestEditCrisisDraft_InvalidEnum(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	w := makeRequest(router, http.MethodPatch, "/api/v1/sessions/"+sid+"/create-form", bytes.NewBufferString(`{"type":"FLOOD"}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventForm_RequiresSelection(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sid+"/event-form/submit", nil, authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChangeStatus(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)
	base := "/api/v1/sessions/" + sid

	crisisMock.EXPECT().GetCrisis(gomock.Any(), "7").Return(&models.Crisis{ID: "7", Status: models.CrisisStatusOngoing}, nil)
	crisisMock.EXPECT().ListCrisisEvents(gomock.Any(), "7").Return(nil, nil)
	w := makeRequest(router, http.MethodPut, base+"/selection", jsonBody(t, SelectCrisisRequest{CrisisID: "7"}), authHeader)
	require.Equal(t, http.StatusOK, w.Code)

	crisisMock.EXPECT().UpdateCrisisStatus(gomock.Any(), "7", models.CrisisStatusResolved).
		Return(&models.Crisis{ID: "7", Status: models.CrisisStatusResolved}, nil)
	crisisMock.EXPECT().ListCrisesByStatus(gomock.Any(), models.CrisisStatusOngoing).Return([]models.Crisis{}, nil)

	w = makeRequest(router, http.MethodPut, base+"/crisis/status", jsonBody(t, UpdateStatusRequest{Status: "RESOLVED"}), authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSession(t, w)
	assert.Equal(t, models.CrisisStatusResolved, resp.Dashboard.Detail.Crisis.Status)
	assert.Equal(t, uint64(1), resp.Dashboard.Refresh)
}

func TestChangePriority_NoSelection(t *testing.T) {
	crisisMock, _, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)

	w := makeRequest(router, http.MethodPut, "/api/v1/sessions/"+sid+"/crisis/priority", jsonBody(t, UpdatePriorityRequest{Priority: "CRITICAL"}), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSituationBoard(t *testing.T) {
	crisisMock, eventLogMock, router := newTestHandler(t)
	sid := openSession(t, crisisMock, router)
	base := "/api/v1/sessions/" + sid + "/situation"

	eventLogMock.EXPECT().ListLogEvents(gomock.Any()).Return([]models.LogEvent{{ID: "l1", Location: "Gate"}}, nil)
	eventLogMock.EXPECT().GetSituation(gomock.Any()).Return(&models.Situation{StatusByLocation: map[string]string{"Gate": "ALERT"}}, nil)

	w := makeRequest(router, http.MethodGet, base, nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp SituationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dashboard.SituationLoaded, resp.Situation.State)
	assert.Equal(t, "ALERT", resp.Situation.Situation.StatusByLocation["Gate"])

	// Без локации и описания запись не отправляется
	w = makeRequest(router, http.MethodPost, base+"/submit", nil, authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPatch, base+"/draft", bytes.NewBufferString(`{"severity":"CRITICAL"}`), authHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 0, resp.Sessions)
}
