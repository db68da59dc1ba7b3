package handlers

import (
	"encoding/json"
	"fmt"
	"law_link_app_go/config"
	"law_link_app_go/db"
	"law_link_app_go/models"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTest() {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	conn.AutoMigrate(
		&models.Case{},
		&models.CaseState{},
		&models.Invitation{},
		&models.Application{},
		&models.Comment{},
		&models.LegalSpecialty{},
		&models.EventLog{},
	)

	db.DB = conn
	Setup(conn, &config.Config{EmailTestMode: true})
}

func doJSON(handler echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for key, value := range params {
		c.SetParamNames(key)
		c.SetParamValues(value)
	}

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestCreateCaseHandler(t *testing.T) {
	setupHandlerTest()

	body := `{"client_id":"client-a","title":"Divorce","description":"desc"}`
	rec := doJSON(CreateCaseHandler, http.MethodPost, "/api/cases", body, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var kase models.Case
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kase))
	assert.Equal(t, models.CaseStatusOpen, kase.Status)
	assert.NotEmpty(t, kase.ID)
}

func TestCreateCaseHandler_Validation(t *testing.T) {
	setupHandlerTest()

	body := `{"client_id":"client-a","title":"","description":"desc"}`
	rec := doJSON(CreateCaseHandler, http.MethodPost, "/api/cases", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCloseCaseHandler_OwnershipMismatch(t *testing.T) {
	setupHandlerTest()

	kase, err := caseService.CreateCase("client-a", "Title", "desc", nil)
	assert.NoError(t, err)
	application, err := applicationService.Submit(kase.ID, "lawyer-b", "msg")
	assert.NoError(t, err)
	assert.NoError(t, applicationService.Respond(application.ID, "client-a", models.DecisionAccept))

	rec := doJSON(CloseCaseHandler, http.MethodPost,
		fmt.Sprintf("/api/cases/%s/close", kase.ID),
		`{"client_id":"client-z"}`,
		map[string]string{"id": kase.ID})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestInviteLawyerHandler_Duplicate(t *testing.T) {
	setupHandlerTest()

	kase, err := caseService.CreateCase("client-a", "Title", "desc", nil)
	assert.NoError(t, err)

	body := `{"lawyer_id":"lawyer-b","client_id":"client-a"}`
	params := map[string]string{"id": kase.ID}

	rec := doJSON(InviteLawyerHandler, http.MethodPost, "/api/cases/x/invitations", body, params)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(InviteLawyerHandler, http.MethodPost, "/api/cases/x/invitations", body, params)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetCaseHandler_NotFound(t *testing.T) {
	setupHandlerTest()

	rec := doJSON(GetCaseHandler, http.MethodGet, "/api/cases/missing", "", map[string]string{"id": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportClientCasesHandler(t *testing.T) {
	setupHandlerTest()

	_, err := caseService.CreateCase("client-a", "Title", "desc", nil)
	assert.NoError(t, err)

	rec := doJSON(ExportClientCasesHandler, http.MethodGet, "/api/clients/client-a/cases/export", "", map[string]string{"id": "client-a"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	assert.NotZero(t, rec.Body.Len())
}
