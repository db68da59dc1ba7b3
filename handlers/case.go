package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type createCaseRequest struct {
	ClientID    string  `json:"client_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	SpecialtyID *string `json:"specialty_id,omitempty"`
}

type caseActionRequest struct {
	ClientID string `json:"client_id"`
}

// CreateCaseHandler opens a new case for a client
func CreateCaseHandler(c echo.Context) error {
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	kase, err := caseService.CreateCase(req.ClientID, req.Title, req.Description, req.SpecialtyID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, kase)
}

// CloseCaseHandler closes an accepted case on behalf of its client
func CloseCaseHandler(c echo.Context) error {
	var req caseActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := caseService.CloseCase(c.Param("id"), req.ClientID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CancelCaseHandler cancels a not-yet-accepted case
func CancelCaseHandler(c echo.Context) error {
	var req caseActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := caseService.CancelCase(c.Param("id"), req.ClientID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCaseHandler returns one case with its history and collections
func GetCaseHandler(c echo.Context) error {
	kase, err := caseService.GetCaseByID(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, kase)
}

// GetCasesHandler lists cases filtered by client or status
func GetCasesHandler(c echo.Context) error {
	if clientID := c.QueryParam("client_id"); clientID != "" {
		cases, err := caseService.GetCasesByClient(clientID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, cases)
	}

	if status := c.QueryParam("status"); status != "" {
		cases, err := caseService.GetCasesByStatus(status)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, cases)
	}

	return echo.NewHTTPError(http.StatusBadRequest, "client_id or status query parameter is required")
}

// GetLawyerCasesHandler lists the cases currently accepted by a lawyer
func GetLawyerCasesHandler(c echo.Context) error {
	cases, err := caseService.GetCasesByLawyer(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cases)
}

// GetSuggestedCasesHandler lists open cases a lawyer has no recruitment
// history with
func GetSuggestedCasesHandler(c echo.Context) error {
	cases, err := caseService.GetSuggestedCasesForLawyer(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, cases)
}
