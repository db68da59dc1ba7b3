package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type submitApplicationRequest struct {
	LawyerID string `json:"lawyer_id"`
	Message  string `json:"message"`
}

type applicationResponseRequest struct {
	ClientID string `json:"client_id"`
	Decision string `json:"decision"`
}

// SubmitApplicationHandler files a lawyer's application against an open case
func SubmitApplicationHandler(c echo.Context) error {
	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	application, err := applicationService.Submit(c.Param("id"), req.LawyerID, req.Message)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, application)
}

// RespondToApplicationHandler records the client's decision on an application
func RespondToApplicationHandler(c echo.Context) error {
	var req applicationResponseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := applicationService.Respond(c.Param("id"), req.ClientID, req.Decision); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCaseApplicationsHandler lists a case's applications
func GetCaseApplicationsHandler(c echo.Context) error {
	applications, err := applicationService.GetApplicationsByCase(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, applications)
}

// GetLawyerApplicationsHandler lists the applications a lawyer has filed
func GetLawyerApplicationsHandler(c echo.Context) error {
	applications, err := applicationService.GetApplicationsByLawyer(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, applications)
}
