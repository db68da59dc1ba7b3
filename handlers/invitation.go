package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type inviteLawyerRequest struct {
	LawyerID string `json:"lawyer_id"`
	ClientID string `json:"client_id"`
}

type invitationResponseRequest struct {
	LawyerID string `json:"lawyer_id"`
	Decision string `json:"decision"`
}

// InviteLawyerHandler invites a lawyer to a case
func InviteLawyerHandler(c echo.Context) error {
	var req inviteLawyerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	invitation, err := invitationService.Invite(c.Param("id"), req.LawyerID, req.ClientID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, invitation)
}

// RespondToInvitationHandler records the invited lawyer's decision
func RespondToInvitationHandler(c echo.Context) error {
	var req invitationResponseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := invitationService.Respond(c.Param("id"), req.LawyerID, req.Decision); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCaseInvitationsHandler lists a case's invitations
func GetCaseInvitationsHandler(c echo.Context) error {
	invitations, err := invitationService.GetInvitationsByCase(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, invitations)
}

// GetLawyerInvitationsHandler lists the invitations sent to a lawyer
func GetLawyerInvitationsHandler(c echo.Context) error {
	invitations, err := invitationService.GetInvitationsByLawyer(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, invitations)
}
