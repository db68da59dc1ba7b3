package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type createCommentRequest struct {
	AuthorID string `json:"author_id"`
	Body     string `json:"body"`
	Type     string `json:"type"`
}

type deleteCommentRequest struct {
	AuthorID string `json:"author_id"`
}

// CreateCommentHandler appends a comment to a case
func CreateCommentHandler(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	comment, err := commentService.Create(c.Param("id"), req.AuthorID, req.Body, req.Type)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// DeleteCommentHandler removes a comment
func DeleteCommentHandler(c echo.Context) error {
	var req deleteCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := commentService.Delete(c.Param("id"), req.AuthorID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCaseCommentsHandler lists a case's comments
func GetCaseCommentsHandler(c echo.Context) error {
	comments, err := commentService.GetCommentsByCase(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// GetLawyerFinalReviewsHandler lists final-review comments on the lawyer's
// accepted cases
func GetLawyerFinalReviewsHandler(c echo.Context) error {
	comments, err := commentService.GetFinalReviewsByLawyer(c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comments)
}
