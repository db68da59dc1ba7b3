package handlers

import (
	"fmt"
	"law_link_app_go/db"
	"law_link_app_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ExportClientCasesHandler streams an Excel workbook of the client's cases
func ExportClientCasesHandler(c echo.Context) error {
	clientID := c.Param("id")

	buf, err := services.ExportClientCases(db.DB, clientID)
	if err != nil {
		return httpError(err)
	}

	filename := fmt.Sprintf("cases-%s.xlsx", clientID)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
