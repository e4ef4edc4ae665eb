package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// successResponse is the envelope for single-item and message responses.
type successResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// listResponse is the envelope for collection responses; Unread is only
// populated by the contact inbox listing.
type listResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Unread *int   `json:"unread,omitempty"`
	Data   any    `json:"data"`
}

func respond(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, successResponse{Status: "success", Message: message, Data: data})
}

func respondList(c echo.Context, count int, data any) error {
	return c.JSON(http.StatusOK, listResponse{Status: "success", Count: count, Data: data})
}
