// Package health exposes the service liveness endpoint.
package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the health payload. DBConnected reflects only whether a
// database URL is configured; no connection is attempted.
type Response struct {
	Message     string `json:"message"`
	DBConnected bool   `json:"db_connected"`
}

// Handler reports the static healthy message plus the database flag.
func Handler(dbConfigured bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, Response{
			Message:     "Healthy",
			DBConnected: dbConfigured,
		})
	}
}
