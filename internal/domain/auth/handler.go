package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
	g.GET("/status", h.AuthStatus)
}

// Login issues a bearer token for a username/password form pair. Both fields
// must be non-empty; nothing else is checked.
func (h *Handler) Login(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	result, err := h.svc.Login(username, password)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

// AuthStatus reports token validity. It never fails the request; a missing
// or malformed header simply reports authenticated=false.
func (h *Handler) AuthStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Status(c.Request().Header.Get("Authorization")))
}
