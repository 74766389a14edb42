package chatbot

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DefaultModel is reported when no model name is configured.
const DefaultModel = "gemini-1.5-flash"

type Handler struct {
	responder Responder
	model     string
}

func NewHandler(responder Responder, model string) *Handler {
	if model == "" {
		model = DefaultModel
	}
	return &Handler{responder: responder, model: model}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/chatbot/send", h.Send)
}

// Send forwards a message to the configured responder and returns the reply
// alongside the model name.
func (h *Handler) Send(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.responder.GenerateReply(c.Request().Context(), req.Message, req.Context)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, ChatResponse{Reply: reply, Model: h.model})
}
