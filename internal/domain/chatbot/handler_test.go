package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_Send(t *testing.T) {
	h := NewHandler(DemoResponder{}, "gemini-1.5-flash")
	e := echo.New()

	body := `{"message":"What are flu symptoms?"}`
	req := httptest.NewRequest(http.MethodPost, "/chatbot/send", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Send(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp ChatResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !strings.Contains(resp.Reply, "What are flu symptoms?") {
		t.Errorf("expected reply to echo the message, got %q", resp.Reply)
	}
	if resp.Model != "gemini-1.5-flash" {
		t.Errorf("expected configured model name, got %s", resp.Model)
	}
}

func TestHandler_Send_EmptyMessage(t *testing.T) {
	h := NewHandler(DemoResponder{}, "gemini-1.5-flash")
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/chatbot/send", strings.NewReader(`{"message":"   "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Send(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var resp ChatResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Reply != "Please provide a message so I can help." {
		t.Errorf("expected fixed prompt, got %q", resp.Reply)
	}
}

func TestHandler_DefaultsModelName(t *testing.T) {
	h := NewHandler(DemoResponder{}, "")
	if h.model != DefaultModel {
		t.Errorf("expected %s, got %s", DefaultModel, h.model)
	}
}

type failingResponder struct{}

func (failingResponder) GenerateReply(context.Context, string, map[string]any) (string, error) {
	return "", fmt.Errorf("model unavailable")
}

func TestHandler_Send_ResponderError(t *testing.T) {
	h := NewHandler(failingResponder{}, "gemini-1.5-flash")
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/chatbot/send", strings.NewReader(`{"message":"hi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Send(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %v", err)
	}
}
