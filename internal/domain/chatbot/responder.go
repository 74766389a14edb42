package chatbot

import (
	"context"
	"fmt"
	"strings"
)

// Responder generates a chatbot reply. Implementations may call an external
// model service; the default one does not, so the handler contract is the
// same either way.
type Responder interface {
	GenerateReply(ctx context.Context, message string, extra map[string]any) (string, error)
}

// DemoResponder produces deterministic replies without any external call.
type DemoResponder struct{}

func (DemoResponder) GenerateReply(_ context.Context, message string, _ map[string]any) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "Please provide a message so I can help.", nil
	}
	return fmt.Sprintf("[Demo Gemini] You said: %s", message), nil
}
