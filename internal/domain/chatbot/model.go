package chatbot

// ChatRequest is a user message plus optional free-form context the
// responder may use.
type ChatRequest struct {
	Message string         `json:"message"`
	Context map[string]any `json:"context,omitempty"`
}

// ChatResponse carries the reply and the model name that produced it.
type ChatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}
