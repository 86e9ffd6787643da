package types

// ChatRequest is the body of POST /api/chat. Every field is optional.
type ChatRequest struct {
	Message string       `json:"message"`
	Context *ChatContext `json:"context,omitempty"`
}

type ChatContext struct {
	LastIntent *string `json:"lastIntent"`
}

// LastIntent returns the client's previous intent label, or "" when absent.
func (r ChatRequest) LastIntent() string {
	if r.Context == nil || r.Context.LastIntent == nil {
		return ""
	}
	return *r.Context.LastIntent
}

type ChatResponse struct {
	Response       string   `json:"response"`
	Intent         string   `json:"intent"`
	FollowUpIntent *string  `json:"followUpIntent"`
	Rationale      *string  `json:"rationale"`
	Suggestions    []string `json:"suggestions"`
}

type HealthResponse struct {
	Status string `json:"status"`
	AI     bool   `json:"ai"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
