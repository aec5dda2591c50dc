package api

// ChatRequest is the single message the UI sends, for both responders.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// QuickAction is a suggested follow-up message offered alongside a reply.
type QuickAction struct {
	Label   string `json:"label" example:"Skills"`
	Message string `json:"message" example:"What are your skills?"`
}

// SourceRef points at the chunk a grounded answer was built from.
type SourceRef struct {
	Source string `json:"source" example:"Resume.pdf"`
	Part   int    `json:"part" example:"2"`
}

// ChatReply is the shared reply contract. Answer is always non-empty,
// no matter which responder produced it.
type ChatReply struct {
	Answer       string        `json:"answer"`
	QuickActions []QuickAction `json:"quickActions,omitempty"`
	Sources      []SourceRef   `json:"sources,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Missing message"`
}

type TranscriptResponse struct {
	Entries []TranscriptEntry `json:"entries"`
}

type TranscriptEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Mode     string `json:"mode"`
	At       string `json:"at"`
}
