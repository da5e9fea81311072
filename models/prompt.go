package models

// PromptObject is the transient payload assembled from one composer
// submission. Code is already wrapped in a fenced block when non-empty.
type PromptObject struct {
	UserID    string   `json:"user_id"`
	Plaintext string   `json:"plaintext"`
	Code      string   `json:"code"`
	Language  Language `json:"language"`
}

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	UserID   string `json:"user_id"`
	UserText string `json:"user_text"`
	Code     string `json:"code"`
	Lang     string `json:"lang"`
}

// ToChatRequest converts the prompt to its wire form. The language is sent
// lower-cased.
func (p PromptObject) ToChatRequest() ChatRequest {
	return ChatRequest{
		UserID:   p.UserID,
		UserText: p.Plaintext,
		Code:     p.Code,
		Lang:     p.Language.Lower(),
	}
}

// UsageMetadata carries token accounting returned by the model.
type UsageMetadata struct {
	PromptTokenCount     int32 `json:"prompt_token_count"`
	CandidatesTokenCount int32 `json:"candidates_token_count"`
	TotalTokenCount      int32 `json:"total_token_count"`
}

// ChatResponse is the success body of POST /chat.
type ChatResponse struct {
	Text          string         `json:"text"`
	UsageMetadata *UsageMetadata `json:"usage_metadata,omitempty"`
}
