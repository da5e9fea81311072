package models

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Part is a single text fragment of a turn.
type Part struct {
	Text string `json:"text"`
}

// ConversationTurn is one message of the transcript. The shape mirrors the
// Gemini content format so the server can forward history unchanged.
type ConversationTurn struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// NewTurn builds a single-part turn.
func NewTurn(role Role, text string) ConversationTurn {
	return ConversationTurn{Role: role, Parts: []Part{{Text: text}}}
}

// IsRenderable reports whether the turn has anything to display.
// A turn without parts is treated as absent.
func (t ConversationTurn) IsRenderable() bool {
	return len(t.Parts) > 0
}

// Text returns the text of the first part, or "" for an empty turn.
func (t ConversationTurn) Text() string {
	if len(t.Parts) == 0 {
		return ""
	}
	return t.Parts[0].Text
}
