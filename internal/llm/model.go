// Package llm wraps the Gemini API behind the small [Model] interface the
// chat service depends on.
package llm

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-code-tutor/models"
)

//go:generate mockgen -source=model.go -destination=../mock/llm_mock.go -package=mock

// ErrEmptyReply is returned when the model answers without text.
var ErrEmptyReply = errors.New("model returned an empty reply")

// DefaultSystemPrompt is the tutor instruction used when none is configured.
const DefaultSystemPrompt = `You are a brief, friendly coding instructor.
Before giving hints, ask one or two guiding questions.
Do not call code perfect. Debug step by step with the learner.
Put code in fenced blocks tagged with the language the learner gave.
Bullet lists are fine; keep other formatting to plain Markdown.
Start from the code provided. If there is none, ask clarifying questions.`

// Model produces one reply for a conversation.
type Model interface {
	// Generate sends history (oldest first) followed by userContent as the
	// newest user turn and returns the reply.
	Generate(ctx context.Context, history []models.ConversationTurn, userContent string) (models.ChatResponse, error)
}
