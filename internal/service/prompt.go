package service

import (
	"strings"

	"github.com/MKhiriev/go-code-tutor/models"
)

const fence = "```"

// BuildPromptObject builds the /chat payload for one submission. Blank code
// yields an empty Code; otherwise code is fenced with the lower-cased
// language name. Surrounding blank lines of code are dropped, indentation is
// kept.
func BuildPromptObject(userID, text, code string, language models.Language) models.PromptObject {
	if language == "" {
		language = models.Plaintext
	}

	return models.PromptObject{
		UserID:    userID,
		Plaintext: text,
		Code:      FenceCode(code, language),
		Language:  language,
	}
}

// BuildUserTurn joins text and an already fenced code block with a blank
// line.
func BuildUserTurn(text, code string) models.ConversationTurn {
	if code == "" {
		return models.NewTurn(models.RoleUser, text)
	}
	return models.NewTurn(models.RoleUser, text+"\n\n"+code)
}

// BuildModelTurn converts a reply into a model-role turn.
func BuildModelTurn(response models.ChatResponse) models.ConversationTurn {
	return models.NewTurn(models.RoleModel, response.Text)
}

// FenceCode wraps code in a fenced block tagged with language. Blank code
// yields "".
func FenceCode(code string, language models.Language) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}
	if language == "" {
		language = models.Plaintext
	}
	return fence + language.Lower() + "\n" + trimBlankLines(code) + "\n" + fence
}

// UnfenceCode returns the body of a fenced block. Input without an opening
// fence is returned with surrounding blank lines trimmed.
func UnfenceCode(code string) string {
	code = trimBlankLines(code)
	if !strings.HasPrefix(strings.TrimSpace(code), fence) {
		return code
	}

	lines := strings.Split(strings.TrimSpace(code), "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == fence {
		lines = lines[:n-1]
	}

	return trimBlankLines(strings.Join(lines, "\n"))
}

// BuildUserContent is the text sent to the model for one turn: the prompt
// text and the fenced code, joined by a blank line.
func BuildUserContent(text, code string, language models.Language) string {
	parts := make([]string, 0, 2)
	if text = strings.TrimSpace(text); text != "" {
		parts = append(parts, text)
	}
	if fenced := FenceCode(code, language); fenced != "" {
		parts = append(parts, fenced)
	}
	return strings.Join(parts, "\n\n")
}

// CountLines counts the lines of code, ignoring surrounding blank lines.
func CountLines(code string) int {
	code = trimBlankLines(code)
	if code == "" {
		return 0
	}
	return strings.Count(code, "\n") + 1
}

func trimBlankLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")

	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}
