package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-code-tutor/internal/adapter"
	"github.com/MKhiriev/go-code-tutor/internal/app"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
)

type clientChatService struct {
	adapter     adapter.ServerAdapter
	credentials CredentialSource
	logger      *logger.Logger

	mu          sync.RWMutex
	transcript  []models.ConversationTurn
	response    models.ChatResponse
	hasResponse bool
	promptErr   string
	inFlight    bool
}

// NewClientChatService constructs the conversation exchanger. credentials is
// usually the client's [ClientSessionService].
func NewClientChatService(serverAdapter adapter.ServerAdapter, credentials CredentialSource, logger *logger.Logger) ClientChatService {
	return &clientChatService{
		adapter:     serverAdapter,
		credentials: credentials,
		logger:      logger,
		transcript:  []models.ConversationTurn{},
	}
}

func (c *clientChatService) BuildPromptObject(userID, text, code string, language models.Language) models.PromptObject {
	return BuildPromptObject(userID, text, code, language)
}

func (c *clientChatService) BuildUserTurn(text, code string) models.ConversationTurn {
	return BuildUserTurn(text, code)
}

func (c *clientChatService) BuildModelTurn(response models.ChatResponse) models.ConversationTurn {
	return BuildModelTurn(response)
}

func (c *clientChatService) SendPrompt(ctx context.Context, prompt models.PromptObject) (models.ChatResponse, error) {
	token := c.credentials.Token()

	c.mu.Lock()
	if token == "" {
		c.promptErr = app.MsgNotLoggedIn
		c.mu.Unlock()
		return models.ChatResponse{}, ErrNoCredential
	}
	c.promptErr = ""
	c.inFlight = true
	c.mu.Unlock()

	return c.exchange(ctx, token, prompt)
}

func (c *clientChatService) Submit(ctx context.Context, text, code string, language models.Language) (models.ChatResponse, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatResponse{}, ErrEmptyPrompt
	}

	token := c.credentials.Token()
	prompt := BuildPromptObject(c.credentials.UserID(), text, code, language)

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return models.ChatResponse{}, ErrRequestInFlight
	}
	if token == "" {
		c.promptErr = app.MsgNotLoggedIn
		c.mu.Unlock()
		return models.ChatResponse{}, ErrNoCredential
	}
	c.promptErr = ""
	c.inFlight = true
	c.transcript = append(c.transcript, BuildUserTurn(text, prompt.Code))
	c.mu.Unlock()

	resp, err := c.exchange(ctx, token, prompt)
	if err != nil {
		return models.ChatResponse{}, err
	}

	c.mu.Lock()
	c.transcript = append(c.transcript, BuildModelTurn(resp))
	c.mu.Unlock()

	return resp, nil
}

func (c *clientChatService) Transcript() []models.ConversationTurn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.ConversationTurn{}, c.transcript...)
}

func (c *clientChatService) LastChatError() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.promptErr
}

func (c *clientChatService) InFlight() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inFlight
}

func (c *clientChatService) LastResponse() (models.ChatResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.response, c.hasResponse
}

func (c *clientChatService) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transcript = []models.ConversationTurn{}
	c.response = models.ChatResponse{}
	c.hasResponse = false
	c.promptErr = ""
}

// exchange performs the /chat call. The caller has already raised the
// in-flight flag; it is cleared here on every path.
func (c *clientChatService) exchange(ctx context.Context, token string, prompt models.PromptObject) (models.ChatResponse, error) {
	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	resp, err := c.adapter.Chat(ctx, token, prompt.ToChatRequest())
	if err != nil {
		c.logger.Err(err).Str("func", "*clientChatService.exchange").Msg("chat request failed")

		c.mu.Lock()
		c.promptErr = adapter.MessageOr(err, app.MsgChatRequestFailed)
		c.mu.Unlock()

		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrChatOnServer, err)
	}

	c.mu.Lock()
	c.response = resp
	c.hasResponse = true
	c.mu.Unlock()

	return resp, nil
}
