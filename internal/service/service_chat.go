// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/llm"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/internal/store"
	"github.com/MKhiriev/go-code-tutor/internal/validators"
	"github.com/MKhiriev/go-code-tutor/models"
)

// Limiter is the per-user admission check of the chat service.
type Limiter interface {
	Allow(userID int64) error
}

type chatService struct {
	history store.HistoryRepository
	model   llm.Model
	limiter Limiter

	validator validators.Validator

	maxCodeLines int
	historyTurns int

	logger *logger.Logger
}

// NewChatService constructs the server [ChatService].
func NewChatService(history store.HistoryRepository, model llm.Model, limiter Limiter, cfg config.Limits, logger *logger.Logger) ChatService {
	return &chatService{
		history:      history,
		model:        model,
		limiter:      limiter,
		validator:    validators.NewRequestValidator(),
		maxCodeLines: cfg.MaxCodeLines,
		historyTurns: cfg.HistoryTurns,
		logger:       logger,
	}
}

// Chat answers one prompt.
//
// Order of checks: the body user_id must match userID (ErrUserMismatch), the
// language must be known (ErrUnsupportedLanguage), the prompt must carry
// text or code (ErrEmptyPrompt), the code must fit maxCodeLines
// (ErrCodeTooLarge), and only then the limiter is consulted, so rejected
// requests never spend quota. History read and write failures are logged and
// do not fail the request.
func (c *chatService) Chat(ctx context.Context, userID int64, req models.ChatRequest) (models.ChatResponse, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, req, validators.FieldUserID); err != nil {
		log.Warn().Int64("user_id", userID).Str("body_user_id", req.UserID).Msg("malformed user id")
		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrUserMismatch, err)
	}
	if req.UserID != "" && req.UserID != strconv.FormatInt(userID, 10) {
		log.Warn().Int64("user_id", userID).Str("body_user_id", req.UserID).Msg("user id mismatch")
		return models.ChatResponse{}, ErrUserMismatch
	}

	if err := c.validator.Validate(ctx, req, validators.FieldLang); err != nil {
		return models.ChatResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Lang)
	}
	language := models.Plaintext
	if strings.TrimSpace(req.Lang) != "" {
		language, _ = models.ParseLanguage(req.Lang)
	}

	text := strings.TrimSpace(req.UserText)
	code := UnfenceCode(req.Code)
	if text == "" && strings.TrimSpace(code) == "" {
		return models.ChatResponse{}, ErrEmptyPrompt
	}

	if c.maxCodeLines > 0 && CountLines(code) > c.maxCodeLines {
		return models.ChatResponse{}, ErrCodeTooLarge
	}

	if err := c.limiter.Allow(userID); err != nil {
		log.Info().Err(err).Int64("user_id", userID).Msg("chat request throttled")
		return models.ChatResponse{}, err
	}

	past, err := c.history.RecentTurns(ctx, userID, c.historyTurns)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("history unavailable, continuing without it")
		past = nil
	}

	content := BuildUserContent(text, code, language)

	resp, err := c.model.Generate(ctx, past, content)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("model call failed")
		return models.ChatResponse{}, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	if err = c.history.AppendTurns(ctx, userID,
		models.NewTurn(models.RoleUser, content),
		models.NewTurn(models.RoleModel, resp.Text),
	); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("failed to record history")
	}

	return resp, nil
}
