// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-code-tutor/internal/config"
	"github.com/MKhiriev/go-code-tutor/internal/logger"
	"github.com/MKhiriev/go-code-tutor/models"
)

type geminiModel struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
	logger *logger.Logger
}

// NewGeminiModel constructs a [Model] backed by the Gemini API.
func NewGeminiModel(ctx context.Context, cfg config.LLM, logger *logger.Logger) (Model, error) {
	return newGeminiModel(ctx, cfg, genai.HTTPOptions{}, logger)
}

func newGeminiModel(ctx context.Context, cfg config.LLM, httpOptions genai.HTTPOptions, logger *logger.Logger) (*geminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: httpOptions,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	systemPrompt := cfg.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	return &geminiModel{
		client: client,
		model:  cfg.Model,
		config: &genai.GenerateContentConfig{
			Temperature:       genai.Ptr(cfg.Temperature),
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		},
		logger: logger,
	}, nil
}

func (g *geminiModel) Generate(ctx context.Context, history []models.ConversationTurn, userContent string) (models.ChatResponse, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		if !turn.IsRenderable() {
			continue
		}
		contents = append(contents, toContent(turn))
	}
	contents = append(contents, genai.NewContentFromText(userContent, genai.RoleUser))

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.config)
	if err != nil {
		g.logger.Err(err).Str("func", "*geminiModel.Generate").Str("model", g.model).Msg("generate content failed")
		return models.ChatResponse{}, fmt.Errorf("generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return models.ChatResponse{}, ErrEmptyReply
	}

	resp := models.ChatResponse{Text: text}
	if u := result.UsageMetadata; u != nil {
		resp.UsageMetadata = &models.UsageMetadata{
			PromptTokenCount:     u.PromptTokenCount,
			CandidatesTokenCount: u.CandidatesTokenCount,
			TotalTokenCount:      u.TotalTokenCount,
		}
	}

	return resp, nil
}

func toContent(turn models.ConversationTurn) *genai.Content {
	var role genai.Role = genai.RoleUser
	if turn.Role == models.RoleModel {
		role = genai.RoleModel
	}

	parts := make([]*genai.Part, 0, len(turn.Parts))
	for _, p := range turn.Parts {
		parts = append(parts, genai.NewPartFromText(p.Text))
	}

	return genai.NewContentFromParts(parts, role)
}
