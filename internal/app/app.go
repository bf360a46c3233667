package app

import (
	"context"

	"github.com/adelsonfagundes/ClareIA/config"
	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting/usecases"
	"github.com/adelsonfagundes/ClareIA/internal/gemini"
	"github.com/adelsonfagundes/ClareIA/internal/openai"
)

type App struct {
	Transcribe *usecases.Transcribe
	Summarize  *usecases.Summarize
	FollowUp   *usecases.FollowUp
}

func New(cfg *config.Config) (*App, error) {
	client := openai.NewClient(openai.Config{
		APIKey:     cfg.OpenAIAPIKey,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
	})

	transcribe := &usecases.Transcribe{
		Client:          client,
		DefaultModel:    cfg.TranscribeModel,
		DefaultLanguage: cfg.Language,
		DefaultFormat:   cfg.ResponseFormat,
	}

	var provider usecases.SummaryProvider
	if cfg.SummaryProvider == config.ProviderGemini {
		provider = gemini.NewClient(gemini.Config{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		})
	} else {
		provider = &openAIChatProvider{client: client, model: cfg.SummaryModel}
	}

	summarize := &usecases.Summarize{
		Provider:    provider,
		Transcriber: transcribe,
		Temperature: cfg.Temperature,
	}

	followUp := &usecases.FollowUp{Provider: provider}

	return &App{
		Transcribe: transcribe,
		Summarize:  summarize,
		FollowUp:   followUp,
	}, nil
}

// openAIChatProvider adapts the OpenAI chat client to the SummaryProvider
// interface, forcing the json_object response format.
type openAIChatProvider struct {
	client *openai.Client
	model  string
}

func (p *openAIChatProvider) GenerateStructured(ctx context.Context, req usecases.SummaryRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}
	return p.client.CreateChatCompletion(ctx, openai.ChatRequest{
		Model:       model,
		System:      req.System,
		User:        req.User,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONObject:  true,
	})
}
