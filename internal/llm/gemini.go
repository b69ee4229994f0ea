package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-2.5-flash-lite"

type GeminiConfig struct {
	APIKey          string
	Endpoint        string // overrides the Generative Language API base URL
	Model           string
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

type GeminiClient struct {
	client *genai.Client
	cfg    GeminiConfig
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key must be provided")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		cfg:    cfg,
	}, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// Complete configures a model handle for this call only and sends prompt
// through a new chat session. Both are dropped on return. A response blocked
// for safety or recitation yields no text.
func (g *GeminiClient) Complete(ctx context.Context, instruction Instruction, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.cfg.Model)
	if g.cfg.Temperature > 0 {
		model.SetTemperature(g.cfg.Temperature)
	}
	if g.cfg.TopP > 0 {
		model.SetTopP(g.cfg.TopP)
	}
	if g.cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(g.cfg.MaxOutputTokens)
	}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instruction.Text)},
	}

	session := model.StartChat()
	resp, err := session.SendMessage(ctx, genai.Text(prompt))
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		zerolog.Ctx(ctx).Warn().
			Str("instruction", instruction.Name).
			Str("reason", blocked.Error()).
			Msg("model response blocked")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate content (%s): %w", instruction.Name, err)
	}

	return responseText(resp), nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}

	var builder strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return builder.String()
}

var _ Completer = (*GeminiClient)(nil)
