// Package pipeline sequences the persona and messaging stages and the
// refinement pass.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/BerylCAtieno/persona-marketing-agent/internal/llm"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/metrics"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/models"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/prompts"
	"github.com/rs/zerolog"
)

const (
	StagePersona    = "persona"
	StageMessaging  = "messaging"
	StageRefinement = "refinement"
)

// Invoker sends one prompt to a model bound to a fixed instruction.
type Invoker interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}

type Orchestrator struct {
	personas  Invoker
	messaging Invoker
	metrics   *metrics.Registry
}

// NewOrchestrator uses personas for stage one and messaging for stage two
// and for every refinement.
func NewOrchestrator(personas, messaging Invoker, reg *metrics.Registry) *Orchestrator {
	return &Orchestrator{
		personas:  personas,
		messaging: messaging,
		metrics:   reg,
	}
}

// New binds the persona and messaging instructions to completer.
func New(completer llm.Completer, reg *metrics.Registry) *Orchestrator {
	personaInvoker := llm.NewInvoker(completer, llm.Instruction{
		Name:        prompts.PersonaAgentName,
		Description: prompts.PersonaAgentDescription,
		Text:        prompts.PersonaInstruction,
	})
	messagingInvoker := llm.NewInvoker(completer, llm.Instruction{
		Name:        prompts.MessagingAgentName,
		Description: prompts.MessagingAgentDescription,
		Text:        prompts.MessagingInstruction,
	})
	return NewOrchestrator(personaInvoker, messagingInvoker, reg)
}

// Generate runs the persona stage, then the messaging stage on its output,
// and returns the combined result.
func (o *Orchestrator) Generate(ctx context.Context, req models.CampaignRequest) (string, error) {
	req = req.WithDefaults()
	if err := validate(req); err != nil {
		return "", err
	}

	logger := zerolog.Ctx(ctx).With().Str("goal", string(req.Goal)).Str("tone", string(req.Tone)).Str("language", string(req.Language)).Logger()

	personaPrompt := prompts.PersonaPrompt(req.Product, req.Audience, string(req.Tone), req.Extra, string(req.Language))
	personas, err := o.run(ctx, &logger, StagePersona, o.personas, personaPrompt)
	if err != nil {
		return "", err
	}
	if personas == "" {
		return "", &GenerationError{Stage: StagePersona, Message: MsgNoPersonas}
	}

	messagingPrompt := prompts.MessagingPrompt(req.Product, req.Audience, string(req.Goal), string(req.Tone), req.Extra, string(req.Language), personas)
	messaging, err := o.run(ctx, &logger, StageMessaging, o.messaging, messagingPrompt)
	if err != nil {
		return "", err
	}
	if messaging == "" {
		return "", &GenerationError{Stage: StageMessaging, Message: MsgNoMessaging}
	}

	return Combine(personas, messaging), nil
}

// Refine revises currentOutput according to instruction using the
// messaging invoker.
func (o *Orchestrator) Refine(ctx context.Context, currentOutput, instruction string) (string, error) {
	if strings.TrimSpace(currentOutput) == "" {
		return "", &ValidationError{Field: "current_output", Message: MsgNothingToRefine}
	}
	if strings.TrimSpace(instruction) == "" {
		return "", &ValidationError{Field: "instruction", Message: MsgInstructionMissing}
	}

	logger := zerolog.Ctx(ctx).With().Logger()
	refined, err := o.run(ctx, &logger, StageRefinement, o.messaging, prompts.RefinementPrompt(currentOutput, instruction))
	if err != nil {
		return "", err
	}
	if refined == "" {
		return "", &GenerationError{Stage: StageRefinement, Message: MsgNoRefinement}
	}
	return refined, nil
}

// Combine lays out both stage outputs under their section labels.
func Combine(personas, messaging string) string {
	return fmt.Sprintf("---\nPERSONAS\n%s\n\nMESSAGING\n%s\n---", personas, messaging)
}

func (o *Orchestrator) run(ctx context.Context, logger *zerolog.Logger, stage string, invoker Invoker, prompt string) (string, error) {
	logger.Debug().Str("stage", stage).Int("prompt_chars", len(prompt)).Msg("invoking model")

	text, err := invoker.Invoke(ctx, prompt)
	switch {
	case err != nil:
		o.count(ctx, stage, "error")
		logger.Error().Err(err).Str("stage", stage).Msg("model call failed")
		return "", fmt.Errorf("%s stage: %w", stage, err)
	case text == "":
		o.count(ctx, stage, "empty")
		logger.Warn().Str("stage", stage).Msg("model returned no text")
	default:
		o.count(ctx, stage, "ok")
		logger.Info().Str("stage", stage).Int("response_chars", len(text)).Msg("stage completed")
	}
	return text, nil
}

func (o *Orchestrator) count(ctx context.Context, stage, outcome string) {
	o.metrics.Inc(ctx, "pipeline_stage_total", map[string]string{"stage": stage, "outcome": outcome}, 1)
}

func validate(req models.CampaignRequest) error {
	switch {
	case strings.TrimSpace(req.Product) == "":
		return &ValidationError{Field: "product", Message: MsgProductMissing}
	case strings.TrimSpace(req.Audience) == "":
		return &ValidationError{Field: "audience", Message: MsgAudienceMissing}
	case !req.Goal.Valid():
		return &ValidationError{Field: "goal", Message: MsgGoalUnknown}
	case !req.Tone.Valid():
		return &ValidationError{Field: "tone", Message: MsgToneUnknown}
	case !req.Language.Valid():
		return &ValidationError{Field: "language", Message: MsgLanguageUnknown}
	}
	return nil
}
