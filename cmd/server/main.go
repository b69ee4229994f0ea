package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/persona-marketing-agent/internal/a2a"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/agent"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/api"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/config"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/llm"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/logging"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/metrics"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/middleware"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/pipeline"
	"github.com/BerylCAtieno/persona-marketing-agent/web"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info", "console")
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, closeCompleter, err := newCompleter(ctx, cfg.LLM)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.LLM.Provider).Msg("failed to create model client")
	}
	defer closeCompleter()

	reg := metrics.NewRegistry()
	orchestrator := pipeline.New(completer, reg)

	apiHandler := api.NewHandler(orchestrator)
	a2aHandler := a2a.NewA2AHandler(orchestrator, agent.NewCard(cfg.AgentURL()))

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(reg))
	router.SetHTMLTemplate(web.Templates())

	// Endpoints
	router.GET("/.well-known/agent.json", a2aHandler.ServeAgentCard)
	router.POST(agent.A2APath, a2aHandler.HandleMarketing)
	apiHandler.RegisterRoutes(router)

	router.GET("/metrics", reg.Handler)
	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Model calls carry no deadline of their own, so no WriteTimeout either.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("provider", cfg.LLM.Provider).
			Str("agent_card", cfg.AgentURL()+"/.well-known/agent.json").
			Msg("Persona Marketing Agent starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	stop()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}

func newCompleter(ctx context.Context, cfg config.LLMConfig) (llm.Completer, func(), error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		client, err := llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Model:       cfg.OpenAIModel,
			Temperature: float64(cfg.Temperature),
			TopP:        float64(cfg.TopP),
			MaxTokens:   int64(cfg.MaxOutputTokens),
		})
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	default:
		client, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey:          cfg.GeminiAPIKey,
			Endpoint:        cfg.GeminiEndpoint,
			Model:           cfg.GeminiModel,
			Temperature:     cfg.Temperature,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		})
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close Gemini client")
			}
		}, nil
	}
}
