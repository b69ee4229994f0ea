package api

import (
	"context"
	"net/http"

	"github.com/BerylCAtieno/persona-marketing-agent/internal/models"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/pipeline"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const msgInvalidRequest = "Fehler: Ungueltige Anfrage."

// Generator is the pipeline as seen by the presentation layer.
type Generator interface {
	Generate(ctx context.Context, req models.CampaignRequest) (string, error)
	Refine(ctx context.Context, currentOutput, instruction string) (string, error)
}

type Handler struct {
	generator Generator
}

func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// RegisterRoutes mounts the form UI and the JSON API.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.ShowForm)
	r.POST("/generate", h.SubmitGenerate)
	r.POST("/refine", h.SubmitRefine)

	v1 := r.Group("/api/v1")
	v1.GET("/options", h.Options)
	v1.POST("/generate", h.Generate)
	v1.POST("/refine", h.Refine)
}

// Generate handles POST /api/v1/generate
func (h *Handler) Generate(c *gin.Context) {
	var req models.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ResultResponse{Error: msgInvalidRequest})
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ResultResponse{Result: result})
}

// Refine handles POST /api/v1/refine
func (h *Handler) Refine(c *gin.Context) {
	var req models.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ResultResponse{Error: msgInvalidRequest})
		return
	}

	result, err := h.generator.Refine(c.Request.Context(), req.CurrentOutput, req.Instruction)
	if err != nil {
		h.sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ResultResponse{Result: result})
}

// Options handles GET /api/v1/options
func (h *Handler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultOptions())
}

func (h *Handler) sendError(c *gin.Context, err error) {
	logFailure(c.Request.Context(), err)

	status := http.StatusBadGateway
	if pipeline.IsValidation(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, models.ResultResponse{Error: pipeline.UserMessage(err)})
}

func logFailure(ctx context.Context, err error) {
	logger := zerolog.Ctx(ctx)
	if pipeline.IsValidation(err) {
		logger.Info().Str("reason", err.Error()).Msg("request rejected")
		return
	}
	logger.Error().Err(err).Msg("pipeline failed")
}
