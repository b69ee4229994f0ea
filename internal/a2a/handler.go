package a2a

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/BerylCAtieno/persona-marketing-agent/internal/agent"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/models"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/pipeline"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const artifactName = "Personas & Messaging"

// Generator is the pipeline as seen by the A2A endpoint.
type Generator interface {
	Generate(ctx context.Context, req models.CampaignRequest) (string, error)
	Refine(ctx context.Context, currentOutput, instruction string) (string, error)
}

type A2AHandler struct {
	generator Generator
	card      agent.Card
}

func NewA2AHandler(generator Generator, card agent.Card) *A2AHandler {
	return &A2AHandler{
		generator: generator,
		card:      card,
	}
}

// HandleMarketing processes A2A messages
func (h *A2AHandler) HandleMarketing(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	bodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read request body")
		h.sendErrorResponse(c, nil, "Failed to read request body", CodeParseError)
		return
	}
	logger.Debug().RawJSON("body", compactJSON(bodyBytes)).Msg("a2a request")

	var rpcReq JSONRPCRequest
	if err := json.Unmarshal(bodyBytes, &rpcReq); err != nil || rpcReq.Method == "" {
		// Some clients post the message params without the JSON-RPC envelope.
		h.handleDirectMessage(c, bodyBytes)
		return
	}

	if rpcReq.JSONRPC != "2.0" {
		logger.Warn().Str("jsonrpc", rpcReq.JSONRPC).Msg("invalid JSON-RPC version")
		h.sendErrorResponse(c, rpcReq.ID, "Invalid JSON-RPC version", CodeInvalidRequest)
		return
	}

	switch rpcReq.Method {
	case "message/send", "agent/task":
		h.handleTask(c, rpcReq)
	default:
		logger.Warn().Str("method", rpcReq.Method).Msg("unknown method")
		h.sendErrorResponse(c, rpcReq.ID, fmt.Sprintf("Method not found: %s", rpcReq.Method), CodeMethodNotFound)
	}
}

func (h *A2AHandler) handleDirectMessage(c *gin.Context, bodyBytes []byte) {
	var msgParams MessageParams
	if err := json.Unmarshal(bodyBytes, &msgParams); err != nil || len(msgParams.Message.Parts) == 0 {
		zerolog.Ctx(c.Request.Context()).Warn().Msg("request is neither JSON-RPC nor a direct message")
		h.sendErrorResponse(c, nil, "Invalid request format", CodeParseError)
		return
	}

	result := h.process(c.Request.Context(), "direct-message", msgParams.Message)
	h.sendSuccessResponse(c, "direct-message", result)
}

func (h *A2AHandler) handleTask(c *gin.Context, rpcReq JSONRPCRequest) {
	paramsJSON, err := json.Marshal(rpcReq.Params)
	if err != nil {
		h.sendErrorResponse(c, rpcReq.ID, "Failed to parse parameters", CodeInvalidParams)
		return
	}

	var msgParams MessageParams
	if err := json.Unmarshal(paramsJSON, &msgParams); err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("invalid message params")
		h.sendErrorResponse(c, rpcReq.ID, "Invalid parameters", CodeInvalidParams)
		return
	}

	taskID := msgParams.Message.TaskID
	if taskID == "" {
		taskID = uuid.NewString()
	}

	result := h.process(c.Request.Context(), taskID, msgParams.Message)
	h.sendSuccessResponse(c, rpcReq.ID, result)
}

// process runs a refinement when the message carries an instruction and a
// generation otherwise.
func (h *A2AHandler) process(ctx context.Context, taskID string, msg A2AMessage) TaskResult {
	fields := extractFields(msg)
	logger := zerolog.Ctx(ctx).With().Str("task_id", taskID).Logger()

	var (
		output string
		err    error
	)
	if instruction, ok := fields["instruction"]; ok {
		logger.Info().Msg("refining output")
		output, err = h.generator.Refine(ctx, fields["current_output"], instruction)
	} else {
		logger.Info().Msg("generating personas and messaging")
		output, err = h.generator.Generate(ctx, campaignRequest(fields))
	}

	if err != nil {
		state := StateFailed
		if pipeline.IsValidation(err) {
			state = StateInputRequired
			logger.Info().Str("reason", err.Error()).Msg("input required")
		} else {
			logger.Error().Err(err).Msg("pipeline failed")
		}
		return h.createErrorTaskResult(taskID, msg.ContextID, state, pipeline.UserMessage(err))
	}
	return h.createSuccessTaskResult(taskID, msg.ContextID, output)
}

// ServeAgentCard serves the agent card
func (h *A2AHandler) ServeAgentCard(c *gin.Context) {
	c.JSON(http.StatusOK, h.card)
}

func campaignRequest(fields map[string]string) models.CampaignRequest {
	return models.CampaignRequest{
		Product:  fields["product"],
		Audience: fields["audience"],
		Goal:     models.Goal(fields["goal"]),
		Tone:     models.Tone(fields["tone"]),
		Extra:    fields["extra"],
		Language: models.Language(fields["language"]),
	}
}

func (h *A2AHandler) createSuccessTaskResult(taskID, contextID, text string) TaskResult {
	return TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     StateCompleted,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.NewString(),
				TaskID:    taskID,
				Parts:     []MessagePart{TextPart(text)},
			},
		},
		Artifacts: []Artifact{
			{
				ArtifactID: uuid.NewString(),
				Name:       artifactName,
				Parts:      []MessagePart{TextPart(text)},
			},
		},
	}
}

func (h *A2AHandler) createErrorTaskResult(taskID, contextID, state, errorMsg string) TaskResult {
	return TaskResult{
		ID:        taskID,
		ContextID: contextID,
		Kind:      "task",
		Status: TaskStatus{
			State:     state,
			Timestamp: Timestamp(),
			Message: &A2AMessage{
				Kind:      "message",
				Role:      RoleAgent,
				MessageID: uuid.NewString(),
				TaskID:    taskID,
				Parts:     []MessagePart{TextPart(errorMsg)},
			},
		},
	}
}

func (h *A2AHandler) sendSuccessResponse(c *gin.Context, id any, result any) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
	})
}

// JSON-RPC errors are sent with 200 OK
func (h *A2AHandler) sendErrorResponse(c *gin.Context, id any, message string, code int) {
	c.JSON(http.StatusOK, JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	})
}

func compactJSON(body []byte) []byte {
	if json.Valid(body) {
		return body
	}
	quoted, _ := json.Marshal(strings.TrimSpace(string(body)))
	return quoted
}
