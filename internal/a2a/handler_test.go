package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BerylCAtieno/persona-marketing-agent/internal/agent"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/models"
	"github.com/BerylCAtieno/persona-marketing-agent/internal/pipeline"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	generated []models.CampaignRequest
	refined   [][2]string
	output    string
	err       error
}

func (f *fakeGenerator) Generate(_ context.Context, req models.CampaignRequest) (string, error) {
	f.generated = append(f.generated, req)
	return f.output, f.err
}

func (f *fakeGenerator) Refine(_ context.Context, currentOutput, instruction string) (string, error) {
	f.refined = append(f.refined, [2]string{currentOutput, instruction})
	return f.output, f.err
}

type rpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id"`
	Result  *TaskResult   `json:"result"`
	Error   *JSONRPCError `json:"error"`
}

func newRouter(gen Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewA2AHandler(gen, agent.NewCard("http://localhost:8080"))
	router := gin.New()
	router.GET("/.well-known/agent.json", h.ServeAgentCard)
	router.POST(agent.A2APath, h.HandleMarketing)
	return router
}

func send(t *testing.T, router http.Handler, body any) rpcResponse {
	t.Helper()
	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, agent.A2APath, bytes.NewReader(payload)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func rpc(method string, parts ...MessagePart) JSONRPCRequest {
	return JSONRPCRequest{
		JSONRPC: "2.0",
		ID:      "req-1",
		Method:  method,
		Params: MessageParams{Message: A2AMessage{
			Kind:      "message",
			Role:      RoleUser,
			MessageID: "m-1",
			ContextID: "ctx-1",
			Parts:     parts,
		}},
	}
}

func TestMessageSendGeneratesFromText(t *testing.T) {
	gen := &fakeGenerator{output: "---\nPERSONAS\nP\n\nMESSAGING\nM\n---"}
	router := newRouter(gen)

	resp := send(t, router, rpc("message/send", TextPart("Produkt: Eco Water Bottle\nZielgruppe: Students\nTon: Locker\nSprache: Englisch")))

	require.Nil(t, resp.Error)
	require.Equal(t, "req-1", resp.ID)
	require.NotNil(t, resp.Result)
	require.Equal(t, StateCompleted, resp.Result.Status.State)
	require.Equal(t, "ctx-1", resp.Result.ContextID)
	require.Len(t, resp.Result.Artifacts, 1)
	require.Equal(t, gen.output, resp.Result.Artifacts[0].Parts[0].Text)

	require.Equal(t, []models.CampaignRequest{{
		Product:  "Eco Water Bottle",
		Audience: "Students",
		Tone:     models.ToneCasual,
		Language: models.LanguageEnglish,
	}}, gen.generated)
}

func TestMessageSendGeneratesFromData(t *testing.T) {
	gen := &fakeGenerator{output: "ok"}
	router := newRouter(gen)

	resp := send(t, router, rpc("agent/task", MessagePart{Kind: "data", Data: map[string]any{
		"product":  "Bottle",
		"audience": "Students",
		"goal":     "App-Downloads",
		"extra":    nil,
	}}))

	require.Equal(t, StateCompleted, resp.Result.Status.State)
	require.Len(t, gen.generated, 1)
	require.Equal(t, models.GoalAppDownload, gen.generated[0].Goal)
	require.Empty(t, gen.generated[0].Extra)
}

func TestMessageSendRefines(t *testing.T) {
	gen := &fakeGenerator{output: "kuerzer"}
	router := newRouter(gen)

	resp := send(t, router, rpc("message/send", TextPart("Anweisung: Make the CTA shorter\nErgebnis: ---\nPERSONAS\nPERSONA 1\nName: Lena\n---")))

	require.Equal(t, StateCompleted, resp.Result.Status.State)
	require.Empty(t, gen.generated)
	require.Equal(t, [][2]string{{"---\nPERSONAS\nPERSONA 1\nName: Lena\n---", "Make the CTA shorter"}}, gen.refined)
}

func TestMessageSendValidationAsksForInput(t *testing.T) {
	gen := &fakeGenerator{err: &pipeline.ValidationError{Field: "audience", Message: pipeline.MsgAudienceMissing}}
	router := newRouter(gen)

	resp := send(t, router, rpc("message/send", TextPart("Eine wiederverwendbare Trinkflasche")))

	require.Equal(t, StateInputRequired, resp.Result.Status.State)
	require.Equal(t, pipeline.MsgAudienceMissing, resp.Result.Status.Message.Parts[0].Text)
	require.Equal(t, "Eine wiederverwendbare Trinkflasche", gen.generated[0].Product)
	require.Empty(t, resp.Result.Artifacts)
}

func TestMessageSendTransportFailure(t *testing.T) {
	router := newRouter(&fakeGenerator{err: errors.New("upstream closed")})

	resp := send(t, router, rpc("message/send", TextPart("Produkt: X\nZielgruppe: Y")))

	require.Equal(t, StateFailed, resp.Result.Status.State)
	require.Equal(t, pipeline.MsgModelUnavailable, resp.Result.Status.Message.Parts[0].Text)
}

func TestUnknownMethod(t *testing.T) {
	resp := send(t, newRouter(&fakeGenerator{}), rpc("tasks/cancel"))

	require.NotNil(t, resp.Error)
	require.Equal(t, CodeMethodNotFound, resp.Error.Code)
}

func TestInvalidVersion(t *testing.T) {
	req := rpc("message/send", TextPart("x"))
	req.JSONRPC = "1.0"

	resp := send(t, newRouter(&fakeGenerator{}), req)

	require.Equal(t, CodeInvalidRequest, resp.Error.Code)
}

func TestDirectMessageWithoutEnvelope(t *testing.T) {
	gen := &fakeGenerator{output: "ok"}
	resp := send(t, newRouter(gen), MessageParams{Message: A2AMessage{Kind: "message", Role: RoleUser, Parts: []MessagePart{TextPart("Produkt: X\nZielgruppe: Y")}}})

	require.Equal(t, "direct-message", resp.ID)
	require.Equal(t, StateCompleted, resp.Result.Status.State)
	require.Len(t, gen.generated, 1)
}

func TestMalformedBody(t *testing.T) {
	resp := send(t, newRouter(&fakeGenerator{}), "{not json")

	require.Equal(t, CodeParseError, resp.Error.Code)
}

func TestServeAgentCard(t *testing.T) {
	router := newRouter(&fakeGenerator{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/.well-known/agent.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var card agent.Card
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
	require.Equal(t, agent.Name, card.Name)
	require.Equal(t, "http://localhost:8080/a2a/marketing", card.URL)
}

func TestParseLabelledTextKeepsContinuationLines(t *testing.T) {
	fields := parseLabelledText("Zusatzinfos: nachhaltig\nzweite Zeile\nunbekannt: bleibt\nZielgruppe:  Studierende ")

	require.Equal(t, "nachhaltig\nzweite Zeile\nunbekannt: bleibt", fields["extra"])
	require.Equal(t, "Studierende", fields["audience"])
}

func TestParseLabelledTextKeepsLabelLikeLinesInsideResult(t *testing.T) {
	fields := parseLabelledText("Anweisung: CTA kuerzer\nErgebnis: ---\nPERSONAS\nText: Hallo\nZielgruppe: Studierende\n---")

	require.Equal(t, "CTA kuerzer", fields["instruction"])
	require.Equal(t, "---\nPERSONAS\nText: Hallo\nZielgruppe: Studierende\n---", fields["current_output"])
	require.NotContains(t, fields, "audience")
}

func TestParseLabelledTextAcceptsInstructionAfterResult(t *testing.T) {
	fields := parseLabelledText("Ergebnis: ---\nPERSONAS\nText: Hallo\n---\nAnweisung: CTA kuerzer")

	require.Equal(t, "---\nPERSONAS\nText: Hallo\n---", fields["current_output"])
	require.Equal(t, "CTA kuerzer", fields["instruction"])
}

func TestMessageSendRefinesResultContainingTextLine(t *testing.T) {
	gen := &fakeGenerator{output: "neu"}
	router := newRouter(gen)

	resp := send(t, router, rpc("message/send", TextPart("Anweisung: Kuerzer\nErgebnis: ---\nMESSAGING\nText: Jetzt kaufen\nCTA: Los\n---")))

	require.Equal(t, StateCompleted, resp.Result.Status.State)
	require.Equal(t, [][2]string{{"---\nMESSAGING\nText: Jetzt kaufen\nCTA: Los\n---", "Kuerzer"}}, gen.refined)
}
