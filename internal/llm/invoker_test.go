package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
)

type recordingCompleter struct {
	reply        string
	err          error
	instructions []Instruction
	prompts      []string
}

func (c *recordingCompleter) Complete(_ context.Context, instruction Instruction, prompt string) (string, error) {
	c.instructions = append(c.instructions, instruction)
	c.prompts = append(c.prompts, prompt)
	return c.reply, c.err
}

func TestInvokerTrimsResponse(t *testing.T) {
	completer := &recordingCompleter{reply: "\n  PERSONA 1\nName: Lena  \n"}
	instruction := Instruction{Name: "persona_agent", Text: "Du bist ..."}
	invoker := NewInvoker(completer, instruction)

	text, err := invoker.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "PERSONA 1\nName: Lena", text)
	require.Equal(t, []Instruction{instruction}, completer.instructions)
	require.Equal(t, []string{"prompt"}, completer.prompts)
}

func TestInvokerReturnsEmptyForBlankResponse(t *testing.T) {
	invoker := NewInvoker(&recordingCompleter{reply: " \n\t"}, Instruction{Name: "x"})

	text, err := invoker.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestInvokerPropagatesErrors(t *testing.T) {
	boom := errors.New("service unavailable")
	invoker := NewInvoker(&recordingCompleter{reply: "ignored", err: boom}, Instruction{Name: "x"})

	text, err := invoker.Invoke(context.Background(), "prompt")
	require.ErrorIs(t, err, boom)
	require.Empty(t, text)
}

func TestResponseTextJoinsTextParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("PERSONA 1\n"), genai.Text("Name: Lena")}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}

	require.Equal(t, "PERSONA 1\nName: Lena", responseText(resp))
}

func TestResponseTextHandlesMissingContent(t *testing.T) {
	require.Empty(t, responseText(nil))
	require.Empty(t, responseText(&genai.GenerateContentResponse{}))
	require.Empty(t, responseText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}))
}

func TestNewGeminiClientRequiresKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), GeminiConfig{})
	require.Error(t, err)
}
