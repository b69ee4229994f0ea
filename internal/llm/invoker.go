// Package llm wraps single request/response exchanges with a hosted
// language model.
package llm

import (
	"context"
	"strings"
)

// Instruction is a system-level behaviour profile bound to an Invoker.
type Instruction struct {
	Name        string
	Description string
	Text        string
}

// Completer performs one isolated exchange with a model service: a fresh
// session carrying only the instruction and the prompt. It returns "" when
// the service produced no final text.
type Completer interface {
	Complete(ctx context.Context, instruction Instruction, prompt string) (string, error)
}

// Invoker binds a Completer to one fixed Instruction.
type Invoker struct {
	completer   Completer
	instruction Instruction
}

func NewInvoker(completer Completer, instruction Instruction) *Invoker {
	return &Invoker{completer: completer, instruction: instruction}
}

func (i *Invoker) Instruction() Instruction {
	return i.instruction
}

// Invoke sends prompt and returns the trimmed response text. Errors from the
// completer are returned as is; there is no retry.
func (i *Invoker) Invoke(ctx context.Context, prompt string) (string, error) {
	text, err := i.completer.Complete(ctx, i.instruction, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
