package services

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"financaspro/internal/models"
)

// CompletionClient is the subset of the OpenAI-compatible client the AI
// gateways depend on. *openai.Client satisfies it; tests substitute stubs.
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
}

// AdviceServicer defines the contract for the financial advice gateway.
// GetFinancialAdvice is total: it never returns an error, falling back to a
// fixed tip list when the remote service misbehaves.
type AdviceServicer interface {
	GetFinancialAdvice(ctx context.Context, transactions []models.Transaction) []string
}

// VoiceServicer defines the contract for the voice command gateway. Unlike
// the advice path, failures here propagate so the caller can show a retry
// prompt.
type VoiceServicer interface {
	ParseVoiceCommand(ctx context.Context, audio []byte, filename string) (*VoiceCommand, error)
}
