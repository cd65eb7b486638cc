package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"financaspro/internal/logger"
	"financaspro/internal/models"
)

// fallbackTips is returned whenever the remote call fails or yields no
// usable tips. The advice path never surfaces an error to the caller.
var fallbackTips = []string{
	"Mantenha o foco na economia mensal.",
	"Revise seus gastos por categoria regularmente.",
}

// adviceService formats a transaction snapshot into a natural-language
// prompt and asks the completion API for exactly three short tips.
type adviceService struct {
	client CompletionClient
	model  string
}

// NewAdviceService creates a new AdviceServicer.
func NewAdviceService(client CompletionClient, model string) AdviceServicer {
	return &adviceService{client: client, model: model}
}

// adviceSchema constrains the response to {"tips": [string, ...]}.
var adviceSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"tips": {
			Type:  jsonschema.Array,
			Items: &jsonschema.Definition{Type: jsonschema.String},
		},
	},
	Required:             []string{"tips"},
	AdditionalProperties: false,
}

func (s *adviceService) GetFinancialAdvice(ctx context.Context, transactions []models.Transaction) []string {
	prompt := buildAdvicePrompt(transactions)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "financial_tips",
				Schema: adviceSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		logger.Get().Errorw("advice request failed, using fallback tips", "error", err.Error())
		return fallbackTips
	}

	tips, err := parseAdviceResponse(resp)
	if err != nil {
		logger.Get().Errorw("advice response unusable, using fallback tips", "error", err.Error())
		return fallbackTips
	}
	return tips
}

func parseAdviceResponse(resp openai.ChatCompletionResponse) ([]string, error) {
	if len(resp.Choices) == 0 {
		return nil, errors.New("completion returned no choices")
	}

	var parsed struct {
		Tips []string `json:"tips"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("decode tips: %w", err)
	}
	if len(parsed.Tips) == 0 {
		return nil, errors.New("completion returned no tips")
	}
	return parsed.Tips, nil
}

// buildAdvicePrompt summarizes the snapshot for the model. The "real
// balance" here deliberately excludes fixed bills: the prompt reasons about
// registered cash flow only, unlike the dashboard's headline balance.
func buildAdvicePrompt(transactions []models.Transaction) string {
	byCategory := make(map[string]float64)
	var totalIncome, totalExpense int64

	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeIncome {
			totalIncome += tx.Amount
			continue
		}
		totalExpense += tx.Amount
		byCategory[string(tx.Category)] += reais(tx.Amount)
	}

	summary, err := json.Marshal(byCategory)
	if err != nil {
		summary = []byte("{}")
	}

	return fmt.Sprintf(`Aja como um consultor financeiro sênior. Analise as seguintes finanças e dê exatamente 3 dicas práticas e curtas em português:
- Renda Total: R$ %s
- Gastos Variáveis Registrados: R$ %s
- Gastos Variáveis por Categoria: %s
- Saldo Real Atual (sem considerar contas fixas pendentes): R$ %s

Responda em formato JSON com uma lista de dicas no campo "tips".`,
		formatReais(totalIncome),
		formatReais(totalExpense),
		summary,
		formatReais(totalIncome-totalExpense),
	)
}

func reais(centavos int64) float64 {
	return float64(centavos) / 100.0
}

func formatReais(centavos int64) string {
	return fmt.Sprintf("%.2f", reais(centavos))
}
