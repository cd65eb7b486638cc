package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	apperrors "financaspro/internal/errors"
	"financaspro/internal/logger"
	"financaspro/internal/models"
)

// VoiceAction discriminates what the spoken command asks for.
type VoiceAction string

const (
	VoiceActionAddTransaction VoiceAction = "ADD_TRANSACTION"
	VoiceActionAddFixedBill   VoiceAction = "ADD_FIXED_BILL"
)

// VoiceCommand is the decoded result of a voice capture: a tagged action
// plus its field values. Description and amount are always present; the
// remaining fields are best-effort and fall back to safe defaults.
type VoiceCommand struct {
	Action VoiceAction      `json:"action"`
	Data   VoiceCommandData `json:"data"`
}

// VoiceCommandData carries the extracted record fields, amount in centavos.
type VoiceCommandData struct {
	Description string                 `json:"description"`
	Amount      int64                  `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Category    models.Category        `json:"category"`
	Date        time.Time              `json:"date"`
	DueDate     time.Time              `json:"due_date"`
}

// voiceService transcribes a short utterance and asks the completion API to
// classify it into a structured command.
type voiceService struct {
	client          CompletionClient
	model           string
	transcribeModel string
}

// NewVoiceService creates a new VoiceServicer.
func NewVoiceService(client CompletionClient, model, transcribeModel string) VoiceServicer {
	return &voiceService{client: client, model: model, transcribeModel: transcribeModel}
}

// voiceSchema constrains the classification response. Only description and
// amount are required inside data.
var voiceSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"action": {
			Type: jsonschema.String,
			Enum: []string{string(VoiceActionAddTransaction), string(VoiceActionAddFixedBill)},
		},
		"data": {
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"description": {Type: jsonschema.String},
				"amount":      {Type: jsonschema.Number},
				"type":        {Type: jsonschema.String, Enum: []string{string(models.TransactionTypeIncome), string(models.TransactionTypeExpense)}},
				"category":    {Type: jsonschema.String},
				"date":        {Type: jsonschema.String},
				"dueDate":     {Type: jsonschema.String},
			},
			Required: []string{"description", "amount"},
		},
	},
	Required:             []string{"action", "data"},
	AdditionalProperties: false,
}

// ParseVoiceCommand sends the recorded audio through transcription and
// classification. Any transport or parsing failure propagates to the
// caller; there is deliberately no silent fallback on this path.
func (s *voiceService) ParseVoiceCommand(ctx context.Context, audio []byte, filename string) (*VoiceCommand, error) {
	if len(audio) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "audio capture is empty")
	}

	transcription, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.transcribeModel,
		Reader:   bytes.NewReader(audio),
		FilePath: filename,
		Language: "pt",
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteService, fmt.Errorf("transcription: %w", err))
	}

	text := strings.TrimSpace(transcription.Text)
	if text == "" {
		return nil, apperrors.WithMessage(apperrors.ErrVoiceCommand, "nothing was said in the recording")
	}

	logger.Get().Debugw("voice transcription", "text", text)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildVoicePrompt(text)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "voice_command",
				Schema: voiceSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrRemoteService, fmt.Errorf("classification: %w", err))
	}

	return parseVoiceResponse(resp)
}

func buildVoicePrompt(transcript string) string {
	return fmt.Sprintf(`Analise o comando de voz transcrito em português e converta em um objeto JSON para um app de finanças.
Extraia description, amount (valor em reais), type (INCOME ou EXPENSE), category (%s) e date.
Identifique se o usuário quer adicionar uma transação pontual ou uma conta fixa recorrente.
Se for conta fixa, retorne action ADD_FIXED_BILL e o campo dueDate. Se for transação, retorne action ADD_TRANSACTION e o campo date.
Datas no formato YYYY-MM-DD. Hoje é %s.

Comando transcrito: %q`,
		strings.Join(models.CategoryNames(), ", "),
		time.Now().Format("2006-01-02"),
		transcript,
	)
}

func parseVoiceResponse(resp openai.ChatCompletionResponse) (*VoiceCommand, error) {
	if len(resp.Choices) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrRemoteService, errors.New("completion returned no choices"))
	}

	var wire struct {
		Action string `json:"action"`
		Data   struct {
			Description string  `json:"description"`
			Amount      float64 `json:"amount"`
			Type        string  `json:"type"`
			Category    string  `json:"category"`
			Date        string  `json:"date"`
			DueDate     string  `json:"dueDate"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &wire); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrVoiceCommand, fmt.Errorf("decode command: %w", err))
	}

	action := VoiceAction(wire.Action)
	if action != VoiceActionAddTransaction && action != VoiceActionAddFixedBill {
		return nil, apperrors.WithMessage(apperrors.ErrVoiceCommand, "unknown action "+wire.Action)
	}
	if strings.TrimSpace(wire.Data.Description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrVoiceCommand, "no description was recognized")
	}
	if wire.Data.Amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrVoiceCommand, "no amount was recognized")
	}

	cmd := &VoiceCommand{
		Action: action,
		Data: VoiceCommandData{
			Description: wire.Data.Description,
			Amount:      int64(math.Round(wire.Data.Amount * 100)),
			Type:        models.TransactionTypeExpense,
			Category:    models.CategoryOutros,
			Date:        parseDate(wire.Data.Date),
			DueDate:     parseDate(wire.Data.DueDate),
		},
	}
	if t := models.TransactionType(wire.Data.Type); t.Valid() {
		cmd.Data.Type = t
	}
	if c := models.Category(wire.Data.Category); c.Valid() {
		cmd.Data.Category = c
	}
	return cmd, nil
}

// parseDate is best-effort: an absent or malformed date yields the zero
// time and the store substitutes today.
func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}
