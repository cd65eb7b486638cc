package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financaspro/internal/errors"
	"financaspro/internal/services"
	"financaspro/internal/store"
)

// maxAudioBytes caps a voice capture upload. A single short utterance is
// well under this even as uncompressed audio.
const maxAudioBytes = 10 << 20

// InsightHandler handles the AI-backed endpoints: financial advice and
// voice commands.
type InsightHandler struct {
	store  *store.Store
	advice services.AdviceServicer
	voice  services.VoiceServicer
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(s *store.Store, advice services.AdviceServicer, voice services.VoiceServicer) *InsightHandler {
	return &InsightHandler{store: s, advice: advice, voice: voice}
}

// GetAdvice handles the financial advice request
// @Summary     Get financial tips
// @Description Ask the AI service for three short tips based on the current transactions. Always succeeds; falls back to fixed tips when the service is unavailable.
// @Tags        insights
// @Produce     json
// @Success     200 {object} map[string][]string "Tip list"
// @Router      /insights/advice [get]
func (h *InsightHandler) GetAdvice(c *gin.Context) {
	tips := h.advice.GetFinancialAdvice(c.Request.Context(), h.store.Transactions())
	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

// CreateVoiceCommand handles a recorded voice command
// @Summary     Apply a voice command
// @Description Parse a short audio capture into either a transaction or a fixed bill and apply it to the store. Parsing failures are surfaced so the client can offer a retry.
// @Tags        insights
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Encoded audio capture"
// @Success     201 {object} map[string]interface{} "Action taken and the created record"
// @Failure     400 {object} ErrorResponse "Missing or oversized audio"
// @Failure     422 {object} ErrorResponse "Command not understood"
// @Failure     502 {object} ErrorResponse "AI service unavailable"
// @Router      /voice/commands [post]
func (h *InsightHandler) CreateVoiceCommand(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "audio file is required"))
		return
	}
	if fileHeader.Size > maxAudioBytes {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "audio file is too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	cmd, err := h.voice.ParseVoiceCommand(c.Request.Context(), audio, fileHeader.Filename)
	if err != nil {
		respondWithError(c, err)
		return
	}

	switch cmd.Action {
	case services.VoiceActionAddFixedBill:
		bill, err := h.store.AddFixedBill(store.FixedBillInput{
			Description: cmd.Data.Description,
			Amount:      cmd.Data.Amount,
			DueDate:     cmd.Data.DueDate,
		})
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"action": cmd.Action, "fixed_bill": bill})
	default:
		tx, err := h.store.AddTransaction(store.TransactionInput{
			Description: cmd.Data.Description,
			Amount:      cmd.Data.Amount,
			Type:        cmd.Data.Type,
			Category:    cmd.Data.Category,
			Date:        cmd.Data.Date,
		})
		if err != nil {
			respondWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"action": cmd.Action, "transaction": tx})
	}
}
