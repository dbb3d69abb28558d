package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	reqdto "courtbook/internal/handler/dto/request"
	"courtbook/internal/pkg/config"
	"courtbook/internal/pkg/webhook"
	"courtbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// signatureHeader is the payment collaborator's contract: hex HMAC-SHA256
// of the raw body under the shared secret.
const signatureHeader = "X-Payment-Signature"

const completedEventType = "payment.completed"

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	cfg             config.PaymentConfig
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, cfg config.PaymentConfig) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		cfg:             cfg,
	}
}

// @Summary Payment webhook
// @Description Completion events from the payment collaborator; signature-verified, idempotent
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Payment-Signature header string true "HMAC-SHA256 over the raw body"
// @Param request body reqdto.PaymentWebhookRequest true "Event"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable body"})
		return
	}

	// Verify before touching any state
	if err := webhook.VerifySignature(h.cfg.WebhookSecret, body, c.GetHeader(signatureHeader)); err != nil {
		slog.Warn("webhook signature rejected", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	var req reqdto.PaymentWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event format"})
		return
	}
	if req.EventType != completedEventType {
		// Not ours; acknowledge so the collaborator stops retrying
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err := h.paymentCommands.HandlePaymentCompleted(c.Request.Context(), req.ToEvent()); err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event metadata"})
		case errors.Is(err, commands.ErrCourtNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown court in event metadata"})
		case errors.Is(err, commands.ErrBookingConflict):
			// Paid slot was taken in the meantime; non-2xx so the event is
			// retried and the operator notices the refund case
			c.JSON(http.StatusConflict, gin.H{"error": "Slot no longer available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
