package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
	"github.com/rafabene/federa-backend/internal/handlers/dto"
	"github.com/rafabene/federa-backend/internal/services"
)

// maxWebhookBody é o tamanho máximo aceito para eventos do gateway
const maxWebhookBody = 64 << 10

// SignatureHeader é o cabeçalho de assinatura enviado pelo Stripe
const SignatureHeader = "Stripe-Signature"

// PaymentHandler recebe webhooks do gateway de pagamento
type PaymentHandler struct {
	verifier ports.WebhookVerifier
	payments *services.PaymentService
	logger   ports.Logger
}

// NewPaymentHandler cria um novo PaymentHandler
func NewPaymentHandler(verifier ports.WebhookVerifier, payments *services.PaymentService, logger ports.Logger) *PaymentHandler {
	return &PaymentHandler{verifier: verifier, payments: payments, logger: logger}
}

// StripeWebhook verifica a assinatura e reconcilia o pagamento
//
//	@Summary	Webhook do Stripe
//	@Tags		payments
//	@Accept		json
//	@Produce	json
//	@Param		Stripe-Signature	header		string	true	"Assinatura do evento"
//	@Success	200					{object}	dto.WebhookResponse
//	@Failure	400					{object}	dto.ErrorResponse
//	@Failure	404					{object}	dto.ErrorResponse
//	@Router		/webhooks/stripe [post]
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			dto.RespondError(c, h.logger, domainerrors.ErrInvalidPayload.Wrap(err))
			return
		}
		dto.RespondError(c, h.logger, domainerrors.Internal(err))
		return
	}

	event, err := h.verifier.Verify(payload, c.GetHeader(SignatureHeader))
	if err != nil {
		h.logger.Warn("rejected webhook", "error", err)
		dto.RespondError(c, h.logger, err)
		return
	}

	result, err := h.payments.HandlePaymentEvent(c.Request.Context(), event)
	if err != nil {
		dto.RespondError(c, h.logger, err)
		return
	}

	response := dto.WebhookResponse{
		Received: true,
		Ignored:  result.Ignored,
		Replayed: result.Replayed,
	}
	if result.Transaction != nil {
		response.TransactionID = result.Transaction.ID
	}
	for _, sub := range result.Subscriptions {
		response.Subscriptions = append(response.Subscriptions, sub.ID)
	}

	c.JSON(http.StatusOK, response)
}
