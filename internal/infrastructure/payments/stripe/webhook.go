// Package stripe adapta webhooks do Stripe para eventos de pagamento do domínio.
package stripe

import (
	"encoding/json"
	"fmt"
	"time"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/rafabene/federa-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/federa-backend/internal/domain/errors"
	"github.com/rafabene/federa-backend/internal/domain/ports"
)

// WebhookVerifier implementa ports.WebhookVerifier com o segredo do endpoint
type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

// NewWebhookVerifier cria um verificador; tolerance <= 0 usa o padrão do SDK
func NewWebhookVerifier(secret string, tolerance time.Duration) *WebhookVerifier {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &WebhookVerifier{secret: secret, tolerance: tolerance}
}

var _ ports.WebhookVerifier = (*WebhookVerifier)(nil)

// Verify valida a assinatura e converte o evento. Eventos que não são de
// payment intent são devolvidos só com ID e Type.
func (v *WebhookVerifier) Verify(payload []byte, signature string) (entities.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return entities.PaymentEvent{}, domainerrors.ErrInvalidSignature.Wrap(err)
	}

	result := entities.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	if result.Type != entities.PaymentEventSucceeded || event.Data == nil {
		return result, nil
	}

	var intent stripego.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return entities.PaymentEvent{}, domainerrors.ErrInvalidPayload.Wrap(fmt.Errorf("failed to decode payment intent: %w", err))
	}

	result.GatewayTransactionID = intent.ID
	result.AmountMinor = intent.Amount
	result.Currency = string(intent.Currency)
	result.Metadata = intent.Metadata
	if intent.PaymentMethod != nil {
		result.PaymentMethod = intent.PaymentMethod.ID
	}

	return result, nil
}
