package ports

import "github.com/rafabene/federa-backend/internal/domain/entities"

// WebhookVerifier verifica a assinatura do gateway e decodifica o evento
type WebhookVerifier interface {
	Verify(payload []byte, signature string) (entities.PaymentEvent, error)
}
