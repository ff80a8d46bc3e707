package dto

// WebhookResponse confirma o recebimento de um evento do gateway
type WebhookResponse struct {
	Received      bool     `json:"received"`
	Ignored       bool     `json:"ignored,omitempty"`
	Replayed      bool     `json:"replayed,omitempty"`
	TransactionID string   `json:"transaction_id,omitempty"`
	Subscriptions []string `json:"subscription_ids,omitempty"`
}
