package payment

import "context"

// Intent is a provider-side payment intent awaiting confirmation on the client.
type Intent struct {
	ID           string
	ClientSecret string
}

// IntentGateway creates payment intents with an external payment provider.
type IntentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*Intent, error)
}
