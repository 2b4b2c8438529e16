package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pousada-api/internal/pkg/errs"
)

var ErrGatewayRequest = errs.New("payment gateway request failed")

// StripeGateway talks to the Stripe REST API directly over HTTP.
type StripeGateway struct {
	client    *http.Client
	baseURL   string
	secretKey string
}

func NewStripeGateway(baseURL, secretKey string) *StripeGateway {
	return &StripeGateway{
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	for k, v := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build intent request")
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to call payment provider"), ErrGatewayRequest)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read intent response")
	}

	var parsed intentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.Wrap(err, "failed to decode intent response")
	}

	if resp.StatusCode != http.StatusOK {
		msg := "unexpected status " + resp.Status
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return nil, errs.Mark(errs.New(msg), ErrGatewayRequest)
	}

	return &Intent{ID: parsed.ID, ClientSecret: parsed.ClientSecret}, nil
}
