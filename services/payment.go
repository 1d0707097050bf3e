package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// LineItem is one priced line of a checkout session. UnitAmount is in the
// smallest currency unit and always comes from the catalog.
type LineItem struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	UnitAmount int    `json:"unit_amount"`
	Quantity   int    `json:"quantity"`
}

type SessionParams struct {
	Reference        string
	Currency         string
	LineItems        []LineItem
	AllowedCountries []string
	SuccessURL       string
	CancelURL        string
	MetadataImages   []string
}

// Session is the provider's hosted checkout session. RedirectURL is where
// the customer completes payment.
type Session struct {
	ID          string `json:"id"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentGateway creates hosted checkout sessions with the external payment
// provider. Handlers receive an implementation at construction so checkout
// can be exercised against a fake.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error)
}

// HostedCheckoutClient talks to the provider's REST API.
type HostedCheckoutClient struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

func NewHostedCheckoutClient() *HostedCheckoutClient {
	return &HostedCheckoutClient{
		client:  resty.New().SetTimeout(30 * time.Second),
		baseURL: os.Getenv("PAYMENT_API_URL"),
		apiKey:  os.Getenv("PAYMENT_API_KEY"),
	}
}

func (c *HostedCheckoutClient) CreateCheckoutSession(ctx context.Context, params SessionParams) (*Session, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("payment api credentials are not set")
	}

	requestBody := map[string]any{
		"reference":            params.Reference,
		"currency":             params.Currency,
		"mode":                 "payment",
		"payment_method_types": []string{"card"},
		"line_items":           params.LineItems,
		"shipping_address_collection": map[string]any{
			"allowed_countries": params.AllowedCountries,
		},
		"success_url": params.SuccessURL,
		"cancel_url":  params.CancelURL,
		"metadata": map[string]any{
			"orderId": params.Reference,
			"images":  params.MetadataImages,
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeaders(map[string]string{
			"Authorization": "Bearer " + c.apiKey,
			"Accept":        "application/json",
			"Content-Type":  "application/json",
		}).
		SetBody(requestBody).
		Post(c.baseURL + "/v1/checkout/sessions")
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("checkout session request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var sessionResp map[string]any
	if err := json.Unmarshal(resp.Body(), &sessionResp); err != nil {
		return nil, fmt.Errorf("failed to parse session response: %w", err)
	}

	sessionID, _ := sessionResp["id"].(string)
	redirectURL, _ := sessionResp["redirect_url"].(string)
	if redirectURL == "" {
		// Some providers call it "url".
		redirectURL, _ = sessionResp["url"].(string)
	}

	return &Session{ID: sessionID, RedirectURL: redirectURL}, nil
}
