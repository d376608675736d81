// Package gateway implements the client for the external payment
// gateway's redirect-based REST API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/englishlessons/backend/internal/models"
)

// Config holds gateway connection settings. A Client is constructed
// from it explicitly; there is no package-level gateway state.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// Client talks to the payment gateway's REST API
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a new gateway client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Amount is a transaction amount with its currency
type Amount struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// Transaction is one transaction within a gateway payment. Custom
// carries the correlation metadata this system embeds at creation time.
type Transaction struct {
	Amount      Amount `json:"amount"`
	Description string `json:"description,omitempty"`
	Custom      string `json:"custom,omitempty"`
}

// Link is a HATEOAS link returned by the gateway
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// Payment is a gateway payment resource
type Payment struct {
	ID           string        `json:"id"`
	Intent       string        `json:"intent,omitempty"`
	State        string        `json:"state"`
	Transactions []Transaction `json:"transactions"`
	Links        []Link        `json:"links,omitempty"`
}

// Payment states reported by the gateway
const (
	StateCreated  = "created"
	StateApproved = "approved"
	StateFailed   = "failed"
)

// ApprovalURL returns the redirect URL the payer must visit to approve
// the payment, or empty if the gateway did not provide one.
func (p *Payment) ApprovalURL() string {
	for _, link := range p.Links {
		if link.Rel == "approval_url" {
			return link.Href
		}
	}
	return ""
}

// Custom returns the correlation metadata embedded in the payment's
// first transaction, or empty if absent.
func (p *Payment) Custom() string {
	if len(p.Transactions) == 0 {
		return ""
	}
	return p.Transactions[0].Custom
}

// CreatePaymentRequest describes a payment to create
type CreatePaymentRequest struct {
	Total       float64
	Currency    string
	Description string
	Custom      string
	ReturnURL   string
	CancelURL   string
}

// CreatePayment creates a redirect-based payment at the gateway and
// returns it with its approval URL.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	body := map[string]any{
		"intent": "sale",
		"payer": map[string]any{
			"payment_method": "paypal",
		},
		"transactions": []map[string]any{
			{
				"amount": map[string]any{
					"total":    fmt.Sprintf("%.2f", req.Total),
					"currency": req.Currency,
				},
				"description": req.Description,
				"custom":      req.Custom,
			},
		},
		"redirect_urls": map[string]any{
			"return_url": req.ReturnURL,
			"cancel_url": req.CancelURL,
		},
	}

	payment := &Payment{}
	if err := c.doJSON(ctx, http.MethodPost, "/v1/payments/payment", body, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

// Find retrieves a payment by its gateway ID
func (c *Client) Find(ctx context.Context, paymentID string) (*Payment, error) {
	payment := &Payment{}
	path := "/v1/payments/payment/" + url.PathEscape(paymentID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, payment); err != nil {
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	return payment, nil
}

// Execute captures an approved payment on behalf of the given payer
func (c *Client) Execute(ctx context.Context, paymentID, payerID string) (*Payment, error) {
	body := map[string]any{
		"payer_id": payerID,
	}

	payment := &Payment{}
	path := "/v1/payments/payment/" + url.PathEscape(paymentID) + "/execute"
	if err := c.doJSON(ctx, http.MethodPost, path, body, payment); err != nil {
		return nil, fmt.Errorf("failed to execute payment %s: %w", paymentID, err)
	}

	return payment, nil
}

// doJSON performs an authenticated JSON request against the gateway and
// decodes the response into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	token, err := c.token(ctx)
	if err != nil {
		return err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network level failures are worth one retry at the coordinator
		return fmt.Errorf("%w: %v", models.ErrTransientGateway, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode gateway response: %w", err)
		}
	}

	return nil
}

// token returns a valid OAuth access token, requesting a new one from
// the gateway when the cached token is missing or about to expire.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-30*time.Second)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrTransientGateway, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("gateway returned empty access token")
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	if c.logger != nil {
		c.logger.Debug("gateway access token refreshed",
			zap.Time("expiry", c.tokenExpiry))
	}

	return c.accessToken, nil
}

// checkStatus maps non-2xx gateway responses onto the error taxonomy:
// 404 is not found, 5xx is transient, anything else is a plain failure.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("gateway resource: %w", models.ErrNotFound)
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: gateway returned %d: %s", models.ErrTransientGateway, resp.StatusCode, body)
	default:
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, body)
	}
}
