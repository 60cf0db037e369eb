package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// Gateway is the hosted payment-processing boundary. SubmitOrder registers a
// payment attempt and returns the page the customer must be redirected to;
// GetTransactionStatus is the authoritative status source during reconciliation.
type Gateway interface {
	SubmitOrder(ctx context.Context, order *OrderRequest) (*OrderResponse, error)
	GetTransactionStatus(ctx context.Context, trackingID string) (*TransactionStatus, error)
}

type OrderRequest struct {
	MerchantReference string  `json:"id"`
	Currency          string  `json:"currency"`
	Amount            float64 `json:"amount"`
	Description       string  `json:"description"`
	CallbackURL       string  `json:"callback_url"`
	NotificationID    string  `json:"notification_id"`
	Billing           Billing `json:"billing_address"`
}

type Billing struct {
	Email     string `json:"email_address"`
	Phone     string `json:"phone_number,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Country   string `json:"country_code,omitempty"`
}

type OrderResponse struct {
	OrderTrackingID   string `json:"order_tracking_id"`
	MerchantReference string `json:"merchant_reference"`
	RedirectURL       string `json:"redirect_url"`
	Status            string `json:"status"`
	Error             any    `json:"error,omitempty"`
}

// TransactionStatus carries the authoritative outcome. Status is a small open
// set of strings (COMPLETED, SUCCESS, FAILED, CANCELLED, PENDING, ...),
// normalized to upper case.
type TransactionStatus struct {
	Status        string  `json:"payment_status_description"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
}

type authResponse struct {
	Token      string `json:"token"`
	ExpiryDate string `json:"expiryDate"`
	Error      any    `json:"error,omitempty"`
}

type Client struct {
	config utils.GatewayConfig
	http   *http.Client
	log    *zap.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewClient(config utils.GatewayConfig, log *zap.Logger) *Client {
	return &Client{
		config: config,
		http:   &http.Client{Timeout: 30 * time.Second},
		log:    log.With(zap.String("client", "gateway")),
	}
}

func (c *Client) SubmitOrder(ctx context.Context, order *OrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := c.post(ctx, "/api/Transactions/SubmitOrderRequest", order, &resp); err != nil {
		return nil, fmt.Errorf("submit order %s: %w", order.MerchantReference, err)
	}

	if resp.Error != nil {
		return nil, fmt.Errorf("submit order %s rejected: %v", order.MerchantReference, resp.Error)
	}
	if resp.RedirectURL == "" || resp.OrderTrackingID == "" {
		return nil, fmt.Errorf("submit order %s: gateway returned no redirect URL", order.MerchantReference)
	}

	c.log.Info("Order submitted to gateway",
		zap.String("merchant_reference", order.MerchantReference),
		zap.String("tracking_id", resp.OrderTrackingID),
		zap.Float64("amount", order.Amount),
	)

	return &resp, nil
}

func (c *Client) GetTransactionStatus(ctx context.Context, trackingID string) (*TransactionStatus, error) {
	token, err := c.authToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get transaction status %s: %w", trackingID, err)
	}

	endpoint := fmt.Sprintf("%s/api/Transactions/GetTransactionStatus?orderTrackingId=%s",
		strings.TrimRight(c.config.BaseURL, "/"), url.QueryEscape(trackingID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("get transaction status %s: %w", trackingID, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get transaction status %s: %w", trackingID, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get transaction status %s: gateway returned %d", trackingID, httpResp.StatusCode)
	}

	var status TransactionStatus
	if err := json.NewDecoder(httpResp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("get transaction status %s: decode response: %w", trackingID, err)
	}

	status.Status = strings.ToUpper(status.Status)
	return &status, nil
}

// ==================== HELPER METHODS ====================

// authToken returns a cached bearer token, requesting a fresh one when expired
func (c *Client) authToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	body := map[string]string{
		"consumer_key":    c.config.ConsumerKey,
		"consumer_secret": c.config.ConsumerSecret,
	}

	var resp authResponse
	if err := c.doJSON(ctx, "/api/Auth/RequestToken", body, &resp, ""); err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	if resp.Error != nil || resp.Token == "" {
		return "", fmt.Errorf("request token rejected: %v", resp.Error)
	}

	c.token = resp.Token
	// Tokens last 5 minutes; refresh a little early
	c.tokenExpiry = time.Now().Add(4 * time.Minute)
	if expiry, err := time.Parse(time.RFC3339, resp.ExpiryDate); err == nil {
		c.tokenExpiry = expiry.Add(-30 * time.Second)
	}

	return c.token, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	token, err := c.authToken(ctx)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, path, payload, out, token)
}

func (c *Client) doJSON(ctx context.Context, path string, payload, out any, token string) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned %d", httpResp.StatusCode)
	}

	return json.NewDecoder(httpResp.Body).Decode(out)
}
