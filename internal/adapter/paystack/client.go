package paystack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/bestcobb/orderapi/internal/domain/model"
)

// ErrMissingCredential indicates the client was built without a secret key.
var ErrMissingCredential = errors.New("paystack secret key is not set")

// Client exposes transaction lookup against the payment gateway.
type Client interface {
	Transaction(ctx context.Context, reference string) (*model.GatewayTransaction, error)
}

// HTTPClient implements Client via the Paystack REST API.
type HTTPClient struct {
	baseURL    *url.URL
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON envelope of the transaction verify endpoint.
type response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string `json:"status"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"data"`
}

// NewHTTPClient creates an HTTP gateway client with a bounded timeout.
func NewHTTPClient(baseURL, secretKey string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse paystack url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("paystack url must be absolute")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPClient{
		baseURL:   parsed,
		secretKey: secretKey,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Transaction fetches the gateway's record of a transaction by reference.
// Gateway-side declines arrive as a GatewayTransaction with OK=false; only
// transport and decoding problems surface as errors.
func (c *HTTPClient) Transaction(ctx context.Context, reference string) (*model.GatewayTransaction, error) {
	if c.secretKey == "" {
		return nil, ErrMissingCredential
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/transaction/verify")
	target := endpoint.String() + "/" + url.PathEscape(reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound:
		// 404 carries the same envelope with status=false for unknown references.
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, fmt.Errorf("decode paystack response: %w", err)
		}
		return &model.GatewayTransaction{
			OK:          data.Status,
			Status:      data.Data.Status,
			AmountMinor: data.Data.Amount,
			Currency:    data.Data.Currency,
			Message:     data.Message,
		}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("paystack request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("paystack error: %s", resp.Status)
	}
}
