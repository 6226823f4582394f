package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrMissingCredential indicates the client was built without account credentials.
var ErrMissingCredential = errors.New("twilio credentials are not set")

// Client exposes the two message-send operations used by the notifier.
type Client interface {
	SendWhatsApp(ctx context.Context, to, body string) (string, error)
	SendSMS(ctx context.Context, to, body string) (string, error)
}

// HTTPClient implements Client via the Twilio Messages REST API.
type HTTPClient struct {
	baseURL    *url.URL
	accountSID string
	authToken  string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the subset of the message resource we consume.
type response struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewHTTPClient creates a messaging client with a bounded timeout.
// The from number is the account's purchased sender, shared by both channels.
func NewHTTPClient(baseURL, accountSID, authToken, from string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse twilio url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("twilio url must be absolute")
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPClient{
		baseURL:    parsed,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		logger:     logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SendWhatsApp delivers a rich-channel message. Sandbox semantics: both
// addresses carry the whatsapp: prefix.
func (c *HTTPClient) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	return c.send(ctx, "whatsapp:"+c.from, "whatsapp:"+to, body)
}

// SendSMS delivers a plain-channel text message.
func (c *HTTPClient) SendSMS(ctx context.Context, to, body string) (string, error) {
	return c.send(ctx, c.from, to, body)
}

func (c *HTTPClient) send(ctx context.Context, from, to, body string) (string, error) {
	if c.accountSID == "" || c.authToken == "" {
		return "", ErrMissingCredential
	}

	endpoint := *c.baseURL
	endpoint.Path = fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", c.accountSID)

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var data response
		if json.Unmarshal(raw, &data) == nil && data.Message != "" {
			return "", fmt.Errorf("twilio error %d: %s", data.Code, data.Message)
		}
		c.logger.Error("twilio request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return "", fmt.Errorf("twilio error: %s", resp.Status)
	}

	var data response
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", fmt.Errorf("decode twilio response: %w", err)
	}
	return data.SID, nil
}
