package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
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

// ProviderName is the payment method recorded on orders paid through this client.
const ProviderName = "mpesa"

// ErrAuthFailed indicates the provider rejected the consumer credentials or
// the token endpoint was unreachable.
var ErrAuthFailed = errors.New("mpesa authentication failed")

// RequestError represents a failed push request after authentication
// succeeded.
type RequestError struct {
	Status string
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("mpesa request failed: %s", e.Status)
}

// Credentials are the per-request provider credentials, already resolved
// against process-wide defaults by the caller.
type Credentials struct {
	ConsumerKey    string
	ConsumerSecret string
	Passkey        string
	ShortCode      string
}

// PushRequest describes one STK push.
type PushRequest struct {
	Phone            string
	Amount           float64
	AccountReference string
	Description      string
	CallbackURL      string
}

// PushResponse is the provider's raw acknowledgement of a push request.
type PushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

// Client exposes push-payment operations against the provider.
type Client interface {
	Push(ctx context.Context, creds Credentials, req PushRequest) (*PushResponse, error)
}

// HTTPClient implements Client via the Daraja HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewHTTPClient creates HTTP client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mpesa url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mpesa url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		now: time.Now,
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// authenticate exchanges consumer key/secret for a short-lived bearer token.
func (c *HTTPClient) authenticate(ctx context.Context, creds Credentials) (string, error) {
	endpoint := c.endpoint("/oauth/v1/generate")
	endpoint += "?grant_type=client_credentials"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	basic := base64.StdEncoding.EncodeToString([]byte(creds.ConsumerKey + ":" + creds.ConsumerSecret))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("mpesa auth failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", ErrAuthFailed
	}

	var data tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if data.AccessToken == "" {
		return "", ErrAuthFailed
	}
	return data.AccessToken, nil
}

// Push authenticates and sends a CustomerPayBillOnline STK push.
func (c *HTTPClient) Push(ctx context.Context, creds Credentials, pushReq PushRequest) (*PushResponse, error) {
	token, err := c.authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	timestamp := Timestamp(c.now())
	phone := NormalizePhone(pushReq.Phone)

	payload := map[string]any{
		"BusinessShortCode": creds.ShortCode,
		"Password":          Password(creds.ShortCode, creds.Passkey, timestamp),
		"Timestamp":         timestamp,
		"TransactionType":   "CustomerPayBillOnline",
		"Amount":            pushReq.Amount,
		"PartyA":            phone,
		"PartyB":            creds.ShortCode,
		"PhoneNumber":       phone,
		"CallBackURL":       pushReq.CallbackURL,
		"AccountReference":  pushReq.AccountReference,
		"TransactionDesc":   pushReq.Description,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/mpesa/stkpush/v1/processrequest"), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Status: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Status: resp.Status}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("mpesa push failed", slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return nil, &RequestError{Status: resp.Status, Body: string(respBody)}
	}

	var ack PushResponse
	if err := json.Unmarshal(respBody, &ack); err != nil {
		return nil, &RequestError{Status: resp.Status, Body: string(respBody)}
	}
	return &ack, nil
}

func (c *HTTPClient) endpoint(p string) string {
	endpoint := *c.baseURL
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + p
	return endpoint.String()
}

// NormalizePhone rewrites the local leading-zero form to the country code
// form. Any other format passes through unchanged.
func NormalizePhone(phone string) string {
	if strings.HasPrefix(phone, "0") {
		return "254" + phone[1:]
	}
	return phone
}

// Timestamp renders t as YYYYMMDDHHmmss in the server's local clock, the
// format the provider expects inside the password.
func Timestamp(t time.Time) string {
	return t.Format("20060102150405")
}

// Password builds the provider password: base64(shortcode + passkey + timestamp).
func Password(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}
