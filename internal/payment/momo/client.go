// Package momo is a client for the MTN Mobile Money collection API: token
// exchange and push-to-phone request-to-pay.
package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kiddovents/kiddovents/internal/domain"
	"github.com/kiddovents/kiddovents/internal/metrics"
	"github.com/wb-go/wbf/logger"
)

const (
	EnvSandbox    = "sandbox"
	EnvProduction = "production"

	sandboxBaseURL    = "https://sandbox.momodeveloper.mtn.com"
	productionBaseURL = "https://proxy.momoapi.mtn.com"

	tokenPath       = "/collection/token/"
	requestToPayURL = "/collection/v1_0/requesttopay"

	subscriptionHeader = "Ocp-Apim-Subscription-Key"

	// tokenExpiryMargin keeps a cached token from being used in its last minute.
	tokenExpiryMargin = time.Minute
	defaultTimeout    = 15 * time.Second
	maxErrorBody      = 4 << 10
)

type Config struct {
	Environment       string
	BaseURL           string
	APIUser           string
	APIKey            string
	SubscriptionKey   string
	TargetEnvironment string
	Currency          string
	Timeout           time.Duration
}

func (c Config) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Environment == EnvProduction {
		return productionBaseURL
	}
	return sandboxBaseURL
}

func (c Config) targetEnvironment() string {
	if c.Environment != EnvProduction {
		return EnvSandbox
	}
	return c.TargetEnvironment
}

func (c Config) configured() bool {
	return c.APIUser != "" && c.APIKey != "" && c.SubscriptionKey != ""
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	tokens     TokenCache
	logger     logger.Logger
}

func NewClient(cfg Config, tokens TokenCache, log logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if tokens == nil {
		tokens = NewMemoryTokenCache()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     log,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// GetAccessToken returns a cached bearer token or exchanges the API
// credentials for a fresh one.
func (c *Client) GetAccessToken(ctx context.Context) (string, error) {
	if !c.cfg.configured() {
		return "", domain.ErrGatewayNotConfigured
	}

	if token, ok := c.tokens.Get(ctx, c.cacheKey()); ok {
		return token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.baseURL()+tokenPath, nil)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.APIUser, c.cfg.APIKey)
	req.Header.Set(subscriptionHeader, c.cfg.SubscriptionKey)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	metrics.ObserveGateway("token", time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAuthentication, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body := readBody(res.Body)
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrAuthentication, res.StatusCode, body)
	}

	var tr tokenResponse
	if err = json.NewDecoder(res.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("%w: decode token: %w", domain.ErrAuthentication, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", domain.ErrAuthentication)
	}

	if ttl := time.Duration(tr.ExpiresIn)*time.Second - tokenExpiryMargin; ttl > 0 {
		c.tokens.Set(ctx, c.cacheKey(), tr.AccessToken, ttl)
	}

	return tr.AccessToken, nil
}

type party struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

type requestToPay struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ExternalID   string `json:"externalId"`
	Payer        party  `json:"payer"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

// RequestPayment asks the provider to debit the payer's wallet. The provider
// pushes a prompt to the phone, so no payment URL is ever returned.
func (c *Client) RequestPayment(ctx context.Context, in domain.PaymentRequest) (*domain.PaymentInitiation, error) {
	phone := DigitsOnly(in.PayerPhone)
	if phone == "" {
		return nil, &domain.ValidationError{Field: "parent_phone", Reason: "must contain digits"}
	}

	token, err := c.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(requestToPay{
		Amount:       FormatAmount(in.Amount),
		Currency:     c.cfg.Currency,
		ExternalID:   in.ExternalReference,
		Payer:        party{PartyIDType: "MSISDN", PartyID: phone},
		PayerMessage: in.PayerMessage,
		PayeeNote:    in.PayeeNote,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request to pay: %w", err)
	}

	referenceID := uuid.New().String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.baseURL()+requestToPayURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request to pay: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Reference-Id", referenceID)
	req.Header.Set("X-Target-Environment", c.cfg.targetEnvironment())
	req.Header.Set(subscriptionHeader, c.cfg.SubscriptionKey)
	if in.CallbackURL != "" {
		req.Header.Set("X-Callback-Url", in.CallbackURL)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	metrics.ObserveGateway("request_to_pay", time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPaymentRequest, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		if res.StatusCode == http.StatusUnauthorized {
			c.tokens.Delete(ctx, c.cacheKey())
		}
		return nil, &domain.PaymentRequestError{StatusCode: res.StatusCode, Body: readBody(res.Body)}
	}

	c.logger.Debug("request to pay accepted",
		logger.String("reference_id", referenceID),
		logger.String("external_id", in.ExternalReference),
	)

	return &domain.PaymentInitiation{ReferenceID: referenceID}, nil
}

func (c *Client) cacheKey() string {
	return "momo:token:" + c.cfg.targetEnvironment() + ":" + c.cfg.APIUser
}

// DigitsOnly strips everything but ASCII digits from a phone number.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(b))
}
