package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Asamoah4284/PENNIT-sub001/internal/logger"
)

// TransferRequest describes one author payout handed to the payment provider
type TransferRequest struct {
	// Reference is the idempotency reference generated by the caller; the
	// provider deduplicates on it
	Reference string `json:"reference"`
	// AmountGhc is the payout amount in Ghana cedis
	AmountGhc decimal.Decimal `json:"amount_ghc"`
	// Channel is bank or mobile_money
	Channel string `json:"channel"`
	// AccountName is the registered account holder
	AccountName string `json:"account_name"`
	// AccountNumber is the bank account or wallet number
	AccountNumber string `json:"account_number"`
	// ProviderCode is the bank or mobile network code
	ProviderCode string `json:"provider_code"`
	// Narration appears on the recipient's statement
	Narration string `json:"narration,omitempty"`
}

// TransferResult is the provider's decision on a transfer
type TransferResult struct {
	// Success reports whether the provider accepted the transfer
	Success bool
	// Reference is the provider-side transfer reference, set on success
	Reference string
	// FailureReason explains a declined transfer
	FailureReason string
	// Raw is the provider's response body, kept for auditing
	Raw []byte
}

// Gateway defines the external payment collaborator's transfer surface.
// Implementations must treat transport failures as errors and provider
// declines as unsuccessful results; the payout executor records both as
// failed attempts without aborting the batch.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
}

// Config holds HTTP gateway configuration
type Config struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

// httpGateway implements Gateway against the provider's REST transfer API
type httpGateway struct {
	config Config
	client *http.Client
}

// NewHTTPGateway creates a new HTTP payment gateway client
func NewHTTPGateway(cfg Config) Gateway {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &httpGateway{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// transferResponse is the provider's wire format
type transferResponse struct {
	Status    bool   `json:"status"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// Transfer posts the transfer and retries transient transport failures with
// exponential backoff. The request reference makes the retry idempotent on
// the provider side.
func (g *httpGateway) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transfer request: %w", err)
	}

	var respBody []byte
	var statusCode int

	operation := func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
			g.config.BaseURL+"/transfers", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+g.config.SecretKey)

		resp, err := g.client.Do(httpReq)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err))
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("provider returned %d, retrying", resp.StatusCode)
		}

		statusCode = resp.StatusCode
		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 1 * time.Minute
	b.RandomizationFactor = 0.5 // jitter

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("transfer request failed after retries: %w", err)
	}

	var decoded transferResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode transfer response: %w", err)
	}

	if statusCode != http.StatusOK || !decoded.Status {
		reason := decoded.Message
		if reason == "" {
			reason = fmt.Sprintf("provider declined with status %d", statusCode)
		}
		return &TransferResult{
			Success:       false,
			FailureReason: reason,
			Raw:           respBody,
		}, nil
	}

	return &TransferResult{
		Success:   true,
		Reference: decoded.Reference,
		Raw:       respBody,
	}, nil
}
