// Package payment talks to the Razorpay orders API and checks the
// signature Razorpay attaches to a completed checkout.
package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/upparakash/AspireBrandApi/config"
)

var (
	ErrNotConfigured = errors.New("payment gateway is not configured")
	ErrInvalidAmount = errors.New("amount must be greater than zero")
)

// orderResponse is the subset of the Razorpay order object we read.
type orderResponse struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
	Error  *struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

type Intent struct {
	ID       string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type Razorpay struct {
	keyID   string
	secret  string
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewRazorpay(cfg config.Razorpay) *Razorpay {
	return &Razorpay{
		keyID:   cfg.KeyID,
		secret:  cfg.KeySecret,
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
		now:     time.Now,
	}
}

// CreateIntent opens a gateway order for amount (in rupees) and returns it.
// The gateway expects the amount in paise.
func (r *Razorpay) CreateIntent(ctx context.Context, amount decimal.Decimal, currency string) (*Intent, error) {
	if r.keyID == "" || r.secret == "" {
		return nil, ErrNotConfigured
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	intent := &Intent{
		Amount:   amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Currency: currency,
		Receipt:  fmt.Sprintf("rcpt_%d", r.now().UnixMilli()),
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"amount":   intent.Amount,
		"currency": intent.Currency,
		"receipt":  intent.Receipt,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/v1/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(r.keyID, r.secret)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Razorpay: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	var out orderResponse
	if err := json.Unmarshal(body, &out); err != nil && resp.StatusCode == http.StatusOK {
		return nil, fmt.Errorf("failed to parse Razorpay response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil && out.Error.Description != "" {
			return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, out.Error.Description)
		}
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}
	if out.ID == "" {
		return nil, errors.New("razorpay returned an empty order id")
	}

	intent.ID = out.ID
	return intent, nil
}

// VerifySignature reports whether signature is the hex HMAC-SHA256 of
// "orderID|paymentID" under the key secret.
func (r *Razorpay) VerifySignature(orderID, paymentID, signature string) bool {
	if r.secret == "" || orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(got, Sign(r.secret, orderID, paymentID))
}

// Sign computes the raw checkout signature.
func Sign(secret, orderID, paymentID string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return mac.Sum(nil)
}
