// Package paynow is a minimal client for the Paynow Zimbabwe payment
// gateway. It speaks the form-encoded initiate/poll exchange directly: a
// payment is created, sent, and later queried by the opaque poll URL the
// gateway hands back.
package paynow

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Gateway is the surface the order handlers depend on. Tests substitute a
// fake; production wires *Client.
type Gateway interface {
	CreatePayment(reference, authEmail string) *Payment
	Send(ctx context.Context, p *Payment) (InitResponse, error)
	CheckStatus(ctx context.Context, pollURL string) (StatusResponse, error)
}

// InitResponse is the outcome of a payment initiation. Success=false with a
// nil transport error means the gateway rejected the payment (a business
// failure, not a fault).
type InitResponse struct {
	Success     bool
	RedirectURL string
	PollURL     string
	Error       string
}

// StatusResponse is the outcome of a poll-URL status check.
type StatusResponse struct {
	Paid   bool
	Status string
}

type paymentItem struct {
	Name   string
	Amount float64
}

// Payment accumulates line items for a single transaction.
type Payment struct {
	Reference string
	AuthEmail string
	items     []paymentItem
}

func (p *Payment) Add(name string, amount float64) {
	p.items = append(p.items, paymentItem{Name: name, Amount: amount})
}

func (p *Payment) Total() float64 {
	total := 0.0
	for _, item := range p.items {
		total += item.Amount
	}
	return total
}

func (p *Payment) info() string {
	names := make([]string, 0, len(p.items))
	for _, item := range p.items {
		names = append(names, item.Name)
	}
	return strings.Join(names, ", ")
}

type Client struct {
	integrationID  string
	integrationKey string
	returnURL      string
	resultURL      string
	initiateURL    string
	httpClient     *http.Client
}

func NewClient(integrationID, integrationKey, returnURL, resultURL, initiateURL string) *Client {
	return &Client{
		integrationID:  integrationID,
		integrationKey: integrationKey,
		returnURL:      returnURL,
		resultURL:      resultURL,
		initiateURL:    initiateURL,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) CreatePayment(reference, authEmail string) *Payment {
	return &Payment{Reference: reference, AuthEmail: authEmail}
}

// Send initiates the transaction. Field order matters: the request hash is
// SHA512 over the field values in wire order followed by the integration key.
func (c *Client) Send(ctx context.Context, p *Payment) (InitResponse, error) {
	fields := [][2]string{
		{"resulturl", c.resultURL},
		{"returnurl", c.returnURL},
		{"reference", p.Reference},
		{"amount", fmt.Sprintf("%.2f", p.Total())},
		{"id", c.integrationID},
		{"additionalinfo", p.info()},
		{"authemail", p.AuthEmail},
		{"status", "Message"},
	}

	form := url.Values{}
	var hashInput strings.Builder
	for _, field := range fields {
		form.Set(field[0], field[1])
		hashInput.WriteString(field[1])
	}
	hashInput.WriteString(c.integrationKey)

	sum := sha512.Sum512([]byte(hashInput.String()))
	form.Set("hash", strings.ToUpper(hex.EncodeToString(sum[:])))

	values, err := c.postForm(ctx, c.initiateURL, form)
	if err != nil {
		return InitResponse{}, err
	}

	if !strings.EqualFold(values.Get("status"), "ok") {
		return InitResponse{
			Success: false,
			Error:   values.Get("error"),
		}, nil
	}

	return InitResponse{
		Success:     true,
		RedirectURL: values.Get("browserurl"),
		PollURL:     values.Get("pollurl"),
	}, nil
}

// CheckStatus queries the poll URL issued at initiation time.
func (c *Client) CheckStatus(ctx context.Context, pollURL string) (StatusResponse, error) {
	values, err := c.postForm(ctx, pollURL, url.Values{})
	if err != nil {
		return StatusResponse{}, err
	}

	status := values.Get("status")
	return StatusResponse{
		Paid:   strings.EqualFold(status, "paid"),
		Status: status,
	}, nil
}

func (c *Client) postForm(ctx context.Context, target string, form url.Values) (url.Values, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paynow: unexpected status %d", resp.StatusCode)
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, fmt.Errorf("paynow: malformed response: %w", err)
	}
	return values, nil
}
