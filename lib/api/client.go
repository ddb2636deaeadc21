// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/digitalnest/nestqueue/lib/clock"
	"github.com/digitalnest/nestqueue/lib/ticket"
)

// maxResponseBytes caps how much of a response body the client reads.
// The full ticket collection of an internal helpdesk is small; anything
// beyond this is a misbehaving server.
const maxResponseBytes = 8 << 20

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL of the ticket service, without a
	// trailing slash (e.g., "https://nestqueue.digitalnest.org/api").
	// Required.
	BaseURL string

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations. Defaults to clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Client is a typed client for the NestQueue ticket service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a Client from the given configuration. Returns an
// error if BaseURL is missing or not an HTTP(S) URL.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("nestqueue: BaseURL is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("nestqueue: BaseURL must be an http(s) URL (got %q)", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		clock:      clk,
		logger:     logger,
	}, nil
}

// ticketCollection is the response envelope of GET /tickets.
type ticketCollection struct {
	Count   int             `json:"count"`
	Tickets []ticket.Ticket `json:"tickets"`
}

// Tickets reads the full ticket collection. The service wraps the
// collection in a {count, tickets} envelope; Tickets unwraps it and
// returns the bare sequence. Any transport, status, or decoding
// failure is returned as a *FetchError.
func (client *Client) Tickets(ctx context.Context) ([]ticket.Ticket, error) {
	started := client.clock.Now()

	body, err := client.do(ctx, http.MethodGet, "/tickets", nil)
	if err != nil {
		return nil, &FetchError{Cause: err}
	}

	var collection ticketCollection
	if err := json.Unmarshal(body, &collection); err != nil {
		return nil, &FetchError{Cause: fmt.Errorf("decoding collection: %w", err)}
	}

	if collection.Count != len(collection.Tickets) {
		// The envelope count is advisory; the tickets array is
		// authoritative. Log the mismatch and carry on.
		client.logger.Warn("ticket collection count mismatch",
			"count", collection.Count,
			"tickets", len(collection.Tickets),
		)
	}

	client.logger.Debug("fetched ticket collection",
		"tickets", len(collection.Tickets),
		"elapsed", client.clock.Now().Sub(started),
	)
	return collection.Tickets, nil
}

// CreateTicket submits a draft and returns the fully-formed ticket as
// assigned by the service (with ID and timestamps). Failures are
// returned as a *CreateError.
func (client *Client) CreateTicket(ctx context.Context, draft ticket.Draft) (ticket.Ticket, error) {
	body, err := client.do(ctx, http.MethodPost, "/tickets", draft)
	if err != nil {
		return ticket.Ticket{}, &CreateError{Cause: err}
	}

	var created ticket.Ticket
	if err := json.Unmarshal(body, &created); err != nil {
		return ticket.Ticket{}, &CreateError{Cause: fmt.Errorf("decoding created ticket: %w", err)}
	}
	if created.ID == "" {
		return ticket.Ticket{}, &CreateError{Cause: fmt.Errorf("service returned a ticket without an id")}
	}

	client.logger.Info("created ticket", "id", created.ID, "title", created.Title)
	return created, nil
}

// do executes a request against the service and returns the response
// body. The path is relative to the base URL. A non-nil requestBody is
// JSON-encoded. Non-2xx responses return an *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	url := client.baseURL + path

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, parseAPIError(response.StatusCode, body)
	}
	return body, nil
}

// parseAPIError builds an *APIError from a non-2xx response. The
// service returns {"message": ...} bodies on errors; anything else is
// carried verbatim.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}
	return apiError
}
