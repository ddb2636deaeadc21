// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/digitalnest/nestqueue/lib/ticket"
)

// newTestClient creates a Client backed by the given httptest.Server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for missing BaseURL")
	}
	if _, err := NewClient(Config{BaseURL: "unix:///tmp/sock"}); err == nil {
		t.Fatal("expected error for non-http URL")
	}
}

func TestTicketsUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodGet || request.URL.Path != "/tickets" {
			t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
		}
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{
			"count": 2,
			"tickets": [
				{"id": "1", "title": "A", "priority": 1, "status": "Open"},
				{"id": "2", "title": "B", "priority": 5, "status": "Closed"}
			]
		}`))
	}))
	defer server.Close()

	tickets, err := newTestClient(t, server).Tickets(context.Background())
	if err != nil {
		t.Fatalf("Tickets: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(tickets))
	}
	if tickets[0].ID != "1" || tickets[0].Priority != 1 {
		t.Errorf("first ticket decode: %+v", tickets[0])
	}
	if tickets[1].Status != ticket.StatusClosed {
		t.Errorf("second ticket status = %q", tickets[1].Status)
	}
}

func TestTicketsToleratesCountMismatch(t *testing.T) {
	// The envelope count is advisory; the array is authoritative.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"count": 99, "tickets": [{"id": "1", "title": "A"}]}`))
	}))
	defer server.Close()

	tickets, err := newTestClient(t, server).Tickets(context.Background())
	if err != nil {
		t.Fatalf("Tickets: %v", err)
	}
	if len(tickets) != 1 {
		t.Errorf("expected 1 ticket, got %d", len(tickets))
	}
}

func TestTicketsNonOKIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, `{"message": "database unavailable"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(t, server).Tickets(context.Background())
	if !IsFetchError(err) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if got := StatusCode(err); got != http.StatusServiceUnavailable {
		t.Errorf("StatusCode(err) = %d, want 503", got)
	}
	if IsCreateError(err) {
		t.Error("a fetch failure must not report as a CreateError")
	}
}

func TestTicketsMalformedBodyIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`<html>proxy error</html>`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server).Tickets(context.Background())
	if !IsFetchError(err) {
		t.Fatalf("expected FetchError for malformed body, got %v", err)
	}
}

func TestTicketsTransportFailureIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // Immediately unreachable.

	_, err := newTestClient(t, server).Tickets(context.Background())
	if !IsFetchError(err) {
		t.Fatalf("expected FetchError for refused connection, got %v", err)
	}
	if got := StatusCode(err); got != 0 {
		t.Errorf("transport failure should carry no HTTP status, got %d", got)
	}
}

func TestCreateTicketRoundTrip(t *testing.T) {
	var received ticket.Draft
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost || request.URL.Path != "/tickets" {
			t.Errorf("unexpected request: %s %s", request.Method, request.URL.Path)
		}
		if contentType := request.Header.Get("Content-Type"); contentType != "application/json" {
			t.Errorf("Content-Type = %q", contentType)
		}
		if err := json.NewDecoder(request.Body).Decode(&received); err != nil {
			t.Errorf("decoding draft: %v", err)
		}
		writer.WriteHeader(http.StatusCreated)
		writer.Write([]byte(`{
			"id": "tkt-7",
			"title": "Printer down",
			"description": "No toner",
			"site": "Gilroy",
			"category": "Hardware",
			"createdBy": "techsquad@digitalnest.org",
			"priority": 2,
			"status": "Open",
			"createdOn": "2026-08-27T10:00:00Z",
			"updatedAt": "2026-08-27T10:00:00Z"
		}`))
	}))
	defer server.Close()

	draft := ticket.Draft{
		Title:       "Printer down",
		Description: "No toner",
		Site:        ticket.SiteGilroy,
		Category:    ticket.CategoryHardware,
		CreatedBy:   "techsquad@digitalnest.org",
		Priority:    2,
		Status:      ticket.StatusOpen,
	}
	created, err := newTestClient(t, server).CreateTicket(context.Background(), draft)
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if created.ID != "tkt-7" {
		t.Errorf("created ID = %q", created.ID)
	}
	if created.CreatedOn.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("created ticket should carry service-assigned timestamps")
	}
	if received.Title != draft.Title || received.Site != draft.Site {
		t.Errorf("service received wrong draft: %+v", received)
	}
}

func TestCreateTicketRejectionIsCreateError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		http.Error(writer, `{"message": "title too long"}`, http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := newTestClient(t, server).CreateTicket(context.Background(), ticket.Draft{})
	if !IsCreateError(err) {
		t.Fatalf("expected CreateError, got %v", err)
	}
	if got := StatusCode(err); got != http.StatusBadRequest {
		t.Errorf("StatusCode(err) = %d, want 400", got)
	}
}

func TestCreateTicketMissingIDIsCreateError(t *testing.T) {
	// A create response without an id is a service defect; the client
	// must not hand the UI a ticket it cannot key a row on.
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Write([]byte(`{"title": "no id here"}`))
	}))
	defer server.Close()

	_, err := newTestClient(t, server).CreateTicket(context.Background(), ticket.Draft{})
	if !IsCreateError(err) {
		t.Fatalf("expected CreateError for missing id, got %v", err)
	}
}

func TestAPIErrorMessageFallback(t *testing.T) {
	apiError := parseAPIError(500, []byte("plain text failure\n"))
	if apiError.Message != "plain text failure" {
		t.Errorf("Message = %q", apiError.Message)
	}
	apiError = parseAPIError(502, nil)
	if apiError.Error() != "nestqueue: HTTP 502" {
		t.Errorf("Error() = %q", apiError.Error())
	}
}
