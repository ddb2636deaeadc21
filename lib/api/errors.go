// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

// APIError represents a non-2xx response from the ticket service.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the error description from the service, or the raw
	// body when the service did not return a structured error.
	Message string
}

func (err *APIError) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("nestqueue: HTTP %d", err.StatusCode)
	}
	return fmt.Sprintf("nestqueue: HTTP %d: %s", err.StatusCode, err.Message)
}

// FetchError reports that reading the ticket collection failed:
// transport failure, a non-2xx status, or an undecodable body.
type FetchError struct {
	Cause error
}

func (err *FetchError) Error() string {
	return "fetch tickets: " + err.Cause.Error()
}

func (err *FetchError) Unwrap() error {
	return err.Cause
}

// CreateError reports that a ticket write was rejected or failed in
// transit.
type CreateError struct {
	Cause error
}

func (err *CreateError) Error() string {
	return "create ticket: " + err.Cause.Error()
}

func (err *CreateError) Unwrap() error {
	return err.Cause
}

// IsFetchError reports whether err is (or wraps) a FetchError.
func IsFetchError(err error) bool {
	var fetchError *FetchError
	return errors.As(err, &fetchError)
}

// IsCreateError reports whether err is (or wraps) a CreateError.
func IsCreateError(err error) bool {
	var createError *CreateError
	return errors.As(err, &createError)
}

// StatusCode returns the HTTP status carried by err, or 0 when err
// holds no APIError (e.g., a transport failure).
func StatusCode(err error) int {
	var apiError *APIError
	if errors.As(err, &apiError) {
		return apiError.StatusCode
	}
	return 0
}
