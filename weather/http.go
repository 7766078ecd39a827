// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// http.go — the shared HTTP plumbing for providers and the location
// resolver: one GET per call behind a circuit breaker, a per-request
// deadline, and the mapping from transport/status/JSON failures onto the
// error taxonomy.

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/AndrewDonelson/sysinfo"
)

// defaultTimeout bounds every outbound request unless the caller's client
// sets its own.
const defaultTimeout = 10 * time.Second

// defaultClient is shared by providers constructed with a nil *http.Client.
var defaultClient = &http.Client{Timeout: defaultTimeout}

// newBreaker builds the per-provider circuit breaker. The breaker wraps the
// single GET of each Fetch; there is no retry loop, so one Fetch still means
// at most one request.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// statusError carries a non-2xx response through the breaker so it both
// trips the breaker and classifies as api-unavailable.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// getJSON issues one GET to rawURL and decodes the response body into dest.
//
// Failure mapping:
//
//	transport / DNS / connect  -> NetworkError
//	deadline exceeded          -> Timeout
//	non-2xx status             -> ApiUnavailable (includes status + provider id)
//	undecodable body           -> ParseError
//	breaker open               -> ApiUnavailable
func getJSON(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, providerID, rawURL, userAgent string, dest any) error {
	if client == nil {
		client = defaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return sysinfo.Errorf(sysinfo.KindInvalidArgument, "%s: build request: %v", providerID, err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	execute := func() (any, error) {
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			return nil, &statusError{code: resp.StatusCode}
		}
		return resp, nil
	}

	var resp *http.Response
	if cb != nil {
		result, cbErr := cb.Execute(execute)
		if cbErr != nil {
			return classify(providerID, cbErr)
		}
		resp = result.(*http.Response)
	} else {
		result, execErr := execute()
		if execErr != nil {
			return classify(providerID, execErr)
		}
		resp = result.(*http.Response)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return sysinfo.Errorf(sysinfo.KindParseError, "%s: decode response: %v", providerID, err)
	}
	return nil
}

// classify maps a request failure onto the error taxonomy.
func classify(providerID string, err error) error {
	var se *statusError
	switch {
	case errors.As(err, &se):
		return sysinfo.Errorf(sysinfo.KindAPIUnavailable, "%s: status %d", providerID, se.code)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return sysinfo.Errorf(sysinfo.KindAPIUnavailable, "%s: circuit breaker open", providerID)
	case errors.Is(err, context.DeadlineExceeded):
		return sysinfo.Errorf(sysinfo.KindTimeout, "%s: request deadline exceeded", providerID)
	}
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) && ne.Timeout() {
		return sysinfo.Errorf(sysinfo.KindTimeout, "%s: request timed out", providerID)
	}
	return sysinfo.Errorf(sysinfo.KindNetworkError, "%s: %v", providerID, err)
}
