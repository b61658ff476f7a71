// Package connectivity probes network reachability and classifies network
// errors for user-facing reporting.
package connectivity

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/TheEvilRoot/fynekit/debuglog"
	"github.com/TheEvilRoot/fynekit/internal/constants"
)

const (
	// DialTimeout bounds a single connection attempt.
	DialTimeout = 5 * time.Second
	// RequestTimeout bounds a regular HTTP request.
	RequestTimeout = 15 * time.Second
	// LongTimeout bounds long-running transfers such as file downloads.
	LongTimeout = 30 * time.Second
)

// NewHTTPClient creates an HTTP client with sane timeouts for interactive
// use. Pass RequestTimeout unless the call is a long transfer.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			DisableKeepAlives:     false,
		},
	}
}

// IsNetworkError reports whether err (or anything it wraps) is a network
// failure: timeout, refused connection, DNS resolution, or context
// expiry/cancellation.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// ErrorMessage returns a user-presentable message for a network error.
func ErrorMessage(err error) string {
	if err == nil {
		return "Unknown network error"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Network timeout: connection timed out"
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Op == "dial" {
			return "Network error: cannot connect to server"
		}
		return fmt.Sprintf("Network error: %s", opErr.Error())
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Sprintf("DNS error: cannot resolve hostname (%s)", dnsErr.Name)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timeout: operation took too long"
	}
	if errors.Is(err, context.Canceled) {
		return "Request canceled"
	}

	return fmt.Sprintf("Network error: %s", err.Error())
}

// CheckEndpoint dials addr over TCP and reports whether it accepted the
// connection. The connection is closed immediately.
func CheckEndpoint(ctx context.Context, addr string) error {
	dialer := &net.Dialer{Timeout: DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", addr, err)
	}
	debuglog.CloseWithLog("probe connection", conn)
	return nil
}

// Online reports whether any of the default probe endpoints accepts a TCP
// connection. A single success is enough.
func Online(ctx context.Context) bool {
	for _, addr := range constants.DefaultProbeAddrs {
		if err := CheckEndpoint(ctx, addr); err != nil {
			debuglog.DebugLog("Online: probe %s failed: %v", addr, err)
			continue
		}
		return true
	}
	return false
}
