package executor

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/studiowebux/mensajero/internal/types"
)

const timeoutMessage = "Request timeout - the server did not answer within the request time limit"

// Describe turns a dispatch error into a short actionable message for the response panel.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNoRequest):
		return "Nothing to send - the request is empty"
	case errors.Is(err, ErrInvalidMethod):
		return fmt.Sprintf("Invalid method - use one of %s", strings.Join(types.Methods, ", "))
	case errors.Is(err, context.DeadlineExceeded):
		return timeoutMessage
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "Connection refused - check if server is running and port is correct"
	case errors.Is(err, syscall.ECONNRESET):
		return "Connection reset by server - server may have crashed or network issue occurred"
	case errors.Is(err, syscall.ENETUNREACH):
		return "Network unreachable - check network connection and firewall settings"
	case errors.Is(err, syscall.EHOSTUNREACH):
		return "Host unreachable - check if server is online and accessible"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "DNS resolution failed - verify hostname is correct and network is available"
	}

	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return "TLS certificate signed by unknown authority - the server certificate is not trusted"
	}

	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return "TLS hostname mismatch - certificate doesn't match the requested hostname"
	}

	var certInvalid x509.CertificateInvalidError
	if errors.As(err, &certInvalid) {
		return "TLS certificate is invalid: " + certInvalid.Error()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return timeoutMessage
	}

	return describeMessage(err.Error())
}

// describeMessage classifies errors that only carry text
func describeMessage(errStr string) string {
	if errStr == "" {
		return ""
	}

	errLower := strings.ToLower(errStr)

	// Proxy errors often also contain "connection refused"
	if strings.Contains(errLower, "proxyconnect") || strings.Contains(errLower, "proxy") {
		return "Proxy connection failed - verify the HTTP_PROXY/HTTPS_PROXY environment"
	}

	if strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "dial tcp: lookup") {
		return "DNS resolution failed - verify hostname is correct and network is available"
	}

	if strings.Contains(errLower, "connection refused") {
		return "Connection refused - check if server is running and port is correct"
	}

	if strings.Contains(errLower, "connection reset") {
		return "Connection reset by server - server may have crashed or network issue occurred"
	}

	if strings.Contains(errLower, "network is unreachable") ||
		strings.Contains(errLower, "no route to host") {
		return "Network unreachable - check network connection and firewall settings"
	}

	if strings.Contains(errLower, "tls") ||
		strings.Contains(errLower, "x509") ||
		strings.Contains(errLower, "certificate") {
		return describeTLSMessage(errLower)
	}

	if strings.Contains(errLower, "stopped after") && strings.Contains(errLower, "redirect") {
		return "Too many redirects - check server configuration or URL"
	}

	if strings.Contains(errLower, "unsupported protocol") ||
		strings.Contains(errLower, "no host in request url") ||
		strings.Contains(errLower, "invalid url") ||
		strings.Contains(errLower, "missing protocol scheme") {
		return "Invalid URL - verify the URL format and protocol (http/https)"
	}

	if strings.Contains(errLower, "eof") {
		return "Connection closed unexpectedly - server may have terminated the connection prematurely"
	}

	if strings.Contains(errLower, "deadline exceeded") ||
		strings.Contains(errLower, "timeout") ||
		strings.Contains(errLower, "timed out") {
		return timeoutMessage
	}

	if strings.Contains(errLower, "malformed http") {
		return "Malformed HTTP response - the server did not answer with valid HTTP"
	}

	return "Request failed: " + errStr
}

func describeTLSMessage(errLower string) string {
	switch {
	case strings.Contains(errLower, "unknown authority"):
		return "TLS certificate signed by unknown authority - the server certificate is not trusted"
	case strings.Contains(errLower, "expired"):
		return "TLS certificate has expired - contact server administrator"
	case strings.Contains(errLower, "certificate is valid for"):
		return "TLS hostname mismatch - certificate doesn't match the requested hostname"
	case strings.Contains(errLower, "handshake"):
		return "TLS handshake failed - check TLS version compatibility and cipher suites"
	case strings.Contains(errLower, "certificate required"):
		return "TLS client certificate required - client certificates are not supported"
	}
	return "TLS/SSL error - check the server certificate"
}
