package url

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// ErrInvalidOrigin is returned when a URL has no usable origin.
var ErrInvalidOrigin = errors.New("invalid origin")

// localSchemes have an origin without a host.
var localSchemes = map[string]bool{
	"file": true,
	"qrc":  true,
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
}

// ExtractOrigin normalizes a URL to its origin: scheme://host[:port].
// Scheme and host are lowercased, internationalized hosts are converted to their
// ASCII form, default ports are dropped and path, query and fragment are removed.
func ExtractOrigin(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("%w: empty url", ErrInvalidOrigin)
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidOrigin, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme == "" {
		return "", fmt.Errorf("%w: missing scheme in %q", ErrInvalidOrigin, rawURL)
	}

	if localSchemes[scheme] {
		return scheme + "://", nil
	}

	hostname := parsed.Hostname()
	if hostname == "" {
		return "", fmt.Errorf("%w: missing host in %q", ErrInvalidOrigin, rawURL)
	}

	host, err := normalizeHost(hostname)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidOrigin, err)
	}

	port, err := normalizePort(parsed.Port())
	if err != nil {
		return "", fmt.Errorf("%w: %w in %q", ErrInvalidOrigin, err, rawURL)
	}
	if port == defaultPorts[scheme] {
		port = ""
	}

	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	if port != "" {
		host += ":" + port
	}

	return scheme + "://" + host, nil
}

// normalizePort strips leading zeros and rejects ports outside 1-65535.
func normalizePort(port string) (string, error) {
	if port == "" {
		return "", nil
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("port %q out of range", port)
	}
	return strconv.Itoa(n), nil
}

func normalizeHost(hostname string) (string, error) {
	if ip := net.ParseIP(hostname); ip != nil {
		return ip.String(), nil
	}
	ascii, err := idna.Lookup.ToASCII(hostname)
	if err != nil {
		return "", err
	}
	return strings.ToLower(ascii), nil
}
