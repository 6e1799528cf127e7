// Package url normalizes user input and URLs into web origins.
package url

import (
	"net"
	"strings"
)

// Normalize turns a bare host typed on the command line into a URL.
// Input that already carries a scheme, or that does not look like a host, is returned unchanged.
// Loopback and IP hosts get http://, everything else https://.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || strings.ContainsAny(input, " \t") {
		return input
	}
	if strings.Contains(input, "://") || strings.HasPrefix(input, "about:") || strings.HasPrefix(input, "file:") {
		return input
	}

	host, _, _ := strings.Cut(input, "/")
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	switch {
	case host == "localhost", net.ParseIP(host) != nil:
		return "http://" + input
	case strings.Contains(host, "."):
		return "https://" + input
	default:
		return input
	}
}
