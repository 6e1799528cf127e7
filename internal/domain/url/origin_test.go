package url

import (
	"errors"
	"testing"
)

func TestExtractOrigin_ValidURI(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "https with port",
			uri:      "https://example.com:8443/path?query=1",
			expected: "https://example.com:8443",
		},
		{
			name:     "https without port",
			uri:      "https://example.com/path",
			expected: "https://example.com",
		},
		{
			name:     "http",
			uri:      "http://localhost:8080/app",
			expected: "http://localhost:8080",
		},
		{
			name:     "uppercase host",
			uri:      "https://EXAMPLE.COM/path",
			expected: "https://example.com",
		},
		{
			name:     "uppercase scheme",
			uri:      "HTTPS://example.com/path",
			expected: "https://example.com",
		},
		{
			name:     "https default port omitted",
			uri:      "https://example.com:443/path",
			expected: "https://example.com",
		},
		{
			name:     "http default port omitted",
			uri:      "http://example.com:80/path",
			expected: "http://example.com",
		},
		{
			name:     "https explicit non-default port kept",
			uri:      "https://example.com:8080/path",
			expected: "https://example.com:8080",
		},
		{
			name:     "mixed case with default port",
			uri:      "HTTPS://EXAMPLE.COM:443/path",
			expected: "https://example.com",
		},
		{
			name:     "leading zeros in port",
			uri:      "https://example.com:0443/path",
			expected: "https://example.com",
		},
		{
			name:     "highest port",
			uri:      "https://example.com:65535",
			expected: "https://example.com:65535",
		},
		{
			name:     "ipv6 with explicit port",
			uri:      "https://[::1]:8443/path",
			expected: "https://[::1]:8443",
		},
		{
			name:     "fragment and userinfo dropped",
			uri:      "https://user:pw@example.com/a#b",
			expected: "https://example.com",
		},
		{
			name:     "internationalized host",
			uri:      "https://bücher.example/",
			expected: "https://xn--bcher-kva.example",
		},
		{
			name:     "file scheme",
			uri:      "file:///home/user/index.html",
			expected: "file://",
		},
		{
			name:     "qrc scheme",
			uri:      "qrc:/resources/index.html",
			expected: "qrc://",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, err := ExtractOrigin(tt.uri)
			if err != nil {
				t.Errorf("ExtractOrigin(%q) returned error: %v", tt.uri, err)
				return
			}
			if origin != tt.expected {
				t.Errorf("ExtractOrigin(%q) = %q, want %q", tt.uri, origin, tt.expected)
			}
		})
	}
}

func TestExtractOrigin_InvalidURI(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "empty", uri: ""},
		{name: "blank", uri: "   "},
		{name: "no scheme", uri: "example.com"},
		{name: "no host", uri: "https://"},
		{name: "bad url", uri: "//:bad-url"},
		{name: "port too large", uri: "https://a.test:99999"},
		{name: "port zero", uri: "https://a.test:0"},
		{name: "port overflow", uri: "http://a.test:18446744073709551617"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origin, err := ExtractOrigin(tt.uri)
			if err == nil {
				t.Errorf("ExtractOrigin(%q) should return error, got origin: %q", tt.uri, origin)
				return
			}
			if !errors.Is(err, ErrInvalidOrigin) {
				t.Errorf("ExtractOrigin(%q) error = %v, want ErrInvalidOrigin", tt.uri, err)
			}
		})
	}
}
