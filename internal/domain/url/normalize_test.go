package url

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "http scheme unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "file scheme unchanged", input: "file:///path/to/file.html", want: "file:///path/to/file.html"},
		{name: "about scheme unchanged", input: "about:blank", want: "about:blank"},
		{name: "domain gets https", input: "example.com", want: "https://example.com"},
		{name: "domain with path gets https", input: "example.com/path", want: "https://example.com/path"},
		{name: "surrounding spaces trimmed", input: "  example.com ", want: "https://example.com"},
		{name: "words unchanged", input: "hello world", want: "hello world"},
		{name: "single word unchanged", input: "hello", want: "hello"},
		{name: "localhost", input: "localhost", want: "http://localhost"},
		{name: "localhost with port", input: "localhost:5173", want: "http://localhost:5173"},
		{name: "localhost with path", input: "localhost/api/v1", want: "http://localhost/api/v1"},
		{name: "localhost.com is a domain not localhost", input: "localhost.com", want: "https://localhost.com"},
		{name: "ipv4", input: "100.64.0.10", want: "http://100.64.0.10"},
		{name: "ipv4 with port", input: "100.64.0.10:8080", want: "http://100.64.0.10:8080"},
		{name: "ipv6 with port", input: "[::1]:8080", want: "http://[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_ThenExtractOrigin(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Maps.Example.com/some/path", want: "https://maps.example.com"},
		{input: "localhost:8080/app", want: "http://localhost:8080"},
		{input: "https://example.com:443", want: "https://example.com"},
	}

	for _, tt := range tests {
		got, err := ExtractOrigin(Normalize(tt.input))
		if err != nil {
			t.Fatalf("ExtractOrigin(Normalize(%q)) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ExtractOrigin(Normalize(%q)) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
