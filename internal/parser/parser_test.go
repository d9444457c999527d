package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Headers(t *testing.T) {
	raw := "From: Alice <alice@PayPal.com>\r\n" +
		"To: bob@example.com\r\n" +
		"Subject: Monthly statement\r\n" +
		"\r\n" +
		"Hello Bob,\nyour statement is ready.\n"

	msg := Parse(raw)

	assert.Equal(t, "Alice <alice@PayPal.com>", msg.Sender)
	assert.Equal(t, "paypal.com", msg.SenderDomain)
	assert.Equal(t, "Monthly statement", msg.Subject)
	assert.Contains(t, msg.Body, "Hello Bob")
	assert.NotContains(t, msg.Body, "Subject:")
}

func TestParse_Degradation(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		senderDomain string
		subject      string
		bodyContains string
	}{
		{
			name: "Empty input",
			raw:  "",
		},
		{
			name:         "No headers at all",
			raw:          "just some text\nwith no structure",
			bodyContains: "just some text",
		},
		{
			name:         "From without an address",
			raw:          "From: mailer daemon\n\nhi",
			bodyContains: "hi",
		},
		{
			name:         "Binary-ish garbage",
			raw:          "\x00\x01\x02\xff",
			bodyContains: "\x00",
		},
		{
			name:         "Headers below body text are still found",
			raw:          "greetings\nFrom: eve@evil.com\nSubject: hi",
			senderDomain: "evil.com",
			subject:      "hi",
			bodyContains: "greetings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Parse(tt.raw)
			assert.NotNil(t, msg)
			assert.Equal(t, tt.senderDomain, msg.SenderDomain)
			assert.Equal(t, tt.subject, msg.Subject)
			if tt.bodyContains != "" {
				assert.Contains(t, msg.Body, tt.bodyContains)
			}
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		expected string
	}{
		{name: "Bare address", from: "alice@paypal.com", expected: "paypal.com"},
		{name: "Display name with brackets", from: "Alice <alice@PayPal.Com>", expected: "paypal.com"},
		{name: "No at sign", from: "mailer daemon", expected: ""},
		{name: "Empty", from: "", expected: ""},
		{name: "Trailing punctuation", from: "From bounce <x@google.com.>", expected: "google.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractDomain(tt.from))
		})
	}
}

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "Scheme-prefixed URL",
			text:     "click https://evil.com/login now",
			expected: []string{"https://evil.com/login"},
		},
		{
			name:     "IP literal URL",
			text:     "go to http://192.168.1.1/login today",
			expected: []string{"http://192.168.1.1/login"},
		},
		{
			name:     "Userinfo spoof without scheme",
			text:     "visit paypal.com@evil.com/verify",
			expected: []string{"paypal.com@evil.com/verify"},
		},
		{
			name:     "Bare host with path",
			text:     "see evil.com/reset for details",
			expected: []string{"evil.com/reset"},
		},
		{
			name:     "Bare domain mention is not a URL",
			text:     "we are paypal.com and we never ask for passwords",
			expected: []string{},
		},
		{
			name:     "Duplicates and order preserved",
			text:     "http://a.com/x then http://b.com/y then http://a.com/x",
			expected: []string{"http://a.com/x", "http://b.com/y", "http://a.com/x"},
		},
		{
			name:     "Trailing punctuation trimmed",
			text:     "see https://evil.com/login.",
			expected: []string{"https://evil.com/login"},
		},
		{
			name:     "No URLs",
			text:     "nothing to see here",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractURLs(tt.text))
		})
	}
}
