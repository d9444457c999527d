package textdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "Identical strings", a: "paypal.com", b: "paypal.com", expected: 0},
		{name: "Case differences only", a: "PayPal.COM", b: "paypal.com", expected: 0},
		{name: "Single substitution", a: "paypa1.com", b: "paypal.com", expected: 1},
		{name: "Transposition costs two", a: "microsfot.com", b: "microsoft.com", expected: 2},
		{name: "Insertion", a: "gogle.com", b: "google.com", expected: 1},
		{name: "Empty vs non-empty", a: "", b: "abc", expected: 3},
		{name: "Both empty", a: "", b: "", expected: 0},
		{name: "Completely different", a: "abc", b: "xyz", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Distance(tt.a, tt.b))
		})
	}
}

// Distance must behave like a metric: identity, symmetry and the
// triangle inequality.
func TestDistance_MetricLaws(t *testing.T) {
	corpus := []string{
		"", "a", "paypal.com", "paypa1.com", "google.com", "gogle.com",
		"microsoft.com", "example.org",
	}

	for _, a := range corpus {
		assert.Equal(t, 0, Distance(a, a), "identity failed for %q", a)
		for _, b := range corpus {
			assert.Equal(t, Distance(a, b), Distance(b, a),
				"symmetry failed for %q/%q", a, b)
			for _, c := range corpus {
				assert.LessOrEqual(t, Distance(a, b), Distance(a, c)+Distance(c, b),
					"triangle inequality failed for %q/%q/%q", a, b, c)
			}
		}
	}
}

func TestIsLookalike(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		threshold int
		expected  bool
	}{
		{name: "Identical is not a lookalike", a: "paypal.com", b: "paypal.com", threshold: 2, expected: false},
		{name: "One edit within threshold", a: "paypa1.com", b: "paypal.com", threshold: 2, expected: true},
		{name: "Beyond threshold", a: "example.org", b: "paypal.com", threshold: 2, expected: false},
		{name: "Zero threshold never matches", a: "paypa1.com", b: "paypal.com", threshold: 0, expected: false},
		{name: "Exactly at threshold", a: "microsfot.com", b: "microsoft.com", threshold: 2, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLookalike(tt.a, tt.b, tt.threshold))
		})
	}
}
