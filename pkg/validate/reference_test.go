package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBookingReference(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid reference", input: "BK-20260115-4F7A2C", expected: true},
		{name: "Lowercase suffix", input: "BK-20260115-4f7a2c", expected: false},
		{name: "Missing prefix", input: "20260115-4F7A2C", expected: false},
		{name: "Short suffix", input: "BK-20260115-4F7A", expected: false},
		{name: "Short date", input: "BK-202601-4F7A2C", expected: false},
		{name: "Empty string", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBookingReference(tt.input))
		})
	}
}
