package tiervalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForCSPerMin(t *testing.T) {
	tests := []struct {
		name     string
		csPerMin float64
		expected string
	}{
		{"below every threshold", 1.2, "Iron"},
		{"exactly iron", 3.5, "Iron"},
		{"just under bronze", 3.99, "Iron"},
		{"exactly gold", 5.0, "Gold"},
		{"between thresholds", 6.8, "Diamond"},
		{"exactly master", 7.0, "Master"},
		{"above every threshold", 11.0, "Challenger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TierForCSPerMin(tt.csPerMin))
		})
	}
}
