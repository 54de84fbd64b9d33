package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationLabel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"with separator", "Sales Floor - Aisle 4", "Sales Floor"},
		{"multiple separators", "North - Mezzanine - Rack 2", "North"},
		{"no separator", "Entrance", "Entrance"},
		{"surrounding whitespace", "  Stock Room - Bay 1 ", "Stock Room"},
		{"empty", "", "Unlabeled"},
		{"whitespace only", "   ", "Unlabeled"},
		{"plain hyphen kept", "Check-out", "Check-out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LocationLabel(tt.raw))
		})
	}
}
