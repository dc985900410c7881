package listingtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferFromTitle(t *testing.T) {
	tests := []struct {
		title        string
		propertyType string
		location     string
	}{
		{"Entire rental unit in Lisbon, Portugal", "Entire rental unit", "Lisbon, Portugal"},
		{"Private room in Brooklyn", "Private room", "Brooklyn"},
		{"Shared loft in Berlin", "Shared loft", "Berlin"},
		{"Room in boutique hotel in Paris", "Room", "boutique hotel in Paris"},
		{"entire cabin in the woods", "entire cabin", "the woods"},
		{"Beautiful seaside apartment", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			pt, loc := InferFromTitle(tt.title)
			assert.Equal(t, tt.propertyType, pt)
			assert.Equal(t, tt.location, loc)
		})
	}
}
