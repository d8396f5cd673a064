package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRegion(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{
			name:    "locality before city",
			address: "Plot 12, Ayyappa Society, Madhapur, Hyderabad",
			want:    "Madhapur",
		},
		{
			name:    "two segments",
			address: "12 MG Road, Hyderabad",
			want:    "12 MG Road",
		},
		{
			name:    "no commas falls back to the whole address",
			address: "Madhapur",
			want:    "Madhapur",
		},
		{
			name:    "empty address",
			address: "",
			want:    "Unknown",
		},
		{
			name:    "blank segment",
			address: "  , Hyderabad",
			want:    "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractRegion(tt.address))
		})
	}
}
