package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	tests := []struct {
		value  float64
		places int32
		want   string
	}{
		{2.675, 2, "2.67"},
		{160.255, 2, "160.25"},
		{24.567, 2, "24.57"},
		{0.42317, 4, "0.4232"},
		{173, 2, "173.00"},
		{1234567.0, 0, "1234567"},
		{-1.005, 2, "-1.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fixed(tt.value, tt.places), "fixed(%v, %d)", tt.value, tt.places)
	}
}

func TestDisplayHelpers(t *testing.T) {
	assert.Equal(t, "$0.4232", usd(0.42317, 4))
	assert.Equal(t, "12.50%", percent(12.5, 2))
	assert.Equal(t, "Bullish", capitalize("BULLISH"))
	assert.Equal(t, "", capitalize(""))
	assert.Nil(t, optional("  "))
	assert.Equal(t, "NYSE", *optional(" NYSE "))
}
