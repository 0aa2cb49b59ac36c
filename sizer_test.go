package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitsCount32(t *testing.T) {
	tests := []struct {
		name      string
		threshold int64
		want      bool
	}{
		{"one megabyte", 1 << 20, true},
		{"largest representable", math.MaxUint32, true},
		{"four gibibytes wraps", 4 << 30, false},
		{"well past the count range", 1 << 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitsCount32(tt.threshold))
		})
	}
}
