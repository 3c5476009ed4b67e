package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+971 50 123 4567", "971501234567"},
		{"(971) 50-123-4567", "971501234567"},
		{"971501234567", "971501234567"},
		{"", ""},
		{"no digits here", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, digitsOnly(tt.in))
	}
}
