package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "+994 (50) 123-45-67", want: "994501234567"},
		{in: "050 123 45 67", want: "0501234567"},
		{in: "0501234567", want: "0501234567"},
		{in: "call me", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePhone(tt.in), "input %q", tt.in)
	}
}
