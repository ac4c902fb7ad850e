package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "http://localhost:3000", []string{"http://localhost:3000"}},
		{
			"comma_separated_with_spaces",
			"http://localhost:3000 , https://app.example.com",
			[]string{"http://localhost:3000", "https://app.example.com"},
		},
		{"trailing_comma", "http://localhost:3000,", []string{"http://localhost:3000"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitOrigins(tt.raw))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_LIMIT", "200")
	assert.Equal(t, 200, getEnvInt("TEST_LIMIT", 100))

	t.Setenv("TEST_LIMIT", "not-a-number")
	assert.Equal(t, 100, getEnvInt("TEST_LIMIT", 100))

	t.Setenv("TEST_LIMIT", "-3")
	assert.Equal(t, 100, getEnvInt("TEST_LIMIT", 100))

	assert.Equal(t, 50, getEnvInt("TEST_LIMIT_MISSING", 50))
}
