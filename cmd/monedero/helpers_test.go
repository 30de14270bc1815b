package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain", input: "42.50", want: 42.50},
		{name: "comma separator", input: "42,50", want: 42.50},
		{name: "whitespace", input: " 10 ", want: 10},
		{name: "zero", input: "0", want: 0},
		{name: "negative", input: "-5", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDayFlag(t *testing.T) {
	t.Run("empty means unset", func(t *testing.T) {
		got, err := parseDayFlag("", false)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("start of day", func(t *testing.T) {
		got, err := parseDayFlag("2024-01-15", false)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *got)
	})

	t.Run("end of day", func(t *testing.T) {
		got, err := parseDayFlag("2024-01-15", true)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC), *got)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := parseDayFlag("15/01/2024", false)
		assert.Error(t, err)
	})
}

func TestExpandPatterns(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := expandPatterns([]string{"/nonexistent/nope.json"})
		assert.Error(t, err)
	})

	t.Run("plain existing file", func(t *testing.T) {
		files, err := expandPatterns([]string{"helpers_test.go"})
		require.NoError(t, err)
		assert.Equal(t, []string{"helpers_test.go"}, files)
	})

	t.Run("glob", func(t *testing.T) {
		files, err := expandPatterns([]string{"helpers*.go"})
		require.NoError(t, err)
		assert.Contains(t, files, "helpers.go")
		assert.Contains(t, files, "helpers_test.go")
	})
}
