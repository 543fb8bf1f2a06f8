//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor_RoundTrip(t *testing.T) {
	id := uuid.New()
	at := time.Date(2026, 4, 2, 15, 30, 45, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(at, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)
	require.NoError(t, err)

	assert.True(t, gotTime.Equal(at), "expected %v, got %v", at, gotTime)
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	encode := func(raw string) string {
		return base64.URLEncoding.EncodeToString([]byte(raw))
	}

	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%%"},
		{name: "unknown version", cursor: encode("v2:123-" + uuid.NewString())},
		{name: "missing uuid", cursor: encode("v1:123456")},
		{name: "timestamp not a number", cursor: encode("v1:abc-" + uuid.NewString())},
		{name: "malformed uuid", cursor: encode("v1:123-not-a-uuid")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero falls back to default", limit: 0, want: 20},
		{name: "negative falls back to default", limit: -5, want: 20},
		{name: "in range", limit: 50, want: 50},
		{name: "capped at maximum", limit: 1000, want: queries.MaxListLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, queries.ValidateLimit(tc.limit))
		})
	}
}
