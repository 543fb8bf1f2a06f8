//go:build unit

package offer_test

import (
	"testing"
	"time"

	"engage-api/internal/domain/offer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"active", "inactive", "finished"} {
		s, err := offer.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := offer.NewStatus("archived")
	assert.ErrorIs(t, err, offer.ErrInvalidStatus)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to offer.Status
		want     bool
	}{
		{offer.StatusActive, offer.StatusInactive, true},
		{offer.StatusActive, offer.StatusFinished, true},
		{offer.StatusInactive, offer.StatusActive, true},
		{offer.StatusFinished, offer.StatusActive, false},
		{offer.StatusFinished, offer.StatusFinished, true},
		{offer.StatusActive, offer.Status("archived"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestWindow(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 1, 0)

	t.Run("rejects an inverted window", func(t *testing.T) {
		_, err := offer.NewWindow(until, from)
		assert.ErrorIs(t, err, offer.ErrInvalidWindow)

		_, err = offer.NewWindow(from, from)
		assert.ErrorIs(t, err, offer.ErrInvalidWindow)
	})

	t.Run("contains is inclusive at both ends", func(t *testing.T) {
		w, err := offer.NewWindow(from, until)
		require.NoError(t, err)

		assert.True(t, w.Contains(from))
		assert.True(t, w.Contains(until))
		assert.True(t, w.Contains(from.Add(time.Hour)))
		assert.False(t, w.Contains(from.Add(-time.Second)))
		assert.False(t, w.Contains(until.Add(time.Second)))
	})
}
