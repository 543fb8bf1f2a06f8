//go:build unit

package card_test

import (
	"strings"
	"testing"
	"time"

	"engage-api/internal/domain/card"
	"engage-api/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	businessID := uuid.New()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 6, 0)

	t.Run("success trims the title and starts active", func(t *testing.T) {
		c, err := card.NewCard(businessID, "  Coffee Club  ", from, until, 10, "one free espresso")
		require.NoError(t, err)

		assert.Equal(t, "Coffee Club", c.Title())
		assert.Equal(t, offer.StatusActive, c.Status())
		assert.Equal(t, int32(10), c.StampsRequired())
		assert.True(t, c.OwnedBy(businessID))
		assert.False(t, c.OwnedBy(uuid.New()))
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			title  string
			until  time.Time
			goal   int32
			reward string
			errIs  error
		}{
			{name: "blank title", title: "   ", until: until, goal: 5, errIs: card.ErrEmptyTitle},
			{name: "title too long", title: strings.Repeat("x", card.MaxTitleLength+1), until: until, goal: 5, errIs: card.ErrTitleTooLong},
			{name: "reward too long", title: "ok", until: until, goal: 5, reward: strings.Repeat("x", card.MaxRewardLength+1), errIs: card.ErrRewardTooLong},
			{name: "zero goal", title: "ok", until: until, goal: 0, errIs: card.ErrInvalidGoal},
			{name: "window ends before it starts", title: "ok", until: from.Add(-time.Hour), goal: 5, errIs: offer.ErrInvalidWindow},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := card.NewCard(businessID, tc.title, from, tc.until, tc.goal, tc.reward)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestCard_ChangeStatus(t *testing.T) {
	reconstruct := func(status offer.Status) *card.Card {
		now := time.Now()
		return card.ReconstructCard(
			uuid.New(), uuid.New(), "Coffee Club", status,
			offer.ReconstructWindow(now, now.AddDate(0, 1, 0)),
			10, "", now, now,
		)
	}

	t.Run("active can pause and finish", func(t *testing.T) {
		c := reconstruct(offer.StatusActive)
		require.NoError(t, c.ChangeStatus(offer.StatusInactive))
		require.NoError(t, c.ChangeStatus(offer.StatusActive))
		require.NoError(t, c.ChangeStatus(offer.StatusFinished))
	})

	t.Run("finished is terminal", func(t *testing.T) {
		c := reconstruct(offer.StatusFinished)
		assert.ErrorIs(t, c.ChangeStatus(offer.StatusActive), card.ErrInvalidTransition)
	})
}
