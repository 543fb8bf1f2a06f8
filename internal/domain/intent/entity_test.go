//go:build unit

package intent_test

import (
	"testing"
	"time"

	"engage-api/internal/domain/intent"
	"engage-api/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func activeSpec() intent.OfferSpec {
	return intent.OfferSpec{
		ID:     uuid.New(),
		Status: offer.StatusActive,
		Window: offer.ReconstructWindow(now.Add(-time.Hour), now.Add(time.Hour)),
	}
}

func pendingIntent(customerID *uuid.UUID, expiresAt *time.Time) *intent.Intent {
	return intent.ReconstructIntent(
		uuid.New(), intent.KindStamp, uuid.New(), customerID, uuid.New(),
		intent.StatusPending, 1, "", expiresAt, nil, now.Add(-time.Minute), now.Add(-time.Minute),
	)
}

func TestNewIntent(t *testing.T) {
	creator := uuid.New()

	t.Run("success", func(t *testing.T) {
		it, err := intent.NewIntent(activeSpec(), intent.KindStamp, creator, nil, 3, "birthday bonus", nil, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, it.ID())
		assert.Equal(t, intent.StatusPending, it.Status())
		assert.Equal(t, int32(3), it.Quantity())
		assert.Nil(t, it.CustomerID())
		assert.Nil(t, it.ConsumedAt())
	})

	t.Run("validation", func(t *testing.T) {
		past := now.Add(-time.Second)
		inactive := activeSpec()
		inactive.Status = offer.StatusInactive
		closed := activeSpec()
		closed.Window = offer.ReconstructWindow(now.Add(-2*time.Hour), now.Add(-time.Hour))

		cases := []struct {
			name     string
			spec     intent.OfferSpec
			kind     intent.Kind
			quantity int32
			expires  *time.Time
			errIs    error
		}{
			{name: "invalid kind", spec: activeSpec(), kind: intent.Kind("coupon"), quantity: 1, errIs: intent.ErrInvalidKind},
			{name: "inactive offer", spec: inactive, kind: intent.KindStamp, quantity: 1, errIs: intent.ErrOfferInactive},
			{name: "outside window", spec: closed, kind: intent.KindStamp, quantity: 1, errIs: intent.ErrOfferOutsideWindow},
			{name: "zero quantity", spec: activeSpec(), kind: intent.KindStamp, quantity: 0, errIs: intent.ErrInvalidQuantity},
			{name: "expiry in the past", spec: activeSpec(), kind: intent.KindStamp, quantity: 1, expires: &past, errIs: intent.ErrExpiryInPast},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := intent.NewIntent(tc.spec, tc.kind, creator, nil, tc.quantity, "", tc.expires, now)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestIntent_Consume(t *testing.T) {
	actor := uuid.New()

	t.Run("binds an unbound intent", func(t *testing.T) {
		it := pendingIntent(nil, nil)
		require.NoError(t, it.Consume(actor, now))

		assert.Equal(t, intent.StatusConsumed, it.Status())
		require.NotNil(t, it.CustomerID())
		assert.Equal(t, actor, *it.CustomerID())
		require.NotNil(t, it.ConsumedAt())
		assert.Equal(t, now, *it.ConsumedAt())
	})

	t.Run("keeps an existing binding", func(t *testing.T) {
		it := pendingIntent(&actor, nil)
		require.NoError(t, it.Consume(actor, now))
		assert.Equal(t, actor, *it.CustomerID())
	})

	t.Run("rejects a different customer", func(t *testing.T) {
		bound := uuid.New()
		it := pendingIntent(&bound, nil)
		assert.ErrorIs(t, it.Consume(actor, now), intent.ErrBoundToOther)
	})

	t.Run("expiry wins over binding mismatch", func(t *testing.T) {
		bound := uuid.New()
		expired := now.Add(-time.Minute)
		it := pendingIntent(&bound, &expired)
		assert.ErrorIs(t, it.Consume(actor, now), intent.ErrExpired)
	})

	t.Run("expiry wins over non-pending status", func(t *testing.T) {
		expired := now.Add(-time.Minute)
		it := intent.ReconstructIntent(
			uuid.New(), intent.KindStamp, uuid.New(), &actor, actor,
			intent.StatusClaimed, 1, "", &expired, nil, now, now,
		)
		assert.ErrorIs(t, it.Consume(actor, now), intent.ErrExpired)
	})

	t.Run("non-pending status reports the current state", func(t *testing.T) {
		it := pendingIntent(nil, nil)
		require.NoError(t, it.Consume(actor, now))

		err := it.Consume(actor, now)
		assert.ErrorIs(t, err, intent.ErrInvalidState)
		assert.Contains(t, err.Error(), "consumed")
	})

	t.Run("exactly at expiry is still valid", func(t *testing.T) {
		at := now
		it := pendingIntent(nil, &at)
		assert.NoError(t, it.Consume(actor, now))
	})
}

func TestIntent_RevertConsume(t *testing.T) {
	actor := uuid.New()

	t.Run("unbinds when consume bound the customer", func(t *testing.T) {
		it := pendingIntent(nil, nil)
		require.NoError(t, it.Consume(actor, now))

		it.RevertConsume()

		assert.Equal(t, intent.StatusPending, it.Status())
		assert.Nil(t, it.CustomerID())
		assert.Nil(t, it.ConsumedAt())
	})

	t.Run("keeps a pre-existing binding", func(t *testing.T) {
		it := pendingIntent(&actor, nil)
		require.NoError(t, it.Consume(actor, now))

		it.RevertConsume()

		assert.Equal(t, intent.StatusPending, it.Status())
		require.NotNil(t, it.CustomerID())
		assert.Equal(t, actor, *it.CustomerID())
	})

	t.Run("noop unless consumed", func(t *testing.T) {
		it := pendingIntent(nil, nil)
		it.RevertConsume()
		assert.Equal(t, intent.StatusPending, it.Status())
	})
}

func TestIntent_Finalize(t *testing.T) {
	creator := uuid.New()

	reconstruct := func(status intent.Status) *intent.Intent {
		return intent.ReconstructIntent(
			uuid.New(), intent.KindReferral, uuid.New(), &creator, creator,
			status, 1, "", nil, nil, now, now,
		)
	}

	t.Run("from pending", func(t *testing.T) {
		it := reconstruct(intent.StatusPending)
		noop, err := it.Finalize(creator, now)
		require.NoError(t, err)
		assert.False(t, noop)
		assert.Equal(t, intent.StatusClaimed, it.Status())
	})

	t.Run("from consumed by creator", func(t *testing.T) {
		it := reconstruct(intent.StatusConsumed)
		noop, err := it.Finalize(creator, now)
		require.NoError(t, err)
		assert.False(t, noop)
	})

	t.Run("from consumed by someone else", func(t *testing.T) {
		it := reconstruct(intent.StatusConsumed)
		_, err := it.Finalize(uuid.New(), now)
		assert.ErrorIs(t, err, intent.ErrNotCreator)
	})

	t.Run("already claimed is a noop", func(t *testing.T) {
		it := reconstruct(intent.StatusClaimed)
		noop, err := it.Finalize(creator, now)
		require.NoError(t, err)
		assert.True(t, noop)
	})

	t.Run("canceled cannot be claimed", func(t *testing.T) {
		it := reconstruct(intent.StatusCanceled)
		_, err := it.Finalize(creator, now)
		assert.ErrorIs(t, err, intent.ErrInvalidState)
	})
}

func TestIntent_Cancel(t *testing.T) {
	t.Run("pending and consumed are cancelable", func(t *testing.T) {
		for _, status := range []intent.Status{intent.StatusPending, intent.StatusConsumed} {
			it := intent.ReconstructIntent(
				uuid.New(), intent.KindGift, uuid.New(), nil, uuid.New(),
				status, 1, "", nil, nil, now, now,
			)
			require.NoError(t, it.Cancel())
			assert.Equal(t, intent.StatusCanceled, it.Status())
		}
	})

	t.Run("terminal states are not", func(t *testing.T) {
		for _, status := range []intent.Status{intent.StatusClaimed, intent.StatusCanceled} {
			it := intent.ReconstructIntent(
				uuid.New(), intent.KindGift, uuid.New(), nil, uuid.New(),
				status, 1, "", nil, nil, now, now,
			)
			assert.ErrorIs(t, it.Cancel(), intent.ErrInvalidState)
		}
	})
}
