//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"engage-api/internal/domain/intent"
	"engage-api/internal/domain/user"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/clock"
	"engage-api/internal/pkg/errs"
	"engage-api/internal/usecase/commands"
	"engage-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

// ---- fakes ----

type fakeCommandReads struct {
	card       *shared.CardSnapshot
	cardErr    error
	program    *shared.ReferralProgramSnapshot
	programErr error
	gift       *shared.GiftSnapshot
	giftErr    error
	intent     *shared.IntentSnapshot
	intentErr  error

	countByCreator int32
	countTotal     int32
	countErr       error
}

func (f *fakeCommandReads) CardByID(context.Context, uuid.UUID) (*shared.CardSnapshot, error) {
	return f.card, f.cardErr
}

func (f *fakeCommandReads) ReferralProgramByID(context.Context, uuid.UUID) (*shared.ReferralProgramSnapshot, error) {
	return f.program, f.programErr
}

func (f *fakeCommandReads) GiftByID(context.Context, uuid.UUID) (*shared.GiftSnapshot, error) {
	return f.gift, f.giftErr
}

func (f *fakeCommandReads) SurveyByID(context.Context, uuid.UUID) (*shared.SurveySnapshot, error) {
	return nil, infra.WrapRepoErr("survey not found", nil, infra.KindNotFound)
}

func (f *fakeCommandReads) IntentByID(context.Context, uuid.UUID) (*shared.IntentSnapshot, error) {
	return f.intent, f.intentErr
}

func (f *fakeCommandReads) ParticipantByProgramAndCustomer(context.Context, uuid.UUID, uuid.UUID) (*shared.ParticipantSnapshot, error) {
	return nil, infra.WrapRepoErr("participant not found", nil, infra.KindNotFound)
}

func (f *fakeCommandReads) CountLiveIntents(_ context.Context, _ intent.Kind, _ uuid.UUID, createdBy *uuid.UUID) (int32, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	if createdBy != nil {
		return f.countByCreator, nil
	}
	return f.countTotal, nil
}

type fakeIntentRepo struct {
	created   []*intent.Intent
	createErr error

	consumeAffected int64
	consumeErr      error
	consumeCalls    int

	revertUnbinds []bool
	revertErr     error

	finalizeAffected int64
	finalizeCalls    int

	cancelAffected int64
	cancelCalls    int
}

func (f *fakeIntentRepo) Create(_ context.Context, _ db.DBTX, it *intent.Intent) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = append(f.created, it)
	return it.ID(), nil
}

func (f *fakeIntentRepo) ConsumeCAS(context.Context, db.DBTX, uuid.UUID, uuid.UUID, time.Time) (int64, error) {
	f.consumeCalls++
	return f.consumeAffected, f.consumeErr
}

func (f *fakeIntentRepo) RevertConsume(_ context.Context, _ db.DBTX, _ uuid.UUID, unbind bool) error {
	f.revertUnbinds = append(f.revertUnbinds, unbind)
	return f.revertErr
}

func (f *fakeIntentRepo) FinalizeCAS(context.Context, db.DBTX, uuid.UUID) (int64, error) {
	f.finalizeCalls++
	return f.finalizeAffected, nil
}

func (f *fakeIntentRepo) CancelCAS(context.Context, db.DBTX, uuid.UUID) (int64, error) {
	f.cancelCalls++
	return f.cancelAffected, nil
}

type fakePunchRepo struct {
	appendCalls int
	appendErr   error
}

func (f *fakePunchRepo) Append(context.Context, db.DBTX, uuid.UUID, uuid.UUID, int32, string) (uuid.UUID, error) {
	f.appendCalls++
	return uuid.New(), f.appendErr
}

type fakeParticipantRepo struct {
	ensureCustomers    []uuid.UUID
	ensureErr          error
	incrementCustomers []uuid.UUID
	incrementAffected  int64
}

func (f *fakeParticipantRepo) Ensure(_ context.Context, _ db.DBTX, _ uuid.UUID, customerID uuid.UUID, _ string) (uuid.UUID, error) {
	if f.ensureErr != nil {
		return uuid.Nil, f.ensureErr
	}
	f.ensureCustomers = append(f.ensureCustomers, customerID)
	return uuid.New(), nil
}

func (f *fakeParticipantRepo) IncrementCredited(_ context.Context, _ db.DBTX, _ uuid.UUID, customerID uuid.UUID) (int64, error) {
	f.incrementCustomers = append(f.incrementCustomers, customerID)
	return f.incrementAffected, nil
}

type fakeRedemptionRepo struct {
	appendCalls int
	appendErr   error
}

func (f *fakeRedemptionRepo) Append(context.Context, db.DBTX, uuid.UUID, uuid.UUID, int32, string) (uuid.UUID, error) {
	f.appendCalls++
	return uuid.New(), f.appendErr
}

type fakeTx struct {
	intents      *fakeIntentRepo
	punches      *fakePunchRepo
	participants *fakeParticipantRepo
	redemptions  *fakeRedemptionRepo
	users        *fakeUserRepo
	reads        *fakeCommandReads
}

func (f *fakeTx) Intents() shared.IntentRepository                   { return f.intents }
func (f *fakeTx) Punches() shared.PunchRepository                    { return f.punches }
func (f *fakeTx) Cards() shared.CardRepository                       { return nil }
func (f *fakeTx) ReferralPrograms() shared.ReferralProgramRepository { return nil }
func (f *fakeTx) Participants() shared.ParticipantRepository         { return f.participants }
func (f *fakeTx) Gifts() shared.GiftRepository                       { return nil }
func (f *fakeTx) Redemptions() shared.RedemptionRepository           { return f.redemptions }
func (f *fakeTx) Surveys() shared.SurveyRepository                   { return nil }
func (f *fakeTx) Users() shared.UserRepository                       { return f.users }
func (f *fakeTx) Reads() shared.CommandReads                         { return f.reads }
func (f *fakeTx) DB() db.DBTX                                        { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return f.tx.reads
}

// ---- fixtures ----

type harness struct {
	uc           commands.IntentCommands
	reads        *fakeCommandReads
	intents      *fakeIntentRepo
	punches      *fakePunchRepo
	participants *fakeParticipantRepo
	redemptions  *fakeRedemptionRepo
}

func newHarness() *harness {
	reads := &fakeCommandReads{}
	tx := &fakeTx{
		intents:      &fakeIntentRepo{},
		punches:      &fakePunchRepo{},
		participants: &fakeParticipantRepo{incrementAffected: 1},
		redemptions:  &fakeRedemptionRepo{},
		reads:        reads,
	}
	uow := &fakeUoW{tx: tx}
	uc := commands.NewIntentUseCase(tx.intents, tx.punches, tx.participants, tx.redemptions, uow, clock.NewMockClock(testNow))
	return &harness{
		uc:           uc,
		reads:        reads,
		intents:      tx.intents,
		punches:      tx.punches,
		participants: tx.participants,
		redemptions:  tx.redemptions,
	}
}

func ownerActor(businessID uuid.UUID) shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: user.RoleOwner, BusinessID: &businessID}
}

func customerActor() shared.Actor {
	return shared.Actor{ID: uuid.New(), Role: user.RoleCustomer}
}

func cardSnap(businessID uuid.UUID) *shared.CardSnapshot {
	return &shared.CardSnapshot{
		ID:             uuid.New(),
		BusinessID:     businessID,
		Title:          "Coffee Club",
		Status:         "active",
		ValidFrom:      testNow.Add(-24 * time.Hour),
		ValidUntil:     testNow.Add(24 * time.Hour),
		StampsRequired: 10,
	}
}

func programSnap(referrerCap *int32) *shared.ReferralProgramSnapshot {
	return &shared.ReferralProgramSnapshot{
		ID:          uuid.New(),
		BusinessID:  uuid.New(),
		Title:       "Bring a friend",
		Status:      "active",
		ValidFrom:   testNow.Add(-24 * time.Hour),
		ValidUntil:  testNow.Add(24 * time.Hour),
		ReferrerCap: referrerCap,
	}
}

func giftSnap(perCustomerCap, totalCap *int32) *shared.GiftSnapshot {
	return &shared.GiftSnapshot{
		ID:             uuid.New(),
		BusinessID:     uuid.New(),
		Title:          "Anniversary cake",
		Status:         "active",
		ValidFrom:      testNow.Add(-24 * time.Hour),
		ValidUntil:     testNow.Add(24 * time.Hour),
		PerCustomerCap: perCustomerCap,
		TotalCap:       totalCap,
	}
}

func intentSnap(kind string, status string, mutate ...func(*shared.IntentSnapshot)) *shared.IntentSnapshot {
	snap := &shared.IntentSnapshot{
		ID:        uuid.New(),
		Kind:      kind,
		OfferID:   uuid.New(),
		CreatedBy: uuid.New(),
		Status:    status,
		Quantity:  1,
		CreatedAt: testNow.Add(-time.Hour),
		UpdatedAt: testNow.Add(-time.Hour),
	}
	for _, m := range mutate {
		m(snap)
	}
	return snap
}

func capOf(v int32) *int32 { return &v }

// ---- create ----

func TestIntentUseCase_CreateStampIntent(t *testing.T) {
	t.Run("success defaults quantity to one", func(t *testing.T) {
		h := newHarness()
		businessID := uuid.New()
		h.reads.card = cardSnap(businessID)
		actor := ownerActor(businessID)

		result, err := h.uc.CreateStampIntent(context.Background(), h.reads.card.ID, actor, commands.CreateIntentRequest{})
		require.NoError(t, err)

		require.Len(t, h.intents.created, 1)
		created := h.intents.created[0]
		assert.Equal(t, created.ID(), result.IntentID)
		assert.Equal(t, int32(1), created.Quantity())
		assert.Equal(t, intent.KindStamp, created.Kind())
		assert.Equal(t, actor.ID, created.CreatedBy())
	})

	t.Run("other business owner is forbidden", func(t *testing.T) {
		h := newHarness()
		h.reads.card = cardSnap(uuid.New())

		_, err := h.uc.CreateStampIntent(context.Background(), h.reads.card.ID, ownerActor(uuid.New()), commands.CreateIntentRequest{})
		assert.ErrorIs(t, err, commands.ErrIntentForbidden)
		assert.Empty(t, h.intents.created)
	})

	t.Run("admin bypasses business ownership", func(t *testing.T) {
		h := newHarness()
		h.reads.card = cardSnap(uuid.New())
		admin := shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}

		_, err := h.uc.CreateStampIntent(context.Background(), h.reads.card.ID, admin, commands.CreateIntentRequest{})
		assert.NoError(t, err)
	})

	t.Run("missing card maps to offer not found", func(t *testing.T) {
		h := newHarness()
		h.reads.cardErr = infra.WrapRepoErr("card not found", nil, infra.KindNotFound)

		_, err := h.uc.CreateStampIntent(context.Background(), uuid.New(), ownerActor(uuid.New()), commands.CreateIntentRequest{})
		assert.ErrorIs(t, err, commands.ErrOfferNotFound)
	})

	t.Run("inactive card fails domain validation", func(t *testing.T) {
		h := newHarness()
		businessID := uuid.New()
		h.reads.card = cardSnap(businessID)
		h.reads.card.Status = "inactive"

		_, err := h.uc.CreateStampIntent(context.Background(), h.reads.card.ID, ownerActor(businessID), commands.CreateIntentRequest{})
		assert.True(t, errs.Is(err, commands.ErrDomainValidation))
	})
}

func TestIntentUseCase_CreateReferralIntent(t *testing.T) {
	t.Run("referrer under cap creates an unbound intent", func(t *testing.T) {
		h := newHarness()
		h.reads.program = programSnap(capOf(3))
		h.reads.countByCreator = 2

		_, err := h.uc.CreateReferralIntent(context.Background(), h.reads.program.ID, customerActor(), commands.CreateIntentRequest{})
		require.NoError(t, err)

		require.Len(t, h.intents.created, 1)
		assert.Nil(t, h.intents.created[0].CustomerID())
	})

	t.Run("referrer at cap is rejected", func(t *testing.T) {
		h := newHarness()
		h.reads.program = programSnap(capOf(2))
		h.reads.countByCreator = 2

		_, err := h.uc.CreateReferralIntent(context.Background(), h.reads.program.ID, customerActor(), commands.CreateIntentRequest{})
		assert.ErrorIs(t, err, commands.ErrQuotaExceeded)
		assert.Empty(t, h.intents.created)
	})

	t.Run("nil cap never limits", func(t *testing.T) {
		h := newHarness()
		h.reads.program = programSnap(nil)
		h.reads.countByCreator = 9999

		_, err := h.uc.CreateReferralIntent(context.Background(), h.reads.program.ID, customerActor(), commands.CreateIntentRequest{})
		assert.NoError(t, err)
	})
}

func TestIntentUseCase_CreateGiftIntent(t *testing.T) {
	t.Run("binds the claiming customer", func(t *testing.T) {
		h := newHarness()
		h.reads.gift = giftSnap(nil, nil)
		actor := customerActor()

		_, err := h.uc.CreateGiftIntent(context.Background(), h.reads.gift.ID, actor, commands.CreateIntentRequest{})
		require.NoError(t, err)

		require.Len(t, h.intents.created, 1)
		require.NotNil(t, h.intents.created[0].CustomerID())
		assert.Equal(t, actor.ID, *h.intents.created[0].CustomerID())
	})

	t.Run("per-customer cap reached", func(t *testing.T) {
		h := newHarness()
		h.reads.gift = giftSnap(capOf(1), nil)
		h.reads.countByCreator = 1

		_, err := h.uc.CreateGiftIntent(context.Background(), h.reads.gift.ID, customerActor(), commands.CreateIntentRequest{})
		assert.ErrorIs(t, err, commands.ErrQuotaExceeded)
	})

	t.Run("total cap reached even when the customer has room", func(t *testing.T) {
		h := newHarness()
		h.reads.gift = giftSnap(capOf(5), capOf(100))
		h.reads.countByCreator = 0
		h.reads.countTotal = 100

		_, err := h.uc.CreateGiftIntent(context.Background(), h.reads.gift.ID, customerActor(), commands.CreateIntentRequest{})
		assert.ErrorIs(t, err, commands.ErrQuotaExceeded)
	})
}

// ---- consume ----

func TestIntentUseCase_Consume(t *testing.T) {
	t.Run("stamp consume appends one punch", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "pending")
		h.intents.consumeAffected = 1

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, customerActor())
		require.NoError(t, err)

		assert.Equal(t, 1, h.intents.consumeCalls)
		assert.Equal(t, 1, h.punches.appendCalls)
		assert.Empty(t, h.intents.revertUnbinds)
	})

	t.Run("referral consume records membership for the referrer", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("referral", "pending")
		h.intents.consumeAffected = 1

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, customerActor())
		require.NoError(t, err)

		require.Len(t, h.participants.ensureCustomers, 1)
		assert.Equal(t, h.reads.intent.CreatedBy, h.participants.ensureCustomers[0])
	})

	t.Run("gift consume appends a redemption", func(t *testing.T) {
		h := newHarness()
		actor := customerActor()
		h.reads.intent = intentSnap("gift", "pending", func(s *shared.IntentSnapshot) {
			s.CustomerID = &actor.ID
		})
		h.intents.consumeAffected = 1

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, actor)
		require.NoError(t, err)
		assert.Equal(t, 1, h.redemptions.appendCalls)
	})

	t.Run("lost compare-and-swap is a conflict", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "pending")
		h.intents.consumeAffected = 0

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, customerActor())
		assert.ErrorIs(t, err, commands.ErrIntentConflict)
		assert.Zero(t, h.punches.appendCalls)
	})

	t.Run("failed ledger append reverts and unbinds", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "pending")
		h.intents.consumeAffected = 1
		h.punches.appendErr = errs.New("punches table unavailable")

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, customerActor())
		assert.True(t, errs.Is(err, commands.ErrLedgerAppendFailed))

		require.Len(t, h.intents.revertUnbinds, 1)
		assert.True(t, h.intents.revertUnbinds[0], "consume bound the customer, revert must unbind")
	})

	t.Run("failed ledger append keeps a pre-existing binding", func(t *testing.T) {
		h := newHarness()
		actor := customerActor()
		h.reads.intent = intentSnap("stamp", "pending", func(s *shared.IntentSnapshot) {
			s.CustomerID = &actor.ID
		})
		h.intents.consumeAffected = 1
		h.punches.appendErr = errs.New("punches table unavailable")

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, actor)
		assert.True(t, errs.Is(err, commands.ErrLedgerAppendFailed))

		require.Len(t, h.intents.revertUnbinds, 1)
		assert.False(t, h.intents.revertUnbinds[0])
	})

	t.Run("expired intent never reaches the store", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "pending", func(s *shared.IntentSnapshot) {
			expired := testNow.Add(-time.Minute)
			s.ExpiresAt = &expired
		})

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, customerActor())
		assert.True(t, errs.Is(err, commands.ErrIntentExpired))
		assert.Zero(t, h.intents.consumeCalls)
	})

	t.Run("intent bound to someone else is forbidden", func(t *testing.T) {
		h := newHarness()
		other := uuid.New()
		h.reads.intent = intentSnap("stamp", "pending", func(s *shared.IntentSnapshot) {
			s.CustomerID = &other
		})

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, customerActor())
		assert.True(t, errs.Is(err, commands.ErrIntentForbidden))
	})

	t.Run("already consumed is an invalid state", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "consumed")

		err := h.uc.Consume(context.Background(), h.reads.intent.ID, customerActor())
		assert.True(t, errs.Is(err, commands.ErrIntentStateInvalid))
	})
}

// ---- finalize ----

func TestIntentUseCase_Finalize(t *testing.T) {
	t.Run("pending stamp intent claims without side effects", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "pending")
		h.intents.finalizeAffected = 1

		result, err := h.uc.Finalize(context.Background(), h.reads.intent.ID, shared.Actor{ID: h.reads.intent.CreatedBy, Role: user.RoleCustomer})
		require.NoError(t, err)

		assert.False(t, result.AlreadyClaimed)
		assert.Equal(t, 1, h.intents.finalizeCalls)
		assert.Empty(t, h.participants.incrementCustomers)
	})

	t.Run("referral finalize credits the referrer once", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("referral", "consumed")
		h.intents.finalizeAffected = 1
		creator := h.reads.intent.CreatedBy

		result, err := h.uc.Finalize(context.Background(), h.reads.intent.ID, shared.Actor{ID: creator, Role: user.RoleCustomer})
		require.NoError(t, err)

		assert.False(t, result.AlreadyClaimed)
		require.Len(t, h.participants.incrementCustomers, 1)
		assert.Equal(t, creator, h.participants.incrementCustomers[0])
	})

	t.Run("already claimed is an idempotent noop", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("referral", "claimed")

		result, err := h.uc.Finalize(context.Background(), h.reads.intent.ID, shared.Actor{ID: h.reads.intent.CreatedBy, Role: user.RoleCustomer})
		require.NoError(t, err)

		assert.True(t, result.AlreadyClaimed)
		assert.Zero(t, h.intents.finalizeCalls)
		assert.Empty(t, h.participants.incrementCustomers)
	})

	t.Run("consumed intent finalized by a stranger is forbidden", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("referral", "consumed")

		_, err := h.uc.Finalize(context.Background(), h.reads.intent.ID, customerActor())
		assert.True(t, errs.Is(err, commands.ErrIntentForbidden))
	})

	t.Run("canceled intent cannot be claimed", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "canceled")

		_, err := h.uc.Finalize(context.Background(), h.reads.intent.ID, shared.Actor{ID: h.reads.intent.CreatedBy, Role: user.RoleCustomer})
		assert.True(t, errs.Is(err, commands.ErrIntentStateInvalid))
	})

	t.Run("expired pending intent cannot be claimed", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "pending", func(s *shared.IntentSnapshot) {
			expired := testNow.Add(-time.Minute)
			s.ExpiresAt = &expired
		})
		h.intents.finalizeAffected = 1

		_, err := h.uc.Finalize(context.Background(), h.reads.intent.ID, shared.Actor{ID: h.reads.intent.CreatedBy, Role: user.RoleCustomer})
		assert.True(t, errs.Is(err, commands.ErrIntentExpired))
		assert.Zero(t, h.intents.finalizeCalls)
	})

	t.Run("lost compare-and-swap is a conflict", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "pending")
		h.intents.finalizeAffected = 0

		_, err := h.uc.Finalize(context.Background(), h.reads.intent.ID, shared.Actor{ID: h.reads.intent.CreatedBy, Role: user.RoleCustomer})
		assert.ErrorIs(t, err, commands.ErrIntentConflict)
	})
}

// ---- cancel ----

func TestIntentUseCase_Cancel(t *testing.T) {
	t.Run("creator cancels a pending intent", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "pending")
		h.intents.cancelAffected = 1

		err := h.uc.Cancel(context.Background(), h.reads.intent.ID, shared.Actor{ID: h.reads.intent.CreatedBy, Role: user.RoleCustomer})
		require.NoError(t, err)
		assert.Equal(t, 1, h.intents.cancelCalls)
	})

	t.Run("offer owner cancels someone else's intent", func(t *testing.T) {
		h := newHarness()
		businessID := uuid.New()
		h.reads.card = cardSnap(businessID)
		h.reads.intent = intentSnap("stamp", "pending", func(s *shared.IntentSnapshot) {
			s.OfferID = h.reads.card.ID
		})
		h.intents.cancelAffected = 1

		err := h.uc.Cancel(context.Background(), h.reads.intent.ID, ownerActor(businessID))
		assert.NoError(t, err)
	})

	t.Run("unrelated customer is forbidden", func(t *testing.T) {
		h := newHarness()
		h.reads.card = cardSnap(uuid.New())
		h.reads.intent = intentSnap("stamp", "pending")

		err := h.uc.Cancel(context.Background(), h.reads.intent.ID, customerActor())
		assert.ErrorIs(t, err, commands.ErrIntentForbidden)
		assert.Zero(t, h.intents.cancelCalls)
	})

	t.Run("claimed intent cannot be canceled", func(t *testing.T) {
		h := newHarness()
		h.reads.intent = intentSnap("stamp", "claimed")

		err := h.uc.Cancel(context.Background(), h.reads.intent.ID, shared.Actor{ID: h.reads.intent.CreatedBy, Role: user.RoleCustomer})
		assert.True(t, errs.Is(err, commands.ErrIntentStateInvalid))
	})
}
