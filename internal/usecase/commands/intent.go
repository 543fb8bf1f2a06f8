package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"engage-api/internal/domain/intent"
	"engage-api/internal/domain/offer"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/clock"
	"engage-api/internal/pkg/errs"
	"engage-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound           = errs.New("offer not found")
	ErrIntentNotFound          = errs.New("intent not found")
	ErrIntentExpired           = errs.New("intent expired")
	ErrIntentStateInvalid      = errs.New("intent state does not allow this transition")
	ErrIntentForbidden         = errs.New("actor may not act on this intent")
	ErrIntentConflict          = errs.New("intent was modified concurrently")
	ErrQuotaExceeded           = errs.New("intent quota exceeded")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrLedgerAppendFailed      = errs.New("ledger append failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateIntentRequest struct {
	CustomerID *uuid.UUID
	Quantity   int32
	Note       string
	ExpiresAt  *time.Time
}

type CreateIntentResult struct {
	IntentID uuid.UUID
}

type FinalizeIntentResult struct {
	// AlreadyClaimed marks the idempotent no-op path: the intent was
	// claimed before this call and nothing was written.
	AlreadyClaimed bool
}

type IntentCommands interface {
	CreateStampIntent(ctx context.Context, cardID uuid.UUID, actor shared.Actor, req CreateIntentRequest) (*CreateIntentResult, error)
	CreateReferralIntent(ctx context.Context, programID uuid.UUID, actor shared.Actor, req CreateIntentRequest) (*CreateIntentResult, error)
	CreateGiftIntent(ctx context.Context, giftID uuid.UUID, actor shared.Actor, req CreateIntentRequest) (*CreateIntentResult, error)
	Consume(ctx context.Context, intentID uuid.UUID, actor shared.Actor) error
	Finalize(ctx context.Context, intentID uuid.UUID, actor shared.Actor) (*FinalizeIntentResult, error)
	Cancel(ctx context.Context, intentID uuid.UUID, actor shared.Actor) error
}

type intentUseCaseImpl struct {
	intentRepo      shared.IntentRepository
	punchRepo       shared.PunchRepository
	participantRepo shared.ParticipantRepository
	redemptionRepo  shared.RedemptionRepository
	uow             shared.UnitOfWork
	clock           clock.Clock
}

func NewIntentUseCase(
	intentRepo shared.IntentRepository,
	punchRepo shared.PunchRepository,
	participantRepo shared.ParticipantRepository,
	redemptionRepo shared.RedemptionRepository,
	uow shared.UnitOfWork,
	clk clock.Clock,
) IntentCommands {
	return &intentUseCaseImpl{
		intentRepo:      intentRepo,
		punchRepo:       punchRepo,
		participantRepo: participantRepo,
		redemptionRepo:  redemptionRepo,
		uow:             uow,
		clock:           clk,
	}
}

func (uc *intentUseCaseImpl) CreateStampIntent(ctx context.Context, cardID uuid.UUID, actor shared.Actor, req CreateIntentRequest) (*CreateIntentResult, error) {
	snap, err := uc.uow.CommandReads().CardByID(ctx, cardID)
	if err != nil {
		return nil, mapOfferReadErr(err)
	}
	if !actor.OwnsBusiness(snap.BusinessID) {
		return nil, ErrIntentForbidden
	}

	spec := intent.OfferSpec{
		ID:     snap.ID,
		Status: offer.Status(snap.Status),
		Window: offer.ReconstructWindow(snap.ValidFrom, snap.ValidUntil),
	}
	return uc.createIntent(ctx, spec, intent.KindStamp, actor.ID, req.CustomerID, req)
}

func (uc *intentUseCaseImpl) CreateReferralIntent(ctx context.Context, programID uuid.UUID, actor shared.Actor, req CreateIntentRequest) (*CreateIntentResult, error) {
	reads := uc.uow.CommandReads()
	snap, err := reads.ReferralProgramByID(ctx, programID)
	if err != nil {
		return nil, mapOfferReadErr(err)
	}

	prior, err := reads.CountLiveIntents(ctx, intent.KindReferral, programID, &actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if intent.NewAllowance(snap.ReferrerCap, prior).ReachedCap() {
		return nil, ErrQuotaExceeded
	}

	spec := intent.OfferSpec{
		ID:     snap.ID,
		Status: offer.Status(snap.Status),
		Window: offer.ReconstructWindow(snap.ValidFrom, snap.ValidUntil),
	}
	// The bound customer is the referred friend, known only once they
	// consume. The referrer is recorded as creator.
	return uc.createIntent(ctx, spec, intent.KindReferral, actor.ID, req.CustomerID, req)
}

func (uc *intentUseCaseImpl) CreateGiftIntent(ctx context.Context, giftID uuid.UUID, actor shared.Actor, req CreateIntentRequest) (*CreateIntentResult, error) {
	reads := uc.uow.CommandReads()
	snap, err := reads.GiftByID(ctx, giftID)
	if err != nil {
		return nil, mapOfferReadErr(err)
	}

	mine, err := reads.CountLiveIntents(ctx, intent.KindGift, giftID, &actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if intent.NewAllowance(snap.PerCustomerCap, mine).ReachedCap() {
		return nil, ErrQuotaExceeded
	}
	all, err := reads.CountLiveIntents(ctx, intent.KindGift, giftID, nil)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if intent.NewAllowance(snap.TotalCap, all).ReachedCap() {
		return nil, ErrQuotaExceeded
	}

	spec := intent.OfferSpec{
		ID:     snap.ID,
		Status: offer.Status(snap.Status),
		Window: offer.ReconstructWindow(snap.ValidFrom, snap.ValidUntil),
	}
	// Gift claims are always bound to the claiming customer.
	customerID := actor.ID
	return uc.createIntent(ctx, spec, intent.KindGift, actor.ID, &customerID, req)
}

func (uc *intentUseCaseImpl) createIntent(
	ctx context.Context,
	spec intent.OfferSpec,
	kind intent.Kind,
	createdBy uuid.UUID,
	customerID *uuid.UUID,
	req CreateIntentRequest,
) (*CreateIntentResult, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	entity, err := intent.NewIntent(spec, kind, createdBy, customerID, quantity, req.Note, req.ExpiresAt, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		id, createErr := uc.intentRepo.Create(ctx, dbtx, entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateIntentResult{IntentID: createdID}, nil
}

// Consume runs the two-step saga: a compare-and-swap on the intent row,
// then the kind-specific ledger append. The steps deliberately use
// implicit transactions; a failed append is compensated by reverting the
// intent to pending.
func (uc *intentUseCaseImpl) Consume(ctx context.Context, intentID uuid.UUID, actor shared.Actor) error {
	snap, err := uc.uow.CommandReads().IntentByID(ctx, intentID)
	if err != nil {
		return mapIntentReadErr(err)
	}

	now := uc.clock.Now()
	entity := reconstructIntent(snap)
	if guardErr := entity.CanConsume(actor.ID, now); guardErr != nil {
		return mapGuardErr(guardErr)
	}

	return uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, casErr := uc.intentRepo.ConsumeCAS(ctx, dbtx, intentID, actor.ID, now)
		if casErr != nil {
			return errs.Mark(casErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			// The guard passed on a stale read: someone else won the CAS.
			return ErrIntentConflict
		}

		if ledgerErr := uc.appendLedger(ctx, dbtx, snap, actor.ID); ledgerErr != nil {
			unbind := snap.CustomerID == nil
			if revertErr := uc.intentRepo.RevertConsume(ctx, dbtx, intentID, unbind); revertErr != nil {
				slog.Error("failed to revert intent after ledger append failure",
					"intent_id", intentID.String(),
					"error", revertErr.Error())
			}
			return errs.Mark(ledgerErr, ErrLedgerAppendFailed)
		}
		return nil
	})
}

func (uc *intentUseCaseImpl) appendLedger(ctx context.Context, dbtx db.DBTX, snap *shared.IntentSnapshot, actorID uuid.UUID) error {
	switch intent.Kind(snap.Kind) {
	case intent.KindStamp:
		_, err := uc.punchRepo.Append(ctx, dbtx, snap.OfferID, actorID, snap.Quantity, snap.Note)
		return err
	case intent.KindReferral:
		// Membership for the referrer; the credit itself lands on finalize.
		_, err := uc.participantRepo.Ensure(ctx, dbtx, snap.OfferID, snap.CreatedBy, "")
		return err
	case intent.KindGift:
		_, err := uc.redemptionRepo.Append(ctx, dbtx, snap.OfferID, actorID, snap.Quantity, snap.Note)
		return err
	default:
		return errs.New("unknown intent kind: " + snap.Kind)
	}
}

func (uc *intentUseCaseImpl) Finalize(ctx context.Context, intentID uuid.UUID, actor shared.Actor) (*FinalizeIntentResult, error) {
	var result FinalizeIntentResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().IntentByID(ctx, intentID)
		if readErr != nil {
			return mapIntentReadErr(readErr)
		}

		entity := reconstructIntent(snap)
		noop, guardErr := entity.CanFinalize(actor.ID)
		if guardErr != nil {
			return mapGuardErr(guardErr)
		}
		if noop {
			result.AlreadyClaimed = true
			return nil
		}
		if entity.HasExpired(uc.clock.Now()) {
			return ErrIntentExpired
		}

		affected, casErr := tx.Intents().FinalizeCAS(ctx, tx.DB(), intentID)
		if casErr != nil {
			return errs.Mark(casErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrIntentConflict
		}

		if intent.Kind(snap.Kind) == intent.KindReferral {
			if _, err := tx.Participants().Ensure(ctx, tx.DB(), snap.OfferID, snap.CreatedBy, ""); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			credited, err := tx.Participants().IncrementCredited(ctx, tx.DB(), snap.OfferID, snap.CreatedBy)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if credited == 0 {
				return errs.Mark(errs.New("participant row missing during credit"), ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (uc *intentUseCaseImpl) Cancel(ctx context.Context, intentID uuid.UUID, actor shared.Actor) error {
	snap, err := uc.uow.CommandReads().IntentByID(ctx, intentID)
	if err != nil {
		return mapIntentReadErr(err)
	}

	if actor.ID != snap.CreatedBy {
		owns, ownErr := uc.actorOwnsOffer(ctx, snap, actor)
		if ownErr != nil {
			return ownErr
		}
		if !owns {
			return ErrIntentForbidden
		}
	}

	entity := reconstructIntent(snap)
	if guardErr := entity.Cancel(); guardErr != nil {
		return mapGuardErr(guardErr)
	}

	return uc.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		affected, casErr := uc.intentRepo.CancelCAS(ctx, dbtx, intentID)
		if casErr != nil {
			return errs.Mark(casErr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrIntentConflict
		}
		return nil
	})
}

func (uc *intentUseCaseImpl) actorOwnsOffer(ctx context.Context, snap *shared.IntentSnapshot, actor shared.Actor) (bool, error) {
	reads := uc.uow.CommandReads()

	var businessID uuid.UUID
	switch intent.Kind(snap.Kind) {
	case intent.KindStamp:
		card, err := reads.CardByID(ctx, snap.OfferID)
		if err != nil {
			return false, mapOfferReadErr(err)
		}
		businessID = card.BusinessID
	case intent.KindReferral:
		prog, err := reads.ReferralProgramByID(ctx, snap.OfferID)
		if err != nil {
			return false, mapOfferReadErr(err)
		}
		businessID = prog.BusinessID
	case intent.KindGift:
		g, err := reads.GiftByID(ctx, snap.OfferID)
		if err != nil {
			return false, mapOfferReadErr(err)
		}
		businessID = g.BusinessID
	default:
		return false, ErrOfferNotFound
	}
	return actor.OwnsBusiness(businessID), nil
}

func reconstructIntent(snap *shared.IntentSnapshot) *intent.Intent {
	return intent.ReconstructIntent(
		snap.ID,
		intent.Kind(snap.Kind),
		snap.OfferID,
		snap.CustomerID,
		snap.CreatedBy,
		intent.Status(snap.Status),
		snap.Quantity,
		snap.Note,
		snap.ExpiresAt,
		snap.ConsumedAt,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}

func mapGuardErr(err error) error {
	switch {
	case errors.Is(err, intent.ErrExpired):
		return errs.Mark(err, ErrIntentExpired)
	case errors.Is(err, intent.ErrInvalidState):
		return errs.Mark(err, ErrIntentStateInvalid)
	case errors.Is(err, intent.ErrBoundToOther), errors.Is(err, intent.ErrNotCreator):
		return errs.Mark(err, ErrIntentForbidden)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}

func mapOfferReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrOfferNotFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

func mapIntentReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrIntentNotFound
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
