package commands

import (
	"context"
	"time"

	"engage-api/internal/domain/offer"
	domreferral "engage-api/internal/domain/referral"
	"engage-api/internal/pkg/clock"
	"engage-api/internal/pkg/errs"
	"engage-api/internal/pkg/patch"
	"engage-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReferralProgramRequest struct {
	Title       string
	ValidFrom   time.Time
	ValidUntil  time.Time
	ReferrerCap *int32
	Reward      string
}

type UpdateReferralProgramRequest struct {
	Title       *string
	ValidFrom   *time.Time
	ValidUntil  *time.Time
	ReferrerCap *int32
	Reward      *string
}

type CreateReferralProgramResult struct {
	ProgramID uuid.UUID
}

type JoinReferralProgramRequest struct {
	Note string
}

type ReferralCommands interface {
	CreateProgram(ctx context.Context, actor shared.Actor, req CreateReferralProgramRequest) (*CreateReferralProgramResult, error)
	UpdateProgram(ctx context.Context, programID uuid.UUID, actor shared.Actor, req UpdateReferralProgramRequest) error
	ChangeProgramStatus(ctx context.Context, programID uuid.UUID, actor shared.Actor, status string) error
	DeleteProgram(ctx context.Context, programID uuid.UUID, actor shared.Actor) error
	// JoinProgram registers the acting customer as a participant. Joining
	// twice is a no-op.
	JoinProgram(ctx context.Context, programID uuid.UUID, actor shared.Actor, req JoinReferralProgramRequest) error
}

type referralUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReferralUseCase(uow shared.UnitOfWork, clk clock.Clock) ReferralCommands {
	return &referralUseCaseImpl{uow: uow, clock: clk}
}

func (uc *referralUseCaseImpl) CreateProgram(ctx context.Context, actor shared.Actor, req CreateReferralProgramRequest) (*CreateReferralProgramResult, error) {
	if actor.BusinessID == nil {
		return nil, ErrOfferForbidden
	}

	entity, err := domreferral.NewProgram(*actor.BusinessID, req.Title, req.ValidFrom, req.ValidUntil, req.ReferrerCap, req.Reward)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.ReferralPrograms().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReferralProgramResult{ProgramID: createdID}, nil
}

func (uc *referralUseCaseImpl) UpdateProgram(ctx context.Context, programID uuid.UUID, actor shared.Actor, req UpdateReferralProgramRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReferralProgramByID(ctx, programID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}

		cap := snap.ReferrerCap
		if req.ReferrerCap != nil {
			cap = req.ReferrerCap
		}

		entity, err := domreferral.NewProgram(
			snap.BusinessID,
			patch.Coalesce(req.Title, snap.Title),
			patch.Coalesce(req.ValidFrom, snap.ValidFrom),
			patch.Coalesce(req.ValidUntil, snap.ValidUntil),
			cap,
			patch.Coalesce(req.Reward, snap.Reward),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		updated := domreferral.ReconstructProgram(
			snap.ID,
			snap.BusinessID,
			entity.Title(),
			offer.Status(snap.Status),
			entity.Window(),
			entity.ReferrerCap(),
			entity.Reward(),
			snap.CreatedAt,
			uc.clock.Now(),
		)
		if err := tx.ReferralPrograms().Update(ctx, tx.DB(), updated); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *referralUseCaseImpl) ChangeProgramStatus(ctx context.Context, programID uuid.UUID, actor shared.Actor, status string) error {
	next, err := offer.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReferralProgramByID(ctx, programID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}

		entity := programFromSnapshot(snap)
		if err := entity.ChangeStatus(next); err != nil {
			return errs.Mark(err, ErrStatusTransition)
		}
		if err := tx.ReferralPrograms().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *referralUseCaseImpl) DeleteProgram(ctx context.Context, programID uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReferralProgramByID(ctx, programID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}
		if err := tx.ReferralPrograms().Delete(ctx, tx.DB(), programID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *referralUseCaseImpl) JoinProgram(ctx context.Context, programID uuid.UUID, actor shared.Actor, req JoinReferralProgramRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReferralProgramByID(ctx, programID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if offer.Status(snap.Status) != offer.StatusActive {
			return ErrOfferNotActive
		}
		if !offer.ReconstructWindow(snap.ValidFrom, snap.ValidUntil).Contains(uc.clock.Now()) {
			return ErrOfferNotActive
		}

		if _, err := tx.Participants().Ensure(ctx, tx.DB(), programID, actor.ID, req.Note); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func programFromSnapshot(snap *shared.ReferralProgramSnapshot) *domreferral.Program {
	return domreferral.ReconstructProgram(
		snap.ID,
		snap.BusinessID,
		snap.Title,
		offer.Status(snap.Status),
		offer.ReconstructWindow(snap.ValidFrom, snap.ValidUntil),
		snap.ReferrerCap,
		snap.Reward,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}
