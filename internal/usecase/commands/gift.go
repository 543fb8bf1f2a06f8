package commands

import (
	"context"
	"time"

	domgift "engage-api/internal/domain/gift"
	"engage-api/internal/domain/offer"
	"engage-api/internal/pkg/clock"
	"engage-api/internal/pkg/errs"
	"engage-api/internal/pkg/patch"
	"engage-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateGiftRequest struct {
	Title          string
	ValidFrom      time.Time
	ValidUntil     time.Time
	PerCustomerCap *int32
	TotalCap       *int32
	Description    string
}

type UpdateGiftRequest struct {
	Title          *string
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	PerCustomerCap *int32
	TotalCap       *int32
	Description    *string
}

type CreateGiftResult struct {
	GiftID uuid.UUID
}

type GiftCommands interface {
	CreateGift(ctx context.Context, actor shared.Actor, req CreateGiftRequest) (*CreateGiftResult, error)
	UpdateGift(ctx context.Context, giftID uuid.UUID, actor shared.Actor, req UpdateGiftRequest) error
	ChangeGiftStatus(ctx context.Context, giftID uuid.UUID, actor shared.Actor, status string) error
	DeleteGift(ctx context.Context, giftID uuid.UUID, actor shared.Actor) error
}

type giftUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewGiftUseCase(uow shared.UnitOfWork, clk clock.Clock) GiftCommands {
	return &giftUseCaseImpl{uow: uow, clock: clk}
}

func (uc *giftUseCaseImpl) CreateGift(ctx context.Context, actor shared.Actor, req CreateGiftRequest) (*CreateGiftResult, error) {
	if actor.BusinessID == nil {
		return nil, ErrOfferForbidden
	}

	entity, err := domgift.NewGift(*actor.BusinessID, req.Title, req.ValidFrom, req.ValidUntil, req.PerCustomerCap, req.TotalCap, req.Description)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Gifts().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateGiftResult{GiftID: createdID}, nil
}

func (uc *giftUseCaseImpl) UpdateGift(ctx context.Context, giftID uuid.UUID, actor shared.Actor, req UpdateGiftRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().GiftByID(ctx, giftID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}

		perCustomerCap := snap.PerCustomerCap
		if req.PerCustomerCap != nil {
			perCustomerCap = req.PerCustomerCap
		}
		totalCap := snap.TotalCap
		if req.TotalCap != nil {
			totalCap = req.TotalCap
		}

		entity, err := domgift.NewGift(
			snap.BusinessID,
			patch.Coalesce(req.Title, snap.Title),
			patch.Coalesce(req.ValidFrom, snap.ValidFrom),
			patch.Coalesce(req.ValidUntil, snap.ValidUntil),
			perCustomerCap,
			totalCap,
			patch.Coalesce(req.Description, snap.Description),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		updated := domgift.ReconstructGift(
			snap.ID,
			snap.BusinessID,
			entity.Title(),
			offer.Status(snap.Status),
			entity.Window(),
			entity.PerCustomerCap(),
			entity.TotalCap(),
			entity.Description(),
			snap.CreatedAt,
			uc.clock.Now(),
		)
		if err := tx.Gifts().Update(ctx, tx.DB(), updated); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *giftUseCaseImpl) ChangeGiftStatus(ctx context.Context, giftID uuid.UUID, actor shared.Actor, status string) error {
	next, err := offer.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().GiftByID(ctx, giftID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}

		entity := giftFromSnapshot(snap)
		if err := entity.ChangeStatus(next); err != nil {
			return errs.Mark(err, ErrStatusTransition)
		}
		if err := tx.Gifts().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *giftUseCaseImpl) DeleteGift(ctx context.Context, giftID uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().GiftByID(ctx, giftID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}
		if err := tx.Gifts().Delete(ctx, tx.DB(), giftID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func giftFromSnapshot(snap *shared.GiftSnapshot) *domgift.Gift {
	return domgift.ReconstructGift(
		snap.ID,
		snap.BusinessID,
		snap.Title,
		offer.Status(snap.Status),
		offer.ReconstructWindow(snap.ValidFrom, snap.ValidUntil),
		snap.PerCustomerCap,
		snap.TotalCap,
		snap.Description,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}
