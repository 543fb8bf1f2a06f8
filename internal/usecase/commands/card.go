package commands

import (
	"context"
	"time"

	domcard "engage-api/internal/domain/card"
	"engage-api/internal/domain/offer"
	"engage-api/internal/pkg/clock"
	"engage-api/internal/pkg/errs"
	"engage-api/internal/pkg/patch"
	"engage-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOfferForbidden   = errs.New("offer not owned by business")
	ErrInvalidStatus    = errs.New("invalid offer status")
	ErrStatusTransition = errs.New("status transition not allowed")
	ErrOfferNotActive   = errs.New("offer is not active")
)

type CreateCardRequest struct {
	Title          string
	ValidFrom      time.Time
	ValidUntil     time.Time
	StampsRequired int32
	Reward         string
}

type UpdateCardRequest struct {
	Title          *string
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	StampsRequired *int32
	Reward         *string
}

type PunchCardRequest struct {
	CustomerID uuid.UUID
	Quantity   int32
	Note       string
}

type CreateCardResult struct {
	CardID uuid.UUID
}

type CardCommands interface {
	CreateCard(ctx context.Context, actor shared.Actor, req CreateCardRequest) (*CreateCardResult, error)
	UpdateCard(ctx context.Context, cardID uuid.UUID, actor shared.Actor, req UpdateCardRequest) error
	ChangeCardStatus(ctx context.Context, cardID uuid.UUID, actor shared.Actor, status string) error
	DeleteCard(ctx context.Context, cardID uuid.UUID, actor shared.Actor) error
	// PunchCard appends punches directly, bypassing the intent flow.
	// Used by merchants stamping at the counter.
	PunchCard(ctx context.Context, cardID uuid.UUID, actor shared.Actor, req PunchCardRequest) error
}

type cardUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCardUseCase(uow shared.UnitOfWork, clk clock.Clock) CardCommands {
	return &cardUseCaseImpl{uow: uow, clock: clk}
}

func (uc *cardUseCaseImpl) CreateCard(ctx context.Context, actor shared.Actor, req CreateCardRequest) (*CreateCardResult, error) {
	if actor.BusinessID == nil {
		return nil, ErrOfferForbidden
	}

	entity, err := domcard.NewCard(*actor.BusinessID, req.Title, req.ValidFrom, req.ValidUntil, req.StampsRequired, req.Reward)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Cards().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateCardResult{CardID: createdID}, nil
}

func (uc *cardUseCaseImpl) UpdateCard(ctx context.Context, cardID uuid.UUID, actor shared.Actor, req UpdateCardRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CardByID(ctx, cardID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}

		entity, err := domcard.NewCard(
			snap.BusinessID,
			patch.Coalesce(req.Title, snap.Title),
			patch.Coalesce(req.ValidFrom, snap.ValidFrom),
			patch.Coalesce(req.ValidUntil, snap.ValidUntil),
			patch.Coalesce(req.StampsRequired, snap.StampsRequired),
			patch.Coalesce(req.Reward, snap.Reward),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		updated := domcard.ReconstructCard(
			snap.ID,
			snap.BusinessID,
			entity.Title(),
			offer.Status(snap.Status),
			entity.Window(),
			entity.StampsRequired(),
			entity.Reward(),
			snap.CreatedAt,
			uc.clock.Now(),
		)
		if err := tx.Cards().Update(ctx, tx.DB(), updated); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *cardUseCaseImpl) ChangeCardStatus(ctx context.Context, cardID uuid.UUID, actor shared.Actor, status string) error {
	next, err := offer.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CardByID(ctx, cardID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}

		entity := cardFromSnapshot(snap)
		if err := entity.ChangeStatus(next); err != nil {
			return errs.Mark(err, ErrStatusTransition)
		}
		if err := tx.Cards().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *cardUseCaseImpl) DeleteCard(ctx context.Context, cardID uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CardByID(ctx, cardID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}
		if err := tx.Cards().Delete(ctx, tx.DB(), cardID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *cardUseCaseImpl) PunchCard(ctx context.Context, cardID uuid.UUID, actor shared.Actor, req PunchCardRequest) error {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return errs.Mark(errs.New("quantity must be at least 1"), ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().CardByID(ctx, cardID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}
		if offer.Status(snap.Status) != offer.StatusActive {
			return ErrOfferNotActive
		}

		if _, err := tx.Punches().Append(ctx, tx.DB(), cardID, req.CustomerID, quantity, req.Note); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func cardFromSnapshot(snap *shared.CardSnapshot) *domcard.Card {
	return domcard.ReconstructCard(
		snap.ID,
		snap.BusinessID,
		snap.Title,
		offer.Status(snap.Status),
		offer.ReconstructWindow(snap.ValidFrom, snap.ValidUntil),
		snap.StampsRequired,
		snap.Reward,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}
