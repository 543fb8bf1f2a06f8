package commands

import (
	"context"
	"errors"

	"engage-api/internal/domain/offer"
	domsurvey "engage-api/internal/domain/survey"
	"engage-api/internal/pkg/clock"
	"engage-api/internal/pkg/errs"
	"engage-api/internal/pkg/patch"
	"engage-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSurveyClosed = errs.New("survey is not accepting responses")

type CreateSurveyRequest struct {
	Title    string
	Question string
}

type UpdateSurveyRequest struct {
	Title    *string
	Question *string
}

type RespondSurveyRequest struct {
	Rating  int
	Comment string
}

type CreateSurveyResult struct {
	SurveyID uuid.UUID
}

type RespondSurveyResult struct {
	ResponseID uuid.UUID
}

type SurveyCommands interface {
	CreateSurvey(ctx context.Context, actor shared.Actor, req CreateSurveyRequest) (*CreateSurveyResult, error)
	UpdateSurvey(ctx context.Context, surveyID uuid.UUID, actor shared.Actor, req UpdateSurveyRequest) error
	ChangeSurveyStatus(ctx context.Context, surveyID uuid.UUID, actor shared.Actor, status string) error
	DeleteSurvey(ctx context.Context, surveyID uuid.UUID, actor shared.Actor) error
	Respond(ctx context.Context, surveyID uuid.UUID, actor shared.Actor, req RespondSurveyRequest) (*RespondSurveyResult, error)
}

type surveyUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSurveyUseCase(uow shared.UnitOfWork, clk clock.Clock) SurveyCommands {
	return &surveyUseCaseImpl{uow: uow, clock: clk}
}

func (uc *surveyUseCaseImpl) CreateSurvey(ctx context.Context, actor shared.Actor, req CreateSurveyRequest) (*CreateSurveyResult, error) {
	if actor.BusinessID == nil {
		return nil, ErrOfferForbidden
	}

	entity, err := domsurvey.NewSurvey(*actor.BusinessID, req.Title, req.Question)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Surveys().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateSurveyResult{SurveyID: createdID}, nil
}

func (uc *surveyUseCaseImpl) UpdateSurvey(ctx context.Context, surveyID uuid.UUID, actor shared.Actor, req UpdateSurveyRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SurveyByID(ctx, surveyID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}

		entity, err := domsurvey.NewSurvey(
			snap.BusinessID,
			patch.Coalesce(req.Title, snap.Title),
			patch.Coalesce(req.Question, snap.Question),
		)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		updated := domsurvey.ReconstructSurvey(
			snap.ID,
			snap.BusinessID,
			entity.Title(),
			offer.Status(snap.Status),
			entity.Question(),
			snap.CreatedAt,
			uc.clock.Now(),
		)
		if err := tx.Surveys().Update(ctx, tx.DB(), updated); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *surveyUseCaseImpl) ChangeSurveyStatus(ctx context.Context, surveyID uuid.UUID, actor shared.Actor, status string) error {
	next, err := offer.NewStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidStatus)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SurveyByID(ctx, surveyID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}

		entity := surveyFromSnapshot(snap)
		if err := entity.ChangeStatus(next); err != nil {
			return errs.Mark(err, ErrStatusTransition)
		}
		if err := tx.Surveys().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *surveyUseCaseImpl) DeleteSurvey(ctx context.Context, surveyID uuid.UUID, actor shared.Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SurveyByID(ctx, surveyID)
		if err != nil {
			return mapOfferReadErr(err)
		}
		if !actor.OwnsBusiness(snap.BusinessID) {
			return ErrOfferForbidden
		}
		if err := tx.Surveys().Delete(ctx, tx.DB(), surveyID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *surveyUseCaseImpl) Respond(ctx context.Context, surveyID uuid.UUID, actor shared.Actor, req RespondSurveyRequest) (*RespondSurveyResult, error) {
	var responseID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().SurveyByID(ctx, surveyID)
		if err != nil {
			return mapOfferReadErr(err)
		}

		entity := surveyFromSnapshot(snap)
		response, err := domsurvey.NewResponse(entity, actor.ID, req.Rating, req.Comment, uc.clock.Now())
		if err != nil {
			if errors.Is(err, domsurvey.ErrSurveyNotActive) {
				return ErrSurveyClosed
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Surveys().AppendResponse(ctx, tx.DB(), response)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		responseID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &RespondSurveyResult{ResponseID: responseID}, nil
}

func surveyFromSnapshot(snap *shared.SurveySnapshot) *domsurvey.Survey {
	return domsurvey.ReconstructSurvey(
		snap.ID,
		snap.BusinessID,
		snap.Title,
		offer.Status(snap.Status),
		snap.Question,
		snap.CreatedAt,
		snap.UpdatedAt,
	)
}
