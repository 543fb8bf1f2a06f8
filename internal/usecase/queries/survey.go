package queries

import (
	"context"

	"github.com/google/uuid"
)

type SurveyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SurveyView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*SurveyView, error)
	ListResponses(ctx context.Context, surveyID uuid.UUID) ([]*SurveyResponseView, error)
	Results(ctx context.Context, surveyID uuid.UUID) (*SurveyResultView, error)
}

type SurveyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SurveyView, error)
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*SurveyView, error)
	FindResponses(ctx context.Context, surveyID uuid.UUID) ([]*SurveyResponseView, error)
	AggregateResults(ctx context.Context, surveyID uuid.UUID) (*SurveyResultView, error)
}

type surveyQueriesImpl struct {
	store SurveyReadStore
}

func NewSurveyQueries(store SurveyReadStore) SurveyQueries {
	return &surveyQueriesImpl{store: store}
}

func (q *surveyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SurveyView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *surveyQueriesImpl) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*SurveyView, error) {
	return q.store.FindByBusiness(ctx, businessID)
}

func (q *surveyQueriesImpl) ListResponses(ctx context.Context, surveyID uuid.UUID) ([]*SurveyResponseView, error) {
	return q.store.FindResponses(ctx, surveyID)
}

func (q *surveyQueriesImpl) Results(ctx context.Context, surveyID uuid.UUID) (*SurveyResultView, error) {
	return q.store.AggregateResults(ctx, surveyID)
}
