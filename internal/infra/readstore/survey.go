package readstore

import (
	"context"

	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"
	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SurveyReadStore struct {
	db db.DBTX
}

func NewSurveyReadStore(dbtx db.DBTX) *SurveyReadStore {
	return &SurveyReadStore{db: dbtx}
}

const surveyColumns = `id, business_id, title, status, question, created_at, updated_at`

func (r *SurveyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SurveyView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+surveyColumns+` FROM surveys WHERE id = $1`, pgconv.UUIDToPgtype(id))

	view, err := scanSurveyView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("survey not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find survey by ID", err)
	}
	return view, nil
}

func (r *SurveyReadStore) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*queries.SurveyView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+surveyColumns+` FROM surveys WHERE business_id = $1 ORDER BY created_at DESC`,
		pgconv.UUIDToPgtype(businessID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find surveys", err)
	}
	defer rows.Close()

	var result []*queries.SurveyView
	for rows.Next() {
		view, err := scanSurveyView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan survey row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate survey rows", err)
	}
	return result, nil
}

func (r *SurveyReadStore) FindResponses(ctx context.Context, surveyID uuid.UUID) ([]*queries.SurveyResponseView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, survey_id, customer_id, rating, comment, created_at
		 FROM survey_responses WHERE survey_id = $1 ORDER BY created_at DESC`,
		pgconv.UUIDToPgtype(surveyID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find survey responses", err)
	}
	defer rows.Close()

	var result []*queries.SurveyResponseView
	for rows.Next() {
		var v queries.SurveyResponseView
		if err := rows.Scan(&v.ID, &v.SurveyID, &v.CustomerID, &v.Rating, &v.Comment, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan survey response row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate survey response rows", err)
	}
	return result, nil
}

// AggregateResults pushes the count and average into SQL; an empty survey
// yields zero values rather than NULL.
func (r *SurveyReadStore) AggregateResults(ctx context.Context, surveyID uuid.UUID) (*queries.SurveyResultView, error) {
	v := queries.SurveyResultView{SurveyID: surveyID}
	err := r.db.QueryRow(ctx,
		`SELECT count(*), coalesce(avg(rating), 0)
		 FROM survey_responses WHERE survey_id = $1`,
		pgconv.UUIDToPgtype(surveyID)).Scan(&v.ResponseCount, &v.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate survey results", err)
	}
	return &v, nil
}

func scanSurveyView(row pgx.Row) (*queries.SurveyView, error) {
	var v queries.SurveyView
	err := row.Scan(&v.ID, &v.BusinessID, &v.Title, &v.Status, &v.Question, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
