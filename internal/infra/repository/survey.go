package repository

import (
	"context"

	"engage-api/internal/domain/survey"
	"engage-api/internal/infra"
	"engage-api/internal/infra/db"
	"engage-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SurveyRepository struct{}

func NewSurveyRepository() *SurveyRepository {
	return &SurveyRepository{}
}

const createSurveySQL = `
INSERT INTO surveys (id, business_id, title, status, question)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *SurveyRepository) Create(ctx context.Context, tx db.DBTX, s *survey.Survey) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createSurveySQL,
		pgconv.UUIDToPgtype(s.ID()),
		pgconv.UUIDToPgtype(s.BusinessID()),
		s.Title(),
		s.Status().String(),
		s.Question(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create survey", err)
	}
	return id, nil
}

const updateSurveySQL = `
UPDATE surveys
SET title = $2, status = $3, question = $4, updated_at = now()
WHERE id = $1
`

func (r *SurveyRepository) Update(ctx context.Context, tx db.DBTX, s *survey.Survey) error {
	tag, err := tx.Exec(ctx, updateSurveySQL,
		pgconv.UUIDToPgtype(s.ID()),
		s.Title(),
		s.Status().String(),
		s.Question(),
	)
	if err != nil {
		return wrapWriteErr("failed to update survey", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("survey not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SurveyRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM surveys WHERE id = $1`, pgconv.UUIDToPgtype(id))
	if err != nil {
		return wrapWriteErr("failed to delete survey", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("survey not found", nil, infra.KindNotFound)
	}
	return nil
}

const appendResponseSQL = `
INSERT INTO survey_responses (id, survey_id, customer_id, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *SurveyRepository) AppendResponse(ctx context.Context, tx db.DBTX, resp *survey.Response) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, appendResponseSQL,
		pgconv.UUIDToPgtype(resp.ID()),
		pgconv.UUIDToPgtype(resp.SurveyID()),
		pgconv.UUIDToPgtype(resp.CustomerID()),
		int32(resp.Rating().Value()),
		resp.Comment().String(),
		pgconv.TimeToPgtype(resp.CreatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to append survey response", err)
	}
	return id, nil
}
