package response

import (
	"time"

	"engage-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type SurveyResponseDTO struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Question   string    `json:"question"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromSurveyView(v *queries.SurveyView) *SurveyResponseDTO {
	return copied[SurveyResponseDTO](v)
}

func FromSurveyList(views []*queries.SurveyView) []*SurveyResponseDTO {
	items := make([]*SurveyResponseDTO, len(views))
	for i, v := range views {
		items[i] = FromSurveyView(v)
	}
	return items
}

type SurveyAnswerResponse struct {
	ID         uuid.UUID `json:"id"`
	SurveyID   uuid.UUID `json:"survey_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromSurveyAnswerList(views []*queries.SurveyResponseView) []*SurveyAnswerResponse {
	items := make([]*SurveyAnswerResponse, len(views))
	for i, v := range views {
		items[i] = copied[SurveyAnswerResponse](v)
	}
	return items
}

type SurveyResultResponse struct {
	SurveyID      uuid.UUID `json:"survey_id"`
	ResponseCount int64     `json:"response_count"`
	AverageRating float64   `json:"average_rating"`
}

func FromSurveyResultView(v *queries.SurveyResultView) *SurveyResultResponse {
	return copied[SurveyResultResponse](v)
}
