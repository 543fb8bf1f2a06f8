package request

import (
	"strings"

	"engage-api/internal/usecase/commands"
)

type CreateSurveyRequest struct {
	Title    string `json:"title" binding:"required,max=120"`
	Question string `json:"question" binding:"required,max=1000"`
}

func (r *CreateSurveyRequest) ToCommand() commands.CreateSurveyRequest {
	return commands.CreateSurveyRequest{
		Title:    r.Title,
		Question: r.Question,
	}
}

type UpdateSurveyRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=120"`
	Question *string `json:"question" binding:"omitempty,max=1000"`
}

func (r *UpdateSurveyRequest) ToCommand() commands.UpdateSurveyRequest {
	return commands.UpdateSurveyRequest{
		Title:    r.Title,
		Question: r.Question,
	}
}

type RespondSurveyRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

func (r *RespondSurveyRequest) ToCommand() commands.RespondSurveyRequest {
	return commands.RespondSurveyRequest{
		Rating:  r.Rating,
		Comment: strings.TrimSpace(r.Comment),
	}
}
