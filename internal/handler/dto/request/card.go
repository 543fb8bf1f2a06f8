package request

import (
	"time"

	"engage-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCardRequest struct {
	Title          string    `json:"title" binding:"required,max=120"`
	ValidFrom      time.Time `json:"valid_from" binding:"required"`
	ValidUntil     time.Time `json:"valid_until" binding:"required"`
	StampsRequired int32     `json:"stamps_required" binding:"required,min=1"`
	Reward         string    `json:"reward" binding:"required,max=500"`
}

func (r *CreateCardRequest) ToCommand() commands.CreateCardRequest {
	return commands.CreateCardRequest{
		Title:          r.Title,
		ValidFrom:      r.ValidFrom,
		ValidUntil:     r.ValidUntil,
		StampsRequired: r.StampsRequired,
		Reward:         r.Reward,
	}
}

type UpdateCardRequest struct {
	Title          *string    `json:"title" binding:"omitempty,max=120"`
	ValidFrom      *time.Time `json:"valid_from"`
	ValidUntil     *time.Time `json:"valid_until"`
	StampsRequired *int32     `json:"stamps_required" binding:"omitempty,min=1"`
	Reward         *string    `json:"reward" binding:"omitempty,max=500"`
}

func (r *UpdateCardRequest) ToCommand() commands.UpdateCardRequest {
	return commands.UpdateCardRequest{
		Title:          r.Title,
		ValidFrom:      r.ValidFrom,
		ValidUntil:     r.ValidUntil,
		StampsRequired: r.StampsRequired,
		Reward:         r.Reward,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PunchCardRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Quantity   int32     `json:"quantity" binding:"omitempty,min=1"`
	Note       *string   `json:"note,omitempty" binding:"omitempty,max=500"`
}

func (r *PunchCardRequest) ToCommand() commands.PunchCardRequest {
	return commands.PunchCardRequest{
		CustomerID: r.CustomerID,
		Quantity:   r.Quantity,
		Note:       trimmedNote(r.Note),
	}
}
