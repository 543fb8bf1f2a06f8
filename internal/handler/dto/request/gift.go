package request

import (
	"time"

	"engage-api/internal/usecase/commands"
)

type CreateGiftRequest struct {
	Title          string    `json:"title" binding:"required,max=120"`
	ValidFrom      time.Time `json:"valid_from" binding:"required"`
	ValidUntil     time.Time `json:"valid_until" binding:"required"`
	PerCustomerCap *int32    `json:"per_customer_cap,omitempty" binding:"omitempty,min=0"`
	TotalCap       *int32    `json:"total_cap,omitempty" binding:"omitempty,min=0"`
	Description    string    `json:"description" binding:"required,max=1000"`
}

func (r *CreateGiftRequest) ToCommand() commands.CreateGiftRequest {
	return commands.CreateGiftRequest{
		Title:          r.Title,
		ValidFrom:      r.ValidFrom,
		ValidUntil:     r.ValidUntil,
		PerCustomerCap: r.PerCustomerCap,
		TotalCap:       r.TotalCap,
		Description:    r.Description,
	}
}

type UpdateGiftRequest struct {
	Title          *string    `json:"title" binding:"omitempty,max=120"`
	ValidFrom      *time.Time `json:"valid_from"`
	ValidUntil     *time.Time `json:"valid_until"`
	PerCustomerCap *int32     `json:"per_customer_cap" binding:"omitempty,min=0"`
	TotalCap       *int32     `json:"total_cap" binding:"omitempty,min=0"`
	Description    *string    `json:"description" binding:"omitempty,max=1000"`
}

func (r *UpdateGiftRequest) ToCommand() commands.UpdateGiftRequest {
	return commands.UpdateGiftRequest{
		Title:          r.Title,
		ValidFrom:      r.ValidFrom,
		ValidUntil:     r.ValidUntil,
		PerCustomerCap: r.PerCustomerCap,
		TotalCap:       r.TotalCap,
		Description:    r.Description,
	}
}
