package request

import (
	"time"

	"engage-api/internal/usecase/commands"
)

type CreateReferralProgramRequest struct {
	Title       string    `json:"title" binding:"required,max=120"`
	ValidFrom   time.Time `json:"valid_from" binding:"required"`
	ValidUntil  time.Time `json:"valid_until" binding:"required"`
	ReferrerCap *int32    `json:"referrer_cap,omitempty" binding:"omitempty,min=0"`
	Reward      string    `json:"reward" binding:"required,max=500"`
}

func (r *CreateReferralProgramRequest) ToCommand() commands.CreateReferralProgramRequest {
	return commands.CreateReferralProgramRequest{
		Title:       r.Title,
		ValidFrom:   r.ValidFrom,
		ValidUntil:  r.ValidUntil,
		ReferrerCap: r.ReferrerCap,
		Reward:      r.Reward,
	}
}

type UpdateReferralProgramRequest struct {
	Title       *string    `json:"title" binding:"omitempty,max=120"`
	ValidFrom   *time.Time `json:"valid_from"`
	ValidUntil  *time.Time `json:"valid_until"`
	ReferrerCap *int32     `json:"referrer_cap" binding:"omitempty,min=0"`
	Reward      *string    `json:"reward" binding:"omitempty,max=500"`
}

func (r *UpdateReferralProgramRequest) ToCommand() commands.UpdateReferralProgramRequest {
	return commands.UpdateReferralProgramRequest{
		Title:       r.Title,
		ValidFrom:   r.ValidFrom,
		ValidUntil:  r.ValidUntil,
		ReferrerCap: r.ReferrerCap,
		Reward:      r.Reward,
	}
}

type JoinReferralProgramRequest struct {
	Note *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

func (r *JoinReferralProgramRequest) ToCommand() commands.JoinReferralProgramRequest {
	return commands.JoinReferralProgramRequest{
		Note: trimmedNote(r.Note),
	}
}
