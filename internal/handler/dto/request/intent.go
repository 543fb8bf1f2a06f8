package request

import (
	"strings"
	"time"

	"engage-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateIntentRequest struct {
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Quantity   int32      `json:"quantity" binding:"omitempty,min=1"`
	Note       *string    `json:"note,omitempty" binding:"omitempty,max=500"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

func (r *CreateIntentRequest) ToCommand() commands.CreateIntentRequest {
	return commands.CreateIntentRequest{
		CustomerID: r.CustomerID,
		Quantity:   r.Quantity,
		Note:       trimmedNote(r.Note),
		ExpiresAt:  r.ExpiresAt,
	}
}

func trimmedNote(note *string) string {
	if note == nil {
		return ""
	}
	return strings.TrimSpace(*note)
}
