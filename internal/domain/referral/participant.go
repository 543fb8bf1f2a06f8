package referral

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a customer's membership in a referral program. Credited
// counts the finalized referral intents attributed to the customer as
// referrer; it is incremented exactly once per claimed intent.
type Participant struct {
	id         uuid.UUID
	programID  uuid.UUID
	customerID uuid.UUID
	credited   int32
	note       string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewParticipant(programID, customerID uuid.UUID, note string) *Participant {
	return &Participant{
		id:         uuid.New(),
		programID:  programID,
		customerID: customerID,
		credited:   0,
		note:       note,
	}
}

func ReconstructParticipant(id, programID, customerID uuid.UUID, credited int32, note string, createdAt, updatedAt time.Time) *Participant {
	return &Participant{
		id:         id,
		programID:  programID,
		customerID: customerID,
		credited:   credited,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (p *Participant) Credit() {
	p.credited++
}

func (p *Participant) ID() uuid.UUID         { return p.id }
func (p *Participant) ProgramID() uuid.UUID  { return p.programID }
func (p *Participant) CustomerID() uuid.UUID { return p.customerID }
func (p *Participant) Credited() int32       { return p.credited }
func (p *Participant) Note() string          { return p.note }
func (p *Participant) CreatedAt() time.Time  { return p.createdAt }
func (p *Participant) UpdatedAt() time.Time  { return p.updatedAt }
