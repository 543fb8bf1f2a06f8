package shared

import (
	"context"
	"time"

	"engage-api/internal/domain/card"
	"engage-api/internal/domain/gift"
	"engage-api/internal/domain/intent"
	"engage-api/internal/domain/referral"
	"engage-api/internal/domain/survey"
	"engage-api/internal/domain/user"
	"engage-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: validation reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Intents() IntentRepository
	Punches() PunchRepository
	Cards() CardRepository
	ReferralPrograms() ReferralProgramRepository
	Participants() ParticipantRepository
	Gifts() GiftRepository
	Redemptions() RedemptionRepository
	Surveys() SurveyRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads supplies the snapshots commands validate against before
// writing. Kept separate from the query-side read stores so the write
// path never depends on presentation views.
type CommandReads interface {
	CardByID(ctx context.Context, id uuid.UUID) (*CardSnapshot, error)
	ReferralProgramByID(ctx context.Context, id uuid.UUID) (*ReferralProgramSnapshot, error)
	GiftByID(ctx context.Context, id uuid.UUID) (*GiftSnapshot, error)
	SurveyByID(ctx context.Context, id uuid.UUID) (*SurveySnapshot, error)
	IntentByID(ctx context.Context, id uuid.UUID) (*IntentSnapshot, error)
	ParticipantByProgramAndCustomer(ctx context.Context, programID, customerID uuid.UUID) (*ParticipantSnapshot, error)
	// CountLiveIntents counts intents for an offer that are not canceled,
	// optionally narrowed to a creator. Quota checks run on this number.
	CountLiveIntents(ctx context.Context, kind intent.Kind, offerID uuid.UUID, createdBy *uuid.UUID) (int32, error)
}

type IntentRepository interface {
	Create(ctx context.Context, tx db.DBTX, it *intent.Intent) (uuid.UUID, error)
	// ConsumeCAS flips pending to consumed in one statement and reports
	// the number of rows updated. Zero means another caller won the race
	// or the intent left pending since it was read.
	ConsumeCAS(ctx context.Context, tx db.DBTX, id, customerID uuid.UUID, consumedAt time.Time) (int64, error)
	// RevertConsume compensates a consumed intent back to pending.
	// unbind clears the customer binding made during consume.
	RevertConsume(ctx context.Context, tx db.DBTX, id uuid.UUID, unbind bool) error
	FinalizeCAS(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
	CancelCAS(ctx context.Context, tx db.DBTX, id uuid.UUID) (int64, error)
}

type PunchRepository interface {
	Append(ctx context.Context, tx db.DBTX, cardID, customerID uuid.UUID, quantity int32, note string) (uuid.UUID, error)
}

type CardRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *card.Card) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *card.Card) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReferralProgramRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *referral.Program) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *referral.Program) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ParticipantRepository interface {
	// Ensure inserts the membership row if absent and returns its id
	// either way.
	Ensure(ctx context.Context, tx db.DBTX, programID, customerID uuid.UUID, note string) (uuid.UUID, error)
	IncrementCredited(ctx context.Context, tx db.DBTX, programID, customerID uuid.UUID) (int64, error)
}

type GiftRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *gift.Gift) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, g *gift.Gift) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type RedemptionRepository interface {
	Append(ctx context.Context, tx db.DBTX, giftID, customerID uuid.UUID, quantity int32, note string) (uuid.UUID, error)
}

type SurveyRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *survey.Survey) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, s *survey.Survey) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	AppendResponse(ctx context.Context, tx db.DBTX, r *survey.Response) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User, passwordHash string) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error
}
