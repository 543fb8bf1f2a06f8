package components

import (
	"engage-api/internal/infra/db"
	"engage-api/internal/infra/readstore"
	"engage-api/internal/infra/repository"
	"engage-api/internal/infra/uow"
	"engage-api/internal/usecase/queries"
	"engage-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewCardReadStore,
			fx.As(new(queries.CardReadStore)),
		),
		fx.Annotate(
			readstore.NewIntentReadStore,
			fx.As(new(queries.IntentReadStore)),
		),
		fx.Annotate(
			readstore.NewReferralReadStore,
			fx.As(new(queries.ReferralReadStore)),
		),
		fx.Annotate(
			readstore.NewGiftReadStore,
			fx.As(new(queries.GiftReadStore)),
		),
		fx.Annotate(
			readstore.NewSurveyReadStore,
			fx.As(new(queries.SurveyReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork carries tx-scoped repositories and command reads
		uow.NewPostgresUoW,
		// Stateless repositories injected into the intent saga
		fx.Annotate(
			repository.NewIntentRepository,
			fx.As(new(shared.IntentRepository)),
		),
		fx.Annotate(
			repository.NewPunchRepository,
			fx.As(new(shared.PunchRepository)),
		),
		fx.Annotate(
			repository.NewParticipantRepository,
			fx.As(new(shared.ParticipantRepository)),
		),
		fx.Annotate(
			repository.NewRedemptionRepository,
			fx.As(new(shared.RedemptionRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
