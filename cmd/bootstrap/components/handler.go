package components

import (
	"engage-api/internal/handler"
	"engage-api/internal/handler/api"
	"engage-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCardHandler,
		api.NewReferralHandler,
		api.NewGiftHandler,
		api.NewSurveyHandler,
		api.NewIntentHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	card *api.CardHandler,
	referral *api.ReferralHandler,
	gift *api.GiftHandler,
	survey *api.SurveyHandler,
	intent *api.IntentHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Card:     card,
		Referral: referral,
		Gift:     gift,
		Survey:   survey,
		Intent:   intent,
	}
}
