package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"engage-api/internal/domain/user"
	"engage-api/internal/handler/api"
	"engage-api/internal/handler/middleware"
	"engage-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Card     *api.CardHandler
	Referral *api.ReferralHandler
	Gift     *api.GiftHandler
	Survey   *api.SurveyHandler
	Intent   *api.IntentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	ownerOnly := authMiddleware.RequireRoleAtLeast(user.RoleOwner)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		cards := apiGroup.Group("/cards")
		cards.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cards, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Card.Create, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Card.List, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Card.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Card.Update, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Card.ChangeStatus, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Card.Delete, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPost, Path: "/:id/punches", Handler: h.Card.Punch, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id/punches", Handler: h.Card.ListPunches, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id/progress", Handler: h.Card.Progress},
				{Method: http.MethodPost, Path: "/:id/intents", Handler: h.Card.CreateIntent, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id/intents", Handler: h.Card.ListIntents, Mw: []gin.HandlerFunc{ownerOnly}},
			})
		}

		programs := apiGroup.Group("/referral-programs")
		programs.Use(authMiddleware.RequireAuth())
		{
			addRoutes(programs, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Referral.Create, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Referral.List, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Referral.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Referral.Update, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Referral.ChangeStatus, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Referral.Delete, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPost, Path: "/:id/join", Handler: h.Referral.Join},
				{Method: http.MethodGet, Path: "/:id/participants", Handler: h.Referral.ListParticipants, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPost, Path: "/:id/intents", Handler: h.Referral.CreateIntent},
				{Method: http.MethodGet, Path: "/:id/intents", Handler: h.Referral.ListIntents, Mw: []gin.HandlerFunc{ownerOnly}},
			})
		}

		gifts := apiGroup.Group("/gifts")
		gifts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(gifts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Gift.Create, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Gift.List, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Gift.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Gift.Update, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Gift.ChangeStatus, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Gift.Delete, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPost, Path: "/:id/intents", Handler: h.Gift.CreateIntent},
				{Method: http.MethodGet, Path: "/:id/intents", Handler: h.Gift.ListIntents, Mw: []gin.HandlerFunc{ownerOnly}},
			})
		}

		surveys := apiGroup.Group("/surveys")
		surveys.Use(authMiddleware.RequireAuth())
		{
			addRoutes(surveys, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Survey.Create, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Survey.List, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Survey.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Survey.Update, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Survey.ChangeStatus, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Survey.Delete, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodPost, Path: "/:id/responses", Handler: h.Survey.Respond},
				{Method: http.MethodGet, Path: "/:id/responses", Handler: h.Survey.ListResponses, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id/results", Handler: h.Survey.Results, Mw: []gin.HandlerFunc{ownerOnly}},
			})
		}

		intents := apiGroup.Group("/intents")
		intents.Use(authMiddleware.RequireAuth())
		{
			addRoutes(intents, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Intent.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Intent.Get},
				{Method: http.MethodPost, Path: "/:id/consume", Handler: h.Intent.Consume},
				{Method: http.MethodPost, Path: "/:id/finalize", Handler: h.Intent.Finalize},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Intent.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
