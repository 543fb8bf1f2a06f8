package api

import (
	"net/http"

	"engage-api/internal/domain/user"
	reqdto "engage-api/internal/handler/dto/request"
	resdto "engage-api/internal/handler/dto/response"
	"engage-api/internal/handler/httperr"
	"engage-api/internal/handler/middleware"
	"engage-api/internal/usecase/commands"
	"engage-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CardHandler struct {
	cmds       commands.CardCommands
	intentCmds commands.IntentCommands
	q          queries.CardQueries
	intentQ    queries.IntentQueries
}

func NewCardHandler(cmds commands.CardCommands, intentCmds commands.IntentCommands, q queries.CardQueries, intentQ queries.IntentQueries) *CardHandler {
	return &CardHandler{cmds: cmds, intentCmds: intentCmds, q: q, intentQ: intentQ}
}

// @Summary Create stamp card
// @Description Create a new stamp card for the acting owner's business
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCardRequest true "Create card request"
// @Success 201 {object} resdto.CardResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateCard(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.CardID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load card", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCardView(view))
}

// @Summary List cards
// @Description List stamp cards of the acting owner's business
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.CardListResponse
// @Failure 401 {object} map[string]string
// @Router /cards [get]
func (h *CardHandler) List(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, errNotAuthenticated, "Business membership required", nil)
		return
	}

	after, limit := pageParams(c)
	views, next, err := h.q.ListByBusiness(c.Request.Context(), businessID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list cards", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardList(views, next))
}

// @Summary Get card
// @Description Get a stamp card by ID
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 200 {object} resdto.CardResponse
// @Failure 404 {object} map[string]string
// @Router /cards/{id} [get]
func (h *CardHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Card not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardView(view))
}

// @Summary Update card
// @Description Partially update a stamp card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param request body reqdto.UpdateCardRequest true "Update card request"
// @Success 200 {object} resdto.CardResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cards/{id} [put]
func (h *CardHandler) Update(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateCard(c.Request.Context(), id, actor, req.ToCommand()); err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load card", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardView(view))
}

// @Summary Change card status
// @Description Transition a card between active, inactive and finished
// @Tags cards
// @Accept json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cards/{id}/status [patch]
func (h *CardHandler) ChangeStatus(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ChangeCardStatus(c.Request.Context(), id, actor, req.Status); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete card
// @Description Delete a stamp card
// @Tags cards
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteCard(c.Request.Context(), id, actor); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Punch card
// @Description Append punches for a customer directly, without an intent
// @Tags cards
// @Accept json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param request body reqdto.PunchCardRequest true "Punch request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cards/{id}/punches [post]
func (h *CardHandler) Punch(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.PunchCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.PunchCard(c.Request.Context(), id, actor, req.ToCommand()); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List punches
// @Description List the punch ledger of a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.PunchListResponse
// @Failure 400 {object} map[string]string
// @Router /cards/{id}/punches [get]
func (h *CardHandler) ListPunches(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	after, limit := pageParams(c)
	views, next, err := h.q.ListPunches(c.Request.Context(), id, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list punches", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPunchList(views, next))
}

// @Summary Card progress
// @Description Aggregate a customer's punches on a card into completion progress
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param customer_id query string false "Customer ID (owners only; customers see their own)"
// @Success 200 {object} resdto.CardProgressResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /cards/{id}/progress [get]
func (h *CardHandler) Progress(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}

	customerID := actor.ID
	if raw := c.Query("customer_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer_id", nil)
			return
		}
		if parsed != actor.ID && actor.Role == user.RoleCustomer {
			httperr.AbortWithError(c, http.StatusForbidden, errNotAuthenticated, "Customers may only view their own progress", nil)
			return
		}
		customerID = parsed
	}

	view, err := h.q.Progress(c.Request.Context(), id, customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute progress", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCardProgressView(view))
}

// @Summary Create stamp intent
// @Description Create a pending stamp intent for a card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param request body reqdto.CreateIntentRequest true "Create intent request"
// @Success 201 {object} resdto.IntentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cards/{id}/intents [post]
func (h *CardHandler) CreateIntent(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.intentCmds.CreateStampIntent(c.Request.Context(), id, actor, req.ToCommand())
	if err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.intentQ.GetByID(c.Request.Context(), result.IntentID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load intent", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIntentView(view))
}

// @Summary List card intents
// @Description List intents created against a card
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.IntentListResponse
// @Failure 400 {object} map[string]string
// @Router /cards/{id}/intents [get]
func (h *CardHandler) ListIntents(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	after, limit := pageParams(c)
	views, next, err := h.intentQ.ListByOffer(c.Request.Context(), id, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list intents", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntentList(views, next))
}
