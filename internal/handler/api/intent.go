package api

import (
	"net/http"

	resdto "engage-api/internal/handler/dto/response"
	"engage-api/internal/handler/httperr"
	"engage-api/internal/handler/middleware"
	"engage-api/internal/usecase/commands"
	"engage-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IntentHandler struct {
	cmds commands.IntentCommands
	q    queries.IntentQueries
}

func NewIntentHandler(cmds commands.IntentCommands, q queries.IntentQueries) *IntentHandler {
	return &IntentHandler{cmds: cmds, q: q}
}

// @Summary Get intent
// @Description Get an intent by ID
// @Tags intents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intent ID"
// @Success 200 {object} resdto.IntentResponse
// @Failure 404 {object} map[string]string
// @Router /intents/{id} [get]
func (h *IntentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Intent not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntentView(view))
}

// @Summary List own intents
// @Description List intents created by or bound to the acting user
// @Tags intents
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.IntentListResponse
// @Failure 401 {object} map[string]string
// @Router /intents [get]
func (h *IntentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Unauthorized", nil)
		return
	}

	after, limit := pageParams(c)
	views, next, err := h.q.ListByCustomer(c.Request.Context(), userID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list intents", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntentList(views, next))
}

// @Summary Consume intent
// @Description Atomically claim a pending intent and append its ledger effect
// @Tags intents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intent ID"
// @Success 200 {object} resdto.IntentResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /intents/{id}/consume [post]
func (h *IntentHandler) Consume(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}

	if err := h.cmds.Consume(c.Request.Context(), id, actor); err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load intent", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntentView(view))
}

// @Summary Finalize intent
// @Description Settle a consumed intent; finalizing an already claimed intent is a no-op
// @Tags intents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intent ID"
// @Success 200 {object} resdto.FinalizeIntentResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /intents/{id}/finalize [post]
func (h *IntentHandler) Finalize(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}

	result, err := h.cmds.Finalize(c.Request.Context(), id, actor)
	if err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load intent", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FinalizeIntentResponse{
		AlreadyClaimed: result.AlreadyClaimed,
		Intent:         resdto.FromIntentView(view),
	})
}

// @Summary Cancel intent
// @Description Cancel a pending or consumed intent
// @Tags intents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intent ID"
// @Success 200 {object} resdto.IntentResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /intents/{id}/cancel [post]
func (h *IntentHandler) Cancel(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), id, actor); err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load intent", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIntentView(view))
}
