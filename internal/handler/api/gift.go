package api

import (
	"net/http"

	reqdto "engage-api/internal/handler/dto/request"
	resdto "engage-api/internal/handler/dto/response"
	"engage-api/internal/handler/httperr"
	"engage-api/internal/handler/middleware"
	"engage-api/internal/usecase/commands"
	"engage-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GiftHandler struct {
	cmds       commands.GiftCommands
	intentCmds commands.IntentCommands
	q          queries.GiftQueries
	intentQ    queries.IntentQueries
}

func NewGiftHandler(cmds commands.GiftCommands, intentCmds commands.IntentCommands, q queries.GiftQueries, intentQ queries.IntentQueries) *GiftHandler {
	return &GiftHandler{cmds: cmds, intentCmds: intentCmds, q: q, intentQ: intentQ}
}

// @Summary Create gift campaign
// @Description Create a new gift campaign for the acting owner's business
// @Tags gifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateGiftRequest true "Create gift request"
// @Success 201 {object} resdto.GiftResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /gifts [post]
func (h *GiftHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateGift(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.GiftID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load gift", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGiftView(view))
}

// @Summary List gift campaigns
// @Tags gifts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GiftResponse
// @Failure 403 {object} map[string]string
// @Router /gifts [get]
func (h *GiftHandler) List(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, errNotAuthenticated, "Business membership required", nil)
		return
	}

	views, err := h.q.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list gifts", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGiftList(views))
}

// @Summary Get gift campaign
// @Tags gifts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gift ID"
// @Success 200 {object} resdto.GiftResponse
// @Failure 404 {object} map[string]string
// @Router /gifts/{id} [get]
func (h *GiftHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Gift not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGiftView(view))
}

// @Summary Update gift campaign
// @Tags gifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gift ID"
// @Param request body reqdto.UpdateGiftRequest true "Update gift request"
// @Success 200 {object} resdto.GiftResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /gifts/{id} [put]
func (h *GiftHandler) Update(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateGift(c.Request.Context(), id, actor, req.ToCommand()); err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load gift", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGiftView(view))
}

// @Summary Change gift status
// @Tags gifts
// @Accept json
// @Security BearerAuth
// @Param id path string true "Gift ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 422 {object} map[string]string
// @Router /gifts/{id}/status [patch]
func (h *GiftHandler) ChangeStatus(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ChangeGiftStatus(c.Request.Context(), id, actor, req.Status); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete gift campaign
// @Tags gifts
// @Security BearerAuth
// @Param id path string true "Gift ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /gifts/{id} [delete]
func (h *GiftHandler) Delete(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteGift(c.Request.Context(), id, actor); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create gift intent
// @Description Create a pending redemption intent bound to the acting customer
// @Tags gifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gift ID"
// @Param request body reqdto.CreateIntentRequest true "Create intent request"
// @Success 201 {object} resdto.IntentResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /gifts/{id}/intents [post]
func (h *GiftHandler) CreateIntent(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.intentCmds.CreateGiftIntent(c.Request.Context(), id, actor, req.ToCommand())
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

// @Summary List gift intents
// @Tags gifts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gift ID"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.IntentListResponse
// @Router /gifts/{id}/intents [get]
func (h *GiftHandler) ListIntents(c *gin.Context) {
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
