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

type ReferralHandler struct {
	cmds       commands.ReferralCommands
	intentCmds commands.IntentCommands
	q          queries.ReferralQueries
	intentQ    queries.IntentQueries
}

func NewReferralHandler(cmds commands.ReferralCommands, intentCmds commands.IntentCommands, q queries.ReferralQueries, intentQ queries.IntentQueries) *ReferralHandler {
	return &ReferralHandler{cmds: cmds, intentCmds: intentCmds, q: q, intentQ: intentQ}
}

// @Summary Create referral program
// @Description Create a new referral program for the acting owner's business
// @Tags referral-programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReferralProgramRequest true "Create program request"
// @Success 201 {object} resdto.ReferralProgramResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /referral-programs [post]
func (h *ReferralHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReferralProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateProgram(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ProgramID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load program", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReferralProgramView(view))
}

// @Summary List referral programs
// @Description List referral programs of the acting owner's business
// @Tags referral-programs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReferralProgramResponse
// @Failure 403 {object} map[string]string
// @Router /referral-programs [get]
func (h *ReferralHandler) List(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, errNotAuthenticated, "Business membership required", nil)
		return
	}

	views, err := h.q.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list programs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReferralProgramList(views))
}

// @Summary Get referral program
// @Tags referral-programs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Success 200 {object} resdto.ReferralProgramResponse
// @Failure 404 {object} map[string]string
// @Router /referral-programs/{id} [get]
func (h *ReferralHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Program not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReferralProgramView(view))
}

// @Summary Update referral program
// @Tags referral-programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Param request body reqdto.UpdateReferralProgramRequest true "Update program request"
// @Success 200 {object} resdto.ReferralProgramResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /referral-programs/{id} [put]
func (h *ReferralHandler) Update(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReferralProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateProgram(c.Request.Context(), id, actor, req.ToCommand()); err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load program", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReferralProgramView(view))
}

// @Summary Change program status
// @Tags referral-programs
// @Accept json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 422 {object} map[string]string
// @Router /referral-programs/{id}/status [patch]
func (h *ReferralHandler) ChangeStatus(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ChangeProgramStatus(c.Request.Context(), id, actor, req.Status); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete referral program
// @Tags referral-programs
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /referral-programs/{id} [delete]
func (h *ReferralHandler) Delete(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteProgram(c.Request.Context(), id, actor); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Join referral program
// @Description Register the acting customer as a program participant
// @Tags referral-programs
// @Accept json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Param request body reqdto.JoinReferralProgramRequest false "Join request"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /referral-programs/{id}/join [post]
func (h *ReferralHandler) Join(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.JoinReferralProgramRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.cmds.JoinProgram(c.Request.Context(), id, actor, req.ToCommand()); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List participants
// @Description List participants of a referral program with credited counts
// @Tags referral-programs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Success 200 {array} resdto.ParticipantResponse
// @Failure 400 {object} map[string]string
// @Router /referral-programs/{id}/participants [get]
func (h *ReferralHandler) ListParticipants(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	views, err := h.q.ListParticipants(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list participants", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromParticipantList(views))
}

// @Summary Create referral intent
// @Description Create a pending referral intent for a program
// @Tags referral-programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Param request body reqdto.CreateIntentRequest true "Create intent request"
// @Success 201 {object} resdto.IntentResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /referral-programs/{id}/intents [post]
func (h *ReferralHandler) CreateIntent(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.intentCmds.CreateReferralIntent(c.Request.Context(), id, actor, req.ToCommand())
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

// @Summary List program intents
// @Tags referral-programs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Program ID"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.IntentListResponse
// @Router /referral-programs/{id}/intents [get]
func (h *ReferralHandler) ListIntents(c *gin.Context) {
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
