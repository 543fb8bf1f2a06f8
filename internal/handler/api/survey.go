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

type SurveyHandler struct {
	cmds commands.SurveyCommands
	q    queries.SurveyQueries
}

func NewSurveyHandler(cmds commands.SurveyCommands, q queries.SurveyQueries) *SurveyHandler {
	return &SurveyHandler{cmds: cmds, q: q}
}

// @Summary Create survey
// @Description Create a new satisfaction survey for the acting owner's business
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSurveyRequest true "Create survey request"
// @Success 201 {object} resdto.SurveyResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /surveys [post]
func (h *SurveyHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateSurvey(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.SurveyID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load survey", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSurveyView(view))
}

// @Summary List surveys
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SurveyResponseDTO
// @Failure 403 {object} map[string]string
// @Router /surveys [get]
func (h *SurveyHandler) List(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusForbidden, errNotAuthenticated, "Business membership required", nil)
		return
	}

	views, err := h.q.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list surveys", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSurveyList(views))
}

// @Summary Get survey
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Success 200 {object} resdto.SurveyResponseDTO
// @Failure 404 {object} map[string]string
// @Router /surveys/{id} [get]
func (h *SurveyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Survey not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSurveyView(view))
}

// @Summary Update survey
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Param request body reqdto.UpdateSurveyRequest true "Update survey request"
// @Success 200 {object} resdto.SurveyResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /surveys/{id} [put]
func (h *SurveyHandler) Update(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateSurvey(c.Request.Context(), id, actor, req.ToCommand()); err != nil {
		abortCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load survey", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSurveyView(view))
}

// @Summary Change survey status
// @Tags surveys
// @Accept json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 422 {object} map[string]string
// @Router /surveys/{id}/status [patch]
func (h *SurveyHandler) ChangeStatus(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.ChangeSurveyStatus(c.Request.Context(), id, actor, req.Status); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete survey
// @Tags surveys
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /surveys/{id} [delete]
func (h *SurveyHandler) Delete(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	if err := h.cmds.DeleteSurvey(c.Request.Context(), id, actor); err != nil {
		abortCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Respond to survey
// @Description Submit a rating and optional comment to an open survey
// @Tags surveys
// @Accept json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Param request body reqdto.RespondSurveyRequest true "Survey response"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /surveys/{id}/responses [post]
func (h *SurveyHandler) Respond(c *gin.Context) {
	id, actor, ok := idAndActor(c)
	if !ok {
		return
	}
	var req reqdto.RespondSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Respond(c.Request.Context(), id, actor, req.ToCommand())
	if err != nil {
		abortCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"response_id": result.ResponseID.String()})
}

// @Summary List survey responses
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Success 200 {array} resdto.SurveyAnswerResponse
// @Failure 400 {object} map[string]string
// @Router /surveys/{id}/responses [get]
func (h *SurveyHandler) ListResponses(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	views, err := h.q.ListResponses(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list responses", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSurveyAnswerList(views))
}

// @Summary Survey results
// @Description Aggregate response count and average rating for a survey
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param id path string true "Survey ID"
// @Success 200 {object} resdto.SurveyResultResponse
// @Failure 400 {object} map[string]string
// @Router /surveys/{id}/results [get]
func (h *SurveyHandler) Results(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.Results(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to aggregate results", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSurveyResultView(view))
}
