package api

import (
	"net/http"
	"strconv"

	"engage-api/internal/handler/httperr"
	"engage-api/internal/handler/middleware"
	"engage-api/internal/usecase/queries"
	"engage-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// idAndActor parses the :id path param and pulls the authenticated actor
// from context, aborting the request on either failure.
func idAndActor(c *gin.Context) (uuid.UUID, shared.Actor, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, shared.Actor{}, false
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "Unauthorized", nil)
		return uuid.Nil, shared.Actor{}, false
	}
	return id, actor, true
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	return after, limit
}
