package api

import (
	"errors"
	"net/http"

	"engage-api/internal/handler/httperr"
	"engage-api/internal/pkg/errs"
	"engage-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNotAuthenticated = errors.New("request context has no authenticated user")

// abortCommandError translates command-layer sentinel errors into HTTP
// statuses. Anything unrecognized is treated as an internal failure.
func abortCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrOfferNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
	case errs.Is(err, commands.ErrIntentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Intent not found", nil)
	case errs.Is(err, commands.ErrIntentExpired):
		httperr.AbortWithError(c, http.StatusGone, err, "Intent has expired", nil)
	case errs.Is(err, commands.ErrIntentConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Intent was modified concurrently", nil)
	case errs.Is(err, commands.ErrQuotaExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Quota exceeded", nil)
	case errs.Is(err, commands.ErrIntentStateInvalid):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Intent state does not allow this transition", nil)
	case errs.Is(err, commands.ErrStatusTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Status transition not allowed", nil)
	case errs.Is(err, commands.ErrOfferNotActive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Offer is not active", nil)
	case errs.Is(err, commands.ErrSurveyClosed):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Survey is closed", nil)
	case errs.Is(err, commands.ErrIntentForbidden),
		errs.Is(err, commands.ErrOfferForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errs.Is(err, commands.ErrInvalidStatus),
		errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
