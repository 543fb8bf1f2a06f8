//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"engage-api/internal/handler/dto/request"
	"engage-api/tests/common/dbtest"
	"engage-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "access token cookie not set")
	require.NotEmpty(t, accessCookie.Value)

	return accessCookie.Value
}

// CreateAndLogin seeds a user and returns their access token plus id.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string, businessID *uuid.UUID) (string, uuid.UUID) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, role, businessID)
	return LoginUser(t, router, email, dbtest.TestPassword), userID
}
