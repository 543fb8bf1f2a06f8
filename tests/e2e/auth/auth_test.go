//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"engage-api/internal/handler/dto/request"
	"engage-api/internal/handler/dto/response"
	"engage-api/tests/common/dbtest"
	"engage-api/tests/common/httptest"
	"engage-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	dbtest.CreateTestUser(t, s.DB, "owner@example.com", "owner", nil)
	dbtest.CreateTestUser(t, s.DB, "inactive@example.com", "customer", nil)

	_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(t, err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "owner@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "owner@example.com",
			password:       "wrong-password",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var body response.LoginResponse
				httptest.DecodeResponseBody(t, w.Body, &body)
				require.NotEmpty(t, body.AccessToken)
				require.NotNil(t, body.User)
				require.Equal(t, tt.email, body.User.Email)

				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "owner@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var login response.LoginResponse
		httptest.DecodeResponseBody(t, w.Body, &login)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, login.AccessToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("rejects a missing token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestRefreshAndLogout() {
	s.Run("refresh rotates tokens from the cookie", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "owner@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		cookies := w.Result().Cookies()

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var refreshed response.RefreshResponse
		httptest.DecodeResponseBody(t, w.Body, &refreshed)
		require.NotEmpty(t, refreshed.AccessToken)
	})

	s.Run("logout clears the auth cookies", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "owner@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		cookies := w.Result().Cookies()

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, cookies, "")
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		access := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, access)
		require.Empty(t, access.Value)
	})
}
