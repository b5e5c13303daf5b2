//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-platform/internal/handler/dto/request"
	"hotel-platform/internal/handler/dto/response"
	"hotel-platform/tests/common/dbtest"
	"hotel-platform/tests/common/httptest"
	"hotel-platform/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/auth/register"
	loginURL    = "/auth/login"
	meURL       = "/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("new user can register and then log in", func() {
		t := s.T()

		body := request.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"}
		w := httptest.PerformRequest(t, s.Identity, http.MethodPost, registerURL, body, "")

		var created response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		assert.Equal(t, "ana@example.com", created.Email)
		assert.Equal(t, "Ana", created.Name)

		w = httptest.PerformRequest(t, s.Identity, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ana@example.com", Password: "secret123"}, "")
		var token response.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &token)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, "bearer", token.TokenType)
	})

	s.Run("duplicate email is rejected", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "Existing", "taken@example.com")

		body := request.RegisterRequest{Name: "Other", Email: "taken@example.com", Password: "secret123"}
		w := httptest.PerformRequest(t, s.Identity, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("short password is rejected", func() {
		t := s.T()

		body := request.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "123"}
		w := httptest.PerformRequest(t, s.Identity, http.MethodPost, registerURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "guest@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "guest@example.com", password: "wrong-password", expectedStatus: http.StatusUnauthorized},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "guest@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			dbtest.CreateTestUser(t, s.DB, "Guest", "guest@example.com")

			w := httptest.PerformRequest(t, s.Identity, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusUnauthorized {
				httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Incorrect email or password")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("token resolves to the logged in user", func() {
		t := s.T()
		userID := dbtest.CreateTestUser(t, s.DB, "Guest", "guest@example.com")
		token := s.Login("guest@example.com")

		w := httptest.PerformRequest(t, s.Identity, http.MethodGet, meURL, nil, token)

		var me response.UserResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
		assert.Equal(t, userID, me.ID)
	})

	s.Run("token issued by identity is accepted by booking", func() {
		t := s.T()
		dbtest.CreateTestUser(t, s.DB, "Guest", "guest@example.com")
		token := s.Login("guest@example.com")

		w := httptest.PerformRequest(t, s.Booking, http.MethodGet, "/bookings/my", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("missing token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Identity, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
