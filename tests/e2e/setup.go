//go:build e2e

package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-platform/cmd/bootstrap"
	"hotel-platform/internal/handler/dto/request"
	"hotel-platform/internal/handler/dto/response"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/tests/common/dbtest"
	"hotel-platform/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// One in-process app per service, all on the same test database
// ------------------------------------------------------------
type Services struct {
	Identity *gin.Engine
	Booking  *gin.Engine
	Logging  *gin.Engine
}

func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, Services, config.Config) {
	gin.SetMode(gin.TestMode)

	pool, dbConfig := dbtest.NewDatabase(t)
	cfg := createTestConfig(dbConfig)

	services := Services{
		Identity: buildE2EApp(t, cfg, "identity", bootstrap.IdentityModule),
		Booking:  buildE2EApp(t, cfg, "booking", bootstrap.BookingModule),
		Logging:  buildE2EApp(t, cfg, "logging", bootstrap.LoggingModule),
	}
	return pool, services, cfg
}

// buildE2EApp starts the service's fx graph without the HTTP listener and
// returns its engine for in-process requests.
func buildE2EApp(t *testing.T, cfg config.Config, name string, module fx.Option) *gin.Engine {
	t.Helper()

	cfg.Service.Name = name
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg),
		module,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start %s app", name)

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			t.Logf("failed to stop %s app: %v", name, err)
		}
	})

	require.NotNil(t, router, "%s router was not built", name)
	return router
}

func createTestConfig(dbConfig config.DBConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	// Unreachable on purpose: the logging service's consumer keeps retrying in
	// the background while its query API is exercised against the database.
	testConfig.Queue.Brokers = []string{"127.0.0.1:1"}
	return testConfig
}

// ------------------------------------------------------------
// Shared suite setup
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Services
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	db, services, cfg := setupE2EEnvironment(t)
	s.DB = db
	s.Services = services
	s.Config = cfg
	require.NotNil(t, s.DB, "database setup failed")
	require.NotNil(t, s.Identity, "identity router setup failed")
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}

// Login returns an access token from the identity service; users created with
// dbtest.CreateTestUser use dbtest.TestPassword.
func (s *SharedSuite) Login(email string) string {
	t := s.T()
	t.Helper()

	w := httptest.PerformRequest(t, s.Identity, http.MethodPost, "/auth/login",
		request.LoginRequest{Email: email, Password: dbtest.TestPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var token response.TokenResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &token))
	require.NotEmpty(t, token.AccessToken, "empty token for %s", email)
	return token.AccessToken
}
