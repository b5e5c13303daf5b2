//go:build e2e

package logs_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-platform/internal/handler/dto/response"
	"hotel-platform/tests/common/httptest"
	"hotel-platform/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type logsSuite struct {
	e2e.SharedSuite
}

func TestLogsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(logsSuite))
}

func (s *logsSuite) insertLog(level int, service, message string, ts time.Time) {
	_, err := s.DB.Exec(context.Background(),
		"INSERT INTO logs (id, level, message, service_name, timestamp) VALUES ($1, $2, $3, $4, $5)",
		uuid.New(), level, message, service, ts)
	require.NoError(s.T(), err)
}

func (s *logsSuite) TestList() {
	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	s.Run("filters by service and reports the full total", func() {
		t := s.T()
		for i := range 5 {
			s.insertLog(1, "booking", "booked", base.Add(time.Duration(i)*time.Minute))
		}
		s.insertLog(3, "identity", "boom", base)

		w := httptest.PerformRequest(t, s.Logging, http.MethodGet, "/logs?service_name=booking&limit=2", nil, "")

		var page response.LogListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Logs, 2)
		assert.Equal(t, 5, page.Total)
		assert.True(t, page.Logs[0].Timestamp.After(page.Logs[1].Timestamp), "newest first")
		assert.Equal(t, "booking", page.Logs[0].ServiceName)
	})

	s.Run("filters by level", func() {
		t := s.T()
		s.insertLog(1, "booking", "info", base)
		s.insertLog(3, "booking", "error", base)

		w := httptest.PerformRequest(t, s.Logging, http.MethodGet, "/logs?level=3", nil, "")

		var page response.LogListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Logs, 1)
		assert.Equal(t, "error", page.Logs[0].Message)
	})

	s.Run("out of range parameters are rejected", func() {
		t := s.T()
		for _, q := range []string{"level=9", "limit=0", "limit=1001", "limit=abc"} {
			w := httptest.PerformRequest(t, s.Logging, http.MethodGet, "/logs?"+q, nil, "")
			httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid query parameters")
		}
	})
}

func (s *logsSuite) TestHealth() {
	s.Run("reports the queue as disconnected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Logging, http.MethodGet, "/health", nil, "")

		var health response.HealthResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &health)
		assert.Equal(t, "logging", health.Service)
		require.NotNil(t, health.QueueConnected)
		assert.False(t, *health.QueueConnected)
	})
}
