package api

import (
	"net/http"

	reqdto "hotel-platform/internal/handler/dto/request"
	resdto "hotel-platform/internal/handler/dto/response"
	"hotel-platform/internal/handler/httperr"
	"hotel-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	q queries.LogQueries
}

func NewLogHandler(q queries.LogQueries) *LogHandler {
	return &LogHandler{q: q}
}

// @Summary List logs
// @Description Stored log events, newest first
// @Tags logs
// @Produce json
// @Param level query int false "Severity 0..3"
// @Param service_name query string false "Emitting service"
// @Param limit query int false "1..1000, default 100"
// @Success 200 {object} resdto.LogListResponse
// @Failure 400 {object} httperr.Response
// @Router /logs [get]
func (h *LogHandler) List(c *gin.Context) {
	var q reqdto.ListLogsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromLogPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
