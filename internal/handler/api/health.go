package api

import (
	"net/http"

	resdto "hotel-platform/internal/handler/dto/response"

	"github.com/gin-gonic/gin"
)

// QueueProbe reports whether the service's queue client is connected.
type QueueProbe func() bool

type HealthHandler struct {
	service string
	queue   QueueProbe
}

// NewHealthHandler takes a nil probe for services without a queue consumer.
func NewHealthHandler(service string, queue QueueProbe) *HealthHandler {
	return &HealthHandler{service: service, queue: queue}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	res := resdto.HealthResponse{Status: "healthy", Service: h.service}
	if h.queue != nil {
		connected := h.queue()
		res.QueueConnected = &connected
	}
	c.JSON(http.StatusOK, res)
}
