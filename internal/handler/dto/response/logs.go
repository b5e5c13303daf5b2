package response

import (
	"time"

	"hotel-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type LogResponse struct {
	ID          uuid.UUID `json:"id"`
	Level       int       `json:"level"`
	Message     string    `json:"message"`
	ServiceName string    `json:"service_name"`
	Timestamp   time.Time `json:"timestamp"`
}

type LogListResponse struct {
	Logs  []*LogResponse `json:"logs"`
	Total int            `json:"total"`
}

func FromLogPage(p *queries.LogPage) (*LogListResponse, error) {
	logs := make([]*LogResponse, 0, len(p.Logs))
	if err := copier.Copy(&logs, p.Logs); err != nil {
		return nil, err
	}
	return &LogListResponse{Logs: logs, Total: p.Total}, nil
}

type HealthResponse struct {
	Status         string `json:"status"`
	Service        string `json:"service"`
	QueueConnected *bool  `json:"queue_connected,omitempty"`
}
