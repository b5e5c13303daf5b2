package request

import "hotel-platform/internal/usecase/queries"

type ListLogsQuery struct {
	Level       *int    `form:"level" binding:"omitnil,min=0,max=3"`
	ServiceName *string `form:"service_name"`
	Limit       *int    `form:"limit" binding:"omitnil,min=1,max=1000"`
}

// ToFilter leaves Limit at zero when absent so LogQueries applies its default.
func (q ListLogsQuery) ToFilter() queries.LogFilter {
	f := queries.LogFilter{Level: q.Level, ServiceName: q.ServiceName}
	if q.Limit != nil {
		f.Limit = *q.Limit
	}
	return f
}
