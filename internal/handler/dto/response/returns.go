package response

import (
	"time"

	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/usecase/queries"
)

type ReturnResponse struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	Reason      string     `json:"reason"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

func FromReturnView(v *queries.ReturnRequestView) *ReturnResponse {
	return &ReturnResponse{
		ID:          v.ID.String(),
		OrderID:     v.OrderID.String(),
		Reason:      v.Reason,
		Type:        v.Type,
		Status:      v.Status,
		CreatedAt:   v.CreatedAt,
		ProcessedAt: v.ProcessedAt,
	}
}

func FromReturn(r *returns.Request) *ReturnResponse {
	return FromReturnView(queries.NewReturnRequestView(r))
}

func FromReturnList(views []*queries.ReturnRequestView) []*ReturnResponse {
	res := make([]*ReturnResponse, len(views))
	for i, v := range views {
		res[i] = FromReturnView(v)
	}
	return res
}
