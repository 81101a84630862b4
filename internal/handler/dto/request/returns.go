package request

import (
	"fulfillment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReturnRequest struct {
	OrderID     uuid.UUID `json:"order_id" binding:"required"`
	Reason      string    `json:"reason" binding:"required"`
	RequestType string    `json:"type" binding:"required"`
}

func (r *CreateReturnRequest) ToCommand() commands.CreateReturnRequest {
	return commands.CreateReturnRequest{
		OrderID:     r.OrderID,
		Reason:      r.Reason,
		RequestType: r.RequestType,
	}
}

type ProcessReturnRequest struct {
	Action string `json:"action" binding:"required"`
}

type ListQuery struct {
	Limit int    `form:"limit"`
	After string `form:"after"`
}

// OptionalUUID parses a query value that binding already checked with the
// uuid rule. Empty means absent.
func OptionalUUID(v string) *uuid.UUID {
	if v == "" {
		return nil
	}
	id := uuid.MustParse(v)
	return &id
}

type ListReturnsQuery struct {
	ListQuery
	Status string `form:"status"`
}
