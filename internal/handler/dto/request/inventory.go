package request

import (
	"fulfillment-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateInventoryRecordRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Location  string    `json:"location" binding:"required"`
	Stock     *int      `json:"stock" binding:"required"`
	Threshold *int      `json:"threshold" binding:"required"`
}

func (r *CreateInventoryRecordRequest) ToCommand() commands.CreateInventoryRecordRequest {
	return commands.CreateInventoryRecordRequest{
		ProductID: r.ProductID,
		Location:  r.Location,
		Stock:     *r.Stock,
		Threshold: *r.Threshold,
	}
}

type AdjustStockRequest struct {
	// Positive replenishes, negative consumes.
	Delta *int `json:"delta" binding:"required"`
}

type ListRecordsQuery struct {
	ListQuery
	ProductID string `form:"product_id" binding:"omitempty,uuid"`
}
