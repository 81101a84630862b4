package request

import "fulfillment-engine/internal/usecase/commands"

type CreateProductRequest struct {
	Name      string `json:"name" binding:"required"`
	BasePrice string `json:"base_price" binding:"required"`
}

func (r *CreateProductRequest) ToCommand() commands.CreateProductRequest {
	return commands.CreateProductRequest{Name: r.Name, BasePrice: r.BasePrice}
}
