package response

import (
	"time"

	"fulfillment-engine/internal/domain/inventory"
	"fulfillment-engine/internal/usecase/commands"
	"fulfillment-engine/internal/usecase/queries"
)

type InventoryRecordResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Location  string    `json:"location"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
	LowStock  bool      `json:"low_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromRecordView(v *queries.InventoryRecordView) *InventoryRecordResponse {
	return &InventoryRecordResponse{
		ID:        v.ID.String(),
		ProductID: v.ProductID.String(),
		Location:  v.Location,
		Stock:     v.Stock,
		Threshold: v.Threshold,
		LowStock:  v.Stock < v.Threshold,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromRecord(r *inventory.Record) *InventoryRecordResponse {
	return FromRecordView(queries.NewInventoryRecordView(r))
}

func FromRecordList(views []*queries.InventoryRecordView) []*InventoryRecordResponse {
	res := make([]*InventoryRecordResponse, len(views))
	for i, v := range views {
		res[i] = FromRecordView(v)
	}
	return res
}

type AlertResponse struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"record_id"`
	ProductID string    `json:"product_id"`
	Location  string    `json:"location"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAlertView(v *queries.AlertView) *AlertResponse {
	return &AlertResponse{
		ID:        v.ID.String(),
		RecordID:  v.RecordID.String(),
		ProductID: v.ProductID.String(),
		Location:  v.Location,
		Stock:     v.Stock,
		Threshold: v.Threshold,
		Message:   v.Message,
		CreatedAt: v.CreatedAt,
	}
}

func FromAlertList(views []*queries.AlertView) []*AlertResponse {
	res := make([]*AlertResponse, len(views))
	for i, v := range views {
		res[i] = FromAlertView(v)
	}
	return res
}

type AdjustmentResponse struct {
	Record *InventoryRecordResponse `json:"record"`
	Alert  *AlertResponse           `json:"alert,omitempty"`
}

func FromAdjustment(adj *commands.Adjustment) *AdjustmentResponse {
	res := &AdjustmentResponse{Record: FromRecord(adj.Record)}
	if adj.Alert != nil {
		res.Alert = FromAlertView(queries.NewAlertView(adj.Alert))
	}
	return res
}
