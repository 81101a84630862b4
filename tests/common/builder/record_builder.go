//go:build unit || e2e

package builder

import (
	"time"

	"fulfillment-engine/internal/domain/inventory"
	reqdto "fulfillment-engine/internal/handler/dto/request"
	"fulfillment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecordBuilder struct {
	ProductID uuid.UUID
	Location  string
	Stock     int
	Threshold int
	UpdatedAt time.Time
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		ProductID: uuid.New(),
		Location:  "Warehouse A",
		Stock:     15,
		Threshold: 10,
		UpdatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RecordBuilder) BuildDomain() (*inventory.Record, error) {
	return inventory.NewRecord(b.ProductID, b.Location, b.Stock, b.Threshold, b.UpdatedAt)
}

func (b *RecordBuilder) BuildCreateRequestDTO() reqdto.CreateInventoryRecordRequest {
	stock, threshold := b.Stock, b.Threshold
	return reqdto.CreateInventoryRecordRequest{
		ProductID: b.ProductID,
		Location:  b.Location,
		Stock:     &stock,
		Threshold: &threshold,
	}
}

func (b *RecordBuilder) BuildView() *queries.InventoryRecordView {
	return &queries.InventoryRecordView{
		ID:        uuid.New(),
		ProductID: b.ProductID,
		Location:  b.Location,
		Stock:     b.Stock,
		Threshold: b.Threshold,
		CreatedAt: b.UpdatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (b *RecordBuilder) WithProductID(id uuid.UUID) *RecordBuilder {
	b.ProductID = id
	return b
}

func (b *RecordBuilder) WithLocation(location string) *RecordBuilder {
	b.Location = location
	return b
}

func (b *RecordBuilder) WithStock(stock int) *RecordBuilder {
	b.Stock = stock
	return b
}

func (b *RecordBuilder) WithThreshold(threshold int) *RecordBuilder {
	b.Threshold = threshold
	return b
}
