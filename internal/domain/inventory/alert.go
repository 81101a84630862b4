package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const AlertSubject = "Low Stock Alert"

// Alert is an append-only low-stock event raised when an adjustment leaves a
// record below its threshold.
type Alert struct {
	id        uuid.UUID
	recordID  uuid.UUID
	productID uuid.UUID
	location  string
	stock     int
	threshold int
	message   string
	createdAt time.Time
}

func NewAlert(r *Record, now time.Time) *Alert {
	return &Alert{
		id:        uuid.New(),
		recordID:  r.ID(),
		productID: r.ProductID(),
		location:  r.Location(),
		stock:     r.Stock(),
		threshold: r.Threshold(),
		message:   fmt.Sprintf("Low stock alert for product %s in location %s: %d left (threshold %d)", r.ProductID(), r.Location(), r.Stock(), r.Threshold()),
		createdAt: now,
	}
}

func ReconstructAlert(id, recordID, productID uuid.UUID, location string, stock, threshold int, message string, createdAt time.Time) *Alert {
	return &Alert{
		id:        id,
		recordID:  recordID,
		productID: productID,
		location:  location,
		stock:     stock,
		threshold: threshold,
		message:   message,
		createdAt: createdAt,
	}
}

func (a *Alert) ID() uuid.UUID        { return a.id }
func (a *Alert) RecordID() uuid.UUID  { return a.recordID }
func (a *Alert) ProductID() uuid.UUID { return a.productID }
func (a *Alert) Location() string     { return a.location }
func (a *Alert) Stock() int           { return a.stock }
func (a *Alert) Threshold() int       { return a.threshold }
func (a *Alert) Message() string      { return a.message }
func (a *Alert) CreatedAt() time.Time { return a.createdAt }
