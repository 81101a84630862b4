package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Movement records one applied adjustment. Analytics replays movements
// backwards from the current stock to recover historical levels.
type Movement struct {
	ID         uuid.UUID
	RecordID   uuid.UUID
	Delta      int
	StockAfter int
	CreatedAt  time.Time
}

func NewMovement(r *Record, delta int, now time.Time) Movement {
	return Movement{
		ID:         uuid.New(),
		RecordID:   r.ID(),
		Delta:      delta,
		StockAfter: r.Stock(),
		CreatedAt:  now,
	}
}

// StockAt rewinds current by every movement recorded at or after t, giving the
// level held just before t.
func StockAt(current int, movements []Movement, t time.Time) int {
	stock := current
	for _, m := range movements {
		if !m.CreatedAt.Before(t) {
			stock -= m.Delta
		}
	}
	return stock
}
