package inventory

import (
	"math"
	"strings"
	"time"

	"fulfillment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxLocationLength = 64
	// MaxStock bounds stock, threshold and the size of a single adjustment.
	MaxStock = math.MaxInt32
)

var (
	ErrMissingProduct    = errs.Validation("inventory record requires a product")
	ErrEmptyLocation     = errs.Validation("inventory location cannot be empty")
	ErrLocationTooLong   = errs.Validation("inventory location is too long (max 64 characters)")
	ErrNegativeStock     = errs.Validation("stock cannot be negative")
	ErrNegativeThreshold = errs.Validation("threshold cannot be negative")
	ErrStockTooLarge     = errs.Validationf("stock cannot exceed %d", MaxStock)
	ErrThresholdTooLarge = errs.Validationf("threshold cannot exceed %d", MaxStock)
	ErrDeltaOutOfRange   = errs.Validationf("adjustment must be between -%d and %d", MaxStock, MaxStock)
	ErrInsufficientStock = errs.Mark(errs.New("adjustment would make stock negative"), errs.ErrInvalidQuantity)
)

// Record is the stock level of one product at one location.
type Record struct {
	id        uuid.UUID
	productID uuid.UUID
	location  string
	stock     int
	threshold int
	createdAt time.Time
	updatedAt time.Time
}

func NewRecord(productID uuid.UUID, location string, stock, threshold int, now time.Time) (*Record, error) {
	if productID == uuid.Nil {
		return nil, ErrMissingProduct
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if len(location) > MaxLocationLength {
		return nil, ErrLocationTooLong
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if stock > MaxStock {
		return nil, ErrStockTooLarge
	}
	if threshold < 0 {
		return nil, ErrNegativeThreshold
	}
	if threshold > MaxStock {
		return nil, ErrThresholdTooLarge
	}
	return &Record{
		id:        uuid.New(),
		productID: productID,
		location:  location,
		stock:     stock,
		threshold: threshold,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRecord(id, productID uuid.UUID, location string, stock, threshold int, createdAt, updatedAt time.Time) *Record {
	return &Record{
		id:        id,
		productID: productID,
		location:  location,
		stock:     stock,
		threshold: threshold,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func ValidateDelta(delta int) error {
	if delta < -MaxStock || delta > MaxStock {
		return ErrDeltaOutOfRange
	}
	return nil
}

// Adjust applies delta to the stock level. A result below zero or above
// MaxStock is rejected and leaves the record unchanged. A zero delta only
// touches updatedAt.
func (r *Record) Adjust(delta int, now time.Time) error {
	if err := ValidateDelta(delta); err != nil {
		return err
	}
	if r.stock+delta < 0 {
		return ErrInsufficientStock
	}
	if r.stock+delta > MaxStock {
		return ErrStockTooLarge
	}
	r.stock += delta
	r.updatedAt = now
	return nil
}

func (r *Record) BelowThreshold() bool {
	return r.stock < r.threshold
}

func (r *Record) ID() uuid.UUID        { return r.id }
func (r *Record) ProductID() uuid.UUID { return r.productID }
func (r *Record) Location() string     { return r.location }
func (r *Record) Stock() int           { return r.stock }
func (r *Record) Threshold() int       { return r.threshold }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) UpdatedAt() time.Time { return r.updatedAt }
