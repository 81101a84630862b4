package returns

import (
	"strings"
	"time"

	"fulfillment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxReasonLength = 1000

var (
	ErrMissingOrder  = errs.Validation("return request requires an order")
	ErrEmptyReason   = errs.Validation("return reason cannot be empty")
	ErrReasonTooLong = errs.Validation("return reason is too long (max 1000 characters)")
)

// Request is a customer return. It leaves pending exactly once.
type Request struct {
	id          uuid.UUID
	orderID     uuid.UUID
	reason      string
	requestType RequestType
	status      Status
	createdAt   time.Time
	processedAt *time.Time
}

func NewRequest(orderID uuid.UUID, reason string, requestType RequestType, now time.Time) (*Request, error) {
	if orderID == uuid.Nil {
		return nil, ErrMissingOrder
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}
	if len(reason) > MaxReasonLength {
		return nil, ErrReasonTooLong
	}
	if _, err := ParseRequestType(string(requestType)); err != nil {
		return nil, err
	}
	return &Request{
		id:          uuid.New(),
		orderID:     orderID,
		reason:      reason,
		requestType: requestType,
		status:      StatusPending,
		createdAt:   now,
	}, nil
}

func ReconstructRequest(id, orderID uuid.UUID, reason string, requestType RequestType, status Status, createdAt time.Time, processedAt *time.Time) *Request {
	return &Request{
		id:          id,
		orderID:     orderID,
		reason:      reason,
		requestType: requestType,
		status:      status,
		createdAt:   createdAt,
		processedAt: processedAt,
	}
}

// Process moves a pending request to the terminal status implied by action.
// Approval resolves straight to refunded or replaced according to the request
// type. Any request that already left pending is rejected unchanged.
func (r *Request) Process(action Action, now time.Time) error {
	next, err := r.resolve(action)
	if err != nil {
		return err
	}
	if r.status != StatusPending {
		return errs.NewInvalidTransition("return status", string(r.status), string(next))
	}
	r.status = next
	r.processedAt = &now
	return nil
}

func (r *Request) resolve(action Action) (Status, error) {
	switch action {
	case ActionDeny:
		return StatusDenied, nil
	case ActionApprove:
		if r.requestType == TypeReplacement {
			return StatusReplaced, nil
		}
		return StatusRefunded, nil
	default:
		return "", errs.Validationf("action must be 'approve' or 'deny', got '%s'", action)
	}
}

func (r *Request) IsPending() bool { return r.status == StatusPending }

func (r *Request) ID() uuid.UUID           { return r.id }
func (r *Request) OrderID() uuid.UUID      { return r.orderID }
func (r *Request) Reason() string          { return r.reason }
func (r *Request) Type() RequestType       { return r.requestType }
func (r *Request) Status() Status          { return r.status }
func (r *Request) CreatedAt() time.Time    { return r.createdAt }
func (r *Request) ProcessedAt() *time.Time { return r.processedAt }
