package returns

import "fulfillment-engine/internal/pkg/errs"

type RequestType string

const (
	TypeRefund      RequestType = "refund"
	TypeReplacement RequestType = "replacement"
)

func ParseRequestType(v string) (RequestType, error) {
	switch t := RequestType(v); t {
	case TypeRefund, TypeReplacement:
		return t, nil
	default:
		return "", errs.Validationf("request type must be 'refund' or 'replacement', got '%s'", v)
	}
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
	StatusRefunded Status = "refunded"
	StatusReplaced Status = "replaced"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied, StatusRefunded, StatusReplaced:
		return true
	}
	return false
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", errs.Validationf("unknown return status '%s'", v)
	}
	return s, nil
}

type Action string

const (
	ActionApprove Action = "approve"
	ActionDeny    Action = "deny"
)

func ParseAction(v string) (Action, error) {
	switch a := Action(v); a {
	case ActionApprove, ActionDeny:
		return a, nil
	default:
		return "", errs.Validationf("action must be 'approve' or 'deny', got '%s'", v)
	}
}
