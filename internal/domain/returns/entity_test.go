//go:build unit

package returns_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fulfillment-engine/internal/domain/returns"
	"fulfillment-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newRequest(t *testing.T, typ returns.RequestType) *returns.Request {
	t.Helper()
	r, err := returns.NewRequest(uuid.New(), "Item arrived damaged", typ, created)
	require.NoError(t, err)
	return r
}

func TestNewRequest(t *testing.T) {
	cases := []struct {
		name    string
		orderID uuid.UUID
		reason  string
		typ     returns.RequestType
		errIs   error
	}{
		{"refund", uuid.New(), "Damaged", returns.TypeRefund, nil},
		{"replacement", uuid.New(), "Wrong size", returns.TypeReplacement, nil},
		{"missing order", uuid.Nil, "Damaged", returns.TypeRefund, returns.ErrMissingOrder},
		{"blank reason", uuid.New(), "   ", returns.TypeRefund, returns.ErrEmptyReason},
		{"long reason", uuid.New(), strings.Repeat("a", returns.MaxReasonLength+1), returns.TypeRefund, returns.ErrReasonTooLong},
		{"unknown type", uuid.New(), "Damaged", returns.RequestType("exchange"), errs.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := returns.NewRequest(tc.orderID, tc.reason, tc.typ, created)
			if tc.errIs != nil {
				require.Nil(t, r)
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, returns.StatusPending, r.Status())
			assert.True(t, r.IsPending())
			assert.Nil(t, r.ProcessedAt())
		})
	}
}

func TestRequest_Process(t *testing.T) {
	now := created.Add(time.Hour)

	cases := []struct {
		name   string
		typ    returns.RequestType
		action returns.Action
		want   returns.Status
	}{
		{"approve refund", returns.TypeRefund, returns.ActionApprove, returns.StatusRefunded},
		{"approve replacement", returns.TypeReplacement, returns.ActionApprove, returns.StatusReplaced},
		{"deny refund", returns.TypeRefund, returns.ActionDeny, returns.StatusDenied},
		{"deny replacement", returns.TypeReplacement, returns.ActionDeny, returns.StatusDenied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRequest(t, tc.typ)

			require.NoError(t, r.Process(tc.action, now))
			assert.Equal(t, tc.want, r.Status())
			require.NotNil(t, r.ProcessedAt())
			assert.Equal(t, now, *r.ProcessedAt())
		})
	}

	t.Run("second processing is rejected", func(t *testing.T) {
		r := newRequest(t, returns.TypeRefund)
		require.NoError(t, r.Process(returns.ActionApprove, now))

		for _, action := range []returns.Action{returns.ActionApprove, returns.ActionDeny} {
			err := r.Process(action, now.Add(time.Hour))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrInvalidTransition))
			assert.Equal(t, returns.StatusRefunded, r.Status())
			assert.Equal(t, now, *r.ProcessedAt())
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		r := newRequest(t, returns.TypeRefund)
		err := r.Process(returns.Action("escalate"), now)
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.True(t, r.IsPending())
	})
}

func TestParse(t *testing.T) {
	_, err := returns.ParseStatus("approved")
	assert.NoError(t, err)
	_, err = returns.ParseStatus("closed")
	assert.ErrorIs(t, err, errs.ErrValidation)

	a, err := returns.ParseAction("deny")
	require.NoError(t, err)
	assert.Equal(t, returns.ActionDeny, a)
	_, err = returns.ParseAction("")
	assert.ErrorIs(t, err, errs.ErrValidation)
}
