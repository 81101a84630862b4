//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fulfillment-engine/internal/infra/notify"
	"fulfillment-engine/internal/pkg/clock"
	notifymock "fulfillment-engine/tests/mock/notify"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKafkaSender_Notify(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("publishes JSON keyed by recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := notifymock.NewMockMessageWriter(ctrl)
		writer.EXPECT().WriteMessages(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, "buyer@example.com", string(msgs[0].Key))

				var got notify.Message
				require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
				assert.Equal(t, "Order Created", got.Subject)
				assert.Equal(t, "Your order total is $80.00.", got.Body)
				assert.True(t, now.Equal(got.SentAt))
				return nil
			})

		sender := notify.NewKafkaSender(writer, clock.NewMockClock(now))
		err := sender.Notify(ctx, "buyer@example.com", "Order Created", "Your order total is $80.00.")
		assert.NoError(t, err)
	})

	t.Run("broker failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := notifymock.NewMockMessageWriter(ctrl)
		writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("leader not available"))

		err := notify.NewKafkaSender(writer, clock.NewMockClock(now)).Notify(ctx, "a@example.com", "s", "b")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish notification")
	})

	t.Run("close releases the writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		writer := notifymock.NewMockMessageWriter(ctrl)
		writer.EXPECT().Close().Return(nil)

		assert.NoError(t, notify.NewKafkaSender(writer, clock.NewMockClock(now)).Close())
	})
}
