package repproducer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/techrepair/internal/model"
	"github.com/you-humble/techrepair/internal/service/mocks"
	"github.com/you-humble/techrepair/platform/kafka"
)

func TestSendRepairEvent(t *testing.T) {
	t.Parallel()

	event := model.RepairEvent{
		EventID:  "e1",
		Type:     model.RepairEventCreated,
		RepairID: "r1",
		Status:   model.StatusNew,
	}

	type deps struct {
		producer *mocks.MockProducer
		conv     *mocks.MockConverter
	}

	tests := []struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, err error)
	}{
		{
			name: "keyed by repair id with event type header",
			setup: func(d deps) {
				d.conv.On("RepairEventToPayload", event).Return([]byte("payload"), nil).Once()
				d.producer.
					On("Send", mock.Anything, mock.MatchedBy(func(m kafka.Message) bool {
						return string(m.Key) == "r1" &&
							string(m.Value) == "payload" &&
							m.Headers[eventTypeHeader] == string(model.RepairEventCreated)
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "converter error",
			setup: func(d deps) {
				d.conv.On("RepairEventToPayload", event).Return(nil, errors.New("bad event")).Once()
			},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "bad event")
			},
		},
		{
			name: "producer error",
			setup: func(d deps) {
				d.conv.On("RepairEventToPayload", event).Return([]byte("payload"), nil).Once()
				d.producer.On("Send", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			assert: func(t *testing.T, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "broker down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				producer: mocks.NewMockProducer(t),
				conv:     mocks.NewMockConverter(t),
			}
			tt.setup(d)

			err := NewRepairProducer(d.producer, d.conv).SendRepairEvent(context.Background(), event)
			tt.assert(t, err)
		})
	}
}
